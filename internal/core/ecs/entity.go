package ecs

// EntityID packs a slot in the low 32 bits and that slot's generation in the
// high 32. Slot 0 is reserved, so the zero EntityID refers to nothing; a
// sunk ship's cannonballs can hold its ID without ever matching whatever
// reuses the slot.
type EntityID uint64

func NewEntityID(slot, generation uint32) EntityID {
	return EntityID(uint64(generation)<<32 | uint64(slot))
}

func (id EntityID) Index() uint32      { return uint32(id) }
func (id EntityID) Generation() uint32 { return uint32(id >> 32) }
func (id EntityID) IsZero() bool       { return id == 0 }

// IDAllocator hands out EntityIDs. Released slots are reused newest first
// with their generation bumped.
type IDAllocator struct {
	gens  []uint32 // gens[slot]; gens[0] is the reserved slot
	spare []uint32
	live  int
}

func NewIDAllocator() *IDAllocator {
	return &IDAllocator{gens: make([]uint32, 1, 128)}
}

// Next returns a fresh ID.
func (a *IDAllocator) Next() EntityID {
	a.live++
	if n := len(a.spare); n > 0 {
		slot := a.spare[n-1]
		a.spare = a.spare[:n-1]
		return NewEntityID(slot, a.gens[slot])
	}
	a.gens = append(a.gens, 0)
	return NewEntityID(uint32(len(a.gens)-1), 0)
}

// Live reports whether id is the current holder of its slot.
func (a *IDAllocator) Live(id EntityID) bool {
	slot := int(id.Index())
	return slot > 0 && slot < len(a.gens) && a.gens[slot] == id.Generation()
}

// Release retires id. Stale or unknown ids are ignored.
func (a *IDAllocator) Release(id EntityID) {
	if !a.Live(id) {
		return
	}
	slot := id.Index()
	a.gens[slot]++
	a.spare = append(a.spare, slot)
	a.live--
}

// Count is the number of IDs handed out and not yet released.
func (a *IDAllocator) Count() int { return a.live }
