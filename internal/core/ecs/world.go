package ecs

// World is the top-level ECS container. It owns the id allocator, the name
// registry, every live entity, and a deferred destruction queue flushed by
// CleanupSystem each tick.
type World struct {
	ids          *IDAllocator
	registry     *Registry
	entities     map[EntityID]*Entity
	order        []*Entity
	destroyQueue []EntityID
}

func NewWorld() *World {
	return &World{
		ids:          NewIDAllocator(),
		registry:     NewRegistry(),
		entities:     make(map[EntityID]*Entity, 128),
		order:        make([]*Entity, 0, 128),
		destroyQueue: make([]EntityID, 0, 16),
	}
}

func (w *World) IDs() *IDAllocator   { return w.ids }
func (w *World) Registry() *Registry { return w.registry }
func (w *World) Len() int            { return len(w.order) }

// Spawn creates a named entity of the given kind and registers it.
func (w *World) Spawn(kind string, capHint int, caps Capability) *Entity {
	e := NewEntity(w.registry.NextName(kind), capHint, caps)
	e.id = w.ids.Next()
	w.entities[e.id] = e
	w.order = append(w.order, e)
	return e
}

func (w *World) Entity(id EntityID) (*Entity, bool) {
	e, ok := w.entities[id]
	return e, ok
}

func (w *World) Alive(id EntityID) bool {
	return w.ids.Live(id)
}

// Each visits live entities in spawn order.
func (w *World) Each(fn func(*Entity)) {
	for _, e := range w.order {
		fn(e)
	}
}

// MarkForDestruction queues an entity for end-of-tick cleanup.
func (w *World) MarkForDestruction(id EntityID) {
	w.destroyQueue = append(w.destroyQueue, id)
}

// FlushDestroyQueue removes all queued entities and recycles their ids.
// Called by CleanupSystem at the end of each tick.
func (w *World) FlushDestroyQueue() {
	if len(w.destroyQueue) == 0 {
		return
	}
	for _, id := range w.destroyQueue {
		if _, ok := w.entities[id]; !ok {
			continue
		}
		delete(w.entities, id)
		w.ids.Release(id)
	}
	kept := w.order[:0]
	for _, e := range w.order {
		if _, ok := w.entities[e.id]; ok {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(w.order); i++ {
		w.order[i] = nil
	}
	w.order = kept
	w.destroyQueue = w.destroyQueue[:0]
}
