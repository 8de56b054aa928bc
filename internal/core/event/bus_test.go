package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmitVisibleNextTick(t *testing.T) {
	b := NewBus()
	var got []ShipDamaged
	Subscribe(b, func(ev ShipDamaged) { got = append(got, ev) })

	Emit(b, ShipDamaged{TargetName: "Ship (1)", Amount: 10})
	assert.Equal(t, 1, b.Pending())

	b.DispatchAll()
	assert.Empty(t, got, "not delivered before swap")

	b.SwapBuffers()
	b.DispatchAll()
	assert.Len(t, got, 1)
	assert.Equal(t, 10, got[0].Amount)
	assert.Equal(t, 0, b.Pending())
}

func TestHandlersAreTyped(t *testing.T) {
	b := NewBus()
	sunk, damaged := 0, 0
	Subscribe(b, func(ShipSunk) { sunk++ })
	Subscribe(b, func(ShipDamaged) { damaged++ })

	Emit(b, ShipSunk{ShipName: "Ship (2)"})
	b.SwapBuffers()
	b.DispatchAll()
	assert.Equal(t, 1, sunk)
	assert.Equal(t, 0, damaged)
}

func TestEmitOnNilBus(t *testing.T) {
	assert.NotPanics(t, func() { Emit[ShipSunk](nil, ShipSunk{}) })
}
