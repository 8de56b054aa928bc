package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yorkpirates/seacore/internal/core/ecs"
)

type recordingCallback struct {
	NopCallback
	name   string
	events *[]string
}

func (r recordingCallback) EnterTrigger(info CollisionInfo) {
	*r.events = append(*r.events, r.name+":enter:"+info.A.Name()+"/"+info.B.Name())
}

func (r recordingCallback) BeginContact(info CollisionInfo) {
	*r.events = append(*r.events, r.name+":begin")
}

func TestOrderPutsProjectileFirst(t *testing.T) {
	ship := ecs.NewEntity("Ship (1)", 0, ecs.CapShip)
	ball := ecs.NewEntity("CannonBall (0)", 0, ecs.CapProjectile)
	a, b := Order(ship, ball)
	assert.Same(t, ball, a)
	assert.Same(t, ship, b)

	player := ecs.NewEntity("Ship (0)", 0, ecs.CapShip|ecs.CapPlayer)
	a, b = Order(player, ball)
	assert.Same(t, ball, a)
	assert.Same(t, player, b)
}

func TestOrderPutsPlayerFirstWithoutProjectile(t *testing.T) {
	player := ecs.NewEntity("Ship (0)", 0, ecs.CapShip|ecs.CapPlayer)
	pickup := ecs.NewEntity("Enhancement (0)", 0, ecs.CapPickup)
	a, b := Order(pickup, player)
	assert.Same(t, player, a)
	assert.Same(t, pickup, b)
}

func TestReceiver(t *testing.T) {
	player := ecs.NewEntity("Ship (0)", 0, ecs.CapShip|ecs.CapPlayer)
	npc := ecs.NewEntity("Ship (1)", 0, ecs.CapShip)
	ball := ecs.NewEntity("CannonBall (0)", 0, ecs.CapProjectile)

	assert.Same(t, player, Receiver(CollisionInfo{A: ball, B: player}))
	assert.Same(t, player, Receiver(CollisionInfo{A: player, B: npc}))
	assert.Same(t, npc, Receiver(CollisionInfo{A: ball, B: npc}))
}

func TestDispatchFallsBackToOtherParticipant(t *testing.T) {
	var events []string
	ball := ecs.NewEntity("ball", 0, ecs.CapProjectile)
	rock := ecs.NewEntity("rock", 0, ecs.CapHazard)
	bound := map[*ecs.Entity]Callback{
		ball: recordingCallback{name: "ball", events: &events},
	}
	resolve := func(e *ecs.Entity) Callback { return bound[e] }

	ok := Dispatch(EnterTrigger, CollisionInfo{A: ball, B: rock}, resolve)
	assert.True(t, ok)
	assert.Equal(t, []string{"ball:enter:ball/rock"}, events)

	ok = Dispatch(EnterTrigger, CollisionInfo{A: rock, B: rock}, func(*ecs.Entity) Callback { return nil })
	assert.False(t, ok)
}

func TestOverlapClassification(t *testing.T) {
	enter, exit, ok := Overlap(Dynamic, Trigger)
	assert.True(t, ok)
	assert.Equal(t, EnterTrigger, enter)
	assert.Equal(t, ExitTrigger, exit)

	enter, _, ok = Overlap(Dynamic, Static)
	assert.True(t, ok)
	assert.Equal(t, BeginContact, enter)

	_, _, ok = Overlap(Static, Static)
	assert.False(t, ok)
}
