package component

import (
	"github.com/yorkpirates/seacore/internal/core/ecs"
	"github.com/yorkpirates/seacore/internal/geom"
	"github.com/yorkpirates/seacore/internal/physics"
)

// RigidBody is the physics collaborator's view of an entity. It keeps
// back-references to the Transform and Renderable it syncs with, and an
// optional collision callback binding.
type RigidBody struct {
	Type     physics.BodyType
	Radius   float64
	Enabled  bool
	Callback physics.Callback

	transform  *Transform
	renderable *Renderable
}

func NewRigidBody(bodyType physics.BodyType, radius float64, r *Renderable, t *Transform) *RigidBody {
	return &RigidBody{
		Type:       bodyType,
		Radius:     radius,
		Enabled:    true,
		transform:  t,
		renderable: r,
	}
}

// SetCallback binds the entity's collision handler.
func (rb *RigidBody) SetCallback(cb physics.Callback) { rb.Callback = cb }

// SetVelocity writes through to the Transform.
func (rb *RigidBody) SetVelocity(x, y float64) {
	rb.transform.Velocity = geom.V(x, y)
}

func (rb *RigidBody) Velocity() geom.Vec2 { return rb.transform.Velocity }

func (rb *RigidBody) Position() geom.Vec2 { return rb.transform.Position }

func (rb *RigidBody) Transform() *Transform   { return rb.transform }
func (rb *RigidBody) Renderable() *Renderable { return rb.renderable }

// CallbackOf resolves the collision handler bound to e's RigidBody. It
// satisfies physics.Resolver.
func CallbackOf(e *ecs.Entity) physics.Callback {
	if e == nil {
		return nil
	}
	rb, err := ecs.Get[RigidBody](e)
	if err != nil {
		return nil
	}
	return rb.Callback
}
