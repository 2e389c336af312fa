package components

import (
	"gravityshift/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("Rigidbody", func(props map[string]any) (engine.Component, error) {
		rb := NewRigidbody()
		rb.Mass = engine.Float32Prop(props, "mass", rb.Mass)
		rb.Drag = engine.Float32Prop(props, "drag", rb.Drag)
		if g, ok := props["useGravity"].(bool); ok {
			rb.UseGravity = g
		}
		if k, ok := props["isKinematic"].(bool); ok {
			rb.IsKinematic = k
		}
		return rb, nil
	})
}

// Rigidbody is integrated by the physics world. Pose lives on the owning
// GameObject's transform; velocity lives here.
type Rigidbody struct {
	engine.BaseComponent
	Mass        float32
	Drag        float32 // fraction of velocity lost per second
	UseGravity  bool
	IsKinematic bool // moves but doesn't get pushed by physics

	velocity rl.Vector3
}

func NewRigidbody() *Rigidbody {
	return &Rigidbody{
		Mass:       1.0,
		UseGravity: true,
	}
}

func (r *Rigidbody) Velocity() rl.Vector3 {
	return r.velocity
}

func (r *Rigidbody) SetVelocity(v rl.Vector3) {
	r.velocity = v
}

// AddImpulse applies an instantaneous change of momentum.
func (r *Rigidbody) AddImpulse(impulse rl.Vector3) {
	if r.IsKinematic {
		return
	}
	mass := r.Mass
	if mass <= 0 {
		mass = 1
	}
	r.velocity = rl.Vector3Add(r.velocity, rl.Vector3Scale(impulse, 1/mass))
}

func (r *Rigidbody) Position() rl.Vector3 {
	return r.GetGameObject().Transform.Position
}

// MovePosition teleports the body; collisions are resolved on the next step.
func (r *Rigidbody) MovePosition(p rl.Vector3) {
	r.GetGameObject().Transform.Position = p
}

func (r *Rigidbody) Rotation() rl.Quaternion {
	return r.GetGameObject().Transform.Rotation
}

func (r *Rigidbody) SetRotation(q rl.Quaternion) {
	r.GetGameObject().Transform.Rotation = rl.QuaternionNormalize(q)
}

func (r *Rigidbody) Up() rl.Vector3 {
	return r.GetGameObject().Transform.Up()
}

func (r *Rigidbody) Forward() rl.Vector3 {
	return r.GetGameObject().Transform.Forward()
}

func (r *Rigidbody) Right() rl.Vector3 {
	return r.GetGameObject().Transform.Right()
}
