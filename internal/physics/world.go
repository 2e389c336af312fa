package physics

import (
	"gravityshift/internal/components"
	"gravityshift/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// StandardGravity is the acceleration used until someone calls SetGravity.
var StandardGravity = rl.Vector3{Y: -9.81}

// triggerPair identifies a body overlapping a trigger.
type triggerPair struct {
	body, trigger uint64
}

type World struct {
	Gravity  rl.Vector3
	Bodies   []*engine.GameObject // objects with a Rigidbody
	Statics  []*engine.GameObject // solid colliders without a Rigidbody
	Triggers []*engine.GameObject // trigger colliders without a Rigidbody

	activeTriggers map[triggerPair]bool
	log            *zap.Logger
}

func NewWorld(log *zap.Logger) *World {
	if log == nil {
		log = zap.NewNop()
	}
	return &World{
		Gravity:        StandardGravity,
		Bodies:         make([]*engine.GameObject, 0),
		Statics:        make([]*engine.GameObject, 0),
		Triggers:       make([]*engine.GameObject, 0),
		activeTriggers: make(map[triggerPair]bool),
		log:            log.Named("physics"),
	}
}

// SetGravity replaces the global gravity acceleration.
func (w *World) SetGravity(g rl.Vector3) {
	w.Gravity = g
	w.log.Debug("gravity changed",
		zap.Float32("x", g.X), zap.Float32("y", g.Y), zap.Float32("z", g.Z))
}

func (w *World) AddObject(g *engine.GameObject) {
	rb := engine.GetComponent[*components.Rigidbody](g)
	box := engine.GetComponent[*components.BoxCollider](g)
	switch {
	case rb != nil:
		w.Bodies = append(w.Bodies, g)
	case box != nil && box.IsTrigger:
		w.Triggers = append(w.Triggers, g)
	case box != nil:
		w.Statics = append(w.Statics, g)
	default:
		return
	}
	w.log.Debug("object added", zap.String("name", g.Name))
}

func (w *World) RemoveObject(g *engine.GameObject) {
	w.Bodies = removeObject(w.Bodies, g)
	w.Statics = removeObject(w.Statics, g)
	w.Triggers = removeObject(w.Triggers, g)
	for pair := range w.activeTriggers {
		if pair.body == g.UID || pair.trigger == g.UID {
			delete(w.activeTriggers, pair)
		}
	}
}

func removeObject(list []*engine.GameObject, g *engine.GameObject) []*engine.GameObject {
	for i, obj := range list {
		if obj == g {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// Step integrates dynamic bodies, pushes them out of static colliders and
// dispatches trigger enter callbacks.
func (w *World) Step(deltaTime float32) {
	current := make(map[triggerPair]bool)

	for _, body := range w.Bodies {
		if !body.Active {
			continue
		}
		rb := engine.GetComponent[*components.Rigidbody](body)
		if rb == nil {
			continue
		}

		if !rb.IsKinematic {
			w.integrate(body, rb, deltaTime)
		}

		box := engine.GetComponent[*components.BoxCollider](body)
		if box == nil {
			continue
		}
		bounds := NewAABBFromCenter(box.GetCenter(), box.GetWorldSize())
		for _, trig := range w.Triggers {
			if !trig.Active {
				continue
			}
			tbox := engine.GetComponent[*components.BoxCollider](trig)
			if !bounds.Intersects(NewAABBFromCenter(tbox.GetCenter(), tbox.GetWorldSize())) {
				continue
			}
			pair := triggerPair{body: body.UID, trigger: trig.UID}
			current[pair] = true
			if !w.activeTriggers[pair] {
				dispatchTriggerEnter(trig, body)
			}
		}
	}

	w.activeTriggers = current
}

func (w *World) integrate(body *engine.GameObject, rb *components.Rigidbody, deltaTime float32) {
	v := rb.Velocity()
	if rb.UseGravity {
		v = rl.Vector3Add(v, rl.Vector3Scale(w.Gravity, deltaTime))
	}
	if rb.Drag > 0 {
		damping := 1 - rb.Drag*deltaTime
		if damping < 0 {
			damping = 0
		}
		v = rl.Vector3Scale(v, damping)
	}

	body.Transform.Position = rl.Vector3Add(body.Transform.Position, rl.Vector3Scale(v, deltaTime))

	box := engine.GetComponent[*components.BoxCollider](body)
	if box != nil && !box.IsTrigger {
		v = w.resolveStatics(body, box, v)
	}
	rb.SetVelocity(v)
}

// resolveStatics pushes body out of every overlapping static collider and
// removes the velocity component that points into the contact.
func (w *World) resolveStatics(body *engine.GameObject, box *components.BoxCollider, v rl.Vector3) rl.Vector3 {
	for _, static := range w.Statics {
		if !static.Active {
			continue
		}
		sbox := engine.GetComponent[*components.BoxCollider](static)
		bounds := NewAABBFromCenter(box.GetCenter(), box.GetWorldSize())
		push := bounds.Resolve(NewAABBFromCenter(sbox.GetCenter(), sbox.GetWorldSize()))
		if rl.Vector3LengthSqr(push) == 0 {
			continue
		}
		body.Transform.Position = rl.Vector3Add(body.Transform.Position, push)

		n := rl.Vector3Normalize(push)
		if into := rl.Vector3DotProduct(v, n); into < 0 {
			v = rl.Vector3Subtract(v, rl.Vector3Scale(n, into))
		}
	}
	return v
}

func dispatchTriggerEnter(trigger, other *engine.GameObject) {
	for _, c := range trigger.Components() {
		if h, ok := c.(engine.TriggerHandler); ok {
			h.OnTriggerEnter(other)
		}
	}
}

// eachCollider visits active solid colliders whose layer is in mask.
func (w *World) eachCollider(mask components.LayerMask, fn func(*engine.GameObject, *components.BoxCollider)) {
	visit := func(list []*engine.GameObject) {
		for _, obj := range list {
			if !obj.Active {
				continue
			}
			box := engine.GetComponent[*components.BoxCollider](obj)
			if box == nil || box.IsTrigger || !mask.Contains(box.Layer) {
				continue
			}
			fn(obj, box)
		}
	}
	visit(w.Statics)
	visit(w.Bodies)
}
