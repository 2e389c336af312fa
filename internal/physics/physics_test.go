package physics

import (
	"testing"

	"gravityshift/internal/components"
	"gravityshift/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var groundMask = components.MaskOf(components.LayerGround)

func newBlock(name string, pos, size rl.Vector3, layer components.Layer) *engine.GameObject {
	g := engine.NewGameObject(name)
	g.Transform.Position = pos
	box := components.NewBoxCollider(size)
	box.Layer = layer
	g.AddComponent(box)
	return g
}

func newBody(pos rl.Vector3) (*engine.GameObject, *components.Rigidbody) {
	g := engine.NewGameObject("Body")
	g.Tags = []string{"Player"}
	g.Transform.Position = pos
	box := components.NewBoxCollider(rl.Vector3{X: 1, Y: 1, Z: 1})
	box.Layer = components.LayerPlayer
	g.AddComponent(box)
	rb := components.NewRigidbody()
	g.AddComponent(rb)
	return g, rb
}

func TestAABBResolve(t *testing.T) {
	a := NewAABBFromCenter(rl.Vector3{Y: 0.9}, rl.Vector3{X: 1, Y: 1, Z: 1})
	b := NewAABBFromCenter(rl.Vector3{}, rl.Vector3{X: 10, Y: 1, Z: 10})

	push := a.Resolve(b)
	assert.InDelta(t, 0.1, push.Y, 1e-5)
	assert.Zero(t, push.X)
	assert.Zero(t, push.Z)

	far := NewAABBFromCenter(rl.Vector3{Y: 5}, rl.Vector3{X: 1, Y: 1, Z: 1})
	assert.Equal(t, rl.Vector3Zero(), far.Resolve(b))
}

func TestAABBIntersectsSphere(t *testing.T) {
	box := NewAABBFromCenter(rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2})
	assert.True(t, box.IntersectsSphere(rl.Vector3{Y: 1.05}, 0.1))
	assert.False(t, box.IntersectsSphere(rl.Vector3{Y: 1.2}, 0.1))
	assert.True(t, box.IntersectsSphere(rl.Vector3{}, 0.01))
}

func TestRaycastRespectsMaskAndDistance(t *testing.T) {
	w := NewWorld(nil)
	w.AddObject(newBlock("Floor", rl.Vector3{Y: -5}, rl.Vector3{X: 10, Y: 1, Z: 10}, components.LayerGround))
	w.AddObject(newBlock("Glass", rl.Vector3{Y: -2}, rl.Vector3{X: 10, Y: 1, Z: 10}, components.LayerDefault))

	hit, ok := w.Raycast(rl.Vector3{}, rl.Vector3{Y: -1}, 100, groundMask)
	require.True(t, ok)
	assert.Equal(t, "Floor", hit.GameObject.Name)
	assert.InDelta(t, 4.5, hit.Distance, 1e-4)
	assert.Equal(t, rl.Vector3{Y: 1}, hit.Normal)

	hit, ok = w.Raycast(rl.Vector3{}, rl.Vector3{Y: -1}, 100, components.AllLayers)
	require.True(t, ok)
	assert.Equal(t, "Glass", hit.GameObject.Name)

	assert.False(t, w.RaycastAny(rl.Vector3{}, rl.Vector3{Y: -1}, 4, groundMask))
	assert.False(t, w.RaycastAny(rl.Vector3{}, rl.Vector3{Y: 1}, 100, groundMask))
	assert.False(t, w.RaycastAny(rl.Vector3{}, rl.Vector3{}, 100, groundMask))
}

func TestRaycastSkipsInactiveAndTriggers(t *testing.T) {
	w := NewWorld(nil)
	floor := newBlock("Floor", rl.Vector3{Y: -5}, rl.Vector3{X: 10, Y: 1, Z: 10}, components.LayerGround)
	w.AddObject(floor)
	trigger := newBlock("Zone", rl.Vector3{Y: -2}, rl.Vector3{X: 10, Y: 1, Z: 10}, components.LayerGround)
	engine.GetComponent[*components.BoxCollider](trigger).IsTrigger = true
	w.AddObject(trigger)

	hit, ok := w.Raycast(rl.Vector3{}, rl.Vector3{Y: -1}, 100, groundMask)
	require.True(t, ok)
	assert.Equal(t, "Floor", hit.GameObject.Name)

	floor.Active = false
	assert.False(t, w.RaycastAny(rl.Vector3{}, rl.Vector3{Y: -1}, 100, groundMask))
}

func TestCheckSphere(t *testing.T) {
	w := NewWorld(nil)
	w.AddObject(newBlock("Floor", rl.Vector3{Y: -0.5}, rl.Vector3{X: 10, Y: 1, Z: 10}, components.LayerGround))

	assert.True(t, w.CheckSphere(rl.Vector3{Y: 0.05}, 0.1, groundMask))
	assert.False(t, w.CheckSphere(rl.Vector3{Y: 0.5}, 0.1, groundMask))
	assert.False(t, w.CheckSphere(rl.Vector3{Y: 0.05}, 0.1, components.MaskOf(components.LayerPlayer)))
}

func TestStepAppliesGravity(t *testing.T) {
	w := NewWorld(nil)
	w.SetGravity(rl.Vector3{X: 9.81})
	body, rb := newBody(rl.Vector3{})
	w.AddObject(body)

	w.Step(0.5)

	assert.InDelta(t, 4.905, rb.Velocity().X, 1e-4)
	assert.Greater(t, body.Transform.Position.X, float32(0))
	assert.Zero(t, body.Transform.Position.Y)
}

func TestStepRestsOnGround(t *testing.T) {
	w := NewWorld(nil)
	w.AddObject(newBlock("Floor", rl.Vector3{Y: -0.5}, rl.Vector3{X: 10, Y: 1, Z: 10}, components.LayerGround))
	body, rb := newBody(rl.Vector3{Y: 2})
	w.AddObject(body)

	for i := 0; i < 200; i++ {
		w.Step(0.02)
	}

	assert.InDelta(t, 0.5, body.Transform.Position.Y, 0.01)
	assert.InDelta(t, 0, rb.Velocity().Y, 0.5)
}

func TestStepKinematicIgnoresGravity(t *testing.T) {
	w := NewWorld(nil)
	body, rb := newBody(rl.Vector3{Y: 3})
	rb.IsKinematic = true
	w.AddObject(body)

	w.Step(1)

	assert.Equal(t, float32(3), body.Transform.Position.Y)
}

func TestTriggerEnterFiresOnce(t *testing.T) {
	w := NewWorld(nil)
	w.SetGravity(rl.Vector3{})

	pickup := engine.NewGameObject("Cube")
	pbox := components.NewBoxCollider(rl.Vector3{X: 1, Y: 1, Z: 1})
	pbox.IsTrigger = true
	pickup.AddComponent(pbox)
	col := components.NewCollectible()
	pickup.AddComponent(col)
	w.AddObject(pickup)

	fired := 0
	col.Collected.AddListener(func(*components.Collectible) { fired++ })

	body, _ := newBody(rl.Vector3{X: 0.5})
	w.AddObject(body)

	w.Step(0.02)
	w.Step(0.02)

	assert.Equal(t, 1, fired)
	assert.True(t, col.IsCollected())
	assert.False(t, pickup.Active)
}

func TestRemoveObject(t *testing.T) {
	w := NewWorld(nil)
	floor := newBlock("Floor", rl.Vector3{}, rl.Vector3{X: 1, Y: 1, Z: 1}, components.LayerGround)
	w.AddObject(floor)
	require.Len(t, w.Statics, 1)

	w.RemoveObject(floor)
	assert.Empty(t, w.Statics)
}
