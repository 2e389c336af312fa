package components

import (
	"testing"

	"gravityshift/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisteredComponents(t *testing.T) {
	names := engine.RegisteredComponents()
	for _, want := range []string{"BoxCollider", "CharacterAnimator", "Collectible", "MeshRenderer", "Rigidbody"} {
		assert.Contains(t, names, want)
	}
}

func TestBoxColliderFromProps(t *testing.T) {
	c, err := engine.CreateComponent("BoxCollider", map[string]any{
		"size":    []any{2.0, 1, 4.0},
		"layer":   "Ground",
		"trigger": true,
	})
	require.NoError(t, err)
	box := c.(*BoxCollider)
	assert.Equal(t, rl.Vector3{X: 2, Y: 1, Z: 4}, box.Size)
	assert.Equal(t, LayerGround, box.Layer)
	assert.True(t, box.IsTrigger)

	_, err = engine.CreateComponent("BoxCollider", map[string]any{})
	assert.Error(t, err, "size is required")

	_, err = engine.CreateComponent("BoxCollider", map[string]any{
		"size":  []any{1, 1, 1},
		"layer": "lava",
	})
	assert.Error(t, err)
}

func TestWorldSizeEnclosesRotatedBox(t *testing.T) {
	g := engine.NewGameObject("Box")
	g.Transform.Rotation = rl.QuaternionFromAxisAngle(rl.Vector3{Z: 1}, rl.Pi/2)
	box := NewBoxCollider(rl.Vector3{X: 0.8, Y: 1.8, Z: 0.8})
	g.AddComponent(box)

	size := box.GetWorldSize()
	assert.InDelta(t, 1.8, size.X, 1e-4)
	assert.InDelta(t, 0.8, size.Y, 1e-4)
	assert.InDelta(t, 0.8, size.Z, 1e-4)
}

func TestLayerMask(t *testing.T) {
	m := MaskOf(LayerGround, LayerCollectible)
	assert.True(t, m.Contains(LayerGround))
	assert.True(t, m.Contains(LayerCollectible))
	assert.False(t, m.Contains(LayerPlayer))
	assert.True(t, AllLayers.Contains(LayerPlayer))

	l, err := ParseLayer("")
	require.NoError(t, err)
	assert.Equal(t, LayerDefault, l)
}

func TestRigidbodyImpulseScalesWithMass(t *testing.T) {
	rb := NewRigidbody()
	rb.Mass = 2
	rb.AddImpulse(rl.Vector3{Y: 4})
	assert.Equal(t, rl.Vector3{Y: 2}, rb.Velocity())

	rb.IsKinematic = true
	rb.AddImpulse(rl.Vector3{Y: 4})
	assert.Equal(t, rl.Vector3{Y: 2}, rb.Velocity(), "kinematic bodies ignore impulses")
}

func TestRigidbodyFrameFollowsTransform(t *testing.T) {
	g := engine.NewGameObject("Body")
	rb := NewRigidbody()
	g.AddComponent(rb)

	rb.SetRotation(rl.QuaternionFromAxisAngle(rl.Vector3{Z: 1}, rl.Pi/2))
	up := rb.Up()
	assert.InDelta(t, -1, up.X, 1e-4)
	assert.InDelta(t, 0, up.Y, 1e-4)

	rb.MovePosition(rl.Vector3{X: 3})
	assert.Equal(t, rl.Vector3{X: 3}, g.Transform.Position)
}

func TestCollectibleOnlyCountsPlayer(t *testing.T) {
	cube := engine.NewGameObject("Cube")
	c := NewCollectible()
	cube.AddComponent(c)

	count := 0
	c.Collected.AddListener(func(*Collectible) { count++ })

	other := engine.NewGameObject("Rock")
	c.OnTriggerEnter(other)
	assert.Zero(t, count)

	player := engine.NewGameObject("Player")
	player.Tags = []string{"Player"}
	c.OnTriggerEnter(player)
	c.OnTriggerEnter(player)

	assert.Equal(t, 1, count)
	assert.True(t, c.IsCollected())
	assert.False(t, cube.Active)
}

func TestCharacterAnimatorPose(t *testing.T) {
	a := NewCharacterAnimator()

	a.Animate(true, false)
	a.Update(0.05)
	bob, stretch := a.Pose()
	assert.Greater(t, bob, float32(0))
	assert.LessOrEqual(t, bob, a.BobHeight)
	assert.Zero(t, stretch)

	a.Animate(false, true)
	for i := 0; i < 100; i++ {
		a.Update(0.02)
	}
	bob, stretch = a.Pose()
	assert.Zero(t, bob)
	assert.InDelta(t, a.FallStretch, stretch, 1e-3)
}

func TestMeshRendererFromProps(t *testing.T) {
	c, err := engine.CreateComponent("MeshRenderer", map[string]any{
		"mesh":  "Sphere",
		"color": "gold",
		"alpha": 0.5,
	})
	require.NoError(t, err)
	m := c.(*MeshRenderer)
	assert.Equal(t, MeshSphere, m.MeshType)
	assert.Equal(t, rl.Gold.R, m.Color.R)
	assert.Equal(t, uint8(127), m.Color.A)

	_, err = ParseMeshType("torus")
	assert.Error(t, err)
}
