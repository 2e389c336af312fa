package engine

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

type countingComponent struct {
	BaseComponent
	starts  int
	updates int
}

func (c *countingComponent) Start()                   { c.starts++ }
func (c *countingComponent) Update(deltaTime float32) { c.updates++ }

func TestNewGameObjectDefaults(t *testing.T) {
	a := NewGameObject("Player")
	b := NewGameObject("Player")

	assert.NotZero(t, a.UID)
	assert.NotEqual(t, a.UID, b.UID)
	assert.True(t, a.Active)
	assert.Equal(t, rl.QuaternionIdentity(), a.Transform.Rotation)
	assert.Equal(t, rl.Vector3{X: 1, Y: 1, Z: 1}, a.Transform.Scale)
	assert.False(t, a.HasTag("Player"), "names are not tags")
}

func TestGetComponentByType(t *testing.T) {
	g := NewGameObject("Cube01")
	c := &countingComponent{}
	g.AddComponent(c)

	assert.Same(t, c, GetComponent[*countingComponent](g))
	assert.Same(t, g, c.GetGameObject())
	assert.Nil(t, GetComponent[*despawner](g))
	assert.Nil(t, GetComponent[*countingComponent](nil))
	assert.Len(t, g.Components(), 1)
}

func TestStartRunsOnceAndInactiveSkipsUpdate(t *testing.T) {
	g := NewGameObject("Cube01")
	c := &countingComponent{}
	g.AddComponent(c)

	g.Start()
	g.Start()
	g.Update(0.02)
	g.Active = false
	g.Update(0.02)

	assert.Equal(t, 1, c.starts)
	assert.Equal(t, 1, c.updates)
}

func TestTransformFrame(t *testing.T) {
	tests := []struct {
		name               string
		rotation           rl.Quaternion
		up, forward, right rl.Vector3
	}{
		{"identity", rl.QuaternionIdentity(), rl.Vector3{Y: 1}, rl.Vector3{Z: 1}, rl.Vector3{X: 1}},
		{"pitched onto +Z wall", rl.QuaternionFromAxisAngle(rl.Vector3{X: 1}, math.Pi/2), rl.Vector3{Z: 1}, rl.Vector3{Y: -1}, rl.Vector3{X: 1}},
		{"standing on -X wall", rl.QuaternionFromAxisAngle(rl.Vector3{Z: 1}, -math.Pi/2), rl.Vector3{X: 1}, rl.Vector3{Z: 1}, rl.Vector3{Y: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := Transform{Rotation: tt.rotation}
			assertVec(t, tt.up, tr.Up())
			assertVec(t, tt.forward, tr.Forward())
			assertVec(t, tt.right, tr.Right())
		})
	}
}

func assertVec(t *testing.T, want, got rl.Vector3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-5)
	assert.InDelta(t, want.Y, got.Y, 1e-5)
	assert.InDelta(t, want.Z, got.Z, 1e-5)
}
