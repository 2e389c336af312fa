package components

import (
	"fmt"
	"gravityshift/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("BoxCollider", func(props map[string]any) (engine.Component, error) {
		size, ok := engine.Vector3Prop(props, "size")
		if !ok {
			return nil, fmt.Errorf("box collider needs a size")
		}
		col := NewBoxCollider(rl.Vector3{X: size[0], Y: size[1], Z: size[2]})
		if off, ok := engine.Vector3Prop(props, "offset"); ok {
			col.Offset = rl.Vector3{X: off[0], Y: off[1], Z: off[2]}
		}
		if name, ok := props["layer"].(string); ok {
			layer, err := ParseLayer(name)
			if err != nil {
				return nil, err
			}
			col.Layer = layer
		}
		if trigger, ok := props["trigger"].(bool); ok {
			col.IsTrigger = trigger
		}
		return col, nil
	})
}

// BoxCollider is a box in the owner's local frame. Physics treats it as the
// axis-aligned box that encloses it after rotation.
type BoxCollider struct {
	engine.BaseComponent
	Size      rl.Vector3
	Offset    rl.Vector3
	Layer     Layer
	IsTrigger bool // overlaps are reported but never resolved
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{
		Size:   size,
		Offset: rl.Vector3{},
		Layer:  LayerDefault,
	}
}

// GetCenter returns the world-space center of this collider
func (b *BoxCollider) GetCenter() rl.Vector3 {
	g := b.GetGameObject()
	offset := rl.Vector3RotateByQuaternion(b.Offset, g.Transform.Rotation)
	return rl.Vector3Add(g.Transform.Position, offset)
}

// GetWorldSize returns the extent of the enclosing world-axis box.
func (b *BoxCollider) GetWorldSize() rl.Vector3 {
	g := b.GetGameObject()
	scaled := rl.Vector3Multiply(b.Size, g.Transform.Scale)
	q := g.Transform.Rotation
	x := rl.Vector3RotateByQuaternion(rl.Vector3{X: scaled.X}, q)
	y := rl.Vector3RotateByQuaternion(rl.Vector3{Y: scaled.Y}, q)
	z := rl.Vector3RotateByQuaternion(rl.Vector3{Z: scaled.Z}, q)
	return rl.Vector3{
		X: abs(x.X) + abs(y.X) + abs(z.X),
		Y: abs(x.Y) + abs(y.Y) + abs(z.Y),
		Z: abs(x.Z) + abs(y.Z) + abs(z.Z),
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
