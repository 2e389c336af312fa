package components

import (
	"fmt"
	"strings"

	"gravityshift/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("MeshRenderer", func(props map[string]any) (engine.Component, error) {
		m := NewMeshRenderer(MeshCube, rl.LightGray, rl.Vector3{X: 1, Y: 1, Z: 1})
		if name, ok := props["mesh"].(string); ok {
			mesh, err := ParseMeshType(name)
			if err != nil {
				return nil, err
			}
			m.MeshType = mesh
		}
		if size, ok := engine.Vector3Prop(props, "size"); ok {
			m.Size = rl.Vector3{X: size[0], Y: size[1], Z: size[2]}
		}
		if name, ok := props["color"].(string); ok {
			m.Color = LookupColor(name)
		}
		if wires, ok := props["wires"].(bool); ok {
			m.Wires = wires
		}
		if _, ok := props["alpha"]; ok {
			m.Color.A = uint8(engine.Float32Prop(props, "alpha", 1) * 255)
		}
		return m, nil
	})
}

type MeshType int

const (
	MeshCube MeshType = iota
	MeshSphere
)

func ParseMeshType(name string) (MeshType, error) {
	switch strings.ToLower(name) {
	case "", "cube":
		return MeshCube, nil
	case "sphere":
		return MeshSphere, nil
	}
	return 0, fmt.Errorf("components: unknown mesh %q", name)
}

// MeshRenderer draws a primitive at the owner's pose. Size is in the local
// frame; for spheres X is the radius.
type MeshRenderer struct {
	engine.BaseComponent
	MeshType MeshType
	Color    rl.Color
	Size     rl.Vector3
	Wires    bool
}

func NewMeshRenderer(meshType MeshType, color rl.Color, size rl.Vector3) *MeshRenderer {
	return &MeshRenderer{
		MeshType: meshType,
		Color:    color,
		Size:     size,
	}
}

// Draw must be called between BeginMode3D and EndMode3D.
func (m *MeshRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active {
		return
	}
	m.DrawAt(g.Transform, 0, 0)
}

// DrawAt draws with an extra offset along local up and an extra up-scale,
// used by CharacterAnimator poses.
func (m *MeshRenderer) DrawAt(t engine.Transform, lift, stretch float32) {
	rl.PushMatrix()
	defer rl.PopMatrix()

	rl.Translatef(t.Position.X, t.Position.Y, t.Position.Z)
	var axis rl.Vector3
	var angle float32
	rl.QuaternionToAxisAngle(t.Rotation, &axis, &angle)
	if angle != 0 {
		rl.Rotatef(angle*rl.Rad2deg, axis.X, axis.Y, axis.Z)
	}
	rl.Translatef(0, lift, 0)
	rl.Scalef(t.Scale.X, t.Scale.Y*(1+stretch), t.Scale.Z)

	switch m.MeshType {
	case MeshCube:
		if m.Wires {
			rl.DrawCubeWiresV(rl.Vector3{}, m.Size, m.Color)
		} else {
			rl.DrawCubeV(rl.Vector3{}, m.Size, m.Color)
			rl.DrawCubeWiresV(rl.Vector3{}, m.Size, rl.Fade(rl.Black, 0.3))
		}
	case MeshSphere:
		if m.Wires {
			rl.DrawSphereWires(rl.Vector3{}, m.Size.X, 8, 8, m.Color)
		} else {
			rl.DrawSphere(rl.Vector3{}, m.Size.X, m.Color)
		}
	}
}

var colorByName = map[string]rl.Color{
	"red":       rl.Red,
	"blue":      rl.Blue,
	"green":     rl.Green,
	"purple":    rl.Purple,
	"orange":    rl.Orange,
	"yellow":    rl.Yellow,
	"pink":      rl.Pink,
	"skyblue":   rl.SkyBlue,
	"lime":      rl.Lime,
	"magenta":   rl.Magenta,
	"white":     rl.White,
	"lightgray": rl.LightGray,
	"gray":      rl.Gray,
	"darkgray":  rl.DarkGray,
	"black":     rl.Black,
	"brown":     rl.Brown,
	"beige":     rl.Beige,
	"maroon":    rl.Maroon,
	"gold":      rl.Gold,
}

// LookupColor maps a raylib color name, case-insensitively. Unknown names
// are white.
func LookupColor(name string) rl.Color {
	if c, ok := colorByName[strings.ToLower(name)]; ok {
		return c
	}
	return rl.White
}
