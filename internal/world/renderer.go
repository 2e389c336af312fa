package world

import (
	"gravityshift/internal/camera"
	"gravityshift/internal/components"
	"gravityshift/internal/engine"
	"gravityshift/internal/gravity"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer draws the scene from a camera rig. Geometry is mirrored on X to
// match camera.Rig.Camera3D.
type Renderer struct {
	Background    rl.Color
	HologramColor rl.Color
	Culling       bool

	drawn int
}

func NewRenderer() *Renderer {
	return &Renderer{
		Background:    rl.RayWhite,
		HologramColor: rl.Fade(rl.SkyBlue, 0.6),
		Culling:       true,
	}
}

// Drawn is the number of objects drawn last frame.
func (r *Renderer) Drawn() int {
	return r.drawn
}

func (r *Renderer) Draw(w *World, rig *camera.Rig, hologram *gravity.Hologram) {
	cam := rig.Camera3D()
	aspect := float32(rl.GetScreenWidth()) / float32(rl.GetScreenHeight())
	frustum := ExtractFrustum(cam, aspect)

	rl.ClearBackground(r.Background)
	rl.BeginMode3D(cam)
	rl.DisableBackfaceCulling()
	rl.PushMatrix()
	rl.Scalef(-1, 1, 1)

	r.drawn = 0
	for _, g := range w.Scene.GameObjects {
		if !g.Active || g == w.Player {
			continue
		}
		mesh := engine.GetComponent[*components.MeshRenderer](g)
		if mesh == nil {
			continue
		}
		if r.Culling && !frustum.ContainsSphere(camera.Mirror(g.Transform.Position), boundingRadius(g, mesh)) {
			continue
		}
		mesh.Draw()
		r.drawn++
	}

	r.drawPlayer(w)
	if hologram != nil && hologram.Visible {
		r.drawHologram(w, hologram)
	}

	rl.PopMatrix()
	rl.EnableBackfaceCulling()
	rl.EndMode3D()
}

func (r *Renderer) drawPlayer(w *World) {
	if w.Player == nil {
		return
	}
	mesh := engine.GetComponent[*components.MeshRenderer](w.Player)
	if mesh == nil {
		return
	}
	var lift, stretch float32
	if w.Animator != nil {
		lift, stretch = w.Animator.Pose()
	}
	mesh.DrawAt(w.Player.Transform, lift, stretch)
	r.drawn++

	// facing marker
	t := w.Player.Transform
	nose := rl.Vector3Add(t.Position, rl.Vector3Scale(t.Forward(), PlayerSize.Z*0.75))
	nose = rl.Vector3Add(nose, rl.Vector3Scale(t.Up(), PlayerSize.Y*0.3))
	rl.DrawSphere(nose, 0.12, rl.DarkGray)
}

func (r *Renderer) drawHologram(w *World, h *gravity.Hologram) {
	ghost := components.NewMeshRenderer(components.MeshCube, r.HologramColor, PlayerSize)
	ghost.Wires = true
	t := engine.Transform{Position: h.Position, Rotation: h.Rotation, Scale: rl.Vector3{X: 1, Y: 1, Z: 1}}
	ghost.DrawAt(t, 0, 0)

	// arrow along the hologram's down: the candidate gravity
	if axis, ok := h.Candidate(); ok {
		end := rl.Vector3Add(h.Position, rl.Vector3Scale(axis.Vector(), 2))
		rl.DrawLine3D(h.Position, end, rl.Blue)
		rl.DrawSphere(end, 0.1, rl.Blue)
	}
}

func boundingRadius(g *engine.GameObject, mesh *components.MeshRenderer) float32 {
	s := g.Transform.Scale
	size := rl.Vector3{X: mesh.Size.X * s.X, Y: mesh.Size.Y * s.Y, Z: mesh.Size.Z * s.Z}
	if mesh.MeshType == components.MeshSphere {
		return size.X
	}
	return rl.Vector3Length(size) / 2
}
