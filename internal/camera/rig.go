package camera

import (
	"math"

	"gravityshift/internal/geom"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Rig is the rendered third-person camera. It takes its heading from the
// aligned rotation and its screen up from the character, and sits behind and
// above the character in that frame.
type Rig struct {
	Subject     Subject
	Distance    float32 // behind the focus point
	Height      float32 // above the focus point
	FocusHeight float32 // focus point above the character origin
	Fovy        float32
	Sharpness   float32 // heading follow rate per second, 0 snaps

	rotation rl.Quaternion
	heading  rl.Vector3
	up       rl.Vector3
	position rl.Vector3
	target   rl.Vector3
}

func NewRig(subject Subject) *Rig {
	r := &Rig{
		Subject:     subject,
		Distance:    6,
		Height:      2.5,
		FocusHeight: 1,
		Fovy:        60,
		Sharpness:   8,
		rotation:    rl.QuaternionIdentity(),
	}
	r.Snap()
	return r
}

// SetRotation implements Target.
func (r *Rig) SetRotation(q rl.Quaternion) {
	r.rotation = q
}

func (r *Rig) Rotation() rl.Quaternion {
	return r.rotation
}

// Snap jumps to the current aligned heading without smoothing.
func (r *Rig) Snap() {
	r.up = rl.Vector3Normalize(r.Subject.Up())
	if h, ok := r.alignedHeading(); ok {
		r.heading = h
	} else {
		r.heading = rl.Vector3Normalize(r.Subject.Forward())
	}
	r.place()
}

// Update eases the heading toward the aligned one and recomputes the pose.
func (r *Rig) Update(deltaTime float32) {
	r.up = rl.Vector3Normalize(r.Subject.Up())
	aligned, ok := r.alignedHeading()
	if ok {
		r.heading = r.follow(aligned, deltaTime)
	}
	// keep the heading on the plane of the current up after a shift
	flat := geom.ProjectOnPlane(r.heading, r.up)
	if !geom.NearZero(flat) {
		r.heading = rl.Vector3Normalize(flat)
	} else if ok {
		r.heading = aligned
	}
	r.place()
}

func (r *Rig) alignedHeading() (rl.Vector3, bool) {
	f := geom.ProjectOnPlane(geom.Rotate(r.rotation, rl.Vector3{Z: 1}), r.up)
	if geom.NearZero(f) {
		return rl.Vector3{}, false
	}
	return rl.Vector3Normalize(f), true
}

func (r *Rig) follow(aligned rl.Vector3, deltaTime float32) rl.Vector3 {
	if r.Sharpness <= 0 || geom.NearZero(r.heading) {
		return aligned
	}
	t := 1 - float32(math.Exp(float64(-r.Sharpness*deltaTime)))
	h := rl.Vector3Lerp(r.heading, aligned, t)
	if geom.NearZero(h) {
		// half turn; lerp passes through zero
		return aligned
	}
	return rl.Vector3Normalize(h)
}

func (r *Rig) place() {
	focus := rl.Vector3Add(r.Subject.Position(), rl.Vector3Scale(r.up, r.FocusHeight))
	r.target = focus
	r.position = rl.Vector3Add(
		rl.Vector3Subtract(focus, rl.Vector3Scale(r.heading, r.Distance)),
		rl.Vector3Scale(r.up, r.Height),
	)
}

func (r *Rig) Position() rl.Vector3 { return r.position }

// Forward is the view direction, pitched down toward the character.
func (r *Rig) Forward() rl.Vector3 {
	return rl.Vector3Normalize(rl.Vector3Subtract(r.target, r.position))
}

// Right is up x forward, the character frame's convention.
func (r *Rig) Right() rl.Vector3 {
	right := rl.Vector3CrossProduct(r.up, r.Forward())
	if geom.NearZero(right) {
		return geom.Rotate(r.rotation, rl.Vector3{X: 1})
	}
	return rl.Vector3Normalize(right)
}

func (r *Rig) Up() rl.Vector3 { return r.up }

// Camera3D returns the raylib camera for this pose. The world is drawn
// mirrored on X (see Mirror) so that the right-handed renderer shows the
// character frame's right on screen right.
func (r *Rig) Camera3D() rl.Camera3D {
	return rl.Camera3D{
		Position:   Mirror(r.position),
		Target:     Mirror(r.target),
		Up:         Mirror(r.up),
		Fovy:       r.Fovy,
		Projection: rl.CameraPerspective,
	}
}

// Mirror flips X. Geometry drawn inside Begin/EndMode3D must be scaled by
// (-1, 1, 1) to match Camera3D.
func Mirror(v rl.Vector3) rl.Vector3 {
	return rl.Vector3{X: -v.X, Y: v.Y, Z: v.Z}
}
