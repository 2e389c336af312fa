package gravity

import (
	"gravityshift/internal/geom"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Hologram is the ghost pose showing where the character would stand if the
// candidate axis were committed.
type Hologram struct {
	Visible  bool
	Position rl.Vector3
	Rotation rl.Quaternion

	candidate    geom.Axis
	hasCandidate bool
}

func NewHologram() *Hologram {
	return &Hologram{Rotation: rl.QuaternionIdentity()}
}

func (h *Hologram) Up() rl.Vector3 {
	return geom.Rotate(h.Rotation, rl.Vector3{Y: 1})
}

// Candidate is the axis a commit would adopt, if any.
func (h *Hologram) Candidate() (geom.Axis, bool) {
	return h.candidate, h.hasCandidate
}

func (h *Hologram) show(position rl.Vector3, rotation rl.Quaternion) {
	h.Visible = true
	h.Position = position
	h.Rotation = rotation
}

func (h *Hologram) setCandidate(a geom.Axis) {
	h.candidate = a
	h.hasCandidate = true
}

// Hide hides the hologram and drops its candidate. Safe to call repeatedly.
func (h *Hologram) Hide() {
	h.Visible = false
	h.hasCandidate = false
}
