// Package camera keeps the view upright relative to the character's gravity
// and places the rendered third-person camera.
package camera

import (
	"errors"
	"fmt"

	"gravityshift/internal/geom"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	ErrNilSubject = errors.New("camera: nil subject")
	ErrNilTarget  = errors.New("camera: nil target")
)

// Subject is the character the camera follows.
type Subject interface {
	Position() rl.Vector3
	Up() rl.Vector3
	Forward() rl.Vector3
}

// Target receives the aligned camera rotation.
type Target interface {
	SetRotation(q rl.Quaternion)
}

// Aligner derives the camera rotation from the character's frame every late
// update. No smoothing; the body is already smoothed by locomotion.
type Aligner struct {
	subject Subject
	target  Target
}

func NewAligner(subject Subject, target Target) (*Aligner, error) {
	if subject == nil {
		return nil, fmt.Errorf("camera: new aligner: %w", ErrNilSubject)
	}
	if target == nil {
		return nil, fmt.Errorf("camera: new aligner: %w", ErrNilTarget)
	}
	return &Aligner{subject: subject, target: target}, nil
}

// LateUpdate looks along the character's forward with the character's down
// as camera up. Skips the frame and reports false when forward is parallel
// to the gravity axis.
func (a *Aligner) LateUpdate() bool {
	gravityUp := rl.Vector3Negate(a.subject.Up())
	forward := geom.ProjectOnPlane(a.subject.Forward(), gravityUp)
	if geom.NearZero(forward) {
		return false
	}
	rotation, ok := geom.LookRotation(forward, gravityUp)
	if !ok {
		return false
	}
	a.target.SetRotation(rotation)
	return true
}
