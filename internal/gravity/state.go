// Package gravity owns the global gravity direction and the controllers that
// preview and commit changes to it.
package gravity

import (
	"errors"
	"sync"

	"gravityshift/internal/geom"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	// StandardConstant is Earth gravity in m/s^2.
	StandardConstant = 9.81

	MinMultiplier = 1
	MaxMultiplier = 10
)

var (
	ErrNilActions  = errors.New("gravity: nil input actions")
	ErrNilGate     = errors.New("gravity: nil input gate")
	ErrNilState    = errors.New("gravity: nil state")
	ErrNilBody     = errors.New("gravity: nil body")
	ErrNilView     = errors.New("gravity: nil view")
	ErrNilHologram = errors.New("gravity: nil hologram")
	ErrNilSink     = errors.New("gravity: nil gravity sink")
)

// DirectionProvider exposes the active gravity direction to readers that
// must not depend on the commit logic.
type DirectionProvider interface {
	Direction() rl.Vector3
}

// GravitySink receives the physics gravity acceleration.
type GravitySink interface {
	SetGravity(g rl.Vector3)
}

// Body is the rigid body the controllers reorient.
type Body interface {
	Position() rl.Vector3
	Rotation() rl.Quaternion
	SetRotation(q rl.Quaternion)
	Up() rl.Vector3
	Velocity() rl.Vector3
	SetVelocity(v rl.Vector3)
}

// View is the camera frame used to interpret directional input.
type View interface {
	Forward() rl.Vector3
	Right() rl.Vector3
}

// State is the single gravity state of a run. Only CommitController writes
// the axis; everything else reads.
type State struct {
	mu         sync.RWMutex
	axis       geom.Axis
	constant   float32
	multiplier float32
}

// NewState starts pulling down (-Y). Out of range multipliers are clamped.
func NewState(constant, multiplier float32) *State {
	if constant <= 0 {
		constant = StandardConstant
	}
	return &State{
		axis:       geom.NegY,
		constant:   constant,
		multiplier: clampMultiplier(multiplier),
	}
}

func (s *State) Axis() geom.Axis {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.axis
}

// Direction is the unit vector gravity pulls along.
func (s *State) Direction() rl.Vector3 {
	return s.Axis().Vector()
}

// Magnitude is constant * multiplier.
func (s *State) Magnitude() float32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.constant * s.multiplier
}

func (s *State) Multiplier() float32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.multiplier
}

// SetMultiplier clamps m to [MinMultiplier, MaxMultiplier].
func (s *State) SetMultiplier(m float32) {
	s.mu.Lock()
	s.multiplier = clampMultiplier(m)
	s.mu.Unlock()
}

// Vector is the physics gravity acceleration for the current state.
func (s *State) Vector() rl.Vector3 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return rl.Vector3Scale(s.axis.Vector(), s.constant*s.multiplier)
}

func (s *State) setAxis(a geom.Axis) {
	s.mu.Lock()
	s.axis = a
	s.mu.Unlock()
}

func clampMultiplier(m float32) float32 {
	if m < MinMultiplier {
		return MinMultiplier
	}
	if m > MaxMultiplier {
		return MaxMultiplier
	}
	return m
}
