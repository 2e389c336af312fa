package components

import (
	"math"

	"gravityshift/internal/engine"
)

func init() {
	engine.RegisterComponent("CharacterAnimator", func(props map[string]any) (engine.Component, error) {
		a := NewCharacterAnimator()
		a.BobHeight = engine.Float32Prop(props, "bobHeight", a.BobHeight)
		a.BobSpeed = engine.Float32Prop(props, "bobSpeed", a.BobSpeed)
		a.FallStretch = engine.Float32Prop(props, "fallStretch", a.FallStretch)
		return a, nil
	})
}

// CharacterAnimator turns the running/falling flags into a procedural pose
// for the renderer: a vertical bob while running and a stretch while
// falling.
type CharacterAnimator struct {
	engine.BaseComponent
	BobHeight   float32
	BobSpeed    float32 // cycles per second
	FallStretch float32 // extra scale along local up while falling

	running bool
	falling bool
	phase   float32
	bob     float32
	stretch float32
}

func NewCharacterAnimator() *CharacterAnimator {
	return &CharacterAnimator{
		BobHeight:   0.08,
		BobSpeed:    2.5,
		FallStretch: 0.15,
	}
}

// Animate sets the flags for this frame.
func (c *CharacterAnimator) Animate(running, falling bool) {
	c.running = running
	c.falling = falling
}

func (c *CharacterAnimator) IsRunning() bool { return c.running }
func (c *CharacterAnimator) IsFalling() bool { return c.falling }

func (c *CharacterAnimator) Update(deltaTime float32) {
	if c.running {
		c.phase += deltaTime * c.BobSpeed * 2 * math.Pi
		if c.phase > 2*math.Pi {
			c.phase -= 2 * math.Pi
		}
		c.bob = float32(math.Abs(math.Sin(float64(c.phase)))) * c.BobHeight
	} else {
		c.phase = 0
		c.bob = 0
	}

	target := float32(0)
	if c.falling {
		target = c.FallStretch
	}
	// ease toward the target so the stretch doesn't pop
	c.stretch += (target - c.stretch) * clamp01(deltaTime*10)
}

// Pose is the offset along local up and the extra up-scale to draw with.
func (c *CharacterAnimator) Pose() (bob, stretch float32) {
	return c.bob, c.stretch
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
