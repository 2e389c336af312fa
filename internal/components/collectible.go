package components

import (
	"gravityshift/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("Collectible", func(props map[string]any) (engine.Component, error) {
		c := NewCollectible()
		if tag, ok := props["targetTag"].(string); ok && tag != "" {
			c.TargetTag = tag
		}
		c.SpinSpeed = engine.Float32Prop(props, "spinSpeed", c.SpinSpeed)
		return c, nil
	})
}

// Collectible deactivates its object when a body with TargetTag enters its
// trigger and fires Collected once.
type Collectible struct {
	engine.BaseComponent
	TargetTag string
	SpinSpeed float32 // degrees per second around local up

	Collected engine.EventWithArg[*Collectible]
	collected bool
}

func NewCollectible() *Collectible {
	return &Collectible{
		TargetTag: "Player",
		SpinSpeed: 90,
	}
}

func (c *Collectible) IsCollected() bool {
	return c.collected
}

func (c *Collectible) Update(deltaTime float32) {
	g := c.GetGameObject()
	if g == nil || c.SpinSpeed == 0 {
		return
	}
	spin := rl.QuaternionFromAxisAngle(rl.Vector3{Y: 1}, c.SpinSpeed*rl.Deg2rad*deltaTime)
	g.Transform.Rotation = rl.QuaternionNormalize(rl.QuaternionMultiply(g.Transform.Rotation, spin))
}

func (c *Collectible) OnTriggerEnter(other *engine.GameObject) {
	if c.collected || other == nil || !other.HasTag(c.TargetTag) {
		return
	}
	c.collected = true
	if g := c.GetGameObject(); g != nil {
		g.Active = false
	}
	c.Collected.Invoke(c)
}
