// Package input turns device state into player actions and gates them.
package input

import (
	"gravityshift/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Actions is the player's action map. Controllers subscribe in Start and
// unsubscribe in Stop.
type Actions struct {
	MovementChanged  engine.EventWithArg[rl.Vector2]
	MovementCanceled engine.Event
	JumpRequested    engine.Event
	PreviewStarted   engine.EventWithArg[rl.Vector2]
	PreviewCanceled  engine.Event
	CommitRequested  engine.Event
}

func NewActions() *Actions {
	return &Actions{}
}

// Gate is the global switch consulted at the top of every input handler.
// Once disabled, Move, Jump, preview and commit have no effect.
type Gate struct {
	enabled bool

	// Disabled fires on the enabled to disabled transition only.
	Disabled engine.Event
}

func NewGate() *Gate {
	return &Gate{enabled: true}
}

func (g *Gate) Enabled() bool {
	return g.enabled
}

func (g *Gate) Enable() {
	g.enabled = true
}

// Disable closes the gate. Reports whether this call closed it.
func (g *Gate) Disable() bool {
	if !g.enabled {
		return false
	}
	g.enabled = false
	g.Disabled.Invoke()
	return true
}
