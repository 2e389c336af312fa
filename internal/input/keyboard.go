package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// KeyState is the slice of the raylib keyboard API the poller reads.
type KeyState interface {
	IsKeyDown(key int32) bool
	IsKeyPressed(key int32) bool
	IsKeyReleased(key int32) bool
}

// RaylibKeys reads the live raylib keyboard.
type RaylibKeys struct{}

func (RaylibKeys) IsKeyDown(key int32) bool     { return rl.IsKeyDown(key) }
func (RaylibKeys) IsKeyPressed(key int32) bool  { return rl.IsKeyPressed(key) }
func (RaylibKeys) IsKeyReleased(key int32) bool { return rl.IsKeyReleased(key) }

// Bindings maps keys to actions.
type Bindings struct {
	Forward, Back, Left, Right int32
	Jump                       int32
	PreviewModifier            []int32
	PreviewForward             int32
	PreviewBack                int32
	PreviewLeft                int32
	PreviewRight               int32
	Commit                     []int32
}

// DefaultBindings: WASD to move, Space to jump, hold Shift and tap an arrow
// to preview, E or Enter to commit.
func DefaultBindings() Bindings {
	return Bindings{
		Forward:         rl.KeyW,
		Back:            rl.KeyS,
		Left:            rl.KeyA,
		Right:           rl.KeyD,
		Jump:            rl.KeySpace,
		PreviewModifier: []int32{rl.KeyLeftShift, rl.KeyRightShift},
		PreviewForward:  rl.KeyUp,
		PreviewBack:     rl.KeyDown,
		PreviewLeft:     rl.KeyLeft,
		PreviewRight:    rl.KeyRight,
		Commit:          []int32{rl.KeyE, rl.KeyEnter},
	}
}

// Keyboard polls a KeyState once per frame and raises Actions events on
// edges, so handlers see performed/canceled pairs rather than levels.
type Keyboard struct {
	Keys     KeyState
	Bindings Bindings

	move       rl.Vector2
	previewing bool
}

func NewKeyboard(keys KeyState) *Keyboard {
	if keys == nil {
		keys = RaylibKeys{}
	}
	return &Keyboard{Keys: keys, Bindings: DefaultBindings()}
}

func (k *Keyboard) Poll(actions *Actions) {
	b := k.Bindings

	var move rl.Vector2
	if k.Keys.IsKeyDown(b.Forward) {
		move.Y += 1
	}
	if k.Keys.IsKeyDown(b.Back) {
		move.Y -= 1
	}
	if k.Keys.IsKeyDown(b.Right) {
		move.X += 1
	}
	if k.Keys.IsKeyDown(b.Left) {
		move.X -= 1
	}
	// Normalize diagonal movement
	if move.X != 0 && move.Y != 0 {
		move = rl.Vector2Normalize(move)
	}
	if move != k.move {
		if move.X == 0 && move.Y == 0 {
			actions.MovementCanceled.Invoke()
		} else {
			actions.MovementChanged.Invoke(move)
		}
		k.move = move
	}

	if k.Keys.IsKeyPressed(b.Jump) {
		actions.JumpRequested.Invoke()
	}

	modifier := k.anyDown(b.PreviewModifier)
	if modifier {
		if dir, ok := k.previewDirection(); ok {
			k.previewing = true
			actions.PreviewStarted.Invoke(dir)
		}
	} else if k.previewing {
		k.previewing = false
		actions.PreviewCanceled.Invoke()
	}

	if k.anyPressed(b.Commit) {
		k.previewing = false
		actions.CommitRequested.Invoke()
	}
}

func (k *Keyboard) previewDirection() (rl.Vector2, bool) {
	b := k.Bindings
	switch {
	case k.Keys.IsKeyPressed(b.PreviewForward):
		return rl.Vector2{Y: 1}, true
	case k.Keys.IsKeyPressed(b.PreviewBack):
		return rl.Vector2{Y: -1}, true
	case k.Keys.IsKeyPressed(b.PreviewLeft):
		return rl.Vector2{X: -1}, true
	case k.Keys.IsKeyPressed(b.PreviewRight):
		return rl.Vector2{X: 1}, true
	}
	return rl.Vector2{}, false
}

func (k *Keyboard) anyDown(keys []int32) bool {
	for _, key := range keys {
		if k.Keys.IsKeyDown(key) {
			return true
		}
	}
	return false
}

func (k *Keyboard) anyPressed(keys []int32) bool {
	for _, key := range keys {
		if k.Keys.IsKeyPressed(key) {
			return true
		}
	}
	return false
}
