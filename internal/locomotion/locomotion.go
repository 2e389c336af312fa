// Package locomotion moves the character relative to the active gravity axis
// and tracks whether it stands, falls or has fallen out of the level.
package locomotion

import (
	"errors"
	"fmt"

	"gravityshift/internal/components"
	"gravityshift/internal/config"
	"gravityshift/internal/engine"
	"gravityshift/internal/geom"
	"gravityshift/internal/gravity"
	"gravityshift/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

const (
	// FreeFallMessage is reported to the loss sink on a free-fall loss.
	FreeFallMessage = "Game Over: Freely Falling!"

	moveInputThresholdSqr = 0.01
	moveDirThresholdSqr   = 0.01
	runningThreshold      = 0.1
)

var (
	ErrNilActions  = errors.New("locomotion: nil input actions")
	ErrNilGate     = errors.New("locomotion: nil input gate")
	ErrNilGravity  = errors.New("locomotion: nil gravity direction")
	ErrNilBody     = errors.New("locomotion: nil body")
	ErrNilView     = errors.New("locomotion: nil view")
	ErrNilProbe    = errors.New("locomotion: nil probe")
	ErrNilAnimator = errors.New("locomotion: nil animator")
	ErrNilLossSink = errors.New("locomotion: nil loss sink")
)

// Body is the character's rigid body.
type Body interface {
	Position() rl.Vector3
	MovePosition(p rl.Vector3)
	Rotation() rl.Quaternion
	SetRotation(q rl.Quaternion)
	Up() rl.Vector3
	Forward() rl.Vector3
	Right() rl.Vector3
	AddImpulse(impulse rl.Vector3)
}

// Probe answers the spatial queries behind the ground checks.
type Probe interface {
	CheckSphere(center rl.Vector3, radius float32, mask components.LayerMask) bool
	RaycastAny(origin, direction rl.Vector3, maxDistance float32, mask components.LayerMask) bool
}

type Animator interface {
	Animate(running, falling bool)
}

// LossSink ends the run when the character can no longer reach any surface.
type LossSink interface {
	OnFreeFallLoss(message string)
}

// Deps groups the collaborators of a Controller.
type Deps struct {
	Actions  *input.Actions
	Gate     *input.Gate
	Gravity  gravity.DirectionProvider
	Body     Body
	View     gravity.View
	Probe    Probe
	Animator Animator
	Loss     LossSink
}

func (d Deps) validate() error {
	switch {
	case d.Actions == nil:
		return ErrNilActions
	case d.Gate == nil:
		return ErrNilGate
	case d.Gravity == nil:
		return ErrNilGravity
	case d.Body == nil:
		return ErrNilBody
	case d.View == nil:
		return ErrNilView
	case d.Probe == nil:
		return ErrNilProbe
	case d.Animator == nil:
		return ErrNilAnimator
	case d.Loss == nil:
		return ErrNilLossSink
	}
	return nil
}

type Controller struct {
	Deps
	cfg        config.PlayerConfig
	GroundMask components.LayerMask
	log        *zap.Logger

	move        rl.Vector2
	grounded    bool
	falling     bool
	freeFalling bool
	running     bool

	moveID, cancelID, jumpID, gateID engine.ListenerID
}

func NewController(deps Deps, cfg config.PlayerConfig, log *zap.Logger) (*Controller, error) {
	if err := deps.validate(); err != nil {
		return nil, fmt.Errorf("locomotion: new controller: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		Deps:       deps,
		cfg:        cfg,
		GroundMask: components.MaskOf(components.LayerGround),
		log:        log.Named("locomotion"),
	}, nil
}

// SetConfig swaps the tunables, e.g. on a config reload.
func (c *Controller) SetConfig(cfg config.PlayerConfig) {
	c.cfg = cfg
}

func (c *Controller) Config() config.PlayerConfig {
	return c.cfg
}

func (c *Controller) Start() {
	if c.moveID != 0 {
		return
	}
	c.moveID = c.Actions.MovementChanged.AddListener(c.SetMoveInput)
	c.cancelID = c.Actions.MovementCanceled.AddListener(c.ClearMoveInput)
	c.jumpID = c.Actions.JumpRequested.AddListener(func() { c.Jump() })
	c.gateID = c.Gate.Disabled.AddListener(c.ClearMoveInput)
}

func (c *Controller) Stop() {
	c.Actions.MovementChanged.RemoveListener(c.moveID)
	c.Actions.MovementCanceled.RemoveListener(c.cancelID)
	c.Actions.JumpRequested.RemoveListener(c.jumpID)
	c.Gate.Disabled.RemoveListener(c.gateID)
	c.moveID, c.cancelID, c.jumpID, c.gateID = 0, 0, 0, 0
}

func (c *Controller) SetMoveInput(v rl.Vector2) {
	if !c.Gate.Enabled() {
		return
	}
	c.move = v
}

func (c *Controller) ClearMoveInput() {
	c.move = rl.Vector2{}
}

func (c *Controller) MoveInput() rl.Vector2 { return c.move }
func (c *Controller) IsGrounded() bool      { return c.grounded }
func (c *Controller) IsFalling() bool       { return c.falling }
func (c *Controller) IsFreeFalling() bool   { return c.freeFalling }
func (c *Controller) IsRunning() bool       { return c.running }

// Update runs the per-frame checks in order: grounded, falling, free fall,
// then animation flags.
func (c *Controller) Update() {
	c.checkGrounded()
	c.checkFalling()
	c.checkFreeFall()
	c.updateAnimation()
}

// FixedUpdate moves the body for one physics step.
func (c *Controller) FixedUpdate(deltaTime float32) {
	if !c.Gate.Enabled() {
		return
	}
	if rl.Vector2LengthSqr(c.move) <= moveInputThresholdSqr {
		return
	}
	c.Move(deltaTime)
}

// Move turns the body toward the camera-relative input direction on the
// plane perpendicular to gravity and translates it. A closed gate leaves the
// body in place.
func (c *Controller) Move(deltaTime float32) {
	if !c.Gate.Enabled() {
		return
	}
	gravityUp := rl.Vector3Negate(c.Gravity.Direction())
	raw := rl.Vector3Add(
		rl.Vector3Scale(c.View.Forward(), c.move.Y),
		rl.Vector3Scale(c.View.Right(), c.move.X),
	)
	moveDir := geom.ProjectOnPlane(raw, gravityUp)
	if geom.NearZero(moveDir) {
		return
	}
	moveDir = rl.Vector3Normalize(moveDir)
	if rl.Vector3LengthSqr(moveDir) < moveDirThresholdSqr {
		return
	}

	if target, ok := geom.LookRotation(moveDir, gravityUp); ok {
		c.Body.SetRotation(geom.Slerp(c.Body.Rotation(), target, c.cfg.TurnSmoothTime))
	}
	step := rl.Vector3Scale(moveDir, c.cfg.MoveSpeed*deltaTime)
	c.Body.MovePosition(rl.Vector3Add(c.Body.Position(), step))
}

// Jump applies an impulse against gravity. Reports whether it jumped.
func (c *Controller) Jump() bool {
	if !c.Gate.Enabled() || !c.grounded {
		return false
	}
	impulse := rl.Vector3Scale(rl.Vector3Negate(c.Gravity.Direction()), c.cfg.JumpForce)
	c.Body.AddImpulse(impulse)
	c.log.Debug("jump")
	return true
}

// GroundCheckPoint sits GroundCheckOffset below the body origin along body
// down.
func (c *Controller) GroundCheckPoint() rl.Vector3 {
	down := rl.Vector3Negate(c.Body.Up())
	return rl.Vector3Add(c.Body.Position(), rl.Vector3Scale(down, c.cfg.GroundCheckOffset))
}

func (c *Controller) checkGrounded() {
	c.grounded = c.Probe.CheckSphere(c.GroundCheckPoint(), c.cfg.GroundCheckRadius, c.GroundMask)
}

func (c *Controller) checkFalling() {
	down := rl.Vector3Negate(c.Body.Up())
	groundBelow := c.Probe.RaycastAny(c.GroundCheckPoint(), down, c.cfg.FallDistanceThreshold, c.GroundMask)
	c.falling = !groundBelow && !c.grounded
}

// checkFreeFall fans five rays over the body frame: down, then right, left,
// forward and back. If none reaches ground the run is lost. Fires once.
func (c *Controller) checkFreeFall() {
	if c.freeFalling {
		return
	}
	origin := c.Body.Position()
	dist := c.cfg.FreeFallProbeDistance
	up, right, forward := c.Body.Up(), c.Body.Right(), c.Body.Forward()

	if c.Probe.RaycastAny(origin, rl.Vector3Negate(up), dist, c.GroundMask) {
		return
	}
	for _, dir := range [...]rl.Vector3{right, rl.Vector3Negate(right), forward, rl.Vector3Negate(forward)} {
		if c.Probe.RaycastAny(origin, dir, dist, c.GroundMask) {
			return
		}
	}

	c.freeFalling = true
	c.log.Info("free fall detected", zap.String("message", FreeFallMessage))
	c.Loss.OnFreeFallLoss(FreeFallMessage)
	c.Gate.Disable()
}

func (c *Controller) updateAnimation() {
	c.running = rl.Vector2Length(c.move) >= runningThreshold && !c.falling
	c.Animator.Animate(c.running, c.falling)
}
