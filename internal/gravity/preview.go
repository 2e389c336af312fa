package gravity

import (
	"fmt"

	"gravityshift/internal/engine"
	"gravityshift/internal/geom"
	"gravityshift/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// sameAxisTolerance is how close the candidate must be to body down to count
// as "no change".
const sameAxisTolerance = 1e-4

// PreviewController turns a directional preview input into a candidate axis
// and poses the hologram for it.
type PreviewController struct {
	actions  *input.Actions
	gate     *input.Gate
	gravity  DirectionProvider
	body     Body
	view     View
	hologram *Hologram
	log      *zap.Logger

	lastPosition rl.Vector3
	startID      engine.ListenerID
	cancelID     engine.ListenerID
	gateID       engine.ListenerID
}

func NewPreviewController(actions *input.Actions, gate *input.Gate, gravity DirectionProvider, body Body, view View, hologram *Hologram, log *zap.Logger) (*PreviewController, error) {
	var err error
	switch {
	case actions == nil:
		err = ErrNilActions
	case gate == nil:
		err = ErrNilGate
	case gravity == nil:
		err = ErrNilState
	case body == nil:
		err = ErrNilBody
	case view == nil:
		err = ErrNilView
	case hologram == nil:
		err = ErrNilHologram
	}
	if err != nil {
		return nil, fmt.Errorf("gravity: new preview controller: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &PreviewController{
		actions:      actions,
		gate:         gate,
		gravity:      gravity,
		body:         body,
		view:         view,
		hologram:     hologram,
		log:          log.Named("preview"),
		lastPosition: body.Position(),
	}, nil
}

func (c *PreviewController) Hologram() *Hologram {
	return c.hologram
}

// Start subscribes to the preview inputs. Closing the gate force-hides the
// hologram.
func (c *PreviewController) Start() {
	if c.startID != 0 {
		return
	}
	c.startID = c.actions.PreviewStarted.AddListener(c.Preview)
	c.cancelID = c.actions.PreviewCanceled.AddListener(c.Cancel)
	c.gateID = c.gate.Disabled.AddListener(c.hologram.Hide)
}

func (c *PreviewController) Stop() {
	c.actions.PreviewStarted.RemoveListener(c.startID)
	c.actions.PreviewCanceled.RemoveListener(c.cancelID)
	c.gate.Disabled.RemoveListener(c.gateID)
	c.startID, c.cancelID, c.gateID = 0, 0, 0
}

// Preview shows the hologram at the character and, for an exact cardinal
// input, snaps the matching camera direction to a candidate axis.
func (c *PreviewController) Preview(dir rl.Vector2) {
	if !c.gate.Enabled() {
		return
	}

	position := c.body.Position()
	c.hologram.show(position, c.body.Rotation())
	c.lastPosition = position

	raw, ok := c.rawDirection(dir)
	if !ok {
		return
	}
	axis, ok := geom.ClosestAxis(raw)
	if !ok {
		return
	}
	c.hologram.setCandidate(axis)

	// Candidate equal to body down means no change of pose.
	bodyDown := rl.Vector3Negate(c.body.Up())
	if rl.Vector3LengthSqr(rl.Vector3Subtract(axis.Vector(), bodyDown)) < sameAxisTolerance {
		c.log.Debug("preview keeps current axis", zap.Stringer("axis", axis))
		return
	}
	target := axis.Opposite().Vector()
	turn := geom.FromToRotation(c.hologram.Up(), target)
	c.hologram.Rotation = geom.Compose(turn, c.hologram.Rotation)
	c.log.Debug("preview", zap.Stringer("axis", axis))
}

// rawDirection maps the four exact cardinal inputs to world directions.
// Anything else selects nothing.
func (c *PreviewController) rawDirection(dir rl.Vector2) (rl.Vector3, bool) {
	right := c.view.Right()
	gravityUp := rl.Vector3Negate(c.gravity.Direction())
	forward := geom.ProjectOnPlane(c.view.Forward(), gravityUp)

	switch dir {
	case rl.Vector2{X: 1}:
		return right, true
	case rl.Vector2{X: -1}:
		return rl.Vector3Negate(right), true
	case rl.Vector2{Y: 1}:
		if geom.NearZero(forward) {
			return rl.Vector3{}, false
		}
		return rl.Vector3Normalize(forward), true
	case rl.Vector2{Y: -1}:
		if geom.NearZero(forward) {
			return rl.Vector3{}, false
		}
		return rl.Vector3Negate(rl.Vector3Normalize(forward)), true
	}
	return rl.Vector3{}, false
}

// Cancel hides the hologram.
func (c *PreviewController) Cancel() {
	if c.hologram.Visible {
		c.log.Debug("preview canceled")
	}
	c.hologram.Hide()
}

// Update moves a visible hologram with the character when it has moved.
// Rotation only changes on preview input.
func (c *PreviewController) Update() {
	position := c.body.Position()
	if position == c.lastPosition {
		return
	}
	c.lastPosition = position
	if c.hologram.Visible {
		c.hologram.Position = position
	}
}
