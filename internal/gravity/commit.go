package gravity

import (
	"fmt"

	"gravityshift/internal/engine"
	"gravityshift/internal/geom"
	"gravityshift/internal/input"
	"gravityshift/internal/logger"

	"go.uber.org/zap"
)

// CommitController promotes the hologram's candidate axis into the live
// gravity state.
type CommitController struct {
	actions  *input.Actions
	gate     *input.Gate
	state    *State
	body     Body
	hologram *Hologram
	sink     GravitySink
	log      *zap.Logger

	// Committed fires after every applied commit with the new axis.
	Committed engine.EventWithArg[geom.Axis]

	commitID engine.ListenerID
}

func NewCommitController(actions *input.Actions, gate *input.Gate, state *State, body Body, hologram *Hologram, sink GravitySink, log *zap.Logger) (*CommitController, error) {
	var err error
	switch {
	case actions == nil:
		err = ErrNilActions
	case gate == nil:
		err = ErrNilGate
	case state == nil:
		err = ErrNilState
	case body == nil:
		err = ErrNilBody
	case hologram == nil:
		err = ErrNilHologram
	case sink == nil:
		err = ErrNilSink
	}
	if err != nil {
		return nil, fmt.Errorf("gravity: new commit controller: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &CommitController{
		actions:  actions,
		gate:     gate,
		state:    state,
		body:     body,
		hologram: hologram,
		sink:     sink,
		log:      log.Named("commit"),
	}, nil
}

// Start subscribes to commit input and pushes the current gravity to the
// sink.
func (c *CommitController) Start() {
	if c.commitID == 0 {
		c.commitID = c.actions.CommitRequested.AddListener(func() { c.Commit() })
	}
	c.Sync()
}

func (c *CommitController) Stop() {
	c.actions.CommitRequested.RemoveListener(c.commitID)
	c.commitID = 0
}

// Sync pushes the state's gravity vector to the sink, e.g. after the
// multiplier changed.
func (c *CommitController) Sync() {
	c.sink.SetGravity(c.state.Vector())
}

// Commit applies the candidate axis. Reports false, changing nothing, when
// the gate is closed or no candidate is pending.
func (c *CommitController) Commit() bool {
	if !c.gate.Enabled() {
		return false
	}
	axis, ok := c.hologram.Candidate()
	if !ok {
		return false
	}

	c.state.setAxis(axis)

	turn := geom.FromToRotation(c.body.Up(), c.hologram.Up())
	c.body.SetRotation(geom.Compose(turn, c.body.Rotation()))

	c.hologram.Hide()

	dir := axis.Vector()
	c.body.SetVelocity(geom.Project(c.body.Velocity(), dir))

	g := c.state.Vector()
	c.sink.SetGravity(g)

	c.log.Info("gravity shifted",
		zap.Stringer("axis", axis),
		logger.Vec3("gravity", g.X, g.Y, g.Z))
	c.Committed.Invoke(axis)
	return true
}
