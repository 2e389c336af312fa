package game

import (
	"fmt"

	"gravityshift/internal/camera"
	"gravityshift/internal/config"
	"gravityshift/internal/gravity"
	"gravityshift/internal/input"
	"gravityshift/internal/locomotion"
	"gravityshift/internal/run"
	"gravityshift/internal/world"

	"github.com/google/wire"
	"go.uber.org/zap"
)

// ProviderSet builds the game graph from a config, a parsed level, a key
// source and a logger.
var ProviderSet = wire.NewSet(
	provideWorld,
	provideGravityState,
	gravity.NewHologram,
	providePreview,
	provideCommit,
	provideLocomotion,
	provideRig,
	provideAligner,
	provideRunManager,
	input.NewActions,
	input.NewGate,
	input.NewKeyboard,
	world.NewRenderer,
	NewHUD,
	newGame,
)

func provideWorld(level *world.Level, log *zap.Logger) (*world.World, error) {
	w := world.New(log)
	if err := w.Build(level); err != nil {
		return nil, fmt.Errorf("game: build world: %w", err)
	}
	return w, nil
}

func provideGravityState(cfg *config.Config) *gravity.State {
	return gravity.NewState(cfg.Gravity.Constant, cfg.Gravity.Multiplier)
}

func provideRig(w *world.World) *camera.Rig {
	return camera.NewRig(w.PlayerBody)
}

func provideAligner(w *world.World, rig *camera.Rig) (*camera.Aligner, error) {
	return camera.NewAligner(w.PlayerBody, rig)
}

func providePreview(actions *input.Actions, gate *input.Gate, state *gravity.State, w *world.World, rig *camera.Rig, hologram *gravity.Hologram, log *zap.Logger) (*gravity.PreviewController, error) {
	return gravity.NewPreviewController(actions, gate, state, w.PlayerBody, rig, hologram, log)
}

func provideCommit(actions *input.Actions, gate *input.Gate, state *gravity.State, w *world.World, hologram *gravity.Hologram, log *zap.Logger) (*gravity.CommitController, error) {
	return gravity.NewCommitController(actions, gate, state, w.PlayerBody, hologram, w.Physics, log)
}

func provideRunManager(cfg *config.Config, log *zap.Logger) *run.Manager {
	return run.NewManager(cfg.Run, log)
}

func provideLocomotion(cfg *config.Config, actions *input.Actions, gate *input.Gate, state *gravity.State, w *world.World, rig *camera.Rig, manager *run.Manager, log *zap.Logger) (*locomotion.Controller, error) {
	return locomotion.NewController(locomotion.Deps{
		Actions:  actions,
		Gate:     gate,
		Gravity:  state,
		Body:     w.PlayerBody,
		View:     rig,
		Probe:    w.Physics,
		Animator: w.Animator,
		Loss:     manager,
	}, cfg.Player, log)
}
