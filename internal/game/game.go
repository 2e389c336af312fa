package game

import (
	"fmt"
	"time"

	"gravityshift/internal/camera"
	"gravityshift/internal/config"
	"gravityshift/internal/geom"
	"gravityshift/internal/gravity"
	"gravityshift/internal/input"
	"gravityshift/internal/locomotion"
	"gravityshift/internal/run"
	"gravityshift/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// maxFixedSteps bounds the fixed-step catch-up per frame.
const maxFixedSteps = 5

type Game struct {
	Config *config.Config

	World      *world.World
	Gravity    *gravity.State
	Preview    *gravity.PreviewController
	Commit     *gravity.CommitController
	Locomotion *locomotion.Controller
	Aligner    *camera.Aligner
	Rig        *camera.Rig
	Manager    *run.Manager

	Actions  *input.Actions
	Gate     *input.Gate
	Keyboard *input.Keyboard

	Renderer *world.Renderer
	HUD      *HUD

	DebugMode bool

	log         *zap.Logger
	watcher     *config.Watcher
	accumulator float32
	started     bool

	updateMs float64
	drawMs   float64
}

func newGame(
	cfg *config.Config,
	w *world.World,
	state *gravity.State,
	preview *gravity.PreviewController,
	commit *gravity.CommitController,
	loco *locomotion.Controller,
	aligner *camera.Aligner,
	rig *camera.Rig,
	manager *run.Manager,
	actions *input.Actions,
	gate *input.Gate,
	keyboard *input.Keyboard,
	renderer *world.Renderer,
	hud *HUD,
	log *zap.Logger,
) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	return &Game{
		Config:     cfg,
		World:      w,
		Gravity:    state,
		Preview:    preview,
		Commit:     commit,
		Locomotion: loco,
		Aligner:    aligner,
		Rig:        rig,
		Manager:    manager,
		Actions:    actions,
		Gate:       gate,
		Keyboard:   keyboard,
		Renderer:   renderer,
		HUD:        hud,
		log:        log.Named("game"),
	}
}

// New loads the configured level and assembles a game reading the raylib
// keyboard.
func New(cfg *config.Config, log *zap.Logger) (*Game, error) {
	level, err := world.LoadLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	return Initialize(cfg, level, input.RaylibKeys{}, log)
}

// Start subscribes every controller and starts the run clock.
func (g *Game) Start() {
	if g.started {
		return
	}
	g.started = true

	g.Preview.Start()
	g.Commit.Start()
	g.Locomotion.Start()

	for _, c := range g.World.Collectibles {
		g.Manager.Collector.Track(c)
	}
	g.Manager.Ended.AddListener(g.onRunEnded)
	g.Commit.Committed.AddListener(func(a geom.Axis) {
		g.log.Debug("gravity shifted", zap.Stringer("axis", a))
	})

	g.Manager.Start()
	g.log.Info("game started",
		zap.String("level", g.World.Level.Name),
		zap.Stringer("run_id", g.Manager.ID))
}

// Stop unsubscribes the controllers. The game can not be restarted.
func (g *Game) Stop() {
	if !g.started {
		return
	}
	g.Locomotion.Stop()
	g.Commit.Stop()
	g.Preview.Stop()
	g.Manager.Ended.RemoveAllListeners()
	g.Commit.Committed.RemoveAllListeners()
	if g.watcher != nil {
		g.watcher.Close()
		g.watcher = nil
	}
}

func (g *Game) onRunEnded(result run.Result) {
	g.Gate.Disable()
	g.log.Info("run ended",
		zap.Stringer("outcome", result.Outcome),
		zap.String("message", result.Message))
}

// Step advances one rendered frame: Update, as many fixed steps as the
// accumulated time allows, then LateUpdate.
func (g *Game) Step(deltaTime float32) {
	start := time.Now()

	g.pollConfig()
	g.Update(deltaTime)

	fixed := g.Config.Window.FixedStep
	g.accumulator += deltaTime
	steps := 0
	for g.accumulator >= fixed && steps < maxFixedSteps {
		g.FixedUpdate(fixed)
		g.accumulator -= fixed
		steps++
	}
	if steps == maxFixedSteps {
		g.accumulator = 0
	}

	g.LateUpdate(deltaTime)
	g.updateMs = float64(time.Since(start).Microseconds()) / 1000.0
}

func (g *Game) Update(deltaTime float32) {
	if g.Keyboard != nil {
		g.Keyboard.Poll(g.Actions)
		if g.Keyboard.Keys.IsKeyPressed(rl.KeyEscape) {
			g.Manager.RequestQuit()
		}
		if g.Keyboard.Keys.IsKeyPressed(rl.KeyF1) {
			g.DebugMode = !g.DebugMode
		}
	}

	g.Preview.Update()
	g.Locomotion.Update()
	g.Manager.Update(deltaTime)
	g.World.Update(deltaTime)
}

func (g *Game) FixedUpdate(deltaTime float32) {
	g.Locomotion.FixedUpdate(deltaTime)
	g.World.FixedUpdate(deltaTime)
}

func (g *Game) LateUpdate(deltaTime float32) {
	g.Aligner.LateUpdate()
	g.Rig.Update(deltaTime)
}

// Watch hot reloads tunables from path while the game runs.
func (g *Game) Watch(path string) error {
	w, err := config.Watch(path, g.log)
	if err != nil {
		return err
	}
	g.watcher = w
	return nil
}

func (g *Game) pollConfig() {
	if g.watcher == nil {
		return
	}
	select {
	case cfg := <-g.watcher.Updates:
		g.ApplyConfig(cfg)
	default:
	}
}

// ApplyConfig swaps the player tunables and the gravity multiplier. Window,
// level and run settings only take effect on the next launch.
func (g *Game) ApplyConfig(cfg *config.Config) {
	g.Locomotion.SetConfig(cfg.Player)
	g.Gravity.SetMultiplier(cfg.Gravity.Multiplier)
	g.Commit.Sync()

	next := *g.Config
	next.Player = cfg.Player
	next.Gravity.Multiplier = g.Gravity.Multiplier()
	if cfg.Window.FixedStep > 0 {
		next.Window.FixedStep = cfg.Window.FixedStep
	}
	g.Config = &next

	g.log.Info("config reloaded",
		zap.Float32("move_speed", cfg.Player.MoveSpeed),
		zap.Float32("gravity_multiplier", g.Gravity.Multiplier()))
}

// Run opens the window and blocks until the run asks to quit or the window
// is closed.
func (g *Game) Run() {
	win := g.Config.Window
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(win.Width), int32(win.Height), win.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(win.TargetFPS))
	rl.SetExitKey(rl.KeyNull)

	g.HUD.Init()
	g.Start()
	defer g.Stop()

	for !rl.WindowShouldClose() && !g.Manager.ShouldQuit() {
		g.Step(rl.GetFrameTime())
		g.Draw()
	}
	g.log.Info("game closed", zap.Stringer("run_id", g.Manager.ID))
}

func (g *Game) Draw() {
	rl.BeginDrawing()

	drawStart := time.Now()
	g.Renderer.Draw(g.World, g.Rig, g.Preview.Hologram())
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	if g.HUD.Draw(g.Manager.Progress(), g.Gate.Enabled()) {
		g.Manager.RequestQuit()
	}
	if g.DebugMode {
		g.HUD.DrawDebug(g.debugLines())
	}
	rl.EndDrawing()
}

func (g *Game) debugLines() []string {
	pos := g.World.PlayerBody.Position()
	return []string{
		fmt.Sprintf("Gravity: %s x%.1f", g.Gravity.Axis(), g.Gravity.Multiplier()),
		fmt.Sprintf("Position: (%.2f, %.2f, %.2f)", pos.X, pos.Y, pos.Z),
		fmt.Sprintf("Grounded: %t  Falling: %t", g.Locomotion.IsGrounded(), g.Locomotion.IsFalling()),
		fmt.Sprintf("Drawn: %d", g.Renderer.Drawn()),
		fmt.Sprintf("Update: %.2f ms", g.updateMs),
		fmt.Sprintf("Draw:   %.2f ms", g.drawMs),
	}
}
