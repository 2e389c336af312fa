// Package run keeps score for a single play session: collectibles, the
// countdown and the one end-of-run outcome.
package run

import (
	"gravityshift/internal/config"
	"gravityshift/internal/engine"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	WinMessage    = "You Win!"
	TimeUpMessage = "Game Over: Time's Up!"
)

type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLoss
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLoss:
		return "loss"
	}
	return "none"
}

// Progress is a snapshot for the HUD.
type Progress struct {
	ID            uuid.UUID
	Collected     int
	Target        int
	TimeRemaining float32
	Clock         string
	Ended         bool
	Outcome       Outcome
	Message       string
}

// Result is delivered once when the run ends.
type Result struct {
	ID      uuid.UUID
	Outcome Outcome
	Message string
}

type Manager struct {
	ID        uuid.UUID
	Timer     *Timer
	Collector *Collector

	// Ended fires once with the outcome.
	Ended engine.EventWithArg[Result]

	cfg     config.RunConfig
	log     *zap.Logger
	ended   bool
	outcome Outcome
	message string
	quitIn  float32
	quit    bool
}

func NewManager(cfg config.RunConfig, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	id := uuid.New()
	m := &Manager{
		ID:        id,
		Timer:     NewTimer(cfg.TimeLimit),
		Collector: NewCollector(cfg.CollectibleTarget),
		cfg:       cfg,
		log:       log.Named("run").With(zap.String("run_id", id.String())),
	}
	m.Timer.Expired.AddListener(m.OnTimerExpired)
	m.Collector.Reached.AddListener(m.OnCollectibleCountReached)
	return m
}

// Start resets and starts the countdown.
func (m *Manager) Start() {
	m.Timer.Reset()
	m.Timer.Start()
	m.log.Info("run started",
		zap.Int("target", m.Collector.Target()),
		zap.Float32("time_limit", m.Timer.Limit()))
}

// Update ticks the timer and, after the run ended, the wait before quitting.
func (m *Manager) Update(deltaTime float32) {
	m.Timer.Tick(deltaTime)
	if m.ended && !m.quit {
		m.quitIn -= deltaTime
		if m.quitIn <= 0 {
			m.quit = true
			m.log.Info("quitting after game over")
		}
	}
}

func (m *Manager) OnCollectibleCountReached() {
	m.Timer.Stop()
	m.EndRun(OutcomeWin, WinMessage)
}

func (m *Manager) OnTimerExpired() {
	m.EndRun(OutcomeLoss, TimeUpMessage)
}

// OnFreeFallLoss implements locomotion.LossSink.
func (m *Manager) OnFreeFallLoss(message string) {
	m.EndRun(OutcomeLoss, message)
}

// EndRun records the first outcome and starts the quit countdown. Later
// calls are ignored. Reports whether this call ended the run.
func (m *Manager) EndRun(outcome Outcome, message string) bool {
	if m.ended {
		return false
	}
	m.ended = true
	m.outcome = outcome
	m.message = message
	m.quitIn = m.cfg.WaitAfterGameOver
	m.Timer.Stop()

	m.log.Info("run ended",
		zap.Stringer("outcome", outcome),
		zap.String("message", message),
		zap.Int("collected", m.Collector.Count()))
	m.Ended.Invoke(Result{ID: m.ID, Outcome: outcome, Message: message})
	return true
}

// RequestQuit asks the driver to exit now.
func (m *Manager) RequestQuit() {
	if !m.quit {
		m.log.Info("quit requested")
	}
	m.quit = true
}

func (m *Manager) ShouldQuit() bool { return m.quit }
func (m *Manager) IsEnded() bool    { return m.ended }

func (m *Manager) Progress() Progress {
	return Progress{
		ID:            m.ID,
		Collected:     m.Collector.Count(),
		Target:        m.Collector.Target(),
		TimeRemaining: m.Timer.Remaining(),
		Clock:         m.Timer.String(),
		Ended:         m.ended,
		Outcome:       m.outcome,
		Message:       m.message,
	}
}
