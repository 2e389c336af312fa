package run

import (
	"fmt"
	"math"

	"gravityshift/internal/engine"
)

// Timer counts down from a limit in seconds.
type Timer struct {
	limit     float32
	remaining float32
	running   bool

	// Expired fires once when the countdown reaches zero.
	Expired engine.Event
}

func NewTimer(limit float32) *Timer {
	if limit < 0 {
		limit = 0
	}
	return &Timer{limit: limit, remaining: limit}
}

func (t *Timer) Start()             { t.running = true }
func (t *Timer) Stop()              { t.running = false }
func (t *Timer) Running() bool      { return t.running }
func (t *Timer) Remaining() float32 { return t.remaining }
func (t *Timer) Limit() float32     { return t.limit }

// Reset restores the full limit and stops the timer.
func (t *Timer) Reset() {
	t.remaining = t.limit
	t.running = false
}

func (t *Timer) Tick(deltaTime float32) {
	if !t.running {
		return
	}
	t.remaining -= deltaTime
	if t.remaining <= 0 {
		t.remaining = 0
		t.running = false
		t.Expired.Invoke()
	}
}

// String formats the remaining time as mm:ss.
func (t *Timer) String() string {
	return FormatClock(t.remaining)
}

func FormatClock(seconds float32) string {
	if seconds < 0 {
		seconds = 0
	}
	minutes := int(math.Floor(float64(seconds) / 60))
	secs := int(math.Floor(math.Mod(float64(seconds), 60)))
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}
