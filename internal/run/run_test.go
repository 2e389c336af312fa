package run

import (
	"testing"

	"gravityshift/internal/components"
	"gravityshift/internal/config"
	"gravityshift/internal/engine"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager(target int, limit, wait float32) *Manager {
	return NewManager(config.RunConfig{
		CollectibleTarget: target,
		TimeLimit:         limit,
		WaitAfterGameOver: wait,
	}, nil)
}

func TestFormatClock(t *testing.T) {
	cases := map[float32]string{
		120:   "02:00",
		119.5: "01:59",
		61:    "01:01",
		59.99: "00:59",
		0:     "00:00",
		-3:    "00:00",
		600:   "10:00",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatClock(in), "FormatClock(%v)", in)
	}
}

func TestTimerExpiresOnce(t *testing.T) {
	timer := NewTimer(1)
	fired := 0
	timer.Expired.AddListener(func() { fired++ })

	timer.Tick(5)
	assert.Zero(t, fired, "stopped timer doesn't tick")

	timer.Start()
	timer.Tick(0.6)
	assert.InDelta(t, 0.4, timer.Remaining(), 1e-6)
	timer.Tick(0.6)
	timer.Tick(0.6)
	assert.Equal(t, 1, fired)
	assert.Zero(t, timer.Remaining())
	assert.False(t, timer.Running())

	timer.Reset()
	assert.Equal(t, float32(1), timer.Remaining())
}

func TestCollectorReachedOnce(t *testing.T) {
	c := NewCollector(2)
	reached := 0
	c.Reached.AddListener(func() { reached++ })

	c.Collect()
	assert.Equal(t, "Collected Cubes: 1 / 2", c.String())
	c.Collect()
	c.Collect()
	assert.Equal(t, 1, reached)
	assert.Equal(t, 3, c.Count())
}

func TestCollectorTracksCollectible(t *testing.T) {
	c := NewCollector(1)
	cube := engine.NewGameObject("Cube")
	collectible := components.NewCollectible()
	cube.AddComponent(collectible)
	c.Track(collectible)

	player := engine.NewGameObject("Player")
	player.Tags = []string{"Player"}
	collectible.OnTriggerEnter(player)
	collectible.OnTriggerEnter(player)

	assert.Equal(t, 1, c.Count())
	assert.False(t, cube.Active)
}

func TestManagerWin(t *testing.T) {
	m := newManager(2, 120, 5)
	var results []Result
	m.Ended.AddListener(func(r Result) { results = append(results, r) })
	m.Start()

	m.Update(10)
	m.Collector.Collect()
	m.Collector.Collect()

	require.Len(t, results, 1)
	assert.Equal(t, OutcomeWin, results[0].Outcome)
	assert.Equal(t, WinMessage, results[0].Message)
	assert.NotEqual(t, uuid.Nil, results[0].ID)
	assert.False(t, m.Timer.Running(), "win stops the timer")

	p := m.Progress()
	assert.True(t, p.Ended)
	assert.Equal(t, 2, p.Collected)
	assert.Equal(t, "01:50", p.Clock)
}

func TestManagerTimeUp(t *testing.T) {
	m := newManager(10, 3, 5)
	m.Start()

	m.Update(1)
	assert.False(t, m.IsEnded())
	m.Update(2.5)

	p := m.Progress()
	assert.True(t, p.Ended)
	assert.Equal(t, OutcomeLoss, p.Outcome)
	assert.Equal(t, TimeUpMessage, p.Message)
}

func TestManagerFirstOutcomeWins(t *testing.T) {
	m := newManager(1, 2, 5)
	ended := 0
	m.Ended.AddListener(func(Result) { ended++ })
	m.Start()

	m.OnFreeFallLoss("Game Over: Freely Falling!")
	m.Collector.Collect()
	m.Update(10)

	assert.Equal(t, 1, ended)
	assert.Equal(t, "Game Over: Freely Falling!", m.Progress().Message)
	assert.Equal(t, OutcomeLoss, m.Progress().Outcome)
}

func TestManagerQuitsAfterWait(t *testing.T) {
	m := newManager(1, 120, 5)
	m.Start()
	m.Update(1)
	assert.False(t, m.ShouldQuit())

	m.Collector.Collect()
	m.Update(4)
	assert.False(t, m.ShouldQuit())
	m.Update(1.5)
	assert.True(t, m.ShouldQuit())
}

func TestManagerRequestQuit(t *testing.T) {
	m := newManager(1, 120, 5)
	m.RequestQuit()
	assert.True(t, m.ShouldQuit())
	assert.False(t, m.IsEnded())
}

func TestManagerIDsAreUnique(t *testing.T) {
	assert.NotEqual(t, newManager(1, 1, 1).ID, newManager(1, 1, 1).ID)
}
