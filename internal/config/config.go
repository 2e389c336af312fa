// Package config loads the game tunables from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	MinGravityMultiplier = 1
	MaxGravityMultiplier = 10
	MaxTimeLimit         = 600
)

var ErrInvalid = errors.New("config: invalid")

type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Player  PlayerConfig  `yaml:"player"`
	Gravity GravityConfig `yaml:"gravity"`
	Run     RunConfig     `yaml:"run"`
	Logging LoggingConfig `yaml:"logging"`
	Level   string        `yaml:"level"` // path to the level file
}

type WindowConfig struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	Title     string  `yaml:"title"`
	TargetFPS int     `yaml:"target_fps"`
	FixedStep float32 `yaml:"fixed_step"` // seconds per physics step
}

// PlayerConfig holds the locomotion tunables.
type PlayerConfig struct {
	MoveSpeed             float32 `yaml:"move_speed"`
	TurnSmoothTime        float32 `yaml:"turn_smooth_time"` // slerp factor per physics step
	JumpForce             float32 `yaml:"jump_force"`
	GroundCheckRadius     float32 `yaml:"ground_check_radius"`
	GroundCheckOffset     float32 `yaml:"ground_check_offset"` // body origin to feet
	FallDistanceThreshold float32 `yaml:"fall_distance_threshold"`
	FreeFallProbeDistance float32 `yaml:"free_fall_probe_distance"`
}

type GravityConfig struct {
	Constant   float32 `yaml:"constant"`
	Multiplier float32 `yaml:"multiplier"`
}

type RunConfig struct {
	CollectibleTarget int     `yaml:"collectible_target"`
	TimeLimit         float32 `yaml:"time_limit"` // seconds
	WaitAfterGameOver float32 `yaml:"wait_after_game_over"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Default returns the prototype's tuning.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     1280,
			Height:    720,
			Title:     "Gravity Shift",
			TargetFPS: 120,
			FixedStep: 0.02,
		},
		Player: PlayerConfig{
			MoveSpeed:             5,
			TurnSmoothTime:        0.1,
			JumpForce:             5,
			GroundCheckRadius:     0.1,
			GroundCheckOffset:     0.9,
			FallDistanceThreshold: 1,
			FreeFallProbeDistance: 1000,
		},
		Gravity: GravityConfig{
			Constant:   9.81,
			Multiplier: 1,
		},
		Run: RunConfig{
			CollectibleTarget: 10,
			TimeLimit:         120,
			WaitAfterGameOver: 5,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Level: "assets/levels/default.yaml",
	}
}

// Load reads path on top of Default, so omitted keys keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every out-of-range value at once.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Window.Width > 0 && c.Window.Height > 0, "window size %dx%d", c.Window.Width, c.Window.Height)
	check(c.Window.FixedStep > 0, "window.fixed_step %v must be > 0", c.Window.FixedStep)

	p := c.Player
	check(p.MoveSpeed >= 0, "player.move_speed %v must be >= 0", p.MoveSpeed)
	check(p.TurnSmoothTime > 0 && p.TurnSmoothTime <= 1, "player.turn_smooth_time %v must be in (0,1]", p.TurnSmoothTime)
	check(p.JumpForce >= 0, "player.jump_force %v must be >= 0", p.JumpForce)
	check(p.GroundCheckRadius > 0, "player.ground_check_radius %v must be > 0", p.GroundCheckRadius)
	check(p.GroundCheckOffset >= 0, "player.ground_check_offset %v must be >= 0", p.GroundCheckOffset)
	check(p.FallDistanceThreshold > 0, "player.fall_distance_threshold %v must be > 0", p.FallDistanceThreshold)
	check(p.FreeFallProbeDistance > 0, "player.free_fall_probe_distance %v must be > 0", p.FreeFallProbeDistance)

	check(c.Gravity.Constant > 0, "gravity.constant %v must be > 0", c.Gravity.Constant)
	check(c.Gravity.Multiplier >= MinGravityMultiplier && c.Gravity.Multiplier <= MaxGravityMultiplier,
		"gravity.multiplier %v must be in [%d,%d]", c.Gravity.Multiplier, MinGravityMultiplier, MaxGravityMultiplier)

	check(c.Run.CollectibleTarget > 0, "run.collectible_target %d must be > 0", c.Run.CollectibleTarget)
	check(c.Run.TimeLimit >= 0 && c.Run.TimeLimit <= MaxTimeLimit, "run.time_limit %v must be in [0,%d]", c.Run.TimeLimit, MaxTimeLimit)
	check(c.Run.WaitAfterGameOver >= 0, "run.wait_after_game_over %v must be >= 0", c.Run.WaitAfterGameOver)

	return errors.Join(errs...)
}
