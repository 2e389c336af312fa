//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package game

import (
	"gravityshift/internal/config"
	"gravityshift/internal/input"
	"gravityshift/internal/world"

	"github.com/google/wire"
	"go.uber.org/zap"
)

// Initialize assembles a Game ready to Start.
func Initialize(cfg *config.Config, level *world.Level, keys input.KeyState, log *zap.Logger) (*Game, error) {
	wire.Build(ProviderSet)
	return nil, nil
}
