package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gravityshift/internal/config"
	"gravityshift/internal/game"
	"gravityshift/internal/logger"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the config file")
	levelPath := flag.String("level", "", "level file, overrides the config")
	watch := flag.Bool("watch", true, "hot reload player tunables when the config file changes")
	debug := flag.Bool("debug", false, "start with the debug overlay")
	flag.Parse()

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			_ = os.Chdir(execDir)
		}
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *levelPath != "" {
		cfg.Level = *levelPath
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	g, err := game.New(cfg, log)
	if err != nil {
		log.Error("failed to start", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
	g.DebugMode = *debug

	if *watch {
		if err := g.Watch(*configPath); err != nil {
			log.Warn("config hot reload disabled", zap.Error(err))
		}
	}

	g.Run()
}

// loadConfig falls back to the defaults when the file does not exist.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	return cfg, err
}
