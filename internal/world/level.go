package world

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalidLevel = errors.New("world: invalid level")

// Level is the YAML description of a play space. The player is spawned by
// code at Spawn.
type Level struct {
	Name    string      `yaml:"name"`
	Spawn   SpawnDef    `yaml:"spawn"`
	Objects []ObjectDef `yaml:"objects"`
}

type SpawnDef struct {
	Position [3]float32 `yaml:"position"`
	Rotation [3]float32 `yaml:"rotation"` // euler degrees
}

type ObjectDef struct {
	Name       string           `yaml:"name"`
	Tags       []string         `yaml:"tags,omitempty"`
	Position   [3]float32       `yaml:"position"`
	Rotation   [3]float32       `yaml:"rotation"` // euler degrees
	Scale      [3]float32       `yaml:"scale"`
	Components []map[string]any `yaml:"components"`
}

func LoadLevel(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	lvl, err := ParseLevel(data)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", path, err)
	}
	return lvl, nil
}

func ParseLevel(data []byte) (*Level, error) {
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("parse level: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

// Validate checks names and component headers; component props are checked
// by their factories at build time.
func (l *Level) Validate() error {
	var errs []error
	seen := make(map[string]bool, len(l.Objects))
	for i, obj := range l.Objects {
		if obj.Name == "" {
			errs = append(errs, fmt.Errorf("%w: object %d has no name", ErrInvalidLevel, i))
		} else if seen[obj.Name] {
			errs = append(errs, fmt.Errorf("%w: duplicate object name %q", ErrInvalidLevel, obj.Name))
		}
		seen[obj.Name] = true
		for j, comp := range obj.Components {
			if _, ok := comp["type"].(string); !ok {
				errs = append(errs, fmt.Errorf("%w: object %q component %d has no type", ErrInvalidLevel, obj.Name, j))
			}
		}
	}
	return errors.Join(errs...)
}
