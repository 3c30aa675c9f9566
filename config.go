package moveone

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WindowConfig controls the game window.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// MoverConfig controls spawn and movement behavior.
type MoverConfig struct {
	// Speed is movement speed in pixels per second.
	Speed float64 `yaml:"speed"`
	// ArriveDistance is the stop threshold: a mover within this many
	// pixels of its target has arrived.
	ArriveDistance float64 `yaml:"arrive_distance"`
	// DespawnRadius limits how far a middle-click may be from a mover
	// and still despawn it.
	DespawnRadius float64 `yaml:"despawn_radius"`
	// Sprites is the set of sprite names spawns pick from.
	Sprites []string `yaml:"sprites"`
	// SpriteSize is the square sprite edge length in pixels.
	SpriteSize int `yaml:"sprite_size"`
	// PopDuration is the spawn scale-pop tween length in seconds.
	PopDuration float64 `yaml:"pop_duration"`
}

// Config is the full game configuration.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Mover  MoverConfig  `yaml:"mover"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{Width: 1280, Height: 720, Title: "moveone"},
		Mover: MoverConfig{
			Speed:          180,
			ArriveDistance: 4,
			DespawnRadius:  48,
			Sprites:        []string{"whelp", "wisp", "drake"},
			SpriteSize:     32,
			PopDuration:    0.25,
		},
	}
}

// LoadConfig reads a YAML config file. Missing fields keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first invalid field, if any.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	case c.Mover.Speed <= 0:
		return fmt.Errorf("mover speed %v must be positive", c.Mover.Speed)
	case c.Mover.ArriveDistance < 0:
		return fmt.Errorf("arrive distance %v must not be negative", c.Mover.ArriveDistance)
	case c.Mover.DespawnRadius <= 0:
		return fmt.Errorf("despawn radius %v must be positive", c.Mover.DespawnRadius)
	case len(c.Mover.Sprites) == 0:
		return fmt.Errorf("at least one sprite name is required")
	case c.Mover.SpriteSize < 2:
		return fmt.Errorf("sprite size %d must be at least 2", c.Mover.SpriteSize)
	case c.Mover.PopDuration < 0:
		return fmt.Errorf("pop duration %v must not be negative", c.Mover.PopDuration)
	}
	return nil
}
