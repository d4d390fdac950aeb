package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/snowmaze/game"
	"github.com/beka-birhanu/snowmaze/maze"
	"gopkg.in/yaml.v3"
)

var ErrInvalidGameConfig = errors.New("invalid game config")

// GameConfig tunes maze generation and the chase.
type GameConfig struct {
	Maze     MazeConfig   `yaml:"maze"`
	Hero     EntityConfig `yaml:"hero"`
	Pursuer  EntityConfig `yaml:"pursuer"`
	TickRate int          `yaml:"tick_rate"` // ticks per second
	IcePick  bool         `yaml:"ice_pick"`
}

// MazeConfig holds the generator parameters. A zero seed means a new seed per game.
type MazeConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	LoopRatio  float64 `yaml:"loop_ratio"`
	ExitOffset int     `yaml:"exit_offset"`
	Seed       int64   `yaml:"seed"`
}

// EntityConfig holds per entity movement tuning.
type EntityConfig struct {
	Delay int `yaml:"delay"` // ticks between moves
}

// DefaultGameConfig returns the tuning used when no file is given.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Maze: MazeConfig{
			Width:      39,
			Height:     19,
			LoopRatio:  0.1,
			ExitOffset: 1,
		},
		Hero:     EntityConfig{Delay: 10},
		Pursuer:  EntityConfig{Delay: 20},
		TickRate: 30,
		IcePick:  true,
	}
}

// LoadGameConfig reads a YAML tuning file. Keys missing from the file keep their
// default values. An empty path returns the defaults.
func LoadGameConfig(path string) (GameConfig, error) {
	cfg := DefaultGameConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading game config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing game config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the entity tuning and dry-runs the maze generator so bad maze
// tuning fails at load time instead of on the first game.
func (c GameConfig) Validate() error {
	switch {
	case c.Hero.Delay <= 0:
		return fmt.Errorf("%w: hero delay %d", ErrInvalidGameConfig, c.Hero.Delay)
	case c.Pursuer.Delay <= 0:
		return fmt.Errorf("%w: pursuer delay %d", ErrInvalidGameConfig, c.Pursuer.Delay)
	case c.TickRate <= 0 || c.TickRate > 1000:
		return fmt.Errorf("%w: tick rate %d", ErrInvalidGameConfig, c.TickRate)
	}

	if _, err := maze.GenerateWithConfig(c.Setup(c.Maze.Seed).Maze); err != nil {
		return fmt.Errorf("%w: maze: %w", ErrInvalidGameConfig, err)
	}
	return nil
}

// TickInterval is the wall clock time between two ticks.
func (c GameConfig) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// Setup converts the tuning into a game description using seed for the maze.
func (c GameConfig) Setup(seed int64) game.Setup {
	return game.Setup{
		Maze: maze.Config{
			Width:      c.Maze.Width,
			Height:     c.Maze.Height,
			Seed:       seed,
			LoopRatio:  c.Maze.LoopRatio,
			ExitOffset: c.Maze.ExitOffset,
		},
		HeroDelay:    c.Hero.Delay,
		PursuerDelay: c.Pursuer.Delay,
		IcePick:      c.IcePick,
	}
}
