// Package config provides YAML-based configuration loading for the
// sokoban platform.
package config

import "fmt"

// GameConfig contains all runtime configuration.
type GameConfig struct {
	Gameplay GameplayConfig `yaml:"gameplay"`
	Display  DisplayConfig  `yaml:"display"`
	Storage  StorageConfig  `yaml:"storage"`
}

// GameplayConfig defines simulation parameters.
type GameplayConfig struct {
	MoveDuration float64 `yaml:"move_duration"` // seconds one grid step takes
	StartLevel   int     `yaml:"start_level"`
}

// DisplayConfig defines presentation parameters.
type DisplayConfig struct {
	FPS       int `yaml:"fps"`
	TileWidth int `yaml:"tile_width"` // terminal columns per grid tile
}

// StorageConfig defines where completion records are kept.
type StorageConfig struct {
	DBPath string `yaml:"db_path"` // empty means the default under the user's home
}

// Validate checks the configuration for values the simulation cannot run
// with.
func (c GameConfig) Validate() error {
	if c.Gameplay.MoveDuration <= 0 {
		return fmt.Errorf("config: move_duration must be positive, got %v", c.Gameplay.MoveDuration)
	}
	if c.Gameplay.StartLevel < 1 {
		return fmt.Errorf("config: start_level must be at least 1, got %d", c.Gameplay.StartLevel)
	}
	if c.Display.FPS < 1 || c.Display.FPS > 240 {
		return fmt.Errorf("config: fps must be between 1 and 240, got %d", c.Display.FPS)
	}
	if c.Display.TileWidth < 1 {
		return fmt.Errorf("config: tile_width must be at least 1, got %d", c.Display.TileWidth)
	}
	return nil
}
