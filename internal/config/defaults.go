package config

import (
	_ "embed"
)

//go:embed defaults/sokoban.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration.
func Default() GameConfig {
	return GameConfig{
		Gameplay: GameplayConfig{
			MoveDuration: 0.25,
			StartLevel:   1,
		},
		Display: DisplayConfig{
			FPS:       60,
			TileWidth: 2,
		},
	}
}
