package config

import (
	_ "embed"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/term2048/internal/core"
)

//go:embed defaults/config.yaml
var defaultConfigYAML []byte

// Default returns the embedded default configuration.
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultConfigYAML, &cfg); err != nil {
		return DefaultConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// DefaultConfig returns the hardcoded default configuration.
func DefaultConfig() Config {
	return Config{
		Scheme:     "original",
		SpawnDelay: 150 * time.Millisecond,
		Schemes: []Scheme{
			{Name: "original", Tiles: pairs(
				8, 255, 1, 255, 2, 255, 3, 255, 4, 255, 5, 255, 6, 255, 7, 255,
				9, 0, 10, 0, 11, 0, 12, 0, 13, 0, 14, 0, 255, 0, 255, 0,
			)},
			{Name: "blackwhite", Tiles: pairs(
				232, 255, 234, 255, 236, 255, 238, 255, 240, 255, 242, 255, 244, 255, 246, 0,
				248, 0, 249, 0, 250, 0, 251, 0, 252, 0, 253, 0, 254, 0, 255, 0,
			)},
			{Name: "bluered", Tiles: pairs(
				235, 255, 63, 255, 57, 255, 93, 255, 129, 255, 165, 255, 201, 255, 200, 255,
				199, 255, 198, 255, 197, 255, 196, 255, 196, 255, 196, 255, 196, 255, 196, 255,
			)},
		},
	}
}

// pairs turns a flat bg,fg list into tile colors.
func pairs(v ...int) []TileColor {
	tiles := make([]TileColor, 0, len(v)/2)
	for i := 0; i+1 < len(v); i += 2 {
		tiles = append(tiles, TileColor{Background: core.Color(v[i]), Foreground: core.Color(v[i+1])})
	}
	return tiles
}
