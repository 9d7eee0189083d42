package core

import "time"

// RuntimeConfig contains the settings a session starts with.
type RuntimeConfig struct {
	ScreenW    int           // Screen width in characters
	ScreenH    int           // Screen height in characters
	Seed       int64         // RNG seed; 0 means seed from the clock
	SpawnDelay time.Duration // Pause between a move and the new tile
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		Seed:       0,
		SpawnDelay: 150 * time.Millisecond,
	}
}
