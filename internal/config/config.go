// Package config provides YAML-based settings and color schemes for 2048.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/term2048/internal/core"
)

// ErrUnknownScheme is returned when a scheme name is not configured.
var ErrUnknownScheme = errors.New("unknown color scheme")

// Config contains all user-tunable settings.
type Config struct {
	Scheme     string        `yaml:"scheme"`      // Scheme used when none is requested
	SpawnDelay time.Duration `yaml:"spawn_delay"` // Pause between move and spawn
	Schemes    []Scheme      `yaml:"schemes"`
}

// Scheme is a named tile palette.
type Scheme struct {
	Name  string      `yaml:"name"`
	Tiles []TileColor `yaml:"tiles"`
}

// TileColor is the background/foreground pair for one exponent.
type TileColor struct {
	Background core.Color `yaml:"bg"`
	Foreground core.Color `yaml:"fg"`
}

// Colors returns the pair for exponent e. Exponents past the end of the
// palette reuse the last entry.
func (s Scheme) Colors(e uint8) TileColor {
	if len(s.Tiles) == 0 {
		return TileColor{Background: core.ColorDefault, Foreground: core.ColorDefault}
	}
	i := min(int(e), len(s.Tiles)-1)
	return s.Tiles[i]
}

// Lookup returns the scheme with the given name.
func (c Config) Lookup(name string) (Scheme, error) {
	for _, s := range c.Schemes {
		if s.Name == name {
			return s, nil
		}
	}
	return Scheme{}, fmt.Errorf("%w %q", ErrUnknownScheme, name)
}

// SchemeNames returns the configured scheme names in file order.
func (c Config) SchemeNames() []string {
	names := make([]string, len(c.Schemes))
	for i, s := range c.Schemes {
		names[i] = s.Name
	}
	return names
}

// Validate checks the configuration for values the game cannot use.
func (c Config) Validate() error {
	if c.SpawnDelay < 0 {
		return fmt.Errorf("spawn_delay must not be negative, got %s", c.SpawnDelay)
	}
	if len(c.Schemes) == 0 {
		return errors.New("no color schemes configured")
	}

	seen := make(map[string]bool, len(c.Schemes))
	for _, s := range c.Schemes {
		if s.Name == "" {
			return errors.New("color scheme without a name")
		}
		if seen[s.Name] {
			return fmt.Errorf("color scheme %q defined twice", s.Name)
		}
		seen[s.Name] = true

		if len(s.Tiles) == 0 {
			return fmt.Errorf("color scheme %q has no tiles", s.Name)
		}
		for i, t := range s.Tiles {
			if !t.Background.Valid() || !t.Foreground.Valid() {
				return fmt.Errorf("color scheme %q tile %d: colors must be in 0..255", s.Name, i)
			}
		}
	}

	if _, err := c.Lookup(c.Scheme); err != nil {
		return fmt.Errorf("default scheme: %w", err)
	}
	return nil
}
