package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/term2048/internal/core"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	if diff := cmp.Diff(DefaultConfig(), Default()); diff != "" {
		t.Errorf("embedded defaults drifted from DefaultConfig (-hardcoded +embedded):\n%s", diff)
	}
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate(): %v", err)
	}

	want := []string{"original", "blackwhite", "bluered"}
	if diff := cmp.Diff(want, cfg.SchemeNames()); diff != "" {
		t.Errorf("SchemeNames mismatch (-want +got):\n%s", diff)
	}
	if cfg.SpawnDelay != 150*time.Millisecond {
		t.Errorf("SpawnDelay = %s, want 150ms", cfg.SpawnDelay)
	}
}

func TestSchemeColors(t *testing.T) {
	s, err := Default().Lookup("original")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}

	tests := []struct {
		exp  uint8
		want TileColor
	}{
		{0, TileColor{Background: 8, Foreground: 255}},
		{1, TileColor{Background: 1, Foreground: 255}},
		{11, TileColor{Background: 12, Foreground: 0}},
		{15, TileColor{Background: 255, Foreground: 0}},
		{17, TileColor{Background: 255, Foreground: 0}},
	}
	for _, tt := range tests {
		if got := s.Colors(tt.exp); got != tt.want {
			t.Errorf("Colors(%d) = %+v, want %+v", tt.exp, got, tt.want)
		}
	}

	var empty Scheme
	if got := empty.Colors(3); got.Background != core.ColorDefault {
		t.Errorf("empty scheme Colors = %+v, want default colors", got)
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Default().Lookup("neon")
	if !errors.Is(err, ErrUnknownScheme) {
		t.Errorf("Lookup(neon) error = %v, want ErrUnknownScheme", err)
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("scheme: bluered\nspawn_delay: 50ms\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Scheme != "bluered" {
		t.Errorf("Scheme = %q, want bluered", cfg.Scheme)
	}
	if cfg.SpawnDelay != 50*time.Millisecond {
		t.Errorf("SpawnDelay = %s, want 50ms", cfg.SpawnDelay)
	}
	if len(cfg.Schemes) != 3 {
		t.Errorf("built-in schemes should survive a partial file, got %v", cfg.SchemeNames())
	}
}

func TestParseMergesSchemes(t *testing.T) {
	data := []byte(`
scheme: mono
schemes:
  - name: original
    tiles:
      - {bg: 0, fg: 15}
  - name: mono
    tiles:
      - {bg: 16, fg: 231}
      - {bg: 231, fg: 16}
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := []string{"original", "blackwhite", "bluered", "mono"}
	if diff := cmp.Diff(want, cfg.SchemeNames()); diff != "" {
		t.Errorf("SchemeNames mismatch (-want +got):\n%s", diff)
	}

	orig, _ := cfg.Lookup("original")
	if len(orig.Tiles) != 1 || orig.Tiles[0].Foreground != 15 {
		t.Errorf("original scheme should be replaced, got %+v", orig.Tiles)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed yaml", "scheme: [unterminated"},
		{"unknown default scheme", "scheme: neon"},
		{"negative delay", "spawn_delay: -5ms"},
		{"color out of range", "schemes:\n  - name: hot\n    tiles:\n      - {bg: 300, fg: 0}\n"},
		{"scheme without tiles", "schemes:\n  - name: hollow\n"},
		{"scheme without name", "schemes:\n  - tiles:\n      - {bg: 1, fg: 2}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); err == nil {
				t.Errorf("Parse(%q) should fail", tt.data)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("scheme: blackwhite\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Scheme != "blackwhite" {
		t.Errorf("Scheme = %q, want blackwhite", cfg.Scheme)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load should fail for a missing custom path")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("scheme: neon\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if !errors.Is(err, ErrUnknownScheme) {
		t.Errorf("Load(bad) error = %v, want ErrUnknownScheme", err)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded default
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Scheme != "original" {
		t.Errorf("Scheme = %q, want original", cfg.Scheme)
	}

	// Local file
	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(work, LocalPath), []byte("scheme: bluered\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = Load("")
	if cfg.Scheme != "bluered" {
		t.Errorf("Scheme = %q, want bluered from %s", cfg.Scheme, LocalPath)
	}

	// User file wins over the local one
	if err := os.MkdirAll(filepath.Join(home, ".2048"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(home, ".2048", "config.yaml"), []byte("scheme: blackwhite\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = Load("")
	if cfg.Scheme != "blackwhite" {
		t.Errorf("Scheme = %q, want blackwhite from the user file", cfg.Scheme)
	}
}
