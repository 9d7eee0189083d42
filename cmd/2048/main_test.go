package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/term2048/internal/config"
	"github.com/vovakirdan/term2048/internal/engine"
	"github.com/vovakirdan/term2048/internal/logging"
)

func TestResolveScheme(t *testing.T) {
	cfg := config.Default()

	tests := []struct {
		name    string
		flag    string
		args    []string
		want    string
		wantErr error
	}{
		{"config default", "", nil, cfg.Scheme, nil},
		{"positional", "", []string{"blackwhite"}, "blackwhite", nil},
		{"flag", "bluered", nil, "bluered", nil},
		{"flag and same positional", "bluered", []string{"bluered"}, "bluered", nil},
		{"conflict", "bluered", []string{"blackwhite"}, "", errUsage},
		{"unknown", "", []string{"neon"}, "", config.ErrUnknownScheme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveScheme(cfg, tt.flag, tt.args)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Name != tt.want {
				t.Errorf("scheme = %q, want %q", got.Name, tt.want)
			}
		})
	}
}

func TestRuntimeConfig(t *testing.T) {
	cfg := config.Default()

	rc, err := runtimeConfig(cfg, 42, "")
	if err != nil {
		t.Fatal(err)
	}
	if rc.Seed != 42 || rc.SpawnDelay != cfg.SpawnDelay {
		t.Errorf("runtimeConfig = %+v, want seed 42 and config delay", rc)
	}

	rc, err = runtimeConfig(cfg, 0, "0s")
	if err != nil {
		t.Fatal(err)
	}
	if rc.Seed == 0 {
		t.Error("seed 0 was not replaced")
	}
	if rc.SpawnDelay != 0 {
		t.Errorf("delay = %v, want 0", rc.SpawnDelay)
	}

	rc, err = runtimeConfig(cfg, 1, "250ms")
	if err != nil {
		t.Fatal(err)
	}
	if rc.SpawnDelay != 250*time.Millisecond {
		t.Errorf("delay = %v, want 250ms", rc.SpawnDelay)
	}

	for _, bad := range []string{"soon", "-1s"} {
		if _, err := runtimeConfig(cfg, 1, bad); !errors.Is(err, errUsage) {
			t.Errorf("runtimeConfig(%q) err = %v, want errUsage", bad, err)
		}
	}
}

func TestSessionLogger(t *testing.T) {
	if _, _, err := sessionLogger("", "loud"); !errors.Is(err, errUsage) {
		t.Errorf("bad level err = %v, want errUsage", err)
	}

	logger, closeLog, err := sessionLogger("", "debug")
	if err != nil || logger == nil {
		t.Fatalf("discard logger: %v", err)
	}
	if err := closeLog(); err != nil {
		t.Errorf("close: %v", err)
	}

	path := filepath.Join(t.TempDir(), "logs", "2048.log")
	logger, closeLog, err = sessionLogger(path, "info")
	if err != nil {
		t.Fatalf("file logger: %v", err)
	}
	logger.Info("hello")
	if err := closeLog(); err != nil {
		t.Errorf("close: %v", err)
	}
}

func TestFormatSchemes(t *testing.T) {
	cfg := config.Default()
	out := formatSchemes(cfg)

	for _, name := range cfg.SchemeNames() {
		if !strings.Contains(out, name) {
			t.Errorf("listing missing %q:\n%s", name, out)
		}
	}
	if !strings.Contains(out, cfg.Scheme+" ") || !strings.Contains(out, "(default)") {
		t.Errorf("listing does not mark the default:\n%s", out)
	}
}

func TestSchemeHint(t *testing.T) {
	cfg := config.Default()
	got := schemeHint(cfg)
	want := "Available schemes: " + strings.Join(cfg.SchemeNames(), ", ")
	if got != want {
		t.Errorf("schemeHint = %q, want %q", got, want)
	}
	for _, name := range []string{"original", "blackwhite", "bluered"} {
		if !strings.Contains(got, name) {
			t.Errorf("hint %q missing %q", got, name)
		}
	}
}

func TestSelfTestCommand(t *testing.T) {
	var buf bytes.Buffer
	if err := selfTest(&buf, logging.Discard(), engine.Fixtures); err != nil {
		t.Fatalf("selfTest: %v", err)
	}
	want := "All 13 tests executed successfully\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestSelfTestCommandFailure(t *testing.T) {
	broken := []engine.Fixture{
		{In: [engine.Size]uint8{1, 1, 0, 0}, Out: [engine.Size]uint8{1, 1, 0, 0}},
	}

	var buf bytes.Buffer
	err := selfTest(&buf, logging.Discard(), broken)
	var fe *engine.FixtureError
	if !errors.As(err, &fe) {
		t.Fatalf("err = %v, want *engine.FixtureError", err)
	}
	want := "fixture 0: [1 1 0 0] => [2 0 0 0] expected [1 1 0 0] => [1 1 0 0]\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}
