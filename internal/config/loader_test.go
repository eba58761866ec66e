package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	ast, err := LoadAsteroids("")
	if err != nil {
		t.Fatalf("LoadAsteroids() error: %v", err)
	}
	if ast != DefaultAsteroidsConfig() {
		t.Errorf("embedded asteroids.yaml = %+v, expected %+v", ast, DefaultAsteroidsConfig())
	}

	brk, err := LoadBreakout("")
	if err != nil {
		t.Fatalf("LoadBreakout() error: %v", err)
	}
	if brk != DefaultBreakoutConfig() {
		t.Errorf("embedded breakout.yaml = %+v, expected %+v", brk, DefaultBreakoutConfig())
	}
}

func TestLoadCustomPartialOverride(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "ast.yaml", "asteroids:\n  interval_ms: 500\n")

	cfg, err := LoadAsteroids(path)
	if err != nil {
		t.Fatalf("LoadAsteroids(%s) error: %v", path, err)
	}
	if cfg.Asteroids.IntervalMs != 500 {
		t.Errorf("IntervalMs = %g, expected 500", cfg.Asteroids.IntervalMs)
	}
	// Untouched keys keep their defaults
	if cfg.Playfield.Width != 800 || cfg.Bullet.Speed != 10 || cfg.Asteroids.MinSize != 50 {
		t.Errorf("partial file should keep defaults, got %+v", cfg)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{"missing file", filepath.Join(dir, "nope.yaml"), "failed to read"},
		{"unknown key", writeFile(t, dir, "typo.yaml", "paddle:\n  widht: 10\n"), "failed to parse"},
		{"bad yaml", writeFile(t, dir, "bad.yaml", "paddle: [\n"), "failed to parse"},
		{"invalid value", writeFile(t, dir, "neg.yaml", "ball:\n  radius: -1\n"), "invalid"},
		{"paddle too wide", writeFile(t, dir, "wide.yaml", "paddle:\n  width: 1000\n"), "invalid"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := LoadBreakout(tc.path)
			if err == nil {
				t.Fatalf("LoadBreakout(%s) should fail", tc.path)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error = %q, expected it to contain %q", err, tc.wantErr)
			}
			if cfg != DefaultBreakoutConfig() {
				t.Errorf("failed load should return defaults, got %+v", cfg)
			}
		})
	}
}

func TestLoadUserConfigDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfgDir := filepath.Join(home, ".arcade", "configs")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, cfgDir, "breakout.yaml", "paddle:\n  speed: 9\n")

	cfg, err := LoadBreakout("")
	if err != nil {
		t.Fatalf("LoadBreakout() error: %v", err)
	}
	if cfg.Paddle.Speed != 9 {
		t.Errorf("Paddle.Speed = %g, expected 9 from user config", cfg.Paddle.Speed)
	}
}

func TestLoadUserConfigInvalidFallsBack(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfgDir := filepath.Join(home, ".arcade", "configs")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, cfgDir, "asteroids.yaml", "bullet:\n  speed: 0\n")

	cfg, err := LoadAsteroids("")
	if err != nil {
		t.Fatalf("LoadAsteroids() error: %v", err)
	}
	if cfg != DefaultAsteroidsConfig() {
		t.Errorf("invalid user config should fall back to defaults, got %+v", cfg)
	}
}

func TestGetDefaultYAML(t *testing.T) {
	for _, id := range []string{"asteroids", "breakout"} {
		if len(GetDefaultYAML(id)) == 0 {
			t.Errorf("GetDefaultYAML(%q) should not be empty", id)
		}
	}
	if GetDefaultYAML("pong") != nil {
		t.Error("GetDefaultYAML should return nil for unknown games")
	}
}
