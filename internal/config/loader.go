package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// LoadAsteroids loads the asteroids configuration.
// Search order: customPath -> ~/.arcade/configs/asteroids.yaml -> ./configs/asteroids.yaml -> embedded default
func LoadAsteroids(customPath string) (AsteroidsConfig, error) {
	return load("asteroids", customPath, DefaultAsteroidsConfig, AsteroidsConfig.Validate)
}

// LoadBreakout loads the breakout configuration.
// Search order: customPath -> ~/.arcade/configs/breakout.yaml -> ./configs/breakout.yaml -> embedded default
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	return load("breakout", customPath, DefaultBreakoutConfig, BreakoutConfig.Validate)
}

// load resolves one game's configuration. Files are decoded on top of the
// hardcoded defaults, so a file only needs the keys it changes.
func load[T any](gameID, customPath string, defaults func() T, validate func(T) error) (T, error) {
	// Custom path is explicit: any problem is reported, never skipped
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return defaults(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decode(data, defaults(), true)
		if err != nil {
			return defaults(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := validate(cfg); err != nil {
			return defaults(), fmt.Errorf("config: invalid %s: %w", customPath, err)
		}
		log.Debug("config loaded", "game", gameID, "path", customPath)
		return cfg, nil
	}

	filename := gameID + ".yaml"
	candidates := []string{
		userConfigPath(filename),
		filepath.Join("configs", filename),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg, err := decode(data, defaults(), false)
		if err == nil {
			err = validate(cfg)
		}
		if err != nil {
			log.Warn("skipping config file", "game", gameID, "path", path, "error", err)
			continue
		}
		log.Debug("config loaded", "game", gameID, "path", path)
		return cfg, nil
	}

	cfg, err := decode(GetDefaultYAML(gameID), defaults(), true)
	if err != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func decode[T any](data []byte, base T, strict bool) (T, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(strict)
	if err := dec.Decode(&base); err != nil {
		return base, err
	}
	return base, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
