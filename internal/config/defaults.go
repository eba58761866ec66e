package config

import (
	_ "embed"
)

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultAsteroidsConfig returns the default asteroids configuration.
func DefaultAsteroidsConfig() AsteroidsConfig {
	return AsteroidsConfig{
		Playfield: Playfield{Width: 800, Height: 600},
		Ship: AsteroidsShip{
			RotationSpeed: 0.05,
			Thrust:        0.1,
		},
		Bullet: AsteroidsBullet{
			Speed:  10,
			Radius: 3,
		},
		Asteroids: AsteroidsSpawning{
			IntervalMs: 2000,
			MinSize:    50,
			MaxSize:    100,
			MaxSpeed:   1,
		},
	}
}

// DefaultBreakoutConfig returns the default breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Playfield: Playfield{Width: 480, Height: 320},
		Ball: BreakoutBall{
			Radius:      10,
			DX:          2,
			DY:          -2,
			StartOffset: 30,
		},
		Paddle: BreakoutPaddle{
			Width:  75,
			Height: 10,
			Speed:  7,
		},
		Bricks: BreakoutBricks{
			Rows:       3,
			Columns:    5,
			Width:      75,
			Height:     20,
			Padding:    10,
			OffsetTop:  30,
			OffsetLeft: 30,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "asteroids":
		return defaultAsteroidsYAML
	case "breakout":
		return defaultBreakoutYAML
	default:
		return nil
	}
}
