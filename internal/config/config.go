// Package config provides YAML-based game configuration loading for the arcade.
// Every default equals the constants the games were designed around; a config
// file only moves those constants, it never adds behavior.
package config

import (
	"errors"
	"fmt"
)

// Playfield is the world-space size of a game, independent of the terminal.
type Playfield struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func (p Playfield) validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("playfield must be positive, got %gx%g", p.Width, p.Height)
	}
	return nil
}

// AsteroidsConfig contains all configuration for the asteroids shooter.
type AsteroidsConfig struct {
	Playfield Playfield         `yaml:"playfield"`
	Ship      AsteroidsShip     `yaml:"ship"`
	Bullet    AsteroidsBullet   `yaml:"bullet"`
	Asteroids AsteroidsSpawning `yaml:"asteroids"`
}

// AsteroidsShip defines the ship's input response.
type AsteroidsShip struct {
	RotationSpeed float64 `yaml:"rotation_speed"` // Radians per left/right key-down
	Thrust        float64 `yaml:"thrust"`         // Thrust added per up key-down
}

// AsteroidsBullet defines bullet motion and size.
type AsteroidsBullet struct {
	Speed  float64 `yaml:"speed"`
	Radius float64 `yaml:"radius"` // Drawn size only; collisions use asteroid size
}

// AsteroidsSpawning defines the spawn gate and random asteroid ranges.
type AsteroidsSpawning struct {
	IntervalMs float64 `yaml:"interval_ms"`
	MinSize    float64 `yaml:"min_size"`
	MaxSize    float64 `yaml:"max_size"`
	MaxSpeed   float64 `yaml:"max_speed"` // Per-axis velocity range is [-max, max)
}

// Validate reports configuration values the simulation cannot run with.
func (c AsteroidsConfig) Validate() error {
	var errs []error
	if err := c.Playfield.validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Bullet.Speed <= 0 {
		errs = append(errs, fmt.Errorf("bullet speed must be positive, got %g", c.Bullet.Speed))
	}
	if c.Asteroids.IntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("asteroid interval must be positive, got %g", c.Asteroids.IntervalMs))
	}
	if c.Asteroids.MinSize <= 0 || c.Asteroids.MaxSize < c.Asteroids.MinSize {
		errs = append(errs, fmt.Errorf("asteroid size range [%g,%g) is invalid", c.Asteroids.MinSize, c.Asteroids.MaxSize))
	}
	return errors.Join(errs...)
}

// BreakoutConfig contains all configuration for the breakout clone.
type BreakoutConfig struct {
	Playfield Playfield      `yaml:"playfield"`
	Ball      BreakoutBall   `yaml:"ball"`
	Paddle    BreakoutPaddle `yaml:"paddle"`
	Bricks    BreakoutBricks `yaml:"bricks"`
}

// BreakoutBall defines the ball's size, start position and velocity.
type BreakoutBall struct {
	Radius      float64 `yaml:"radius"`
	DX          float64 `yaml:"dx"`
	DY          float64 `yaml:"dy"`
	StartOffset float64 `yaml:"start_offset"` // Distance from the bottom edge at serve
}

// BreakoutPaddle defines paddle size and speed.
type BreakoutPaddle struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// BreakoutBricks defines the fixed brick grid.
type BreakoutBricks struct {
	Rows       int     `yaml:"rows"`
	Columns    int     `yaml:"columns"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Padding    float64 `yaml:"padding"`
	OffsetTop  float64 `yaml:"offset_top"`
	OffsetLeft float64 `yaml:"offset_left"`
}

// Validate reports configuration values the simulation cannot run with.
func (c BreakoutConfig) Validate() error {
	var errs []error
	if err := c.Playfield.validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Ball.Radius <= 0 {
		errs = append(errs, fmt.Errorf("ball radius must be positive, got %g", c.Ball.Radius))
	}
	if c.Paddle.Width <= 0 || c.Paddle.Width > c.Playfield.Width {
		errs = append(errs, fmt.Errorf("paddle width %g does not fit playfield width %g", c.Paddle.Width, c.Playfield.Width))
	}
	if c.Bricks.Rows < 0 || c.Bricks.Columns < 0 {
		errs = append(errs, fmt.Errorf("brick grid %dx%d is invalid", c.Bricks.Columns, c.Bricks.Rows))
	}
	return errors.Join(errs...)
}
