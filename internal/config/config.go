// Package config provides YAML/TOML-based game configuration loading for
// Breakout.
package config

import (
	"errors"
	"fmt"
)

// BreakoutConfig contains all tunable configuration for Breakout.
// The block layout is fixed and intentionally not part of it.
type BreakoutConfig struct {
	Field    BreakoutField    `yaml:"field" toml:"field"`
	Paddle   BreakoutPaddle   `yaml:"paddle" toml:"paddle"`
	Ball     BreakoutBall     `yaml:"ball" toml:"ball"`
	Gameplay BreakoutGameplay `yaml:"gameplay" toml:"gameplay"`
}

// BreakoutField defines the play field size in field units.
type BreakoutField struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// BreakoutPaddle defines the paddle. The paddle starts centred horizontally.
type BreakoutPaddle struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	Y      float64 `yaml:"y" toml:"y"`
	Speed  float64 `yaml:"speed" toml:"speed"` // Units per second
}

// BreakoutBall defines the ball's size, start position and velocity increment.
type BreakoutBall struct {
	Radius float64 `yaml:"radius" toml:"radius"`
	X      float64 `yaml:"x" toml:"x"`
	Y      float64 `yaml:"y" toml:"y"`
	VX     float64 `yaml:"vx" toml:"vx"`
	VY     float64 `yaml:"vy" toml:"vy"`
}

// BreakoutGameplay defines scoring and timing.
type BreakoutGameplay struct {
	ScorePerBlock int     `yaml:"score_per_block" toml:"score_per_block"`
	Lives         int     `yaml:"lives" toml:"lives"`
	Timestep      float64 `yaml:"timestep" toml:"timestep"`   // Seconds
	LossLine      float64 `yaml:"loss_line" toml:"loss_line"` // Field y
}

// Extent of the fixed block layout in field units. The field must contain it.
const (
	LayoutRight  = 1070 // Right edge of the last block column
	LayoutBottom = 220  // Bottom edge of the last block row
)

// Validate reports every invalid value in the config, joined into one error.
func (c BreakoutConfig) Validate() error {
	var errs []error
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, fmt.Errorf("field size must be positive, got %vx%v", c.Field.Width, c.Field.Height))
	}
	if c.Field.Width < LayoutRight {
		errs = append(errs, fmt.Errorf("field width %v is narrower than the block layout (%d)", c.Field.Width, LayoutRight))
	}
	if c.Field.Height <= LayoutBottom {
		errs = append(errs, fmt.Errorf("field height %v does not clear the block layout (%d)", c.Field.Height, LayoutBottom))
	}
	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 {
		errs = append(errs, fmt.Errorf("paddle size must be positive, got %vx%v", c.Paddle.Width, c.Paddle.Height))
	}
	if c.Paddle.Width > c.Field.Width {
		errs = append(errs, fmt.Errorf("paddle width %v exceeds field width %v", c.Paddle.Width, c.Field.Width))
	}
	if c.Paddle.Speed < 0 {
		errs = append(errs, fmt.Errorf("paddle speed must not be negative, got %v", c.Paddle.Speed))
	}
	if c.Ball.Radius <= 0 {
		errs = append(errs, fmt.Errorf("ball radius must be positive, got %v", c.Ball.Radius))
	}
	if c.Ball.Y+c.Ball.Radius >= c.Gameplay.LossLine {
		errs = append(errs, fmt.Errorf("ball starts at y %v, at or past the loss line %v", c.Ball.Y, c.Gameplay.LossLine))
	}
	if c.Gameplay.Timestep <= 0 {
		errs = append(errs, fmt.Errorf("timestep must be positive, got %v", c.Gameplay.Timestep))
	}
	if c.Gameplay.ScorePerBlock < 0 {
		errs = append(errs, fmt.Errorf("score_per_block must not be negative, got %d", c.Gameplay.ScorePerBlock))
	}
	if c.Gameplay.Lives < 0 {
		errs = append(errs, fmt.Errorf("lives must not be negative, got %d", c.Gameplay.Lives))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid breakout config: %w", errors.Join(errs...))
	}
	return nil
}
