package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Field: BreakoutField{
			Width:  1200,
			Height: 800,
		},
		Paddle: BreakoutPaddle{
			Width:  150,
			Height: 20,
			Y:      700,
			Speed:  15,
		},
		Ball: BreakoutBall{
			Radius: 12,
			X:      600,
			Y:      650,
			VX:     5,
			VY:     5,
		},
		Gameplay: BreakoutGameplay{
			ScorePerBlock: 20,
			Lives:         3,
			Timestep:      0.1,
			LossLine:      800,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
