// Package dnd5e provides the concrete implementation of the engine
// interface for D&D 5e rules.
package dnd5e

import (
	"github.com/wrenhall/homebrew-api/internal/engine"
)

// Adapter implements the engine.Engine interface. It holds no mutable
// state; every operation is a pure function over its inputs.
type Adapter struct{}

// New creates a new D&D 5e engine adapter
func New() *Adapter {
	return &Adapter{}
}

// Verify that Adapter implements engine.Engine
var _ engine.Engine = (*Adapter)(nil)

// clamp01 clamps a score to [0.0, 1.0]
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// clampFloat clamps v to [low, high]
func clampFloat(v, low, high float64) float64 {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}

// clampInt32 clamps v to [low, high]
func clampInt32(v, low, high int32) int32 {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
