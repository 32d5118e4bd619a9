package homebrew

import (
	"github.com/wrenhall/homebrew-api/internal/errors"
)

// GenerationConstraints is the immutable rule-set a generation request
// runs under. Derived variants are produced by copying, never by editing
// in place.
type GenerationConstraints struct {
	PowerLevel string // low, standard, high, epic
	MinLevel   int32
	MaxLevel   int32

	ForbiddenElements []string
	RequiredElements  []string
	ForbiddenThemes   []string
	RequiredThemes    []string

	// MechanicalLimits maps limit names (e.g. "max_enhancement_bonus")
	// to numeric caps
	MechanicalLimits map[string]float64

	// ContentTypeLimits overrides MechanicalLimits per content type
	ContentTypeLimits map[ContentType]map[string]float64
}

// DefaultConstraints returns the constraints applied when a caller
// supplies none: standard power, full level range, no restrictions.
func DefaultConstraints() *GenerationConstraints {
	return &GenerationConstraints{
		PowerLevel: string(PowerTierStandard),
		MinLevel:   LevelMin,
		MaxLevel:   LevelMax,
	}
}

// LimitFor resolves the cap for a limit name, preferring the per-type
// override. The second return reports whether any cap is set.
func (g *GenerationConstraints) LimitFor(contentType ContentType, name string) (float64, bool) {
	if overrides, ok := g.ContentTypeLimits[contentType]; ok {
		if cap, ok := overrides[name]; ok {
			return cap, true
		}
	}
	cap, ok := g.MechanicalLimits[name]
	return cap, ok
}

// WithPowerLevel returns a copy with a different power level
func (g *GenerationConstraints) WithPowerLevel(powerLevel string) *GenerationConstraints {
	derived := g.clone()
	derived.PowerLevel = powerLevel
	return derived
}

// WithLevelRange returns a copy with different level bounds
func (g *GenerationConstraints) WithLevelRange(minLevel, maxLevel int32) *GenerationConstraints {
	derived := g.clone()
	derived.MinLevel = minLevel
	derived.MaxLevel = maxLevel
	return derived
}

// Relaxed returns a copy with the forbidden lists and mechanical caps
// cleared, keeping power level and level bounds. Used when a generation
// pass can't satisfy the stricter rule set.
func (g *GenerationConstraints) Relaxed() *GenerationConstraints {
	derived := g.clone()
	derived.ForbiddenElements = nil
	derived.ForbiddenThemes = nil
	derived.MechanicalLimits = nil
	derived.ContentTypeLimits = nil
	return derived
}

func (g *GenerationConstraints) clone() *GenerationConstraints {
	derived := &GenerationConstraints{
		PowerLevel:        g.PowerLevel,
		MinLevel:          g.MinLevel,
		MaxLevel:          g.MaxLevel,
		ForbiddenElements: append([]string(nil), g.ForbiddenElements...),
		RequiredElements:  append([]string(nil), g.RequiredElements...),
		ForbiddenThemes:   append([]string(nil), g.ForbiddenThemes...),
		RequiredThemes:    append([]string(nil), g.RequiredThemes...),
	}
	if g.MechanicalLimits != nil {
		derived.MechanicalLimits = make(map[string]float64, len(g.MechanicalLimits))
		for k, v := range g.MechanicalLimits {
			derived.MechanicalLimits[k] = v
		}
	}
	if g.ContentTypeLimits != nil {
		derived.ContentTypeLimits = make(map[ContentType]map[string]float64, len(g.ContentTypeLimits))
		for ct, limits := range g.ContentTypeLimits {
			inner := make(map[string]float64, len(limits))
			for k, v := range limits {
				inner[k] = v
			}
			derived.ContentTypeLimits[ct] = inner
		}
	}
	return derived
}

// Validate checks the constraint invariants: power level in the
// enumerated set, level bounds within [1,20], min not above max.
func (g *GenerationConstraints) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateEnum("power_level", g.PowerLevel, PowerTiers, vb)
	errors.ValidateRange("min_level", int(g.MinLevel), LevelMin, LevelMax, vb)
	errors.ValidateRange("max_level", int(g.MaxLevel), LevelMin, LevelMax, vb)
	if g.MinLevel > g.MaxLevel {
		vb.Field("min_level", "must not exceed max_level")
	}

	return vb.Build()
}
