package dnd5e

import (
	"github.com/wrenhall/homebrew-api/internal/engine"
)

// Survivability blend weights: AC 40%, effective HP 40%, save coverage 20%
const (
	survivabilityACWeight   = 0.4
	survivabilityHPWeight   = 0.4
	survivabilitySaveWeight = 0.2
)

// ExpectedDamagePerRound computes the expected damage of an attack
// routine against a target AC. Hit chance is clamped to [0.05, 0.95]
// (a natural 1 always misses, a natural 20 always hits). Criticals
// double the averaged damage term; the flat bonus sits inside that
// average, so it doubles too — a deliberate simplification.
func (a *Adapter) ExpectedDamagePerRound(input *engine.DamageProfileInput) float64 {
	if input == nil {
		return 0
	}

	critThreshold := input.CritThreshold
	if critThreshold == 0 {
		critThreshold = 20
	}
	critThreshold = clampInt32(critThreshold, 2, 20)

	hitChance := clampFloat(float64(21-(input.TargetAC-input.AttackBonus))/20, 0.05, 0.95)
	critChance := float64(21-critThreshold) / 20
	normalHitChance := hitChance - critChance
	if normalHitChance < 0 {
		normalHitChance = 0
	}

	avg := averageDamageFromNotation(input.DamageDice) + input.FlatBonus

	numAttacks := input.NumAttacks
	if numAttacks < 1 {
		numAttacks = 1
	}

	return float64(numAttacks) * (avg*normalHitChance + avg*2*critChance)
}

// SurvivabilityScore scores a defensive profile in [0,1] against
// level-scaled AC and HP baselines. Resistances and immunities inflate
// effective HP; save proficiencies count coverage out of six.
func (a *Adapter) SurvivabilityScore(input *engine.SurvivabilityInput) float64 {
	if input == nil {
		return 0
	}

	level := clampInt32(input.Level, 1, 20)
	expectedAC := float64(10 + level/2)
	expectedHP := float64(8 + 6*level)

	effectiveHP := float64(input.HitPoints) *
		(1 + 0.3*float64(len(input.Resistances))) *
		(1 + 0.5*float64(len(input.Immunities)))

	acScore := clamp01(float64(input.ArmorClass) / expectedAC)
	hpScore := clamp01(effectiveHP / expectedHP)
	saveScore := clamp01(float64(len(input.SaveProficiencies)) / 6)

	return survivabilityACWeight*acScore +
		survivabilityHPWeight*hpScore +
		survivabilitySaveWeight*saveScore
}
