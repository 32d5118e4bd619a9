package dnd5e

import (
	"github.com/wrenhall/homebrew-api/internal/entities/homebrew"
)

// AbilityModifier returns the D&D 5e modifier for an ability score:
// floor((score - 10) / 2) with floor toward negative infinity, so a
// score of 9 gives -1. Scores are clamped to [1,30] first.
func AbilityModifier(score int32) int32 {
	score = clampInt32(score, homebrew.AbilityScoreAbsoluteMin, homebrew.AbilityScoreAbsoluteMax)
	diff := score - 10
	if diff < 0 && diff%2 != 0 {
		return diff/2 - 1
	}
	return diff / 2
}

// ProficiencyBonus returns the proficiency bonus for a character level.
// Levels are clamped to [1,20] before the lookup.
func ProficiencyBonus(level int32) int32 {
	level = clampInt32(level, homebrew.LevelMin, homebrew.LevelMax)
	switch {
	case level >= 17:
		return 6
	case level >= 13:
		return 5
	case level >= 9:
		return 4
	case level >= 5:
		return 3
	default:
		return 2
	}
}

// SkillOrSaveBonus composes a skill or saving-throw bonus from an
// ability score and proficiency state. Expertise doubles the
// proficiency bonus and implies proficiency.
func SkillOrSaveBonus(abilityScore int32, proficient, expertise bool, level int32) int32 {
	multiplier := int32(0)
	switch {
	case expertise:
		multiplier = 2
	case proficient:
		multiplier = 1
	}
	return AbilityModifier(abilityScore) + ProficiencyBonus(level)*multiplier
}

// CalculateAbilityModifier implements engine.Engine
func (a *Adapter) CalculateAbilityModifier(score int32) int32 {
	return AbilityModifier(score)
}

// CalculateProficiencyBonus implements engine.Engine
func (a *Adapter) CalculateProficiencyBonus(level int32) int32 {
	return ProficiencyBonus(level)
}
