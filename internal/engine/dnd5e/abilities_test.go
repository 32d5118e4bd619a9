package dnd5e

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbilityModifier(t *testing.T) {
	tests := []struct {
		score int32
		want  int32
	}{
		{score: 1, want: -5},
		{score: 8, want: -1},
		{score: 9, want: -1},
		{score: 10, want: 0},
		{score: 11, want: 0},
		{score: 12, want: 1},
		{score: 15, want: 2},
		{score: 20, want: 5},
		{score: 30, want: 10},
		// Clamped inputs
		{score: 0, want: -5},
		{score: 45, want: 10},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, AbilityModifier(tt.score), "score %d", tt.score)
	}
}

func TestProficiencyBonus(t *testing.T) {
	tests := []struct {
		level int32
		want  int32
	}{
		{level: 1, want: 2},
		{level: 4, want: 2},
		{level: 5, want: 3},
		{level: 8, want: 3},
		{level: 9, want: 4},
		{level: 12, want: 4},
		{level: 13, want: 5},
		{level: 16, want: 5},
		{level: 17, want: 6},
		{level: 20, want: 6},
		// Clamped inputs
		{level: 0, want: 2},
		{level: 25, want: 6},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ProficiencyBonus(tt.level), "level %d", tt.level)
	}
}

func TestProficiencyBonusMonotonic(t *testing.T) {
	prev := ProficiencyBonus(1)
	for level := int32(2); level <= 20; level++ {
		current := ProficiencyBonus(level)
		assert.GreaterOrEqual(t, current, prev, "bonus dropped at level %d", level)
		prev = current
	}
}

func TestSkillOrSaveBonus(t *testing.T) {
	// STR 16 at level 5: +3 modifier, +3 proficiency
	assert.Equal(t, int32(3), SkillOrSaveBonus(16, false, false, 5))
	assert.Equal(t, int32(6), SkillOrSaveBonus(16, true, false, 5))
	assert.Equal(t, int32(9), SkillOrSaveBonus(16, false, true, 5))

	// Expertise implies proficiency even when the flag is unset
	assert.Equal(t, int32(9), SkillOrSaveBonus(16, true, true, 5))
}

func TestAdapterDelegates(t *testing.T) {
	adapter := New()
	assert.Equal(t, int32(-1), adapter.CalculateAbilityModifier(9))
	assert.Equal(t, int32(5), adapter.CalculateAbilityModifier(20))
	assert.Equal(t, int32(4), adapter.CalculateProficiencyBonus(9))
}
