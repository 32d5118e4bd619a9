package dnd5e

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrenhall/homebrew-api/internal/engine"
	"github.com/wrenhall/homebrew-api/internal/entities/homebrew"
	"github.com/wrenhall/homebrew-api/internal/errors"
)

func validScores() *homebrew.AbilityScores {
	return &homebrew.AbilityScores{
		Strength:     10,
		Dexterity:    14,
		Constitution: 12,
		Intelligence: 16,
		Wisdom:       10,
		Charisma:     8,
	}
}

func TestValidateCharacter(t *testing.T) {
	adapter := New()

	t.Run("valid single-class character", func(t *testing.T) {
		output, err := adapter.ValidateCharacter(context.Background(), &engine.ValidateCharacterInput{
			Sheet: &homebrew.CharacterSheet{
				Name:          "Elyndra",
				Classes:       []homebrew.ClassLevel{{Class: homebrew.ClassWizard, Level: 3}},
				AbilityScores: validScores(),
			},
		})
		require.NoError(t, err)
		assert.True(t, output.Result.IsValid)
		assert.Empty(t, output.Result.Issues)
	})

	t.Run("nil sheet is the only hard failure", func(t *testing.T) {
		_, err := adapter.ValidateCharacter(context.Background(), &engine.ValidateCharacterInput{})
		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))
	})

	t.Run("missing ability scores", func(t *testing.T) {
		output, err := adapter.ValidateCharacter(context.Background(), &engine.ValidateCharacterInput{
			Sheet: &homebrew.CharacterSheet{
				Classes: []homebrew.ClassLevel{{Class: homebrew.ClassFighter, Level: 1}},
			},
		})
		require.NoError(t, err)
		assert.False(t, output.Result.IsValid)
		require.NotEmpty(t, output.Result.Issues)
		assert.Equal(t, "MISSING_ABILITY_SCORES", output.Result.Issues[0].Code)
	})

	t.Run("score outside legal range blocks", func(t *testing.T) {
		scores := validScores()
		scores.Strength = 35
		output, err := adapter.ValidateCharacter(context.Background(), &engine.ValidateCharacterInput{
			Sheet: &homebrew.CharacterSheet{
				Classes:       []homebrew.ClassLevel{{Class: homebrew.ClassFighter, Level: 1}},
				AbilityScores: scores,
			},
		})
		require.NoError(t, err)
		assert.False(t, output.Result.IsValid)
		assert.Equal(t, "ABILITY_SCORE_OUT_OF_RANGE", output.Result.Violations()[0].Code)
	})

	t.Run("score outside playable band only warns", func(t *testing.T) {
		scores := validScores()
		scores.Charisma = 2
		output, err := adapter.ValidateCharacter(context.Background(), &engine.ValidateCharacterInput{
			Sheet: &homebrew.CharacterSheet{
				Classes:       []homebrew.ClassLevel{{Class: homebrew.ClassFighter, Level: 1}},
				AbilityScores: scores,
			},
		})
		require.NoError(t, err)
		assert.True(t, output.Result.IsValid)
		require.Len(t, output.Result.Warnings(), 1)
		assert.Equal(t, "UNUSUAL_ABILITY_SCORE", output.Result.Warnings()[0].Code)
	})

	t.Run("no classes blocks", func(t *testing.T) {
		output, err := adapter.ValidateCharacter(context.Background(), &engine.ValidateCharacterInput{
			Sheet: &homebrew.CharacterSheet{AbilityScores: validScores()},
		})
		require.NoError(t, err)
		assert.False(t, output.Result.IsValid)
		assert.Equal(t, "MISSING_CLASS", output.Result.Violations()[0].Code)
	})

	t.Run("total level above twenty blocks", func(t *testing.T) {
		output, err := adapter.ValidateCharacter(context.Background(), &engine.ValidateCharacterInput{
			Sheet: &homebrew.CharacterSheet{
				Classes: []homebrew.ClassLevel{
					{Class: homebrew.ClassFighter, Level: 15},
					{Class: homebrew.ClassRogue, Level: 8},
				},
				AbilityScores: validScores(),
			},
		})
		require.NoError(t, err)
		assert.False(t, output.Result.IsValid)

		codes := issueCodes(output.Result.Violations())
		assert.Contains(t, codes, "TOTAL_LEVEL_EXCEEDED")
	})

	t.Run("multiclass prerequisites checked on every class", func(t *testing.T) {
		// Rogue needs DEX 13, Wizard needs INT 13; this character has
		// neither
		output, err := adapter.ValidateCharacter(context.Background(), &engine.ValidateCharacterInput{
			Sheet: &homebrew.CharacterSheet{
				Classes: []homebrew.ClassLevel{
					{Class: homebrew.ClassRogue, Level: 3},
					{Class: homebrew.ClassWizard, Level: 2},
				},
				AbilityScores: &homebrew.AbilityScores{
					Strength: 14, Dexterity: 10, Constitution: 12,
					Intelligence: 10, Wisdom: 10, Charisma: 10,
				},
			},
		})
		require.NoError(t, err)
		assert.False(t, output.Result.IsValid)
		assert.Len(t, output.Result.Violations(), 2)
	})

	t.Run("spell above castable level warns", func(t *testing.T) {
		// A level-3 wizard caps at 2nd-level spells
		output, err := adapter.ValidateCharacter(context.Background(), &engine.ValidateCharacterInput{
			Sheet: &homebrew.CharacterSheet{
				Classes:       []homebrew.ClassLevel{{Class: homebrew.ClassWizard, Level: 3}},
				AbilityScores: validScores(),
				Spells:        []homebrew.KnownSpell{{Name: "Cone of Cold", Level: 5}},
			},
		})
		require.NoError(t, err)
		assert.True(t, output.Result.IsValid)
		require.Len(t, output.Result.Warnings(), 1)
		assert.Equal(t, "SPELL_LEVEL_TOO_HIGH", output.Result.Warnings()[0].Code)
	})

	t.Run("high rarity equipment at low level warns", func(t *testing.T) {
		output, err := adapter.ValidateCharacter(context.Background(), &engine.ValidateCharacterInput{
			Sheet: &homebrew.CharacterSheet{
				Classes:       []homebrew.ClassLevel{{Class: homebrew.ClassFighter, Level: 4}},
				AbilityScores: validScores(),
				Equipment: []homebrew.CarriedItem{
					{Name: "Holy Avenger", Rarity: homebrew.RarityLegendary},
				},
			},
		})
		require.NoError(t, err)
		assert.True(t, output.Result.IsValid)
		require.Len(t, output.Result.Warnings(), 1)
		assert.Equal(t, "HIGH_RARITY_FOR_LEVEL", output.Result.Warnings()[0].Code)
	})

	t.Run("point buy checked when base scores present", func(t *testing.T) {
		output, err := adapter.ValidateCharacter(context.Background(), &engine.ValidateCharacterInput{
			Sheet: &homebrew.CharacterSheet{
				Classes:       []homebrew.ClassLevel{{Class: homebrew.ClassFighter, Level: 1}},
				AbilityScores: validScores(),
				BaseAbilityScores: &homebrew.AbilityScores{
					Strength: 15, Dexterity: 15, Constitution: 15,
					Intelligence: 15, Wisdom: 15, Charisma: 15,
				},
			},
		})
		require.NoError(t, err)
		assert.False(t, output.Result.IsValid)

		codes := issueCodes(output.Result.Violations())
		assert.Contains(t, codes, "POINT_BUY_EXCEEDED")
	})
}

func TestValidatePointBuy(t *testing.T) {
	adapter := New()

	t.Run("standard array spends exactly 27", func(t *testing.T) {
		output, err := adapter.ValidatePointBuy(context.Background(), &engine.ValidatePointBuyInput{
			Scores: &homebrew.AbilityScores{
				Strength: 15, Dexterity: 14, Constitution: 13,
				Intelligence: 12, Wisdom: 10, Charisma: 8,
			},
		})
		require.NoError(t, err)
		assert.True(t, output.Result.IsValid)
		assert.Empty(t, output.Result.Issues)
		assert.Equal(t, int32(27), output.PointsSpent)
	})

	t.Run("score above fifteen rejected before the budget check", func(t *testing.T) {
		output, err := adapter.ValidatePointBuy(context.Background(), &engine.ValidatePointBuyInput{
			Scores: &homebrew.AbilityScores{
				Strength: 16, Dexterity: 8, Constitution: 8,
				Intelligence: 8, Wisdom: 8, Charisma: 8,
			},
		})
		require.NoError(t, err)
		assert.False(t, output.Result.IsValid)
		assert.Equal(t, "INVALID_POINT_BUY_SCORE", output.Result.Violations()[0].Code)
	})

	t.Run("overspent budget blocks", func(t *testing.T) {
		output, err := adapter.ValidatePointBuy(context.Background(), &engine.ValidatePointBuyInput{
			Scores: &homebrew.AbilityScores{
				Strength: 15, Dexterity: 15, Constitution: 14,
				Intelligence: 10, Wisdom: 10, Charisma: 8,
			},
		})
		require.NoError(t, err)
		assert.False(t, output.Result.IsValid)

		codes := issueCodes(output.Result.Violations())
		assert.Contains(t, codes, "POINT_BUY_EXCEEDED")
	})

	t.Run("unspent points only warn", func(t *testing.T) {
		output, err := adapter.ValidatePointBuy(context.Background(), &engine.ValidatePointBuyInput{
			Scores: &homebrew.AbilityScores{
				Strength: 10, Dexterity: 10, Constitution: 10,
				Intelligence: 10, Wisdom: 10, Charisma: 10,
			},
		})
		require.NoError(t, err)
		assert.True(t, output.Result.IsValid)
		require.Len(t, output.Result.Warnings(), 1)
		assert.Equal(t, "UNSPENT_POINTS", output.Result.Warnings()[0].Code)
		assert.Equal(t, int32(12), output.PointsSpent)
	})

	t.Run("nil scores is an error", func(t *testing.T) {
		_, err := adapter.ValidatePointBuy(context.Background(), &engine.ValidatePointBuyInput{})
		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))
	})
}

func TestValidateMulticlass(t *testing.T) {
	adapter := New()

	t.Run("paladin needs strength and charisma", func(t *testing.T) {
		output, err := adapter.ValidateMulticlass(context.Background(), &engine.ValidateMulticlassInput{
			Sheet: &homebrew.CharacterSheet{
				AbilityScores: &homebrew.AbilityScores{
					Strength: 12, Dexterity: 10, Constitution: 12,
					Intelligence: 10, Wisdom: 10, Charisma: 14,
				},
			},
			TargetClass: homebrew.ClassPaladin,
		})
		require.NoError(t, err)
		require.Len(t, output.Issues, 1)
		assert.True(t, output.Issues[0].Severity.Blocking())
		assert.Contains(t, output.Issues[0].Message, "strength")
	})

	t.Run("fighter accepts strength or dexterity", func(t *testing.T) {
		output, err := adapter.ValidateMulticlass(context.Background(), &engine.ValidateMulticlassInput{
			Sheet: &homebrew.CharacterSheet{
				AbilityScores: &homebrew.AbilityScores{
					Strength: 10, Dexterity: 14, Constitution: 12,
					Intelligence: 10, Wisdom: 10, Charisma: 10,
				},
			},
			TargetClass: homebrew.ClassFighter,
		})
		require.NoError(t, err)
		assert.Empty(t, output.Issues)
	})

	t.Run("existing classes are rechecked", func(t *testing.T) {
		// Dropping WIS below 13 invalidates the monk levels too
		output, err := adapter.ValidateMulticlass(context.Background(), &engine.ValidateMulticlassInput{
			Sheet: &homebrew.CharacterSheet{
				Classes: []homebrew.ClassLevel{{Class: homebrew.ClassMonk, Level: 5}},
				AbilityScores: &homebrew.AbilityScores{
					Strength: 10, Dexterity: 16, Constitution: 12,
					Intelligence: 10, Wisdom: 10, Charisma: 10,
				},
			},
			TargetClass: homebrew.ClassRogue,
		})
		require.NoError(t, err)
		require.Len(t, output.Issues, 1)
		assert.Contains(t, output.Issues[0].Message, homebrew.ClassMonk)
	})

	t.Run("homebrew class has no prerequisites", func(t *testing.T) {
		output, err := adapter.ValidateMulticlass(context.Background(), &engine.ValidateMulticlassInput{
			Sheet: &homebrew.CharacterSheet{
				AbilityScores: &homebrew.AbilityScores{
					Strength: 8, Dexterity: 8, Constitution: 8,
					Intelligence: 8, Wisdom: 8, Charisma: 8,
				},
			},
			TargetClass: "bloodhunter",
		})
		require.NoError(t, err)
		assert.Empty(t, output.Issues)
	})

	t.Run("missing target class is an error", func(t *testing.T) {
		_, err := adapter.ValidateMulticlass(context.Background(), &engine.ValidateMulticlassInput{
			Sheet: &homebrew.CharacterSheet{AbilityScores: validScores()},
		})
		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))
	})
}

func issueCodes(issues []homebrew.ValidationIssue) []string {
	codes := make([]string, 0, len(issues))
	for _, issue := range issues {
		codes = append(codes, issue.Code)
	}
	return codes
}
