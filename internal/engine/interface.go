// Package engine defines the balance-scoring and rule-compliance contract
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/wrenhall/homebrew-api/internal/engine Engine

import (
	"context"
)

// Engine scores homebrew content for mechanical balance and checks
// character records against D&D 5e rules. Implementations are pure:
// no I/O, no hidden state, safe for any number of concurrent callers.
type Engine interface {
	// Content balance scoring
	ScoreContent(ctx context.Context, input *ScoreContentInput) (*ScoreContentOutput, error)

	// Character rule compliance
	ValidateCharacter(ctx context.Context, input *ValidateCharacterInput) (*ValidateCharacterOutput, error)
	ValidatePointBuy(ctx context.Context, input *ValidatePointBuyInput) (*ValidatePointBuyOutput, error)
	ValidateMulticlass(ctx context.Context, input *ValidateMulticlassInput) (*ValidateMulticlassOutput, error)

	// Damage and survivability modeling
	ExpectedDamagePerRound(input *DamageProfileInput) float64
	SurvivabilityScore(input *SurvivabilityInput) float64

	// Utility methods
	CalculateAbilityModifier(score int32) int32
	CalculateProficiencyBonus(level int32) int32
}
