package engine

import (
	"github.com/wrenhall/homebrew-api/internal/entities/homebrew"
)

// ScoreWeights are the axis weights for the overall balance score.
// A nil ScoreWeights means the defaults; non-default weights are
// renormalized to sum to 1 before use.
type ScoreWeights struct {
	Power       float64
	Utility     float64
	Versatility float64
	Scaling     float64
}

// DefaultScoreWeights returns the standard axis weighting
func DefaultScoreWeights() *ScoreWeights {
	return &ScoreWeights{
		Power:       0.3,
		Utility:     0.25,
		Versatility: 0.25,
		Scaling:     0.2,
	}
}

// ScoreContentInput contains the content record to score
type ScoreContentInput struct {
	Content *homebrew.ContentRecord

	// Level the content is scored at; defaults to 1
	Level int32

	// Weights overrides the default axis weights when non-nil
	Weights *ScoreWeights

	// Constraints, when non-nil, surface cap breaches as identified
	// issues on the metrics
	Constraints *homebrew.GenerationConstraints
}

// ScoreContentOutput contains the balance metrics
type ScoreContentOutput struct {
	Metrics *homebrew.BalanceMetrics
}

// ValidateCharacterInput contains the character sheet to check
type ValidateCharacterInput struct {
	Sheet *homebrew.CharacterSheet

	// Constraints defaults to DefaultConstraints when nil
	Constraints *homebrew.GenerationConstraints
}

// ValidateCharacterOutput contains the aggregated rule-check result
type ValidateCharacterOutput struct {
	Result *homebrew.ValidationResult
}

// ValidatePointBuyInput contains base ability scores, racial bonuses
// excluded
type ValidatePointBuyInput struct {
	Scores *homebrew.AbilityScores
}

// ValidatePointBuyOutput contains the point-buy check result
type ValidatePointBuyOutput struct {
	Result *homebrew.ValidationResult

	// PointsSpent is the total point-buy cost of the six scores
	PointsSpent int32
}

// ValidateMulticlassInput contains a character and the class they want
// to take a level in
type ValidateMulticlassInput struct {
	Sheet       *homebrew.CharacterSheet
	TargetClass string
}

// ValidateMulticlassOutput contains any prerequisite issues
type ValidateMulticlassOutput struct {
	Issues []homebrew.ValidationIssue
}

// DamageProfileInput describes one attack routine
type DamageProfileInput struct {
	AttackBonus int32
	DamageDice  string // dice notation, e.g. "2d6"
	FlatBonus   float64
	NumAttacks  int32
	TargetAC    int32

	// CritThreshold defaults to 20 when 0
	CritThreshold int32
}

// SurvivabilityInput describes a character's defensive profile
type SurvivabilityInput struct {
	ArmorClass        int32
	HitPoints         int32
	SaveProficiencies []string
	Resistances       []string
	Immunities        []string
	Level             int32
}
