package homebrew

import (
	"github.com/wrenhall/homebrew-api/internal/engine"
	homebrewdata "github.com/wrenhall/homebrew-api/internal/entities/homebrew"
)

// ScoreContentInput defines the request for scoring a piece of content
type ScoreContentInput struct {
	Content *homebrewdata.ContentRecord

	// Level the content is evaluated at; defaults to 1
	Level int32

	// Weights overrides the default axis weights when non-nil
	Weights *engine.ScoreWeights

	// Constraints surface cap breaches as identified issues
	Constraints *homebrewdata.GenerationConstraints
}

// ScoreContentOutput defines the response for scoring content
type ScoreContentOutput struct {
	Metrics *homebrewdata.BalanceMetrics
}

// ValidateCharacterInput defines the request for validating a character
type ValidateCharacterInput struct {
	Sheet       *homebrewdata.CharacterSheet
	Constraints *homebrewdata.GenerationConstraints
}

// ValidateCharacterOutput defines the response for validating a character
type ValidateCharacterOutput struct {
	Result *homebrewdata.ValidationResult
}

// ValidatePointBuyInput defines the request for checking point-buy scores
type ValidatePointBuyInput struct {
	Scores *homebrewdata.AbilityScores
}

// ValidatePointBuyOutput defines the response for the point-buy check
type ValidatePointBuyOutput struct {
	Result      *homebrewdata.ValidationResult
	PointsSpent int32
}

// ValidateMulticlassInput defines the request for checking multiclass
// prerequisites
type ValidateMulticlassInput struct {
	Sheet       *homebrewdata.CharacterSheet
	TargetClass string
}

// ValidateMulticlassOutput defines the response for the multiclass check
type ValidateMulticlassOutput struct {
	Issues []homebrewdata.ValidationIssue
}

// SubmitContentInput defines the request for scoring and storing content
type SubmitContentInput struct {
	Content *homebrewdata.ContentRecord

	// Level the content is scored at before storage; defaults to 1
	Level int32

	Constraints *homebrewdata.GenerationConstraints
}

// SubmitContentOutput defines the response for submitting content
type SubmitContentOutput struct {
	Content *homebrewdata.ContentRecord
}

// GetContentInput defines the request for fetching stored content
type GetContentInput struct {
	ID string
}

// GetContentOutput defines the response for fetching stored content
type GetContentOutput struct {
	Content *homebrewdata.ContentRecord
}

// ListContentInput defines the request for listing stored content
type ListContentInput struct {
	Type homebrewdata.ContentType
}

// ListContentOutput defines the response for listing stored content
type ListContentOutput struct {
	Contents []*homebrewdata.ContentRecord
}
