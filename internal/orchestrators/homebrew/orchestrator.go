// Package homebrew implements the orchestrator for balance scoring and
// rule compliance of homebrew content.
package homebrew

//go:generate mockgen -destination=mock/mock_service.go -package=homebrewmock github.com/wrenhall/homebrew-api/internal/orchestrators/homebrew Service

import (
	"context"
	"log/slog"

	"github.com/wrenhall/homebrew-api/internal/engine"
	"github.com/wrenhall/homebrew-api/internal/errors"
	"github.com/wrenhall/homebrew-api/internal/pkg/idgen"
	"github.com/wrenhall/homebrew-api/internal/repositories/content"
)

// Service defines the interface for homebrew content operations
type Service interface {
	// Scoring and rule compliance
	ScoreContent(ctx context.Context, input *ScoreContentInput) (*ScoreContentOutput, error)
	ValidateCharacter(ctx context.Context, input *ValidateCharacterInput) (*ValidateCharacterOutput, error)
	ValidatePointBuy(ctx context.Context, input *ValidatePointBuyInput) (*ValidatePointBuyOutput, error)
	ValidateMulticlass(ctx context.Context, input *ValidateMulticlassInput) (*ValidateMulticlassOutput, error)

	// Content registry
	SubmitContent(ctx context.Context, input *SubmitContentInput) (*SubmitContentOutput, error)
	GetContent(ctx context.Context, input *GetContentInput) (*GetContentOutput, error)
	ListContent(ctx context.Context, input *ListContentInput) (*ListContentOutput, error)
}

// Config holds the dependencies for the homebrew orchestrator
type Config struct {
	Engine      engine.Engine
	ContentRepo content.Repository
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.ContentRepo == nil {
		vb.RequiredField("ContentRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	engine      engine.Engine
	contentRepo content.Repository
	idGen       idgen.Generator
}

// NewOrchestrator creates a new homebrew orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		engine:      cfg.Engine,
		contentRepo: cfg.ContentRepo,
		idGen:       cfg.IDGenerator,
	}, nil
}

// ScoreContent computes balance metrics for a content record without
// storing anything
func (o *orchestrator) ScoreContent(ctx context.Context, input *ScoreContentInput) (*ScoreContentOutput, error) {
	if input == nil || input.Content == nil {
		return nil, errors.InvalidArgument("content is required")
	}

	scoreOutput, err := o.engine.ScoreContent(ctx, &engine.ScoreContentInput{
		Content:     input.Content,
		Level:       input.Level,
		Weights:     input.Weights,
		Constraints: input.Constraints,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to score content")
	}

	slog.InfoContext(ctx, "Content scored",
		"content_name", input.Content.Name,
		"content_type", input.Content.Type,
		"overall_score", scoreOutput.Metrics.OverallScore,
		"power_tier", scoreOutput.Metrics.PowerTier,
	)

	return &ScoreContentOutput{Metrics: scoreOutput.Metrics}, nil
}

// ValidateCharacter runs the full rule-compliance pass over a character
// sheet
func (o *orchestrator) ValidateCharacter(ctx context.Context, input *ValidateCharacterInput) (*ValidateCharacterOutput, error) {
	if input == nil || input.Sheet == nil {
		return nil, errors.InvalidArgument("character sheet is required")
	}

	validateOutput, err := o.engine.ValidateCharacter(ctx, &engine.ValidateCharacterInput{
		Sheet:       input.Sheet,
		Constraints: input.Constraints,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to validate character")
	}

	slog.InfoContext(ctx, "Character validated",
		"character_name", input.Sheet.Name,
		"is_valid", validateOutput.Result.IsValid,
		"issue_count", len(validateOutput.Result.Issues),
	)

	return &ValidateCharacterOutput{Result: validateOutput.Result}, nil
}

// ValidatePointBuy checks base ability scores against the point-buy budget
func (o *orchestrator) ValidatePointBuy(ctx context.Context, input *ValidatePointBuyInput) (*ValidatePointBuyOutput, error) {
	if input == nil || input.Scores == nil {
		return nil, errors.InvalidArgument("ability scores are required")
	}

	pointBuyOutput, err := o.engine.ValidatePointBuy(ctx, &engine.ValidatePointBuyInput{
		Scores: input.Scores,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to validate point buy")
	}

	return &ValidatePointBuyOutput{
		Result:      pointBuyOutput.Result,
		PointsSpent: pointBuyOutput.PointsSpent,
	}, nil
}

// ValidateMulticlass checks the prerequisites for taking a level in the
// target class
func (o *orchestrator) ValidateMulticlass(ctx context.Context, input *ValidateMulticlassInput) (*ValidateMulticlassOutput, error) {
	if input == nil || input.Sheet == nil {
		return nil, errors.InvalidArgument("character sheet is required")
	}

	multiclassOutput, err := o.engine.ValidateMulticlass(ctx, &engine.ValidateMulticlassInput{
		Sheet:       input.Sheet,
		TargetClass: input.TargetClass,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to validate multiclass")
	}

	return &ValidateMulticlassOutput{Issues: multiclassOutput.Issues}, nil
}

// SubmitContent scores a content record and stores it with the metrics
// attached. An ID is assigned when the record doesn't carry one.
func (o *orchestrator) SubmitContent(ctx context.Context, input *SubmitContentInput) (*SubmitContentOutput, error) {
	if input == nil || input.Content == nil {
		return nil, errors.InvalidArgument("content is required")
	}
	if input.Content.Name == "" {
		return nil, errors.InvalidArgument("content name is required")
	}
	if input.Content.Type == "" {
		return nil, errors.InvalidArgument("content type is required")
	}

	scoreOutput, err := o.engine.ScoreContent(ctx, &engine.ScoreContentInput{
		Content:     input.Content,
		Level:       input.Level,
		Constraints: input.Constraints,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to score content")
	}

	record := input.Content
	record.Metrics = scoreOutput.Metrics
	if record.ID == "" {
		record.ID = o.idGen.Generate()
	}

	createOutput, err := o.contentRepo.Create(ctx, content.CreateInput{Content: record})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store content")
	}

	slog.InfoContext(ctx, "Content submitted",
		"content_id", createOutput.Content.ID,
		"content_type", createOutput.Content.Type,
		"overall_score", scoreOutput.Metrics.OverallScore,
	)

	return &SubmitContentOutput{Content: createOutput.Content}, nil
}

// GetContent retrieves a stored content record by ID
func (o *orchestrator) GetContent(ctx context.Context, input *GetContentInput) (*GetContentOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("content ID is required")
	}

	getOutput, err := o.contentRepo.Get(ctx, content.GetInput{ID: input.ID})
	if err != nil {
		return nil, err
	}

	return &GetContentOutput{Content: getOutput.Content}, nil
}

// ListContent retrieves stored content records of one type
func (o *orchestrator) ListContent(ctx context.Context, input *ListContentInput) (*ListContentOutput, error) {
	if input == nil || input.Type == "" {
		return nil, errors.InvalidArgument("content type is required")
	}

	listOutput, err := o.contentRepo.ListByType(ctx, content.ListByTypeInput{Type: input.Type})
	if err != nil {
		return nil, err
	}

	return &ListContentOutput{Contents: listOutput.Contents}, nil
}
