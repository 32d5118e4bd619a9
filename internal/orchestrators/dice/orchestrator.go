// Package dice implements the dice orchestrator for handling dice roll sessions
package dice

//go:generate mockgen -destination=mock/mock_service.go -package=dicemock github.com/wrenhall/homebrew-api/internal/orchestrators/dice Service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/wrenhall/homebrew-api/internal/errors"
	"github.com/wrenhall/homebrew-api/internal/pkg/idgen"
	"github.com/wrenhall/homebrew-api/internal/repositories/rollsession"
)

const (
	// PurposeAbilityScores groups the rolls of one ability-score set
	PurposeAbilityScores = "ability_scores"

	// DefaultSessionTTL is how long roll sessions live
	DefaultSessionTTL = 15 * time.Minute

	// Ability score rolling methods
	MethodStandard = "4d6_drop_lowest"
	MethodClassic  = "3d6"
)

// Regex for simple dice notation like "2d6", "1d20"
var diceNotationRegex = regexp.MustCompile(`^(\d+)d(\d+)$`)

// Service defines the interface for dice operations
type Service interface {
	// Generic dice rolling
	RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error)
	GetRollSession(ctx context.Context, input *GetRollSessionInput) (*GetRollSessionOutput, error)
	ClearRollSession(ctx context.Context, input *ClearRollSessionInput) (*ClearRollSessionOutput, error)

	// Specialized ability score rolling for character creation
	RollAbilityScores(ctx context.Context, input *RollAbilityScoresInput) (*RollAbilityScoresOutput, error)
}

// Config holds the dependencies for the dice orchestrator
type Config struct {
	RollSessionRepo rollsession.Repository
	IDGenerator     idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.RollSessionRepo == nil {
		vb.RequiredField("RollSessionRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	rollSessionRepo rollsession.Repository
	idGen           idgen.Generator
}

// NewOrchestrator creates a new dice orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		rollSessionRepo: cfg.RollSessionRepo,
		idGen:           cfg.IDGenerator,
	}, nil
}

// parseDiceNotation parses simple notation like "2d6" into count and size
func (o *orchestrator) parseDiceNotation(notation string) (count, size int, err error) {
	matches := diceNotationRegex.FindStringSubmatch(strings.ToLower(notation))
	if len(matches) != 3 {
		return 0, 0, errors.InvalidArgumentf("invalid dice notation: %s (expected format: XdY)", notation)
	}

	count, err = strconv.Atoi(matches[1])
	if err != nil {
		return 0, 0, errors.InvalidArgumentf("invalid dice count in notation: %s", notation)
	}

	size, err = strconv.Atoi(matches[2])
	if err != nil {
		return 0, 0, errors.InvalidArgumentf("invalid die size in notation: %s", notation)
	}

	if count <= 0 || size <= 0 {
		return 0, 0, errors.InvalidArgumentf("dice count and size must be positive: %s", notation)
	}

	return count, size, nil
}

// rollWithToolkit rolls count dice of the given size and returns the
// kept dice, any dropped dice, and the total.
func (o *orchestrator) rollWithToolkit(count, size, dropLowest int) ([]int32, []int32, int32, error) {
	roll, err := dice.NewRoll(count, size)
	if err != nil {
		return nil, nil, 0, errors.Wrapf(err, "failed to create dice roll")
	}

	total := roll.GetValue()

	// The toolkit doesn't expose individual dice values; pull them out
	// of the description, which reads like "+4d6[3,4,6,1]=14"
	description := roll.GetDescription()
	var individualDice []int32
	start := strings.Index(description, "[")
	end := strings.Index(description, "]")
	if start >= 0 && end > start {
		for _, ds := range strings.Split(description[start+1:end], ",") {
			if d, err := strconv.Atoi(strings.TrimSpace(ds)); err == nil {
				individualDice = append(individualDice, int32(d))
			}
		}
	}

	if dropLowest <= 0 || len(individualDice) <= dropLowest {
		// nolint:gosec // dice totals are always small
		return individualDice, nil, int32(total), nil
	}

	sorted := make([]int32, len(individualDice))
	copy(sorted, individualDice)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	dropped := sorted[:dropLowest]
	kept := sorted[dropLowest:]

	var keptTotal int32
	for _, d := range kept {
		keptTotal += d
	}

	return kept, dropped, keptTotal, nil
}

// RollDice rolls dice using the given notation and appends the result to
// the entity's session, creating the session if needed
func (o *orchestrator) RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error) {
	if input.EntityID == "" {
		return nil, errors.InvalidArgument("entity ID is required")
	}
	if input.Purpose == "" {
		return nil, errors.InvalidArgument("purpose is required")
	}
	if input.Notation == "" {
		return nil, errors.InvalidArgument("dice notation is required")
	}

	count, size, err := o.parseDiceNotation(input.Notation)
	if err != nil {
		return nil, err
	}

	individualDice, dropped, total, err := o.rollWithToolkit(count, size, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll dice")
	}

	roll := &rollsession.Roll{
		RollID:      o.idGen.Generate(),
		Notation:    input.Notation,
		Dice:        individualDice,
		Total:       total,
		Dropped:     dropped,
		Description: input.Description,
	}

	getOutput, err := o.rollSessionRepo.Get(ctx, rollsession.GetInput{
		EntityID: input.EntityID,
		Purpose:  input.Purpose,
	})

	var session *rollsession.RollSession
	if err != nil {
		if !errors.IsNotFound(err) {
			return nil, errors.Wrap(err, "failed to check for existing session")
		}

		ttl := input.TTL
		if ttl == 0 {
			ttl = DefaultSessionTTL
		}

		createOutput, err := o.rollSessionRepo.Create(ctx, rollsession.CreateInput{
			EntityID: input.EntityID,
			Purpose:  input.Purpose,
			Rolls:    []rollsession.Roll{*roll},
			TTL:      ttl,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create roll session")
		}
		session = createOutput.Session
	} else {
		session = getOutput.Session
		session.Rolls = append(session.Rolls, *roll)

		if err := o.rollSessionRepo.Update(ctx, session); err != nil {
			return nil, errors.Wrap(err, "failed to update roll session")
		}
	}

	slog.Info("Dice rolled",
		"entity_id", input.EntityID,
		"purpose", input.Purpose,
		"notation", input.Notation,
		"total", roll.Total,
		"roll_id", roll.RollID,
	)

	return &RollDiceOutput{
		Roll:    roll,
		Session: session,
	}, nil
}

// GetRollSession retrieves an existing roll session
func (o *orchestrator) GetRollSession(ctx context.Context, input *GetRollSessionInput) (*GetRollSessionOutput, error) {
	if input.EntityID == "" {
		return nil, errors.InvalidArgument("entity ID is required")
	}
	if input.Purpose == "" {
		return nil, errors.InvalidArgument("purpose is required")
	}

	getOutput, err := o.rollSessionRepo.Get(ctx, rollsession.GetInput{
		EntityID: input.EntityID,
		Purpose:  input.Purpose,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get roll session")
	}

	return &GetRollSessionOutput{Session: getOutput.Session}, nil
}

// ClearRollSession removes a roll session
func (o *orchestrator) ClearRollSession(ctx context.Context, input *ClearRollSessionInput) (*ClearRollSessionOutput, error) {
	if input.EntityID == "" {
		return nil, errors.InvalidArgument("entity ID is required")
	}
	if input.Purpose == "" {
		return nil, errors.InvalidArgument("purpose is required")
	}

	deleteOutput, err := o.rollSessionRepo.Delete(ctx, rollsession.DeleteInput{
		EntityID: input.EntityID,
		Purpose:  input.Purpose,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete roll session")
	}

	slog.Info("Roll session cleared",
		"entity_id", input.EntityID,
		"purpose", input.Purpose,
		"rolls_deleted", deleteOutput.RollsDeleted,
	)

	return &ClearRollSessionOutput{RollsDeleted: deleteOutput.RollsDeleted}, nil
}

// RollAbilityScores rolls six ability scores using the requested method
// and stores them as a fresh session
func (o *orchestrator) RollAbilityScores(ctx context.Context, input *RollAbilityScoresInput) (*RollAbilityScoresOutput, error) {
	if input.EntityID == "" {
		return nil, errors.InvalidArgument("entity ID is required")
	}

	method := input.Method
	if method == "" {
		method = MethodStandard
	}

	var notation string
	dropLowest := 0
	switch method {
	case MethodStandard:
		notation = "4d6"
		dropLowest = 1
	case MethodClassic:
		notation = "3d6"
	default:
		return nil, errors.InvalidArgumentf("unsupported rolling method: %s", method)
	}

	count, size, err := o.parseDiceNotation(notation)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse ability score notation")
	}

	rolls := make([]*rollsession.Roll, 0, 6)
	for i := 0; i < 6; i++ {
		individualDice, dropped, total, err := o.rollWithToolkit(count, size, dropLowest)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll ability score %d", i+1)
		}

		rolls = append(rolls, &rollsession.Roll{
			RollID:      o.idGen.Generate(),
			Notation:    notation,
			Dice:        individualDice,
			Total:       total,
			Dropped:     dropped,
			Description: fmt.Sprintf("Ability Score %d (%s)", i+1, method),
		})
	}

	rollValues := make([]rollsession.Roll, len(rolls))
	for i, roll := range rolls {
		rollValues[i] = *roll
	}

	// A new set replaces any previous one for this entity
	createOutput, err := o.rollSessionRepo.Create(ctx, rollsession.CreateInput{
		EntityID: input.EntityID,
		Purpose:  PurposeAbilityScores,
		Rolls:    rollValues,
		TTL:      DefaultSessionTTL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create ability score session")
	}

	slog.Info("Ability scores rolled",
		"entity_id", input.EntityID,
		"method", method,
		"rolls_count", len(rolls),
	)

	return &RollAbilityScoresOutput{
		Rolls:   rolls,
		Session: createOutput.Session,
	}, nil
}
