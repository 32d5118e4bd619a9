package dice_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/wrenhall/homebrew-api/internal/errors"
	"github.com/wrenhall/homebrew-api/internal/orchestrators/dice"
	"github.com/wrenhall/homebrew-api/internal/pkg/clock"
	"github.com/wrenhall/homebrew-api/internal/pkg/idgen"
	"github.com/wrenhall/homebrew-api/internal/repositories/rollsession"
	"github.com/wrenhall/homebrew-api/internal/testutils"
)

type DiceOrchestratorTestSuite struct {
	suite.Suite
	service dice.Service
	cleanup func()
	ctx     context.Context
}

func (s *DiceOrchestratorTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.ctx = context.Background()

	repo, err := rollsession.NewRedisRepository(&rollsession.Config{
		Client: client,
		Clock:  &clock.Fixed{T: time.Unix(1700000000, 0)},
	})
	s.Require().NoError(err)

	service, err := dice.NewOrchestrator(&dice.Config{
		RollSessionRepo: repo,
		IDGenerator:     idgen.NewSequential("roll"),
	})
	s.Require().NoError(err)
	s.service = service
}

func (s *DiceOrchestratorTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *DiceOrchestratorTestSuite) TestNewOrchestratorValidatesConfig() {
	_, err := dice.NewOrchestrator(&dice.Config{})
	s.Require().Error(err)

	_, err = dice.NewOrchestrator(&dice.Config{IDGenerator: idgen.NewSequential("roll")})
	s.Require().Error(err)
}

func (s *DiceOrchestratorTestSuite) TestRollDice() {
	output, err := s.service.RollDice(s.ctx, &dice.RollDiceInput{
		EntityID: "draft_1",
		Purpose:  "attack_rolls",
		Notation: "2d6",
	})
	s.Require().NoError(err)

	s.Equal("roll_1", output.Roll.RollID)
	s.Len(output.Roll.Dice, 2)
	s.GreaterOrEqual(output.Roll.Total, int32(2))
	s.LessOrEqual(output.Roll.Total, int32(12))
	s.Len(output.Session.Rolls, 1)

	// A second roll lands in the same session
	output, err = s.service.RollDice(s.ctx, &dice.RollDiceInput{
		EntityID: "draft_1",
		Purpose:  "attack_rolls",
		Notation: "1d20",
	})
	s.Require().NoError(err)
	s.Len(output.Session.Rolls, 2)
}

func (s *DiceOrchestratorTestSuite) TestRollDiceInvalidNotation() {
	_, err := s.service.RollDice(s.ctx, &dice.RollDiceInput{
		EntityID: "draft_1",
		Purpose:  "attack_rolls",
		Notation: "2d6+3",
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *DiceOrchestratorTestSuite) TestRollAbilityScoresStandard() {
	output, err := s.service.RollAbilityScores(s.ctx, &dice.RollAbilityScoresInput{
		EntityID: "draft_1",
	})
	s.Require().NoError(err)
	s.Require().Len(output.Rolls, 6)

	for _, roll := range output.Rolls {
		s.Equal("4d6", roll.Notation)
		s.Len(roll.Dice, 3, "one die dropped from each roll")
		s.Len(roll.Dropped, 1)
		s.GreaterOrEqual(roll.Total, int32(3))
		s.LessOrEqual(roll.Total, int32(18))

		// Total matches the kept dice
		var sum int32
		for _, d := range roll.Dice {
			sum += d
		}
		s.Equal(sum, roll.Total)
	}
}

func (s *DiceOrchestratorTestSuite) TestRollAbilityScoresClassic() {
	output, err := s.service.RollAbilityScores(s.ctx, &dice.RollAbilityScoresInput{
		EntityID: "draft_1",
		Method:   dice.MethodClassic,
	})
	s.Require().NoError(err)
	s.Require().Len(output.Rolls, 6)

	for _, roll := range output.Rolls {
		s.Equal("3d6", roll.Notation)
		s.Len(roll.Dice, 3)
		s.Empty(roll.Dropped)
	}
}

func (s *DiceOrchestratorTestSuite) TestRollAbilityScoresUnsupportedMethod() {
	_, err := s.service.RollAbilityScores(s.ctx, &dice.RollAbilityScoresInput{
		EntityID: "draft_1",
		Method:   "2d10_hope_for_the_best",
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *DiceOrchestratorTestSuite) TestGetAndClearRollSession() {
	_, err := s.service.RollAbilityScores(s.ctx, &dice.RollAbilityScoresInput{EntityID: "draft_1"})
	s.Require().NoError(err)

	got, err := s.service.GetRollSession(s.ctx, &dice.GetRollSessionInput{
		EntityID: "draft_1",
		Purpose:  dice.PurposeAbilityScores,
	})
	s.Require().NoError(err)
	s.Len(got.Session.Rolls, 6)

	cleared, err := s.service.ClearRollSession(s.ctx, &dice.ClearRollSessionInput{
		EntityID: "draft_1",
		Purpose:  dice.PurposeAbilityScores,
	})
	s.Require().NoError(err)
	s.Equal(int32(6), cleared.RollsDeleted)

	_, err = s.service.GetRollSession(s.ctx, &dice.GetRollSessionInput{
		EntityID: "draft_1",
		Purpose:  dice.PurposeAbilityScores,
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func TestDiceOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(DiceOrchestratorTestSuite))
}
