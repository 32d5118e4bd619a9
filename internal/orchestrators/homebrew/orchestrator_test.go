package homebrew_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/wrenhall/homebrew-api/internal/engine/dnd5e"
	homebrewdata "github.com/wrenhall/homebrew-api/internal/entities/homebrew"
	"github.com/wrenhall/homebrew-api/internal/errors"
	"github.com/wrenhall/homebrew-api/internal/orchestrators/homebrew"
	"github.com/wrenhall/homebrew-api/internal/pkg/clock"
	"github.com/wrenhall/homebrew-api/internal/pkg/idgen"
	"github.com/wrenhall/homebrew-api/internal/repositories/content"
	"github.com/wrenhall/homebrew-api/internal/testutils"
)

type HomebrewOrchestratorTestSuite struct {
	suite.Suite
	service homebrew.Service
	cleanup func()
	ctx     context.Context
}

func (s *HomebrewOrchestratorTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.ctx = context.Background()

	repo, err := content.NewRedis(&content.RedisConfig{
		Client: client,
		Clock:  &clock.Fixed{T: time.Unix(1700000000, 0)},
	})
	s.Require().NoError(err)

	service, err := homebrew.NewOrchestrator(&homebrew.Config{
		Engine:      dnd5e.New(),
		ContentRepo: repo,
		IDGenerator: idgen.NewSequential("content"),
	})
	s.Require().NoError(err)
	s.service = service
}

func (s *HomebrewOrchestratorTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *HomebrewOrchestratorTestSuite) TestNewOrchestratorValidatesConfig() {
	_, err := homebrew.NewOrchestrator(&homebrew.Config{})
	s.Require().Error(err)
	s.Contains(err.Error(), "Engine")
}

func (s *HomebrewOrchestratorTestSuite) TestScoreContent() {
	output, err := s.service.ScoreContent(s.ctx, &homebrew.ScoreContentInput{
		Content: &homebrewdata.ContentRecord{
			Name: "Stormborn",
			Type: homebrewdata.ContentTypeSpecies,
			Species: &homebrewdata.SpeciesContent{
				AbilityScoreIncreases: map[string]int32{
					homebrewdata.AbilityStrength:     2,
					homebrewdata.AbilityConstitution: 1,
				},
				RacialFeatures: []string{"Storm Resistance", "Thunderous Step", "Darkvision"},
			},
		},
	})
	s.Require().NoError(err)
	s.Require().NotNil(output.Metrics)
	s.Equal(homebrewdata.PowerTierStandard, output.Metrics.PowerTier)
	s.InDelta(1.0, output.Metrics.PowerScore, 0.0001)
}

func (s *HomebrewOrchestratorTestSuite) TestScoreContentNilContent() {
	_, err := s.service.ScoreContent(s.ctx, &homebrew.ScoreContentInput{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *HomebrewOrchestratorTestSuite) TestValidateCharacter() {
	output, err := s.service.ValidateCharacter(s.ctx, &homebrew.ValidateCharacterInput{
		Sheet: &homebrewdata.CharacterSheet{
			Name:    "Elyndra",
			Classes: []homebrewdata.ClassLevel{{Class: homebrewdata.ClassWizard, Level: 3}},
			AbilityScores: &homebrewdata.AbilityScores{
				Strength: 10, Dexterity: 14, Constitution: 12,
				Intelligence: 16, Wisdom: 10, Charisma: 8,
			},
		},
	})
	s.Require().NoError(err)
	s.True(output.Result.IsValid)
}

func (s *HomebrewOrchestratorTestSuite) TestValidatePointBuy() {
	output, err := s.service.ValidatePointBuy(s.ctx, &homebrew.ValidatePointBuyInput{
		Scores: &homebrewdata.AbilityScores{
			Strength: 15, Dexterity: 14, Constitution: 13,
			Intelligence: 12, Wisdom: 10, Charisma: 8,
		},
	})
	s.Require().NoError(err)
	s.True(output.Result.IsValid)
	s.Equal(int32(27), output.PointsSpent)
}

func (s *HomebrewOrchestratorTestSuite) TestValidateMulticlass() {
	output, err := s.service.ValidateMulticlass(s.ctx, &homebrew.ValidateMulticlassInput{
		Sheet: &homebrewdata.CharacterSheet{
			AbilityScores: &homebrewdata.AbilityScores{
				Strength: 12, Dexterity: 10, Constitution: 12,
				Intelligence: 10, Wisdom: 10, Charisma: 14,
			},
		},
		TargetClass: homebrewdata.ClassPaladin,
	})
	s.Require().NoError(err)
	s.Require().Len(output.Issues, 1)
	s.Contains(output.Issues[0].Message, "strength")
}

func (s *HomebrewOrchestratorTestSuite) TestSubmitAndGetContent() {
	submitted, err := s.service.SubmitContent(s.ctx, &homebrew.SubmitContentInput{
		Content: &homebrewdata.ContentRecord{
			Name: "Chaos Lance",
			Type: homebrewdata.ContentTypeSpell,
			Spell: &homebrewdata.SpellContent{
				Level:  3,
				Damage: "6d6",
				Range:  "120 feet",
			},
		},
	})
	s.Require().NoError(err)
	s.Equal("content_1", submitted.Content.ID)
	s.Require().NotNil(submitted.Content.Metrics, "metrics attached before storage")

	got, err := s.service.GetContent(s.ctx, &homebrew.GetContentInput{ID: "content_1"})
	s.Require().NoError(err)
	s.Equal("Chaos Lance", got.Content.Name)
	s.Require().NotNil(got.Content.Metrics)
	s.Equal(submitted.Content.Metrics.OverallScore, got.Content.Metrics.OverallScore)
}

func (s *HomebrewOrchestratorTestSuite) TestSubmitContentValidation() {
	_, err := s.service.SubmitContent(s.ctx, &homebrew.SubmitContentInput{
		Content: &homebrewdata.ContentRecord{Type: homebrewdata.ContentTypeSpell},
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.service.SubmitContent(s.ctx, &homebrew.SubmitContentInput{
		Content: &homebrewdata.ContentRecord{Name: "No Type"},
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *HomebrewOrchestratorTestSuite) TestListContent() {
	for _, name := range []string{"Chaos Lance", "Mirror Step"} {
		_, err := s.service.SubmitContent(s.ctx, &homebrew.SubmitContentInput{
			Content: &homebrewdata.ContentRecord{
				Name:  name,
				Type:  homebrewdata.ContentTypeSpell,
				Spell: &homebrewdata.SpellContent{Level: 2},
			},
		})
		s.Require().NoError(err)
	}

	list, err := s.service.ListContent(s.ctx, &homebrew.ListContentInput{Type: homebrewdata.ContentTypeSpell})
	s.Require().NoError(err)
	s.Len(list.Contents, 2)

	list, err = s.service.ListContent(s.ctx, &homebrew.ListContentInput{Type: homebrewdata.ContentTypeFeat})
	s.Require().NoError(err)
	s.Empty(list.Contents)
}

func (s *HomebrewOrchestratorTestSuite) TestGetContentNotFound() {
	_, err := s.service.GetContent(s.ctx, &homebrew.GetContentInput{ID: "missing"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func TestHomebrewOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(HomebrewOrchestratorTestSuite))
}
