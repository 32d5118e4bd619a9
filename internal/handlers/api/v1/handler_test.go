package v1_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"github.com/wrenhall/homebrew-api/internal/engine/dnd5e"
	v1 "github.com/wrenhall/homebrew-api/internal/handlers/api/v1"
	"github.com/wrenhall/homebrew-api/internal/orchestrators/dice"
	"github.com/wrenhall/homebrew-api/internal/orchestrators/homebrew"
	"github.com/wrenhall/homebrew-api/internal/pkg/clock"
	"github.com/wrenhall/homebrew-api/internal/pkg/idgen"
	"github.com/wrenhall/homebrew-api/internal/repositories/content"
	"github.com/wrenhall/homebrew-api/internal/repositories/rollsession"
	"github.com/wrenhall/homebrew-api/internal/testutils"
)

type HandlerTestSuite struct {
	suite.Suite
	router  *gin.Engine
	cleanup func()
}

func (s *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	fixed := &clock.Fixed{T: time.Unix(1700000000, 0)}

	contentRepo, err := content.NewRedis(&content.RedisConfig{Client: client, Clock: fixed})
	s.Require().NoError(err)
	sessionRepo, err := rollsession.NewRedisRepository(&rollsession.Config{Client: client, Clock: fixed})
	s.Require().NoError(err)

	homebrewService, err := homebrew.NewOrchestrator(&homebrew.Config{
		Engine:      dnd5e.New(),
		ContentRepo: contentRepo,
		IDGenerator: idgen.NewSequential("content"),
	})
	s.Require().NoError(err)

	diceService, err := dice.NewOrchestrator(&dice.Config{
		RollSessionRepo: sessionRepo,
		IDGenerator:     idgen.NewSequential("roll"),
	})
	s.Require().NoError(err)

	handler, err := v1.NewHandler(&v1.Config{
		HomebrewService: homebrewService,
		DiceService:     diceService,
	})
	s.Require().NoError(err)

	s.router = gin.New()
	handler.RegisterRoutes(s.router)
}

func (s *HandlerTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *HandlerTestSuite) request(method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	s.router.ServeHTTP(recorder, req)
	return recorder
}

func (s *HandlerTestSuite) decode(recorder *httptest.ResponseRecorder) map[string]interface{} {
	var payload map[string]interface{}
	s.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &payload))
	return payload
}

func (s *HandlerTestSuite) TestHealthCheck() {
	recorder := s.request(http.MethodGet, "/api/v1/health", nil)
	s.Equal(http.StatusOK, recorder.Code)
	s.Equal("healthy", s.decode(recorder)["status"])
}

func (s *HandlerTestSuite) TestScoreContent() {
	recorder := s.request(http.MethodPost, "/api/v1/score", map[string]interface{}{
		"content": map[string]interface{}{
			"name": "Stormborn",
			"type": "species",
			"species": map[string]interface{}{
				"ability_score_increases": map[string]int{"strength": 2, "constitution": 1},
				"racial_features":         []string{"Storm Resistance", "Thunderous Step", "Darkvision"},
			},
		},
	})
	s.Require().Equal(http.StatusOK, recorder.Code)

	payload := s.decode(recorder)
	metrics := payload["metrics"].(map[string]interface{})
	s.InDelta(1.0, metrics["power_score"].(float64), 0.0001)
	s.Equal("standard", metrics["power_tier"])
}

func (s *HandlerTestSuite) TestScoreContentMissingName() {
	recorder := s.request(http.MethodPost, "/api/v1/score", map[string]interface{}{
		"content": map[string]interface{}{"type": "species"},
	})
	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *HandlerTestSuite) TestValidateCharacter() {
	recorder := s.request(http.MethodPost, "/api/v1/characters/validate", map[string]interface{}{
		"character": map[string]interface{}{
			"name":    "Elyndra",
			"classes": []map[string]interface{}{{"class": "wizard", "level": 3}},
			"ability_scores": map[string]int{
				"strength": 10, "dexterity": 14, "constitution": 12,
				"intelligence": 16, "wisdom": 10, "charisma": 8,
			},
			"spells": []map[string]interface{}{{"name": "Cone of Cold", "level": 5}},
		},
	})
	s.Require().Equal(http.StatusOK, recorder.Code)

	payload := s.decode(recorder)
	s.Equal(true, payload["is_valid"])
	issues := payload["issues"].([]interface{})
	s.Require().Len(issues, 1)
	s.Equal("SPELL_LEVEL_TOO_HIGH", issues[0].(map[string]interface{})["code"])
}

func (s *HandlerTestSuite) TestValidatePointBuy() {
	recorder := s.request(http.MethodPost, "/api/v1/characters/point-buy", map[string]interface{}{
		"scores": map[string]int{
			"strength": 15, "dexterity": 14, "constitution": 13,
			"intelligence": 12, "wisdom": 10, "charisma": 8,
		},
	})
	s.Require().Equal(http.StatusOK, recorder.Code)

	payload := s.decode(recorder)
	s.Equal(float64(27), payload["points_spent"])
	s.Equal(true, payload["result"].(map[string]interface{})["is_valid"])
}

func (s *HandlerTestSuite) TestValidateMulticlass() {
	recorder := s.request(http.MethodPost, "/api/v1/characters/multiclass", map[string]interface{}{
		"character": map[string]interface{}{
			"classes": []map[string]interface{}{{"class": "fighter", "level": 5}},
			"ability_scores": map[string]int{
				"strength": 10, "dexterity": 14, "constitution": 12,
				"intelligence": 10, "wisdom": 10, "charisma": 10,
			},
		},
		"target_class": "paladin",
	})
	s.Require().Equal(http.StatusOK, recorder.Code)

	payload := s.decode(recorder)
	s.Equal(false, payload["allowed"])
	s.NotEmpty(payload["issues"])
}

func (s *HandlerTestSuite) TestContentLifecycle() {
	recorder := s.request(http.MethodPost, "/api/v1/content", map[string]interface{}{
		"content": map[string]interface{}{
			"name": "Chaos Lance",
			"type": "spell",
			"spell": map[string]interface{}{
				"level":  3,
				"damage": "6d6",
				"range":  "120 feet",
			},
		},
	})
	s.Require().Equal(http.StatusCreated, recorder.Code)

	created := s.decode(recorder)
	s.Equal("content_1", created["id"])
	s.NotNil(created["metrics"])

	recorder = s.request(http.MethodGet, "/api/v1/content/content_1", nil)
	s.Require().Equal(http.StatusOK, recorder.Code)
	s.Equal("Chaos Lance", s.decode(recorder)["name"])

	recorder = s.request(http.MethodGet, "/api/v1/content?type=spell", nil)
	s.Require().Equal(http.StatusOK, recorder.Code)
	s.Len(s.decode(recorder)["contents"], 1)
}

func (s *HandlerTestSuite) TestGetContentNotFound() {
	recorder := s.request(http.MethodGet, "/api/v1/content/missing", nil)
	s.Equal(http.StatusNotFound, recorder.Code)
	s.Equal("NOT_FOUND", s.decode(recorder)["code"])
}

func (s *HandlerTestSuite) TestListContentRequiresType() {
	recorder := s.request(http.MethodGet, "/api/v1/content", nil)
	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *HandlerTestSuite) TestDiceLifecycle() {
	recorder := s.request(http.MethodPost, "/api/v1/dice/ability-scores", map[string]interface{}{
		"entity_id": "draft_1",
	})
	s.Require().Equal(http.StatusCreated, recorder.Code)

	session := s.decode(recorder)
	s.Equal("draft_1", session["entity_id"])
	s.Len(session["rolls"], 6)

	recorder = s.request(http.MethodGet, "/api/v1/dice/ability-scores/draft_1", nil)
	s.Require().Equal(http.StatusOK, recorder.Code)
	s.Len(s.decode(recorder)["rolls"], 6)

	recorder = s.request(http.MethodDelete, "/api/v1/dice/ability-scores/draft_1", nil)
	s.Require().Equal(http.StatusOK, recorder.Code)
	s.Equal(float64(6), s.decode(recorder)["rolls_deleted"])

	recorder = s.request(http.MethodGet, "/api/v1/dice/ability-scores/draft_1", nil)
	s.Equal(http.StatusNotFound, recorder.Code)
}

func (s *HandlerTestSuite) TestRollAbilityScoresUnsupportedMethod() {
	recorder := s.request(http.MethodPost, "/api/v1/dice/ability-scores", map[string]interface{}{
		"entity_id": "draft_1",
		"method":    "coin_flips",
	})
	s.Equal(http.StatusBadRequest, recorder.Code)
	s.Equal("INVALID_ARGUMENT", s.decode(recorder)["code"])
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
