// Package v1 exposes the homebrew balance and dice services over HTTP.
package v1

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	homebrewdata "github.com/wrenhall/homebrew-api/internal/entities/homebrew"
	"github.com/wrenhall/homebrew-api/internal/errors"
	"github.com/wrenhall/homebrew-api/internal/orchestrators/dice"
	"github.com/wrenhall/homebrew-api/internal/orchestrators/homebrew"
)

// Handler handles homebrew API requests
type Handler struct {
	homebrewService homebrew.Service
	diceService     dice.Service
}

// Config holds the dependencies for the handler
type Config struct {
	HomebrewService homebrew.Service
	DiceService     dice.Service
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.HomebrewService == nil {
		vb.RequiredField("HomebrewService")
	}
	if c.DiceService == nil {
		vb.RequiredField("DiceService")
	}

	return vb.Build()
}

// NewHandler creates a new API handler
func NewHandler(cfg *Config) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Handler{
		homebrewService: cfg.HomebrewService,
		diceService:     cfg.DiceService,
	}, nil
}

// RegisterRoutes registers all API routes
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")

	// Balance scoring
	api.POST("/score", h.ScoreContent)

	// Rule compliance
	api.POST("/characters/validate", h.ValidateCharacter)
	api.POST("/characters/point-buy", h.ValidatePointBuy)
	api.POST("/characters/multiclass", h.ValidateMulticlass)

	// Content registry
	api.POST("/content", h.SubmitContent)
	api.GET("/content", h.ListContent)
	api.GET("/content/:content_id", h.GetContent)

	// Dice rolling
	api.POST("/dice/ability-scores", h.RollAbilityScores)
	api.GET("/dice/ability-scores/:entity_id", h.GetAbilityScoreRolls)
	api.DELETE("/dice/ability-scores/:entity_id", h.ClearAbilityScoreRolls)

	// Health check
	api.GET("/health", h.HealthCheck)
}

// ScoreContent computes balance metrics for a content record
func (h *Handler) ScoreContent(c *gin.Context) {
	var request scoreContentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	output, err := h.homebrewService.ScoreContent(c.Request.Context(), &homebrew.ScoreContentInput{
		Content:     request.Content.toEntity(),
		Level:       request.Level,
		Weights:     request.Weights.toEngine(),
		Constraints: request.Constraints.toEntity(),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"metrics": metricsToResponse(output.Metrics)})
}

// ValidateCharacter runs the rule-compliance checks over a character sheet
func (h *Handler) ValidateCharacter(c *gin.Context) {
	var request validateCharacterRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	output, err := h.homebrewService.ValidateCharacter(c.Request.Context(), &homebrew.ValidateCharacterInput{
		Sheet:       request.Character.toEntity(),
		Constraints: request.Constraints.toEntity(),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resultToResponse(output.Result))
}

// ValidatePointBuy checks base ability scores against the point-buy budget
func (h *Handler) ValidatePointBuy(c *gin.Context) {
	var request pointBuyRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	output, err := h.homebrewService.ValidatePointBuy(c.Request.Context(), &homebrew.ValidatePointBuyInput{
		Scores: request.Scores.toEntity(),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pointBuyResponse{
		Result:      resultToResponse(output.Result),
		PointsSpent: output.PointsSpent,
	})
}

// ValidateMulticlass checks the prerequisites for taking a level in a class
func (h *Handler) ValidateMulticlass(c *gin.Context) {
	var request multiclassRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	output, err := h.homebrewService.ValidateMulticlass(c.Request.Context(), &homebrew.ValidateMulticlassInput{
		Sheet:       request.Character.toEntity(),
		TargetClass: request.TargetClass,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, multiclassResponse{
		Allowed: len(output.Issues) == 0,
		Issues:  issuesToResponse(output.Issues),
	})
}

// SubmitContent scores a content record and stores it
func (h *Handler) SubmitContent(c *gin.Context) {
	var request submitContentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	output, err := h.homebrewService.SubmitContent(c.Request.Context(), &homebrew.SubmitContentInput{
		Content:     request.Content.toEntity(),
		Level:       request.Level,
		Constraints: request.Constraints.toEntity(),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contentToResponse(output.Content))
}

// GetContent retrieves a stored content record
func (h *Handler) GetContent(c *gin.Context) {
	output, err := h.homebrewService.GetContent(c.Request.Context(), &homebrew.GetContentInput{
		ID: c.Param("content_id"),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contentToResponse(output.Content))
}

// ListContent lists stored content records of one type
func (h *Handler) ListContent(c *gin.Context) {
	contentType := c.Query("type")
	if contentType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type query parameter is required"})
		return
	}

	output, err := h.homebrewService.ListContent(c.Request.Context(), &homebrew.ListContentInput{
		Type: homebrewdata.ContentType(contentType),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	contents := make([]contentResponse, len(output.Contents))
	for i, record := range output.Contents {
		contents[i] = contentToResponse(record)
	}
	c.JSON(http.StatusOK, gin.H{"contents": contents})
}

// RollAbilityScores rolls a set of six ability scores for an entity
func (h *Handler) RollAbilityScores(c *gin.Context) {
	var request rollAbilityScoresRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	output, err := h.diceService.RollAbilityScores(c.Request.Context(), &dice.RollAbilityScoresInput{
		EntityID: request.EntityID,
		Method:   request.Method,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sessionToResponse(output.Session))
}

// GetAbilityScoreRolls retrieves the current ability-score roll session
func (h *Handler) GetAbilityScoreRolls(c *gin.Context) {
	output, err := h.diceService.GetRollSession(c.Request.Context(), &dice.GetRollSessionInput{
		EntityID: c.Param("entity_id"),
		Purpose:  dice.PurposeAbilityScores,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sessionToResponse(output.Session))
}

// ClearAbilityScoreRolls removes the ability-score roll session
func (h *Handler) ClearAbilityScoreRolls(c *gin.Context) {
	output, err := h.diceService.ClearRollSession(c.Request.Context(), &dice.ClearRollSessionInput{
		EntityID: c.Param("entity_id"),
		Purpose:  dice.PurposeAbilityScores,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"rolls_deleted": output.RollsDeleted})
}

// HealthCheck reports service liveness
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// respondError maps structured errors onto HTTP status codes
func (h *Handler) respondError(c *gin.Context, err error) {
	code := errors.GetCode(err)
	status := code.HTTPStatus()
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), "request failed",
			"path", c.FullPath(),
			"error", err.Error())
	}
	c.JSON(status, gin.H{"error": errors.GetMessage(err), "code": string(code)})
}
