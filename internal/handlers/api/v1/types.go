package v1

import (
	"github.com/wrenhall/homebrew-api/internal/engine"
	"github.com/wrenhall/homebrew-api/internal/entities/homebrew"
	"github.com/wrenhall/homebrew-api/internal/repositories/rollsession"
)

// Request DTOs. Entities stay JSON-agnostic; the wire shape lives here.

type contentRecordRequest struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name" binding:"required"`
	Type      string                 `json:"type" binding:"required"`
	Species   *speciesPayload        `json:"species,omitempty"`
	Class     *classPayload          `json:"class,omitempty"`
	Equipment *equipmentPayload      `json:"equipment,omitempty"`
	Spell     *spellPayload          `json:"spell,omitempty"`
	Feat      *featPayload           `json:"feat,omitempty"`
	Extra     map[string]interface{} `json:"extra,omitempty"`
}

type speciesPayload struct {
	AbilityScoreIncreases map[string]int32 `json:"ability_score_increases"`
	RacialFeatures        []string         `json:"racial_features"`
	Proficiencies         []string         `json:"proficiencies"`
	Size                  string           `json:"size"`
	Speed                 int32            `json:"speed"`
}

type classFeaturePayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Level       int32  `json:"level"`
}

type classPayload struct {
	HitDice            string                `json:"hit_dice"`
	Features           []classFeaturePayload `json:"features"`
	Spellcasting       string                `json:"spellcasting"`
	SkillProficiencies []string              `json:"skill_proficiencies"`
	SkillChoices       int32                 `json:"skill_choices"`
	ToolProficiencies  []string              `json:"tool_proficiencies"`
	SpellList          []string              `json:"spell_list"`
	PreparedCaster     bool                  `json:"prepared_caster"`
	Subclasses         []string              `json:"subclasses"`
}

type equipmentPayload struct {
	Damage            string   `json:"damage"`
	EnhancementBonus  int32    `json:"enhancement_bonus"`
	SpecialProperties []string `json:"special_properties"`
	Rarity            string   `json:"rarity"`
}

type spellPayload struct {
	Level        int32  `json:"level"`
	Damage       string `json:"damage"`
	Description  string `json:"description"`
	AreaOfEffect string `json:"area_of_effect"`
	Range        string `json:"range"`
	HigherLevels string `json:"higher_levels"`
}

type featPayload struct {
	AbilityScoreIncrease int32    `json:"ability_score_increase"`
	Benefits             []string `json:"benefits"`
	Prerequisites        []string `json:"prerequisites"`
}

type scoreWeightsRequest struct {
	Power       float64 `json:"power"`
	Utility     float64 `json:"utility"`
	Versatility float64 `json:"versatility"`
	Scaling     float64 `json:"scaling"`
}

type constraintsRequest struct {
	PowerLevel        string                        `json:"power_level"`
	MinLevel          int32                         `json:"min_level"`
	MaxLevel          int32                         `json:"max_level"`
	ForbiddenElements []string                      `json:"forbidden_elements"`
	RequiredElements  []string                      `json:"required_elements"`
	MechanicalLimits  map[string]float64            `json:"mechanical_limits"`
	ContentTypeLimits map[string]map[string]float64 `json:"content_type_limits"`
}

type scoreContentRequest struct {
	Content     contentRecordRequest `json:"content" binding:"required"`
	Level       int32                `json:"level"`
	Weights     *scoreWeightsRequest `json:"weights,omitempty"`
	Constraints *constraintsRequest  `json:"constraints,omitempty"`
}

type submitContentRequest struct {
	Content     contentRecordRequest `json:"content" binding:"required"`
	Level       int32                `json:"level"`
	Constraints *constraintsRequest  `json:"constraints,omitempty"`
}

type abilityScoresRequest struct {
	Strength     int32 `json:"strength"`
	Dexterity    int32 `json:"dexterity"`
	Constitution int32 `json:"constitution"`
	Intelligence int32 `json:"intelligence"`
	Wisdom       int32 `json:"wisdom"`
	Charisma     int32 `json:"charisma"`
}

type classLevelRequest struct {
	Class    string `json:"class" binding:"required"`
	Subclass string `json:"subclass"`
	Level    int32  `json:"level" binding:"required"`
}

type knownSpellRequest struct {
	Name  string `json:"name"`
	Level int32  `json:"level"`
}

type carriedItemRequest struct {
	Name   string `json:"name"`
	Rarity string `json:"rarity"`
}

type characterSheetRequest struct {
	Name              string                `json:"name"`
	Species           string                `json:"species"`
	Classes           []classLevelRequest   `json:"classes"`
	AbilityScores     *abilityScoresRequest `json:"ability_scores"`
	BaseAbilityScores *abilityScoresRequest `json:"base_ability_scores,omitempty"`
	Spells            []knownSpellRequest   `json:"spells,omitempty"`
	Equipment         []carriedItemRequest  `json:"equipment,omitempty"`
}

type validateCharacterRequest struct {
	Character   characterSheetRequest `json:"character" binding:"required"`
	Constraints *constraintsRequest   `json:"constraints,omitempty"`
}

type pointBuyRequest struct {
	Scores abilityScoresRequest `json:"scores" binding:"required"`
}

type multiclassRequest struct {
	Character   characterSheetRequest `json:"character" binding:"required"`
	TargetClass string                `json:"target_class" binding:"required"`
}

type rollAbilityScoresRequest struct {
	EntityID string `json:"entity_id" binding:"required"`
	Method   string `json:"method"`
}

// Response DTOs

type metricsResponse struct {
	OverallScore      float64  `json:"overall_score"`
	PowerScore        float64  `json:"power_score"`
	UtilityScore      float64  `json:"utility_score"`
	VersatilityScore  float64  `json:"versatility_score"`
	ScalingScore      float64  `json:"scaling_score"`
	PowerTier         string   `json:"power_tier"`
	ContentType       string   `json:"content_type"`
	IsBalanced        bool     `json:"is_balanced"`
	Rating            string   `json:"rating"`
	IdentifiedIssues  []string `json:"identified_issues"`
	CalculationMethod string   `json:"calculation_method"`
}

type validationIssueResponse struct {
	Severity   string `json:"severity"`
	Code       string `json:"code"`
	Message    string `json:"message"`
	Field      string `json:"field,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

type validationResultResponse struct {
	IsValid bool                      `json:"is_valid"`
	Issues  []validationIssueResponse `json:"issues"`
	Score   float64                   `json:"score"`
}

type pointBuyResponse struct {
	Result      validationResultResponse `json:"result"`
	PointsSpent int32                    `json:"points_spent"`
}

type multiclassResponse struct {
	Allowed bool                      `json:"allowed"`
	Issues  []validationIssueResponse `json:"issues"`
}

type contentResponse struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Type      string           `json:"type"`
	Metrics   *metricsResponse `json:"metrics,omitempty"`
	CreatedAt int64            `json:"created_at"`
	UpdatedAt int64            `json:"updated_at"`
}

type rollResponse struct {
	RollID      string  `json:"roll_id"`
	Notation    string  `json:"notation"`
	Dice        []int32 `json:"dice"`
	Total       int32   `json:"total"`
	Dropped     []int32 `json:"dropped,omitempty"`
	Description string  `json:"description,omitempty"`
}

type rollSessionResponse struct {
	EntityID  string         `json:"entity_id"`
	Purpose   string         `json:"purpose"`
	Rolls     []rollResponse `json:"rolls"`
	ExpiresAt int64          `json:"expires_at"`
}

// Conversions

func (r *contentRecordRequest) toEntity() *homebrew.ContentRecord {
	record := &homebrew.ContentRecord{
		ID:    r.ID,
		Name:  r.Name,
		Type:  homebrew.ContentType(r.Type),
		Extra: r.Extra,
	}
	if r.Species != nil {
		record.Species = &homebrew.SpeciesContent{
			AbilityScoreIncreases: r.Species.AbilityScoreIncreases,
			RacialFeatures:        r.Species.RacialFeatures,
			Proficiencies:         r.Species.Proficiencies,
			Size:                  r.Species.Size,
			Speed:                 r.Species.Speed,
		}
	}
	if r.Class != nil {
		features := make([]homebrew.ClassFeature, len(r.Class.Features))
		for i, f := range r.Class.Features {
			features[i] = homebrew.ClassFeature{Name: f.Name, Description: f.Description, Level: f.Level}
		}
		record.Class = &homebrew.ClassContent{
			HitDice:            r.Class.HitDice,
			Features:           features,
			Spellcasting:       r.Class.Spellcasting,
			SkillProficiencies: r.Class.SkillProficiencies,
			SkillChoices:       r.Class.SkillChoices,
			ToolProficiencies:  r.Class.ToolProficiencies,
			SpellList:          r.Class.SpellList,
			PreparedCaster:     r.Class.PreparedCaster,
			Subclasses:         r.Class.Subclasses,
		}
	}
	if r.Equipment != nil {
		record.Equipment = &homebrew.EquipmentContent{
			Damage:            r.Equipment.Damage,
			EnhancementBonus:  r.Equipment.EnhancementBonus,
			SpecialProperties: r.Equipment.SpecialProperties,
			Rarity:            r.Equipment.Rarity,
		}
	}
	if r.Spell != nil {
		record.Spell = &homebrew.SpellContent{
			Level:        r.Spell.Level,
			Damage:       r.Spell.Damage,
			Description:  r.Spell.Description,
			AreaOfEffect: r.Spell.AreaOfEffect,
			Range:        r.Spell.Range,
			HigherLevels: r.Spell.HigherLevels,
		}
	}
	if r.Feat != nil {
		record.Feat = &homebrew.FeatContent{
			AbilityScoreIncrease: r.Feat.AbilityScoreIncrease,
			Benefits:             r.Feat.Benefits,
			Prerequisites:        r.Feat.Prerequisites,
		}
	}
	return record
}

func (r *scoreWeightsRequest) toEngine() *engine.ScoreWeights {
	if r == nil {
		return nil
	}
	return &engine.ScoreWeights{
		Power:       r.Power,
		Utility:     r.Utility,
		Versatility: r.Versatility,
		Scaling:     r.Scaling,
	}
}

func (r *constraintsRequest) toEntity() *homebrew.GenerationConstraints {
	if r == nil {
		return nil
	}
	constraints := &homebrew.GenerationConstraints{
		PowerLevel:        r.PowerLevel,
		MinLevel:          r.MinLevel,
		MaxLevel:          r.MaxLevel,
		ForbiddenElements: r.ForbiddenElements,
		RequiredElements:  r.RequiredElements,
		MechanicalLimits:  r.MechanicalLimits,
	}
	if constraints.PowerLevel == "" {
		constraints.PowerLevel = string(homebrew.PowerTierStandard)
	}
	if constraints.MinLevel == 0 {
		constraints.MinLevel = homebrew.LevelMin
	}
	if constraints.MaxLevel == 0 {
		constraints.MaxLevel = homebrew.LevelMax
	}
	if len(r.ContentTypeLimits) > 0 {
		constraints.ContentTypeLimits = make(map[homebrew.ContentType]map[string]float64, len(r.ContentTypeLimits))
		for ct, limits := range r.ContentTypeLimits {
			constraints.ContentTypeLimits[homebrew.ContentType(ct)] = limits
		}
	}
	return constraints
}

func (r *abilityScoresRequest) toEntity() *homebrew.AbilityScores {
	if r == nil {
		return nil
	}
	return &homebrew.AbilityScores{
		Strength:     r.Strength,
		Dexterity:    r.Dexterity,
		Constitution: r.Constitution,
		Intelligence: r.Intelligence,
		Wisdom:       r.Wisdom,
		Charisma:     r.Charisma,
	}
}

func (r *characterSheetRequest) toEntity() *homebrew.CharacterSheet {
	classes := make([]homebrew.ClassLevel, len(r.Classes))
	for i, cl := range r.Classes {
		classes[i] = homebrew.ClassLevel{Class: cl.Class, Subclass: cl.Subclass, Level: cl.Level}
	}
	spells := make([]homebrew.KnownSpell, len(r.Spells))
	for i, sp := range r.Spells {
		spells[i] = homebrew.KnownSpell{Name: sp.Name, Level: sp.Level}
	}
	equipment := make([]homebrew.CarriedItem, len(r.Equipment))
	for i, item := range r.Equipment {
		equipment[i] = homebrew.CarriedItem{Name: item.Name, Rarity: item.Rarity}
	}
	return &homebrew.CharacterSheet{
		Name:              r.Name,
		Species:           r.Species,
		Classes:           classes,
		AbilityScores:     r.AbilityScores.toEntity(),
		BaseAbilityScores: r.BaseAbilityScores.toEntity(),
		Spells:            spells,
		Equipment:         equipment,
	}
}

func metricsToResponse(m *homebrew.BalanceMetrics) *metricsResponse {
	if m == nil {
		return nil
	}
	return &metricsResponse{
		OverallScore:      m.OverallScore,
		PowerScore:        m.PowerScore,
		UtilityScore:      m.UtilityScore,
		VersatilityScore:  m.VersatilityScore,
		ScalingScore:      m.ScalingScore,
		PowerTier:         string(m.PowerTier),
		ContentType:       string(m.ContentType),
		IsBalanced:        m.IsBalanced(),
		Rating:            m.Rating(),
		IdentifiedIssues:  m.IdentifiedIssues,
		CalculationMethod: m.CalculationMethod,
	}
}

func issuesToResponse(issues []homebrew.ValidationIssue) []validationIssueResponse {
	out := make([]validationIssueResponse, len(issues))
	for i, issue := range issues {
		out[i] = validationIssueResponse{
			Severity:   string(issue.Severity),
			Code:       issue.Code,
			Message:    issue.Message,
			Field:      issue.Field,
			Suggestion: issue.Suggestion,
		}
	}
	return out
}

func resultToResponse(result *homebrew.ValidationResult) validationResultResponse {
	return validationResultResponse{
		IsValid: result.IsValid,
		Issues:  issuesToResponse(result.Issues),
		Score:   result.Score,
	}
}

func contentToResponse(record *homebrew.ContentRecord) contentResponse {
	return contentResponse{
		ID:        record.ID,
		Name:      record.Name,
		Type:      string(record.Type),
		Metrics:   metricsToResponse(record.Metrics),
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
}

func sessionToResponse(session *rollsession.RollSession) rollSessionResponse {
	rolls := make([]rollResponse, len(session.Rolls))
	for i, roll := range session.Rolls {
		rolls[i] = rollResponse{
			RollID:      roll.RollID,
			Notation:    roll.Notation,
			Dice:        roll.Dice,
			Total:       roll.Total,
			Dropped:     roll.Dropped,
			Description: roll.Description,
		}
	}
	return rollSessionResponse{
		EntityID:  session.EntityID,
		Purpose:   session.Purpose,
		Rolls:     rolls,
		ExpiresAt: session.ExpiresAt.Unix(),
	}
}
