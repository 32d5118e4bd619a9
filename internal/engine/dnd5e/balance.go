package dnd5e

import (
	"context"
	"fmt"
	"strings"

	"github.com/wrenhall/homebrew-api/internal/engine"
	"github.com/wrenhall/homebrew-api/internal/entities/homebrew"
	"github.com/wrenhall/homebrew-api/internal/errors"
)

// Keyword families used by the feature-counting heuristics
var (
	combatKeywords  = []string{"attack", "damage", "strike", "smite", "rage", "weapon", "martial"}
	utilityKeywords = []string{"utility", "skill", "tool", "language", "explore", "social", "ritual"}
	choiceKeywords  = []string{"choose", "choice", "select", "option"}
	scalingKeywords = []string{"level", "scale", "improve", "increase", "additional"}

	spellRoleKeywords = []string{"buff", "debuff", "control", "utility"}
)

// Spellcasting progression scores for class power
var spellcastingScores = map[string]float64{
	homebrew.SpellcastingFull:  0.8,
	homebrew.SpellcastingHalf:  0.4,
	homebrew.SpellcastingThird: 0.3,
	homebrew.SpellcastingPact:  0.6,
	homebrew.SpellcastingNone:  0,
}

// axisScores are the four balance axes before clamping and weighting
type axisScores struct {
	power       float64
	utility     float64
	versatility float64
	scaling     float64
}

// ScoreContent scores one content record, dispatching to the scorer for
// its content type. An unrecognized type falls back to the generic
// scorer rather than failing.
func (a *Adapter) ScoreContent(
	ctx context.Context,
	input *engine.ScoreContentInput,
) (*engine.ScoreContentOutput, error) {
	if input == nil || input.Content == nil {
		return nil, errors.InvalidArgument("content is required")
	}

	level := input.Level
	if level == 0 {
		level = 1
	}
	level = clampInt32(level, homebrew.LevelMin, homebrew.LevelMax)

	content := input.Content

	var axes axisScores
	var tier homebrew.PowerTier
	var method string

	switch {
	case content.Type == homebrew.ContentTypeSpecies && content.Species != nil:
		axes, tier = scoreSpecies(content.Species)
		method = "species_heuristic_v1"
	case content.Type == homebrew.ContentTypeClass && content.Class != nil:
		axes = scoreClass(content.Class)
		tier = tierFromPower(axes.power)
		method = "class_heuristic_v1"
	case content.Type == homebrew.ContentTypeEquipment && content.Equipment != nil:
		axes, tier = scoreEquipment(content.Equipment)
		method = "equipment_heuristic_v1"
	case content.Type == homebrew.ContentTypeSpell && content.Spell != nil:
		axes, tier = scoreSpell(content.Spell)
		method = "spell_heuristic_v1"
	case content.Type == homebrew.ContentTypeFeat && content.Feat != nil:
		axes, tier = scoreFeat(content.Feat)
		method = "feat_heuristic_v1"
	default:
		// Unknown type, or a tagged record missing its typed payload
		axes = scoreGeneric(content)
		tier = tierFromPower(axes.power)
		method = "generic_heuristic_v1"
	}

	axes.power = clamp01(axes.power)
	axes.utility = clamp01(axes.utility)
	axes.versatility = clamp01(axes.versatility)
	axes.scaling = clamp01(axes.scaling)

	weights := normalizeWeights(input.Weights)
	overall := weights.Power*axes.power +
		weights.Utility*axes.utility +
		weights.Versatility*axes.versatility +
		weights.Scaling*axes.scaling

	metrics := &homebrew.BalanceMetrics{
		OverallScore:      overall,
		PowerScore:        axes.power,
		UtilityScore:      axes.utility,
		VersatilityScore:  axes.versatility,
		ScalingScore:      axes.scaling,
		PowerTier:         tier,
		ContentType:       content.Type,
		CalculationMethod: method,
	}
	metrics.IdentifiedIssues = identifyIssues(metrics, content, input.Constraints)

	return &engine.ScoreContentOutput{Metrics: metrics}, nil
}

// normalizeWeights returns the default weights for nil input, otherwise
// the supplied weights scaled to sum to 1
func normalizeWeights(w *engine.ScoreWeights) *engine.ScoreWeights {
	if w == nil {
		return engine.DefaultScoreWeights()
	}
	sum := w.Power + w.Utility + w.Versatility + w.Scaling
	if sum <= 0 {
		return engine.DefaultScoreWeights()
	}
	return &engine.ScoreWeights{
		Power:       w.Power / sum,
		Utility:     w.Utility / sum,
		Versatility: w.Versatility / sum,
		Scaling:     w.Scaling / sum,
	}
}

// scoreSpecies scores a species. Target total ASI is +3; species rarely
// scale, so the scaling axis is fixed.
func scoreSpecies(s *homebrew.SpeciesContent) (axisScores, homebrew.PowerTier) {
	totalASI := s.TotalAbilityScoreIncrease()
	traits := int32(len(s.RacialFeatures))

	axes := axisScores{
		power:       clampFloat(float64(totalASI)/3, 0.2, 1.0),
		utility:     float64(len(s.Proficiencies)) / 4,
		versatility: float64(traits) / 3,
		scaling:     0.4,
	}

	var tier homebrew.PowerTier
	switch {
	case totalASI >= 4 || traits >= 4:
		tier = homebrew.PowerTierHigh
	case totalASI <= 1 || traits <= 1:
		tier = homebrew.PowerTierLow
	default:
		tier = homebrew.PowerTierStandard
	}

	return axes, tier
}

// scoreClass scores a character class across hit die, combat features,
// and spellcasting progression.
func scoreClass(c *homebrew.ClassContent) axisScores {
	_, hitDie, _ := ParseDice(c.HitDice)
	hitDieScore := clamp01(float64(hitDie) / 12)
	combatScore := clamp01(float64(countFeatures(c.Features, combatKeywords)) / 3)
	castingScore := spellcastingScores[c.Spellcasting]

	power := 0.3*hitDieScore + 0.4*combatScore + 0.3*castingScore

	skillScore := clamp01(float64(c.SkillChoices+int32(len(c.SkillProficiencies))) / 4)
	toolScore := clamp01(float64(len(c.ToolProficiencies)) / 2)
	utilityFeatureScore := clamp01(float64(countFeatures(c.Features, utilityKeywords)) / 3)
	utility := 0.4*skillScore + 0.2*toolScore + 0.4*utilityFeatureScore

	choiceScore := clamp01(float64(countFeatures(c.Features, choiceKeywords)) / 3)
	spellScore := clamp01(float64(len(c.SpellList)) / 20)
	if c.PreparedCaster && spellScore < 0.8 {
		spellScore = 0.8
	}
	subclassScore := clamp01(float64(len(c.Subclasses)) / 3)
	versatility := (choiceScore + spellScore + subclassScore) / 3

	scalingCount := countFeatures(c.Features, scalingKeywords)
	if scalingCount > 5 {
		scalingCount = 5
	}
	scaling := float64(scalingCount) / 5

	return axisScores{power: power, utility: utility, versatility: versatility, scaling: scaling}
}

// scoreEquipment scores an item from its damage, enhancement bonus, and
// special properties. The power tier comes straight from rarity.
func scoreEquipment(e *homebrew.EquipmentContent) (axisScores, homebrew.PowerTier) {
	avgDamage := averageDamageFromNotation(e.Damage)
	propScore := float64(len(e.SpecialProperties)) / 3

	axes := axisScores{
		power:       avgDamage/10 + float64(e.EnhancementBonus)/3,
		utility:     propScore,
		versatility: propScore,
		scaling:     0.3,
	}

	var tier homebrew.PowerTier
	switch e.Rarity {
	case homebrew.RarityCommon:
		tier = homebrew.PowerTierLow
	case homebrew.RarityUncommon, homebrew.RarityRare:
		tier = homebrew.PowerTierStandard
	case homebrew.RarityVeryRare, homebrew.RarityLegendary:
		tier = homebrew.PowerTierHigh
	case homebrew.RarityArtifact:
		tier = homebrew.PowerTierEpic
	default:
		tier = homebrew.PowerTierStandard
	}

	return axes, tier
}

// scoreSpell scores a spell against the expected damage for its level
// (level x 3.5, with 3.5 for cantrips).
func scoreSpell(s *homebrew.SpellContent) (axisScores, homebrew.PowerTier) {
	expected := float64(s.Level) * 3.5
	if s.Level < 1 {
		expected = 3.5
	}
	power := clamp01(averageDamageFromNotation(s.Damage) / expected)

	desc := strings.ToLower(s.Description)
	utility := 0.0
	for _, kw := range spellRoleKeywords {
		if strings.Contains(desc, kw) {
			utility += 0.25
		}
	}

	versatility := 0.0
	if s.AreaOfEffect != "" {
		versatility += 1.0 / 3
	}
	if strings.Contains(desc, "choice") || strings.Contains(desc, "choose") {
		versatility += 1.0 / 3
	}
	if r := strings.ToLower(s.Range); r != "" && r != "self" && r != "touch" {
		versatility += 1.0 / 3
	}

	scaling := float64(s.Level) / 5
	if s.HigherLevels != "" {
		scaling += 0.3
	}

	var tier homebrew.PowerTier
	switch {
	case s.Level <= 2:
		tier = homebrew.PowerTierLow
	case s.Level <= 5:
		tier = homebrew.PowerTierStandard
	case s.Level <= 8:
		tier = homebrew.PowerTierHigh
	default:
		tier = homebrew.PowerTierEpic
	}

	return axisScores{power: power, utility: utility, versatility: versatility, scaling: scaling}, tier
}

// scoreFeat scores a feat from its ASI and benefit list
func scoreFeat(f *homebrew.FeatContent) (axisScores, homebrew.PowerTier) {
	benefits := int32(len(f.Benefits))
	prereqs := int32(len(f.Prerequisites))

	utilityBenefits := 0
	for _, b := range f.Benefits {
		if containsAny(strings.ToLower(b), []string{"skill", "tool", "language", "proficiency"}) {
			utilityBenefits++
		}
	}

	axes := axisScores{
		power:       float64(f.AbilityScoreIncrease)/2 + float64(benefits)/3,
		utility:     float64(utilityBenefits) / 2,
		versatility: float64(benefits) / 4,
		scaling:     0.2,
	}

	var tier homebrew.PowerTier
	switch {
	case prereqs >= 2 || benefits >= 4:
		tier = homebrew.PowerTierHigh
	case prereqs == 0 && benefits <= 1:
		tier = homebrew.PowerTierLow
	default:
		tier = homebrew.PowerTierStandard
	}

	return axes, tier
}

// scoreGeneric is the fallback for unrecognized content types: start
// every axis at 0.5 and nudge by 0.2 per keyword family found in the
// stringified record.
func scoreGeneric(c *homebrew.ContentRecord) axisScores {
	text := strings.ToLower(c.Name + " " + fmt.Sprintf("%v", c.Extra))

	axes := axisScores{power: 0.5, utility: 0.5, versatility: 0.5, scaling: 0.5}
	if containsAny(text, []string{"damage", "combat"}) {
		axes.power += 0.2
	}
	if containsAny(text, []string{"utility", "skill"}) {
		axes.utility += 0.2
	}
	if containsAny(text, []string{"choice", "flexible"}) {
		axes.versatility += 0.2
	}
	if containsAny(text, []string{"level", "scale"}) {
		axes.scaling += 0.2
	}
	return axes
}

// tierFromPower derives a tier for content types without their own
// tier policy (classes and the generic fallback)
func tierFromPower(power float64) homebrew.PowerTier {
	switch {
	case power < 0.35:
		return homebrew.PowerTierLow
	case power < 0.65:
		return homebrew.PowerTierStandard
	case power < 0.85:
		return homebrew.PowerTierHigh
	default:
		return homebrew.PowerTierEpic
	}
}

// identifyIssues lists balance concerns: out-of-band overall scores,
// near-cap axes, and breaches of the generation constraints.
func identifyIssues(
	metrics *homebrew.BalanceMetrics,
	content *homebrew.ContentRecord,
	constraints *homebrew.GenerationConstraints,
) []string {
	var issues []string

	if metrics.OverallScore > homebrew.BalancedMax {
		issues = append(issues, fmt.Sprintf("overall score %.2f is above the balanced range", metrics.OverallScore))
	} else if metrics.OverallScore < homebrew.BalancedMin {
		issues = append(issues, fmt.Sprintf("overall score %.2f is below the balanced range", metrics.OverallScore))
	}

	axisNames := []struct {
		name  string
		score float64
	}{
		{"power", metrics.PowerScore},
		{"utility", metrics.UtilityScore},
		{"versatility", metrics.VersatilityScore},
		{"scaling", metrics.ScalingScore},
	}
	for _, axis := range axisNames {
		if axis.score > 0.9 {
			issues = append(issues, fmt.Sprintf("%s score %.2f is near the cap", axis.name, axis.score))
		}
	}

	if constraints != nil {
		issues = append(issues, constraintIssues(metrics, content, constraints)...)
	}

	return issues
}

// constraintIssues checks a scored record against the generation
// constraints. Breaches surface as issues on the metrics, never as
// hard failures.
func constraintIssues(
	metrics *homebrew.BalanceMetrics,
	content *homebrew.ContentRecord,
	constraints *homebrew.GenerationConstraints,
) []string {
	var issues []string

	if tierRank(string(metrics.PowerTier)) > tierRank(constraints.PowerLevel) {
		issues = append(issues, fmt.Sprintf(
			"power tier %s exceeds the requested power level %s", metrics.PowerTier, constraints.PowerLevel))
	}

	text := searchableText(content)
	for _, forbidden := range constraints.ForbiddenElements {
		if forbidden != "" && strings.Contains(text, strings.ToLower(forbidden)) {
			issues = append(issues, fmt.Sprintf("contains forbidden element %q", forbidden))
		}
	}
	for _, required := range constraints.RequiredElements {
		if required != "" && !strings.Contains(text, strings.ToLower(required)) {
			issues = append(issues, fmt.Sprintf("missing required element %q", required))
		}
	}

	switch {
	case content.Type == homebrew.ContentTypeEquipment && content.Equipment != nil:
		if limit, ok := constraints.LimitFor(content.Type, "max_enhancement_bonus"); ok {
			if float64(content.Equipment.EnhancementBonus) > limit {
				issues = append(issues, fmt.Sprintf("enhancement bonus %d exceeds the cap of %.0f", content.Equipment.EnhancementBonus, limit))
			}
		}
		if limit, ok := constraints.LimitFor(content.Type, "max_average_damage"); ok {
			if avg := averageDamageFromNotation(content.Equipment.Damage); avg > limit {
				issues = append(issues, fmt.Sprintf("average damage %.1f exceeds the cap of %.1f", avg, limit))
			}
		}
	case content.Type == homebrew.ContentTypeSpell && content.Spell != nil:
		if limit, ok := constraints.LimitFor(content.Type, "max_spell_level"); ok {
			if float64(content.Spell.Level) > limit {
				issues = append(issues, fmt.Sprintf("spell level %d exceeds the cap of %.0f", content.Spell.Level, limit))
			}
		}
	case content.Type == homebrew.ContentTypeSpecies && content.Species != nil:
		if limit, ok := constraints.LimitFor(content.Type, "max_ability_score_increase"); ok {
			if total := content.Species.TotalAbilityScoreIncrease(); float64(total) > limit {
				issues = append(issues, fmt.Sprintf("total ability score increase %d exceeds the cap of %.0f", total, limit))
			}
		}
	}

	return issues
}

// tierRank orders power tiers for comparison; unknown strings rank as
// standard
func tierRank(tier string) int {
	switch tier {
	case string(homebrew.PowerTierLow):
		return 0
	case string(homebrew.PowerTierHigh):
		return 2
	case string(homebrew.PowerTierEpic):
		return 3
	default:
		return 1
	}
}

// searchableText flattens a record into lowercase text for element
// matching
func searchableText(c *homebrew.ContentRecord) string {
	parts := []string{c.Name}
	if payload := c.Payload(); payload != nil {
		parts = append(parts, fmt.Sprintf("%+v", payload))
	}
	if len(c.Extra) > 0 {
		parts = append(parts, fmt.Sprintf("%v", c.Extra))
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// countFeatures counts class features whose name or description
// contains any of the keywords
func countFeatures(features []homebrew.ClassFeature, keywords []string) int {
	count := 0
	for _, f := range features {
		text := strings.ToLower(f.Name + " " + f.Description)
		if containsAny(text, keywords) {
			count++
		}
	}
	return count
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
