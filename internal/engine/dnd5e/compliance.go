package dnd5e

import (
	"context"
	"fmt"

	"github.com/wrenhall/homebrew-api/internal/engine"
	"github.com/wrenhall/homebrew-api/internal/entities/homebrew"
	"github.com/wrenhall/homebrew-api/internal/errors"
)

// Point buy: 27 points to spend on base scores between 8 and 15
const pointBuyBudget = int32(27)

var pointBuyCosts = map[int32]int32{
	8:  0,
	9:  1,
	10: 2,
	11: 3,
	12: 4,
	13: 5,
	14: 7,
	15: 9,
}

// multiclassPrereq describes the ability minimums for taking levels in
// a class. AnyOf means one qualifying ability is enough (Fighter's
// STR-or-DEX); everything else requires all listed abilities.
type multiclassPrereq struct {
	Abilities []string
	Minimum   int32
	AnyOf     bool
}

var multiclassPrereqs = map[string]multiclassPrereq{
	homebrew.ClassBarbarian: {Abilities: []string{homebrew.AbilityStrength}, Minimum: 13},
	homebrew.ClassBard:      {Abilities: []string{homebrew.AbilityCharisma}, Minimum: 13},
	homebrew.ClassCleric:    {Abilities: []string{homebrew.AbilityWisdom}, Minimum: 13},
	homebrew.ClassDruid:     {Abilities: []string{homebrew.AbilityWisdom}, Minimum: 13},
	homebrew.ClassFighter:   {Abilities: []string{homebrew.AbilityStrength, homebrew.AbilityDexterity}, Minimum: 13, AnyOf: true},
	homebrew.ClassMonk:      {Abilities: []string{homebrew.AbilityDexterity, homebrew.AbilityWisdom}, Minimum: 13},
	homebrew.ClassPaladin:   {Abilities: []string{homebrew.AbilityStrength, homebrew.AbilityCharisma}, Minimum: 13},
	homebrew.ClassRanger:    {Abilities: []string{homebrew.AbilityDexterity, homebrew.AbilityWisdom}, Minimum: 13},
	homebrew.ClassRogue:     {Abilities: []string{homebrew.AbilityDexterity}, Minimum: 13},
	homebrew.ClassSorcerer:  {Abilities: []string{homebrew.AbilityCharisma}, Minimum: 13},
	homebrew.ClassWarlock:   {Abilities: []string{homebrew.AbilityCharisma}, Minimum: 13},
	homebrew.ClassWizard:    {Abilities: []string{homebrew.AbilityIntelligence}, Minimum: 13},
}

// Caster progression per class. Subclass casters (Eldritch Knight,
// Arcane Trickster) are resolved from the subclass name. Warlock counts
// at full rate — a documented simplification of pact magic.
var fullCasters = map[string]bool{
	homebrew.ClassBard:     true,
	homebrew.ClassCleric:   true,
	homebrew.ClassDruid:    true,
	homebrew.ClassSorcerer: true,
	homebrew.ClassWizard:   true,
	homebrew.ClassWarlock:  true,
}

var halfCasters = map[string]bool{
	homebrew.ClassPaladin: true,
	homebrew.ClassRanger:  true,
}

var thirdCasterSubclasses = map[string]bool{
	"eldritch_knight":  true,
	"arcane_trickster": true,
}

// ValidateCharacter runs the full rule-compliance pass: ability scores,
// point buy (when base scores are present), class levels and multiclass
// prerequisites, spellcasting bounds, and equipment rarity. The checks
// are independent; their issues are unioned into one result.
//
// A nil sheet is a precondition violation and returns an error; every
// malformed field inside the sheet degrades to an issue instead.
func (a *Adapter) ValidateCharacter(
	ctx context.Context,
	input *engine.ValidateCharacterInput,
) (*engine.ValidateCharacterOutput, error) {
	if input == nil || input.Sheet == nil {
		return nil, errors.InvalidArgument("character sheet is required")
	}

	sheet := input.Sheet
	constraints := input.Constraints
	if constraints == nil {
		constraints = homebrew.DefaultConstraints()
	}

	var issues []homebrew.ValidationIssue
	issues = append(issues, checkAbilityScores(sheet.AbilityScores)...)
	if sheet.BaseAbilityScores != nil {
		issues = append(issues, checkPointBuy(sheet.BaseAbilityScores)...)
	}
	issues = append(issues, checkClassLevels(sheet, constraints)...)
	issues = append(issues, checkSpellcasting(sheet)...)
	issues = append(issues, checkEquipmentRarity(sheet)...)

	result := homebrew.NewValidationResult(issues)
	result.Score = complianceScore(issues)

	return &engine.ValidateCharacterOutput{Result: result}, nil
}

// ValidatePointBuy checks base ability scores against the 27-point
// budget. Racial bonuses must already be excluded by the caller.
func (a *Adapter) ValidatePointBuy(
	ctx context.Context,
	input *engine.ValidatePointBuyInput,
) (*engine.ValidatePointBuyOutput, error) {
	if input == nil || input.Scores == nil {
		return nil, errors.InvalidArgument("ability scores are required")
	}

	issues := checkPointBuy(input.Scores)
	result := homebrew.NewValidationResult(issues)
	result.Score = complianceScore(issues)

	return &engine.ValidatePointBuyOutput{
		Result:      result,
		PointsSpent: pointBuyTotal(input.Scores),
	}, nil
}

// ValidateMulticlass checks the ability prerequisites for taking a
// level in the target class, plus the prerequisites of every class the
// character already has — leaving a class invalidates it just as much
// as entering one.
func (a *Adapter) ValidateMulticlass(
	ctx context.Context,
	input *engine.ValidateMulticlassInput,
) (*engine.ValidateMulticlassOutput, error) {
	if input == nil || input.Sheet == nil {
		return nil, errors.InvalidArgument("character sheet is required")
	}
	if input.TargetClass == "" {
		return nil, errors.InvalidArgument("target class is required")
	}

	classes := make([]string, 0, len(input.Sheet.Classes)+1)
	for _, cl := range input.Sheet.Classes {
		if cl.Level > 0 {
			classes = append(classes, cl.Class)
		}
	}
	classes = append(classes, input.TargetClass)

	var issues []homebrew.ValidationIssue
	for _, class := range classes {
		issues = append(issues, checkClassPrerequisites(class, input.Sheet.AbilityScores)...)
	}

	return &engine.ValidateMulticlassOutput{Issues: issues}, nil
}

// checkAbilityScores validates presence and range of the six abilities.
// Scores outside [1,30] are blocking; scores inside [1,30] but outside
// the playable [3,20] band only warn.
func checkAbilityScores(scores *homebrew.AbilityScores) []homebrew.ValidationIssue {
	if scores == nil {
		return []homebrew.ValidationIssue{{
			Severity:   homebrew.SeverityCritical,
			Code:       "MISSING_ABILITY_SCORES",
			Message:    "Ability scores are required",
			Field:      "ability_scores",
			Suggestion: "Provide all six ability scores",
		}}
	}

	var issues []homebrew.ValidationIssue
	for _, ability := range homebrew.AbilityNames {
		score := scores.Get(ability)
		switch {
		case score < homebrew.AbilityScoreAbsoluteMin || score > homebrew.AbilityScoreAbsoluteMax:
			issues = append(issues, homebrew.ValidationIssue{
				Severity: homebrew.SeverityError,
				Code:     "ABILITY_SCORE_OUT_OF_RANGE",
				Message:  fmt.Sprintf("%s score %d is outside the legal range 1-30", ability, score),
				Field:    ability,
			})
		case score < homebrew.AbilityScorePlayableMin || score > homebrew.AbilityScorePlayableMax:
			issues = append(issues, homebrew.ValidationIssue{
				Severity:   homebrew.SeverityWarning,
				Code:       "UNUSUAL_ABILITY_SCORE",
				Message:    fmt.Sprintf("%s score %d is outside the typical 3-20 band for playable characters", ability, score),
				Field:      ability,
				Suggestion: "Confirm the score is intentional",
			})
		}
	}
	return issues
}

// checkPointBuy validates base scores against point-buy rules. Range
// violations are reported per score before the budget check.
func checkPointBuy(scores *homebrew.AbilityScores) []homebrew.ValidationIssue {
	var issues []homebrew.ValidationIssue

	for _, ability := range homebrew.AbilityNames {
		score := scores.Get(ability)
		if score < 8 || score > 15 {
			issues = append(issues, homebrew.ValidationIssue{
				Severity:   homebrew.SeverityError,
				Code:       "INVALID_POINT_BUY_SCORE",
				Message:    fmt.Sprintf("%s base score %d is outside the point-buy range 8-15", ability, score),
				Field:      ability,
				Suggestion: "Point-buy base scores must be between 8 and 15 before racial bonuses",
			})
		}
	}

	total := pointBuyTotal(scores)
	if total > pointBuyBudget {
		issues = append(issues, homebrew.ValidationIssue{
			Severity: homebrew.SeverityError,
			Code:     "POINT_BUY_EXCEEDED",
			Message:  fmt.Sprintf("point-buy total %d exceeds the 27-point budget", total),
			Field:    "ability_scores",
		})
	} else if total < pointBuyBudget && len(issues) == 0 {
		issues = append(issues, homebrew.ValidationIssue{
			Severity:   homebrew.SeverityWarning,
			Code:       "UNSPENT_POINTS",
			Message:    fmt.Sprintf("%d point-buy points left unspent", pointBuyBudget-total),
			Field:      "ability_scores",
			Suggestion: "Spend the remaining points or confirm the scores are final",
		})
	}

	return issues
}

// pointBuyTotal sums the point-buy cost of the six scores. Scores
// outside the cost table contribute nothing; the range check reports
// them separately.
func pointBuyTotal(scores *homebrew.AbilityScores) int32 {
	var total int32
	for _, score := range scores.Map() {
		total += pointBuyCosts[score]
	}
	return total
}

// checkClassLevels validates class presence, per-class and total level
// bounds, and multiclass prerequisites for every class on the sheet.
func checkClassLevels(sheet *homebrew.CharacterSheet, constraints *homebrew.GenerationConstraints) []homebrew.ValidationIssue {
	if len(sheet.Classes) == 0 {
		return []homebrew.ValidationIssue{{
			Severity: homebrew.SeverityError,
			Code:     "MISSING_CLASS",
			Message:  "Character must have at least one class",
			Field:    "classes",
		}}
	}

	var issues []homebrew.ValidationIssue
	for i, cl := range sheet.Classes {
		if cl.Class == "" {
			issues = append(issues, homebrew.ValidationIssue{
				Severity: homebrew.SeverityError,
				Code:     "MISSING_CLASS",
				Message:  fmt.Sprintf("class entry %d has no class name", i),
				Field:    "classes",
			})
		}
		if cl.Level < homebrew.LevelMin || cl.Level > homebrew.LevelMax {
			issues = append(issues, homebrew.ValidationIssue{
				Severity: homebrew.SeverityError,
				Code:     "LEVEL_OUT_OF_RANGE",
				Message:  fmt.Sprintf("%s level %d is outside 1-20", cl.Class, cl.Level),
				Field:    "classes",
			})
		}
	}

	total := sheet.TotalLevel()
	if total > homebrew.LevelMax {
		issues = append(issues, homebrew.ValidationIssue{
			Severity: homebrew.SeverityError,
			Code:     "TOTAL_LEVEL_EXCEEDED",
			Message:  fmt.Sprintf("total level %d exceeds 20", total),
			Field:    "classes",
		})
	}
	if total < constraints.MinLevel || total > constraints.MaxLevel {
		issues = append(issues, homebrew.ValidationIssue{
			Severity: homebrew.SeverityWarning,
			Code:     "LEVEL_OUTSIDE_CONSTRAINTS",
			Message:  fmt.Sprintf("total level %d is outside the requested range %d-%d", total, constraints.MinLevel, constraints.MaxLevel),
			Field:    "classes",
		})
	}

	// Multiclass prerequisites apply to every class the character has,
	// not just newly added ones
	if sheet.IsMulticlass() {
		for _, cl := range sheet.Classes {
			if cl.Level > 0 {
				issues = append(issues, checkClassPrerequisites(cl.Class, sheet.AbilityScores)...)
			}
		}
	}

	return issues
}

// checkClassPrerequisites checks the ability minimums for one class.
// Classes without an entry in the table (homebrew classes) have no
// prerequisites.
func checkClassPrerequisites(class string, scores *homebrew.AbilityScores) []homebrew.ValidationIssue {
	prereq, ok := multiclassPrereqs[class]
	if !ok {
		return nil
	}
	if scores == nil {
		return []homebrew.ValidationIssue{{
			Severity: homebrew.SeverityError,
			Code:     "MULTICLASS_PREREQUISITE",
			Message:  fmt.Sprintf("cannot verify %s prerequisites without ability scores", class),
			Field:    "ability_scores",
		}}
	}

	if prereq.AnyOf {
		for _, ability := range prereq.Abilities {
			if scores.Get(ability) >= prereq.Minimum {
				return nil
			}
		}
		return []homebrew.ValidationIssue{{
			Severity:   homebrew.SeverityError,
			Code:       "MULTICLASS_PREREQUISITE",
			Message:    fmt.Sprintf("%s requires %s %d", class, joinAbilities(prereq.Abilities, " or "), prereq.Minimum),
			Field:      "classes",
			Suggestion: fmt.Sprintf("Raise one of %s to at least %d", joinAbilities(prereq.Abilities, " or "), prereq.Minimum),
		}}
	}

	var issues []homebrew.ValidationIssue
	for _, ability := range prereq.Abilities {
		if scores.Get(ability) < prereq.Minimum {
			issues = append(issues, homebrew.ValidationIssue{
				Severity:   homebrew.SeverityError,
				Code:       "MULTICLASS_PREREQUISITE",
				Message:    fmt.Sprintf("%s requires %s %d", class, ability, prereq.Minimum),
				Field:      ability,
				Suggestion: fmt.Sprintf("Raise %s to at least %d", ability, prereq.Minimum),
			})
		}
	}
	return issues
}

// checkSpellcasting flags spells above the character's maximum castable
// level. Advisory only; homebrew characters may bend slot rules.
func checkSpellcasting(sheet *homebrew.CharacterSheet) []homebrew.ValidationIssue {
	if len(sheet.Spells) == 0 {
		return nil
	}

	casterLevel := effectiveCasterLevel(sheet)
	maxLevel := maxCastableSpellLevel(casterLevel)

	var issues []homebrew.ValidationIssue
	for _, spell := range sheet.Spells {
		if spell.Level > maxLevel {
			issues = append(issues, homebrew.ValidationIssue{
				Severity: homebrew.SeverityWarning,
				Code:     "SPELL_LEVEL_TOO_HIGH",
				Message: fmt.Sprintf("%s is level %d but the maximum castable level at caster level %d is %d",
					spell.Name, spell.Level, casterLevel, maxLevel),
				Field:      "spells",
				Suggestion: "Lower the spell level or raise caster levels",
			})
		}
	}
	return issues
}

// effectiveCasterLevel totals caster-level contributions: full casters
// at 1x, half-casters at level/2, subclass third-casters at level/3.
// Warlock counts at 1x rather than tracking pact slots separately.
func effectiveCasterLevel(sheet *homebrew.CharacterSheet) int32 {
	var total int32
	for _, cl := range sheet.Classes {
		switch {
		case fullCasters[cl.Class]:
			total += cl.Level
		case halfCasters[cl.Class]:
			total += cl.Level / 2
		case thirdCasterSubclasses[cl.Subclass]:
			total += cl.Level / 3
		}
	}
	return total
}

// maxCastableSpellLevel maps caster level onto the standard slot
// progression breakpoints
func maxCastableSpellLevel(casterLevel int32) int32 {
	switch {
	case casterLevel >= 17:
		return 9
	case casterLevel >= 15:
		return 8
	case casterLevel >= 13:
		return 7
	case casterLevel >= 11:
		return 6
	case casterLevel >= 9:
		return 5
	case casterLevel >= 7:
		return 4
	case casterLevel >= 5:
		return 3
	case casterLevel >= 3:
		return 2
	case casterLevel >= 1:
		return 1
	default:
		return 0
	}
}

// checkEquipmentRarity flags items far above the character's level.
// Advisory only, never blocking.
func checkEquipmentRarity(sheet *homebrew.CharacterSheet) []homebrew.ValidationIssue {
	level := sheet.TotalLevel()

	var issues []homebrew.ValidationIssue
	for _, item := range sheet.Equipment {
		tooStrong := false
		switch item.Rarity {
		case homebrew.RarityLegendary, homebrew.RarityArtifact:
			tooStrong = level < 17
		case homebrew.RarityVeryRare:
			tooStrong = level < 11
		}
		if tooStrong {
			issues = append(issues, homebrew.ValidationIssue{
				Severity:   homebrew.SeverityWarning,
				Code:       "HIGH_RARITY_FOR_LEVEL",
				Message:    fmt.Sprintf("%s (%s) is very powerful for a level %d character", item.Name, item.Rarity, level),
				Field:      "equipment",
				Suggestion: "Consider a lower-rarity item at this level",
			})
		}
	}
	return issues
}

// complianceScore folds issues into an optional [0,1] score: each
// blocking issue costs 0.25, each warning 0.05
func complianceScore(issues []homebrew.ValidationIssue) float64 {
	score := 1.0
	for _, issue := range issues {
		if issue.Severity.Blocking() {
			score -= 0.25
		} else if issue.Severity == homebrew.SeverityWarning {
			score -= 0.05
		}
	}
	return clamp01(score)
}

func joinAbilities(abilities []string, sep string) string {
	out := ""
	for i, a := range abilities {
		if i > 0 {
			out += sep
		}
		out += a
	}
	return out
}
