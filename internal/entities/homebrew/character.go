package homebrew

// AbilityScores holds the six ability scores for a character
type AbilityScores struct {
	Strength     int32
	Dexterity    int32
	Constitution int32
	Intelligence int32
	Wisdom       int32
	Charisma     int32
}

// Map returns the scores keyed by ability name, in no particular order
func (a *AbilityScores) Map() map[string]int32 {
	return map[string]int32{
		AbilityStrength:     a.Strength,
		AbilityDexterity:    a.Dexterity,
		AbilityConstitution: a.Constitution,
		AbilityIntelligence: a.Intelligence,
		AbilityWisdom:       a.Wisdom,
		AbilityCharisma:     a.Charisma,
	}
}

// Get returns the score for the named ability, or 0 for an unknown name
func (a *AbilityScores) Get(ability string) int32 {
	switch ability {
	case AbilityStrength:
		return a.Strength
	case AbilityDexterity:
		return a.Dexterity
	case AbilityConstitution:
		return a.Constitution
	case AbilityIntelligence:
		return a.Intelligence
	case AbilityWisdom:
		return a.Wisdom
	case AbilityCharisma:
		return a.Charisma
	default:
		return 0
	}
}

// ClassLevel is one class a character has levels in
type ClassLevel struct {
	Class    string
	Subclass string
	Level    int32
}

// KnownSpell is a spell on a character's list
type KnownSpell struct {
	Name  string
	Level int32
}

// CarriedItem is a piece of equipment on a character sheet
type CarriedItem struct {
	Name   string
	Rarity string
}

// CharacterSheet is the character record the rule checker consumes.
// NOTE: data-only; validation lives in the engine.
type CharacterSheet struct {
	Name    string
	Species string
	Classes []ClassLevel

	// Final scores, racial bonuses included
	AbilityScores *AbilityScores

	// Pre-racial base scores; nil when the character wasn't built with
	// point buy, which skips the point-buy check
	BaseAbilityScores *AbilityScores

	Spells    []KnownSpell
	Equipment []CarriedItem
}

// TotalLevel sums the character's class levels
func (c *CharacterSheet) TotalLevel() int32 {
	var total int32
	for _, cl := range c.Classes {
		total += cl.Level
	}
	return total
}

// IsMulticlass reports whether more than one class has at least one level
func (c *CharacterSheet) IsMulticlass() bool {
	count := 0
	for _, cl := range c.Classes {
		if cl.Level > 0 {
			count++
		}
	}
	return count > 1
}
