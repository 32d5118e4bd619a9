// Package homebrew implements the entities for generated D&D 5e content.
//
// Entities are data-only. All scoring and rule checks are done by the
// engine, not here.
package homebrew

// ContentRecord is one piece of homebrew content. Exactly one of the
// typed payloads is set, matching Type; content of an unrecognized type
// carries only the Extra bag. Records are never mutated after scoring.
type ContentRecord struct {
	ID   string
	Name string
	Type ContentType

	Species   *SpeciesContent
	Class     *ClassContent
	Equipment *EquipmentContent
	Spell     *SpellContent
	Feat      *FeatContent

	// Extra holds forward-compatible fields the typed payloads don't
	// model, and the whole record for unrecognized content types.
	Extra map[string]interface{}

	// Attached after scoring; nil for unscored records
	Metrics *BalanceMetrics

	CreatedAt int64
	UpdatedAt int64
}

// Payload returns the typed payload matching the record's Type, or nil
// for unrecognized types.
func (c *ContentRecord) Payload() interface{} {
	switch c.Type {
	case ContentTypeSpecies:
		if c.Species != nil {
			return c.Species
		}
	case ContentTypeClass:
		if c.Class != nil {
			return c.Class
		}
	case ContentTypeEquipment:
		if c.Equipment != nil {
			return c.Equipment
		}
	case ContentTypeSpell:
		if c.Spell != nil {
			return c.Spell
		}
	case ContentTypeFeat:
		if c.Feat != nil {
			return c.Feat
		}
	}
	return nil
}

// SpeciesContent holds the mechanical properties of a homebrew species
type SpeciesContent struct {
	AbilityScoreIncreases map[string]int32
	RacialFeatures        []string
	Proficiencies         []string
	Size                  string
	Speed                 int32
	Extra                 map[string]interface{}
}

// TotalAbilityScoreIncrease sums the species' ability score increases
func (s *SpeciesContent) TotalAbilityScoreIncrease() int32 {
	var total int32
	for _, inc := range s.AbilityScoreIncreases {
		total += inc
	}
	return total
}

// ClassFeature is a named class feature gained at a level
type ClassFeature struct {
	Name        string
	Description string
	Level       int32
}

// ClassContent holds the mechanical properties of a homebrew class
type ClassContent struct {
	HitDice            string // e.g. "1d10"
	Features           []ClassFeature
	Spellcasting       string // full, half, third, pact, none
	SkillProficiencies []string
	SkillChoices       int32
	ToolProficiencies  []string
	SpellList          []string
	PreparedCaster     bool
	Subclasses         []string
	Extra              map[string]interface{}
}

// EquipmentContent holds the mechanical properties of a homebrew item
type EquipmentContent struct {
	Damage            string // dice notation, e.g. "2d6+1"
	EnhancementBonus  int32
	SpecialProperties []string
	Rarity            string
	Extra             map[string]interface{}
}

// SpellContent holds the mechanical properties of a homebrew spell
type SpellContent struct {
	Level        int32 // 0 for cantrips
	Damage       string
	Description  string
	AreaOfEffect string
	Range        string
	HigherLevels string // scaling text, empty when the spell doesn't upcast
	Extra        map[string]interface{}
}

// FeatContent holds the mechanical properties of a homebrew feat
type FeatContent struct {
	AbilityScoreIncrease int32
	Benefits             []string
	Prerequisites        []string
	Extra                map[string]interface{}
}
