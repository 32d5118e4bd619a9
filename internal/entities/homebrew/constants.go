package homebrew

// ContentType tags a piece of homebrew content
type ContentType string

// Content types
const (
	ContentTypeSpecies   ContentType = "species"
	ContentTypeClass     ContentType = "character_class"
	ContentTypeEquipment ContentType = "equipment"
	ContentTypeSpell     ContentType = "spell"
	ContentTypeFeat      ContentType = "feat"
)

// PowerTier buckets content power relative to official material
type PowerTier string

// Power tiers
const (
	PowerTierLow      PowerTier = "low"
	PowerTierStandard PowerTier = "standard"
	PowerTierHigh     PowerTier = "high"
	PowerTierEpic     PowerTier = "epic"
)

// PowerTiers lists the valid tiers in ascending order
var PowerTiers = []string{
	string(PowerTierLow),
	string(PowerTierStandard),
	string(PowerTierHigh),
	string(PowerTierEpic),
}

// Ability names
const (
	AbilityStrength     = "strength"
	AbilityDexterity    = "dexterity"
	AbilityConstitution = "constitution"
	AbilityIntelligence = "intelligence"
	AbilityWisdom       = "wisdom"
	AbilityCharisma     = "charisma"
)

// AbilityNames lists the six abilities in standard order
var AbilityNames = []string{
	AbilityStrength,
	AbilityDexterity,
	AbilityConstitution,
	AbilityIntelligence,
	AbilityWisdom,
	AbilityCharisma,
}

// Class names, lowercased as they appear in character records
const (
	ClassBarbarian = "barbarian"
	ClassBard      = "bard"
	ClassCleric    = "cleric"
	ClassDruid     = "druid"
	ClassFighter   = "fighter"
	ClassMonk      = "monk"
	ClassPaladin   = "paladin"
	ClassRanger    = "ranger"
	ClassRogue     = "rogue"
	ClassSorcerer  = "sorcerer"
	ClassWarlock   = "warlock"
	ClassWizard    = "wizard"
)

// Spellcasting progression for a class
const (
	SpellcastingFull  = "full"
	SpellcastingHalf  = "half"
	SpellcastingThird = "third"
	SpellcastingPact  = "pact"
	SpellcastingNone  = "none"
)

// Equipment rarities
const (
	RarityCommon    = "common"
	RarityUncommon  = "uncommon"
	RarityRare      = "rare"
	RarityVeryRare  = "very_rare"
	RarityLegendary = "legendary"
	RarityArtifact  = "artifact"
)

// Playable ability score bounds. Scores outside [3,20] but within the
// absolute [1,30] band are unusual rather than illegal.
const (
	AbilityScoreAbsoluteMin = 1
	AbilityScoreAbsoluteMax = 30
	AbilityScorePlayableMin = 3
	AbilityScorePlayableMax = 20
)

// Character level bounds
const (
	LevelMin = 1
	LevelMax = 20
)
