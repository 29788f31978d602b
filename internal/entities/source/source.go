// Package source holds the provider-side record shapes. The provider
// publishes numerically-coded, partially-nullable JSON; optional fields
// are pointers so that "absent" and "zero" stay distinguishable.
//
// Records are transient: they are fetched per call by an external
// collaborator and never owned by this module.
package source

// Activation describes how a spell or item effect is triggered
type Activation struct {
	ActivationType int `json:"activationType"`
	ActivationTime int `json:"activationTime"`
}

// SpellRange is the provider's spell range block. Origin is one of the
// provider's literal strings ("Self", "Touch", "Ranged", "Sight",
// "Special"), one of the few places it uses words instead of codes.
type SpellRange struct {
	Origin     string `json:"origin"`
	RangeValue int    `json:"rangeValue"`
	AOETypeID  *int   `json:"aoeType"`
	AOEValue   *int   `json:"aoeValue"`
}

// Duration is the provider's duration block
type Duration struct {
	DurationInterval int    `json:"durationInterval"`
	DurationUnit     string `json:"durationUnit"`
	DurationType     string `json:"durationType"`
}

// DamagePart is one explicit damage or healing tuple
type DamagePart struct {
	DiceCount    int `json:"diceCount"`
	DiceValue    int `json:"diceValue"`
	FixedValue   int `json:"fixedValue"`
	DamageTypeID int `json:"damageTypeId"`
}

// Spell is a provider spell record
type Spell struct {
	ID                     int    `json:"id"`
	Name                   string `json:"name"`
	Level                  int    `json:"level"`
	SchoolID               int    `json:"schoolId"`
	Description            string `json:"description"`
	HigherLevelDescription string `json:"higherLevelDescription"`

	Activation *Activation `json:"activation"`
	Range      *SpellRange `json:"range"`
	Duration   *Duration   `json:"duration"`

	Ritual                bool   `json:"ritual"`
	Concentration         bool   `json:"concentration"`
	ComponentIDs          []int  `json:"components"`
	ComponentsDescription string `json:"componentsDescription"`

	RequiresSavingThrow bool `json:"requiresSavingThrow"`
	RequiresAttackRoll  bool `json:"requiresAttackRoll"`
	AttackTypeID        *int `json:"attackType"`
	SaveDcAbilityID     *int `json:"saveDcAbilityId"`

	Damage          []DamagePart `json:"damage"`
	Healing         *DamagePart  `json:"healing"`
	HigherLevelDice *DamagePart  `json:"higherLevelDice"`

	SourceID int    `json:"sourceId"`
	IconURL  string `json:"iconUrl"`
}

// WeaponRange holds normal and long range in feet
type WeaponRange struct {
	Range     int `json:"range"`
	LongRange int `json:"longRange"`
}

// Item is a provider equipment record. Weapons, armor, and wondrous
// items all arrive through the same shape; the optional blocks tell
// them apart.
type Item struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CategoryID  int    `json:"categoryId"`

	Magic              bool    `json:"magic"`
	RequiresAttunement bool    `json:"canAttune"`
	Weight             float64 `json:"weight"`
	Cost               *float64 `json:"cost"`

	ArmorClass  *int `json:"armorClass"`
	ArmorTypeID *int `json:"armorTypeId"`

	Damage       *DamagePart  `json:"damage"`
	AttackTypeID *int         `json:"attackType"`
	WeaponRange  *WeaponRange `json:"weaponRange"`
	PropertyIDs  []int        `json:"properties"`

	SourceID int    `json:"sourceId"`
	IconURL  string `json:"iconUrl"`
}

// ClassFeature is a structured feature entry on a class record
type ClassFeature struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	RequiredLevel int    `json:"requiredLevel"`
}

// Class is a provider character class record. The markup feature table
// document, when available, travels alongside it rather than inside it.
type Class struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`

	HitDice               int  `json:"hitDice"`
	PrimaryAbilityID      *int `json:"primaryAbilityId"`
	SpellcastingAbilityID *int `json:"spellCastingAbilityId"`

	Features []ClassFeature `json:"classFeatures"`

	SourceID    int    `json:"sourceId"`
	PortraitURL string `json:"portraitUrl"`
}

// Stat is one numeric ability score entry
type Stat struct {
	StatID int  `json:"statId"`
	Value  *int `json:"value"`
}

// SavingThrow is a monster saving throw proficiency entry
type SavingThrow struct {
	StatID        int  `json:"statId"`
	BonusModifier *int `json:"bonusModifier"`
}

// SkillValue is a monster skill bonus entry
type SkillValue struct {
	SkillID int `json:"skillId"`
	Value   int `json:"value"`
}

// Movement is one movement mode entry
type Movement struct {
	MovementID int `json:"movementId"`
	Speed      int `json:"speed"`
}

// Monster is a provider monster record
type Monster struct {
	ID   int    `json:"id"`
	Name string `json:"name"`

	SizeID            int `json:"sizeId"`
	AlignmentID       int `json:"alignmentId"`
	TypeID            int `json:"typeId"`
	ChallengeRatingID int `json:"challengeRatingId"`

	ArmorClass            int         `json:"armorClass"`
	ArmorClassDescription string      `json:"armorClassDescription"`
	AverageHitPoints      int         `json:"averageHitPoints"`
	HitPointDice          *DamagePart `json:"hitPointDice"`

	Movements    []Movement    `json:"movements"`
	Stats        []Stat        `json:"stats"`
	SavingThrows []SavingThrow `json:"savingThrows"`
	Skills       []SkillValue  `json:"skills"`

	DamageResistanceIDs    []int `json:"damageResistances"`
	DamageImmunityIDs      []int `json:"damageImmunities"`
	DamageVulnerabilityIDs []int `json:"damageVulnerabilities"`
	ConditionImmunityIDs   []int `json:"conditionImmunities"`

	LanguageNotes string `json:"languageNote"`

	SpecialTraitsDescription    string `json:"specialTraitsDescription"`
	ActionsDescription          string `json:"actionsDescription"`
	ReactionsDescription        string `json:"reactionsDescription"`
	LegendaryActionsDescription string `json:"legendaryActionsDescription"`

	SourceID  int    `json:"sourceId"`
	AvatarURL string `json:"avatarUrl"`
}
