package vtt

// Activity effect kinds
const (
	ActivityAttack  = "attack"
	ActivitySave    = "save"
	ActivityHeal    = "heal"
	ActivityUtility = "utility"
)

// Damage-on-save policies
const (
	OnSaveHalf = "half"
	OnSaveNone = "none"
)

// AttackDetails records how an attack activity is resolved
type AttackDetails struct {
	Type           string `json:"type"`           // melee or ranged
	Classification string `json:"classification"` // weapon or spell
}

// SaveDetails records the saving throw an activity forces
type SaveDetails struct {
	Ability string `json:"ability"`
	OnSave  string `json:"onSave"`
}

// HealingDetails records the healing formula of a heal activity
type HealingDetails struct {
	Formula string `json:"formula"`
}

// Activity is one derived declarative mechanical effect attached to an
// entity. Every classified entity carries at least one.
type Activity struct {
	Type     string   `json:"type"`
	Name     string   `json:"name"`
	Range    Range    `json:"range"`
	Duration Duration `json:"duration"`
	Target   Target   `json:"target"`

	Attack  *AttackDetails  `json:"attack,omitempty"`
	Save    *SaveDetails    `json:"save,omitempty"`
	Healing *HealingDetails `json:"healing,omitempty"`

	Damage  []DamagePart `json:"damage,omitempty"`
	Scaling string       `json:"scaling,omitempty"`
}

// Feature is a named, leveled capability extracted from structured
// class data or from a markup feature table.
type Feature struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	RequiredLevel int    `json:"requiredLevel"`
}
