package vtt

// Activation describes the resource cost to trigger an effect
type Activation struct {
	Type string `json:"type"`
	Cost int    `json:"cost"`
}

// Range describes how far an effect reaches
type Range struct {
	Value int    `json:"value"`
	Long  int    `json:"long,omitempty"`
	Units string `json:"units"`
}

// Duration describes how long an effect lasts
type Duration struct {
	Value int    `json:"value"`
	Units string `json:"units"`
}

// Target describes what an effect applies to. Type is either a target
// kind ("creature", "self") or an area shape ("sphere", "cone", ...),
// with Value holding count or area size respectively.
type Target struct {
	Value int    `json:"value"`
	Type  string `json:"type"`
}

// DamagePart is one normalized damage component
type DamagePart struct {
	Formula string `json:"formula"`
	Type    string `json:"type"`
}

// Mechanics is the category-specific mechanical payload the activity
// classifier reads. Translators populate it; missing source data leaves
// schema-appropriate zero values.
type Mechanics struct {
	Activation Activation `json:"activation"`
	Range      Range      `json:"range"`
	Duration   Duration   `json:"duration"`
	Target     Target     `json:"target"`

	// Attack signals
	AttackRoll bool   `json:"attackRoll"`
	AttackType string `json:"attackType,omitempty"` // melee or ranged
	AttackKind string `json:"attackKind,omitempty"` // weapon or spell

	// Save signals
	SaveRequired bool   `json:"saveRequired"`
	SaveAbility  string `json:"saveAbility,omitempty"`

	Damage []DamagePart `json:"damage,omitempty"`

	// Healing signals
	HealingFlag    bool   `json:"healingFlag"`
	HealingFormula string `json:"healingFormula,omitempty"`

	// Higher-level scaling
	ScalingFormula string `json:"scalingFormula,omitempty"`
	ScalingText    string `json:"scalingText,omitempty"`
}
