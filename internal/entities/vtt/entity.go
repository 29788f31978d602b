// Package vtt holds the normalized entity schema consumed by the
// tabletop platform. Field names are a fixed external contract; the
// translators must satisfy them exactly.
package vtt

import "time"

// Entity type names
const (
	TypeSpell   = "spell"
	TypeItem    = "item"
	TypeClass   = "class"
	TypeMonster = "monster"
)

// Provenance records where an entity came from. SourceID always traces
// back to exactly one provider record within its category.
type Provenance struct {
	SourceID     int       `json:"sourceId"`
	ImportedAt   time.Time `json:"importedAt"`
	ImportMethod string    `json:"importMethod"`
}

// Header carries the identity fields shared by every entity type
type Header struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Img         string     `json:"img"`
	Source      string     `json:"source"`
	Provenance  Provenance `json:"provenance"`
}

// GetID returns the entity ID
func (h *Header) GetID() string {
	return h.ID
}

// GetName returns the entity name
func (h *Header) GetName() string {
	return h.Name
}

// GetDescription returns the assembled description text
func (h *Header) GetDescription() string {
	return h.Description
}

// GetSourceID returns the provider record id this entity was built from
func (h *Header) GetSourceID() int {
	return h.Provenance.SourceID
}

// Entity is implemented by every normalized entity type
type Entity interface {
	GetID() string
	GetType() string
	GetName() string
	GetDescription() string
	GetSourceID() int

	// Mech exposes the mechanical payload for activity classification
	Mech() *Mechanics

	// SetActivities attaches classified activities to the entity
	SetActivities(activities map[string]*Activity)
}

// Spell is a normalized spell entity
type Spell struct {
	Header
	Mechanics Mechanics `json:"mechanics"`

	Level  int    `json:"level"`
	School string `json:"school"`

	Ritual        bool   `json:"ritual"`
	Concentration bool   `json:"concentration"`
	Verbal        bool   `json:"verbal"`
	Somatic       bool   `json:"somatic"`
	Material      bool   `json:"material"`
	MaterialText  string `json:"materialText,omitempty"`

	Activities map[string]*Activity `json:"activities"`
}

// GetType returns the entity type
func (s *Spell) GetType() string { return TypeSpell }

// Mech exposes the mechanical payload
func (s *Spell) Mech() *Mechanics { return &s.Mechanics }

// SetActivities attaches classified activities
func (s *Spell) SetActivities(a map[string]*Activity) { s.Activities = a }

// Item is a normalized equipment entity
type Item struct {
	Header
	Mechanics Mechanics `json:"mechanics"`

	Magic      bool     `json:"magic"`
	Attunement bool     `json:"attunement"`
	Weight     float64  `json:"weight"`
	Price      float64  `json:"price"`
	Properties []string `json:"properties"`

	ArmorClass int    `json:"armorClass,omitempty"`
	ArmorType  string `json:"armorType,omitempty"`

	Activities map[string]*Activity `json:"activities"`
}

// GetType returns the entity type
func (i *Item) GetType() string { return TypeItem }

// Mech exposes the mechanical payload
func (i *Item) Mech() *Mechanics { return &i.Mechanics }

// SetActivities attaches classified activities
func (i *Item) SetActivities(a map[string]*Activity) { i.Activities = a }

// CharacterClass is a normalized character class entity
type CharacterClass struct {
	Header
	Mechanics Mechanics `json:"mechanics"`

	HitDice             int       `json:"hitDice"`
	PrimaryAbility      string    `json:"primaryAbility"`
	SpellcastingAbility string    `json:"spellcastingAbility,omitempty"`
	Features            []Feature `json:"features"`

	Activities map[string]*Activity `json:"activities"`
}

// GetType returns the entity type
func (c *CharacterClass) GetType() string { return TypeClass }

// Mech exposes the mechanical payload
func (c *CharacterClass) Mech() *Mechanics { return &c.Mechanics }

// SetActivities attaches classified activities
func (c *CharacterClass) SetActivities(a map[string]*Activity) { c.Activities = a }

// Monster is a normalized monster entity
type Monster struct {
	Header
	Mechanics Mechanics `json:"mechanics"`

	Size            string  `json:"size"`
	Alignment       string  `json:"alignment"`
	CreatureType    string  `json:"creatureType"`
	ChallengeRating float64 `json:"challengeRating"`

	ArmorClass   int            `json:"armorClass"`
	HitPoints    int            `json:"hitPoints"`
	HitPointDice string         `json:"hitPointDice,omitempty"`
	Speed        map[string]int `json:"speed"`

	Abilities    map[string]int `json:"abilities"`
	SavingThrows []string       `json:"savingThrows"`
	Skills       map[string]int `json:"skills"`

	Resistances         []string `json:"resistances"`
	Immunities          []string `json:"immunities"`
	Vulnerabilities     []string `json:"vulnerabilities"`
	ConditionImmunities []string `json:"conditionImmunities"`

	Languages string `json:"languages,omitempty"`

	Activities map[string]*Activity `json:"activities"`
}

// GetType returns the entity type
func (m *Monster) GetType() string { return TypeMonster }

// Mech exposes the mechanical payload
func (m *Monster) Mech() *Mechanics { return &m.Mechanics }

// SetActivities attaches classified activities
func (m *Monster) SetActivities(a map[string]*Activity) { m.Activities = a }
