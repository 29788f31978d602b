// Package rules translates the provider's numeric code tables into the
// platform's canonical short codes.
//
// Every lookup is total: an unrecognized code maps to a documented
// default instead of failing, so translators never error out on an
// unmapped code. Tables are immutable package-level maps loaded once.
package rules

// Canonical ability codes
const (
	AbilityStrength     = "str"
	AbilityDexterity    = "dex"
	AbilityConstitution = "con"
	AbilityIntelligence = "int"
	AbilityWisdom       = "wis"
	AbilityCharisma     = "cha"
)

var abilities = map[int]string{
	1: AbilityStrength,
	2: AbilityDexterity,
	3: AbilityConstitution,
	4: AbilityIntelligence,
	5: AbilityWisdom,
	6: AbilityCharisma,
}

// Ability maps a provider stat id to its canonical code.
// Unknown ids default to strength.
func Ability(id int) string {
	if a, ok := abilities[id]; ok {
		return a
	}
	return AbilityStrength
}

var damageTypes = map[int]string{
	1:  "acid",
	2:  "bludgeoning",
	3:  "cold",
	4:  "fire",
	5:  "force",
	6:  "lightning",
	7:  "necrotic",
	8:  "piercing",
	9:  "poison",
	10: "psychic",
	11: "radiant",
	12: "slashing",
	13: "thunder",
}

// DamageType maps a provider damage type id to its canonical code.
// Unknown ids default to bludgeoning.
func DamageType(id int) string {
	if d, ok := damageTypes[id]; ok {
		return d
	}
	return "bludgeoning"
}

var conditions = map[int]string{
	1:  "blinded",
	2:  "charmed",
	3:  "deafened",
	4:  "exhaustion", // stacking tiers, still one condition code
	5:  "frightened",
	6:  "grappled",
	7:  "incapacitated",
	8:  "invisible",
	9:  "paralyzed",
	10: "petrified",
	11: "poisoned",
	12: "prone",
	13: "restrained",
	14: "stunned",
	15: "unconscious",
}

// Condition maps a provider condition id to its canonical code.
// Unknown ids default to blinded.
func Condition(id int) string {
	if c, ok := conditions[id]; ok {
		return c
	}
	return "blinded"
}
