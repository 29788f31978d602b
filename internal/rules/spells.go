package rules

var spellSchools = map[int]string{
	1: "abjuration",
	2: "conjuration",
	3: "divination",
	4: "enchantment",
	5: "evocation",
	6: "illusion",
	7: "necromancy",
	8: "transmutation",
}

// SpellSchool maps a provider school id to its canonical code.
// Unknown ids default to evocation.
func SpellSchool(id int) string {
	if s, ok := spellSchools[id]; ok {
		return s
	}
	return "evocation"
}

var activationTypes = map[int]string{
	1: "action",
	3: "bonus",
	4: "reaction",
	6: "minute",
	7: "hour",
	8: "special",
}

// ActivationType maps a provider activation type id to its canonical
// code. Unknown ids default to action.
func ActivationType(id int) string {
	if a, ok := activationTypes[id]; ok {
		return a
	}
	return "action"
}

var aoeTypes = map[int]string{
	1: "cone",
	2: "cube",
	3: "cylinder",
	4: "line",
	5: "sphere",
	9: "square",
}

// AOEType maps a provider area-of-effect type id to its canonical
// shape. Unknown ids default to sphere.
func AOEType(id int) string {
	if a, ok := aoeTypes[id]; ok {
		return a
	}
	return "sphere"
}

// Attack type ids
const (
	AttackTypeMelee  = 1
	AttackTypeRanged = 2
)

// AttackType maps a provider attack type id to melee or ranged.
// Unknown ids default to melee.
func AttackType(id int) string {
	if id == AttackTypeRanged {
		return "ranged"
	}
	return "melee"
}

var durationUnits = map[string]string{
	"instantaneous": "inst",
	"round":         "round",
	"minute":        "minute",
	"hour":          "hour",
	"day":           "day",
	"permanent":     "perm",
	"special":       "spec",
	"time":          "spec",
	"until dispelled": "perm",
}

// DurationUnit maps the provider's duration unit word (one of its few
// string-typed fields) to the canonical unit. Unknown words default to
// inst.
func DurationUnit(unit string) string {
	if d, ok := durationUnits[normalize(unit)]; ok {
		return d
	}
	return "inst"
}
