package rules

// The provider's size scale starts at 2 (tiny) and runs to 7
// (gargantuan); id 1 is unused historically.
var sizes = map[int]string{
	2: "tiny",
	3: "sm",
	4: "med",
	5: "lg",
	6: "huge",
	7: "grg",
}

// Size maps a provider size id to its canonical code.
// Unknown ids default to medium.
func Size(id int) string {
	if s, ok := sizes[id]; ok {
		return s
	}
	return "med"
}

var alignments = map[int]string{
	1:  "lg",
	2:  "ng",
	3:  "cg",
	4:  "ln",
	5:  "n",
	6:  "cn",
	7:  "le",
	8:  "ne",
	9:  "ce",
	10: "unaligned",
}

// Alignment maps a provider alignment id to its canonical code.
// Unknown ids default to unaligned.
func Alignment(id int) string {
	if a, ok := alignments[id]; ok {
		return a
	}
	return "unaligned"
}

// The provider's creature type table has gaps (ids 5 and 12 were
// retired); the highest live id is 16.
var creatureTypes = map[int]string{
	1:  "aberration",
	2:  "beast",
	3:  "celestial",
	4:  "construct",
	6:  "dragon",
	7:  "elemental",
	8:  "fey",
	9:  "fiend",
	10: "giant",
	11: "humanoid",
	13: "monstrosity",
	14: "ooze",
	15: "plant",
	16: "undead",
}

// CreatureType maps a provider monster type id to its canonical code.
// Unknown ids default to humanoid.
func CreatureType(id int) string {
	if t, ok := creatureTypes[id]; ok {
		return t
	}
	return "humanoid"
}

// ChallengeRating maps a provider CR id to its numeric challenge
// rating on the fractional scale 0, 1/8, 1/4, 1/2, 1..30.
// Unknown ids default to 0.
func ChallengeRating(id int) float64 {
	switch id {
	case 1:
		return 0
	case 2:
		return 0.125
	case 3:
		return 0.25
	case 4:
		return 0.5
	}
	if id >= 5 && id <= 34 {
		return float64(id - 4)
	}
	return 0
}

var movements = map[int]string{
	1: "walk",
	2: "burrow",
	3: "climb",
	4: "fly",
	5: "swim",
}

// Movement maps a provider movement id to its canonical mode.
// Unknown ids default to walk.
func Movement(id int) string {
	if m, ok := movements[id]; ok {
		return m
	}
	return "walk"
}
