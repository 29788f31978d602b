package rules

import "strings"

var weaponProperties = map[int]string{
	1:  "amm", // ammunition
	2:  "fin", // finesse
	3:  "hvy", // heavy
	4:  "lgt", // light
	5:  "lod", // loading
	6:  "rng", // range
	7:  "rch", // reach
	8:  "spc", // special
	9:  "thr", // thrown
	10: "two", // two-handed
	11: "ver", // versatile
}

// WeaponProperty maps a provider weapon property id to its canonical
// code. Unknown ids map to the empty string and should be dropped.
func WeaponProperty(id int) string {
	return weaponProperties[id]
}

var armorTypes = map[int]string{
	1: "light",
	2: "medium",
	3: "heavy",
	4: "shield",
}

// ArmorType maps a provider armor type id to its canonical code.
// Unknown ids default to light.
func ArmorType(id int) string {
	if a, ok := armorTypes[id]; ok {
		return a
	}
	return "light"
}

var sourceBooks = map[int]string{
	1:  "BR",
	2:  "PHB",
	3:  "MM",
	4:  "DMG",
	5:  "SCAG",
	6:  "CoS",
	7:  "HotDQ",
	8:  "LMoP",
	9:  "OotA",
	10: "PotA",
	11: "RoT",
	12: "SKT",
	13: "TTP",
	15: "TftYP",
	25: "XGE",
	27: "MTF",
	33: "TCE",
}

// SourceBook maps a provider source id to the book's short code.
// Unknown ids default to homebrew, which is what unrecognized content
// almost always is.
func SourceBook(id int) string {
	if s, ok := sourceBooks[id]; ok {
		return s
	}
	return "homebrew"
}

// normalize lowercases and trims a provider string field for table
// lookups.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
