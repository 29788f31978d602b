package rules

// Skill pairs a canonical skill code with its associated ability
type Skill struct {
	Code    string
	Ability string
}

// Provider skill ids are grouped by governing ability, str first.
var skills = map[int]Skill{
	2:  {Code: "athletics", Ability: AbilityStrength},
	3:  {Code: "acrobatics", Ability: AbilityDexterity},
	4:  {Code: "sleight-of-hand", Ability: AbilityDexterity},
	5:  {Code: "stealth", Ability: AbilityDexterity},
	6:  {Code: "arcana", Ability: AbilityIntelligence},
	7:  {Code: "history", Ability: AbilityIntelligence},
	8:  {Code: "investigation", Ability: AbilityIntelligence},
	9:  {Code: "nature", Ability: AbilityIntelligence},
	10: {Code: "religion", Ability: AbilityIntelligence},
	11: {Code: "animal-handling", Ability: AbilityWisdom},
	12: {Code: "insight", Ability: AbilityWisdom},
	13: {Code: "medicine", Ability: AbilityWisdom},
	14: {Code: "perception", Ability: AbilityWisdom},
	15: {Code: "survival", Ability: AbilityWisdom},
	16: {Code: "deception", Ability: AbilityCharisma},
	17: {Code: "intimidation", Ability: AbilityCharisma},
	18: {Code: "performance", Ability: AbilityCharisma},
	19: {Code: "persuasion", Ability: AbilityCharisma},
}

// SkillByID maps a provider skill id to its canonical skill.
// Unknown ids default to athletics.
func SkillByID(id int) Skill {
	if s, ok := skills[id]; ok {
		return s
	}
	return Skill{Code: "athletics", Ability: AbilityStrength}
}
