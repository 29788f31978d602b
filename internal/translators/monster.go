package translators

import (
	"strings"

	"github.com/KirkDiggler/vtt-importer/internal/entities/source"
	"github.com/KirkDiggler/vtt-importer/internal/entities/vtt"
	"github.com/KirkDiggler/vtt-importer/internal/errors"
	"github.com/KirkDiggler/vtt-importer/internal/rules"
)

const defaultAbilityScore = 10

// Monster translates a provider monster record into a normalized monster
func (t *Translator) Monster(src *source.Monster) (*vtt.Monster, error) {
	if src == nil {
		return nil, errors.InvalidArgument("monster record is required")
	}
	if err := requireIdentity(vtt.TypeMonster, src.ID, src.Name); err != nil {
		return nil, err
	}

	monster := &vtt.Monster{
		Header: vtt.Header{
			ID:          entityID(vtt.TypeMonster, src.ID),
			Name:        src.Name,
			Description: monsterDescription(src),
			Img:         src.AvatarURL,
			Source:      rules.SourceBook(src.SourceID),
			Provenance:  t.provenance(src.ID),
		},
		Size:            rules.Size(src.SizeID),
		Alignment:       rules.Alignment(src.AlignmentID),
		CreatureType:    rules.CreatureType(src.TypeID),
		ChallengeRating: rules.ChallengeRating(src.ChallengeRatingID),
		ArmorClass:      src.ArmorClass,
		HitPoints:       src.AverageHitPoints,
		Languages:       src.LanguageNotes,
	}

	if src.HitPointDice != nil {
		monster.HitPointDice = diceFormula(src.HitPointDice.DiceCount, src.HitPointDice.DiceValue, src.HitPointDice.FixedValue)
	}

	monster.Speed = make(map[string]int, len(src.Movements))
	for _, m := range src.Movements {
		monster.Speed[rules.Movement(m.MovementID)] = m.Speed
	}

	monster.Abilities = monsterAbilities(src)

	monster.SavingThrows = make([]string, 0, len(src.SavingThrows))
	for _, st := range src.SavingThrows {
		monster.SavingThrows = append(monster.SavingThrows, rules.Ability(st.StatID))
	}

	monster.Skills = make(map[string]int, len(src.Skills))
	for _, sk := range src.Skills {
		monster.Skills[rules.SkillByID(sk.SkillID).Code] = sk.Value
	}

	monster.Resistances = damageCodes(src.DamageResistanceIDs)
	monster.Immunities = damageCodes(src.DamageImmunityIDs)
	monster.Vulnerabilities = damageCodes(src.DamageVulnerabilityIDs)

	monster.ConditionImmunities = make([]string, 0, len(src.ConditionImmunityIDs))
	for _, id := range src.ConditionImmunityIDs {
		monster.ConditionImmunities = append(monster.ConditionImmunities, rules.Condition(id))
	}

	monster.Mechanics = vtt.Mechanics{
		Activation: vtt.Activation{Type: "action", Cost: 1},
		Range:      vtt.Range{Value: 5, Units: "ft"},
		Duration:   vtt.Duration{Units: "inst"},
		Target:     vtt.Target{Value: 1, Type: "creature"},
	}

	return monster, nil
}

// monsterAbilities builds the full six-score block, defaulting absent
// scores to 10
func monsterAbilities(src *source.Monster) map[string]int {
	abilities := map[string]int{
		rules.AbilityStrength:     defaultAbilityScore,
		rules.AbilityDexterity:    defaultAbilityScore,
		rules.AbilityConstitution: defaultAbilityScore,
		rules.AbilityIntelligence: defaultAbilityScore,
		rules.AbilityWisdom:       defaultAbilityScore,
		rules.AbilityCharisma:     defaultAbilityScore,
	}
	for _, stat := range src.Stats {
		if stat.Value == nil {
			fallback(vtt.TypeMonster, src.ID, "stat value")
			continue
		}
		abilities[rules.Ability(stat.StatID)] = *stat.Value
	}
	return abilities
}

func damageCodes(ids []int) []string {
	codes := make([]string, 0, len(ids))
	for _, id := range ids {
		codes = append(codes, rules.DamageType(id))
	}
	return codes
}

// monsterDescription stitches the stat block narrative sections into
// one description in their canonical order
func monsterDescription(src *source.Monster) string {
	sections := make([]string, 0, 4)
	for _, s := range []string{
		src.SpecialTraitsDescription,
		src.ActionsDescription,
		src.ReactionsDescription,
		src.LegendaryActionsDescription,
	} {
		if strings.TrimSpace(s) != "" {
			sections = append(sections, s)
		}
	}
	return strings.Join(sections, "\n")
}
