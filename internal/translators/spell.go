package translators

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/vtt-importer/internal/entities/source"
	"github.com/KirkDiggler/vtt-importer/internal/entities/vtt"
	"github.com/KirkDiggler/vtt-importer/internal/errors"
	"github.com/KirkDiggler/vtt-importer/internal/rules"
)

// Component ids in the provider's component list
const (
	componentVerbal   = 1
	componentSomatic  = 2
	componentMaterial = 3
)

// Spell translates a provider spell record into a normalized spell
func (t *Translator) Spell(src *source.Spell) (*vtt.Spell, error) {
	if src == nil {
		return nil, errors.InvalidArgument("spell record is required")
	}
	if err := requireIdentity(vtt.TypeSpell, src.ID, src.Name); err != nil {
		return nil, err
	}

	spell := &vtt.Spell{
		Header: vtt.Header{
			ID:          entityID(vtt.TypeSpell, src.ID),
			Name:        src.Name,
			Description: assembleDescription(src.Description, src.HigherLevelDescription),
			Img:         src.IconURL,
			Source:      rules.SourceBook(src.SourceID),
			Provenance:  t.provenance(src.ID),
		},
		Level:         src.Level,
		School:        rules.SpellSchool(src.SchoolID),
		Ritual:        src.Ritual,
		Concentration: src.Concentration,
	}

	for _, id := range src.ComponentIDs {
		switch id {
		case componentVerbal:
			spell.Verbal = true
		case componentSomatic:
			spell.Somatic = true
		case componentMaterial:
			spell.Material = true
		}
	}
	if spell.Material {
		spell.MaterialText = src.ComponentsDescription
	}

	spell.Mechanics = t.spellMechanics(src)
	return spell, nil
}

func (t *Translator) spellMechanics(src *source.Spell) vtt.Mechanics {
	mech := vtt.Mechanics{}

	if src.Activation != nil {
		mech.Activation = vtt.Activation{
			Type: rules.ActivationType(src.Activation.ActivationType),
			Cost: max(src.Activation.ActivationTime, 1),
		}
	} else {
		fallback(vtt.TypeSpell, src.ID, "activation")
		mech.Activation = vtt.Activation{Type: "action", Cost: 1}
	}

	mech.Range, mech.Target = spellRangeAndTarget(src)
	mech.Duration = spellDuration(src)

	if src.RequiresAttackRoll || (src.AttackTypeID != nil && *src.AttackTypeID > 0) {
		mech.AttackRoll = true
		mech.AttackKind = "spell"
		if src.AttackTypeID != nil {
			mech.AttackType = rules.AttackType(*src.AttackTypeID)
		} else {
			mech.AttackType = "ranged"
		}
	}

	if src.RequiresSavingThrow || src.SaveDcAbilityID != nil {
		mech.SaveRequired = true
		if src.SaveDcAbilityID != nil {
			mech.SaveAbility = rules.Ability(*src.SaveDcAbilityID)
		}
	}

	for _, part := range src.Damage {
		f := diceFormula(part.DiceCount, part.DiceValue, part.FixedValue)
		if f == "" {
			continue
		}
		mech.Damage = append(mech.Damage, vtt.DamagePart{
			Formula: f,
			Type:    rules.DamageType(part.DamageTypeID),
		})
	}

	if src.Healing != nil {
		mech.HealingFlag = true
		mech.HealingFormula = diceFormula(src.Healing.DiceCount, src.Healing.DiceValue, src.Healing.FixedValue)
	}

	if src.HigherLevelDice != nil {
		mech.ScalingFormula = diceFormula(src.HigherLevelDice.DiceCount, src.HigherLevelDice.DiceValue, src.HigherLevelDice.FixedValue)
	}
	mech.ScalingText = src.HigherLevelDescription

	return mech
}

func spellRangeAndTarget(src *source.Spell) (vtt.Range, vtt.Target) {
	rng := vtt.Range{Units: "ft"}
	target := vtt.Target{Value: 1, Type: "creature"}

	if src.Range == nil {
		fallback(vtt.TypeSpell, src.ID, "range")
		rng.Units = "self"
		return rng, target
	}

	switch strings.ToLower(src.Range.Origin) {
	case "self":
		rng.Units = "self"
	case "touch":
		rng.Units = "touch"
	case "sight", "special", "unlimited":
		rng.Units = "spec"
	default:
		rng.Value = src.Range.RangeValue
	}

	if src.Range.AOETypeID != nil {
		target.Type = rules.AOEType(*src.Range.AOETypeID)
		target.Value = 0
		if src.Range.AOEValue != nil {
			target.Value = *src.Range.AOEValue
		}
	}

	return rng, target
}

func spellDuration(src *source.Spell) vtt.Duration {
	if src.Duration == nil {
		fallback(vtt.TypeSpell, src.ID, "duration")
		return vtt.Duration{Units: "inst"}
	}
	return vtt.Duration{
		Value: src.Duration.DurationInterval,
		Units: rules.DurationUnit(src.Duration.DurationUnit),
	}
}

// assembleDescription appends the synthesized higher-level appendix to
// the base description when the record carries one
func assembleDescription(base, higherLevels string) string {
	if strings.TrimSpace(higherLevels) == "" {
		return base
	}
	return fmt.Sprintf("%s\n<h4>At Higher Levels</h4>\n%s", base, higherLevels)
}
