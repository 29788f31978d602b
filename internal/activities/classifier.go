// Package activities derives declarative activity sub-records from a
// translated entity's mechanical payload.
//
// Classification is an ordered list of independent (predicate, builder)
// rules, one per effect kind. An entity may match several; an entity
// that matches none gets a bare utility activity, so every classified
// entity carries at least one.
package activities

import (
	"github.com/KirkDiggler/vtt-importer/internal/entities/vtt"
	"github.com/KirkDiggler/vtt-importer/internal/rules"
)

type input struct {
	name        string
	description string
	mech        *vtt.Mechanics
}

type rule struct {
	slug    string
	applies func(*input) bool
	build   func(*input) *vtt.Activity
}

// classifierRules run in this fixed order; utility is not a rule but
// the fallback when nothing triggered.
var classifierRules = []rule{
	{slug: vtt.ActivityAttack, applies: attackApplies, build: buildAttack},
	{slug: vtt.ActivitySave, applies: saveApplies, build: buildSave},
	{slug: vtt.ActivityHeal, applies: healApplies, build: buildHeal},
}

// Classify derives the activity map for a translated entity
func Classify(e vtt.Entity) map[string]*vtt.Activity {
	in := &input{
		name:        e.GetName(),
		description: e.GetDescription(),
		mech:        e.Mech(),
	}

	out := make(map[string]*vtt.Activity)
	for _, r := range classifierRules {
		if r.applies(in) {
			out[r.slug] = r.build(in)
		}
	}

	if len(out) == 0 {
		out[vtt.ActivityUtility] = buildUtility(in)
	}
	return out
}

// ClassifyAndAttach classifies e and stores the result on it
func ClassifyAndAttach(e vtt.Entity) {
	e.SetActivities(Classify(e))
}

func base(in *input, kind string) *vtt.Activity {
	return &vtt.Activity{
		Type:     kind,
		Name:     in.name,
		Range:    in.mech.Range,
		Duration: in.mech.Duration,
		Target:   in.mech.Target,
	}
}

func attackApplies(in *input) bool {
	return in.mech.AttackRoll || in.mech.AttackType != ""
}

func buildAttack(in *input) *vtt.Activity {
	a := base(in, vtt.ActivityAttack)

	attackType := in.mech.AttackType
	if attackType == "" {
		attackType = "melee"
	}
	classification := in.mech.AttackKind
	if classification == "" {
		classification = "weapon"
	}

	a.Attack = &vtt.AttackDetails{
		Type:           attackType,
		Classification: classification,
	}
	a.Damage = damageParts(in)
	a.Scaling = scalingFormula(in)
	return a
}

func saveApplies(in *input) bool {
	return in.mech.SaveRequired || in.mech.SaveAbility != ""
}

func buildSave(in *input) *vtt.Activity {
	a := base(in, vtt.ActivitySave)

	ability := in.mech.SaveAbility
	if ability == "" {
		ability = rules.Ability(0)
	}

	damage := damageParts(in)
	onSave := vtt.OnSaveNone
	if len(damage) > 0 {
		onSave = vtt.OnSaveHalf
	}

	a.Save = &vtt.SaveDetails{
		Ability: ability,
		OnSave:  onSave,
	}
	a.Damage = damage
	a.Scaling = scalingFormula(in)
	return a
}

func healApplies(in *input) bool {
	return in.mech.HealingFlag || in.mech.HealingFormula != ""
}

func buildHeal(in *input) *vtt.Activity {
	a := base(in, vtt.ActivityHeal)

	f := in.mech.HealingFormula
	if f == "" {
		f = firstDice(in.description)
	}
	a.Healing = &vtt.HealingDetails{Formula: f}
	a.Scaling = scalingFormula(in)
	return a
}

func buildUtility(in *input) *vtt.Activity {
	return base(in, vtt.ActivityUtility)
}

// damageParts prefers the translator's explicit parts and falls back
// to the first "<dice> <word> damage" phrase in the description.
func damageParts(in *input) []vtt.DamagePart {
	if len(in.mech.Damage) > 0 {
		return in.mech.Damage
	}

	f, word := firstDamagePhrase(in.description)
	if f == "" {
		return nil
	}
	return []vtt.DamagePart{{Formula: f, Type: word}}
}

// scalingFormula prefers the explicit higher-level dice field and
// falls back to the first dice pattern in the higher-level text.
func scalingFormula(in *input) string {
	if in.mech.ScalingFormula != "" {
		return in.mech.ScalingFormula
	}
	return firstDice(in.mech.ScalingText)
}
