package translators_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/vtt-importer/internal/activities"
	"github.com/KirkDiggler/vtt-importer/internal/entities/source"
	"github.com/KirkDiggler/vtt-importer/internal/entities/vtt"
	"github.com/KirkDiggler/vtt-importer/internal/errors"
	"github.com/KirkDiggler/vtt-importer/internal/pkg/clock"
	"github.com/KirkDiggler/vtt-importer/internal/translators"
)

func intPtr(v int) *int { return &v }

func newTranslator(t *testing.T) *translators.Translator {
	t.Helper()
	tr, err := translators.New(&translators.Config{
		Clock: clock.NewFakeAt(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)),
	})
	require.NoError(t, err)
	return tr
}

func fireball() *source.Spell {
	return &source.Spell{
		ID:                     2023,
		Name:                   "Fireball",
		Level:                  3,
		SchoolID:               5,
		Description:            "<p>A bright streak flashes to a point you choose.</p>",
		HigherLevelDescription: "The damage increases by 1d6 for each slot level above 3rd.",
		Activation:             &source.Activation{ActivationType: 1, ActivationTime: 1},
		Range:                  &source.SpellRange{Origin: "Ranged", RangeValue: 150, AOETypeID: intPtr(5), AOEValue: intPtr(20)},
		Duration:               &source.Duration{DurationInterval: 0, DurationUnit: "Instantaneous"},
		ComponentIDs:           []int{1, 2, 3},
		ComponentsDescription:  "a tiny ball of bat guano and sulfur",
		RequiresSavingThrow:    true,
		SaveDcAbilityID:        intPtr(2),
		Damage:                 []source.DamagePart{{DiceCount: 8, DiceValue: 6, DamageTypeID: 4}},
		HigherLevelDice:        &source.DamagePart{DiceCount: 1, DiceValue: 6},
		SourceID:               2,
		IconURL:                "https://cdn.example.com/fireball.png",
	}
}

func TestSpellTranslation(t *testing.T) {
	tr := newTranslator(t)

	spell, err := tr.Spell(fireball())
	require.NoError(t, err)

	assert.Equal(t, "spell_2023", spell.ID)
	assert.Equal(t, "Fireball", spell.Name)
	assert.Equal(t, 3, spell.Level)
	assert.Equal(t, "evocation", spell.School)
	assert.Equal(t, "PHB", spell.Source)
	assert.Contains(t, spell.Description, "bright streak")
	assert.Contains(t, spell.Description, "At Higher Levels")
	assert.Contains(t, spell.Description, "1d6 for each slot level")

	assert.True(t, spell.Verbal)
	assert.True(t, spell.Somatic)
	assert.True(t, spell.Material)
	assert.Equal(t, "a tiny ball of bat guano and sulfur", spell.MaterialText)
	assert.False(t, spell.Ritual)
	assert.False(t, spell.Concentration)

	mech := spell.Mechanics
	assert.Equal(t, vtt.Activation{Type: "action", Cost: 1}, mech.Activation)
	assert.Equal(t, vtt.Range{Value: 150, Units: "ft"}, mech.Range)
	assert.Equal(t, vtt.Duration{Units: "inst"}, mech.Duration)
	assert.Equal(t, vtt.Target{Value: 20, Type: "sphere"}, mech.Target)
	assert.True(t, mech.SaveRequired)
	assert.Equal(t, "dex", mech.SaveAbility)
	require.Len(t, mech.Damage, 1)
	assert.Equal(t, "8d6", mech.Damage[0].Formula)
	assert.Equal(t, "fire", mech.Damage[0].Type)
	assert.Equal(t, "1d6", mech.ScalingFormula)

	prov := spell.Provenance
	assert.Equal(t, 2023, prov.SourceID)
	assert.Equal(t, translators.ImportMethodManual, prov.ImportMethod)
	assert.False(t, prov.ImportedAt.IsZero())
}

func TestSpellSaveClassification(t *testing.T) {
	// save spell with saveDcAbilityId=2 and 3d6 of damage type id 3
	tr := newTranslator(t)

	src := &source.Spell{
		ID:                  77,
		Name:                "Frost Lance",
		Description:         "<p>A lance of ice.</p>",
		RequiresSavingThrow: true,
		SaveDcAbilityID:     intPtr(2),
		Damage:              []source.DamagePart{{DiceCount: 3, DiceValue: 6, DamageTypeID: 3}},
	}

	spell, err := tr.Spell(src)
	require.NoError(t, err)

	acts := activities.Classify(spell)
	require.Len(t, acts, 1)

	save := acts[vtt.ActivitySave]
	require.NotNil(t, save)
	assert.Equal(t, "dex", save.Save.Ability)
	assert.Equal(t, vtt.OnSaveHalf, save.Save.OnSave)
	require.Len(t, save.Damage, 1)
	assert.Equal(t, "3d6", save.Damage[0].Formula)
	assert.Equal(t, "cold", save.Damage[0].Type)
}

func TestSpellIdempotence(t *testing.T) {
	tr := newTranslator(t)

	first, err := tr.Spell(fireball())
	require.NoError(t, err)
	second, err := tr.Spell(fireball())
	require.NoError(t, err)

	// the fake clock is frozen, so even the timestamp matches
	assert.Equal(t, first, second)
}

func TestSpellTotalityWithBareRecord(t *testing.T) {
	tr := newTranslator(t)

	spell, err := tr.Spell(&source.Spell{ID: 1, Name: "Blank"})
	require.NoError(t, err)

	assert.Equal(t, vtt.Activation{Type: "action", Cost: 1}, spell.Mechanics.Activation)
	assert.Equal(t, "self", spell.Mechanics.Range.Units)
	assert.Equal(t, "inst", spell.Mechanics.Duration.Units)
	assert.Empty(t, spell.Mechanics.Damage)
	assert.False(t, spell.Verbal)
}

func TestSpellMissingIdentity(t *testing.T) {
	tr := newTranslator(t)

	_, err := tr.Spell(&source.Spell{Name: "No ID"})
	require.Error(t, err)
	assert.True(t, errors.IsMissingDefinition(err))

	_, err = tr.Spell(&source.Spell{ID: 9})
	require.Error(t, err)
	assert.True(t, errors.IsMissingDefinition(err))
}

func TestSpellSelfAndTouchRanges(t *testing.T) {
	tr := newTranslator(t)

	src := fireball()
	src.Range = &source.SpellRange{Origin: "Self"}
	spell, err := tr.Spell(src)
	require.NoError(t, err)
	assert.Equal(t, "self", spell.Mechanics.Range.Units)

	src.Range = &source.SpellRange{Origin: "Touch"}
	spell, err = tr.Spell(src)
	require.NoError(t, err)
	assert.Equal(t, "touch", spell.Mechanics.Range.Units)
}

func TestSpellAttackTypeMapping(t *testing.T) {
	tr := newTranslator(t)

	src := &source.Spell{
		ID:                 5,
		Name:               "Fire Bolt",
		RequiresAttackRoll: true,
		AttackTypeID:       intPtr(2),
	}

	spell, err := tr.Spell(src)
	require.NoError(t, err)
	assert.True(t, spell.Mechanics.AttackRoll)
	assert.Equal(t, "ranged", spell.Mechanics.AttackType)
	assert.Equal(t, "spell", spell.Mechanics.AttackKind)
}

func TestSpellHealing(t *testing.T) {
	tr := newTranslator(t)

	src := &source.Spell{
		ID:      11,
		Name:    "Cure Wounds",
		Healing: &source.DamagePart{DiceCount: 1, DiceValue: 8, FixedValue: 3},
	}

	spell, err := tr.Spell(src)
	require.NoError(t, err)
	assert.True(t, spell.Mechanics.HealingFlag)
	assert.Equal(t, "1d8 + 3", spell.Mechanics.HealingFormula)
}
