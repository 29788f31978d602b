package translators_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/vtt-importer/internal/entities/source"
	"github.com/KirkDiggler/vtt-importer/internal/errors"
)

func adultRedDragon() *source.Monster {
	return &source.Monster{
		ID:                17,
		Name:              "Adult Red Dragon",
		SizeID:            6,
		AlignmentID:       9,
		TypeID:            6,
		ChallengeRatingID: 21,
		ArmorClass:        19,
		AverageHitPoints:  256,
		HitPointDice:      &source.DamagePart{DiceCount: 19, DiceValue: 12, FixedValue: 133},
		Movements: []source.Movement{
			{MovementID: 1, Speed: 40},
			{MovementID: 3, Speed: 40},
			{MovementID: 4, Speed: 80},
		},
		Stats: []source.Stat{
			{StatID: 1, Value: intPtr(27)},
			{StatID: 2, Value: intPtr(10)},
			{StatID: 3, Value: intPtr(25)},
			{StatID: 4, Value: intPtr(16)},
			{StatID: 5, Value: intPtr(13)},
			{StatID: 6, Value: intPtr(21)},
		},
		SavingThrows: []source.SavingThrow{
			{StatID: 2}, {StatID: 3}, {StatID: 5}, {StatID: 6},
		},
		Skills: []source.SkillValue{
			{SkillID: 14, Value: 13},
			{SkillID: 5, Value: 6},
		},
		DamageImmunityIDs:    []int{4},
		ConditionImmunityIDs: []int{4},
		LanguageNotes:        "Common, Draconic",
		SpecialTraitsDescription: "<p><strong>Legendary Resistance.</strong> If the dragon fails a saving throw, it can choose to succeed instead.</p>",
		ActionsDescription:       "<p><strong>Fire Breath.</strong> The dragon exhales fire in a 60-foot cone.</p>",
		SourceID: 5,
	}
}

func TestMonsterTranslation(t *testing.T) {
	tr := newTranslator(t)

	monster, err := tr.Monster(adultRedDragon())
	require.NoError(t, err)

	assert.Equal(t, "monster_17", monster.ID)
	assert.Equal(t, "Adult Red Dragon", monster.Name)
	assert.Equal(t, "huge", monster.Size)
	assert.Equal(t, "ce", monster.Alignment)
	assert.Equal(t, "dragon", monster.CreatureType)
	assert.Equal(t, float64(17), monster.ChallengeRating)
	assert.Equal(t, 19, monster.ArmorClass)
	assert.Equal(t, 256, monster.HitPoints)
	assert.Equal(t, "19d12 + 133", monster.HitPointDice)
	assert.Equal(t, "Common, Draconic", monster.Languages)
	assert.Equal(t, "SCAG", monster.Source)

	assert.Equal(t, map[string]int{"walk": 40, "climb": 40, "fly": 80}, monster.Speed)

	assert.Equal(t, map[string]int{
		"str": 27, "dex": 10, "con": 25, "int": 16, "wis": 13, "cha": 21,
	}, monster.Abilities)

	assert.Equal(t, []string{"dex", "con", "wis", "cha"}, monster.SavingThrows)
	assert.Equal(t, map[string]int{"perception": 13, "stealth": 6}, monster.Skills)

	assert.Equal(t, []string{"fire"}, monster.Immunities)
	assert.Empty(t, monster.Resistances)
	assert.Empty(t, monster.Vulnerabilities)
	assert.Equal(t, []string{"frightened"}, monster.ConditionImmunities)

	assert.Contains(t, monster.Description, "Legendary Resistance")
	assert.Contains(t, monster.Description, "Fire Breath")
}

func TestMonsterTotalityWithBareRecord(t *testing.T) {
	tr := newTranslator(t)

	monster, err := tr.Monster(&source.Monster{ID: 9, Name: "Blob"})
	require.NoError(t, err)

	assert.Equal(t, "med", monster.Size)
	assert.Equal(t, "unaligned", monster.Alignment)
	assert.Equal(t, "humanoid", monster.CreatureType)
	assert.Zero(t, monster.ChallengeRating)
	assert.Empty(t, monster.HitPointDice)
	assert.Empty(t, monster.Speed)

	// the ability block is always complete
	for _, code := range []string{"str", "dex", "con", "int", "wis", "cha"} {
		assert.Equal(t, 10, monster.Abilities[code], code)
	}
}

func TestMonsterNilStatValueDefaults(t *testing.T) {
	tr := newTranslator(t)

	src := adultRedDragon()
	src.Stats[0].Value = nil

	monster, err := tr.Monster(src)
	require.NoError(t, err)
	assert.Equal(t, 10, monster.Abilities["str"])
	assert.Equal(t, 25, monster.Abilities["con"])
}

func TestMonsterFractionalChallengeRating(t *testing.T) {
	tr := newTranslator(t)

	src := adultRedDragon()
	src.ChallengeRatingID = 2

	monster, err := tr.Monster(src)
	require.NoError(t, err)
	assert.Equal(t, 0.125, monster.ChallengeRating)
}

func TestMonsterMissingIdentity(t *testing.T) {
	tr := newTranslator(t)

	_, err := tr.Monster(&source.Monster{ID: 3})
	assert.True(t, errors.IsMissingDefinition(err))

	_, err = tr.Monster(nil)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestMonsterTranslationIsDeterministic(t *testing.T) {
	tr := newTranslator(t)

	first, err := tr.Monster(adultRedDragon())
	require.NoError(t, err)
	second, err := tr.Monster(adultRedDragon())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
