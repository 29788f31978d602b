package translators

import (
	"github.com/KirkDiggler/vtt-importer/internal/entities/source"
	"github.com/KirkDiggler/vtt-importer/internal/entities/vtt"
	"github.com/KirkDiggler/vtt-importer/internal/errors"
	"github.com/KirkDiggler/vtt-importer/internal/rules"
)

// Item translates a provider equipment record into a normalized item
func (t *Translator) Item(src *source.Item) (*vtt.Item, error) {
	if src == nil {
		return nil, errors.InvalidArgument("item record is required")
	}
	if err := requireIdentity(vtt.TypeItem, src.ID, src.Name); err != nil {
		return nil, err
	}

	item := &vtt.Item{
		Header: vtt.Header{
			ID:          entityID(vtt.TypeItem, src.ID),
			Name:        src.Name,
			Description: src.Description,
			Img:         src.IconURL,
			Source:      rules.SourceBook(src.SourceID),
			Provenance:  t.provenance(src.ID),
		},
		Magic:      src.Magic,
		Attunement: src.RequiresAttunement,
		Weight:     src.Weight,
		Properties: make([]string, 0, len(src.PropertyIDs)),
	}

	if src.Cost != nil {
		item.Price = *src.Cost
	} else {
		fallback(vtt.TypeItem, src.ID, "cost")
	}

	for _, id := range src.PropertyIDs {
		if code := rules.WeaponProperty(id); code != "" {
			item.Properties = append(item.Properties, code)
		}
	}

	if src.ArmorClass != nil {
		item.ArmorClass = *src.ArmorClass
		if src.ArmorTypeID != nil {
			item.ArmorType = rules.ArmorType(*src.ArmorTypeID)
		} else {
			fallback(vtt.TypeItem, src.ID, "armorTypeId")
			item.ArmorType = rules.ArmorType(0)
		}
	}

	item.Mechanics = itemMechanics(src)
	return item, nil
}

func itemMechanics(src *source.Item) vtt.Mechanics {
	mech := vtt.Mechanics{
		Activation: vtt.Activation{Type: "action", Cost: 1},
		Range:      vtt.Range{Value: 5, Units: "ft"},
		Duration:   vtt.Duration{Units: "inst"},
		Target:     vtt.Target{Value: 1, Type: "creature"},
	}

	// only weapons carry attack mechanics
	if src.Damage == nil && src.AttackTypeID == nil {
		return mech
	}

	mech.AttackRoll = true
	mech.AttackKind = "weapon"
	if src.AttackTypeID != nil {
		mech.AttackType = rules.AttackType(*src.AttackTypeID)
	} else {
		fallback(vtt.TypeItem, src.ID, "attackType")
		mech.AttackType = "melee"
	}

	if src.WeaponRange != nil {
		mech.Range = vtt.Range{
			Value: src.WeaponRange.Range,
			Long:  src.WeaponRange.LongRange,
			Units: "ft",
		}
	}

	if src.Damage != nil {
		f := diceFormula(src.Damage.DiceCount, src.Damage.DiceValue, src.Damage.FixedValue)
		if f != "" {
			mech.Damage = []vtt.DamagePart{{
				Formula: f,
				Type:    rules.DamageType(src.Damage.DamageTypeID),
			}}
		}
	}

	return mech
}
