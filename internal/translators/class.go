package translators

import (
	"sort"

	"github.com/KirkDiggler/vtt-importer/internal/entities/source"
	"github.com/KirkDiggler/vtt-importer/internal/entities/vtt"
	"github.com/KirkDiggler/vtt-importer/internal/errors"
	"github.com/KirkDiggler/vtt-importer/internal/rules"
)

// Class translates a provider class record into a normalized character
// class. markupFeatures, when present, comes from the class page's
// feature table; structured feature data wins on conflict.
func (t *Translator) Class(src *source.Class, markupFeatures []vtt.Feature) (*vtt.CharacterClass, error) {
	if src == nil {
		return nil, errors.InvalidArgument("class record is required")
	}
	if err := requireIdentity(vtt.TypeClass, src.ID, src.Name); err != nil {
		return nil, err
	}

	class := &vtt.CharacterClass{
		Header: vtt.Header{
			ID:          entityID(vtt.TypeClass, src.ID),
			Name:        src.Name,
			Description: src.Description,
			Img:         src.PortraitURL,
			Source:      rules.SourceBook(src.SourceID),
			Provenance:  t.provenance(src.ID),
		},
		HitDice:  src.HitDice,
		Features: mergeFeatures(src.Features, markupFeatures),
		Mechanics: vtt.Mechanics{
			Activation: vtt.Activation{Type: "special", Cost: 1},
			Range:      vtt.Range{Units: "self"},
			Duration:   vtt.Duration{Units: "perm"},
			Target:     vtt.Target{Value: 1, Type: "self"},
		},
	}

	if src.HitDice == 0 {
		fallback(vtt.TypeClass, src.ID, "hitDice")
	}

	if src.PrimaryAbilityID != nil {
		class.PrimaryAbility = rules.Ability(*src.PrimaryAbilityID)
	} else {
		fallback(vtt.TypeClass, src.ID, "primaryAbilityId")
		class.PrimaryAbility = rules.Ability(0)
	}

	if src.SpellcastingAbilityID != nil {
		class.SpellcastingAbility = rules.Ability(*src.SpellcastingAbilityID)
	}

	return class, nil
}

// mergeFeatures folds markup-derived features into the structured
// feature list. Both key on (name, level); the structured record is
// authoritative when both describe the same feature.
func mergeFeatures(structured []source.ClassFeature, fromMarkup []vtt.Feature) []vtt.Feature {
	type key struct {
		name  string
		level int
	}

	merged := make([]vtt.Feature, 0, len(structured)+len(fromMarkup))
	seen := make(map[key]struct{})

	for _, f := range structured {
		level := f.RequiredLevel
		if level < 1 {
			level = 1
		}
		merged = append(merged, vtt.Feature{
			Name:          f.Name,
			Description:   f.Description,
			RequiredLevel: level,
		})
		seen[key{name: f.Name, level: level}] = struct{}{}
	}

	for _, f := range fromMarkup {
		if _, dup := seen[key{name: f.Name, level: f.RequiredLevel}]; dup {
			continue
		}
		merged = append(merged, f)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].RequiredLevel < merged[j].RequiredLevel
	})
	return merged
}
