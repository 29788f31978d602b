// Package importer implements the batch orchestrator that drives bulk
// translation and idempotent upsert into the compendium.
package importer

//go:generate mockgen -destination=mock/mock_service.go -package=importermock github.com/KirkDiggler/vtt-importer/internal/orchestrators/importer Service

import (
	"context"
	"log/slog"

	"golang.org/x/net/html"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/vtt-importer/internal/activities"
	"github.com/KirkDiggler/vtt-importer/internal/entities/source"
	"github.com/KirkDiggler/vtt-importer/internal/entities/vtt"
	"github.com/KirkDiggler/vtt-importer/internal/errors"
	"github.com/KirkDiggler/vtt-importer/internal/markup"
	"github.com/KirkDiggler/vtt-importer/internal/pkg/clock"
	"github.com/KirkDiggler/vtt-importer/internal/pkg/idgen"
	"github.com/KirkDiggler/vtt-importer/internal/repositories/compendium"
	"github.com/KirkDiggler/vtt-importer/internal/translators"
)

// DefaultConcurrency bounds parallel fetches when the config leaves
// Concurrency unset
const DefaultConcurrency = 4

// Service defines the interface for batch import operations
type Service interface {
	// TranslateAndUpsert imports a batch of provider records: fetch,
	// translate, classify, then insert or update in the compendium.
	// Item failures are collected in the output; the returned error is
	// reserved for batch-level failures (bad input, storage down,
	// cancellation).
	TranslateAndUpsert(ctx context.Context, input *TranslateAndUpsertInput) (*TranslateAndUpsertOutput, error)
}

// Config holds the dependencies for the import orchestrator
type Config struct {
	Fetcher     Fetcher
	Store       compendium.Repository
	Clock       clock.Clock
	IDGenerator idgen.Generator

	// Concurrency bounds parallel fetches; zero means DefaultConcurrency
	Concurrency int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Fetcher == nil {
		vb.RequiredField("Fetcher")
	}
	if c.Store == nil {
		vb.RequiredField("Store")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Concurrency < 0 {
		vb.InvalidField("Concurrency", "must not be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	fetcher     Fetcher
	store       compendium.Repository
	translator  *translators.Translator
	idGen       idgen.Generator
	concurrency int
}

// NewOrchestrator creates a new import orchestrator with the provided
// dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	translator, err := translators.New(&translators.Config{
		Clock:        cfg.Clock,
		ImportMethod: translators.ImportMethodBatch,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create translator")
	}

	concurrency := cfg.Concurrency
	if concurrency == 0 {
		concurrency = DefaultConcurrency
	}

	return &orchestrator{
		fetcher:     cfg.Fetcher,
		store:       cfg.Store,
		translator:  translator,
		idGen:       cfg.IDGenerator,
		concurrency: concurrency,
	}, nil
}

// fetched holds one raw record from the fetch phase. Exactly one of
// the payload fields matching the batch category is set on success.
type fetched struct {
	id  int
	err error

	spell    *source.Spell
	item     *source.Item
	class    *source.Class
	classDoc *html.Node
	monster  *source.Monster
}

// TranslateAndUpsert imports a batch of provider records
func (o *orchestrator) TranslateAndUpsert(ctx context.Context, input *TranslateAndUpsertInput) (*TranslateAndUpsertOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	switch input.Category {
	case vtt.TypeSpell, vtt.TypeItem, vtt.TypeClass, vtt.TypeMonster:
	default:
		return nil, errors.InvalidArgumentf("unknown category %q", input.Category)
	}

	batchID := o.idGen.Generate()
	log := slog.With("batch_id", batchID, "category", input.Category)
	log.Info("starting batch import", "items", len(input.SourceIDs))

	// The index of existing entities is built once and is read-only for
	// the rest of the run.
	index, err := o.buildIndex(ctx, input.Category)
	if err != nil {
		return nil, errors.Wrap(err, "failed to index existing entities")
	}

	results := o.fetchAll(ctx, input.Category, input.SourceIDs)

	out := &TranslateAndUpsertOutput{}
	for _, result := range results {
		if err := ctx.Err(); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeCanceled, "batch canceled")
		}

		if result.err != nil {
			o.recordFailure(log, out, result.id, result.err)
			continue
		}

		entity, err := o.translateAndClassify(input.Category, result)
		if err != nil {
			o.recordFailure(log, out, result.id, err)
			continue
		}

		if _, err := o.store.Upsert(ctx, &compendium.UpsertInput{Entity: entity}); err != nil {
			o.recordFailure(log, out, result.id, err)
			continue
		}

		if _, exists := index[entity.GetSourceID()]; exists {
			out.UpdatedCount++
		} else {
			out.CreatedCount++
		}
	}

	log.Info("batch import finished",
		"created", out.CreatedCount,
		"updated", out.UpdatedCount,
		"failed", len(out.Failures))

	return out, nil
}

// buildIndex loads the source ids already present for a category
func (o *orchestrator) buildIndex(ctx context.Context, category string) (map[int]struct{}, error) {
	existing, err := o.store.List(ctx, &compendium.ListInput{Type: category})
	if err != nil {
		return nil, err
	}

	index := make(map[int]struct{}, len(existing.Entities))
	for _, e := range existing.Entities {
		index[e.GetSourceID()] = struct{}{}
	}
	return index, nil
}

// fetchAll retrieves every record with bounded parallelism. Results
// come back slot for slot in input order; per-item errors are carried
// in the slot, never returned.
func (o *orchestrator) fetchAll(ctx context.Context, category string, ids []int) []fetched {
	results := make([]fetched, len(ids))

	g := new(errgroup.Group)
	g.SetLimit(o.concurrency)

	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			results[i] = o.fetchOne(ctx, category, id)
			return nil
		})
	}

	// Goroutines never return errors; Wait only synchronizes.
	_ = g.Wait()

	return results
}

func (o *orchestrator) fetchOne(ctx context.Context, category string, id int) fetched {
	result := fetched{id: id}

	switch category {
	case vtt.TypeSpell:
		result.spell, result.err = o.fetcher.SpellByID(ctx, id)
	case vtt.TypeItem:
		result.item, result.err = o.fetcher.ItemByID(ctx, id)
	case vtt.TypeClass:
		result.class, result.classDoc, result.err = o.fetcher.ClassByID(ctx, id)
	case vtt.TypeMonster:
		result.monster, result.err = o.fetcher.MonsterByID(ctx, id)
	}

	return result
}

func (o *orchestrator) translateAndClassify(category string, result fetched) (vtt.Entity, error) {
	var (
		entity vtt.Entity
		err    error
	)

	switch category {
	case vtt.TypeSpell:
		entity, err = o.translator.Spell(result.spell)
	case vtt.TypeItem:
		entity, err = o.translator.Item(result.item)
	case vtt.TypeClass:
		var features []vtt.Feature
		if result.classDoc != nil {
			features = markup.ParseFeatures(result.classDoc)
		}
		entity, err = o.translator.Class(result.class, features)
	case vtt.TypeMonster:
		entity, err = o.translator.Monster(result.monster)
	}
	if err != nil {
		return nil, err
	}

	activities.ClassifyAndAttach(entity)
	return entity, nil
}

func (o *orchestrator) recordFailure(log *slog.Logger, out *TranslateAndUpsertOutput, id int, err error) {
	log.Warn("item failed", "source_id", id, "error", err)
	out.Failures = append(out.Failures, ItemFailure{
		ID:      id,
		Message: errors.GetMessage(err),
	})
}
