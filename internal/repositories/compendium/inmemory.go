package compendium

import (
	"context"
	"fmt"
	"sync"

	"github.com/KirkDiggler/vtt-importer/internal/entities/vtt"
	"github.com/KirkDiggler/vtt-importer/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]vtt.Entity
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]vtt.Entity),
	}
}

func storeKey(entityType string, sourceID int) string {
	return fmt.Sprintf("%s:%d", entityType, sourceID)
}

// Upsert stores an entity, replacing any previous version
func (r *InMemoryRepository) Upsert(ctx context.Context, input *UpsertInput) (*UpsertOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Entity == nil {
		return nil, errors.InvalidArgument("entity is required")
	}

	key := storeKey(input.Entity.GetType(), input.Entity.GetSourceID())

	r.mu.Lock()
	defer r.mu.Unlock()

	_, existed := r.store[key]
	r.store[key] = input.Entity

	return &UpsertOutput{Created: !existed}, nil
}

// Get retrieves an entity by type and provider id
func (r *InMemoryRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Type == "" {
		return nil, errors.InvalidArgument("entity type is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	entity, exists := r.store[storeKey(input.Type, input.SourceID)]
	if !exists {
		return nil, errors.NotFoundf("%s %d not found", input.Type, input.SourceID)
	}

	return &GetOutput{Entity: entity}, nil
}

// List retrieves all stored entities of one type, ordered by entity ID
func (r *InMemoryRepository) List(ctx context.Context, input *ListInput) (*ListOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Type == "" {
		return nil, errors.InvalidArgument("entity type is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	entities := make([]vtt.Entity, 0)
	for _, e := range r.store {
		if e.GetType() == input.Type {
			entities = append(entities, e)
		}
	}
	sortEntities(entities)

	return &ListOutput{Entities: entities}, nil
}

// Delete removes an entity
func (r *InMemoryRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Type == "" {
		return nil, errors.InvalidArgument("entity type is required")
	}

	key := storeKey(input.Type, input.SourceID)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[key]; !exists {
		return nil, errors.NotFoundf("%s %d not found", input.Type, input.SourceID)
	}
	delete(r.store, key)

	return &DeleteOutput{Success: true}, nil
}
