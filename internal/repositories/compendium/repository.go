// Package compendium stores translated entities keyed by their
// provider identity so repeated imports update in place.
package compendium

//go:generate mockgen -destination=mock/mock_repository.go -package=compendiummock github.com/KirkDiggler/vtt-importer/internal/repositories/compendium Repository

import (
	"context"
	"sort"

	"github.com/KirkDiggler/vtt-importer/internal/entities/vtt"
)

// Repository defines the storage interface for the compendium
type Repository interface {
	// Upsert stores an entity, replacing any previous version with the
	// same identity
	Upsert(ctx context.Context, input *UpsertInput) (*UpsertOutput, error)

	// Get retrieves an entity by type and provider id
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// List retrieves all stored entities of one type
	List(ctx context.Context, input *ListInput) (*ListOutput, error)

	// Delete removes an entity
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)
}

// UpsertInput defines the request for storing an entity
type UpsertInput struct {
	Entity vtt.Entity
}

// UpsertOutput defines the response for storing an entity
type UpsertOutput struct {
	// Created is true when no previous version existed
	Created bool
}

// GetInput defines the request for retrieving an entity
type GetInput struct {
	Type     string
	SourceID int
}

// GetOutput defines the response for retrieving an entity
type GetOutput struct {
	Entity vtt.Entity
}

// ListInput defines the request for listing entities of one type
type ListInput struct {
	Type string
}

// ListOutput defines the response for listing entities
type ListOutput struct {
	Entities []vtt.Entity
}

// DeleteInput defines the request for deleting an entity
type DeleteInput struct {
	Type     string
	SourceID int
}

// DeleteOutput defines the response for deleting an entity
type DeleteOutput struct {
	Success bool
}

// sortEntities orders a listing by entity ID so results are stable
// across backends
func sortEntities(entities []vtt.Entity) {
	sort.Slice(entities, func(i, j int) bool {
		return entities[i].GetID() < entities[j].GetID()
	})
}
