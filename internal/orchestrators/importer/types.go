package importer

// TranslateAndUpsertInput defines the request for importing a batch of
// provider records
type TranslateAndUpsertInput struct {
	// Category is the entity type to import (spell, item, class, monster)
	Category string

	// SourceIDs is the ordered list of provider record ids to import
	SourceIDs []int
}

// TranslateAndUpsertOutput defines the response for a batch import
type TranslateAndUpsertOutput struct {
	CreatedCount int
	UpdatedCount int

	// Failures records every item that could not be imported. The batch
	// always runs to completion; failures never abort it.
	Failures []ItemFailure
}

// ItemFailure describes one failed item in a batch
type ItemFailure struct {
	ID      int
	Message string
}
