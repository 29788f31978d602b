// Package errors provides structured error handling for the vtt-importer.
//
// Errors carry a code, a human-readable message, and optional metadata:
//
//	err := errors.MissingDefinition("spell has no name")
//	err := errors.InvalidArgumentf("unknown category: %s", category)
//
// Wrapping preserves the original code:
//
//	if err := store.List(ctx); err != nil {
//	    return errors.Wrap(err, "failed to index compendium")
//	}
//
// Type checking:
//
//	if errors.IsMissingDefinition(err) {
//	    // record the item failure and keep going
//	}
//
// The batch orchestrator relies on GetMessage to produce the per-item
// failure messages surfaced to users, so messages should be written for
// humans, not for logs.
package errors
