// Package translators turns provider records into normalized platform
// entities. Translation is pure: the same record always yields the
// same entity, apart from the provenance timestamp.
//
// Missing optional fields fall back to schema-appropriate zero values
// and are logged at debug level; a missing id or name is the one fatal
// condition, reported as a MissingDefinition error.
package translators

import (
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/vtt-importer/internal/entities/vtt"
	"github.com/KirkDiggler/vtt-importer/internal/errors"
	"github.com/KirkDiggler/vtt-importer/internal/pkg/clock"
)

// ImportMethodBatch marks entities written by the batch orchestrator;
// ImportMethodManual marks one-off imports driven by hand.
const (
	ImportMethodBatch  = "batch"
	ImportMethodManual = "manual"
)

// Translator converts provider records into platform entities
type Translator struct {
	clock        clock.Clock
	importMethod string
}

// Config holds the dependencies for a Translator
type Config struct {
	Clock clock.Clock

	// ImportMethod is recorded in each entity's provenance block.
	// Defaults to manual.
	ImportMethod string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

// New creates a translator with the provided dependencies
func New(cfg *Config) (*Translator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	method := cfg.ImportMethod
	if method == "" {
		method = ImportMethodManual
	}

	return &Translator{
		clock:        cfg.Clock,
		importMethod: method,
	}, nil
}

// provenance stamps the provenance block for a source record
func (t *Translator) provenance(sourceID int) vtt.Provenance {
	return vtt.Provenance{
		SourceID:     sourceID,
		ImportedAt:   t.clock.Now(),
		ImportMethod: t.importMethod,
	}
}

// entityID builds the platform id for an imported entity
func entityID(entityType string, sourceID int) string {
	return fmt.Sprintf("%s_%d", entityType, sourceID)
}

// requireIdentity enforces the mandatory identity fields
func requireIdentity(entityType string, id int, name string) error {
	if id == 0 {
		return errors.MissingDefinitionf("%s record has no id", entityType)
	}
	if name == "" {
		return errors.MissingDefinitionf("%s %d has no name", entityType, id)
	}
	return nil
}

// fallback logs an optional field being defaulted. Debug only; this is
// routine for provider data and not an error.
func fallback(entityType string, sourceID int, field string) {
	slog.Debug("translate: optional field missing, using default",
		"type", entityType,
		"source_id", sourceID,
		"field", field,
	)
}

// diceFormula renders an explicit dice tuple as a formula string
func diceFormula(diceCount, diceValue, fixedValue int) string {
	switch {
	case diceCount > 0 && fixedValue > 0:
		return fmt.Sprintf("%dd%d + %d", diceCount, diceValue, fixedValue)
	case diceCount > 0:
		return fmt.Sprintf("%dd%d", diceCount, diceValue)
	case fixedValue > 0:
		return fmt.Sprintf("%d", fixedValue)
	default:
		return ""
	}
}
