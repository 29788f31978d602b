package importer

//go:generate mockgen -destination=mock/mock_fetcher.go -package=importermock github.com/KirkDiggler/vtt-importer/internal/orchestrators/importer Fetcher

import (
	"context"

	"golang.org/x/net/html"

	"github.com/KirkDiggler/vtt-importer/internal/entities/source"
)

// Fetcher retrieves raw provider records. Implementations own transport
// concerns (auth, timeouts, retries); the orchestrator records a fetch
// error as an item failure and moves on.
type Fetcher interface {
	// SpellByID fetches one spell record
	SpellByID(ctx context.Context, id int) (*source.Spell, error)

	// ItemByID fetches one item record
	ItemByID(ctx context.Context, id int) (*source.Item, error)

	// ClassByID fetches one class record plus its description page.
	// The page may be nil when the provider has no markup for it.
	ClassByID(ctx context.Context, id int) (*source.Class, *html.Node, error)

	// MonsterByID fetches one monster record
	MonsterByID(ctx context.Context, id int) (*source.Monster, error)
}
