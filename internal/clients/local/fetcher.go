// Package local implements a filesystem-backed record fetcher. It reads
// provider records previously exported as JSON, one file per record,
// so batches can run without any network access.
//
// Expected layout under the root directory:
//
//	spells/<id>.json
//	items/<id>.json
//	classes/<id>.json
//	classes/<id>.html   (optional description page)
//	monsters/<id>.json
package local

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/net/html"

	"github.com/KirkDiggler/vtt-importer/internal/entities/source"
	"github.com/KirkDiggler/vtt-importer/internal/errors"
)

// Fetcher reads provider records from an export directory
type Fetcher struct {
	root string
}

// Config holds the settings for the local fetcher
type Config struct {
	// Root is the export directory holding the per-category subdirectories
	Root string
}

// Validate validates the Config
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Root == "" {
		return errors.InvalidArgument("root directory cannot be empty")
	}
	return nil
}

// NewFetcher creates a fetcher over an export directory
func NewFetcher(cfg *Config) (*Fetcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	info, err := os.Stat(cfg.Root)
	if err != nil {
		return nil, errors.Wrapf(err, "export directory %s", cfg.Root)
	}
	if !info.IsDir() {
		return nil, errors.InvalidArgumentf("%s is not a directory", cfg.Root)
	}

	return &Fetcher{root: cfg.Root}, nil
}

// SpellByID reads one spell record
func (f *Fetcher) SpellByID(ctx context.Context, id int) (*source.Spell, error) {
	var spell source.Spell
	if err := f.readRecord(ctx, "spells", id, &spell); err != nil {
		return nil, err
	}
	return &spell, nil
}

// ItemByID reads one item record
func (f *Fetcher) ItemByID(ctx context.Context, id int) (*source.Item, error) {
	var item source.Item
	if err := f.readRecord(ctx, "items", id, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// ClassByID reads one class record and, when exported alongside it, the
// class description page
func (f *Fetcher) ClassByID(ctx context.Context, id int) (*source.Class, *html.Node, error) {
	var class source.Class
	if err := f.readRecord(ctx, "classes", id, &class); err != nil {
		return nil, nil, err
	}

	doc, err := f.readPage("classes", id)
	if err != nil {
		return nil, nil, err
	}
	return &class, doc, nil
}

// MonsterByID reads one monster record
func (f *Fetcher) MonsterByID(ctx context.Context, id int) (*source.Monster, error) {
	var monster source.Monster
	if err := f.readRecord(ctx, "monsters", id, &monster); err != nil {
		return nil, err
	}
	return &monster, nil
}

func (f *Fetcher) recordPath(category string, id int, ext string) string {
	return filepath.Join(f.root, category, fmt.Sprintf("%d%s", id, ext))
}

func (f *Fetcher) readRecord(ctx context.Context, category string, id int, v any) error {
	if err := ctx.Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeCanceled, "fetch canceled")
	}

	path := f.recordPath(category, id, ".json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.NotFoundf("no exported record at %s", path)
		}
		return errors.Wrapf(err, "failed to read %s", path)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return errors.Wrapf(err, "failed to parse %s", path)
	}
	return nil
}

// readPage parses an optional exported markup page; a missing file is
// not an error
func (f *Fetcher) readPage(category string, id int) (*html.Node, error) {
	path := f.recordPath(category, id, ".html")
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	defer func() { _ = file.Close() }()

	doc, err := html.Parse(file)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}
	return doc, nil
}
