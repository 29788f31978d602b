package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/vtt-importer/internal/clients/local"
	"github.com/KirkDiggler/vtt-importer/internal/orchestrators/importer"
	"github.com/KirkDiggler/vtt-importer/internal/pkg/clock"
	"github.com/KirkDiggler/vtt-importer/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/vtt-importer/internal/redis"
	"github.com/KirkDiggler/vtt-importer/internal/repositories/compendium"
)

var (
	importCategory    string
	importIDs         []int
	importExportDir   string
	importConcurrency int
	importRedisAddr   string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a batch of provider records",
	Long: `Import translates exported provider records into compendium entities.
Records are read from an export directory; with --redis the compendium is
persisted, otherwise the run is an in-memory dry run.`,
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importCategory, "category", "", "entity category (spell, item, class, monster)")
	importCmd.Flags().IntSliceVar(&importIDs, "ids", nil, "provider record ids to import")
	importCmd.Flags().StringVar(&importExportDir, "export-dir", "", "directory holding exported provider records")
	importCmd.Flags().IntVar(&importConcurrency, "concurrency", importer.DefaultConcurrency, "bounded fetch parallelism")
	importCmd.Flags().StringVar(&importRedisAddr, "redis", "", "redis address for the persistent compendium (optional)")

	_ = importCmd.MarkFlagRequired("category")
	_ = importCmd.MarkFlagRequired("ids")
	_ = importCmd.MarkFlagRequired("export-dir")
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Println("Received shutdown signal, canceling batch...")
		cancel()
	}()

	fetcher, err := local.NewFetcher(&local.Config{Root: importExportDir})
	if err != nil {
		return fmt.Errorf("failed to open export directory: %w", err)
	}

	store, err := buildStore()
	if err != nil {
		return err
	}

	orch, err := importer.NewOrchestrator(&importer.Config{
		Fetcher:     fetcher,
		Store:       store,
		Clock:       clock.New(),
		IDGenerator: idgen.NewPrefixed("batch_"),
		Concurrency: importConcurrency,
	})
	if err != nil {
		return fmt.Errorf("failed to create orchestrator: %w", err)
	}

	out, err := orch.TranslateAndUpsert(ctx, &importer.TranslateAndUpsertInput{
		Category:  importCategory,
		SourceIDs: importIDs,
	})
	if err != nil {
		return fmt.Errorf("batch failed: %w", err)
	}

	fmt.Printf("created: %d\nupdated: %d\nfailed: %d\n", out.CreatedCount, out.UpdatedCount, len(out.Failures))
	for _, f := range out.Failures {
		fmt.Printf("  %d: %s\n", f.ID, f.Message)
	}

	return nil
}

func buildStore() (compendium.Repository, error) {
	if importRedisAddr == "" {
		log.Println("No redis address configured, results will not persist")
		return compendium.NewInMemory(), nil
	}

	client, err := redisclient.NewClient(importRedisAddr, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return compendium.NewRedis(&compendium.RedisConfig{Client: client})
}
