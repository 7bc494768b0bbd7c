package cmd

import (
	"context"
	"fmt"

	"github.com/streamhaven/catalogd/config"
	"github.com/streamhaven/catalogd/pkg/logger"
	"github.com/streamhaven/catalogd/pkg/storage"
	"github.com/streamhaven/catalogd/pkg/sync"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var importLimit int

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "discovery-import popular titles",
	Long:  `import a page of popular titles from the external provider, skipping ones already present`,
}

var importMoviesCmd = &cobra.Command{
	Use:   "movies",
	Short: "import popular movies",
	Run: func(cmd *cobra.Command, args []string) {
		runDiscovery(storage.MediaTypeMovie)
	},
}

var importSeriesCmd = &cobra.Command{
	Use:   "series",
	Short: "import popular series",
	Run: func(cmd *cobra.Command, args []string) {
		runDiscovery(storage.MediaTypeSeries)
	},
}

func runDiscovery(mediaType storage.MediaType) {
	log := logger.Get()
	ctx := logger.WithCtx(context.Background(), log)

	cfg, err := config.New(viper.GetViper())
	if err != nil {
		log.Fatal("failed to read configurations", zap.Error(err))
	}

	store, err := newStore(cfg)
	if err != nil {
		log.Fatal("failed to create storage connection", zap.Error(err))
	}

	limit := importLimit
	if limit == 0 {
		limit = cfg.Sync.ImportLimit
	}

	syncer := newSyncer(cfg, store)
	report, err := syncer.RunDiscovery(ctx, mediaType, limit)
	if err != nil {
		log.Fatal("discovery import failed", zap.Error(err))
	}

	printReport(report)
}

func printReport(report *sync.BatchReport) {
	for _, result := range report.Results {
		line := fmt.Sprintf("%-10s %8d  %s", result.Status, result.TmdbID, result.Title)
		if result.Error != "" {
			line += fmt.Sprintf("  (%s)", result.Error)
		}
		fmt.Println(line)
	}
	fmt.Printf("total=%d success=%d errors=%d skipped=%d\n",
		report.Summary.Total, report.Summary.Success, report.Summary.Errors, report.Summary.Skipped)
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.AddCommand(importMoviesCmd)
	importCmd.AddCommand(importSeriesCmd)
	importCmd.PersistentFlags().IntVar(&importLimit, "limit", 0, "max titles to import (defaults to sync.importLimit)")
}
