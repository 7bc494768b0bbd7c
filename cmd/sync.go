package cmd

import (
	"context"

	"github.com/streamhaven/catalogd/config"
	"github.com/streamhaven/catalogd/pkg/logger"
	"github.com/streamhaven/catalogd/pkg/storage"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// syncCmd represents the sync command
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "resynchronize imported titles",
	Long:  `re-fetch and overwrite every imported title of a kind, rebuilding series season trees`,
}

var syncMoviesCmd = &cobra.Command{
	Use:   "movies",
	Short: "resync all imported movies",
	Run: func(cmd *cobra.Command, args []string) {
		runResync(storage.MediaTypeMovie)
	},
}

var syncSeriesCmd = &cobra.Command{
	Use:   "series",
	Short: "resync all imported series",
	Run: func(cmd *cobra.Command, args []string) {
		runResync(storage.MediaTypeSeries)
	},
}

func runResync(mediaType storage.MediaType) {
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

	syncer := newSyncer(cfg, store)
	report, err := syncer.RunResync(ctx, mediaType)
	if err != nil {
		log.Fatal("resync failed", zap.Error(err))
	}

	printReport(report)
}

func init() {
	rootCmd.AddCommand(syncCmd)
	syncCmd.AddCommand(syncMoviesCmd)
	syncCmd.AddCommand(syncSeriesCmd)
}
