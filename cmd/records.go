package cmd

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/streamhaven/catalogd/config"
	"github.com/streamhaven/catalogd/pkg/logger"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var recordsLimit int

// recordsCmd represents the records command
var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "show the most recent sync audit entries",
	Run: func(cmd *cobra.Command, args []string) {
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

		records, err := store.ListSyncRecords(ctx, 0, int64(recordsLimit))
		if err != nil {
			log.Fatal("failed to list sync records", zap.Error(err))
		}

		for _, record := range records {
			line := fmt.Sprintf("%-18s %-7s %8d  %s", humanize.Time(record.CreatedAt), record.MediaType, record.TmdbID, record.Status)
			if record.ErrorMessage != nil {
				line += fmt.Sprintf("  %s", *record.ErrorMessage)
			}
			fmt.Println(line)
		}

		total, err := store.CountSyncRecords(ctx)
		if err != nil {
			log.Fatal("failed to count sync records", zap.Error(err))
		}
		fmt.Printf("%s records total\n", humanize.Comma(total))
	},
}

func init() {
	rootCmd.AddCommand(recordsCmd)
	recordsCmd.Flags().IntVar(&recordsLimit, "limit", 20, "max entries to show")
}
