package cmd

import (
	"github.com/streamhaven/catalogd/config"
	"github.com/streamhaven/catalogd/pkg/logger"
	"github.com/streamhaven/catalogd/server"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start the catalog server",
	Long:  `start the catalog admin api`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatal("failed to read configurations", zap.Error(err))
		}

		store, err := newStore(cfg)
		if err != nil {
			log.Fatal("failed to create storage connection", zap.Error(err))
		}

		syncer := newSyncer(cfg, store)
		srv := server.New(log, syncer, store)
		log.Error(srv.Serve(cfg.Server.Port))
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
