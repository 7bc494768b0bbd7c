package cmd

import (
	"context"
	"fmt"

	"github.com/streamhaven/catalogd/config"
	"github.com/streamhaven/catalogd/pkg/logger"
	"github.com/streamhaven/catalogd/pkg/storage/sqlite/schema/gen/model"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	providerBaseURL      string
	providerAPIKey       string
	providerImageBaseURL string
	providerLanguage     string
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "manage the provider configuration",
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "store a provider configuration and activate it",
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := logger.WithCtx(context.Background(), log)

		if providerBaseURL == "" || providerAPIKey == "" || providerImageBaseURL == "" {
			log.Fatal("base-url, api-key and image-base-url are required")
		}

		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatal("failed to read configurations", zap.Error(err))
		}

		store, err := newStore(cfg)
		if err != nil {
			log.Fatal("failed to create storage connection", zap.Error(err))
		}

		_, err = store.SaveCatalogConfig(ctx, model.CatalogConfig{
			BaseURL:      providerBaseURL,
			APIKey:       providerAPIKey,
			ImageBaseURL: providerImageBaseURL,
			Language:     providerLanguage,
		})
		if err != nil {
			log.Fatal("failed to save catalog config", zap.Error(err))
		}

		fmt.Println("catalog config saved")
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get",
	Short: "show the active provider configuration",
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

		active, err := store.GetActiveCatalogConfig(ctx)
		if err != nil {
			log.Fatal("failed to get catalog config", zap.Error(err))
		}

		fmt.Printf("baseUrl:      %s\n", active.BaseURL)
		fmt.Printf("imageBaseUrl: %s\n", active.ImageBaseURL)
		fmt.Printf("language:     %s\n", active.Language)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configSetCmd.Flags().StringVar(&providerBaseURL, "base-url", "", "provider api base url")
	configSetCmd.Flags().StringVar(&providerAPIKey, "api-key", "", "provider api key")
	configSetCmd.Flags().StringVar(&providerImageBaseURL, "image-base-url", "", "provider image base url")
	configSetCmd.Flags().StringVar(&providerLanguage, "language", "en", "preferred metadata language")
}
