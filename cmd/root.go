package cmd

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/streamhaven/catalogd/config"
	"github.com/streamhaven/catalogd/pkg/catalog"
	mhttp "github.com/streamhaven/catalogd/pkg/http"
	"github.com/streamhaven/catalogd/pkg/storage"
	"github.com/streamhaven/catalogd/pkg/storage/sqlite"
	"github.com/streamhaven/catalogd/pkg/sync"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "catalogd",
	Short: "catalogd cli",
	Long:  `catalogd imports and resynchronizes a streaming catalog from an external metadata provider`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file")
}

func initConfig() {
	viper.SetConfigFile(cfgFile)

	viper.SetEnvPrefix("CATALOGD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", ""))
	viper.AutomaticEnv()

	viper.SetDefault("server.port", 8080)

	viper.SetDefault("storage.filePath", "catalogd.sqlite")

	viper.SetDefault("client.maxRetries", 3)
	viper.SetDefault("client.backoff", time.Second)

	viper.SetDefault("sync.importLimit", sync.DefaultImportLimit)
}

func newStore(cfg config.Config) (storage.Storage, error) {
	return sqlite.New(cfg.Storage.FilePath)
}

func newSyncer(cfg config.Config, store storage.Storage) *sync.Syncer {
	factory := func(providerCfg catalog.Config) catalog.ClientInterface {
		doer := mhttp.NewRateLimitedHTTPClient(
			mhttp.WithMaxRetries(cfg.Client.MaxRetries),
			mhttp.WithBaseBackoff(cfg.Client.BaseBackoff),
		)
		return catalog.New(providerCfg, catalog.WithHTTPClient(doer))
	}

	return sync.New(store, sync.WithClientFactory(factory))
}
