package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config is the process configuration. The provider credentials are not here:
// they are data owned by the admin workflow and live in storage as the single
// active catalog configuration row.
type Config struct {
	Server  Server  `json:"server" yaml:"server" mapstructure:"server"`
	Storage Storage `json:"storage" yaml:"storage" mapstructure:"storage"`
	Client  Client  `json:"client" yaml:"client" mapstructure:"client"`
	Sync    Sync    `json:"sync" yaml:"sync" mapstructure:"sync"`
}

type Server struct {
	Port int `json:"port" yaml:"port" mapstructure:"port"`
}

// Storage configuration is assumed to be for sqlite database only currently
type Storage struct {
	FilePath string `json:"filePath" yaml:"filePath" mapstructure:"filePath"`
}

// Client configures the retry behavior of outbound provider calls
type Client struct {
	BaseBackoff time.Duration `json:"backoff" yaml:"backoff" mapstructure:"backoff"`
	MaxRetries  int           `json:"maxRetries" yaml:"maxRetries" mapstructure:"maxRetries"`
}

// Sync houses defaults for the synchronization engine
type Sync struct {
	ImportLimit int `json:"importLimit" yaml:"importLimit" mapstructure:"importLimit"`
}

type ConfigUnmarshaler interface {
	ReadInConfig() error
	Unmarshal(any, ...viper.DecoderConfigOption) error
	ConfigFileUsed() string
}

// New reads a new configuration
func New(cu ConfigUnmarshaler) (Config, error) {
	var c Config

	if cu.ConfigFileUsed() != "" {
		err := cu.ReadInConfig()
		if err != nil {
			return c, err
		}
	}

	err := cu.Unmarshal(&c)
	return c, err
}
