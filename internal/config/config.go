package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type AppConfig struct {
	API     *APIConfig     `mapstructure:"api"`
	Gin     *GinConfig     `mapstructure:"gin"`
	Catalog *CatalogConfig `mapstructure:"catalog"`
	Storage *StorageConfig `mapstructure:"storage"`
}

type APIConfig struct {
	Environment        string `mapstructure:"environment"`
	BaseURL            string `mapstructure:"base_url"`
	Port               string `mapstructure:"port"`
	AllowedCORSDomains string `mapstructure:"allowed_cors_domains"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

// CatalogConfig points at the reference-data endpoints. Each payload is
// cached under CacheDir after the first successful fetch.
type CatalogConfig struct {
	TeamsURL    string `mapstructure:"teams_url"`
	StadiumsURL string `mapstructure:"stadiums_url"`
	MatchesURL  string `mapstructure:"matches_url"`
	CacheDir    string `mapstructure:"cache_dir"`
}

type StorageConfig struct {
	// Path of the customer snapshot file, replaced on every save.
	Path string `mapstructure:"path"`
}

// Load reads the YAML config at configPath. Every key can be overridden
// through environment variables, e.g. API_PORT, STORAGE_PATH.
func Load(configPath string) (*AppConfig, error) {
	viper.SetConfigFile(configPath)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("viper.ReadInConfig -> %w", err)
	}

	conf := &AppConfig{}
	if err := viper.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("viper.Unmarshal -> %w", err)
	}

	return conf, nil
}
