package config

import (
	"fmt"
	"strings"

	internal "github.com/ZanzyTHEbar/dirscan/dirscan"

	"github.com/spf13/viper"
)

// Config stores all configuration of the library.
// The values are read by viper from a config file or environment variables.
type Config struct {
	Scan ScanConfig `mapstructure:"scan"`
}

// ScanConfig stores the default scan behavior.
type ScanConfig struct {
	TimeType       string   `mapstructure:"timeType"`
	TimeFormat     string   `mapstructure:"timeFormat"`
	AsDateTime     bool     `mapstructure:"asDateTime"`
	IncludeSize    bool     `mapstructure:"includeSize"`
	Recurse        bool     `mapstructure:"recurse"`
	Extensions     []string `mapstructure:"extensions"`
	IgnorePatterns []string `mapstructure:"ignorePatterns"`
	Workers        int      `mapstructure:"workers"`
}

var AppConfig Config

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(configPath string) (*Config, error) {
	if configPath != "" {
		viper.SetConfigFile(configPath)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath(internal.DefaultConfigPath)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// Set default values
	viper.SetDefault("scan.timeType", internal.DefaultTimeType)
	viper.SetDefault("scan.timeFormat", internal.DefaultTimeFormat)
	viper.SetDefault("scan.asDateTime", false)
	viper.SetDefault("scan.includeSize", false)
	viper.SetDefault("scan.recurse", internal.DefaultRecurse)
	viper.SetDefault("scan.workers", internal.DefaultWorkers)

	viper.SetEnvPrefix(strings.ToUpper(internal.DefaultAppName))
	viper.AutomaticEnv()                                   // Read in environment variables that match
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // e.g. scan.timeFormat becomes DIRSCAN_SCAN_TIMEFORMAT

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; defaults will be used. Not an error to halt on.
			logger := internal.GetLogger()
			logger.Debug().Msg("no config file found, using defaults")
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	err := viper.Unmarshal(&AppConfig)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validate(&AppConfig); err != nil {
		return nil, err
	}

	return &AppConfig, nil
}

func validate(cfg *Config) error {
	switch cfg.Scan.TimeType {
	case "created", "modified", "none", "":
	default:
		return fmt.Errorf("invalid scan.timeType %q (want created, modified or none)", cfg.Scan.TimeType)
	}
	if cfg.Scan.Workers < 0 {
		return fmt.Errorf("invalid scan.workers %d (must be >= 0)", cfg.Scan.Workers)
	}
	return nil
}
