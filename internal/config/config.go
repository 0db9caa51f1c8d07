package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// PathsConfig holds filesystem locations for application data.
type PathsConfig struct {
	MapsDir        string // directory with map SVG files
	DataDir        string // optional tarkovdata checkout; "" disables dataset lookups
	CoordsFile     string // append-only coordinate history
	MapConfig      string // primary per-map calibration overrides (JSON)
	AdditionalMaps string // secondary calibration overrides merged over the primary
}

// StorageConfig selects the coordinate store backend.
type StorageConfig struct {
	Type       string `json:"type" mapstructure:"type"`
	SQLitePath string `json:"sqlitePath" mapstructure:"sqlitePath"`
}

// Load reads configuration from JSON file and sets default values.
// configDir is the directory containing the config file.
func Load(configDir string) error {
	// Set default values
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logsDir", "./logs")

	viper.SetDefault("paths.mapsDir", "./maps")
	viper.SetDefault("paths.dataDir", "")
	viper.SetDefault("paths.coordsFile", "./data/coordinates.txt")
	viper.SetDefault("paths.mapConfig", "./config/map_config.json")
	viper.SetDefault("paths.additionalMaps", "./config/additional_maps.json")

	viper.SetDefault("storage.type", "file")
	viper.SetDefault("storage.sqlitePath", "./data/coordinates.db")

	viper.SetConfigName("raidmap.cfg.json")
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		// wrapped so callers can treat a missing file as defaults-only
		return fmt.Errorf("error reading config file: %w", err)
	}

	return nil
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetPaths returns the resolved filesystem paths.
func GetPaths() PathsConfig {
	return PathsConfig{
		MapsDir:        viper.GetString("paths.mapsDir"),
		DataDir:        viper.GetString("paths.dataDir"),
		CoordsFile:     viper.GetString("paths.coordsFile"),
		MapConfig:      viper.GetString("paths.mapConfig"),
		AdditionalMaps: viper.GetString("paths.additionalMaps"),
	}
}

// GetStorageConfig returns the coordinate store backend selection.
func GetStorageConfig() StorageConfig {
	return StorageConfig{
		Type:       viper.GetString("storage.type"),
		SQLitePath: viper.GetString("storage.sqlitePath"),
	}
}
