package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_WithValidConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := `{
		"logLevel": "debug",
		"paths": { "mapsDir": "/opt/maps", "dataDir": "/opt/tarkovdata" },
		"storage": { "type": "sqlite" }
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "raidmap.cfg.json"), []byte(cfg), 0644))

	err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", viper.GetString("logLevel"))
	assert.Equal(t, "/opt/maps", viper.GetString("paths.mapsDir"))
	assert.Equal(t, "/opt/tarkovdata", viper.GetString("paths.dataDir"))
	assert.Equal(t, "sqlite", viper.GetString("storage.type"))
}

func TestLoad_DefaultValues(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "raidmap.cfg.json"), []byte(`{}`), 0644))

	err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "info", viper.GetString("logLevel"))
	assert.Equal(t, "./logs", viper.GetString("logsDir"))
	assert.Equal(t, "./maps", viper.GetString("paths.mapsDir"))
	assert.Equal(t, "", viper.GetString("paths.dataDir"))
	assert.Equal(t, "./data/coordinates.txt", viper.GetString("paths.coordsFile"))
	assert.Equal(t, "./config/map_config.json", viper.GetString("paths.mapConfig"))
	assert.Equal(t, "./config/additional_maps.json", viper.GetString("paths.additionalMaps"))
	assert.Equal(t, "file", viper.GetString("storage.type"))
	assert.Equal(t, "./data/coordinates.db", viper.GetString("storage.sqlitePath"))
}

func TestLoad_MissingFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	err := Load("/nonexistent/path")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestGetPaths(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := `{
		"paths": {
			"mapsDir": "/m",
			"dataDir": "/d",
			"coordsFile": "/c/coords.txt",
			"mapConfig": "/c/map_config.json",
			"additionalMaps": "/c/additional_maps.json"
		}
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "raidmap.cfg.json"), []byte(cfg), 0644))
	require.NoError(t, Load(dir))

	p := GetPaths()
	assert.Equal(t, "/m", p.MapsDir)
	assert.Equal(t, "/d", p.DataDir)
	assert.Equal(t, "/c/coords.txt", p.CoordsFile)
	assert.Equal(t, "/c/map_config.json", p.MapConfig)
	assert.Equal(t, "/c/additional_maps.json", p.AdditionalMaps)
}

func TestGetStorageConfig(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := `{ "storage": { "type": "sqlite", "sqlitePath": "/tmp/coords.db" } }`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "raidmap.cfg.json"), []byte(cfg), 0644))
	require.NoError(t, Load(dir))

	sc := GetStorageConfig()
	assert.Equal(t, "sqlite", sc.Type)
	assert.Equal(t, "/tmp/coords.db", sc.SQLitePath)
}
