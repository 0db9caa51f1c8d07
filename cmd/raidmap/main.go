package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/tarkov-tools/raidmap/internal/assistant"
	"github.com/tarkov-tools/raidmap/internal/calibration"
	"github.com/tarkov-tools/raidmap/internal/config"
	"github.com/tarkov-tools/raidmap/internal/dataset"
	"github.com/tarkov-tools/raidmap/internal/logging"
	"github.com/tarkov-tools/raidmap/internal/mapfile"
	"github.com/tarkov-tools/raidmap/internal/parser"
	"github.com/tarkov-tools/raidmap/internal/storage"
)

// Version and BuildDate can be set at build time via ldflags.
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
)

const appName = "raidmap"

// configDir returns the directory searched for raidmap.cfg.json.
func configDir() string {
	if dir := os.Getenv("RAIDMAP_CONFIG_DIR"); dir != "" {
		return dir
	}
	return "."
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if err := config.Load(configDir()); err != nil {
		// missing config file means defaults; anything else is fatal
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}

	logLevel := config.GetString("logLevel")
	logFile := openLogFile(config.GetString("logsDir"))
	if logFile != nil {
		defer logFile.Close()
	}

	slogManager := logging.NewSlogManager()
	slogManager.Setup(logFile, logLevel)
	logger := slogManager.Logger()

	svc, store, err := buildService(logger, logFile, logLevel)
	if err != nil {
		return err
	}
	defer store.Close()

	d, err := newCLI(svc, logger)
	if err != nil {
		return err
	}
	return dispatch(d, args)
}

// openLogFile creates the session log file. Logging falls back to console
// only when the file cannot be created.
func openLogFile(logsDir string) *os.File {
	path := logging.LogFilePath(logsDir, appName, time.Now())
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil
	}
	return f
}

func buildService(logger *slog.Logger, logFile *os.File, logLevel string) (*assistant.Service, storage.Backend, error) {
	paths := config.GetPaths()

	ds := dataset.NewStore(paths.DataDir, logger)
	if paths.DataDir != "" && !ds.Available() {
		logger.Warn("Configured dataset directory not found", "dir", paths.DataDir)
	}

	store, err := storage.NewBackend(
		config.GetStorageConfig(),
		paths.CoordsFile,
		logger,
		logging.NewZerolog(logFile, logLevel),
	)
	if err != nil {
		return nil, nil, err
	}
	if err := store.Init(); err != nil {
		return nil, nil, err
	}

	svc := assistant.NewService(assistant.Dependencies{
		Parser:   parser.NewParser(logger),
		Store:    store,
		Resolver: calibration.NewResolver(paths.MapConfig, paths.AdditionalMaps, ds, logger),
		Locator:  mapfile.NewLocator(paths.MapsDir, ds, logger),
		Dataset:  ds,
		Logger:   logger,
	})
	return svc, store, nil
}
