package cmd

import (
	"fmt"
	"io"

	"github.com/abhisek/dailylearn/internal/app"
	"github.com/abhisek/dailylearn/internal/clock"
	"github.com/abhisek/dailylearn/internal/config"
	"github.com/abhisek/dailylearn/internal/logger"
	"github.com/abhisek/dailylearn/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "dailylearn",
	Short:        "Daily learning sets for elementary students",
	Long:         "dailylearn builds a deterministic daily question set per grade and semester, records attempts and tracks streaks, badges and reports.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("store", "", "Store backend: memory, sqlite or redis (overrides DAILYLEARN_STORE)")
	pf.String("db", "", "Path to SQLite database file (overrides DAILYLEARN_DB)")
	pf.String("redis-url", "", "Redis URL (overrides DAILYLEARN_REDIS_URL)")
	pf.String("log-level", "", "Log level: debug, info, warn, error (overrides DAILYLEARN_LOG_LEVEL)")
	pf.String("tz", "", "IANA timezone for calendar dates (overrides DAILYLEARN_TZ)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(badgesCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the environment and applies flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if v, _ := cmd.Flags().GetString("store"); v != "" {
		cfg.Store.Backend = v
	}
	if v, _ := cmd.Flags().GetString("db"); v != "" {
		cfg.Store.DBPath = v
	}
	if v, _ := cmd.Flags().GetString("redis-url"); v != "" {
		cfg.Store.RedisURL = v
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.Log.Level = v
	}
	if v, _ := cmd.Flags().GetString("tz"); v != "" {
		cfg.Timezone = v
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openEngine builds the engine over the configured store. The returned
// closer releases the store and flushes the logger.
func openEngine(cmd *cobra.Command) (*app.Engine, func(), error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	log, err := logger.New(logger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, nil, err
	}

	kv, closer, err := openStore(cmd, cfg)
	if err != nil {
		log.Sync()
		return nil, nil, err
	}
	log.Debug("store opened", "backend", cfg.Store.Backend)

	engine, err := app.New(app.Options{
		Store:  kv,
		Clock:  clock.System{Location: loc},
		Logger: log,
	})
	if err != nil {
		closer.Close()
		log.Sync()
		return nil, nil, err
	}
	return engine, func() {
		if err := closer.Close(); err != nil {
			log.Warn("close store", "error", err)
		}
		log.Sync()
	}, nil
}

func openStore(cmd *cobra.Command, cfg *config.Config) (store.KV, io.Closer, error) {
	switch cfg.Store.Backend {
	case config.BackendMemory:
		m := store.NewMemory()
		return m, m, nil
	case config.BackendRedis:
		r, err := store.OpenRedis(cmd.Context(), cfg.Store.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("open redis store: %w", err)
		}
		return r, r, nil
	default:
		path, err := resolveDBPath(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("resolve DB path: %w", err)
		}
		s, err := store.OpenSQLite(path)
		if err != nil {
			return nil, nil, fmt.Errorf("open store: %w", err)
		}
		return s, s, nil
	}
}

// resolveDBPath returns the configured database path, or the default XDG
// path when none is set.
func resolveDBPath(cfg *config.Config) (string, error) {
	if p := cfg.Store.DBPath; p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
