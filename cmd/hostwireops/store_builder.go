package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hostwire/hostwire/adapters/store/inmem"
	"github.com/hostwire/hostwire/adapters/store/rdb"
	"github.com/hostwire/hostwire/config/hostwirecfg"
	"github.com/hostwire/hostwire/domain"
	"github.com/hostwire/hostwire/domain/model"
	"github.com/spf13/cobra"
)

// getDBURL extracts the db-url flag value from the command hierarchy.
func getDBURL(cmd *cobra.Command) string {
	f := findFlag(cmd, "db-url")
	if f != nil && f.Value.String() != "" {
		return f.Value.String()
	}
	return "file:hostwireops.yml"
}

// stores bundles the repositories plus the configuration loaded alongside
// them when the db-url is file-backed.
type stores struct {
	Provider domain.ProviderRepository
	Run      domain.RunRepository

	// Config and State are set only for file: URLs, where the configuration
	// file is the store. For sqlite: URLs the configuration is loaded
	// separately by the command.
	Config *hostwirecfg.Root
	State  *model.DesiredState
}

// buildStores creates repositories based on db-url.
// If db-url starts with "file:", it loads the configuration file into a
// memory store; run history then lives only for the process lifetime.
func buildStores(cmd *cobra.Command) (*stores, error) {
	dbURL := getDBURL(cmd)

	switch {
	case strings.HasPrefix(dbURL, "file:"):
		filePath := strings.TrimPrefix(dbURL, "file:")
		if filePath == "" {
			return nil, fmt.Errorf("file path is required for file: URL")
		}

		cfg, err := hostwirecfg.Load(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", filePath, err)
		}

		store := inmem.NewStore()
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := store.LoadFromConfig(ctx, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config into store: %w", err)
		}

		s := &stores{Provider: store.ProviderRepo, Run: store.RunRepo, Config: cfg}
		if store.DesiredState != nil {
			s.State = store.DesiredState.State
		}
		return s, nil

	case strings.HasPrefix(dbURL, "sqlite:") || strings.HasPrefix(dbURL, "sqlite3:"):
		db, err := rdb.OpenFromURL(dbURL)
		if err != nil {
			return nil, err
		}
		if err := rdb.AutoMigrate(db); err != nil {
			return nil, err
		}
		return &stores{Provider: rdb.NewProviderRepository(db), Run: rdb.NewRunRepository(db)}, nil

	default:
		return nil, fmt.Errorf("unsupported db scheme: %s", dbURL)
	}
}
