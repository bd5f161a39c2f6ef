// Package tracker parses tracker command flags and runs the MCP server.
package tracker

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/greywick/roundtracker/internal/encounter/domain"
	"github.com/greywick/roundtracker/internal/encounter/service"
	"github.com/greywick/roundtracker/internal/mcp"
	platformcmd "github.com/greywick/roundtracker/internal/platform/cmd"
	"github.com/greywick/roundtracker/internal/storage"
	"github.com/greywick/roundtracker/internal/storage/sqlite"
)

// Config holds tracker command configuration.
type Config struct {
	DBPath string `env:"TRACKER_DB_PATH" envDefault:"tracker.db"`
	Locale string `env:"TRACKER_LOCALE"  envDefault:"en-US"`
	Seed   bool   `env:"TRACKER_SEED"    envDefault:"true"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "path to the tracker database file")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "locale for user-facing messages")
	fs.BoolVar(&cfg.Seed, "seed", cfg.Seed, "start from the sample encounter when no snapshot exists")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run opens storage, builds the encounter service, and serves MCP on stdio
// until the context ends.
func Run(ctx context.Context, cfg Config) error {
	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceTracker, func(ctx context.Context) error {
		store, err := sqlite.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open tracker database: %w", err)
		}
		defer func() {
			if err := store.Close(); err != nil {
				log.Printf("close tracker database: %v", err)
			}
		}()

		svc, err := buildService(ctx, cfg, store)
		if err != nil {
			return err
		}
		return mcp.NewServer(svc, cfg.Locale).Serve(ctx)
	})
}

// buildService restores the latest snapshot when one exists. Without one
// the encounter starts from the sample roster, or empty when seeding is
// disabled.
func buildService(ctx context.Context, cfg Config, store *sqlite.Store) (*service.Service, error) {
	var roster *domain.Roster
	if cfg.Seed {
		roster = domain.SeedEncounter()
	}
	svc := service.New(service.Options{
		Roster:    roster,
		Snapshots: store,
		Events:    store,
	})

	if _, err := store.LatestSnapshot(ctx); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return svc, nil
		}
		return nil, fmt.Errorf("look up latest snapshot: %w", err)
	}
	if _, err := svc.RestoreSnapshot(ctx, ""); err != nil {
		return nil, fmt.Errorf("restore latest snapshot: %w", err)
	}
	return svc, nil
}
