// Package cli implements the menucache CLI commands.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/goforj/menucache"
	"github.com/goforj/menucache/menuapi"
	"github.com/goforj/menucache/menusync"
)

var (
	cacheDir   string
	formatFlag string
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "menucache",
	Short: "Dining menu client with a day-scoped cache",
	Long:  "Fetches per-meal food-item listings, caches them for the calendar day, and lets authenticated users search and mark favorites.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&cacheDir, "cache-dir", "c", "", "Cache directory (default: $MENUCACHE_DIR or ~/.menucache)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "text", "Output format: json or text")
}

func getCacheDir() string {
	if cacheDir != "" {
		return cacheDir
	}
	if env := os.Getenv("MENUCACHE_DIR"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".menucache")
}

// session bundles the pieces every command needs: the file-backed day cache
// (so same-day reuse survives process restarts), the backend client, and the
// sync layer on top of them.
type session struct {
	cfg         menuapi.Config
	cache       *menucache.DayCache
	coordinator *menusync.Coordinator
	syncer      *menusync.Syncer
}

func openSession(cmd *cobra.Command) (*session, error) {
	cfg, err := menuapi.ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	client, err := menuapi.NewClient(cfg.BaseURL)
	if err != nil {
		return nil, err
	}
	store := menucache.NewFileStore(cmd.Context(), getCacheDir())
	cache := menucache.NewDayCache(store)
	return &session{
		cfg:         cfg,
		cache:       cache,
		coordinator: menusync.NewCoordinator(cache, client),
		syncer:      menusync.NewSyncer(cache, client),
	}, nil
}

func (s *session) fetch(cmd *cobra.Command) (menusync.Snapshot, error) {
	if s.cfg.Token != "" {
		return s.coordinator.FetchForUser(cmd.Context(), s.cfg.Token)
	}
	return s.coordinator.FetchForGuest(cmd.Context())
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
