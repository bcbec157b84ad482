package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/wannabe/internal/app"
	"github.com/abhisek/wannabe/internal/clock"
	"github.com/abhisek/wannabe/internal/content"
	"github.com/abhisek/wannabe/internal/logging"
	"github.com/abhisek/wannabe/internal/nav"
	"github.com/abhisek/wannabe/internal/store"
	"github.com/abhisek/wannabe/internal/studio"
)

// runApp loads configuration and content, opens the journal and launches
// the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if err := logging.Initialize(cfg.Log.Level, cfg.Log.File); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer logging.Sync()

	catalog, err := loadCatalog(cfg.Content.Path)
	if err != nil {
		return err
	}

	machine := nav.NewAt(cfg.Screen(), cfg.InitialRole())

	if cfg.Journal.Enabled {
		dbPath, err := resolveDBPath(cfg)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		journal := store.NewJournal(st.EventRepo())
		machine.Subscribe(journal.Record)
		logging.Info("journal opened", zap.String("path", dbPath), zap.String("session", journal.SessionID()))
	}

	c := clock.Real()
	return app.Run(app.Options{
		Context:  cmd.Context(),
		Catalog:  catalog,
		Machine:  machine,
		Clock:    c,
		Uploader: studio.NewSimulatedUploader(c, cfg.Studio.UploadDelay),
	})
}

// loadCatalog reads the catalog at path, or the built-in one when path is
// empty.
func loadCatalog(path string) (*content.Catalog, error) {
	if path == "" {
		return content.Default(), nil
	}
	catalog, err := content.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	return catalog, nil
}
