package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/abhisek/wannabe/internal/config"
	"github.com/abhisek/wannabe/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "wannabe",
	Short: "Be Who You Wanna Be: a learning app for kids",
	Long:  "Wannabe is a terminal mockup of a kids' learning tablet app: lessons, a speaking studio, mentors, projects and a parent portal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the CLI with ctx as every command's context. The TUI
// and any in-flight upload stop when ctx is cancelled.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides WANNABE_CONFIG env var)")
	rootCmd.PersistentFlags().String("db", "", "Path to journal database file (overrides WANNABE_DB env var)")
	rootCmd.PersistentFlags().String("content", "", "Path to a content catalog (defaults to the built-in one)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(contentCmd)
	rootCmd.AddCommand(historyCmd)
}

// loadConfig reads configuration and applies command-line overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if p, _ := cmd.Flags().GetString("content"); p != "" {
		cfg.Content.Path = p
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.Journal.Path = p
	}
	return cfg, nil
}

// resolveDBPath returns the journal path using --db / journal.path
// (highest priority), then WANNABE_DB env var, then the default XDG path.
func resolveDBPath(cfg config.Config) (string, error) {
	if p := cfg.Journal.Path; p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
