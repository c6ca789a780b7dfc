package commands

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"ttrack/internal/config"
	"ttrack/internal/storage"
	"ttrack/internal/tracker"
)

var (
	globalConfig *config.Config
	logger       = slog.New(slog.NewTextHandler(io.Discard, nil))
)

var rootCmd = &cobra.Command{
	Use:   "ttrack",
	Short: "ttrack - Track time spent on projects",
	Long: `ttrack is a command-line time tracker.
Start and stop timers per project, review logged entries, and export them as CSV, HTML or PDF reports.
All data is kept in local JSON files.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = globalConfig.Logger(cmd.ErrOrStderr())
	},
}

// Execute runs the root command
func Execute(cfg *config.Config) error {
	globalConfig = cfg
	return rootCmd.Execute()
}

// openStore loads the data directory into a store that saves itself on every change
func openStore() (*tracker.Store, *storage.Storage) {
	st := storage.NewStorage(globalConfig.DataDir, logger)
	store := tracker.NewStore(st.LoadState(globalConfig.Seed))
	store.Subscribe(st.Persist)
	return store, st
}
