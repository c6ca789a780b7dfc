package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"ttrack/internal/models"
	"ttrack/internal/storage"
	"ttrack/internal/tracker"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the data directory",
	Long:  `Create the data directory with sample projects and entries, or empty with --no-seed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		st := storage.NewStorage(globalConfig.DataDir, logger)

		if st.Exists(storage.KeyProjects) || st.Exists(storage.KeyTimeEntries) {
			fmt.Fprintln(out, "Error: data directory already initialized at", globalConfig.DataDir)
			return nil
		}

		state := tracker.State{
			Projects: models.SeedProjects(),
			Entries:  models.SeedTimeEntries(),
		}
		if noSeed, _ := cmd.Flags().GetBool("no-seed"); noSeed {
			state = tracker.State{}
		}

		store := tracker.NewStore(tracker.State{})
		store.Subscribe(st.Persist)
		if err := store.Reset(state); err != nil {
			return fmt.Errorf("error initializing data directory: %w", err)
		}

		fmt.Fprintln(out, "Initialized time tracking data in", globalConfig.DataDir)
		fmt.Fprintf(out, "%d projects, %d entries\n", len(state.Projects), len(state.Entries))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().Bool("no-seed", false, "Start with no projects or entries")
}
