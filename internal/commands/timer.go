package commands

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ttrack/internal/models"
	"ttrack/internal/report"
)

var startCmd = &cobra.Command{
	Use:   "start [project]",
	Short: "Start a timer",
	Long:  "Start a timer for a project. A project can only have one running timer.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		store, _ := openStore()

		project, err := store.Snapshot().FindProject(args[0])
		if err != nil {
			return err
		}

		entry, err := store.StartTimer(project.ID)
		if errors.Is(err, models.ErrTimerRunning) {
			color.New(color.FgYellow).Fprintf(out, "Timer for %s is already running (%s)\n", project.Name, elapsed(store, *entry))
			return nil
		}
		if err != nil {
			return fmt.Errorf("error starting timer: %w", err)
		}

		color.New(color.FgGreen).Fprintf(out, "Started timer for %s at %s\n", project.Name, entry.StartDatetime.Format(report.ShortTimeLayout))
		return nil
	},
}

var stopCmd = &cobra.Command{
	Use:   "stop [project]",
	Short: "Stop a timer",
	Long:  "Stop the running timer of a project, optionally recording notes on the entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		store, _ := openStore()

		project, err := store.Snapshot().FindProject(args[0])
		if err != nil {
			return err
		}

		notes, _ := cmd.Flags().GetString("notes")
		entry, err := store.StopTimerWithNotes(project.ID, notes)
		if err != nil {
			return fmt.Errorf("error stopping timer: %w", err)
		}
		if entry == nil {
			fmt.Fprintf(out, "No running timer for %s\n", project.Name)
			return nil
		}

		color.New(color.FgGreen).Fprintf(out, "Stopped timer for %s after %s\n", project.Name, elapsed(store, *entry))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)

	stopCmd.Flags().String("notes", "", "Notes to record on the stopped entry")
}
