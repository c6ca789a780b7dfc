package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ttrack/internal/models"
	"ttrack/internal/report"
	"ttrack/internal/tracker"
	"ttrack/internal/util"
)

func elapsed(store *tracker.Store, e models.TimeEntry) string {
	return tracker.ElapsedTime(e, store.Now())
}

func projectLabel(st tracker.State, id string) string {
	if p, ok := st.Project(id); ok {
		return p.Name
	}
	return tracker.UnknownProjectLabel
}

// printEntry writes one entry line: date, time span, duration, optional project, notes and short id
func printEntry(out io.Writer, store *tracker.Store, st tracker.State, e models.TimeEntry, withProject bool) {
	span := e.StartDatetime.Format(report.ShortTimeLayout)
	if e.EndDatetime != nil {
		span += " - " + e.EndDatetime.Format(report.ShortTimeLayout)
	}

	line := fmt.Sprintf("  %-10s  %-19s  %8s", e.StartDatetime.Format(report.DateLayout), span, elapsed(store, e))
	if withProject {
		line += "  " + projectLabel(st, e.ProjectID)
	}
	if e.Notes != "" {
		line += "  " + e.Notes
	}
	line += fmt.Sprintf("  [%s]", util.ShortID(e.ID))

	switch {
	case e.IsRunning:
		color.New(color.FgGreen).Fprintln(out, line+"  running")
	case e.Skewed():
		color.New(color.FgRed).Fprintln(out, line+"  (ends before it starts)")
	default:
		fmt.Fprintln(out, line)
	}
}

// resolveEntry finds an entry by full id, or by a unique prefix of its id or short id
func resolveEntry(st tracker.State, ref string) (*models.TimeEntry, error) {
	if e, ok := st.Entry(ref); ok {
		return e, nil
	}

	var match *models.TimeEntry
	for i := range st.Entries {
		e := st.Entries[i]
		if strings.HasPrefix(e.ID, ref) || strings.HasPrefix(util.ShortID(e.ID), ref) {
			if match != nil {
				return nil, fmt.Errorf("entry reference %q matches more than one entry", ref)
			}
			match = &e
		}
	}
	if match == nil {
		return nil, fmt.Errorf("%w: %s", models.ErrEntryNotFound, ref)
	}
	return match, nil
}

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show the time log",
	Long:  "List completed time entries across all projects, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		store, _ := openStore()
		st := store.Snapshot()

		entries := st.CompletedEntries()
		if ref, _ := cmd.Flags().GetString("project"); ref != "" {
			project, err := st.FindProject(ref)
			if err != nil {
				return err
			}
			var filtered []models.TimeEntry
			for _, e := range entries {
				if e.ProjectID == project.ID {
					filtered = append(filtered, e)
				}
			}
			entries = filtered
		}

		if len(entries) == 0 {
			fmt.Fprintln(out, "No completed time entries yet.")
			return nil
		}

		fmt.Fprintf(out, "Time Log (%d entries):\n\n", len(entries))
		for _, e := range entries {
			printEntry(out, store, st, e, true)
		}
		return nil
	},
}

var entryCmd = &cobra.Command{
	Use:     "entry",
	Aliases: []string{"entries"},
	Short:   "Manage time entries",
	Long:    "Annotate and delete individual time entries",
}

var entryNoteCmd = &cobra.Command{
	Use:   "note [entry] [text]",
	Short: "Set the notes of an entry",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _ := openStore()

		entry, err := resolveEntry(store.Snapshot(), args[0])
		if err != nil {
			return err
		}

		if err := store.SetNotes(entry.ID, strings.Join(args[1:], " ")); err != nil {
			return fmt.Errorf("error updating entry: %w", err)
		}

		color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(), "Entry updated.")
		return nil
	},
}

var entryDeleteCmd = &cobra.Command{
	Use:   "delete [entry]",
	Short: "Delete a time entry",
	Long:  "Delete a completed time entry. Running entries must be stopped first.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		store, _ := openStore()
		st := store.Snapshot()

		entry, err := resolveEntry(st, args[0])
		if err != nil {
			return err
		}
		if entry.IsRunning {
			return fmt.Errorf("entry %s is still running; stop the timer first", entry.ID)
		}

		printEntry(out, store, st, *entry, true)
		deleted, err := store.DeleteEntry(entry.ID, confirmer(cmd))
		if err != nil {
			return fmt.Errorf("error deleting entry: %w", err)
		}
		if !deleted {
			fmt.Fprintln(out, "Entry deletion cancelled.")
			return nil
		}

		color.New(color.FgGreen).Fprintln(out, "Entry deleted successfully!")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(entryCmd)

	entryCmd.AddCommand(entryNoteCmd)
	entryCmd.AddCommand(entryDeleteCmd)

	logCmd.Flags().String("project", "", "Only show entries of this project")
	entryDeleteCmd.Flags().Bool("force", false, "Force deletion without confirmation")
}
