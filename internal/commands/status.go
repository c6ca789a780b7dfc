package commands

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ttrack/internal/models"
	"ttrack/internal/report"
	"ttrack/internal/util"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show running timers and totals",
	Long:  `Display the total hours logged, every running timer with its elapsed time, and per-project totals.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		store, _ := openStore()
		st := store.Snapshot()

		fmt.Fprintf(out, "Total Hours Logged: %s\n\n", util.FormatDuration(st.TotalHours()))

		// Running timers
		running := st.RunningEntries()
		if len(running) > 0 {
			fmt.Fprintln(out, "Running timers:")
			fmt.Fprintln(out, "  (use \"ttrack stop <project>\" to stop)")
			fmt.Fprintln(out)
			for _, e := range running {
				color.New(color.FgGreen).Fprintf(out, "\t%-24s %8s   since %s\n",
					projectLabel(st, e.ProjectID),
					elapsed(store, e),
					e.StartDatetime.Format(report.ShortTimeLayout))
			}
			fmt.Fprintln(out)
		}

		// Per-project totals
		projects := st.ActiveProjects()
		if len(projects) > 0 {
			fmt.Fprintln(out, "Projects:")
			fmt.Fprintln(out)
			for _, p := range projects {
				state := "stopped"
				if st.RunningEntry(p.ID) != nil {
					state = "running"
				}
				line := fmt.Sprintf("\t%-24s %8s   %s", util.Truncate(p.Name, 24), util.FormatDuration(st.ProjectTotalHours(p.ID)), state)
				if state == "running" {
					color.New(color.FgGreen).Fprintln(out, line)
				} else {
					fmt.Fprintln(out, line)
				}
			}
			fmt.Fprintln(out)
		}

		// Data problems
		var skewed, orphaned int
		for _, e := range st.Entries {
			if e.Skewed() {
				skewed++
			}
			if _, ok := st.Project(e.ProjectID); !ok {
				orphaned++
			}
		}
		if skewed > 0 {
			color.New(color.FgRed).Fprintf(out, "%d entries end before they start; their durations are shown as positive\n", skewed)
		}

		// Summary
		parts := []string{fmt.Sprintf("%d projects", len(projects))}
		if len(running) > 0 {
			parts = append(parts, fmt.Sprintf("%d running", len(running)))
		}
		parts = append(parts, fmt.Sprintf("%d entries", len(st.Entries)))
		if orphaned > 0 {
			parts = append(parts, fmt.Sprintf("%d without a project", orphaned))
		}
		fmt.Fprintf(out, "%s\n", strings.Join(parts, ", "))

		return nil
	},
}

var totalCmd = &cobra.Command{
	Use:   "total [project]",
	Short: "Show total hours",
	Long:  "Show the hours logged by completed entries, overall or for one project, optionally broken down by day or week",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		store, _ := openStore()
		st := store.Snapshot()

		groupBy, _ := cmd.Flags().GetString("by")
		by, err := report.ParseGroupBy(groupBy)
		if err != nil {
			return err
		}

		entries := st.CompletedEntries()
		total := st.TotalHours()
		if len(args) == 1 {
			project, err := st.FindProject(args[0])
			if err != nil {
				return err
			}
			total = st.ProjectTotalHours(project.ID)
			entries = st.ProjectEntries(project.ID)
		}

		fmt.Fprintln(out, util.FormatDuration(total))

		if by == report.GroupByNone {
			return nil
		}
		var completed []models.TimeEntry
		for _, e := range entries {
			if e.Completed() {
				completed = append(completed, e)
			}
		}
		for _, g := range report.GroupEntries(completed, by) {
			fmt.Fprintf(out, "  %-28s %8s\n", g.Title, util.FormatDuration(g.Hours))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(totalCmd)

	totalCmd.Flags().String("by", "", "Break down by daily, weekly or weekly-of-month")
}
