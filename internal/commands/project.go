package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ttrack/internal/util"
)

var projectCmd = &cobra.Command{
	Use:     "project",
	Aliases: []string{"projects"},
	Short:   "Manage projects",
	Long:    "Create, list, update, and delete projects",
}

var projectCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new project",
	Long:  "Create a new project to track time against",
	Example: `  ttrack project create --name "Grant Writing" --description "NSERC proposal"
  ttrack project create    # prompts for name and description`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		store, _ := openStore()

		name, _ := cmd.Flags().GetString("name")
		description, _ := cmd.Flags().GetString("description")

		// If name wasn't provided via flag, prompt for it
		in := newInputReader(cmd)
		if name == "" {
			name = in.Prompt("Project name: ")
			if !cmd.Flags().Changed("description") {
				description = in.Prompt("Project description (optional): ")
			}
		}

		project, err := store.AddProject(name, description)
		if err != nil {
			return fmt.Errorf("error creating project: %w", err)
		}

		color.New(color.FgGreen).Fprintln(out, "Project created successfully!")
		fmt.Fprintf(out, "ID: %s\n", project.ID)
		fmt.Fprintf(out, "Name: %s\n", project.Name)
		fmt.Fprintf(out, "Description: %s\n", project.Description)
		return nil
	},
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	Long:  "List active projects with their logged totals and timer state",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		store, _ := openStore()
		st := store.Snapshot()

		projects := st.ActiveProjects()
		if all, _ := cmd.Flags().GetBool("all"); all {
			projects = st.Projects
		}

		if len(projects) == 0 {
			fmt.Fprintln(out, "No projects found. Create one with 'ttrack project create'")
			return nil
		}

		fmt.Fprintf(out, "Projects:\n\n")
		for i, project := range projects {
			fmt.Fprintf(out, "%d. %s (ID: %s)\n", i+1, project.Name, project.ID)
			if project.Description != "" {
				fmt.Fprintf(out, "   Description: %s\n", project.Description)
			}
			fmt.Fprintf(out, "   Total: %s\n", util.FormatDuration(st.ProjectTotalHours(project.ID)))
			if running := st.RunningEntry(project.ID); running != nil {
				color.New(color.FgGreen).Fprintf(out, "   Running for %s\n", elapsed(store, *running))
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}

var projectShowCmd = &cobra.Command{
	Use:   "show [project]",
	Short: "Show project details",
	Long:  "Show a project and its time entries, newest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		store, _ := openStore()
		st := store.Snapshot()

		project, err := st.FindProject(args[0])
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "Project Details:\n\n")
		fmt.Fprintf(out, "ID: %s\n", project.ID)
		fmt.Fprintf(out, "Name: %s\n", project.Name)
		fmt.Fprintf(out, "Description: %s\n", project.Description)
		fmt.Fprintf(out, "Total: %s\n", util.FormatDuration(st.ProjectTotalHours(project.ID)))

		entries := st.ProjectEntries(project.ID)
		if len(entries) == 0 {
			fmt.Fprintln(out, "\nNo time entries yet. Start one with 'ttrack start'")
			return nil
		}

		fmt.Fprintf(out, "\nTime Entries:\n")
		for _, e := range entries {
			printEntry(out, store, st, e, false)
		}
		return nil
	},
}

var projectUpdateCmd = &cobra.Command{
	Use:   "update [project]",
	Short: "Update project",
	Long:  "Update a project's name and description",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		store, _ := openStore()

		project, err := store.Snapshot().FindProject(args[0])
		if err != nil {
			return err
		}

		name, _ := cmd.Flags().GetString("name")
		description, _ := cmd.Flags().GetString("description")

		// If neither name nor description provided, prompt for updating
		if !cmd.Flags().Changed("name") && !cmd.Flags().Changed("description") {
			in := newInputReader(cmd)
			name = in.Prompt(fmt.Sprintf("Name [%s]: ", project.Name))
			description = in.Prompt(fmt.Sprintf("Description [%s]: ", project.Description))

			if name == "" && description == "" {
				fmt.Fprintln(out, "No changes to make. Project remains unchanged.")
				return nil
			}
			if description == "" {
				description = project.Description
			}
		} else if !cmd.Flags().Changed("description") {
			description = project.Description
		}

		// Use existing name if not updating
		if name == "" && !cmd.Flags().Changed("name") {
			name = project.Name
		}

		updated, err := store.UpdateProject(project.ID, name, description)
		if err != nil {
			return fmt.Errorf("error updating project: %w", err)
		}

		color.New(color.FgGreen).Fprintln(out, "Project updated successfully!")
		fmt.Fprintf(out, "ID: %s\n", updated.ID)
		fmt.Fprintf(out, "Name: %s\n", updated.Name)
		fmt.Fprintf(out, "Description: %s\n", updated.Description)
		return nil
	},
}

var projectDeleteCmd = &cobra.Command{
	Use:   "delete [project]",
	Short: "Delete project",
	Long:  "Delete a project. Its time entries are kept and show up as belonging to an unknown project.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		store, _ := openStore()

		project, err := store.Snapshot().FindProject(args[0])
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "Project: %s (%s)\n", project.Name, project.ID)
		deleted, err := store.DeleteProject(project.ID, confirmer(cmd))
		if err != nil {
			return fmt.Errorf("error deleting project: %w", err)
		}
		if !deleted {
			fmt.Fprintln(out, "Project deletion cancelled.")
			return nil
		}

		color.New(color.FgGreen).Fprintln(out, "Project deleted successfully!")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(projectCmd)

	projectCmd.AddCommand(projectCreateCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectShowCmd)
	projectCmd.AddCommand(projectUpdateCmd)
	projectCmd.AddCommand(projectDeleteCmd)

	projectCreateCmd.Flags().String("name", "", "Project name")
	projectCreateCmd.Flags().String("description", "", "Project description")

	projectListCmd.Flags().Bool("all", false, "Include inactive projects")

	projectUpdateCmd.Flags().String("name", "", "Project name")
	projectUpdateCmd.Flags().String("description", "", "Project description")

	projectDeleteCmd.Flags().Bool("force", false, "Force deletion without confirmation")
}
