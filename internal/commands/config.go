package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"ttrack/internal/config"
	"ttrack/internal/storage"
)

// configPath locates the config file; tests point it elsewhere
var configPath = config.GetGlobalConfigPath

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage ttrack configuration",
	Long:  "View and update ttrack configuration settings",
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Get configuration value",
	Long:  "Display specific configuration value or all configuration",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		// If no argument is provided, show all config
		if len(args) == 0 {
			fmt.Fprintln(out, "Current configuration:")
			for _, key := range config.Keys() {
				value, _ := globalConfig.Get(key)
				fmt.Fprintf(out, "%s: %s\n", key, value)
			}
			return nil
		}

		value, err := globalConfig.Get(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(out, value)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set configuration value",
	Long:  "Update a configuration setting such as data_dir or report_title",
	Example: `  ttrack config set data_dir ~/Documents/timesheets
  ttrack config set report_title "Lab Hours"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}

		// Read the file itself so environment overrides are not written back
		cfg, err := config.Load(path)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		old, _ := cfg.Get(args[0])
		if err := cfg.Set(args[0], args[1]); err != nil {
			return err
		}
		if err := cfg.Save(path); err != nil {
			return fmt.Errorf("failed to save configuration: %w", err)
		}

		updated, _ := cfg.Get(args[0])
		fmt.Fprintf(cmd.OutOrStdout(), "%s updated: %s -> %s\n", args[0], old, updated)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	Long:  "Create a new configuration file with default values",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		path, err := configPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}

		// Check if config file exists
		if _, err := os.Stat(path); err == nil {
			fmt.Fprintln(out, "Configuration file already exists.")
			fmt.Fprintln(out, "Use 'ttrack config set' to modify existing configuration.")
			return nil
		}

		cfg := config.Default(filepath.Dir(path))
		if dataDir, _ := cmd.Flags().GetString("data-dir"); dataDir != "" {
			if err := cfg.Set(config.KeyDataDir, dataDir); err != nil {
				return err
			}
		}

		if err := cfg.Save(path); err != nil {
			return fmt.Errorf("failed to save configuration: %w", err)
		}

		fmt.Fprintln(out, "Configuration initialized successfully.")
		fmt.Fprintf(out, "Configuration file created at: %s\n", path)
		return nil
	},
}

var configPathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Show configuration and data file paths",
	Long:  "Display paths to the configuration file and the data records",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		path, err := configPath()
		if err != nil {
			return err
		}
		st := storage.NewStorage(globalConfig.DataDir, logger)

		fmt.Fprintln(out, "Config paths:")
		fmt.Fprintf(out, "- Config file: %s\n", path)
		fmt.Fprintf(out, "- Data directory: %s\n", globalConfig.DataDir)

		// Check existence
		fmt.Fprintln(out, "\nExistence status:")
		fmt.Fprintf(out, "- Config file: %s\n", existence(fileExists(path)))
		fmt.Fprintf(out, "- %s record: %s\n", storage.KeyProjects, existence(st.Exists(storage.KeyProjects)))
		fmt.Fprintf(out, "- %s record: %s\n", storage.KeyTimeEntries, existence(st.Exists(storage.KeyTimeEntries)))
		return nil
	},
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func existence(ok bool) string {
	if ok {
		return "Exists"
	}
	return "Does not exist"
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathsCmd)

	configInitCmd.Flags().String("data-dir", "", "Directory for time tracking data")
}
