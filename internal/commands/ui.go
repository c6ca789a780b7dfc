package commands

import (
	"github.com/spf13/cobra"

	"ttrack/internal/ui"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the interactive dashboard",
	Long:  "Open a terminal dashboard to start and stop timers, manage projects, browse the time log and export it",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _ := openStore()
		return ui.Run(store, globalConfig)
	},
}

func init() {
	rootCmd.AddCommand(uiCmd)
}
