package commands

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ttrack/internal/report"
	"ttrack/internal/tracker"
)

// openFile hands a file to the platform's default application
var openFile = func(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	return cmd.Start()
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export completed entries",
	Long:  "Export completed time entries as a CSV spreadsheet, a printable HTML report, or a PDF report",
}

var exportCSVCmd = &cobra.Command{
	Use:   "csv",
	Short: "Export entries as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _ := openStore()
		name := report.CSVFilename(store.Now())
		return writeExport(cmd, name, func(w io.Writer) error {
			return report.WriteCSV(w, store.Snapshot())
		})
	},
}

var exportHTMLCmd = &cobra.Command{
	Use:   "html",
	Short: "Export a printable HTML report",
	Long:  "Write a standalone HTML report that opens the print dialog when loaded, for printing or saving as PDF",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _ := openStore()
		r, err := buildReport(cmd, store)
		if err != nil {
			return err
		}
		return writeExport(cmd, report.HTMLFilename(store.Now()), func(w io.Writer) error {
			return report.WriteHTML(w, r)
		})
	},
}

var exportPDFCmd = &cobra.Command{
	Use:   "pdf",
	Short: "Export a PDF report",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _ := openStore()
		r, err := buildReport(cmd, store)
		if err != nil {
			return err
		}
		return writeExport(cmd, report.PDFFilename(store.Now()), func(w io.Writer) error {
			return report.WritePDF(w, r)
		})
	},
}

func buildReport(cmd *cobra.Command, store *tracker.Store) (report.Report, error) {
	groupBy, _ := cmd.Flags().GetString("group-by")
	by, err := report.ParseGroupBy(groupBy)
	if err != nil {
		return report.Report{}, err
	}
	return report.Build(store.Snapshot(), globalConfig.ReportTitle, store.Now(), by), nil
}

// writeExport creates name in the --out directory, fills it with render and optionally opens it
func writeExport(cmd *cobra.Command, name string, render func(io.Writer) error) error {
	outDir, _ := cmd.Flags().GetString("out")
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}

	path := filepath.Join(outDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", path, err)
	}

	if err := render(f); err != nil {
		f.Close()
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}

	logger.Info("export written", "path", path)
	color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Exported %s\n", path)

	if open, _ := cmd.Flags().GetBool("open"); open {
		if err := openFile(path); err != nil {
			return fmt.Errorf("error opening %s: %w", path, err)
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.AddCommand(exportCSVCmd)
	exportCmd.AddCommand(exportHTMLCmd)
	exportCmd.AddCommand(exportPDFCmd)

	exportCmd.PersistentFlags().String("out", ".", "Directory to write the export to")
	exportCmd.PersistentFlags().Bool("open", false, "Open the exported file with the default application")

	exportHTMLCmd.Flags().String("group-by", "none", "Group rows by daily, weekly or weekly-of-month")
	exportPDFCmd.Flags().String("group-by", "none", "Group rows by daily, weekly or weekly-of-month")
}
