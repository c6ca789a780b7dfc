package report

import (
	"bufio"
	"io"
	"strings"
	"time"

	"ttrack/internal/tracker"
	"ttrack/internal/util"
)

// CSVHeader names the columns of the CSV export
var CSVHeader = []string{"Project", "Start Date", "Start Time", "End Date", "End Time", "Duration", "Notes"}

// CSVFilename returns time-tracker-YYYY-MM-DD.csv
func CSVFilename(now time.Time) string {
	return Filename("time-tracker", now, "csv")
}

// WriteCSV writes one row per completed entry in stored order.
// Every data cell is double-quoted.
func WriteCSV(w io.Writer, st tracker.State) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(strings.Join(CSVHeader, ",") + "\n"); err != nil {
		return err
	}

	for _, e := range st.Entries {
		if !e.Completed() {
			continue
		}
		row := []string{
			st.ProjectName(e.ProjectID),
			e.StartDatetime.Format(DateLayout),
			e.StartDatetime.Format(TimeLayout),
			e.EndDatetime.Format(DateLayout),
			e.EndDatetime.Format(TimeLayout),
			util.FormatDuration(e.Hours()),
			e.Notes,
		}
		for i, cell := range row {
			row[i] = quote(cell)
		}
		if _, err := bw.WriteString(strings.Join(row, ",") + "\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func quote(cell string) string {
	return `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
}
