package report

import (
	"fmt"
	"io"
	"time"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
)

// PDFFilename returns time-tracker-report-YYYY-MM-DD.pdf
func PDFFilename(now time.Time) string {
	return Filename("time-tracker-report", now, "pdf")
}

var (
	accent    = color.Color{Red: 122, Green: 0, Blue: 60}
	stripe    = color.Color{Red: 250, Green: 250, Blue: 250}
	gridSizes = []uint{3, 2, 1, 1, 2, 3}
)

// WritePDF renders r as an A4 portrait PDF
func WritePDF(w io.Writer, r Report) error {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 10, 20)

	m.RegisterHeader(func() {
		m.Row(12, func() {
			m.Col(12, func() {
				m.Text(r.Title, props.Text{
					Top:   3,
					Style: consts.Bold,
					Align: consts.Left,
					Size:  16,
					Color: accent,
				})
			})
		})
	})

	summary := []string{
		fmt.Sprintf("Total Hours Logged: %s", r.TotalHours),
		fmt.Sprintf("Report Generated: %s", r.Generated),
		fmt.Sprintf("Total Entries: %d", r.EntryCount),
	}
	for _, line := range summary {
		m.Row(6, func() {
			m.Col(12, func() {
				m.Text(line, props.Text{Size: 10})
			})
		})
	}

	headers := []string{"Project", "Date", "Start", "End", "Duration", "Notes"}

	for _, sec := range r.Sections {
		if sec.Title != "" {
			m.Row(10, func() {
				m.Col(12, func() {
					m.Text(sec.Title, props.Text{
						Top:   5,
						Style: consts.Bold,
						Size:  12,
						Align: consts.Left,
					})
				})
			})
		} else {
			m.Row(5, func() {})
		}

		rows := make([][]string, 0, len(sec.Rows))
		for _, row := range sec.Rows {
			rows = append(rows, []string{row.Project, row.Date, row.StartTime, row.EndTime, row.Duration, row.Notes})
		}

		m.TableList(headers, rows, props.TableList{
			HeaderProp: props.TableListContent{
				Size:      9,
				GridSizes: gridSizes,
			},
			ContentProp: props.TableListContent{
				Size:      8,
				GridSizes: gridSizes,
			},
			Align:                consts.Left,
			AlternatedBackground: &stripe,
			HeaderContentSpace:   1,
			Line:                 false,
		})

		if sec.Title != "" {
			m.Row(8, func() {
				m.Col(12, func() {
					m.Text(fmt.Sprintf("Subtotal: %s", sec.Subtotal), props.Text{
						Style: consts.Bold,
						Align: consts.Right,
						Size:  10,
					})
				})
			})
		}
	}

	buf, err := m.Output()
	if err != nil {
		return fmt.Errorf("failed to render pdf: %w", err)
	}
	_, err = w.Write(buf.Bytes())
	return err
}
