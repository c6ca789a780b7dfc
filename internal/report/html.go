package report

import (
	"html/template"
	"io"
	"time"
)

// DocumentTitle names the HTML document; the configured report title is its heading
const DocumentTitle = "Time Tracker Report"

// PrintDelay is how long the report waits after loading before opening the print dialog
const PrintDelay = 250 * time.Millisecond

// HTMLFilename returns time-tracker-report-YYYY-MM-DD.html
func HTMLFilename(now time.Time) string {
	return Filename("time-tracker-report", now, "html")
}

var htmlTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>{{.DocumentTitle}}</title>
  <style>
    body { font-family: Arial, sans-serif; padding: 40px; color: #333; }
    h1 { color: #7A003C; margin-bottom: 10px; }
    h2 { color: #4E4E4E; font-size: 1.1em; margin-top: 30px; }
    .summary { background-color: #f5f5f5; padding: 20px; margin: 20px 0; border-radius: 8px; border-left: 4px solid #7A003C; }
    table { width: 100%; border-collapse: collapse; margin-top: 20px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
    th { background-color: #7A003C; color: white; padding: 12px; text-align: left; font-weight: 600; }
    td { padding: 10px 12px; border-bottom: 1px solid #e0e0e0; }
    tr:nth-child(even) { background-color: #fafafa; }
    .project-name { color: #7A003C; font-weight: 600; }
    .subtotal { text-align: right; font-weight: 600; margin-top: 8px; }
    .skewed { color: #b00020; }
    @media print {
      body { padding: 20px; }
      .no-print { display: none; }
    }
  </style>
</head>
<body>
  <h1>{{.Title}}</h1>
  <div class="summary">
    <p><strong>Total Hours Logged:</strong> {{.TotalHours}}</p>
    <p><strong>Report Generated:</strong> {{.Generated}}</p>
    <p><strong>Total Entries:</strong> {{.EntryCount}}</p>
  </div>
{{- range .Sections}}
  {{- if .Title}}
  <h2>{{.Title}}</h2>
  {{- end}}
  <table>
    <thead>
      <tr>
        <th>Project</th>
        <th>Date</th>
        <th>Start Time</th>
        <th>End Time</th>
        <th>Duration</th>
        <th>Notes</th>
      </tr>
    </thead>
    <tbody>
    {{- range .Rows}}
      <tr>
        <td class="project-name">{{.Project}}</td>
        <td>{{.Date}}</td>
        <td>{{.StartTime}}</td>
        <td>{{.EndTime}}</td>
        <td{{if .Skewed}} class="skewed"{{end}}><strong>{{.Duration}}</strong></td>
        <td>{{.Notes}}</td>
      </tr>
    {{- end}}
    </tbody>
  </table>
  {{- if .Title}}
  <p class="subtotal">Subtotal: {{.Subtotal}}</p>
  {{- end}}
{{- end}}
  <script>
    window.addEventListener("load", function () {
      setTimeout(function () { window.print(); }, {{.PrintDelayMS}});
    });
  </script>
</body>
</html>
`))

type htmlData struct {
	Report
	DocumentTitle string
	PrintDelayMS  int64
}

// WriteHTML renders r as a standalone document that opens the print dialog shortly after loading
func WriteHTML(w io.Writer, r Report) error {
	return htmlTemplate.Execute(w, htmlData{
		Report:        r,
		DocumentTitle: DocumentTitle,
		PrintDelayMS:  PrintDelay.Milliseconds(),
	})
}
