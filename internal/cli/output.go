package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"

	"strata/internal/engine"
)

// OutputFormat represents the output format for CLI commands
type OutputFormat string

const (
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
)

const (
	timeFormat   = "2006-01-02 15:04:05"
	maxCellWidth = 40
)

// Printer renders command results in the selected output format.
type Printer struct {
	Format OutputFormat
	Out    io.Writer
}

// NewPrinter creates a printer writing to out
func NewPrinter(format OutputFormat, out io.Writer) *Printer {
	return &Printer{Format: format, Out: out}
}

// Snapshots renders grouped snapshot listings
func (p *Printer) Snapshots(groups []engine.SnapshotGroup, long bool) error {
	switch p.Format {
	case OutputFormatJSON:
		return p.printJSON(groups)
	case OutputFormatYAML:
		return p.printYAML(groups)
	case OutputFormatTable:
		return p.snapshotTables(groups, long)
	default:
		return fmt.Errorf("unsupported output format: %s", p.Format)
	}
}

// printJSON renders any value as indented JSON
func (p *Printer) printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to convert to JSON: %w", err)
	}
	fmt.Fprintln(p.Out, string(data))
	return nil
}

// printYAML converts a value to YAML via its JSON representation so that
// field names match the JSON output
func (p *Printer) printYAML(v interface{}) error {
	jsonData, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to convert to JSON: %w", err)
	}

	var data interface{}
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	yamlData, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to convert to YAML: %w", err)
	}

	fmt.Fprint(p.Out, string(yamlData))
	return nil
}

// snapshotTables formats snapshot groups as professional tables
func (p *Printer) snapshotTables(groups []engine.SnapshotGroup, long bool) error {
	total := 0
	for _, group := range groups {
		total += len(group.Snapshots)
	}
	if total == 0 {
		fmt.Fprintln(p.Out, text.FgYellow.Sprint("No snapshots found"))
		return nil
	}

	for _, group := range groups {
		if !group.GroupBy.IsEmpty() {
			fmt.Fprintf(p.Out, "%s\n", text.FgHiBlue.Sprint("snapshots for "+group.Title()))
		}
		if long {
			p.snapshotDetails(group.Snapshots)
		} else {
			p.snapshotTable(group.Snapshots)
		}
	}

	fmt.Fprintf(p.Out, "\n%s %s snapshot(s)\n",
		text.FgHiBlue.Sprint("Total:"),
		text.FgHiWhite.Sprint(strconv.Itoa(total)))
	return nil
}

// snapshotTable renders the compact one-row-per-snapshot view
func (p *Printer) snapshotTable(snapshots []engine.Snapshot) {
	t := table.NewWriter()
	t.SetOutputMirror(p.Out)
	t.SetStyle(table.StyleRounded)

	columns := []string{"ID", "Time", "Host", "Tags", "Paths", "Files", "Dirs", "Size"}
	headers := make([]interface{}, len(columns))
	for i, col := range columns {
		headers[i] = text.FgHiCyan.Sprint(strings.ToUpper(col))
	}
	t.AppendHeader(headers)

	for _, sn := range snapshots {
		files, dirs, size := summaryCells(sn.Summary)
		t.AppendRow(table.Row{
			sn.DisplayID(),
			sn.Time.Local().Format(timeFormat),
			sn.Hostname,
			listCell(sn.Tags),
			listCell(sn.Paths),
			files,
			dirs,
			size,
		})
	}

	t.Render()
}

// snapshotDetails renders the long view, one key-value table per snapshot
func (p *Printer) snapshotDetails(snapshots []engine.Snapshot) {
	for _, sn := range snapshots {
		t := table.NewWriter()
		t.SetOutputMirror(p.Out)
		t.SetStyle(table.StyleRounded)

		appendDetail(t, "Snapshot", sn.ID)
		appendDetail(t, "Time", sn.Time.Local().Format(timeFormat))
		appendDetail(t, "Host", sn.Hostname)
		if sn.Username != "" {
			appendDetail(t, "User", sn.Username)
		}
		if len(sn.Tags) > 0 {
			appendDetail(t, "Tags", strings.Join(sn.Tags, ", "))
		}
		appendDetail(t, "Paths", strings.Join(sn.Paths, ", "))
		if sn.ProgramVersion != "" {
			appendDetail(t, "Program", sn.ProgramVersion)
		}
		if sn.Summary != nil {
			appendDetail(t, "Files", strconv.FormatInt(sn.Summary.TotalFiles(), 10))
			appendDetail(t, "Dirs", strconv.FormatInt(sn.Summary.TotalDirs(), 10))
			appendDetail(t, "Processed", humanize.IBytes(sn.Summary.TotalBytesProcessed))
			appendDetail(t, "Added", humanize.IBytes(sn.Summary.DataAdded))
			if !sn.Summary.BackupStart.IsZero() && !sn.Summary.BackupEnd.IsZero() {
				duration := sn.Summary.BackupEnd.Sub(sn.Summary.BackupStart).Round(time.Second)
				appendDetail(t, "Duration", duration.String())
			}
		}

		t.Render()
	}
}

func appendDetail(t table.Writer, key, value string) {
	t.AppendRow(table.Row{text.FgYellow.Sprint(key), value})
}

// summaryCells formats the statistics columns, "-" when the engine did not
// record a summary for the snapshot
func summaryCells(summary *engine.SnapshotSummary) (files, dirs, size string) {
	if summary == nil {
		dash := text.FgHiBlack.Sprint("-")
		return dash, dash, dash
	}
	return strconv.FormatInt(summary.TotalFiles(), 10),
		strconv.FormatInt(summary.TotalDirs(), 10),
		humanize.IBytes(summary.TotalBytesProcessed)
}

// listCell joins list values into a single cell, truncated to keep rows
// from wrapping
func listCell(values []string) string {
	if len(values) == 0 {
		return text.FgHiBlack.Sprint("-")
	}
	joined := strings.Join(values, ", ")
	if runewidth.StringWidth(joined) <= maxCellWidth {
		return joined
	}
	return runewidth.Truncate(joined, maxCellWidth, "...")
}
