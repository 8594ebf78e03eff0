// Package output formats collected data for the terminal.
package output

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/opsgrove/hostreport/internal/hostinfo"
)

// Format represents the output format type.
type Format string

const (
	// FormatText is human-readable aligned format (default).
	FormatText Format = "text"
	// FormatJSON is pretty-printed JSON format.
	FormatJSON Format = "json"
	// FormatTable is tabular format with uppercase headers.
	FormatTable Format = "table"
	// FormatYAML is YAML format.
	FormatYAML Format = "yaml"
)

// ParseFormat converts a string to a Format type.
// Empty string defaults to FormatText.
// Returns error if the format is invalid.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatText, "":
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatTable:
		return FormatTable, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", errors.New("invalid --output format (expected text|json|table|yaml)")
	}
}

// Printer handles output formatting across different formats.
type Printer struct {
	w      io.Writer
	format Format
}

// NewPrinter creates a new Printer that writes to w in the given format.
func NewPrinter(w io.Writer, format Format) *Printer {
	return &Printer{
		w:      w,
		format: format,
	}
}

// Print outputs the collected sections in the configured format.
func (p *Printer) Print(ctx context.Context, sections []hostinfo.Section) error {
	switch p.format {
	case FormatJSON:
		return p.printJSON(ctx, sections)
	case FormatYAML:
		return p.printYAML(sections)
	case FormatTable:
		return p.printSections(sections, strings.ToUpper)
	case FormatText:
		return p.printSections(sections, func(s string) string { return s })
	default:
		return fmt.Errorf("unsupported format: %s", p.format)
	}
}

// printYAML outputs data as YAML.
func (p *Printer) printYAML(data interface{}) error {
	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	defer func() { _ = enc.Close() }()
	return enc.Encode(data)
}

// printSections renders each section as an aligned table, with its title and
// a blank line between sections. header transforms the column names.
func (p *Printer) printSections(sections []hostinfo.Section, header func(string) string) error {
	for i, s := range sections {
		if i > 0 {
			if _, err := fmt.Fprintln(p.w); err != nil {
				return err
			}
		}
		if s.Title != "" {
			if _, err := fmt.Fprintf(p.w, "%s\n", s.Title); err != nil {
				return err
			}
		}
		if s.Table.Empty() {
			if _, err := fmt.Fprintln(p.w, "(none)"); err != nil {
				return err
			}
			continue
		}
		if err := p.printTable(s.Table, header); err != nil {
			return err
		}
	}
	return nil
}

// printTable renders one table using text/tabwriter for alignment.
func (p *Printer) printTable(t hostinfo.Table, header func(string) string) error {
	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)

	for i, f := range t.Fields {
		if i > 0 {
			_, _ = fmt.Fprint(tw, "\t")
		}
		_, _ = fmt.Fprint(tw, header(f))
	}
	_, _ = fmt.Fprintln(tw)

	for _, row := range t.Rows {
		for i, f := range t.Fields {
			if i > 0 {
				_, _ = fmt.Fprint(tw, "\t")
			}
			_, _ = fmt.Fprint(tw, row[f])
		}
		_, _ = fmt.Fprintln(tw)
	}

	return tw.Flush()
}
