// Package view provides output formatting for lnk commands.
package view

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Format represents an output format.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatPlain Format = "plain"
)

// ValidFormats returns the accepted output format names.
func ValidFormats() []string {
	return []string{string(FormatTable), string(FormatJSON), string(FormatPlain)}
}

// ValidateFormat checks that format names a known output format.
// The empty string is accepted and means the default.
func ValidateFormat(format string) error {
	switch Format(format) {
	case "", FormatTable, FormatJSON, FormatPlain:
		return nil
	default:
		return fmt.Errorf("invalid output format %q: must be one of %s",
			format, strings.Join(ValidFormats(), ", "))
	}
}

// Renderer renders data in a specific format.
type Renderer struct {
	format Format
	writer io.Writer
}

// NewRenderer creates a renderer for the given format. noColor
// disables ANSI colors process-wide.
func NewRenderer(format Format, noColor bool) *Renderer {
	if noColor {
		color.NoColor = true
	}
	if format == "" {
		format = FormatTable
	}
	return &Renderer{
		format: format,
		writer: os.Stdout,
	}
}

// SetWriter sets the output writer. Tests use this to capture output.
func (r *Renderer) SetWriter(w io.Writer) {
	r.writer = w
}

// RenderTable renders rows under headers. JSON format emits one object
// per row keyed by lowercased header; plain format emits tab-separated
// rows without headers.
func (r *Renderer) RenderTable(headers []string, rows [][]string) error {
	switch r.format {
	case FormatJSON:
		return r.renderTableAsJSON(headers, rows)
	case FormatPlain:
		for _, row := range rows {
			fmt.Fprintln(r.writer, strings.Join(row, "\t"))
		}
		return nil
	}

	widths := columnWidths(headers, rows)
	bold := color.New(color.Bold)
	for i, h := range headers {
		if i > 0 {
			fmt.Fprint(r.writer, "  ")
		}
		bold.Fprintf(r.writer, "%-*s", widths[i], h)
	}
	fmt.Fprintln(r.writer)

	for _, row := range rows {
		for i, val := range row {
			if i > 0 {
				fmt.Fprint(r.writer, "  ")
			}
			fmt.Fprintf(r.writer, "%-*s", widths[i], val)
		}
		fmt.Fprintln(r.writer)
	}
	return nil
}

func (r *Renderer) renderTableAsJSON(headers []string, rows [][]string) error {
	result := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		item := make(map[string]string)
		for i, header := range headers {
			if i < len(row) {
				item[strings.ToLower(header)] = row[i]
			}
		}
		result = append(result, item)
	}
	return r.RenderJSON(result)
}

// columnWidths returns the widest cell per column, headers included.
func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, val := range row {
			if i < len(widths) && len(val) > widths[i] {
				widths[i] = len(val)
			}
		}
	}
	return widths
}

// RenderValues renders a flat list of strings. Plain and table formats
// emit one value per line (table adds a bold header); JSON emits an
// array.
func (r *Renderer) RenderValues(header string, values []string) error {
	switch r.format {
	case FormatJSON:
		if values == nil {
			values = []string{}
		}
		return r.RenderJSON(values)
	case FormatTable:
		bold := color.New(color.Bold)
		bold.Fprintln(r.writer, header)
	}
	for _, v := range values {
		fmt.Fprintln(r.writer, v)
	}
	return nil
}

// RenderJSON renders an object as indented JSON.
func (r *Renderer) RenderJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(r.writer, string(data))
	return nil
}

// RenderText renders plain text.
func (r *Renderer) RenderText(text string) {
	fmt.Fprintln(r.writer, text)
}

// Success prints a success message.
func (r *Renderer) Success(msg string) {
	green := color.New(color.FgGreen)
	green.Fprintln(r.writer, "✓ "+msg)
}
