// Package output provides utilities for printing calculator results on the command line.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/finance-calculators/internal/catalog"
	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/iwvelando/finance-calculators/pkg/validation"
)

// Write prints view in the named output format.
func Write(w io.Writer, outputFormat, title string, view catalog.View) error {
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}

	switch outputFormat {
	case constants.OutputFormatCSV:
		return CsvFormat(w, view)
	case constants.OutputFormatJSON:
		return JSONFormat(w, view)
	default:
		return PrettyFormat(w, title, view)
	}
}

// PrettyFormat outputs a human-readable rather than machine-readable listing.
func PrettyFormat(w io.Writer, title string, view catalog.View) error {
	fields := view.Summary()
	width := 0
	for _, f := range fields {
		if n := len([]rune(f.Label)); n > width {
			width = n
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- %s ---\n", title)
	for _, f := range fields {
		pad := strings.Repeat(" ", width-len([]rune(f.Label)))
		fmt.Fprintf(&b, "%s%s | %s\n", f.Label, pad, f.Value)
	}

	if table, ok := view.(catalog.Table); ok && len(table.Records()) > 0 {
		b.WriteString("\n")
		b.WriteString(strings.Join(table.Header(), " | "))
		b.WriteString("\n")
		for _, record := range table.Records() {
			b.WriteString(strings.Join(record, " | "))
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// CsvFormat outputs in comma-separated value format: one key,label,value
// record per summary field, followed by the per-period table when the view
// has one.
func CsvFormat(w io.Writer, view catalog.View) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"key", "label", "value"}); err != nil {
		return err
	}
	for _, f := range view.Summary() {
		if err := cw.Write([]string{f.Key, f.Label, f.Value}); err != nil {
			return err
		}
	}

	if table, ok := view.(catalog.Table); ok && len(table.Records()) > 0 {
		cw.Flush()
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
		if err := cw.Write(table.Header()); err != nil {
			return err
		}
		if err := cw.WriteAll(table.Records()); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// JSONFormat outputs the view with its original field names.
func JSONFormat(w io.Writer, view catalog.View) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(view)
}
