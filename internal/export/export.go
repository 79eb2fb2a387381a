// Package export writes birthday lists to interchange formats.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/jeanpaul/birthday/internal/birthday"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatXLSX Format = "xlsx"
)

func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatYAML, FormatXLSX:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown export format %q (json, yaml, xlsx)", s)
	}
}

// Write renders the mapping in the requested format. JSON output matches the
// backing-file shape exactly.
func Write(w io.Writer, users map[string][]birthday.Birthday, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(users)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(users)
	case FormatXLSX:
		return writeXLSX(w, users)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}

// writeXLSX produces a single "Birthdays" sheet, one row per entry, grouped
// by user and ordered by calendar date within a user.
func writeXLSX(w io.Writer, users map[string][]birthday.Birthday) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Birthdays"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("xlsx sheet: %w", err)
	}
	if err := f.SetSheetRow(sheet, "A1", &[]any{"User", "Name", "Day", "Month"}); err != nil {
		return fmt.Errorf("xlsx header: %w", err)
	}

	ids := make([]string, 0, len(users))
	for u := range users {
		ids = append(ids, u)
	}
	sort.Strings(ids)

	row := 2
	for _, u := range ids {
		for _, b := range birthday.SortCalendar(users[u]) {
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return fmt.Errorf("xlsx cell: %w", err)
			}
			if err := f.SetSheetRow(sheet, cell, &[]any{u, b.Name, b.Day, b.Month}); err != nil {
				return fmt.Errorf("xlsx row %d: %w", row, err)
			}
			row++
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}
	return nil
}
