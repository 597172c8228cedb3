package exporter

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"hwreport/pkg/contracts/domain"
)

// ErrSheetNotFound is returned when the report workbook lacks the target sheet
var ErrSheetNotFound = errors.New("sheet not found")

// Default report target
const (
	DefaultSheet = "weekly"
	DefaultRange = "A:R"
)

// WorkbookWriter writes the reporting table into an existing workbook. The
// rest of the workbook (other sheets, formulas, pivots) is left intact.
type WorkbookWriter struct {
	Path  string
	Sheet string
	Range string
}

// NewWorkbookWriter creates a writer for the given workbook target
func NewWorkbookWriter(path, sheet, columns string) *WorkbookWriter {
	if sheet == "" {
		sheet = DefaultSheet
	}
	if columns == "" {
		columns = DefaultRange
	}
	return &WorkbookWriter{Path: path, Sheet: sheet, Range: columns}
}

// ParseColumnRange converts "A:R" into 1-based column numbers
func ParseColumnRange(columns string) (int, int, error) {
	parts := strings.Split(columns, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid column range %q", columns)
	}
	first, err := excelize.ColumnNameToNumber(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid column range %q: %w", columns, err)
	}
	last, err := excelize.ColumnNameToNumber(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid column range %q: %w", columns, err)
	}
	if last < first {
		return 0, 0, fmt.Errorf("invalid column range %q: last column before first", columns)
	}
	return first, last, nil
}

// Write clears the column range, then writes the header and rows starting in
// the first column of the range, and saves the workbook in place
func (w *WorkbookWriter) Write(rows []domain.Row) error {
	first, last, err := ParseColumnRange(w.Range)
	if err != nil {
		return err
	}
	header := domain.CanonicalColumns()
	if len(header) > last-first+1 {
		return fmt.Errorf("column range %s is narrower than the %d output columns", w.Range, len(header))
	}

	f, err := excelize.OpenFile(w.Path)
	if err != nil {
		return fmt.Errorf("failed to open report workbook %s: %w", w.Path, err)
	}
	defer f.Close()

	if idx, err := f.GetSheetIndex(w.Sheet); err != nil || idx < 0 {
		return fmt.Errorf("%s in %s: %w", w.Sheet, w.Path, ErrSheetNotFound)
	}

	cleared, err := w.clear(f, first, last)
	if err != nil {
		return err
	}

	start, err := excelize.CoordinatesToCellName(first, 1)
	if err != nil {
		return err
	}
	headerCells := make([]interface{}, len(header))
	for i, h := range header {
		headerCells[i] = h
	}
	if err := f.SetSheetRow(w.Sheet, start, &headerCells); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(first, i+2)
		if err != nil {
			return err
		}
		values := Cells(r)
		if err := f.SetSheetRow(w.Sheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if err := f.Save(); err != nil {
		return fmt.Errorf("failed to save report workbook %s: %w", w.Path, err)
	}

	slog.Info("Report workbook written",
		slog.String("path", w.Path),
		slog.String("sheet", w.Sheet),
		slog.String("range", w.Range),
		slog.Int("rows_cleared", cleared),
		slog.Int("rows_written", len(rows)))
	return nil
}

// clear blanks every populated row of the column range and returns how many
// rows it touched
func (w *WorkbookWriter) clear(f *excelize.File, first, last int) (int, error) {
	existing, err := f.GetRows(w.Sheet)
	if err != nil {
		return 0, fmt.Errorf("failed to read sheet %s: %w", w.Sheet, err)
	}
	for r := 1; r <= len(existing); r++ {
		for c := first; c <= last; c++ {
			cell, err := excelize.CoordinatesToCellName(c, r)
			if err != nil {
				return 0, err
			}
			if err := f.SetCellValue(w.Sheet, cell, nil); err != nil {
				return 0, fmt.Errorf("failed to clear %s: %w", cell, err)
			}
		}
	}
	return len(existing), nil
}
