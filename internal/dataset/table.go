package dataset

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingColumn is returned when a required column is not in a table header
var ErrMissingColumn = errors.New("missing column")

// Table is a header plus rows of string cells
type Table struct {
	Name    string
	Columns []string
	Rows    [][]string

	index map[string]int
}

// New creates a table. Rows shorter than the header are allowed; the
// missing trailing cells read as missing values.
func New(name string, columns []string, rows [][]string) *Table {
	t := &Table{
		Name:    name,
		Columns: columns,
		Rows:    rows,
		index:   make(map[string]int, len(columns)),
	}
	for i, col := range columns {
		// first occurrence wins on duplicated headers
		if _, exists := t.index[col]; !exists {
			t.index[col] = i
		}
	}
	return t
}

// Len returns the number of data rows
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Has reports whether the header contains col
func (t *Table) Has(col string) bool {
	_, ok := t.index[col]
	return ok
}

// Require checks that every named column is present
func (t *Table) Require(cols ...string) error {
	var missing []string
	for _, col := range cols {
		if !t.Has(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%s: %w: %s", t.Name, ErrMissingColumn, strings.Join(missing, ", "))
	}
	return nil
}

// Value returns the cell at (row, col). ok is false when the column does not
// exist, the row is too short or the cell is empty.
func (t *Table) Value(row int, col string) (string, bool) {
	i, exists := t.index[col]
	if !exists || row < 0 || row >= len(t.Rows) {
		return "", false
	}
	cells := t.Rows[row]
	if i >= len(cells) || cells[i] == "" {
		return "", false
	}
	return cells[i], true
}

// Concat stacks tables vertically. The result header is the union of all
// headers in first-seen order; cells of columns a table lacks are empty.
func Concat(name string, tables ...*Table) *Table {
	var columns []string
	seen := make(map[string]bool)
	total := 0
	for _, t := range tables {
		if t == nil {
			continue
		}
		total += len(t.Rows)
		for _, col := range t.Columns {
			if !seen[col] {
				seen[col] = true
				columns = append(columns, col)
			}
		}
	}

	rows := make([][]string, 0, total)
	for _, t := range tables {
		if t == nil {
			continue
		}
		for r := range t.Rows {
			out := make([]string, len(columns))
			for c, col := range columns {
				if v, ok := t.Value(r, col); ok {
					out[c] = v
				}
			}
			rows = append(rows, out)
		}
	}

	return New(name, columns, rows)
}
