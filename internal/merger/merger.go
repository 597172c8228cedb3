// Package merger assembles the final reporting table from the per-vendor
// rows and the substitute rows.
package merger

import (
	"fmt"

	"hwreport/internal/dataset"
	"hwreport/pkg/contracts/domain"
)

// DefaultMinFiscalYear is the first fiscal year kept in the report
const DefaultMinFiscalYear = 2021

// Combine concatenates row sets in argument order. Rows are neither
// deduplicated nor sorted.
func Combine(parts ...[]domain.Row) []domain.Row {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]domain.Row, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// FilterFiscalYear keeps rows with a known fiscal year of at least min.
// Relative order is preserved.
func FilterFiscalYear(rows []domain.Row, min int) []domain.Row {
	out := make([]domain.Row, 0, len(rows))
	for _, r := range rows {
		if r.FY.AtLeast(min) {
			out = append(out, r)
		}
	}
	return out
}

// Merge is Combine followed by FilterFiscalYear, with GSD rows first, then
// GFK, then the substitute rows.
func Merge(gsd, gfk, substitute []domain.Row, min int) []domain.Row {
	return FilterFiscalYear(Combine(gsd, gfk, substitute), min)
}

// FromTable decodes a table that is already in reporting shape. Columns are
// matched by name; unknown columns are ignored and missing ones leave the
// field empty.
func FromTable(t *dataset.Table) ([]domain.Row, error) {
	if err := t.Require(domain.ColSource, domain.ColPlatform, domain.ColFY); err != nil {
		return nil, err
	}

	rows := make([]domain.Row, 0, t.Len())
	for r := 0; r < t.Len(); r++ {
		text := func(col string) string {
			v, _ := t.Value(r, col)
			return v
		}

		row := domain.Row{
			Source:    domain.Source(text(domain.ColSource)),
			SKU:       text(domain.ColSKU),
			Platform:  domain.Platform(text(domain.ColPlatform)),
			Bundle:    text(domain.ColBundle),
			HDSize:    text(domain.ColHDSize),
			Class:     text(domain.ColClass),
			Country:   text(domain.ColCountry),
			Territory: text(domain.ColTerritory),
			Month:     text(domain.ColMonthNew),
		}

		var err error
		if row.FY, err = dataset.ParseInt(text(domain.ColFY)); err != nil {
			return nil, decodeError(t, r, domain.ColFY, err)
		}
		week, err := dataset.ParseInt(text(domain.ColWeek))
		if err != nil {
			return nil, decodeError(t, r, domain.ColWeek, err)
		}
		row.Week = week.Value

		floats := []struct {
			col string
			dst *domain.OptionalFloat
		}{
			{domain.ColPanelUnits, &row.PanelUnits},
			{domain.ColPanelValueEuro, &row.PanelValueEuro},
			{domain.ColExtrapolation, &row.Extrapolation},
			{domain.ColUnits100, &row.Units100},
			{domain.ColValueEuro100, &row.ValueEuro100},
		}
		for _, f := range floats {
			if *f.dst, err = dataset.ParseFloat(text(f.col), true); err != nil {
				return nil, decodeError(t, r, f.col, err)
			}
		}

		rows = append(rows, row)
	}
	return rows, nil
}

func decodeError(t *dataset.Table, row int, col string, err error) error {
	return fmt.Errorf("%s row %d column %s: %w", t.Name, row+1, col, err)
}
