// Package calendar resolves calendar (year, week) pairs to fiscal periods.
package calendar

import (
	"fmt"

	"hwreport/internal/dataset"
	"hwreport/pkg/contracts/domain"
)

// Reference table columns
const (
	ColYear     = "YEAR"
	ColWeek     = "WEEK"
	ColFY       = "FY"
	ColMonthNew = "MONTH NEW"
)

type key struct {
	year int
	week int
}

// Calendar is an immutable (year, week) -> fiscal period lookup
type Calendar struct {
	periods    map[key]domain.FiscalPeriod
	duplicates int
}

// New builds a calendar from the reference table. Rows with a blank YEAR,
// WEEK or FY are skipped; the first entry wins for duplicated weeks.
func New(table *dataset.Table) (*Calendar, error) {
	if err := table.Require(ColYear, ColWeek, ColFY, ColMonthNew); err != nil {
		return nil, err
	}

	c := &Calendar{periods: make(map[key]domain.FiscalPeriod, table.Len())}
	for r := 0; r < table.Len(); r++ {
		year, err := intCell(table, r, ColYear)
		if err != nil {
			return nil, err
		}
		week, err := intCell(table, r, ColWeek)
		if err != nil {
			return nil, err
		}
		fy, err := intCell(table, r, ColFY)
		if err != nil {
			return nil, err
		}
		if !year.Valid || !week.Valid || !fy.Valid {
			continue
		}

		k := key{year: year.Value, week: week.Value}
		if _, exists := c.periods[k]; exists {
			c.duplicates++
			continue
		}
		month, _ := table.Value(r, ColMonthNew)
		c.periods[k] = domain.FiscalPeriod{FY: fy.Value, Month: month}
	}

	return c, nil
}

func intCell(table *dataset.Table, row int, col string) (domain.OptionalInt, error) {
	text, _ := table.Value(row, col)
	v, err := dataset.ParseInt(text)
	if err != nil {
		return v, fmt.Errorf("%s row %d column %s: %w", table.Name, row+2, col, err)
	}
	return v, nil
}

// Resolve returns the fiscal period of a calendar week. ok is false when the
// week is not in the reference table.
func (c *Calendar) Resolve(year, week int) (domain.FiscalPeriod, bool) {
	p, ok := c.periods[key{year: year, week: week}]
	return p, ok
}

// Len returns the number of distinct weeks known
func (c *Calendar) Len() int {
	return len(c.periods)
}

// Duplicates returns how many reference rows were ignored as duplicates
func (c *Calendar) Duplicates() int {
	return c.duplicates
}
