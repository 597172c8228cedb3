// Package extrapolation resolves the panel coverage factor for a territory,
// fiscal year, week and platform.
package extrapolation

import (
	"fmt"
	"strings"

	"hwreport/internal/dataset"
	"hwreport/pkg/contracts/domain"
)

// Reference table columns
const (
	ColTerritory     = "Territory"
	ColFY            = "FY"
	ColWeek          = "Week"
	ColFormat        = "Format"
	ColExtrapolation = "Extrapolation"
)

// Options controls how a vendor's table is keyed
type Options struct {
	// UseWeek keys factors by week as well. When false the Week of a
	// lookup key is ignored.
	UseWeek bool
	// UpperCaseTerritory upper-cases the table's territory labels at load.
	UpperCaseTerritory bool
}

// Resolver is an immutable factor lookup
type Resolver struct {
	opts       Options
	factors    map[domain.ExtrapolationKey]float64
	duplicates int
	skipped    int
}

// New builds a resolver from a vendor's extrapolation table. Rows with a
// blank key or factor are ignored, as are factors that are not positive.
func New(table *dataset.Table, opts Options) (*Resolver, error) {
	required := []string{ColTerritory, ColFY, ColFormat, ColExtrapolation}
	if opts.UseWeek {
		required = append(required, ColWeek)
	}
	if err := table.Require(required...); err != nil {
		return nil, err
	}

	r := &Resolver{
		opts:    opts,
		factors: make(map[domain.ExtrapolationKey]float64, table.Len()),
	}

	for row := 0; row < table.Len(); row++ {
		territory, _ := table.Value(row, ColTerritory)
		format, _ := table.Value(row, ColFormat)

		fyText, _ := table.Value(row, ColFY)
		fy, err := dataset.ParseInt(fyText)
		if err != nil {
			return nil, cellError(table, row, ColFY, err)
		}

		week := domain.SomeInt(0)
		if opts.UseWeek {
			weekText, _ := table.Value(row, ColWeek)
			if week, err = dataset.ParseInt(weekText); err != nil {
				return nil, cellError(table, row, ColWeek, err)
			}
		}

		factorText, _ := table.Value(row, ColExtrapolation)
		factor, err := dataset.ParseFloat(factorText, false)
		if err != nil {
			return nil, cellError(table, row, ColExtrapolation, err)
		}

		if territory == "" || format == "" || !fy.Valid || !week.Valid || !factor.Valid || factor.Value <= 0 {
			r.skipped++
			continue
		}

		k := r.key(territory, fy.Value, week.Value, format)
		if _, exists := r.factors[k]; exists {
			r.duplicates++
			continue
		}
		r.factors[k] = factor.Value
	}

	return r, nil
}

func cellError(table *dataset.Table, row int, col string, err error) error {
	return fmt.Errorf("%s row %d column %s: %w", table.Name, row+2, col, err)
}

func (r *Resolver) key(territory string, fy, week int, platform string) domain.ExtrapolationKey {
	if r.opts.UpperCaseTerritory {
		territory = strings.ToUpper(territory)
	}
	if !r.opts.UseWeek {
		week = 0
	}
	return domain.ExtrapolationKey{Territory: territory, FY: fy, Week: week, Platform: platform}
}

// Resolve returns the factor for k, or an absent value when the table has
// no entry. Lookup territories are used as given; only table labels are
// normalised.
func (r *Resolver) Resolve(k domain.ExtrapolationKey) domain.OptionalFloat {
	if !r.opts.UseWeek {
		k.Week = 0
	}
	f, ok := r.factors[k]
	if !ok {
		return domain.OptionalFloat{}
	}
	return domain.SomeFloat(f)
}

// Len returns the number of distinct keys loaded
func (r *Resolver) Len() int {
	return len(r.factors)
}

// Duplicates returns how many table rows repeated an earlier key
func (r *Resolver) Duplicates() int {
	return r.duplicates
}

// Skipped returns how many table rows had an incomplete key or unusable factor
func (r *Resolver) Skipped() int {
	return r.skipped
}
