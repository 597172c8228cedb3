// Package sources turns raw vendor panel tables into canonical rows.
//
// Each vendor has an adapter. An adapter is a pure transformation of a raw
// table (current and historical exports already stacked) using the fiscal
// calendar and the vendor's extrapolation factors. Rows that cannot be
// joined to the calendar or to a factor are kept with absent fiscal or
// projected fields and counted in Stats.
package sources

import (
	"fmt"

	"hwreport/internal/dataset"
	"hwreport/pkg/contracts/domain"
)

// maxSamples bounds the example keys kept for unmatched joins
const maxSamples = 5

// CalendarResolver maps a calendar week to its fiscal period
type CalendarResolver interface {
	Resolve(year, week int) (domain.FiscalPeriod, bool)
}

// FactorResolver maps an extrapolation key to a coverage factor
type FactorResolver interface {
	Resolve(key domain.ExtrapolationKey) domain.OptionalFloat
}

// Adapter converts one vendor's raw table into canonical rows
type Adapter interface {
	Source() domain.Source
	Process(raw *dataset.Table) (*Result, error)
}

// Result is the output of an adapter run
type Result struct {
	Rows  []domain.Row
	Stats Stats
}

// Stats counts what happened to the raw rows of one adapter run
type Stats struct {
	Source                 domain.Source
	RowsRead               int
	DroppedPlatform        int
	DroppedCountry         int
	UnmatchedCalendar      int
	UnmatchedExtrapolation int
	RowsEmitted            int

	CalendarSamples      []string
	ExtrapolationSamples []string
}

func (s *Stats) calendarMiss(year, week domain.OptionalInt) {
	s.UnmatchedCalendar++
	if len(s.CalendarSamples) < maxSamples {
		s.CalendarSamples = append(s.CalendarSamples, fmt.Sprintf("%s/W%s", year, week))
	}
}

func (s *Stats) extrapolationMiss(k domain.ExtrapolationKey, useWeek bool) {
	s.UnmatchedExtrapolation++
	if len(s.ExtrapolationSamples) >= maxSamples {
		return
	}
	sample := fmt.Sprintf("%s|FY%d|%s", k.Territory, k.FY, k.Platform)
	if useWeek {
		sample = fmt.Sprintf("%s|FY%d|W%d|%s", k.Territory, k.FY, k.Week, k.Platform)
	}
	s.ExtrapolationSamples = append(s.ExtrapolationSamples, sample)
}

// cellError locates a conversion failure in the raw table
func cellError(raw *dataset.Table, row int, col string, err error) error {
	return fmt.Errorf("%s row %d column %s: %w", raw.Name, row+1, col, err)
}

// fiscalJoin resolves the fiscal period of a row, counting misses
func fiscalJoin(cal CalendarResolver, stats *Stats, year, week domain.OptionalInt) (domain.OptionalInt, string) {
	if year.Valid && week.Valid {
		if p, ok := cal.Resolve(year.Value, week.Value); ok {
			return domain.SomeInt(p.FY), p.Month
		}
	}
	stats.calendarMiss(year, week)
	return domain.OptionalInt{}, ""
}
