package sources

import (
	"hwreport/internal/dataset"
	"hwreport/pkg/contracts/domain"
)

type weekKey struct{ year, week int }

// fakeCalendar resolves every week of the given years to the same fiscal year
type fakeCalendar map[weekKey]domain.FiscalPeriod

func (c fakeCalendar) Resolve(year, week int) (domain.FiscalPeriod, bool) {
	p, ok := c[weekKey{year, week}]
	return p, ok
}

func calendarFor(year, fy int, month string, weeks ...int) fakeCalendar {
	c := fakeCalendar{}
	for _, w := range weeks {
		c[weekKey{year, w}] = domain.FiscalPeriod{FY: fy, Month: month}
	}
	return c
}

type fakeFactors map[domain.ExtrapolationKey]float64

func (f fakeFactors) Resolve(k domain.ExtrapolationKey) domain.OptionalFloat {
	v, ok := f[k]
	if !ok {
		return domain.OptionalFloat{}
	}
	return domain.SomeFloat(v)
}

var gsdHeader = []string{
	GSDColSKU, GSDColPlatform, GSDColBundle, GSDColHDSize, GSDColCountry,
	GSDColTerritory, GSDColYear, GSDColWeek, GSDColUnits, GSDColValues,
}

var gfkHeader = []string{
	GFKColArticle, GFKColPlatform, GFKColBundle, GFKColCountry,
	GFKColYear, GFKColWeek, GFKColUnits, GFKColValue,
}

func gsdTable(rows ...[]string) *dataset.Table {
	return dataset.New("gsd", gsdHeader, rows)
}

func gfkTable(rows ...[]string) *dataset.Table {
	return dataset.New("gfk", gfkHeader, rows)
}
