package sources

import (
	"hwreport/internal/dataset"
	"hwreport/internal/taxonomy"
	"hwreport/pkg/contracts/domain"
)

// GSD export columns
const (
	GSDColSKU       = "SKU"
	GSDColPlatform  = "Platform"
	GSDColBundle    = "Bundle"
	GSDColHDSize    = "HD Size"
	GSDColCountry   = "Country"
	GSDColTerritory = "Territory"
	GSDColYear      = "Year"
	GSDColWeek      = "Week"
	GSDColUnits     = "Units"
	GSDColValues    = "Values"
)

// GSDOptions holds the vocabulary tables of the GSD adapter
type GSDOptions struct {
	ExcludedCountries []string
	Classes           taxonomy.Rules
	Territories       taxonomy.Synonyms
}

// DefaultGSDOptions returns the standard GSD vocabulary. The United Kingdom
// is reported from another source and excluded here.
func DefaultGSDOptions() GSDOptions {
	return GSDOptions{
		ExcludedCountries: []string{"UNITED KINGDOM"},
		Classes:           taxonomy.ClassRules(),
		Territories:       taxonomy.TerritorySynonyms(),
	}
}

// GSD adapts GSD panel exports. Its factors are keyed by week.
type GSD struct {
	calendar CalendarResolver
	factors  FactorResolver
	opts     GSDOptions
	excluded map[string]bool
}

// NewGSD creates the GSD adapter
func NewGSD(calendar CalendarResolver, factors FactorResolver, opts GSDOptions) *GSD {
	excluded := make(map[string]bool, len(opts.ExcludedCountries))
	for _, c := range opts.ExcludedCountries {
		excluded[c] = true
	}
	return &GSD{
		calendar: calendar,
		factors:  factors,
		opts:     opts,
		excluded: excluded,
	}
}

// Source implements Adapter
func (g *GSD) Source() domain.Source {
	return domain.SourceGSD
}

// Process implements Adapter
func (g *GSD) Process(raw *dataset.Table) (*Result, error) {
	if err := raw.Require(GSDColSKU, GSDColPlatform, GSDColCountry, GSDColTerritory,
		GSDColYear, GSDColWeek, GSDColUnits, GSDColValues); err != nil {
		return nil, err
	}

	res := &Result{Stats: Stats{Source: domain.SourceGSD, RowsRead: raw.Len()}}
	stats := &res.Stats

	for r := 0; r < raw.Len(); r++ {
		country, _ := raw.Value(r, GSDColCountry)
		if g.excluded[country] {
			stats.DroppedCountry++
			continue
		}
		platform, _ := raw.Value(r, GSDColPlatform)
		if !domain.IsReported(platform) {
			stats.DroppedPlatform++
			continue
		}

		sku, hasSKU := raw.Value(r, GSDColSKU)
		bundle, _ := raw.Value(r, GSDColBundle)
		hdSize, _ := raw.Value(r, GSDColHDSize)
		territory, _ := raw.Value(r, GSDColTerritory)

		row := domain.Row{
			Source:    domain.SourceGSD,
			SKU:       sku,
			Platform:  domain.Platform(platform),
			Bundle:    bundle,
			HDSize:    hdSize,
			Class:     g.opts.Classes.Tag(sku, hasSKU, domain.DefaultClass),
			Country:   country,
			Territory: g.opts.Territories.Replace(territory),
		}

		yearText, _ := raw.Value(r, GSDColYear)
		year, err := dataset.ParseInt(yearText)
		if err != nil {
			return nil, cellError(raw, r, GSDColYear, err)
		}
		weekText, _ := raw.Value(r, GSDColWeek)
		week, err := dataset.ParseInt(weekText)
		if err != nil {
			return nil, cellError(raw, r, GSDColWeek, err)
		}
		row.Week = week.Value
		row.FY, row.Month = fiscalJoin(g.calendar, stats, year, week)

		if row.FY.Valid {
			key := domain.ExtrapolationKey{Territory: country, FY: row.FY.Value, Week: row.Week, Platform: platform}
			row.Extrapolation = g.factors.Resolve(key)
			if !row.Extrapolation.Valid {
				stats.extrapolationMiss(key, true)
			}
		}

		unitsText, _ := raw.Value(r, GSDColUnits)
		if row.PanelUnits, err = dataset.ParseFloat(unitsText, false); err != nil {
			return nil, cellError(raw, r, GSDColUnits, err)
		}
		valuesText, _ := raw.Value(r, GSDColValues)
		if row.PanelValueEuro, err = dataset.ParseFloat(valuesText, false); err != nil {
			return nil, cellError(raw, r, GSDColValues, err)
		}
		row.Units100 = domain.Project(row.PanelUnits, row.Extrapolation)
		row.ValueEuro100 = domain.Project(row.PanelValueEuro, row.Extrapolation)

		res.Rows = append(res.Rows, row)
	}

	stats.RowsEmitted = len(res.Rows)
	return res, nil
}
