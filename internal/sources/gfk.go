package sources

import (
	"strings"

	"hwreport/internal/dataset"
	"hwreport/internal/taxonomy"
	"hwreport/pkg/contracts/domain"
)

// GFK export columns
const (
	GFKColArticle   = "Article Name"
	GFKColPlatform  = "Main Platform"
	GFKColBundle    = "Bundle"
	GFKColCountry   = "Country"
	GFKColTerritory = "Territory"
	GFKColYear      = "Year (W)"
	GFKColWeek      = "Week (W)"
	GFKColUnits     = "Units Panel (W)"
	GFKColValue     = "Value Panel (W)"
)

// GFKOptions holds the vocabulary tables of the GFK adapter
type GFKOptions struct {
	Classes   taxonomy.Rules
	HDSizes   taxonomy.Rules
	Platforms taxonomy.Synonyms
}

// DefaultGFKOptions returns the standard GFK vocabulary
func DefaultGFKOptions() GFKOptions {
	return GFKOptions{
		Classes:   taxonomy.ClassRules(),
		HDSizes:   taxonomy.HDSizeRules(),
		Platforms: taxonomy.GFKPlatformLabels(),
	}
}

// GFK adapts GFK panel exports. Its factors are not keyed by week, and the
// factor table uses GFK's own platform labels.
type GFK struct {
	calendar CalendarResolver
	factors  FactorResolver
	opts     GFKOptions
}

// NewGFK creates the GFK adapter
func NewGFK(calendar CalendarResolver, factors FactorResolver, opts GFKOptions) *GFK {
	return &GFK{calendar: calendar, factors: factors, opts: opts}
}

// Source implements Adapter
func (g *GFK) Source() domain.Source {
	return domain.SourceGFK
}

// Process implements Adapter
func (g *GFK) Process(raw *dataset.Table) (*Result, error) {
	if err := raw.Require(GFKColArticle, GFKColPlatform, GFKColCountry,
		GFKColYear, GFKColWeek, GFKColUnits, GFKColValue); err != nil {
		return nil, err
	}

	res := &Result{Stats: Stats{Source: domain.SourceGFK, RowsRead: raw.Len()}}
	stats := &res.Stats

	for r := 0; r < raw.Len(); r++ {
		label, _ := raw.Value(r, GFKColPlatform)
		platform := g.opts.Platforms.Replace(label)
		if !domain.IsReported(platform) {
			stats.DroppedPlatform++
			continue
		}

		article, hasArticle := raw.Value(r, GFKColArticle)
		country, _ := raw.Value(r, GFKColCountry)
		territory, ok := raw.Value(r, GFKColTerritory)
		if !ok {
			territory = country
		}
		bundle, _ := raw.Value(r, GFKColBundle)

		row := domain.Row{
			Source:    domain.SourceGFK,
			SKU:       article,
			Platform:  domain.Platform(platform),
			Bundle:    bundleLabel(bundle),
			HDSize:    g.opts.HDSizes.Tag(article, hasArticle, domain.DefaultHDSize),
			Class:     g.opts.Classes.Tag(article, hasArticle, domain.DefaultClass),
			Country:   country,
			Territory: strings.ToUpper(territory),
		}

		yearText, _ := raw.Value(r, GFKColYear)
		year, err := dataset.ParseInt(yearText)
		if err != nil {
			return nil, cellError(raw, r, GFKColYear, err)
		}
		weekText, _ := raw.Value(r, GFKColWeek)
		week, err := dataset.ParseInt(weekText)
		if err != nil {
			return nil, cellError(raw, r, GFKColWeek, err)
		}
		row.Week = week.Value
		row.FY, row.Month = fiscalJoin(g.calendar, stats, year, week)

		if row.FY.Valid {
			key := domain.ExtrapolationKey{Territory: country, FY: row.FY.Value, Platform: label}
			row.Extrapolation = g.factors.Resolve(key)
			if !row.Extrapolation.Valid {
				stats.extrapolationMiss(key, false)
			}
		}

		unitsText, _ := raw.Value(r, GFKColUnits)
		if row.PanelUnits, err = dataset.ParseFloat(unitsText, true); err != nil {
			return nil, cellError(raw, r, GFKColUnits, err)
		}
		valueText, _ := raw.Value(r, GFKColValue)
		if row.PanelValueEuro, err = dataset.ParseFloat(valueText, true); err != nil {
			return nil, cellError(raw, r, GFKColValue, err)
		}
		row.Units100 = domain.Project(row.PanelUnits, row.Extrapolation)
		row.ValueEuro100 = domain.Project(row.PanelValueEuro, row.Extrapolation)

		res.Rows = append(res.Rows, row)
	}

	stats.RowsEmitted = len(res.Rows)
	return res, nil
}

// bundleLabel maps GFK's 0/1 bundle indicator; other values pass through
func bundleLabel(text string) string {
	v, err := dataset.ParseInt(text)
	if err != nil || !v.Valid {
		return text
	}
	switch v.Value {
	case 0:
		return domain.BundleStandalone
	case 1:
		return domain.BundleBundle
	default:
		return text
	}
}
