package sources

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hwreport/internal/dataset"
	"hwreport/pkg/contracts/domain"
)

func newTestGFK() *GFK {
	cal := calendarFor(2023, 2022, "11", 7)
	factors := fakeFactors{
		{Territory: "Germany", FY: 2022, Platform: "NINTENDO SWITCH"}: 0.5,
		{Territory: "Germany", FY: 2022, Platform: "PS5"}:             0.25,
	}
	return NewGFK(cal, factors, DefaultGFKOptions())
}

func TestGFK_Process(t *testing.T) {
	raw := gfkTable(
		[]string{"NINTENDO SWITCH OLED WHITE", "NINTENDO SWITCH", "0", "Germany", "2023", "7", "1,200", "420,000.50"},
		[]string{"SONY PLAYSTATION 5 825GB + FIFA", "PS5", "1", "Germany", "2023", "7", "30", "15,000"},
	)

	res, err := newTestGFK().Process(raw)
	require.NoError(t, err)
	require.Len(t, res.Rows, 2)

	sw := res.Rows[0]
	assert.Equal(t, domain.SourceGFK, sw.Source)
	assert.Equal(t, domain.PlatformSwitch, sw.Platform)
	assert.Equal(t, domain.BundleStandalone, sw.Bundle)
	assert.Equal(t, "OLED", sw.Class)
	assert.Equal(t, "64 GB", sw.HDSize)
	assert.Equal(t, "GERMANY", sw.Territory)
	assert.Equal(t, "Germany", sw.Country)
	assert.InDelta(t, 1200, sw.PanelUnits.Value, 1e-9)
	assert.InDelta(t, 2400, sw.Units100.Value, 1e-9)
	assert.InDelta(t, 840001, sw.ValueEuro100.Value, 1e-9)

	ps5 := res.Rows[1]
	assert.Equal(t, domain.BundleBundle, ps5.Bundle)
	assert.Equal(t, "825 GB", ps5.HDSize)
	assert.Equal(t, "ORIGINAL", ps5.Class)
	assert.InDelta(t, 120, ps5.Units100.Value, 1e-9)
}

func TestGFK_Process_WeekIsNotPartOfFactorKey(t *testing.T) {
	g := NewGFK(calendarFor(2023, 2022, "12", 9), fakeFactors{
		{Territory: "Germany", FY: 2022, Platform: "PS5"}: 0.5,
	}, DefaultGFKOptions())

	res, err := g.Process(gfkTable([]string{"SONY PS5", "PS5", "0", "Germany", "2023", "9", "1", "1"}))
	require.NoError(t, err)
	assert.True(t, res.Rows[0].Extrapolation.Valid)
	assert.Equal(t, 9, res.Rows[0].Week)
}

func TestGFK_Process_Defaults(t *testing.T) {
	raw := gfkTable(
		[]string{"", "XBOX SERIES", "2", "Austria", "2023", "7", "", ""},
	)

	res, err := newTestGFK().Process(raw)
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)

	row := res.Rows[0]
	assert.Equal(t, "ORIGINAL", row.Class, "missing article does not match")
	assert.Equal(t, "UNKNOWN", row.HDSize)
	assert.Equal(t, "2", row.Bundle, "unknown indicators pass through")
	assert.Equal(t, "AUSTRIA", row.Territory)
	assert.False(t, row.PanelUnits.Valid)
	assert.False(t, row.Units100.Valid)
	assert.Equal(t, 1, res.Stats.UnmatchedExtrapolation)
	assert.Equal(t, []string{"Austria|FY2022|XBOX SERIES"}, res.Stats.ExtrapolationSamples)
}

func TestGFK_Process_TerritoryColumn(t *testing.T) {
	raw := dataset.New("gfk", append(append([]string{}, gfkHeader...), GFKColTerritory), [][]string{
		{"SONY PS5", "PS5", "0", "Germany", "2023", "7", "1", "1", "Dach"},
		{"SONY PS5", "PS5", "0", "Germany", "2023", "7", "1", "1", ""},
	})

	res, err := newTestGFK().Process(raw)
	require.NoError(t, err)
	assert.Equal(t, "DACH", res.Rows[0].Territory)
	assert.Equal(t, "GERMANY", res.Rows[1].Territory, "blank territory falls back to country")
}

func TestGFK_Process_Filters(t *testing.T) {
	raw := gfkTable(
		[]string{"NINTENDO 3DS", "NINTENDO 3DS", "0", "Germany", "2023", "7", "1", "1"},
		[]string{"SONY PS VITA", "PS VITA", "0", "Germany", "2023", "7", "1", "1"},
		[]string{"NINTENDO SWITCH LITE", "NINTENDO SWITCH", "0", "Germany", "2023", "7", "1", "1"},
	)

	res, err := newTestGFK().Process(raw)
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, "LITE", res.Rows[0].Class)
	assert.Equal(t, 2, res.Stats.DroppedPlatform)
}

func TestGFK_Process_CalendarMiss(t *testing.T) {
	res, err := newTestGFK().Process(gfkTable(
		[]string{"SONY PS5", "PS5", "0", "Germany", "2019", "1", "1", "1"},
	))
	require.NoError(t, err)

	assert.False(t, res.Rows[0].FY.Valid)
	assert.Equal(t, 1, res.Stats.UnmatchedCalendar)
	assert.Zero(t, res.Stats.UnmatchedExtrapolation)
}

func TestGFK_Process_MalformedNumber(t *testing.T) {
	_, err := newTestGFK().Process(gfkTable(
		[]string{"SONY PS5", "PS5", "0", "Germany", "2023", "7", "12 units", "1"},
	))
	require.Error(t, err)
	assert.ErrorIs(t, err, dataset.ErrMalformedNumber)
	assert.Contains(t, err.Error(), GFKColUnits)
}

func TestBundleLabel(t *testing.T) {
	assert.Equal(t, "STANDALONE", bundleLabel("0"))
	assert.Equal(t, "BUNDLE", bundleLabel("1"))
	assert.Equal(t, "BUNDLE", bundleLabel("1.0"))
	assert.Equal(t, "", bundleLabel(""))
	assert.Equal(t, "Y", bundleLabel("Y"))
}
