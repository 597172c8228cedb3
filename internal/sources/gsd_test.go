package sources

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hwreport/internal/dataset"
	"hwreport/pkg/contracts/domain"
)

func newTestGSD() *GSD {
	cal := calendarFor(2023, 2022, "11", 7, 8)
	factors := fakeFactors{
		{Territory: "GERMANY", FY: 2022, Week: 7, Platform: "SWITCH"}: 0.8,
		{Territory: "BELGIUM", FY: 2022, Week: 7, Platform: "PS5"}:    0.5,
	}
	return NewGSD(cal, factors, DefaultGSDOptions())
}

func TestGSD_Process(t *testing.T) {
	raw := gsdTable(
		[]string{"NINTENDO SWITCH OLED 64 GB", "SWITCH", "STANDALONE", "64 GB", "GERMANY", "GSA", "2023", "7", "40", "12000"},
		[]string{"SONY PS5 DIGITAL EDITION", "PS5", "BUNDLE", "825 GB", "BELGIUM", "BENE", "2023", "7", "10", "4000.5"},
	)

	res, err := newTestGSD().Process(raw)
	require.NoError(t, err)
	require.Len(t, res.Rows, 2)

	oled := res.Rows[0]
	assert.Equal(t, domain.SourceGSD, oled.Source)
	assert.Equal(t, "OLED", oled.Class)
	assert.Equal(t, domain.PlatformSwitch, oled.Platform)
	assert.Equal(t, "64 GB", oled.HDSize)
	assert.Equal(t, "SWITZERLAND", oled.Territory)
	assert.Equal(t, "GERMANY", oled.Country)
	assert.Equal(t, domain.SomeInt(2022), oled.FY)
	assert.Equal(t, "11", oled.Month)
	assert.Equal(t, 7, oled.Week)
	assert.InDelta(t, 0.8, oled.Extrapolation.Value, 1e-12)
	assert.InDelta(t, 50, oled.Units100.Value, 1e-9)
	assert.InDelta(t, 15000, oled.ValueEuro100.Value, 1e-9)

	ps5 := res.Rows[1]
	assert.Equal(t, "BENELUX", ps5.Territory)
	assert.Equal(t, "DIGITAL EDITION", ps5.Class)
	assert.Equal(t, "BUNDLE", ps5.Bundle)
	assert.InDelta(t, 8001, ps5.ValueEuro100.Value, 1e-9)

	assert.Equal(t, 2, res.Stats.RowsEmitted)
	assert.Zero(t, res.Stats.UnmatchedCalendar)
	assert.Zero(t, res.Stats.UnmatchedExtrapolation)
}

func TestGSD_Process_Filters(t *testing.T) {
	raw := gsdTable(
		[]string{"XBOX SERIES X", "XBOX SERIES", "", "1 TB", "UNITED KINGDOM", "UK", "2023", "7", "1", "1"},
		[]string{"SEGA MEGA DRIVE MINI", "RETRO", "", "", "GERMANY", "GERMANY", "2023", "7", "1", "1"},
		[]string{"SONY PS4 PRO", "PS4", "", "1 TB", "GERMANY", "GERMANY", "2023", "7", "1", "1"},
	)

	res, err := newTestGSD().Process(raw)
	require.NoError(t, err)

	require.Len(t, res.Rows, 1)
	assert.Equal(t, "PRO", res.Rows[0].Class)
	assert.Equal(t, 3, res.Stats.RowsRead)
	assert.Equal(t, 1, res.Stats.DroppedCountry)
	assert.Equal(t, 1, res.Stats.DroppedPlatform)
}

func TestGSD_Process_UnmatchedJoins(t *testing.T) {
	raw := gsdTable(
		// week 30 is not in the calendar
		[]string{"SONY PS5", "PS5", "", "825 GB", "BELGIUM", "BENE", "2023", "30", "10", "100"},
		// calendar matches, factor does not
		[]string{"SONY PS5", "PS5", "", "825 GB", "FRANCE", "FRANCE", "2023", "8", "10", "100"},
	)

	res, err := newTestGSD().Process(raw)
	require.NoError(t, err)
	require.Len(t, res.Rows, 2, "rows with failed joins are kept")

	noCalendar := res.Rows[0]
	assert.False(t, noCalendar.FY.Valid)
	assert.Empty(t, noCalendar.Month)
	assert.Equal(t, 30, noCalendar.Week)
	assert.False(t, noCalendar.Extrapolation.Valid)
	assert.False(t, noCalendar.Units100.Valid)

	noFactor := res.Rows[1]
	assert.True(t, noFactor.FY.Valid)
	assert.False(t, noFactor.Extrapolation.Valid)
	assert.False(t, noFactor.Units100.Valid)
	assert.False(t, noFactor.ValueEuro100.Valid)
	assert.True(t, noFactor.PanelUnits.Valid)

	assert.Equal(t, 1, res.Stats.UnmatchedCalendar)
	assert.Equal(t, []string{"2023/W30"}, res.Stats.CalendarSamples)
	assert.Equal(t, 1, res.Stats.UnmatchedExtrapolation)
	assert.Equal(t, []string{"FRANCE|FY2022|W8|PS5"}, res.Stats.ExtrapolationSamples)
}

func TestGSD_Process_TerritoryNormalizedBeforeJoin(t *testing.T) {
	raw := gsdTable(
		[]string{"SONY PS5", "PS5", "", "", "BELGIUM", "BENE", "2023", "7", "5", "5"},
	)

	res, err := newTestGSD().Process(raw)
	require.NoError(t, err)

	row := res.Rows[0]
	assert.Equal(t, "BENELUX", row.Territory)
	assert.True(t, row.Extrapolation.Valid, "join uses the country column")
}

func TestGSD_Process_DataShapeErrors(t *testing.T) {
	tests := []struct {
		name string
		row  []string
	}{
		{"units with separator", []string{"SONY PS5", "PS5", "", "", "BELGIUM", "BENE", "2023", "7", "1,000", "5"}},
		{"text week", []string{"SONY PS5", "PS5", "", "", "BELGIUM", "BENE", "2023", "W7", "5", "5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestGSD().Process(gsdTable(tt.row))
			require.Error(t, err)
			assert.ErrorIs(t, err, dataset.ErrMalformedNumber)
		})
	}
}

func TestGSD_Process_MissingColumns(t *testing.T) {
	_, err := newTestGSD().Process(dataset.New("gsd", []string{"SKU", "Platform"}, nil))
	assert.ErrorIs(t, err, dataset.ErrMissingColumn)
}

func TestGSD_Process_ExcludedCountriesConfigurable(t *testing.T) {
	opts := DefaultGSDOptions()
	opts.ExcludedCountries = nil
	g := NewGSD(calendarFor(2023, 2022, "11", 7), fakeFactors{}, opts)

	res, err := g.Process(gsdTable(
		[]string{"SONY PS5", "PS5", "", "", "UNITED KINGDOM", "UK", "2023", "7", "1", "1"},
	))
	require.NoError(t, err)
	assert.Len(t, res.Rows, 1)
}
