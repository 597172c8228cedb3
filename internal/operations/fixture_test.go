package operations_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"hwreport/internal/config"
	"hwreport/internal/sources"
)

const currentGSDName = "3f2504e0-4f89-11d3-9a0c-0305e82c3301.xlsx"

var gsdColumns = []string{
	sources.GSDColSKU, sources.GSDColPlatform, sources.GSDColBundle, sources.GSDColHDSize,
	sources.GSDColCountry, sources.GSDColTerritory, sources.GSDColYear, sources.GSDColWeek,
	sources.GSDColUnits, sources.GSDColValues,
}

var gfkColumns = []string{
	sources.GFKColArticle, sources.GFKColPlatform, sources.GFKColBundle, sources.GFKColCountry,
	sources.GFKColYear, sources.GFKColWeek, sources.GFKColUnits, sources.GFKColValue,
}

// fixture is a complete input tree under a temporary base directory
type fixture struct {
	base string
	cfg  *config.Config
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	base := t.TempDir()
	for _, dir := range []string{config.DefaultInputDir, config.DefaultPastDir, config.DefaultExtrapDir} {
		require.NoError(t, os.MkdirAll(filepath.Join(base, dir), 0755))
	}

	fx := &fixture{base: base}

	fx.workbook(t, filepath.Join(config.DefaultInputDir, currentGSDName), "Sheet1", gsdColumns,
		[]string{"SONY PS5", "PS5", "", "825 GB", "FRANCE", "FRANCE", "2023", "7", "10", "1000"},
		[]string{"SONY PS5", "PS5", "", "825 GB", "FRANCE", "FRANCE", "2023", "30", "5", "500"},
	)
	fx.text(t, filepath.Join(config.DefaultPastDir, "gsd_2022.csv"), ",", gsdColumns,
		[]string{"SONY PS5", "PS5", "", "825 GB", "FRANCE", "FRANCE", "2022", "7", "4", "400"},
	)
	fx.text(t, filepath.Join(config.DefaultInputDir, config.DefaultCurrentGFK), "\t", gfkColumns,
		[]string{"SONY PS5", "PS5", "0", "Germany", "2023", "7", "30", "15,000"},
	)
	fx.text(t, filepath.Join(config.DefaultPastDir, "gfk_2020.txt"), "\t", gfkColumns,
		[]string{"SONY PS5", "PS5", "0", "Germany", "2020", "7", "1", "1"},
	)

	extrap := config.DefaultExtrapDir
	fx.text(t, filepath.Join(extrap, config.DefaultCalendar), ",",
		[]string{"YEAR", "WEEK", "FY", "MONTH NEW"},
		[]string{"2023", "7", "2022", "11"},
		[]string{"2022", "7", "2021", "11"},
		[]string{"2020", "7", "2019", "11"},
	)
	fx.text(t, filepath.Join(extrap, config.DefaultGSDFactors), ",",
		[]string{"Territory", "FY", "Week", "Format", "Extrapolation"},
		[]string{"france", "2022", "7", "PS5", "0.5"},
		[]string{"FRANCE", "2021", "7", "PS5", "0.8"},
	)
	fx.text(t, filepath.Join(extrap, config.DefaultGFKFactors), ",",
		[]string{"Territory", "FY", "Format", "Extrapolation"},
		[]string{"Germany", "2022", "PS5", "0.25"},
	)
	fx.text(t, filepath.Join(extrap, config.DefaultSubstitute), ",",
		[]string{"Source", "SKU", "Platform", "FY", "Week", "Panel Units"},
		[]string{"GERMANY", "PS5 SUB", "PS5", "2022", "7", "12"},
		[]string{"GERMANY", "PS5 OLD", "PS5", "2020", "7", "1"},
	)

	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", config.DefaultSheet))
	require.NoError(t, f.SaveAs(filepath.Join(base, "report.xlsx")))

	cfg := config.Default()
	cfg.Paths.BaseDir = base
	cfg.Report.Path = "report.xlsx"
	cfg.Report.CSVPath = "report.csv"
	fx.cfg = cfg
	return fx
}

func (fx *fixture) path(name string) string {
	return filepath.Join(fx.base, name)
}

func (fx *fixture) text(t *testing.T, name, sep string, header []string, rows ...[]string) {
	t.Helper()
	lines := []string{strings.Join(header, sep)}
	for _, r := range rows {
		lines = append(lines, strings.Join(r, sep))
	}
	require.NoError(t, os.WriteFile(fx.path(name), []byte(strings.Join(lines, "\n")+"\n"), 0644))
}

func (fx *fixture) workbook(t *testing.T, name, sheet string, header []string, rows ...[]string) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	all := append([][]string{header}, rows...)
	for i, r := range all {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		values := make([]interface{}, len(r))
		for j, v := range r {
			values[j] = v
		}
		require.NoError(t, f.SetSheetRow(sheet, cell, &values))
	}
	require.NoError(t, f.SaveAs(fx.path(name)))
}
