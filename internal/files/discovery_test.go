package files

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gsdName = "0f8fad5b-d9cb-469f-a165-70867728950e.xlsx"

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
}

func testLayout() Layout {
	return Layout{
		InputDir:       "input",
		PastDir:        "past",
		CurrentGFK:     "NEW_HW_DATA.txt",
		CalendarFile:   "extrap/DATES.csv",
		GSDFactorsFile: "extrap/EXTRAPOLATION HW GSD.csv",
		GFKFactorsFile: "extrap/EXTRAPOLATION HW GFK.csv",
		SubstituteFile: "extrap/Germany Extrap.csv",
	}
}

func seedLayout(t *testing.T, base string) {
	t.Helper()
	l := testLayout()
	for _, p := range []string{
		filepath.Join(l.InputDir, gsdName),
		filepath.Join(l.InputDir, l.CurrentGFK),
		l.CalendarFile, l.GSDFactorsFile, l.GFKFactorsFile, l.SubstituteFile,
	} {
		touch(t, filepath.Join(base, p))
	}
}

func TestCurrentGSDPattern(t *testing.T) {
	tests := []struct {
		name  string
		match bool
	}{
		{gsdName, true},
		{"ABCDEFGH-ABCD-ABCD-ABCD-ABCDEFGHIJKL.xlsx", true},
		{"0f8fad5b-d9cb-469f-a165-70867728950e.csv", false},
		{"report.xlsx", false},
		{"x0f8fad5b-d9cb-469f-a165-70867728950e.xlsx", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.match, CurrentGSDPattern.MatchString(tt.name))
		})
	}
}

func TestFindByPattern_SortedByName(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"gsd_2021.csv", "gfk_2020.txt", "gsd_2019.csv", "notes.csv", "gsd_2020.csv"} {
		touch(t, filepath.Join(dir, n))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "gsd_dir.csv"), 0755))

	files, err := NewDiscovery("").FindByPattern(dir, PastGSDPattern)
	require.NoError(t, err)

	var names []string
	for _, f := range files {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"gsd_2019.csv", "gsd_2020.csv", "gsd_2021.csv"}, names)
}

func TestFindHistorical_MissingDirectory(t *testing.T) {
	files, err := NewDiscovery(t.TempDir()).FindHistorical("past", PastGFKPattern)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestFindCurrentGSD(t *testing.T) {
	base := t.TempDir()
	d := NewDiscovery(base)

	_, err := d.FindCurrentGSD("input", false)
	assert.ErrorIs(t, err, ErrNotFound, "missing directory")

	touch(t, filepath.Join(base, "input", "other.xlsx"))
	_, err = d.FindCurrentGSD("input", false)
	assert.ErrorIs(t, err, ErrNotFound)

	older := filepath.Join(base, "input", gsdName)
	newer := filepath.Join(base, "input", "ffffffff-d9cb-469f-a165-70867728950e.xlsx")
	touch(t, older)
	touch(t, newer)
	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(older, past, past))

	_, err = d.FindCurrentGSD("input", false)
	assert.ErrorIs(t, err, ErrAmbiguous, "two exports without the latest option")
	assert.Contains(t, err.Error(), gsdName)

	f, err := d.FindCurrentGSD("input", true)
	require.NoError(t, err)
	assert.Equal(t, newer, f.Path)

	require.NoError(t, os.Remove(newer))
	f, err = d.FindCurrentGSD("input", false)
	require.NoError(t, err)
	assert.Equal(t, older, f.Path)
}

func TestDiscover(t *testing.T) {
	base := t.TempDir()
	seedLayout(t, base)
	touch(t, filepath.Join(base, "past", "gsd_2022.csv"))
	touch(t, filepath.Join(base, "past", "gfk_2021.txt"))
	touch(t, filepath.Join(base, "past", "gfk_2022.txt"))

	in, err := NewDiscovery(base).Discover(testLayout())
	require.NoError(t, err)

	assert.Equal(t, gsdName, in.CurrentGSD.Name)
	assert.Equal(t, "NEW_HW_DATA.txt", in.CurrentGFK.Name)
	assert.Len(t, in.PastGSD, 1)
	assert.Len(t, in.PastGFK, 2)
	assert.Equal(t, filepath.Join(base, "extrap", "DATES.csv"), in.Calendar.Path)

	gfk := Paths(in.GFKFiles())
	require.Len(t, gfk, 3)
	assert.Equal(t, in.CurrentGFK.Path, gfk[0], "current export comes first")
	assert.Equal(t, filepath.Join(base, "past", "gfk_2021.txt"), gfk[1])
	assert.Len(t, in.GSDFiles(), 2)
}

func TestDiscover_MissingInputs(t *testing.T) {
	tests := []struct {
		name    string
		remove  string
		message string
	}{
		{"current GSD", filepath.Join("input", gsdName), "current GSD export"},
		{"current GFK", filepath.Join("input", "NEW_HW_DATA.txt"), "current GFK export"},
		{"calendar", filepath.Join("extrap", "DATES.csv"), "calendar table"},
		{"substitute", filepath.Join("extrap", "Germany Extrap.csv"), "substitute table"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := t.TempDir()
			seedLayout(t, base)
			require.NoError(t, os.Remove(filepath.Join(base, tt.remove)))

			_, err := NewDiscovery(base).Discover(testLayout())
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrNotFound)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestGetLatestFile(t *testing.T) {
	_, ok := GetLatestFile(nil)
	assert.False(t, ok)

	now := time.Now()
	latest, ok := GetLatestFile([]FileInfo{
		{Name: "a", ModTime: now.Add(-time.Hour)},
		{Name: "b", ModTime: now},
		{Name: "c", ModTime: now.Add(-2 * time.Hour)},
	})
	assert.True(t, ok)
	assert.Equal(t, "b", latest.Name)
}
