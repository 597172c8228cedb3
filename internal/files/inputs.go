package files

import (
	"fmt"
	"path/filepath"
)

// Layout names the input locations of one run. Relative paths are resolved
// against the discovery base path.
type Layout struct {
	InputDir       string
	PastDir        string
	CurrentGFK     string
	CalendarFile   string
	GSDFactorsFile string
	GFKFactorsFile string
	SubstituteFile string
	// LatestGSD picks the newest of several current GSD exports instead of
	// failing
	LatestGSD bool
}

// Inputs is the set of files a run consumes
type Inputs struct {
	CurrentGSD FileInfo
	CurrentGFK FileInfo
	PastGSD    []FileInfo
	PastGFK    []FileInfo
	Calendar   FileInfo
	GSDFactors FileInfo
	GFKFactors FileInfo
	Substitute FileInfo
}

// GSDFiles returns the current GSD export followed by the historical ones
func (in *Inputs) GSDFiles() []FileInfo {
	return append([]FileInfo{in.CurrentGSD}, in.PastGSD...)
}

// GFKFiles returns the current GFK export followed by the historical ones
func (in *Inputs) GFKFiles() []FileInfo {
	return append([]FileInfo{in.CurrentGFK}, in.PastGFK...)
}

// Discover locates every input of the layout. Any missing required file
// fails with an error wrapping ErrNotFound.
func (d *Discovery) Discover(l Layout) (*Inputs, error) {
	var (
		in  Inputs
		err error
	)

	if in.CurrentGSD, err = d.FindCurrentGSD(l.InputDir, l.LatestGSD); err != nil {
		return nil, err
	}
	if in.CurrentGFK, err = d.Stat(filepath.Join(l.InputDir, l.CurrentGFK)); err != nil {
		return nil, fmt.Errorf("current GFK export: %w", err)
	}
	if in.PastGSD, err = d.FindHistorical(l.PastDir, PastGSDPattern); err != nil {
		return nil, err
	}
	if in.PastGFK, err = d.FindHistorical(l.PastDir, PastGFKPattern); err != nil {
		return nil, err
	}

	required := []struct {
		label string
		path  string
		dst   *FileInfo
	}{
		{"calendar", l.CalendarFile, &in.Calendar},
		{"GSD extrapolation", l.GSDFactorsFile, &in.GSDFactors},
		{"GFK extrapolation", l.GFKFactorsFile, &in.GFKFactors},
		{"substitute", l.SubstituteFile, &in.Substitute},
	}
	for _, r := range required {
		if *r.dst, err = d.Stat(r.path); err != nil {
			return nil, fmt.Errorf("%s table: %w", r.label, err)
		}
	}

	return &in, nil
}
