package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"
)

var (
	// ErrNotFound is returned when a required input file is absent
	ErrNotFound = errors.New("input file not found")
	// ErrAmbiguous is returned when several files could be the current export
	ErrAmbiguous = errors.New("more than one candidate input file")
)

var (
	// CurrentGSDPattern matches the UUID-style names GSD gives its exports
	CurrentGSDPattern = regexp.MustCompile(`^\w{8}-(\w{4}-){3}\w{12}\.xlsx$`)
	// PastGSDPattern matches historical GSD extracts
	PastGSDPattern = regexp.MustCompile(`^gsd.*\.csv$`)
	// PastGFKPattern matches historical GFK extracts
	PastGFKPattern = regexp.MustCompile(`^gfk.*\.txt$`)
)

// FileInfo represents information about a discovered file
type FileInfo struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}

// Discovery locates input files relative to a base directory
type Discovery struct {
	basePath string
}

// NewDiscovery creates a new file discovery instance
func NewDiscovery(basePath string) *Discovery {
	return &Discovery{basePath: basePath}
}

func (d *Discovery) resolve(path string) string {
	if filepath.IsAbs(path) || d.basePath == "" {
		return path
	}
	return filepath.Join(d.basePath, path)
}

// FindByPattern returns the regular files in dir whose name matches re,
// sorted by name
func (d *Discovery) FindByPattern(dir string, re *regexp.Regexp) ([]FileInfo, error) {
	fullPath := d.resolve(dir)

	entries, err := os.ReadDir(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", fullPath, err)
	}

	var files []FileInfo
	for _, entry := range entries {
		if entry.IsDir() || !re.MatchString(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, FileInfo{
			Path:    filepath.Join(fullPath, entry.Name()),
			Name:    entry.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Name < files[j].Name
	})
	return files, nil
}

// FindHistorical returns the historical extracts in dir. A missing
// directory means there is no history yet.
func (d *Discovery) FindHistorical(dir string, re *regexp.Regexp) ([]FileInfo, error) {
	if _, err := os.Stat(d.resolve(dir)); errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return d.FindByPattern(dir, re)
}

// FindCurrentGSD returns the current GSD export in dir. Exactly one export
// must be present unless latest is set, in which case the most recently
// modified one is used.
func (d *Discovery) FindCurrentGSD(dir string, latest bool) (FileInfo, error) {
	files, err := d.FindByPattern(dir, CurrentGSDPattern)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return FileInfo{}, fmt.Errorf("current GSD export in %s: %w", d.resolve(dir), ErrNotFound)
		}
		return FileInfo{}, err
	}
	if len(files) > 1 && !latest {
		names := make([]string, len(files))
		for i, f := range files {
			names[i] = f.Name
		}
		return FileInfo{}, fmt.Errorf("current GSD export in %s: %w: %s", d.resolve(dir), ErrAmbiguous, strings.Join(names, ", "))
	}
	current, ok := GetLatestFile(files)
	if !ok {
		return FileInfo{}, fmt.Errorf("current GSD export in %s: %w", d.resolve(dir), ErrNotFound)
	}
	return current, nil
}

// Stat returns the file at path, or ErrNotFound
func (d *Discovery) Stat(path string) (FileInfo, error) {
	fullPath := d.resolve(path)
	info, err := os.Stat(fullPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return FileInfo{}, fmt.Errorf("%s: %w", fullPath, ErrNotFound)
		}
		return FileInfo{}, err
	}
	if info.IsDir() {
		return FileInfo{}, fmt.Errorf("%s is a directory: %w", fullPath, ErrNotFound)
	}
	return FileInfo{
		Path:    fullPath,
		Name:    info.Name(),
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}, nil
}

// GetLatestFile returns the most recently modified file from a list
func GetLatestFile(files []FileInfo) (FileInfo, bool) {
	if len(files) == 0 {
		return FileInfo{}, false
	}

	latest := files[0]
	for _, file := range files[1:] {
		if file.ModTime.After(latest.ModTime) {
			latest = file
		}
	}
	return latest, true
}

// Paths returns the paths of the given files in order
func Paths(files []FileInfo) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.Path
	}
	return out
}
