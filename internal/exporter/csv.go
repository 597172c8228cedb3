package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"hwreport/pkg/contracts/domain"
)

// CSVWriter provides CSV export functionality
type CSVWriter struct {
	basePath string
}

// NewCSVWriter creates a new CSV writer instance. Relative paths are
// resolved against basePath.
func NewCSVWriter(basePath string) *CSVWriter {
	return &CSVWriter{basePath: basePath}
}

// WriteOptions configures CSV writing behavior
type WriteOptions struct {
	Headers   []string
	Records   [][]string
	BOMPrefix bool // Add UTF-8 BOM for Excel compatibility
}

// WriteCSV writes data to a CSV file with the given options
func (w *CSVWriter) WriteCSV(filePath string, options WriteOptions) error {
	fullPath := w.resolvePath(filePath)

	slog.Info("Writing CSV file",
		slog.String("full_path", fullPath),
		slog.Int("record_count", len(options.Records)))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.OpenFile(fullPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	if options.BOMPrefix {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(file)

	if len(options.Headers) > 0 {
		if err := writer.Write(options.Headers); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}

	for i, record := range options.Records {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}
	return file.Sync()
}

// WriteRows writes the reporting table with its canonical header
func (w *CSVWriter) WriteRows(filePath string, rows []domain.Row, bom bool) error {
	records := make([][]string, len(rows))
	for i, r := range rows {
		records[i] = Record(r)
	}
	return w.WriteCSV(filePath, WriteOptions{
		Headers:   domain.CanonicalColumns(),
		Records:   records,
		BOMPrefix: bom,
	})
}

func (w *CSVWriter) resolvePath(filePath string) string {
	if filepath.IsAbs(filePath) || w.basePath == "" {
		return filePath
	}
	return filepath.Join(w.basePath, filePath)
}
