// Package exporter writes the reporting table.
//
// WorkbookWriter updates the weekly sheet of the existing report workbook in
// place: the configured column range is cleared and the table is written
// from its first cell, header included. CSVWriter writes an optional CSV
// copy of the same table.
//
// Absent values are written as blank cells. Value Local 100% is always blank.
package exporter
