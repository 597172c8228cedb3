package exporter

import (
	"strconv"

	"hwreport/pkg/contracts/domain"
)

// formatFloat formats an optional float for text output; absent is blank
func formatFloat(f domain.OptionalFloat) string {
	return f.String()
}

// formatInt formats an optional int for text output; absent is blank
func formatInt(i domain.OptionalInt) string {
	return i.String()
}

// Record renders a row as text cells in canonical column order
func Record(r domain.Row) []string {
	return []string{
		string(r.Source),
		r.SKU,
		string(r.Platform),
		r.Bundle,
		r.HDSize,
		r.Class,
		r.Country,
		r.Territory,
		formatInt(r.FY),
		r.Month,
		strconv.Itoa(r.Week),
		formatFloat(r.PanelUnits),
		formatFloat(r.PanelValueEuro),
		formatFloat(r.Extrapolation),
		formatFloat(r.Units100),
		formatFloat(r.ValueEuro100),
		"",
	}
}

// cellFloat returns the workbook value of an optional float; nil leaves
// the cell blank
func cellFloat(f domain.OptionalFloat) interface{} {
	if !f.Valid {
		return nil
	}
	return f.Value
}

func cellInt(i domain.OptionalInt) interface{} {
	if !i.Valid {
		return nil
	}
	return i.Value
}

func cellText(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// Cells renders a row as typed workbook cells in canonical column order.
// Numbers stay numeric so the report's formulas and pivots keep working.
func Cells(r domain.Row) []interface{} {
	return []interface{}{
		cellText(string(r.Source)),
		cellText(r.SKU),
		cellText(string(r.Platform)),
		cellText(r.Bundle),
		cellText(r.HDSize),
		cellText(r.Class),
		cellText(r.Country),
		cellText(r.Territory),
		cellInt(r.FY),
		cellText(r.Month),
		r.Week,
		cellFloat(r.PanelUnits),
		cellFloat(r.PanelValueEuro),
		cellFloat(r.Extrapolation),
		cellFloat(r.Units100),
		cellFloat(r.ValueEuro100),
		nil,
	}
}
