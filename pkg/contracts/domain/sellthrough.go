package domain

// Source identifies the panel vendor a row came from
type Source string

const (
	SourceGSD Source = "GSD"
	SourceGFK Source = "GFK"
)

// Platform is a canonical hardware platform label
type Platform string

const (
	PlatformPS4        Platform = "PS4"
	PlatformPS5        Platform = "PS5"
	PlatformSwitch     Platform = "SWITCH"
	PlatformXboxOne    Platform = "XBOX ONE"
	PlatformXboxSeries Platform = "XBOX SERIES"
)

// Platforms returns the platform allow-set in reporting order
func Platforms() []Platform {
	return []Platform{PlatformPS4, PlatformPS5, PlatformSwitch, PlatformXboxOne, PlatformXboxSeries}
}

// IsReported reports whether the label belongs to the platform allow-set
func IsReported(label string) bool {
	for _, p := range Platforms() {
		if string(p) == label {
			return true
		}
	}
	return false
}

// Packaging labels
const (
	BundleStandalone = "STANDALONE"
	BundleBundle     = "BUNDLE"
)

// Defaults applied before taxonomy tagging
const (
	DefaultClass  = "ORIGINAL"
	DefaultHDSize = "UNKNOWN"
)

// Canonical column names, in output order
const (
	ColSource         = "Source"
	ColSKU            = "SKU"
	ColPlatform       = "Platform"
	ColBundle         = "Bundle"
	ColHDSize         = "HDSize"
	ColClass          = "CLASS"
	ColCountry        = "Country"
	ColTerritory      = "Territory"
	ColFY             = "FY"
	ColMonthNew       = "MONTH NEW"
	ColWeek           = "Week"
	ColPanelUnits     = "Panel Units"
	ColPanelValueEuro = "Panel Value EURO"
	ColExtrapolation  = "Extrapolation"
	ColUnits100       = "Units 100%"
	ColValueEuro100   = "Value Euro 100%"
	ColValueLocal100  = "Value Local 100%"
)

// CanonicalColumns returns the header of the reporting table
func CanonicalColumns() []string {
	return []string{
		ColSource, ColSKU, ColPlatform, ColBundle, ColHDSize, ColClass,
		ColCountry, ColTerritory, ColFY, ColMonthNew, ColWeek,
		ColPanelUnits, ColPanelValueEuro, ColExtrapolation,
		ColUnits100, ColValueEuro100, ColValueLocal100,
	}
}

// Row is one line of the reconciled weekly sell-through table.
// Rows are built once by a source adapter and never modified afterwards.
type Row struct {
	Source    Source
	SKU       string
	Platform  Platform
	Bundle    string
	HDSize    string
	Class     string
	Country   string
	Territory string

	FY    OptionalInt
	Month string
	Week  int

	PanelUnits     OptionalFloat
	PanelValueEuro OptionalFloat
	Extrapolation  OptionalFloat
	Units100       OptionalFloat
	ValueEuro100   OptionalFloat
}

// FiscalPeriod is the fiscal year and month a calendar week belongs to
type FiscalPeriod struct {
	FY    int
	Month string
}

// ExtrapolationKey addresses one extrapolation factor. Week is zero for
// vendors whose factors do not vary by week.
type ExtrapolationKey struct {
	Territory string
	FY        int
	Week      int
	Platform  string
}
