package operations

// Step identifiers, in execution order
const (
	StepIDDiscover   = "discover"
	StepIDCalendar   = "calendar"
	StepIDGSD        = "gsd"
	StepIDGFK        = "gfk"
	StepIDSubstitute = "substitute"
	StepIDCombine    = "combine"
	StepIDExport     = "export"
)

// Step names
const (
	StepNameDiscover   = "Input Discovery"
	StepNameCalendar   = "Fiscal Calendar"
	StepNameGSD        = "GSD Panel"
	StepNameGFK        = "GFK Panel"
	StepNameSubstitute = "Substitute Rows"
	StepNameCombine    = "Combine"
	StepNameExport     = "Report Export"
)
