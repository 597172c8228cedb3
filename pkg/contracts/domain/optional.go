package domain

import "strconv"

// OptionalInt is an integer that may be absent, e.g. a fiscal year that
// could not be resolved from the calendar.
type OptionalInt struct {
	Value int
	Valid bool
}

// SomeInt returns a present OptionalInt
func SomeInt(v int) OptionalInt {
	return OptionalInt{Value: v, Valid: true}
}

// AtLeast reports whether the value is present and >= min. Absent values never qualify.
func (o OptionalInt) AtLeast(min int) bool {
	return o.Valid && o.Value >= min
}

// String renders the value, or an empty string when absent
func (o OptionalInt) String() string {
	if !o.Valid {
		return ""
	}
	return strconv.Itoa(o.Value)
}

// OptionalFloat is a float that may be absent
type OptionalFloat struct {
	Value float64
	Valid bool
}

// SomeFloat returns a present OptionalFloat
func SomeFloat(v float64) OptionalFloat {
	return OptionalFloat{Value: v, Valid: true}
}

// String renders the value with the shortest exact representation, or an
// empty string when absent.
func (o OptionalFloat) String() string {
	if !o.Valid {
		return ""
	}
	return strconv.FormatFloat(o.Value, 'f', -1, 64)
}

// Project scales a panel figure to 100% of the market. The result is absent
// when either operand is absent or the factor is not positive.
func Project(panel, factor OptionalFloat) OptionalFloat {
	if !panel.Valid || !factor.Valid || factor.Value <= 0 {
		return OptionalFloat{}
	}
	return SomeFloat(panel.Value / factor.Value)
}
