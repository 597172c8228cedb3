package dataset

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"hwreport/pkg/contracts/domain"
)

// ErrMalformedNumber is returned for cell text that is not a number
var ErrMalformedNumber = errors.New("malformed number")

// ParseFloat converts cell text to a float. Blank text is a missing value,
// not an error. With stripThousands, "," separators are removed first.
func ParseFloat(text string, stripThousands bool) (domain.OptionalFloat, error) {
	s := strings.TrimSpace(text)
	if stripThousands {
		s = strings.ReplaceAll(s, ",", "")
	}
	if s == "" {
		return domain.OptionalFloat{}, nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return domain.OptionalFloat{}, fmt.Errorf("%w: %q", ErrMalformedNumber, text)
	}
	return domain.SomeFloat(v), nil
}

// ParseInt converts cell text to an integer. Integral floats such as
// "2023.0", which spreadsheets produce for whole numbers, are accepted.
func ParseInt(text string) (domain.OptionalInt, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return domain.OptionalInt{}, nil
	}

	if v, err := strconv.Atoi(s); err == nil {
		return domain.SomeInt(v), nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return domain.OptionalInt{}, fmt.Errorf("%w: %q", ErrMalformedNumber, text)
	}
	return domain.SomeInt(int(f)), nil
}
