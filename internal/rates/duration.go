package rates

import (
	"fmt"
	"strings"
)

// Duration is one of the six standardized booking lengths.
type Duration string

const (
	Duration1D Duration = "1D"
	Duration3D Duration = "3D"
	Duration1W Duration = "1W"
	Duration2W Duration = "2W"
	Duration3W Duration = "3W"
	Duration4W Duration = "4W"
)

// Durations lists every valid duration code in ascending length order.
var Durations = []Duration{Duration1D, Duration3D, Duration1W, Duration2W, Duration3W, Duration4W}

// ParseDuration maps free-text input onto a duration code. Unknown codes
// are a validation error at the input boundary, never a silent fallback.
func ParseDuration(s string) (Duration, error) {
	d := Duration(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Durations {
		if d == known {
			return d, nil
		}
	}
	return "", fmt.Errorf("rates: unknown duration code %q", s)
}
