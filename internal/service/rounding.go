package service

import (
	"fmt"
	"math"
	"strings"
)

const secondsPerHour = 3600

type Rounding string

const (
	RoundingCeil    Rounding = "ceil"
	RoundingNearest Rounding = "nearest"
)

func ParseRounding(s string) (Rounding, error) {
	switch r := Rounding(strings.ToLower(strings.TrimSpace(s))); r {
	case RoundingCeil, RoundingNearest:
		return r, nil
	case "":
		return RoundingCeil, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRounding, s)
	}
}

// Hours converts seconds to whole hours. Nearest rounds halves away from zero.
func (r Rounding) Hours(totalSeconds float64) int {
	hours := totalSeconds / secondsPerHour
	if r == RoundingNearest {
		return int(math.Round(hours))
	}
	return int(math.Ceil(hours))
}
