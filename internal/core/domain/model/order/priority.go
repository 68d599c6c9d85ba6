package order

import (
	"fmt"
	"strings"

	"dronedelivery/internal/pkg/errs"
)

// Priority ranks pending orders for allocation. Greater values are served first.
type Priority int

const (
	// UnknownPriority catches uninitialised values.
	UnknownPriority Priority = iota
	Low
	Medium
	High
)

func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		UnknownPriority: "Unknown",
		Low:             "Low",
		Medium:          "Medium",
		High:            "High",
	}
}

// ParsePriority accepts a priority name ("low", "Medium", "HIGH") or its
// initial ("L", "M", "H"), case-insensitively.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "L", "LOW":
		return Low, nil
	case "M", "MEDIUM":
		return Medium, nil
	case "H", "HIGH":
		return High, nil
	default:
		return UnknownPriority, errs.NewValueIsInvalidErrorWithCause(
			"priority",
			fmt.Errorf("%q is not one of low, medium, high", s),
		)
	}
}

// Validate returns an error for UnknownPriority and any out-of-scale value.
func (p Priority) Validate() error {
	if p < Low || p > High {
		return errs.NewValueIsOutOfRangeError("priority", int(p), int(Low), int(High))
	}
	return nil
}

// String returns the priority name, or "Unknown" for invalid values.
func (p Priority) String() string {
	if str, ok := getPriorityStrings()[p]; ok {
		return str
	}
	return "Unknown"
}
