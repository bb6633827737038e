package contract

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/huangsam/weightlog/schema"
)

// ErrEmptyWeight is returned when no weight value was entered.
var ErrEmptyWeight = errors.New("weight value is empty")

// ParseWeightInput parses a weight typed in the given unit and returns kilograms.
// A comma is accepted as the decimal separator. The converted value must lie
// within the accepted entry range.
func ParseWeightInput(s string, unit schema.UnitSystem) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrEmptyWeight
	}
	s = strings.ReplaceAll(s, ",", ".")

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid weight '%s': not a number", s)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("invalid weight '%s': not a finite number", s)
	}
	return ValidateKilograms(unit.ToKilograms(value))
}

// ValidateKilograms checks a stored value against the accepted entry range.
func ValidateKilograms(kg float64) (float64, error) {
	if kg < schema.MinEntryKilograms || kg > schema.MaxEntryKilograms {
		return 0, fmt.Errorf("weight %.1f kg is outside the accepted range %.0f-%.0f kg",
			kg, schema.MinEntryKilograms, schema.MaxEntryKilograms)
	}
	return kg, nil
}
