// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/compintel/ratecard/pkg/constants"
)

// Round rounds a value to two decimals via the scale-round-descale pattern,
// i.e. to represent hourly rates and percentages.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// RoundWhole rounds a value to the nearest whole unit, i.e. to represent
// annual currency amounts.
func RoundWhole(val float64) float64 {
	return math.Round(val)
}

// Clamp limits a value to the inclusive range [min, max].
func Clamp(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// ApplyPercentage applies a percentage to a value
func ApplyPercentage(value, percentage float64) float64 {
	return value * (percentage / constants.PercentageMultiplier)
}
