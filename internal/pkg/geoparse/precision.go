package geoparse

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	arcminute = 1.0 / 60
	arcsecond = 1.0 / 3600
)

var (
	minutesPerDegree = decimal.NewFromInt(60)
	secondsPerDegree = decimal.NewFromInt(3600)
)

// DetectPrecision returns the precision implied by how a coordinate was
// written. An explicit precision is returned as is; otherwise the smaller of
// the two axis precisions wins.
func DetectPrecision(kind Kind, lat, lng Axis, explicit *float64) float64 {
	if explicit != nil {
		return *explicit
	}
	return math.Min(AxisPrecision(kind, lat), AxisPrecision(kind, lng))
}

// AxisPrecision applies the rule for kind to a single axis.
func AxisPrecision(kind Kind, a Axis) float64 {
	switch kind {
	case KindDegreeMinute:
		return degreeMinutePrecision(a)
	case KindDegreeMinuteSecond:
		return degreeMinuteSecondPrecision(a)
	default:
		return math.Pow10(-digitsAfterSeparator(a.Degrees))
	}
}

// The minute count is computed exactly so that "30.00′" counts as a whole
// minute.
func degreeMinutePrecision(a Axis) float64 {
	minutes := decimalOrZero(a.Degrees).Mul(minutesPerDegree).Add(decimalOrZero(a.Minutes))
	if minutes.Equal(minutes.Floor()) {
		return arcminute
	}
	return math.Pow10(-digitsAfterSeparator(a.Minutes)) / 3600
}

func degreeMinuteSecondPrecision(a Axis) float64 {
	seconds := decimalOrZero(a.Degrees).Mul(secondsPerDegree).
		Add(decimalOrZero(a.Minutes).Mul(minutesPerDegree)).
		Add(decimalOrZero(a.Seconds))
	if seconds.Mod(secondsPerDegree).IsZero() {
		return arcsecond
	}
	return math.Pow10(-digitsAfterSeparator(a.Seconds)) / 3600
}

func decimalOrZero(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// digitsAfterSeparator counts characters, not significant digits:
// "51.50" yields 2.
func digitsAfterSeparator(s string) int {
	i := strings.IndexByte(s, '.')
	if i < 0 {
		return 0
	}
	return len(s) - i - 1
}
