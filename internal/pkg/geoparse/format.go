package geoparse

import (
	"fmt"
	"math"
	"strconv"
)

// Format renders ll in the notation of kind with as many fractional digits
// as precision calls for. The output is accepted by the grammar of the same
// kind.
func Format(ll LatLong, precision float64, kind Kind) (string, error) {
	if !(precision > 0) || math.IsInf(precision, 1) {
		return "", ErrInvalidPrecision
	}

	var body func(float64) string
	switch kind {
	case KindFloat:
		digits := fractionDigits(precision)
		return strconv.FormatFloat(ll.Latitude, 'f', digits, 64) + ", " +
			strconv.FormatFloat(ll.Longitude, 'f', digits, 64), nil
	case KindDecimalDegree:
		digits := fractionDigits(precision)
		body = func(v float64) string { return strconv.FormatFloat(v, 'f', digits, 64) + "°" }
	case KindDegreeMinute:
		digits := fractionDigits(precision * 60)
		body = func(v float64) string { return formatDM(v, digits) }
	case KindDegreeMinuteSecond:
		digits := fractionDigits(precision * 3600)
		body = func(v float64) string { return formatDMS(v, digits) }
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}

	return formatAxis(ll.Latitude, 'N', 'S', body) + ", " + formatAxis(ll.Longitude, 'E', 'W', body), nil
}

func formatAxis(v float64, positive, negative byte, body func(float64) string) string {
	hemisphere := positive
	if math.Signbit(v) {
		hemisphere = negative
	}
	return body(math.Abs(v)) + " " + string(hemisphere)
}

func formatDM(v float64, digits int) string {
	deg := math.Floor(v)
	minutes := roundTo((v-deg)*60, digits)
	if minutes >= 60 {
		deg++
		minutes -= 60
	}
	return fmt.Sprintf("%d° %s′", int64(deg), strconv.FormatFloat(minutes, 'f', digits, 64))
}

func formatDMS(v float64, digits int) string {
	deg := math.Floor(v)
	rest := (v - deg) * 60
	minutes := math.Floor(rest)
	seconds := roundTo((rest-minutes)*60, digits)
	if seconds >= 60 {
		minutes++
		seconds -= 60
	}
	if minutes >= 60 {
		deg++
		minutes -= 60
	}
	return fmt.Sprintf("%d° %d′ %s″", int64(deg), int64(minutes), strconv.FormatFloat(seconds, 'f', digits, 64))
}

// fractionDigits is the number of decimals needed to show unit, never
// negative. The epsilon absorbs float noise such as 0.1*3600/3600.
func fractionDigits(unit float64) int {
	d := int(math.Ceil(-math.Log10(unit) - 1e-9))
	if d < 0 {
		return 0
	}
	return d
}

func roundTo(v float64, digits int) float64 {
	scale := math.Pow10(digits)
	return math.Round(v*scale) / scale
}
