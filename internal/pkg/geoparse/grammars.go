package geoparse

import (
	"regexp"
	"strconv"
)

var (
	floatBody = regexp.MustCompile(`^(\d+(?:\.\d+)?)$`)
	ddBody    = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*°$`)
	dmBody    = regexp.MustCompile(`^(\d+)\s*°\s*(\d+(?:\.\d+)?)\s*(?:′|')$`)
	dmsBody   = regexp.MustCompile(`^(\d+)\s*°\s*(\d+)\s*(?:′|')\s*(\d+(?:\.\d+)?)\s*(?:′′|''|″|")$`)
)

const (
	minutesCap = 60
	secondsCap = 60
)

// DefaultGrammars returns the grammars in the order the parser tries them.
func DefaultGrammars() []Grammar {
	return []Grammar{
		FloatGrammar{},
		DMSGrammar{},
		DMGrammar{},
		DDGrammar{},
	}
}

// FloatGrammar accepts bare signed numbers: "51.5, -0.12" or "51.5 N 0.12 W".
type FloatGrammar struct{}

func (FloatGrammar) Kind() Kind { return KindFloat }

func (g FloatGrammar) Parse(text string) (Match, error) {
	return parseCoordinate(g.Kind(), text, func(body string) (Axis, float64, bool) {
		m := floatBody.FindStringSubmatch(body)
		if m == nil {
			return Axis{}, 0, false
		}
		deg, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return Axis{}, 0, false
		}
		return Axis{Degrees: m[1]}, deg, true
	})
}

// DDGrammar accepts decimal degrees with a degree sign: "51.5°, 0.12° W".
type DDGrammar struct{}

func (DDGrammar) Kind() Kind { return KindDecimalDegree }

func (g DDGrammar) Parse(text string) (Match, error) {
	return parseCoordinate(g.Kind(), text, func(body string) (Axis, float64, bool) {
		m := ddBody.FindStringSubmatch(body)
		if m == nil {
			return Axis{}, 0, false
		}
		deg, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return Axis{}, 0, false
		}
		return Axis{Degrees: m[1]}, deg, true
	})
}

// DMGrammar accepts whole degrees with decimal minutes: "51° 30.5′ N, 0° 7′ W".
type DMGrammar struct{}

func (DMGrammar) Kind() Kind { return KindDegreeMinute }

func (g DMGrammar) Parse(text string) (Match, error) {
	return parseCoordinate(g.Kind(), text, func(body string) (Axis, float64, bool) {
		m := dmBody.FindStringSubmatch(body)
		if m == nil {
			return Axis{}, 0, false
		}
		deg, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return Axis{}, 0, false
		}
		minutes, err := strconv.ParseFloat(m[2], 64)
		if err != nil || minutes >= minutesCap {
			return Axis{}, 0, false
		}
		return Axis{Degrees: m[1], Minutes: m[2]}, deg + minutes/60, true
	})
}

// DMSGrammar accepts whole degrees and minutes with decimal seconds:
// "51° 30′ 15.5″ N, 0° 7′ 32″ W".
type DMSGrammar struct{}

func (DMSGrammar) Kind() Kind { return KindDegreeMinuteSecond }

func (g DMSGrammar) Parse(text string) (Match, error) {
	return parseCoordinate(g.Kind(), text, func(body string) (Axis, float64, bool) {
		m := dmsBody.FindStringSubmatch(body)
		if m == nil {
			return Axis{}, 0, false
		}
		deg, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return Axis{}, 0, false
		}
		minutes, err := strconv.ParseFloat(m[2], 64)
		if err != nil || minutes >= minutesCap {
			return Axis{}, 0, false
		}
		seconds, err := strconv.ParseFloat(m[3], 64)
		if err != nil || seconds >= secondsCap {
			return Axis{}, 0, false
		}
		return Axis{Degrees: m[1], Minutes: m[2], Seconds: m[3]}, deg + minutes/60 + seconds/3600, true
	})
}
