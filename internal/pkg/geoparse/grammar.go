package geoparse

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// LatLong is a signed latitude/longitude pair in decimal degrees. Range
// checks belong to the value objects built from it.
type LatLong struct {
	Latitude  float64
	Longitude float64
}

// Axis holds the unsigned numeric components of one axis exactly as they
// appeared in the input. Components a notation does not have are empty.
type Axis struct {
	Degrees string
	Minutes string
	Seconds string
}

// Match is what a grammar returns on success.
type Match struct {
	LatLong   LatLong
	Kind      Kind
	Latitude  Axis
	Longitude Axis
}

// Grammar parses one coordinate notation. Parse must fail with an error when
// the text is not written in that notation; callers treat any error as
// "did not match".
type Grammar interface {
	Kind() Kind
	Parse(text string) (Match, error)
}

// axisBody parses the unsigned, hemisphere-free body of one axis and returns
// its raw components and absolute value in degrees.
type axisBody func(body string) (Axis, float64, bool)

func parseCoordinate(kind Kind, text string, body axisBody) (Match, error) {
	s := strings.TrimSpace(norm.NFKC.String(text))
	if s == "" {
		return Match{}, fmt.Errorf("%s: %w", kind, errNoMatch)
	}

	for _, c := range splitCandidates(s) {
		latAxis, lat, ok := parseAxis(c[0], true, body)
		if !ok {
			continue
		}
		lngAxis, lng, ok := parseAxis(c[1], false, body)
		if !ok {
			continue
		}
		return Match{
			LatLong:   LatLong{Latitude: lat, Longitude: lng},
			Kind:      kind,
			Latitude:  latAxis,
			Longitude: lngAxis,
		}, nil
	}

	return Match{}, fmt.Errorf("%s: %w", kind, errNoMatch)
}

// splitCandidates lists the ways s can be cut into a latitude and a
// longitude part. A single comma is authoritative; without one, every
// whitespace boundary is a candidate, leftmost first.
func splitCandidates(s string) [][2]string {
	if strings.Contains(s, ",") {
		parts := strings.Split(s, ",")
		if len(parts) != 2 {
			return nil
		}
		return [][2]string{{strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])}}
	}

	fields := strings.Fields(s)
	candidates := make([][2]string, 0, len(fields))
	for i := 1; i < len(fields); i++ {
		candidates = append(candidates, [2]string{
			strings.Join(fields[:i], " "),
			strings.Join(fields[i:], " "),
		})
	}
	return candidates
}

func parseAxis(s string, latitude bool, body axisBody) (Axis, float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Axis{}, 0, false
	}

	var hemisphere byte
	switch {
	case isHemisphere(s[0]):
		hemisphere = s[0]
		s = strings.TrimSpace(s[1:])
	case isHemisphere(s[len(s)-1]):
		hemisphere = s[len(s)-1]
		s = strings.TrimSpace(s[:len(s)-1])
	}

	negative := false
	if strings.HasPrefix(s, "-") {
		if hemisphere != 0 {
			return Axis{}, 0, false
		}
		negative = true
		s = s[1:]
	}

	axis, value, ok := body(s)
	if !ok {
		return Axis{}, 0, false
	}

	switch hemisphere {
	case 'N':
		ok = latitude
	case 'S':
		ok = latitude
		negative = true
	case 'E':
		ok = !latitude
	case 'W':
		ok = !latitude
		negative = true
	}
	if !ok {
		return Axis{}, 0, false
	}

	if negative {
		value = -value
	}
	return axis, value, true
}

func isHemisphere(b byte) bool {
	return b == 'N' || b == 'S' || b == 'E' || b == 'W'
}
