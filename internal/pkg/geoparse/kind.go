package geoparse

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies the textual notation a coordinate was written in.
type Kind int

const (
	KindFloat Kind = iota
	KindDecimalDegree
	KindDegreeMinute
	KindDegreeMinuteSecond
)

var ErrUnknownKind = errors.New("unknown coordinate notation")

func (k Kind) String() string {
	switch k {
	case KindFloat:
		return "float"
	case KindDecimalDegree:
		return "dd"
	case KindDegreeMinute:
		return "dm"
	case KindDegreeMinuteSecond:
		return "dms"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind accepts the short names returned by Kind.String.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "float":
		return KindFloat, nil
	case "dd":
		return KindDecimalDegree, nil
	case "dm":
		return KindDegreeMinute, nil
	case "dms":
		return KindDegreeMinuteSecond, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}
