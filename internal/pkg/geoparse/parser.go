package geoparse

import "strings"

// DefaultGlobe is the globe reported when Options.Globe is empty (Earth).
const DefaultGlobe = "http://www.wikidata.org/entity/Q2"

// Options tune a single Parse call. Precision, when set, replaces the
// detected precision for every notation.
type Options struct {
	Globe     string
	Precision *float64
}

// Coordinate is a parsed coordinate together with its precision, the
// notation it was written in and the globe it refers to.
type Coordinate struct {
	LatLong   LatLong
	Precision float64
	Kind      Kind
	Globe     string
}

// Parser tries its grammars in order and keeps the first match. It holds no
// mutable state and is safe for concurrent use.
type Parser struct {
	grammars []Grammar
}

// NewParser builds a parser over the given grammars, or over
// DefaultGrammars when none are given.
func NewParser(grammars ...Grammar) *Parser {
	if len(grammars) == 0 {
		grammars = DefaultGrammars()
	}
	return &Parser{grammars: grammars}
}

// ParseLatLong returns the match of the first grammar that accepts text.
func (p *Parser) ParseLatLong(text string) (Match, error) {
	for _, g := range p.grammars {
		m, err := g.Parse(text)
		if err != nil {
			continue
		}
		return m, nil
	}

	return Match{}, &ParseError{Value: text, Format: FormatName}
}

func (p *Parser) Parse(text string, opts Options) (*Coordinate, error) {
	m, err := p.ParseLatLong(text)
	if err != nil {
		return nil, err
	}

	globe := strings.TrimSpace(opts.Globe)
	if globe == "" {
		globe = DefaultGlobe
	}

	return &Coordinate{
		LatLong:   m.LatLong,
		Precision: DetectPrecision(m.Kind, m.Latitude, m.Longitude, opts.Precision),
		Kind:      m.Kind,
		Globe:     globe,
	}, nil
}
