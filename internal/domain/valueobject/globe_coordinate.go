package valueobject

import (
	"fmt"
	"math"
	"strings"

	"github.com/paulmach/orb"

	"github.com/marcos-nsantos/geocoord-backend/internal/domain"
)

// GlobeCoordinate is a validated position on a globe together with the
// precision, in degrees, it was given with.
type GlobeCoordinate struct {
	Latitude  float64
	Longitude float64
	Precision float64
	Globe     string
}

func NewGlobeCoordinate(lat, lng, precision float64, globe string) (*GlobeCoordinate, error) {
	c := &GlobeCoordinate{
		Latitude:  lat,
		Longitude: lng,
		Precision: precision,
		Globe:     strings.TrimSpace(globe),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *GlobeCoordinate) Validate() error {
	if !c.IsValid() {
		return fmt.Errorf("%w: latitude %v, longitude %v", domain.ErrInvalidLocation, c.Latitude, c.Longitude)
	}
	if !(c.Precision > 0) || math.IsInf(c.Precision, 1) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidPrecision, c.Precision)
	}
	if c.Globe == "" {
		return domain.ErrInvalidGlobe
	}
	return nil
}

func (c *GlobeCoordinate) IsValid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// Point returns the coordinate in orb's (lng, lat) order.
func (c *GlobeCoordinate) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}
