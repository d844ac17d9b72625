package valueobject

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/marcos-nsantos/geocoord-backend/internal/domain"
)

type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

func NewBoundingBox(minLat, maxLat, minLng, maxLng float64) *BoundingBox {
	return &BoundingBox{
		MinLat: minLat,
		MaxLat: maxLat,
		MinLng: minLng,
		MaxLng: maxLng,
	}
}

func (bb *BoundingBox) IsValid() bool {
	return bb.MinLat <= bb.MaxLat &&
		bb.MinLng <= bb.MaxLng &&
		bb.MinLat >= -90 && bb.MaxLat <= 90 &&
		bb.MinLng >= -180 && bb.MaxLng <= 180
}

func (bb *BoundingBox) Validate() error {
	if !bb.IsValid() {
		return fmt.Errorf("%w: lat [%v, %v], lng [%v, %v]",
			domain.ErrInvalidBoundingBox, bb.MinLat, bb.MaxLat, bb.MinLng, bb.MaxLng)
	}
	return nil
}

func (bb *BoundingBox) Contains(lat, lng float64) bool {
	return bb.Bound().Contains(orb.Point{lng, lat})
}

func (bb *BoundingBox) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{bb.MinLng, bb.MinLat},
		Max: orb.Point{bb.MaxLng, bb.MaxLat},
	}
}
