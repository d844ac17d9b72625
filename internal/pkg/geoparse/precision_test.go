package geoparse_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marcos-nsantos/geocoord-backend/internal/pkg/geoparse"
)

func TestAxisPrecision(t *testing.T) {
	tests := []struct {
		name string
		kind geoparse.Kind
		axis geoparse.Axis
		want float64
	}{
		{"decimal degree without fraction", geoparse.KindDecimalDegree, geoparse.Axis{Degrees: "10"}, 1},
		{"decimal degree one digit", geoparse.KindDecimalDegree, geoparse.Axis{Degrees: "10.5"}, 0.1},
		{"decimal degree counts trailing zeros", geoparse.KindDecimalDegree, geoparse.Axis{Degrees: "10.50"}, 0.01},
		{"float uses the decimal degree rule", geoparse.KindFloat, geoparse.Axis{Degrees: "51.50000"}, 1e-5},
		{"whole minutes", geoparse.KindDegreeMinute, geoparse.Axis{Degrees: "10", Minutes: "30"}, 1.0 / 60},
		{"fractional minutes", geoparse.KindDegreeMinute, geoparse.Axis{Degrees: "10", Minutes: "30.5"}, math.Pow10(-1) / 3600},
		{"integral minutes with trailing zeros", geoparse.KindDegreeMinute, geoparse.Axis{Degrees: "10", Minutes: "30.00"}, 1.0 / 60},
		{"fractional minutes with two digits", geoparse.KindDegreeMinute, geoparse.Axis{Degrees: "0", Minutes: "7.25"}, math.Pow10(-2) / 3600},
		{"whole degree in dms", geoparse.KindDegreeMinuteSecond, geoparse.Axis{Degrees: "10", Minutes: "0", Seconds: "0"}, 1.0 / 3600},
		{"whole degree with zero fraction seconds", geoparse.KindDegreeMinuteSecond, geoparse.Axis{Degrees: "10", Minutes: "0", Seconds: "0.00"}, 1.0 / 3600},
		{"whole seconds", geoparse.KindDegreeMinuteSecond, geoparse.Axis{Degrees: "10", Minutes: "30", Seconds: "15"}, 1.0 / 3600},
		{"fractional seconds", geoparse.KindDegreeMinuteSecond, geoparse.Axis{Degrees: "10", Minutes: "30", Seconds: "15.25"}, math.Pow10(-2) / 3600},
		{"only seconds make the degree fractional", geoparse.KindDegreeMinuteSecond, geoparse.Axis{Degrees: "10", Minutes: "0", Seconds: "0.50"}, math.Pow10(-2) / 3600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, geoparse.AxisPrecision(tt.kind, tt.axis))
		})
	}
}

func TestDetectPrecision(t *testing.T) {
	t.Run("takes the smaller axis precision", func(t *testing.T) {
		got := geoparse.DetectPrecision(geoparse.KindDecimalDegree,
			geoparse.Axis{Degrees: "10.5"}, geoparse.Axis{Degrees: "20.25"}, nil)

		assert.Equal(t, 0.01, got)
	})

	t.Run("is symmetric in its axes", func(t *testing.T) {
		lat := geoparse.Axis{Degrees: "10", Minutes: "30.5"}
		lng := geoparse.Axis{Degrees: "20", Minutes: "15"}

		assert.Equal(t,
			geoparse.DetectPrecision(geoparse.KindDegreeMinute, lat, lng, nil),
			geoparse.DetectPrecision(geoparse.KindDegreeMinute, lng, lat, nil),
		)
		assert.Equal(t, math.Pow10(-1)/3600, geoparse.DetectPrecision(geoparse.KindDegreeMinute, lat, lng, nil))
	})

	t.Run("explicit precision bypasses detection", func(t *testing.T) {
		explicit := 2.5
		for _, kind := range []geoparse.Kind{
			geoparse.KindFloat,
			geoparse.KindDecimalDegree,
			geoparse.KindDegreeMinute,
			geoparse.KindDegreeMinuteSecond,
		} {
			got := geoparse.DetectPrecision(kind,
				geoparse.Axis{Degrees: "1", Minutes: "2.5", Seconds: "3.25"},
				geoparse.Axis{Degrees: "4.125"}, &explicit)

			assert.Equal(t, 2.5, got, kind.String())
		}
	})
}
