package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcos-nsantos/geocoord-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/geocoord-backend/internal/pkg/geoparse"
)

type formatOptions struct {
	latitude  float64
	longitude float64
	precision float64
	notation  string
}

func newFormatCommand(_ *rootOptions) *cobra.Command {
	opts := &formatOptions{}

	cmd := &cobra.Command{
		Use:     "format",
		Short:   "Render a coordinate in float, dd, dm or dms notation",
		Example: `  geoparse format --lat 51.504306 --lng -0.125556 --precision 0.0000277 --notation dms`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kind, err := geoparse.ParseKind(opts.notation)
			if err != nil {
				return err
			}

			coord, err := valueobject.NewGlobeCoordinate(opts.latitude, opts.longitude, opts.precision, geoparse.DefaultGlobe)
			if err != nil {
				return err
			}

			text, err := geoparse.Format(geoparse.LatLong{Latitude: coord.Latitude, Longitude: coord.Longitude}, coord.Precision, kind)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
			return err
		},
	}

	cmd.Flags().Float64Var(&opts.latitude, "lat", 0, "latitude in decimal degrees")
	cmd.Flags().Float64Var(&opts.longitude, "lng", 0, "longitude in decimal degrees")
	cmd.Flags().Float64Var(&opts.precision, "precision", 1.0/3600, "precision in degrees")
	cmd.Flags().StringVar(&opts.notation, "notation", "dms", "float, dd, dm or dms")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lng")

	return cmd
}
