package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/geocoord-backend/internal/infrastructure/observability"
)

var Version = "dev"

type rootOptions struct {
	verbose bool
	logger  *zap.Logger
}

// NewRootCommand builds the geoparse command tree. Output goes to the
// command's configured writers so tests can capture it.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{logger: zap.NewNop()}

	cmd := &cobra.Command{
		Use:   "geoparse",
		Short: "Parse and format geographic coordinates",
		Long: `geoparse reads coordinates written in float, decimal degree,
degree-minute or degree-minute-second notation, reports the latitude,
longitude and the precision implied by the digits given, and renders
coordinates back into any of those notations.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			level := "warn"
			if opts.verbose {
				level = "debug"
			}
			logger, err := observability.NewLogger(level, "console")
			if err != nil {
				return err
			}
			opts.logger = logger
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output to stderr")

	cmd.AddCommand(newParseCommand(opts))
	cmd.AddCommand(newFormatCommand(opts))

	return cmd
}
