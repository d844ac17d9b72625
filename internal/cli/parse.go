package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/geocoord-backend/internal/pkg/geoparse"
)

type parseOptions struct {
	precision float64
	globe     string
	json      bool
}

type parsedCoordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Precision float64 `json:"precision"`
	Notation  string  `json:"notation"`
	Globe     string  `json:"globe"`
}

type parseResult struct {
	Input      string            `json:"input"`
	Coordinate *parsedCoordinate `json:"coordinate,omitempty"`
	Error      string            `json:"error,omitempty"`
}

func newParseCommand(root *rootOptions) *cobra.Command {
	opts := &parseOptions{}

	cmd := &cobra.Command{
		Use:   "parse [text...]",
		Short: "Parse coordinates given as arguments or one per line on stdin",
		Example: `  geoparse parse "51° 30′ 15.5″ N, 0° 7′ 32″ W"
  echo "10.5 20.25" | geoparse parse --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var precision *float64
			if cmd.Flags().Changed("precision") {
				precision = &opts.precision
			}
			return runParse(cmd, root.logger, opts, precision, args)
		},
	}

	cmd.Flags().Float64Var(&opts.precision, "precision", 0, "use this precision in degrees instead of detecting it")
	cmd.Flags().StringVar(&opts.globe, "globe", geoparse.DefaultGlobe, "globe identifier")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print one JSON object per input")

	return cmd
}

func runParse(cmd *cobra.Command, logger *zap.Logger, opts *parseOptions, precision *float64, args []string) error {
	parser := geoparse.NewParser()
	out := cmd.OutOrStdout()

	var total, failed int
	handle := func(text string) error {
		total++
		result := parseResult{Input: text}

		c, err := parser.Parse(text, geoparse.Options{Globe: opts.globe, Precision: precision})
		if err != nil {
			failed++
			result.Error = err.Error()
			logger.Debug("parse failed", zap.String("input", text), zap.Error(err))
		} else {
			result.Coordinate = &parsedCoordinate{
				Latitude:  c.LatLong.Latitude,
				Longitude: c.LatLong.Longitude,
				Precision: c.Precision,
				Notation:  c.Kind.String(),
				Globe:     c.Globe,
			}
			logger.Debug("parsed", zap.String("input", text), zap.Stringer("notation", c.Kind))
		}
		return writeParseResult(out, cmd.ErrOrStderr(), result, opts.json)
	}

	if len(args) > 0 {
		for _, text := range args {
			if err := handle(text); err != nil {
				return err
			}
		}
	} else {
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if err := handle(line); err != nil {
				return err
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d inputs could not be parsed", failed, total)
	}
	return nil
}

func writeParseResult(out, errOut io.Writer, r parseResult, asJSON bool) error {
	if asJSON {
		b, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
		_, err = fmt.Fprintln(out, string(b))
		return err
	}

	if r.Error != "" {
		_, err := fmt.Fprintf(errOut, "%s\t%s\n", r.Input, r.Error)
		return err
	}

	c := r.Coordinate
	_, err := fmt.Fprintf(out, "%s\t%s\t%s, %s\t%s\n",
		r.Input, c.Notation,
		strconv.FormatFloat(c.Latitude, 'f', -1, 64),
		strconv.FormatFloat(c.Longitude, 'f', -1, 64),
		strconv.FormatFloat(c.Precision, 'g', -1, 64),
	)
	return err
}
