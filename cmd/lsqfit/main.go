// Command lsqfit fits a polynomial to sample points by least squares and
// prints its value at a query point.
//
//	lsqfit -x 0,1,2,3,4 -y 0,1,4,9,16 -terms 3 -at 5
//	25
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/lsqfit/lsq"
	"github.com/katalvlaran/lsqfit/matrix"
)

const (
	defaultX     = "0,1,2,3,4"
	defaultY     = "0,1,4,9,16"
	defaultTerms = 3
	defaultAt    = 5.0
)

var errUsage = errors.New("lsqfit: invalid arguments")

// config holds the parsed command line.
type config struct {
	x, y     []float64
	terms    int
	at       float64
	tol      float64
	logLevel zerolog.Level
}

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Error().Err(err).Msg("could not fit samples")
		os.Exit(1)
	}
}

// run parses args, fits, and writes p(at) to out.
func run(args []string, out io.Writer) error {
	cfg, err := parseArgs(args)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(cfg.logLevel)

	log.Debug().
		Floats64("x", cfg.x).
		Floats64("y", cfg.y).
		Int("terms", cfg.terms).
		Float64("tol", cfg.tol).
		Msg("fitting")

	coeffs, err := lsq.FitReal(cfg.x, cfg.y, cfg.terms, lsq.WithTolerance(cfg.tol))
	if err != nil {
		return err
	}
	residual, err := lsq.Residual(coeffs, matrix.Complexify(cfg.x), matrix.Complexify(cfg.y))
	if err != nil {
		return err
	}
	value := lsq.EvaluateReal(coeffs, cfg.at)

	log.Info().
		Floats64("coefficients", coeffs.RealValues()).
		Float64("residual", residual).
		Float64("at", cfg.at).
		Float64("value", value).
		Msg("fit complete")

	_, err = fmt.Fprintln(out, strconv.FormatFloat(value, 'g', -1, 64))
	return err
}

// parseArgs reads the flag set into a config.
func parseArgs(args []string) (config, error) {
	fs := flag.NewFlagSet("lsqfit", flag.ContinueOnError)
	var (
		xs    = fs.String("x", defaultX, "comma-separated sample x-values")
		ys    = fs.String("y", defaultY, "comma-separated sample y-values")
		terms = fs.Int("terms", defaultTerms, "number of polynomial terms (degree+1)")
		at    = fs.Float64("at", defaultAt, "point at which to evaluate the fitted polynomial")
		tol   = fs.Float64("tol", lsq.DefaultTolerance, "relative pivot tolerance for singularity checks")
		level = fs.String("log-level", zerolog.InfoLevel.String(), "log level (debug, info, warn, error)")
	)
	if err := fs.Parse(args); err != nil {
		return config{}, fmt.Errorf("%v: %w", err, errUsage)
	}

	cfg := config{terms: *terms, at: *at, tol: *tol}
	var err error
	if cfg.x, err = parseFloats(*xs); err != nil {
		return config{}, fmt.Errorf("-x: %v: %w", err, errUsage)
	}
	if cfg.y, err = parseFloats(*ys); err != nil {
		return config{}, fmt.Errorf("-y: %v: %w", err, errUsage)
	}
	if cfg.terms < 0 {
		return config{}, fmt.Errorf("-terms=%d: %w", cfg.terms, errUsage)
	}
	if cfg.tol < 0 || math.IsNaN(cfg.tol) || math.IsInf(cfg.tol, 0) {
		return config{}, fmt.Errorf("-tol=%g: %w", cfg.tol, errUsage)
	}
	if cfg.logLevel, err = zerolog.ParseLevel(*level); err != nil {
		return config{}, fmt.Errorf("-log-level: %v: %w", err, errUsage)
	}

	return cfg, nil
}

// parseFloats splits a comma-separated list; blanks around items are ignored.
func parseFloats(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}

	return out, nil
}
