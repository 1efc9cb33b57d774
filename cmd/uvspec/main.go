// Command uvspec generates UV-Vis absorption spectra from Gaussian TDHF/TDDFT
// log files.
//
// Usage:
//
//	uvspec [flags] logfile [logfile ...]
//
// The excited states of the first log file are broadened with Gaussians and
// written to <logfile>.spec.txt. With -join the states of all log files are
// merged first, dropping states whose energy already appeared.
//
// Examples:
//
//	uvspec benzene.log
//	uvspec -sigma 0.2 -grid 0.005 -range 1.5 benzene.log
//	uvspec -join -o combined td1.log td2.log td3.log
//	uvspec -output curve -nometa benzene.log
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/cwbudde/algo-uvspec/extract"
	"github.com/cwbudde/algo-uvspec/internal/config"
	"github.com/cwbudde/algo-uvspec/internal/logger"
	"github.com/cwbudde/algo-uvspec/lineshape"
	"github.com/cwbudde/algo-uvspec/specfile"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr))
}

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	"grid":      "grid",
	"range":     "range",
	"sigma":     "sigma",
	"shift":     "shift",
	"o":         "outfile",
	"outfile":   "outfile",
	"output":    "output",
	"nometa":    "nometa",
	"join":      "join",
	"log-level": "log_level",
}

func run(ctx context.Context, args []string, stderr io.Writer) int {
	defaults := config.New()

	fs := flag.NewFlagSet("uvspec", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "YAML config file (default $"+config.EnvConfigFile+")")
	grid := fs.Float64("grid", defaults.Grid, "energy grid spacing in eV")
	plotRange := fs.Float64("range", defaults.Range, "grid padding beyond the lowest and highest state in eV")
	sigma := fs.Float64("sigma", defaults.Sigma, "Gaussian broadening width in eV")
	shift := fs.Float64("shift", defaults.Shift, "energy axis shift in eV")
	outfile := fs.String("outfile", "", "output file name (default derived from the first logfile)")
	fs.StringVar(outfile, "o", "", "shorthand for -outfile")
	output := fs.String("output", defaults.Output, "columns to write: curve, sticks or both")
	noMeta := fs.Bool("nometa", false, "omit fit metadata from the output file")
	join := fs.Bool("join", false, "merge the excited states of all logfiles")
	logLevel := fs.String("log-level", defaults.LogLevel, "log level: debug, info, warn, error")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: uvspec [flags] logfile [logfile ...]\n\n")
		fmt.Fprintf(stderr, "Generates a UV-Vis spectrum from Gaussian TDHF/TDDFT log files.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	logfiles := fs.Args()
	if len(logfiles) == 0 {
		fs.Usage()
		return exitUsage
	}

	values := map[string]any{
		"grid":      *grid,
		"range":     *plotRange,
		"sigma":     *sigma,
		"shift":     *shift,
		"o":         *outfile,
		"outfile":   *outfile,
		"output":    *output,
		"nometa":    *noMeta,
		"join":      *join,
		"log-level": *logLevel,
	}

	overrides := make(map[string]any)
	fs.Visit(func(f *flag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			overrides[key] = values[f.Name]
		}
	})

	logger.Init(stderr)
	log := logger.Named("uvspec")

	cfg, err := config.Load(ctx, *configPath, overrides)
	if err != nil {
		log.Error(ctx, "configuration failed", logger.Error(err))
		return exitError
	}

	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "ignoring log level", logger.Error(err))
	}

	if err := generate(ctx, cfg, logfiles, log); err != nil {
		log.Error(ctx, "spectrum generation failed", logger.Error(err))
		return exitError
	}

	return exitOK
}

func generate(ctx context.Context, cfg *config.Config, logfiles []string, log logger.Logger) error {
	sources := logfiles
	if !cfg.Join {
		if len(logfiles) > 1 {
			log.Warn(ctx, "ignoring extra logfiles without -join", logger.Strings("ignored", logfiles[1:]))
		}
		sources = logfiles[:1]
	}

	sticks, err := extract.ParseFiles(sources...)
	if err != nil {
		return err
	}
	log.Debug(ctx, "sticks extracted", logger.Strings("sources", sources), logger.Int("sticks", sticks.Len()))

	curve, err := lineshape.Synthesize(sticks, cfg.Params())
	if err != nil {
		return err
	}

	mode, err := cfg.Mode()
	if err != nil {
		return err
	}

	name := cfg.OutFile
	if name == "" {
		name = sources[0]
	}
	path := specfile.OutputName(name)

	opts := specfile.Options{
		Mode:   mode,
		NoMeta: cfg.NoMeta,
		Source: strings.Join(sources, ","),
		RunID:  uuid.NewString(),
	}
	if err := specfile.WriteFile(path, curve, opts); err != nil {
		return err
	}

	fields := []logger.Field{
		logger.String("path", path),
		logger.Int("sticks", sticks.Len()),
		logger.Int("points", curve.Len()),
		logger.String("run_id", opts.RunID),
	}
	if pk, ok := curve.Peak(); ok {
		fields = append(fields,
			logger.Float64("peak_ev", pk.Energy),
			logger.Float64("peak_nm", pk.Wavelength),
			logger.Float64("peak_absorbance", pk.Absorbance),
		)
	}
	log.Info(ctx, "spectrum generation complete", fields...)

	return nil
}
