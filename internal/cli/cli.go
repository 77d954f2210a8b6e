// Package cli provides command-line interface functionality for fuzzcollect.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/AndreyAkinshin/fuzzcollect/internal/collector"
	"github.com/AndreyAkinshin/fuzzcollect/internal/config"
	"github.com/AndreyAkinshin/fuzzcollect/internal/errors"
	"github.com/AndreyAkinshin/fuzzcollect/internal/fetch"
	"github.com/AndreyAkinshin/fuzzcollect/internal/output"
	"github.com/AndreyAkinshin/fuzzcollect/internal/report"
	"github.com/AndreyAkinshin/fuzzcollect/internal/summary"
)

// Version is set at build time.
var Version = "dev"

// wantsHelp returns true if args contain -h or --help before any -- separator.
func wantsHelp(args []string) bool {
	for _, arg := range args {
		if arg == "-h" || arg == "--help" {
			return true
		}
		if arg == "--" {
			return false
		}
	}
	return false
}

// Run executes the CLI with the given arguments and returns an exit code.
func Run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return run(ctx, args, output.New())
}

func run(ctx context.Context, args []string, w *output.Writer) int {
	if wantsHelp(args) {
		printUsage(w)
		return errors.ExitSuccess
	}
	if len(args) == 1 && (args[0] == "--version" || args[0] == "version") {
		w.Println("fuzzcollect %s", Version)
		return errors.ExitSuccess
	}

	opts, err := parseOptions(args)
	if err != nil {
		w.ErrorPrefix("%v", err)
		w.Hint("run 'fuzzcollect --help' for usage")
		return errors.GetExitCode(err)
	}
	w.SetQuiet(opts.Quiet)

	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = os.Getenv(config.EnvVar)
	}
	cfg, err := config.LoadAndValidate(configPath)
	if err != nil {
		cerr := errors.Configf("%s: %v", configPath, err)
		w.ErrorPrefix("%v", cerr)
		return cerr.ExitCode()
	}

	logger, err := newLogger(opts.Verbose)
	if err != nil {
		w.ErrorPrefix("failed to initialize logger: %v", err)
		return errors.ExitRuntimeError
	}
	defer func() { _ = logger.Sync() }()

	agg := summary.New()
	renderer, err := report.New(opts.Mode, w, agg)
	if err != nil {
		w.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}

	c := collector.New(collector.Options{
		Fetcher: fetch.NewClient(fetch.Options{
			UserAgent: cfg.HTTP.UserAgent,
			Timeout:   cfg.Timeout(),
			Logger:    logger,
		}),
		Renderer: renderer,
		Mode:     opts.Mode,
		Filter:   cfg.Filter(),
		Output:   w,
		Logger:   logger,
	})

	res, err := c.Run(ctx, opts.RunURI)
	if err != nil {
		w.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}

	logger.Debug("run complete",
		zap.String("mode", string(opts.Mode)),
		zap.Int("discovered", res.Discovered),
		zap.Int("rendered", res.Rendered),
		zap.Int("skipped", res.Skipped),
		zap.Int("parse_failures", res.ParseFailures))
	if opts.Mode == report.ModeSum {
		logger.Debug("run totals",
			zap.Stringer("totals", agg.Totals()),
			zap.Strings("failing_shards", agg.FailingShards()))
	}
	return errors.ExitSuccess
}

// Options holds parsed command-line options.
type Options struct {
	Mode       report.Mode
	RunURI     string
	ConfigPath string
	Quiet      bool
	Verbose    bool
}

// parseOptions manually parses flags and the run URI from arguments.
//
// Flags may appear before or after the run URI. Everything after -- is
// treated as positional.
func parseOptions(args []string) (*Options, error) {
	opts := &Options{}
	var modeValue string
	var modeSet bool
	var positional []string

	i := 0
	for i < len(args) {
		arg := args[i]

		switch {
		case arg == "--type":
			if i+1 >= len(args) {
				return nil, errors.Usage("--type requires a value")
			}
			modeValue, modeSet = args[i+1], true
			i += 2
		case strings.HasPrefix(arg, "--type="):
			modeValue, modeSet = strings.TrimPrefix(arg, "--type="), true
			i++
		case arg == "--config":
			if i+1 >= len(args) {
				return nil, errors.Usage("--config requires a value")
			}
			opts.ConfigPath = args[i+1]
			i += 2
		case strings.HasPrefix(arg, "--config="):
			opts.ConfigPath = strings.TrimPrefix(arg, "--config=")
			i++
		case arg == "-q" || arg == "--quiet":
			opts.Quiet = true
			i++
		case arg == "-v" || arg == "--verbose":
			opts.Verbose = true
			i++
		case arg == "--":
			positional = append(positional, args[i+1:]...)
			i = len(args)
		case strings.HasPrefix(arg, "-") && arg != "-":
			return nil, errors.Usagef("unknown flag %s", arg)
		default:
			positional = append(positional, arg)
			i++
		}
	}

	if !modeSet {
		return nil, errors.Usage("--type is required (div, sum or all)")
	}
	mode, err := report.ParseMode(modeValue)
	if err != nil {
		return nil, err
	}
	opts.Mode = mode

	switch len(positional) {
	case 0:
		return nil, errors.Usage("missing <run-uri>")
	case 1:
		opts.RunURI = positional[0]
	default:
		return nil, errors.Usagef("unexpected argument %q", positional[1])
	}

	if opts.Quiet && opts.Verbose {
		return nil, errors.Usage("--quiet and --verbose are mutually exclusive")
	}

	return opts, nil
}

// newLogger returns a no-op logger unless verbose output is requested, in
// which case debug logs go to stderr.
func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
