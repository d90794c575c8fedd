package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hyperifyio/pdfvalidate/internal/app"
)

// errUsage marks argument errors; the process exits with code 2 for them.
var errUsage = errors.New("usage")

func main() {
	cfg, envFile, showVersion, err := parseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if showVersion {
		fmt.Printf("pdfvalidate %s (%s)\n", app.BuildVersion, app.BuildCommit)
		return
	}

	if err := app.LoadEnvFiles(envFile); err != nil {
		fmt.Fprintf(os.Stderr, "load env: %v\n", err)
		os.Exit(1)
	}
	app.ApplyEnvToLogging(&cfg)

	logger, closer, err := app.NewLogger(cfg.LogFile, os.Stdout, cfg.Verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logging: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	if _, err := run(context.Background(), cfg, logger); err != nil {
		logger.Error().Err(err).Msg("run failed")
		closer.Close()
		os.Exit(1)
	}
	// Validation failures are reported through the log only; exit 0.
}

// parseArgs reads the positional PDF path and the flags, which may appear in
// any order.
func parseArgs(args []string, stderr io.Writer) (cfg app.Config, envFile string, showVersion bool, err error) {
	fs := flag.NewFlagSet("pdfvalidate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: pdfvalidate [flags] <pdf_path>")
		fs.PrintDefaults()
	}
	fs.StringVar(&cfg.ConfigPath, "config", "", "Path to the YAML configuration file (required)")
	fs.StringVar(&cfg.ExpectedCompany, "company_name", "", "Expected company name (required)")
	fs.StringVar(&cfg.ExpectedDate, "date", "", "Expected date in ISO format, YYYY-MM-DD (required)")
	fs.StringVar(&cfg.CompanyKeyword, "company_keyword", "", "Override company_keyword from the config file")
	fs.StringVar(&cfg.LogFile, "log.file", "", "Log file to append to (default "+app.DefaultLogFile+")")
	fs.StringVar(&envFile, "env", ".env", "Optional dotenv file")
	fs.BoolVar(&cfg.Verbose, "v", false, "Verbose logging")
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")

	var positional []string
	rest := args
	for {
		if err = fs.Parse(rest); err != nil {
			return cfg, envFile, showVersion, err
		}
		rest = fs.Args()
		if len(rest) == 0 {
			break
		}
		positional = append(positional, rest[0])
		rest = rest[1:]
	}
	if showVersion {
		return cfg, envFile, showVersion, nil
	}

	// Required flags must be given, but an empty value is accepted.
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	var missing []string
	if len(positional) == 0 {
		missing = append(missing, "pdf_path")
	}
	for _, name := range []string{"config", "company_name", "date"} {
		if !set[name] {
			missing = append(missing, "--"+name)
		}
	}
	if len(missing) > 0 {
		fs.Usage()
		return cfg, envFile, showVersion, fmt.Errorf("%w: missing required arguments: %s", errUsage, strings.Join(missing, ", "))
	}
	if len(positional) > 1 {
		fs.Usage()
		return cfg, envFile, showVersion, fmt.Errorf("%w: unexpected arguments: %s", errUsage, strings.Join(positional[1:], " "))
	}
	cfg.PDFPath = positional[0]
	return cfg, envFile, showVersion, nil
}

// run loads the configuration file and executes the pipeline. Only
// configuration problems are returned as errors.
func run(ctx context.Context, cfg app.Config, logger zerolog.Logger) (app.Report, error) {
	fc, err := app.LoadConfigFile(cfg.ConfigPath)
	if err != nil {
		return app.Report{}, fmt.Errorf("load config: %w", err)
	}
	app.ApplyFileConfig(&cfg, fc)
	app.ApplyEnvToConfig(&cfg)

	logger.Debug().Str("version", app.BuildVersion).Str("config", cfg.ConfigPath).Msg("starting validation")

	a, err := app.New(cfg, logger)
	if err != nil {
		return app.Report{}, fmt.Errorf("init app: %w", err)
	}
	return a.Run(ctx)
}
