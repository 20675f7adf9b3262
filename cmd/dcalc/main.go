package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sambeau/dcalc/config"
	"github.com/sambeau/dcalc/pkg/dcalc/help"
	"github.com/sambeau/dcalc/pkg/dcalc/repl"
	"github.com/sambeau/dcalc/pkg/dcalc/settings"
	"github.com/sambeau/dcalc/pkg/logging"
)

// Version is set at build time via -ldflags
var Version = "0.1.0-dev"

func main() {
	ctx := context.Background()
	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr, os.Getenv); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// overrides are the settings given on the command line
type overrides struct {
	precision int
	polar     bool
}

func (o overrides) apply(s settings.Settings) (settings.Settings, error) {
	if o.precision != 0 {
		var err error
		if s, err = s.WithPrecision(o.precision); err != nil {
			return s, err
		}
	}
	if o.polar {
		s.ComplexInput = settings.Polar
		s.ComplexOutput = settings.Polar
	}
	return s, nil
}

// run is the main entry point, designed for testability (Mat Ryer pattern)
func run(ctx context.Context, args []string, stdout, stderr io.Writer, getenv func(string) string) error {
	flags := flag.NewFlagSet("dcalc", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() { printUsage(stderr) }

	var (
		configPath  = flags.String("config", "", "Path to config file")
		evalExpr    = flags.String("e", "", "Evaluate an expression and exit")
		precision   = flags.Int("precision", 0, "Decimal places (1-9), overrides config")
		polar       = flags.Bool("polar", false, "Read and show complex numbers in polar form")
		watch       = flags.Bool("watch", false, "Reload the config file when it changes")
		logLevel    = flags.String("log-level", "", "Override log level (debug, info, warn, error)")
		showVersion = flags.Bool("version", false, "Show version")
		showHelp    = flags.Bool("h", false, "Show help")
	)

	if err := flags.Parse(args); err != nil {
		return err
	}

	if *showHelp {
		printUsage(stdout)
		return nil
	}

	if *showVersion {
		fmt.Fprintf(stdout, "dcalc version %s\n", Version)
		return nil
	}

	rest := flags.Args()
	if len(rest) > 0 && rest[0] == "describe" {
		return describeCommand(rest[1:], stdout)
	}

	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(*configPath, getenv)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
		if err := config.Validate(cfg); err != nil {
			return fmt.Errorf("config validation: %w", err)
		}
	}

	logger, closeLog, err := newLogger(cfg.Logging, stdout, stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cli := overrides{precision: *precision, polar: *polar}
	s, err := cli.apply(cfg.Settings())
	if err != nil {
		return err
	}
	sess := repl.NewSession(s, logger)
	logger.Debug("session started", "config", cfg.Path, "precision", s.Precision)

	switch {
	case *evalExpr != "":
		return execute(sess, *evalExpr, stdout)

	case len(rest) > 0 && rest[0] == "solve":
		return execute(sess, ":solve "+strings.Join(rest[1:], " "), stdout)

	case len(rest) > 0 && rest[0] == "complex":
		if len(rest) < 2 {
			return errors.New("usage: dcalc complex <convert|add|sub|mul|div|ipow|pow|root> args...")
		}
		return execute(sess, ":"+rest[1]+" "+strings.Join(rest[2:], " "), stdout)

	case len(rest) > 0:
		return fmt.Errorf("unknown command: %s (try dcalc -h)", rest[0])
	}

	if *watch {
		if cfg.Path == "" {
			return errors.New("-watch needs a config file")
		}
		_, err := config.Watch(ctx, cfg.Path, getenv, func(next *config.Config) {
			ns, err := cli.apply(next.Settings())
			if err != nil {
				logger.Warn("config reload rejected", "error", err)
				return
			}
			sess.Reconfigure(ns)
			logger.Info("config reloaded", "path", next.Path)
		}, func(err error) {
			logger.Warn("config reload failed", "error", err)
		})
		if err != nil {
			return fmt.Errorf("watching config: %w", err)
		}
	}

	repl.Start(sess, stdout, Version, cfg.REPL.History)
	return nil
}

// execute runs one non-interactive line
func execute(sess *repl.Session, line string, stdout io.Writer) error {
	err := sess.Execute(line, stdout)
	if errors.Is(err, repl.ErrQuit) {
		return nil
	}
	return err
}

func newLogger(cfg config.LoggingConfig, stdout, stderr io.Writer) (*logging.Logger, func() error, error) {
	level, err := logging.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}
	out, closeFn, err := logging.Open(cfg.Output, stdout, stderr)
	if err != nil {
		return nil, nil, err
	}
	return logging.New(out, level, cfg.Format), closeFn, nil
}

// describeCommand implements the 'dcalc describe <topic>' subcommand
func describeCommand(args []string, stdout io.Writer) error {
	jsonOutput := false
	var topic []string
	for _, arg := range args {
		if arg == "--json" || arg == "-json" {
			jsonOutput = true
		} else {
			topic = append(topic, arg)
		}
	}
	if len(topic) == 0 {
		topic = []string{"functions"}
	}

	result, err := help.DescribeTopic(strings.Join(topic, " "))
	if err != nil {
		return err
	}

	if jsonOutput {
		data, err := help.FormatJSON(result)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, string(data))
		return nil
	}
	io.WriteString(stdout, help.FormatText(result))
	return nil
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, `dcalc - scientific and complex calculator

Usage:
  dcalc [options]                       Start the interactive calculator
  dcalc [options] -e EXPR               Evaluate one expression
  dcalc [options] solve a b [c [d [f]]] Solve a polynomial of degree 1 to 4
  dcalc [options] complex <op> args...  Complex operation (convert, add, sub,
                                        mul, div, ipow, pow, root)
  dcalc describe [--json] [topic]       Describe a function, operator or command

Options:
  -config PATH     Path to config file (default: auto-detect)
  -precision N     Decimal places, 1-9 (overrides config)
  -polar           Read and show complex numbers in polar form
  -watch           Reload the config file when it changes
  -log-level LVL   Override log level (debug, info, warn, error)
  -version         Show version
  -h               Show this help

Config Resolution:
  1. -config flag
  2. DCALC_CONFIG environment variable
  3. ./dcalc.yaml
  4. ~/.config/dcalc/dcalc.yaml

Examples:
  dcalc -e '2sin(pi/6)'         Evaluate an expression (outputs: 1)
  dcalc -e '5C2^2'              Postfix operators (outputs: 5)
  dcalc solve 1 -3 2            Solve x^2-3x+2=0
  dcalc complex add 1 2 3 4     (1+2i)+(3+4i)
  dcalc -polar complex root 8 0 3
  dcalc describe log

`)
}
