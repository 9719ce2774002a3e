package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/circuittrace/config"
)

// ErrGUIUnsupported is reported for the -g (graphical output) mode.
var ErrGUIUnsupported = errors.New("cli: GUI output is not supported, use -c")

// ExitError is an error carrying a process exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// Options is the resolved configuration of one invocation.
type Options struct {
	BoardPath  string
	ConfigPath string
	Config     config.Config
}

const usage = `
circuittrace - find every shortest trace between two terminals on a circuit board.

Usage:
  circuittrace [-s | -q] [-c | -g] [options] BOARD_FILE

Arguments:
  BOARD_FILE
    First line "ROWS COLS", then ROWS lines of COLS symbols:
    'O' open, 'X' closed, '1' start terminal, '2' end terminal.

Options:
`

// Parse processes command-line arguments. It returns the resolved Options,
// a boolean indicating the program should exit cleanly, or an *ExitError.
//
// Precedence, lowest first: config.Default, the -config file, explicit flags.
func Parse(args []string, output io.Writer) (*Options, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("circuittrace", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, usage)
		flagSet.PrintDefaults()
	}

	stackFlag := flagSet.Bool("s", false, "Use stack storage (depth-first search).")
	queueFlag := flagSet.Bool("q", false, "Use queue storage (breadth-first search).")
	consoleFlag := flagSet.Bool("c", false, "Print results to the console.")
	guiFlag := flagSet.Bool("g", false, "Show results in a GUI (not supported).")
	configFlag := flagSet.String("config", "", "Path to an HCL run configuration file.")
	disciplineFlag := flagSet.String("discipline", "", "Frontier discipline: 'stack' or 'queue'.")
	outputFlag := flagSet.String("output", "", "Output format: 'text', 'json' or 'yaml'.")
	logLevelFlag := flagSet.String("log-level", "", "Logging level: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", "", "Log output format: 'text' or 'json'.")
	maxStatesFlag := flagSet.Int("max-states", 0, "Abort after exploring this many states. 0 is unlimited.")
	pruneFlag := flagSet.Bool("prune", false, "Skip states that cannot beat the best trace found so far.")
	reachFlag := flagSet.Bool("reach", false, "Skip the search when no open route joins the terminals.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error(), Err: err}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() == 0 {
		slog.Debug("No board file provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("expected one board file, got %d arguments", flagSet.NArg())}
	}
	if *stackFlag && *queueFlag {
		return nil, false, &ExitError{Code: 2, Message: "-s and -q are mutually exclusive"}
	}
	if *consoleFlag && *guiFlag {
		return nil, false, &ExitError{Code: 2, Message: "-c and -g are mutually exclusive"}
	}
	if *guiFlag {
		return nil, false, &ExitError{Code: 2, Message: ErrGUIUnsupported.Error(), Err: ErrGUIUnsupported}
	}

	opts := &Options{
		BoardPath:  flagSet.Arg(0),
		ConfigPath: *configFlag,
		Config:     config.Default(),
	}
	if opts.ConfigPath != "" {
		cfg, err := config.LoadFile(opts.ConfigPath)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error(), Err: err}
		}
		opts.Config = *cfg
		slog.Debug("Config file loaded.", "path", opts.ConfigPath)
	}

	// explicitly set flags win over the config file
	cfg := &opts.Config
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "s":
			if *stackFlag {
				cfg.Discipline = "stack"
			}
		case "q":
			if *queueFlag {
				cfg.Discipline = "queue"
			}
		case "c":
			if *consoleFlag {
				cfg.Output = "text"
			}
		case "discipline":
			cfg.Discipline = strings.ToLower(*disciplineFlag)
		case "output":
			cfg.Output = strings.ToLower(*outputFlag)
		case "log-level":
			cfg.LogLevel = strings.ToLower(*logLevelFlag)
		case "log-format":
			cfg.LogFormat = strings.ToLower(*logFormatFlag)
		case "max-states":
			cfg.MaxStates = *maxStatesFlag
		case "prune":
			cfg.Prune = *pruneFlag
		case "reach":
			cfg.ReachCheck = *reachFlag
		}
	})
	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error(), Err: err}
	}

	slog.Debug("CLI parser finished successfully.", "config", *cfg)
	return opts, false, nil
}
