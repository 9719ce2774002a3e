// Command circuittrace reads a circuit board file and prints every shortest
// trace joining its two terminals.
//
//	circuittrace -s -c testdata/grid.dat
//	circuittrace -q -output json -log-level debug testdata/grid.dat
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/circuittrace/board"
	"github.com/katalvlaran/circuittrace/frontier"
	"github.com/katalvlaran/circuittrace/gridgraph"
	"github.com/katalvlaran/circuittrace/internal/cli"
	"github.com/katalvlaran/circuittrace/present"
	"github.com/katalvlaran/circuittrace/tracer"
)

func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(context.Background(), os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run loads the board, searches it and presents the result.
func run(ctx context.Context, outW, errW io.Writer, args []string) error {
	opts, shouldExit, err := cli.Parse(args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}
	cfg := opts.Config
	logger := cli.NewLogger(cfg.LogLevel, cfg.LogFormat, errW)

	b, err := board.ParseFile(opts.BoardPath)
	if err != nil {
		return &cli.ExitError{Code: 1, Message: err.Error(), Err: err}
	}
	logger.Debug("board loaded", "path", opts.BoardPath, "rows", b.Rows(), "cols", b.Cols())

	discipline, err := frontier.ParseDiscipline(cfg.Discipline)
	if err != nil {
		return &cli.ExitError{Code: 2, Message: err.Error(), Err: err}
	}
	presenter, err := present.New(cfg.Output)
	if err != nil {
		return &cli.ExitError{Code: 2, Message: err.Error(), Err: err}
	}

	if logger.Enabled(ctx, slog.LevelDebug) {
		if bound, err := gridgraph.FromBoard(b).MinTraceLength(); err == nil {
			logger.Debug("shortest trace bound", "length", bound)
		}
	}

	traceOpts := []tracer.Option{
		tracer.WithContext(ctx),
		tracer.WithDiscipline(discipline),
		tracer.WithMaxStates(cfg.MaxStates),
		tracer.WithLogger(logger),
	}
	if cfg.Prune {
		traceOpts = append(traceOpts, tracer.WithBoundPruning())
	}
	if cfg.ReachCheck {
		traceOpts = append(traceOpts, tracer.WithReachabilityCheck())
	}
	res, err := tracer.Trace(b, traceOpts...)
	if err != nil {
		return err
	}

	return presenter.Present(outW, res)
}
