// Command hanoi solves the Tower of Hanoi with one or more search strategies
// and prints each solution path.
//
//	hanoi                                # 5 disks, dfs then best-first
//	hanoi --disks 4 --strategy bfs       # optimal solution only
//	hanoi --config hanoi.yaml --output json
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hanoi/config"
	"github.com/katalvlaran/hanoi/report"
	"github.com/katalvlaran/hanoi/search"
	"github.com/katalvlaran/hanoi/tower"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "hanoi:", err)
		os.Exit(1)
	}
}

// flags mirrors the command-line surface. Only flags the user actually set
// override the loaded configuration.
type flags struct {
	configPath    string
	disks         int
	pegs          int
	strategies    []string
	maxExpansions int
	output        string
	noPath        bool
	color         string
	logLevel      string
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:           "hanoi",
		Short:         "Solve the Tower of Hanoi by state-space search",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, f)
			if err != nil {
				return err
			}

			return run(cmd.Context(), cfg, out, errOut)
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	fl := cmd.Flags()
	fl.StringVarP(&f.configPath, "config", "c", "", "YAML configuration file")
	fl.IntVarP(&f.disks, "disks", "d", 0, "number of disks (1-16)")
	fl.IntVarP(&f.pegs, "pegs", "p", 0, "number of pegs (3-8)")
	fl.StringSliceVarP(&f.strategies, "strategy", "s", nil, "strategies to run in order: dfs, best-first, bfs")
	fl.IntVar(&f.maxExpansions, "max-expansions", 0, "cap on expanded states per run (0 = unlimited)")
	fl.StringVarP(&f.output, "output", "o", "", "output format: text or json")
	fl.BoolVar(&f.noPath, "no-path", false, "print only the summary of each run")
	fl.StringVar(&f.color, "color", "", "colorize text output: auto, always or never")
	fl.StringVar(&f.logLevel, "log-level", "", "log level on stderr: debug, info, warn or error")

	return cmd
}

// resolveConfig layers defaults, the config file and explicitly set flags,
// then validates the result.
func resolveConfig(cmd *cobra.Command, f flags) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return config.Config{}, err
	}

	set := cmd.Flags().Changed
	if set("disks") {
		cfg.Disks = f.disks
	}
	if set("pegs") {
		cfg.Pegs = f.pegs
	}
	if set("strategy") {
		cfg.Strategies = make([]string, 0, len(f.strategies))
		for _, name := range f.strategies {
			s, err := search.ParseStrategy(name)
			if err != nil {
				return config.Config{}, err
			}
			cfg.Strategies = append(cfg.Strategies, s.String())
		}
	}
	if set("max-expansions") {
		cfg.MaxExpansions = f.maxExpansions
	}
	if set("output") {
		cfg.Output = f.output
	}
	if set("no-path") {
		cfg.ShowPath = !f.noPath
	}
	if set("color") {
		cfg.Color = f.color
	}
	if set("log-level") {
		cfg.LogLevel = f.logLevel
	}

	if err = cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

// run builds the puzzle described by cfg and reports every strategy on it.
// A run that finds no solution is reported, not returned as an error.
// Cancelling ctx aborts the current search.
func run(ctx context.Context, cfg config.Config, out, errOut io.Writer) error {
	logger := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	strategies, err := cfg.SearchStrategies()
	if err != nil {
		return err
	}

	// 1) puzzle: every disk on the first peg, goal on the last
	p, err := tower.Canonical(cfg.Disks, cfg.Pegs, 0, cfg.Pegs-1)
	if err != nil {
		return err
	}
	attrs := []any{slog.Int("disks", p.Disks()), slog.Int("pegs", p.Pegs())}
	if p.Pegs() == tower.MinPegs {
		attrs = append(attrs, slog.Int("optimal_moves", tower.OptimalMoves(p.Disks())))
	}
	logger.Info("puzzle ready", attrs...)

	// 2) printer
	opts := []report.Option{report.WithPath(cfg.ShowPath), report.WithColor(useColor(cfg.Color, out))}
	var pr report.Printer
	if cfg.Output == config.OutputJSON {
		pr = report.NewJSON(out, opts...)
	} else {
		pr = report.NewText(out, opts...)
	}
	if err = pr.Start(p); err != nil {
		return err
	}

	// 3) one search per strategy
	for _, s := range strategies {
		res, err := search.Search[tower.State](p, s,
			search.WithContext(ctx),
			search.WithMaxExpansions(cfg.MaxExpansions),
			search.WithLogger(logger))
		switch {
		case errors.Is(err, search.ErrExpansionLimit):
			logger.Warn("search stopped early",
				slog.String("strategy", s.String()),
				slog.String("run_id", res.RunID),
				slog.Int("expanded", res.Expanded))
		case err != nil:
			return err
		}

		if err = pr.Result(res); err != nil {
			return err
		}
	}

	return pr.Finish()
}

// useColor resolves the color mode. "auto" colors only a terminal.
func useColor(mode string, out io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
