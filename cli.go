package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"ravio/pkg/engine/terminal"
	"ravio/pkg/game/devtools"
	"ravio/pkg/game/failure"
	"ravio/pkg/game/generate"
	"ravio/pkg/game/patch"
	"ravio/pkg/game/progress"
	"ravio/pkg/game/settings"
	"ravio/pkg/game/spoiler"
	"ravio/pkg/game/text"
	"ravio/pkg/game/world"
)

type cliOptions struct {
	seed          uint32
	preset        string
	noPatch       bool
	noSpoiler     bool
	output        string
	workers       int
	attempts      int
	metricsFile   string
	spoilerFormat string
	logLevel      string
	playthrough   bool
}

func newRootCmd() *cobra.Command {
	var opts cliOptions
	cmd := &cobra.Command{
		Use:           "ravio",
		Short:         "Generate a randomized, completable item layout",
		Version:       generate.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cmd, opts)
		},
	}

	f := cmd.Flags()
	f.Uint32Var(&opts.seed, "seed", 0, "pin the seed; a failing pinned seed is not retried")
	f.StringVar(&opts.preset, "preset", "", "preset name or path to a .yaml settings file")
	f.BoolVar(&opts.noPatch, "no-patch", false, "skip writing the patch manifests")
	f.BoolVar(&opts.noSpoiler, "no-spoiler", false, "skip writing the spoiler report")
	f.StringVar(&opts.output, "output", "generated", "output directory")
	f.IntVar(&opts.workers, "workers", 1, "attempts to run in parallel")
	f.IntVar(&opts.attempts, "attempts", generate.DefaultMaxAttempts, "attempts before giving up")
	f.StringVar(&opts.metricsFile, "metrics-file", "", "write prometheus metrics to this textfile")
	f.StringVar(&opts.spoilerFormat, "spoiler-format", string(spoiler.JSON), "spoiler format: json or yaml")
	f.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	f.BoolVar(&opts.playthrough, "playthrough", false, "print the playthrough to the console")

	cmd.AddCommand(newDumpWorldCmd())
	return cmd
}

func newDumpWorldCmd() *cobra.Command {
	var preset, output string
	cmd := &cobra.Command{
		Use:   "dump-world",
		Short: "Write the world graph with what is reachable from the starting items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := settings.Load(preset)
			if err != nil {
				return err
			}
			w, err := world.Default()
			if err != nil {
				return err
			}
			start := progress.Start(s, 0)
			if output == "" {
				devtools.DumpWorld(cmd.OutOrStdout(), w, start)
				return nil
			}
			path, err := devtools.DumpWorldToFile(output, w, start)
			if err != nil {
				return err
			}
			status(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().StringVar(&preset, "preset", "", "preset name or path to a .yaml settings file")
	cmd.Flags().StringVar(&output, "output", "", "directory to write world.txt to instead of stdout")
	return cmd
}

// execute runs cmd and reports any error on its error stream.
func execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	if err != nil {
		reportError(cmd.ErrOrStderr(), err)
	}
	return err
}

func run(ctx context.Context, cmd *cobra.Command, opts cliOptions) (err error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(opts.logLevel)); err != nil {
		return failure.Configuration("log level %q: %v", opts.logLevel, err)
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	format, err := spoiler.ParseFormat(opts.spoilerFormat)
	if err != nil {
		return failure.Configuration("%v", err)
	}

	s, err := settings.Load(opts.preset)
	if err != nil {
		return err
	}
	w, err := world.Default()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.metricsFile != "" {
		defer func() {
			if werr := generate.WriteMetrics(opts.metricsFile); werr != nil {
				logger.Warn("metrics not written", slog.String("path", opts.metricsFile), slog.String("error", werr.Error()))
				return
			}
			status(out, text.Format(text.MetricsWritten, []any{opts.metricsFile}))
		}()
	}

	seed, err := generate.Generate(ctx, w, s, generate.Options{
		Seed:        opts.seed,
		Pinned:      cmd.Flags().Changed("seed"),
		MaxAttempts: opts.attempts,
		Workers:     opts.workers,
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	spoiler.NewPrinter(out).Summary(seed, opts.playthrough)

	if !opts.noSpoiler {
		path, err := spoiler.New(seed).Write(opts.output, format)
		if err != nil {
			return err
		}
		status(out, text.Format(text.SpoilerWritten, []any{path}))
	}

	if !opts.noPatch {
		dir := filepath.Join(opts.output, fmt.Sprintf("%010d", seed.Seed))
		p := &patch.Patcher{Container: patch.DirContainer{Root: dir}, Logger: logger}
		idx, err := p.Apply(seed)
		if err != nil {
			return err
		}
		status(out, text.Format(text.PatchWritten, []any{len(idx.Courses), dir}))
	}
	return nil
}

func status(w io.Writer, msg string) {
	if terminal.IsTerminal(w) {
		msg = color.Style{color.FgGreen}.Sprint(msg)
	}
	fmt.Fprintln(w, msg)
}

func reportError(w io.Writer, err error) {
	key := text.ErrFatal
	if errors.Is(err, failure.ErrConfiguration) {
		key = text.ErrConfiguration
	}
	msg := text.Format(key, []any{err.Error()})
	if terminal.IsTerminal(w) {
		msg = color.Style{color.FgRed, color.OpBold}.Sprint(msg)
	}
	fmt.Fprintln(w, msg)
}
