package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/couchbase/tools-heap/envvar"
	"github.com/couchbase/tools-heap/heap"
	"github.com/couchbase/tools-heap/log"
)

const (
	envMode     = "HEAPSORT_MODE"
	envNumeric  = "HEAPSORT_NUMERIC"
	envCapacity = "HEAPSORT_CAPACITY"
	envVerbose  = "HEAPSORT_VERBOSE"
)

// flags holds the raw command line flags, they're resolved against the environment into a 'config'.
type flags struct {
	mode     string
	numeric  bool
	format   string
	capacity int
	verbose  bool
}

func newRootCommand() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "heapsort [file...]",
		Short: "Sort newline separated values using a binary heap",
		Long: `Reads newline separated values from the given files (or stdin when none are given), inserts each one into
a min or max heap and prints them in the order they're removed.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, f)
			if err != nil {
				return err
			}

			logger := newLogger(cmd.ErrOrStderr(), cfg.verbose)

			inputs, closeInputs, err := openInputs(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			defer closeInputs()

			return run(cfg, inputs, cmd.OutOrStdout(), logger)
		},
	}

	cmd.Flags().StringVarP(&f.mode, "mode", "m", heap.Min.String(), "heap mode, one of 'min' or 'max'")
	cmd.Flags().BoolVarP(&f.numeric, "numeric", "n", false, "compare values as numbers rather than strings")
	cmd.Flags().StringVarP(&f.format, "format", "f", formatText, "output format, one of 'text' or 'json'")
	cmd.Flags().IntVar(&f.capacity, "capacity", 0, "initial capacity of the heap")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "enable debug logging to stderr")

	return cmd
}

// resolveConfig validates the flags, falling back to the environment for any flag which wasn't explicitly set.
func resolveConfig(cmd *cobra.Command, f flags) (config, error) {
	changed := func(name string) bool { return cmd.Flags().Changed(name) }

	if v, ok := envvar.GetString(envMode); ok && !changed("mode") {
		f.mode = v
	}

	if v, ok := envvar.GetBool(envNumeric); ok && !changed("numeric") {
		f.numeric = v
	}

	if v, ok := envvar.GetInt(envCapacity); ok && !changed("capacity") {
		f.capacity = v
	}

	if v, ok := envvar.GetBool(envVerbose); ok && !changed("verbose") {
		f.verbose = v
	}

	mode, err := heap.ParseMode(f.mode)
	if err != nil {
		return config{}, fmt.Errorf("failed to parse mode: %w", err)
	}

	if f.format != formatText && f.format != formatJSON {
		return config{}, fmt.Errorf("invalid output format %q, expected one of '%s' or '%s'", f.format, formatText,
			formatJSON)
	}

	if f.capacity < 0 {
		return config{}, fmt.Errorf("invalid capacity %d, must not be negative", f.capacity)
	}

	cfg := config{
		mode:     mode,
		numeric:  f.numeric,
		format:   f.format,
		capacity: f.capacity,
		verbose:  f.verbose,
	}

	return cfg, nil
}

func newLogger(w io.Writer, verbose bool) log.WrappedLogger {
	level := slog.LevelWarn
	if verbose {
		level = log.LevelTraceSlog
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})

	return log.NewWrappedLogger(log.NewSlogLogger(slog.New(handler)))
}

// openInputs opens each of the given paths, or returns stdin when no paths are given. The returned function closes
// any opened files.
func openInputs(stdin io.Reader, paths []string) ([]input, func(), error) {
	if len(paths) == 0 {
		return []input{{name: "<stdin>", r: stdin}}, func() {}, nil
	}

	var (
		inputs = make([]input, 0, len(paths))
		files  = make([]*os.File, 0, len(paths))
	)

	closeAll := func() {
		for _, file := range files {
			file.Close()
		}
	}

	for _, path := range paths {
		file, err := os.Open(path)
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("failed to open input: %w", err)
		}

		files = append(files, file)
		inputs = append(inputs, input{name: path, r: file})
	}

	return inputs, closeAll, nil
}
