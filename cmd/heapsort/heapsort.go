package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/couchbase/tools-heap/heap"
	"github.com/couchbase/tools-heap/log"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// config is the resolved configuration for a single run.
type config struct {
	mode     heap.Mode
	numeric  bool
	format   string
	capacity int
	verbose  bool
}

// input is a named source of newline separated values.
type input struct {
	name string
	r    io.Reader
}

// run reads every value from the inputs, drains them through a heap and writes them to the given writer.
func run(cfg config, inputs []input, out io.Writer, logger log.WrappedLogger) error {
	if cfg.numeric {
		// JSON has no representation for infinities, so they're rejected up front rather than failing after draining
		return sortInputs(cfg, inputs, out, logger, numberParser(cfg.format == formatJSON), formatNumber)
	}

	return sortInputs(cfg, inputs, out, logger, parseString, formatString)
}

func sortInputs[T float64 | string](
	cfg config,
	inputs []input,
	out io.Writer,
	logger log.WrappedLogger,
	parse func(string) (T, error),
	format func(T) string,
) error {
	h, err := heap.NewOrdered(heap.Options[T]{Mode: cfg.mode, Capacity: cfg.capacity})
	if err != nil {
		return fmt.Errorf("failed to create heap: %w", err)
	}

	for _, in := range inputs {
		n, err := readInto(h, in, parse)
		if err != nil {
			return err
		}

		logger.Debugf("Read %d value(s) from '%s'", n, log.UserDataValue(in.name))
	}

	logger.Infof("Draining %d value(s) from %s heap", h.Len(), cfg.mode)

	if cfg.format == formatJSON {
		values := make([]T, 0, h.Len())

		for value, ok := h.Remove(); ok; value, ok = h.Remove() {
			values = append(values, value)
		}

		return writeJSON(out, values)
	}

	w := bufio.NewWriter(out)

	err = h.Drain(func(value T) error {
		_, err := fmt.Fprintln(w, format(value))
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

// readInto inserts each non-blank line of the input into the heap, returning the number of values read.
func readInto[T any](h *heap.Heap[T], in input, parse func(string) (T, error)) (int, error) {
	var (
		scanner = bufio.NewScanner(in.r)
		line    int
		n       int
	)

	for scanner.Scan() {
		line++

		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		value, err := parse(text)
		if err != nil {
			return n, fmt.Errorf("failed to parse line %d of '%s': %w", line, in.name, err)
		}

		h.Insert(value)
		n++
	}

	if err := scanner.Err(); err != nil {
		return n, fmt.Errorf("failed to read '%s': %w", in.name, err)
	}

	return n, nil
}

func writeJSON[T any](out io.Writer, values []T) error {
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(out).Encode(values); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	return nil
}

// numberParser returns a function which parses floats, rejecting NaN since it has no position in a total order and
// optionally rejecting infinities.
func numberParser(finite bool) func(string) (float64, error) {
	return func(s string) (float64, error) {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, err
		}

		if math.IsNaN(v) {
			return 0, fmt.Errorf("%q is not a number", s)
		}

		if finite && math.IsInf(v, 0) {
			return 0, fmt.Errorf("%q is not a finite number", s)
		}

		return v, nil
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func parseString(s string) (string, error) {
	return s, nil
}

func formatString(s string) string {
	return s
}
