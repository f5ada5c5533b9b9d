// Package export serializes signals as delimited text.
package export

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cwbudde/algo-spectro/spectro/signal"
)

// ErrTooManyAxes is returned for signals with more than two axes.
var ErrTooManyAxes = errors.New("export: signal must have at most two axes")

const (
	defaultFormat    = "%.5f"
	defaultDelimiter = "\t"
)

type config struct {
	axes      bool
	transpose bool
	format    string
	delimiter string
}

// Option mutates the export configuration.
type Option func(*config)

// WithoutAxes omits the axis column (or row) from the output.
func WithoutAxes() Option {
	return func(c *config) {
		c.axes = false
	}
}

// WithTranspose swaps rows and columns of the output table.
func WithTranspose() Option {
	return func(c *config) {
		c.transpose = true
	}
}

// WithFormat sets the numeric format verb (default "%.5f").
func WithFormat(format string) Option {
	return func(c *config) {
		if format != "" {
			c.format = format
		}
	}
}

// WithDelimiter sets the column delimiter (default tab).
func WithDelimiter(delimiter string) Option {
	return func(c *config) {
		if delimiter != "" {
			c.delimiter = delimiter
		}
	}
}

// Write serializes a 1-D or 2-D signal to w as delimited text: one line
// per axis sample, holding the axis value followed by one intensity
// column per spectrum. WithTranspose swaps lines and columns.
func Write(w io.Writer, s signal.Signal, opts ...Option) error {
	cfg := config{axes: true, format: defaultFormat, delimiter: defaultDelimiter}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	shape := s.Shape()
	if len(shape) > 2 {
		return ErrTooManyAxes
	}

	table := buildTable(s, cfg)
	if cfg.transpose {
		table = transpose(table)
	}

	return writeTable(w, table, cfg)
}

// buildTable lays the signal out column-major: an optional axis column
// followed by one intensity column per row of the signal.
func buildTable(s signal.Signal, cfg config) [][]float64 {
	axis := s.Axis()
	data := s.Data()
	n := axis.Len()
	rows := len(data) / n

	var cols [][]float64
	if cfg.axes {
		cols = append(cols, axis.Values())
	}
	for r := 0; r < rows; r++ {
		cols = append(cols, data[r*n:(r+1)*n])
	}

	// Column-major in, row-major out: one line per axis sample.
	return transpose(cols)
}

func transpose(table [][]float64) [][]float64 {
	if len(table) == 0 {
		return table
	}

	out := make([][]float64, len(table[0]))
	for i := range out {
		out[i] = make([]float64, len(table))
		for j := range table {
			out[i][j] = table[j][i]
		}
	}
	return out
}

func writeTable(w io.Writer, table [][]float64, cfg config) error {
	var sb strings.Builder
	for _, row := range table {
		sb.Reset()
		for j, v := range row {
			if j > 0 {
				sb.WriteString(cfg.delimiter)
			}
			fmt.Fprintf(&sb, cfg.format, v)
		}
		sb.WriteByte('\n')

		_, err := io.WriteString(w, sb.String())
		if err != nil {
			return fmt.Errorf("export: write failed: %w", err)
		}
	}
	return nil
}
