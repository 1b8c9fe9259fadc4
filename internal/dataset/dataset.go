// Package dataset loads labelled samples from CSV.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// ErrEmpty is returned when the input holds no samples.
var ErrEmpty = errors.New("dataset is empty")

// ParseError reports a malformed cell.
type ParseError struct {
	Line   int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, column %d: %v", e.Line, e.Column, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Dataset is a set of samples with optional integer labels.
type Dataset struct {
	X [][]float64
	// Y is nil for unlabelled data.
	Y []int
}

// Len returns the number of samples.
func (d *Dataset) Len() int { return len(d.X) }

// Dimension returns the number of features per sample.
func (d *Dataset) Dimension() int {
	if len(d.X) == 0 {
		return 0
	}
	return len(d.X[0])
}

// Labelled reports whether the samples carry labels.
func (d *Dataset) Labelled() bool { return d.Y != nil }

// Load reads one sample per CSV record. When labelled is set, the last
// column is parsed as an integer label. Lines starting with '#' are skipped;
// a first record that does not parse as numbers is treated as a header.
// Every record must have the same number of fields.
func Load(r io.Reader, labelled bool) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true

	d := &Dataset{}
	if labelled {
		d.Y = []int{}
	}

	for first := true; ; first = false {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)

		x, y, err := parseRecord(record, labelled, line)
		if err != nil {
			if first {
				continue
			}
			return nil, err
		}
		d.X = append(d.X, x)
		if labelled {
			d.Y = append(d.Y, y)
		}
	}

	if len(d.X) == 0 {
		return nil, ErrEmpty
	}
	return d, nil
}

// LoadFile is Load on the named file.
func LoadFile(path string, labelled bool) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := Load(f, labelled)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

func parseRecord(record []string, labelled bool, line int) ([]float64, int, error) {
	features := record
	if labelled {
		if len(record) < 2 {
			return nil, 0, &ParseError{Line: line, Column: 1, Err: errors.New("labelled record needs at least one feature and a label")}
		}
		features = record[:len(record)-1]
	}

	x, err := parseFloats(features)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Line = line
		}
		return nil, 0, err
	}

	if !labelled {
		return x, 0, nil
	}
	y, err := strconv.Atoi(strings.TrimSpace(record[len(record)-1]))
	if err != nil {
		return nil, 0, &ParseError{Line: line, Column: len(record), Err: err}
	}
	return x, y, nil
}

func parseFloats(fields []string) ([]float64, error) {
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, &ParseError{Column: i + 1, Err: err}
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &ParseError{Column: i + 1, Err: fmt.Errorf("non-finite value %q", f)}
		}
		out[i] = v
	}
	return out, nil
}

// ParseVector parses a comma-separated list of numbers such as "6,3".
func ParseVector(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, errors.New("empty vector")
	}
	return parseFloats(strings.Split(s, ","))
}
