package dataset

import (
	"bufio"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/hupe1980/kmeans/model"
)

// Dataset is an ordered set of points of one dimensionality.
type Dataset struct {
	Points []model.Point
	// Dim is the dimensionality of every point; 0 for an empty dataset.
	Dim int
}

// Len returns the number of points.
func (d *Dataset) Len() int {
	return len(d.Points)
}

// Parse reads records from r until EOF or the first empty line.
// An input without records yields an empty Dataset and no error.
func Parse(r io.Reader) (*Dataset, error) {
	br := bufio.NewReader(r)
	ds := &Dataset{}

	for lineNo := 1; ; lineNo++ {
		line, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, readErr
		}

		line = strings.TrimSpace(line)
		if line == "" {
			return ds, nil
		}

		p, err := ParseRecord(line)
		if err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				pe.Line = lineNo
			}
			return nil, err
		}

		if ds.Dim == 0 {
			ds.Dim = p.Dim()
		} else if p.Dim() != ds.Dim {
			return nil, &DimensionError{Line: lineNo, Expected: ds.Dim, Actual: p.Dim()}
		}
		ds.Points = append(ds.Points, p)

		if errors.Is(readErr, io.EOF) {
			return ds, nil
		}
	}
}

// ParseRecord parses one comma-separated record.
// On failure it returns a *ParseError with Line left at 0.
func ParseRecord(line string) (model.Point, error) {
	fields := strings.Split(line, ",")
	p := make(model.Point, len(fields))

	for i, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			return nil, &ParseError{Field: i + 1, Err: ErrEmptyField}
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, &ParseError{Field: i + 1, Err: err}
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &ParseError{Field: i + 1, Err: ErrNonFinite}
		}
		p[i] = v
	}

	return p, nil
}

// Concat joins datasets in order. All non-empty datasets must share the
// same dimensionality; Line in a returned DimensionError is the 1-based
// position of the offending point in the joined dataset.
func Concat(sets ...*Dataset) (*Dataset, error) {
	out := &Dataset{}
	for _, ds := range sets {
		if ds == nil || ds.Len() == 0 {
			continue
		}
		if out.Dim == 0 {
			out.Dim = ds.Dim
		} else if ds.Dim != out.Dim {
			return nil, &DimensionError{Line: out.Len() + 1, Expected: out.Dim, Actual: ds.Dim}
		}
		out.Points = append(out.Points, ds.Points...)
	}
	return out, nil
}
