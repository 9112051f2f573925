package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/pathfind/core"
)

// ErrMalformedRecord indicates a line that is not a,b,w or node,x,y.
var ErrMalformedRecord = errors.New("loader: malformed record")

// Option configures ReadEdges.
type Option func(*readOptions)

type readOptions struct {
	skipWeights bool
}

// WithoutWeights keeps the third edge column opaque: it must be present but
// is neither parsed nor validated, and every record gets weight 0.
func WithoutWeights() Option {
	return func(o *readOptions) { o.skipWeights = true }
}

// EdgeListName returns the edge file name for test case id.
func EdgeListName(id string) string { return fmt.Sprintf("TestCase_%s_EdgeList.txt", id) }

// NodeFileName returns the node file name for test case id.
func NodeFileName(id string) string { return fmt.Sprintf("TestCase_%s_NodeID.csv", id) }

// CasePaths joins dir with the edge and node file names of test case id.
func CasePaths(dir, id string) (edgePath, nodePath string) {
	return filepath.Join(dir, EdgeListName(id)), filepath.Join(dir, NodeFileName(id))
}

// newReader returns a csv.Reader expecting exactly three fields per record.
func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 3
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	return cr
}

// readError maps csv syntax errors to ErrMalformedRecord and passes I/O
// errors through.
func readError(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return fmt.Errorf("%w: line %d: %v", ErrMalformedRecord, pe.Line, pe.Err)
	}

	return fmt.Errorf("loader: %w", err)
}

// malformed reports a bad field of the record just read.
func malformed(cr *csv.Reader, err error) error {
	line, _ := cr.FieldPos(0)

	return fmt.Errorf("%w: line %d: %v", ErrMalformedRecord, line, err)
}

// fields returns the three columns of rec with surrounding space removed.
func fields(rec []string) (string, string, string) {
	return strings.TrimSpace(rec[0]), strings.TrimSpace(rec[1]), strings.TrimSpace(rec[2])
}

// ReadEdges parses a,b,w lines in order. Blank lines are skipped.
func ReadEdges(r io.Reader, opts ...Option) ([]core.EdgeRecord, error) {
	var o readOptions
	for _, opt := range opts {
		opt(&o)
	}

	cr := newReader(r)
	var out []core.EdgeRecord
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, readError(err)
		}
		a, b, wf := fields(rec)
		if a == "" || b == "" {
			return nil, malformed(cr, core.ErrEmptyVertexID)
		}
		e := core.EdgeRecord{From: a, To: b}
		if !o.skipWeights {
			w, err := strconv.ParseFloat(wf, 64)
			if err != nil {
				return nil, malformed(cr, fmt.Errorf("weight %q: %w", wf, err))
			}
			e.Weight = w
		}
		out = append(out, e)
	}
}

// ReadCoordinates parses node,x,y lines into a Coordinates map.
func ReadCoordinates(r io.Reader) (core.Coordinates, error) {
	cr := newReader(r)
	coords := core.NewCoordinates(0)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			return coords, nil
		}
		if err != nil {
			return nil, readError(err)
		}
		id, xf, yf := fields(rec)
		if id == "" {
			return nil, malformed(cr, core.ErrEmptyVertexID)
		}
		x, err := strconv.ParseFloat(xf, 64)
		if err != nil {
			return nil, malformed(cr, fmt.Errorf("x %q: %w", xf, err))
		}
		y, err := strconv.ParseFloat(yf, 64)
		if err != nil {
			return nil, malformed(cr, fmt.Errorf("y %q: %w", yf, err))
		}
		coords.Set(id, x, y)
	}
}

// LoadUnweighted builds an unweighted graph from edgePath, ignoring the
// weight column, and reads positions from nodePath. An empty nodePath
// yields an empty Coordinates map.
func LoadUnweighted(edgePath, nodePath string) (*core.Graph, core.Coordinates, error) {
	return load(edgePath, nodePath, []Option{WithoutWeights()})
}

// LoadWeighted builds a weighted graph from edgePath and reads positions
// from nodePath. An empty nodePath yields an empty Coordinates map.
func LoadWeighted(edgePath, nodePath string) (*core.Graph, core.Coordinates, error) {
	return load(edgePath, nodePath, nil, core.WithWeighted())
}

func load(edgePath, nodePath string, ropts []Option, gopts ...core.GraphOption) (*core.Graph, core.Coordinates, error) {
	var records []core.EdgeRecord
	err := withFile(edgePath, func(r io.Reader) error {
		var err error
		records, err = ReadEdges(r, ropts...)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	g, err := core.FromRecords(records, gopts...)
	if err != nil {
		return nil, nil, fmt.Errorf("loader: %s: %w", edgePath, err)
	}

	coords := core.NewCoordinates(0)
	if nodePath != "" {
		err = withFile(nodePath, func(r io.Reader) error {
			var err error
			coords, err = ReadCoordinates(r)
			return err
		})
		if err != nil {
			return nil, nil, err
		}
	}

	return g, coords, nil
}

// withFile opens path, hands it to fn and annotates fn's error with path.
func withFile(path string, fn func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("loader: %w", err)
	}
	defer f.Close()
	if err := fn(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}
