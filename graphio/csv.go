// Package graphio: CSV adjacency-list and edge-list loaders.
package graphio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/velkarn/plexus/core"
)

// DefaultSeparator is the token separator unless overridden.
const DefaultSeparator = ','

// CSVOptions holds the resolved CSV dialect.
type CSVOptions struct {
	Separator         rune
	ExplicitDirection bool // edge lists carry a per-row 'd'/'u' token
	DirectionMode     bool // default directedness when not explicit
	Weighted          bool // rows carry weight tokens

	err error
}

// CSVOption configures the CSV dialect via functional arguments.
type CSVOption func(*CSVOptions)

// DefaultCSVOptions returns comma-separated, undirected, unweighted parsing.
func DefaultCSVOptions() CSVOptions {
	return CSVOptions{Separator: DefaultSeparator}
}

// WithSeparator overrides the token separator.
func WithSeparator(sep rune) CSVOption {
	return func(o *CSVOptions) {
		if sep == 0 {
			o.err = fmt.Errorf("%w: zero separator", ErrBadRecord)
			return
		}
		o.Separator = sep
	}
}

// WithExplicitDirection makes edge-list rows carry a 'd'/'u' token.
func WithExplicitDirection() CSVOption {
	return func(o *CSVOptions) { o.ExplicitDirection = true }
}

// WithDirectionMode sets the directedness applied to rows without an
// explicit direction token.
func WithDirectionMode(directed bool) CSVOption {
	return func(o *CSVOptions) { o.DirectionMode = directed }
}

// WithWeighted makes rows carry weight tokens.
func WithWeighted() CSVOption {
	return func(o *CSVOptions) { o.Weighted = true }
}

func gatherCSVOptions(opts []CSVOption) (CSVOptions, error) {
	o := DefaultCSVOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// newReader builds the csv.Reader for the configured dialect. Records are
// ragged by design, so per-record field counting is disabled.
func (o CSVOptions) newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.Comma = o.Separator
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	return cr
}

// ensureNode adds id unless present.
func ensureNode(g *core.Graph, id string) error {
	if g.HasNode(id) {
		return nil
	}
	_, err := g.AddNode(id)

	return err
}

// addListedEdge wires src→tgt under the dialect's direction, skipping
// duplicate and reverse-duplicate declarations.
func addListedEdge(g *core.Graph, src, tgt string, directed bool, opts ...core.EdgeOption) error {
	if err := ensureNode(g, src); err != nil {
		return err
	}
	if err := ensureNode(g, tgt); err != nil {
		return err
	}
	id := edgeID(src, tgt, directed)
	if g.HasEdge(id) {
		return nil
	}
	if !directed && g.HasEdge(edgeID(tgt, src, false)) {
		return nil
	}
	opts = append(opts, core.WithEdgeDirected(directed))
	_, err := g.AddEdge(id, src, tgt, opts...)

	return err
}

// parseWeightToken parses a numeric CSV weight.
func parseWeightToken(tok string) (float64, error) {
	w, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadWeightToken, tok)
	}

	return w, nil
}

// ReadAdjacencyList parses one source per line: the first token is the
// source id, the rest are neighbors or (neighbor, weight) pairs under
// WithWeighted. Direction follows WithDirectionMode.
// Complexity: O(V + E).
func ReadAdjacencyList(r io.Reader, opts ...CSVOption) (*core.Graph, error) {
	o, err := gatherCSVOptions(opts)
	if err != nil {
		return nil, err
	}
	g := core.NewGraph()
	cr := o.newReader(r)

	var record []string
	for line := 1; ; line++ {
		record, err = cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("graphio: adjacency line %d: %w", line, err)
		}
		if len(record) == 0 || record[0] == "" {
			return nil, fmt.Errorf("%w: adjacency line %d: empty source", ErrBadRecord, line)
		}
		src := record[0]
		if err = ensureNode(g, src); err != nil {
			return nil, err
		}

		rest := record[1:]
		if o.Weighted {
			if len(rest)%2 != 0 {
				return nil, fmt.Errorf("%w: adjacency line %d: odd neighbor/weight tokens", ErrBadRecord, line)
			}
			for i := 0; i < len(rest); i += 2 {
				w, werr := parseWeightToken(rest[i+1])
				if werr != nil {
					return nil, fmt.Errorf("adjacency line %d: %w", line, werr)
				}
				if err = addListedEdge(g, src, rest[i], o.DirectionMode,
					core.WithEdgeWeight(w)); err != nil {
					return nil, err
				}
			}
			continue
		}
		for _, tgt := range rest {
			if err = addListedEdge(g, src, tgt, o.DirectionMode); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// ReadEdgeList parses one edge per line: source, target, an explicit
// 'd'/'u' token under WithExplicitDirection, and the weight under
// WithWeighted.
// Complexity: O(E).
func ReadEdgeList(r io.Reader, opts ...CSVOption) (*core.Graph, error) {
	o, err := gatherCSVOptions(opts)
	if err != nil {
		return nil, err
	}
	g := core.NewGraph()
	cr := o.newReader(r)

	minFields := 2
	if o.ExplicitDirection {
		minFields++
	}
	if o.Weighted {
		minFields++
	}

	var record []string
	for line := 1; ; line++ {
		record, err = cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("graphio: edge line %d: %w", line, err)
		}
		if len(record) < minFields {
			return nil, fmt.Errorf("%w: edge line %d: want %d fields, got %d",
				ErrBadRecord, line, minFields, len(record))
		}

		src, tgt := record[0], record[1]
		next := 2
		directed := o.DirectionMode
		if o.ExplicitDirection {
			switch strings.TrimSpace(record[next]) {
			case "d":
				directed = true
			case "u":
				directed = false
			default:
				return nil, fmt.Errorf("%w: edge line %d: direction %q",
					ErrBadRecord, line, record[next])
			}
			next++
		}

		var edgeOpts []core.EdgeOption
		if o.Weighted {
			w, werr := parseWeightToken(record[next])
			if werr != nil {
				return nil, fmt.Errorf("edge line %d: %w", line, werr)
			}
			edgeOpts = append(edgeOpts, core.WithEdgeWeight(w))
		}
		if err = addListedEdge(g, src, tgt, directed, edgeOpts...); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// ReadAdjacencyListFile opens path and delegates to ReadAdjacencyList.
func ReadAdjacencyListFile(path string, opts ...CSVOption) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open %s: %w", path, err)
	}
	defer f.Close()

	return ReadAdjacencyList(f, opts...)
}

// ReadEdgeListFile opens path and delegates to ReadEdgeList.
func ReadEdgeListFile(path string, opts ...CSVOption) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open %s: %w", path, err)
	}
	defer f.Close()

	return ReadEdgeList(f, opts...)
}
