// Package graphio: JSON document loader.
package graphio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/google/uuid"

	"github.com/velkarn/plexus/core"
)

// Sentinel errors for loader failures.
var (
	// ErrBadDocument indicates a malformed JSON graph document.
	ErrBadDocument = errors.New("graphio: malformed graph document")

	// ErrBadRecord indicates a malformed CSV record.
	ErrBadRecord = errors.New("graphio: malformed record")

	// ErrBadWeightToken indicates an unparseable weight value.
	ErrBadWeightToken = errors.New("graphio: bad weight token")
)

// coordsFeature is the feature key node coordinates are stored under.
const coordsFeature = "coords"

// jsonDocument is the top-level wire shape. Data stays raw so the node
// declaration order can be recovered: Go maps shuffle keys, but insertion
// order is a hard contract of the core graph.
type jsonDocument struct {
	Name string          `json:"name"`
	Data json.RawMessage `json:"data"`
}

type jsonNode struct {
	Features map[string]interface{} `json:"features,omitempty"`
	Coords   map[string]float64     `json:"coords,omitempty"`
	Edges    []jsonEdge             `json:"edges"`
}

type jsonEdge struct {
	To         string      `json:"to"`
	Directed   bool        `json:"directed,omitempty"`
	Weighted   bool        `json:"weighted,omitempty"`
	Weight     interface{} `json:"weight,omitempty"`
	TypeOfEdge string      `json:"typeOfEdge,omitempty"`
}

// edgeID derives the canonical "{src}_{tgt}_{d|u}" identifier.
func edgeID(src, tgt string, directed bool) string {
	suffix := "u"
	if directed {
		suffix = "d"
	}

	return src + "_" + tgt + "_" + suffix
}

// parseWeight resolves the wire weight value: JSON numbers pass through,
// sentinel strings map to their numeric meaning, and "undefined" (or an
// absent value) yields the default weight.
func parseWeight(v interface{}) (float64, error) {
	switch tv := v.(type) {
	case nil:
		return core.DefaultWeight, nil
	case float64:
		return tv, nil
	case string:
		switch tv {
		case "Infinity":
			return math.Inf(1), nil
		case "-Infinity":
			return math.Inf(-1), nil
		case "MAX":
			return math.MaxFloat64, nil
		case "MIN":
			return math.SmallestNonzeroFloat64, nil
		case "undefined":
			return core.DefaultWeight, nil
		default:
			return 0, fmt.Errorf("%w: %q", ErrBadWeightToken, tv)
		}
	default:
		return 0, fmt.Errorf("%w: %T", ErrBadWeightToken, v)
	}
}

// objectKeyOrder recovers the declaration order of an object's keys.
func objectKeyOrder(raw json.RawMessage) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected object, got %v", tok)
	}
	var keys []string
	for dec.More() {
		if tok, err = dec.Token(); err != nil {
			return nil, err
		}
		keys = append(keys, tok.(string))
		var skip json.RawMessage
		if err = dec.Decode(&skip); err != nil {
			return nil, err
		}
	}

	return keys, nil
}

// ReadJSON decodes a JSON graph document into a fresh graph, preserving
// the document's node declaration order.
// A document without a name is labeled with a fresh UUID.
// Complexity: O(V + E).
func ReadJSON(r io.Reader) (*core.Graph, error) {
	var doc jsonDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}
	if doc.Name == "" {
		doc.Name = uuid.NewString()
	}
	g := core.NewGraph(core.WithGraphLabel(doc.Name))
	if len(doc.Data) == 0 {
		return g, nil
	}

	var data map[string]jsonNode
	if err := json.Unmarshal(doc.Data, &data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}
	order, err := objectKeyOrder(doc.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}

	// First pass: materialize all declared nodes with their features.
	for _, id := range order {
		jn := data[id]
		opts := []core.NodeOption{core.WithFeatures(jn.Features)}
		if jn.Coords != nil {
			opts = append(opts, core.WithFeatures(map[string]interface{}{
				coordsFeature: jn.Coords,
			}))
		}
		if _, err = g.AddNode(id, opts...); err != nil {
			return nil, fmt.Errorf("node %q: %w", id, err)
		}
	}

	// Second pass: wire edges; referenced-but-undeclared targets are
	// materialized on the fly.
	for _, src := range order {
		for _, je := range data[src].Edges {
			if je.To == "" {
				return nil, fmt.Errorf("%w: node %q edge without target", ErrBadDocument, src)
			}
			if !g.HasNode(je.To) {
				if _, err := g.AddNode(je.To); err != nil {
					return nil, fmt.Errorf("node %q: %w", je.To, err)
				}
			}

			id := edgeID(src, je.To, je.Directed)
			if g.HasEdge(id) {
				continue // duplicate declaration
			}
			// An undirected edge declared from both endpoints carries the
			// reverse id; skip the second declaration.
			if !je.Directed && g.HasEdge(edgeID(je.To, src, false)) {
				continue
			}

			opts := []core.EdgeOption{core.WithEdgeDirected(je.Directed)}
			if je.Weighted || je.Weight != nil {
				w, err := parseWeight(je.Weight)
				if err != nil {
					return nil, fmt.Errorf("edge %q: %w", id, err)
				}
				opts = append(opts, core.WithEdgeWeight(w))
			}
			if je.TypeOfEdge != "" {
				opts = append(opts, core.WithEdgeLabel(je.TypeOfEdge))
			}
			if _, err := g.AddEdge(id, src, je.To, opts...); err != nil {
				return nil, fmt.Errorf("edge %q: %w", id, err)
			}
		}
	}

	return g, nil
}

// ReadJSONFile opens path and delegates to ReadJSON.
func ReadJSONFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("graphio: %s: %w", path, err)
	}

	return g, nil
}
