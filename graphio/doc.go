// Package graphio loads core graphs from the two supported external
// formats: JSON documents and CSV adjacency / edge lists.
//
// JSON documents
//
//	{
//	  "name": "social",
//	  "data": {
//	    "A": {
//	      "features": {"kind": "user"},
//	      "coords": {"x": 1, "y": 2},
//	      "edges": [
//	        {"to": "B", "directed": true, "weighted": true, "weight": 3}
//	      ]
//	    }
//	  }
//	}
//
// Edge ids follow the "{src}_{tgt}_{d|u}" scheme; duplicate ids (and, for
// undirected edges, the reverse id) are skipped silently. The weight field
// accepts JSON numbers or the sentinel strings "Infinity", "-Infinity",
// "MAX", "MIN", and "undefined" (which yields the default weight 1).
// Documents without a name are assigned a fresh UUID.
//
// CSV adjacency lists
//
//	One line per source: the first token is the source id, the remaining
//	tokens are neighbor ids, or (neighbor, weight) pairs under
//	WithWeighted. The separator is configurable (default ',').
//
// CSV edge lists
//
//	One line per edge: source, target, then an explicit 'd'/'u' direction
//	token under WithExplicitDirection, then the weight under WithWeighted.
//	Without an explicit direction every edge uses the configured
//	direction mode (undirected unless WithDirectionMode(true)).
//
// Errors
//
//	Read failures surface wrapped with enough position context to find the
//	offending record; the sentinel errors below classify them.
//
//   - ErrBadDocument    malformed JSON document.
//   - ErrBadRecord      malformed CSV record (token count, direction flag).
//   - ErrBadWeightToken unparseable weight token or sentinel.
package graphio
