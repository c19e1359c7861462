package segment

import (
	"github.com/ericlingit/mpseg/codepoint"
	"github.com/ericlingit/mpseg/dictionary"
)

// BuildDAG fills ctx.Chars[i].Edges for every position i with one
// edge per dictionary word starting there, plus the identity edge
// if no dictionary word ends exactly at position i itself. Longer
// matches never suppress shorter ones: every length the dictionary
// offers coexists as an edge, and Solve picks among them.
func BuildDAG(ctx *Context, seq codepoint.Seq, dict *dictionary.Dictionary) {
	n := len(seq)
	for i := 0; i < n; i++ {
		matches := dict.Find(seq[i:])
		edges := make([]Edge, 0, len(matches)+1)
		hasIdentity := false
		for _, m := range matches {
			end := i + m.Len - 1
			edges = append(edges, Edge{EndPos: end, Entry: m.Entry})
			if end == i {
				hasIdentity = true
			}
		}
		if !hasIdentity {
			edges = append(edges, Edge{EndPos: i, Entry: nil})
		}
		sortEdges(edges)
		ctx.Chars[i].Edges = edges
	}
}
