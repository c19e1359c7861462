// Package segment builds the per-sentence DAG of candidate word
// spans, solves it with a reverse dynamic-programming sweep for the
// path of maximum summed log-probability, and assembles the chosen
// path back into tokens. It is the Viterbi-style core of the
// segmenter: package mpseg owns the public Cut surface, this
// package owns the graph and the sweep.
package segment

import (
	"sort"

	"github.com/ericlingit/mpseg/codepoint"
	"github.com/ericlingit/mpseg/dictionary"
)

// Edge is one candidate span starting at a Char's position. A nil
// Entry is the identity edge: a single code point with no
// dictionary hit.
type Edge struct {
	EndPos int
	Entry  *dictionary.Entry
}

// Char is the per-position DP cell: the code point at this
// position, every outgoing edge the DAG builder found, and — once
// Solve has run — the best-path weight and chosen edge.
type Char struct {
	CP     codepoint.CodePoint
	Edges  []Edge
	Weight float64
	PInfo  *dictionary.Entry
}

// Context is the per-call working set: one Char per code point of
// the sentence being cut. It is owned exclusively by a single Cut
// invocation and never shared or reused across calls.
type Context struct {
	Chars []Char
}

// NewContext allocates a Context sized for seq. Edges are filled in
// by BuildDAG and weights by Solve.
func NewContext(seq codepoint.Seq) *Context {
	ctx := &Context{Chars: make([]Char, len(seq))}
	for i, cp := range seq {
		ctx.Chars[i].CP = cp
	}
	return ctx
}

// sortEdges orders a position's edges by ascending end position, as
// the DP sweep's tie-break rule (first edge encountered wins)
// requires a deterministic iteration order.
func sortEdges(edges []Edge) {
	sort.Slice(edges, func(i, j int) bool { return edges[i].EndPos < edges[j].EndPos })
}
