package segment

import (
	"math"

	"github.com/ericlingit/mpseg/dictionary"
)

// Solve runs the reverse-sweep dynamic program over ctx, filling in
// Weight and PInfo for every position. Positions are visited
// N-1..0; within a position, edges are visited in ascending
// end-position order (BuildDAG already sorted them), so on a score
// tie the edge encountered first — the shortest span — wins.
func Solve(ctx *Context, dict *dictionary.Dictionary) {
	n := len(ctx.Chars)
	minLogFreq := dict.GetMinLogFreq()
	for i := n - 1; i >= 0; i-- {
		best := math.Inf(-1)
		var bestEntry *dictionary.Entry
		for _, e := range ctx.Chars[i].Edges {
			score := minLogFreq
			if e.Entry != nil {
				score = e.Entry.LogFreq
			}
			if e.EndPos+1 < n {
				score += ctx.Chars[e.EndPos+1].Weight
			}
			if score > best {
				best = score
				bestEntry = e.Entry
			}
		}
		ctx.Chars[i].Weight = best
		ctx.Chars[i].PInfo = bestEntry
	}
}
