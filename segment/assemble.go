package segment

import (
	"github.com/ericlingit/mpseg/codepoint"
	"github.com/ericlingit/mpseg/dictionary"
)

// Assemble walks the back-pointer chain Solve left in ctx, from
// position 0 to end of sentence, and returns the chosen token
// sequence. A position whose chosen edge is the identity edge
// yields a synthetic single-code-point Entry with Freq 0 and
// LogFreq pinned to the dictionary's minLogFreq.
func Assemble(ctx *Context, dict *dictionary.Dictionary) []*dictionary.Entry {
	tokens := make([]*dictionary.Entry, 0, len(ctx.Chars))
	i := 0
	for i < len(ctx.Chars) {
		info := ctx.Chars[i].PInfo
		if info != nil {
			tokens = append(tokens, info)
			i += len(info.Word)
			continue
		}
		tokens = append(tokens, &dictionary.Entry{
			Word:    codepoint.Seq{ctx.Chars[i].CP},
			Freq:    0,
			LogFreq: dict.GetMinLogFreq(),
		})
		i++
	}
	return tokens
}
