package hmm

import (
	"regexp"
	"unicode"

	"github.com/pkg/errors"
)

// han matches runs of Han-script text; everything else is handled
// by splitNonHan below, which keeps non-Chinese runs out of the
// Viterbi path.
var han = regexp.MustCompile(`\p{Han}+`)

// ErrEmptyInput is returned by Segmenter.Cut for zero-length input.
var ErrEmptyInput = errors.New("hmm: empty input")

// Segmenter is the alternative, dictionary-free segmentation
// strategy: every Han-script run is tagged with the Viterbi BMES
// path and cut at End/Single boundaries; everything else falls back
// to per-rune splitting.
type Segmenter struct {
	model *Model
}

// NewSegmenter builds an HMM-only Segmenter from a loaded Model.
func NewSegmenter(model *Model) *Segmenter {
	return &Segmenter{model: model}
}

// Cut segments input without consulting any dictionary.
func (s *Segmenter) Cut(input string) ([]string, error) {
	if input == "" {
		return nil, ErrEmptyInput
	}

	tokens := []string{}
	idx := han.FindAllStringIndex(input, -1)
	pos := 0
	for _, span := range idx {
		if span[0] > pos {
			tokens = append(tokens, splitNonHan(input[pos:span[0]])...)
		}
		piece := input[span[0]:span[1]]
		path := s.model.Viterbi(piece)
		tokens = append(tokens, s.model.Cut(piece, path)...)
		pos = span[1]
	}
	if pos < len(input) {
		tokens = append(tokens, splitNonHan(input[pos:])...)
	}
	return tokens, nil
}

// splitNonHan breaks a non-Han run into single-rune tokens, skipping
// whitespace. (The MP facade does not skip whitespace: there every
// code point, whitespace included, ends up in some token.)
func splitNonHan(text string) []string {
	tokens := []string{}
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		tokens = append(tokens, string(r))
	}
	return tokens
}
