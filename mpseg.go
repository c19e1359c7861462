// Package mpseg is the Maximum-Probability Chinese word segmenter:
// it loads a frequency dictionary once, then cuts UTF-8 sentences
// into tokens by finding the path through the sentence's candidate
// DAG with the highest summed log-probability.
package mpseg

import (
	"github.com/charmbracelet/log"
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"

	"github.com/ericlingit/mpseg/codepoint"
	"github.com/ericlingit/mpseg/dictionary"
	"github.com/ericlingit/mpseg/segment"
)

// defaultCutCacheSize bounds the memoized-cut LRU so that
// repeatedly cutting the same handful of sentences — a common
// pattern when segmenting log lines or form fields — skips the DAG
// rebuild, without letting the cache grow unbounded.
const defaultCutCacheSize = 4096

// ErrEmptyInput is returned by Cut when called with a zero-length
// string.
var ErrEmptyInput = errors.New("mpseg: empty input")

// Segmenter is a Maximum-Probability segmenter bound to one loaded
// dictionary. It is safe for concurrent use: the dictionary is
// immutable after New returns, and every Cut call builds its own
// Context.
type Segmenter struct {
	dict     *dictionary.Dictionary
	logger   *log.Logger
	cutCache *lru.Cache
}

// Option configures a Segmenter at construction time.
type Option func(*Segmenter)

// WithLogger overrides the default logger used for recoverable,
// per-token re-encode failures.
func WithLogger(l *log.Logger) Option {
	return func(s *Segmenter) { s.logger = l }
}

// WithCutCacheSize overrides the number of distinct inputs whose
// Cut result is memoized. Zero disables the cache.
func WithCutCacheSize(size int) Option {
	return func(s *Segmenter) {
		if size <= 0 {
			s.cutCache = nil
			return
		}
		c, err := lru.New(size)
		if err != nil {
			panic(err) // only non-positive size ever errors, and size > 0 here
		}
		s.cutCache = c
	}
}

// New loads the dictionary at dictPath and returns a ready
// Segmenter. Dictionary load errors (a file that cannot be opened
// or read, a dictionary with no usable entries) are returned
// wrapped, and no Segmenter is constructed in that case. Individual
// lines with bad UTF-8 or a bad frequency are skipped by the loader,
// not reported as errors.
func New(dictPath string, opts ...Option) (*Segmenter, error) {
	dict, err := dictionary.LoadDict(dictPath)
	if err != nil {
		return nil, errors.Wrap(err, "mpseg: init")
	}
	cache, err := lru.New(defaultCutCacheSize)
	if err != nil {
		return nil, errors.Wrap(err, "mpseg: init cut cache")
	}
	s := &Segmenter{
		dict:     dict,
		logger:   log.Default(),
		cutCache: cache,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Cut segments input into an ordered list of UTF-8 tokens. The
// concatenation of the returned tokens always equals input. Cut
// rejects empty input and propagates malformed-UTF-8 decode
// failures; it never returns a partial token list.
func (s *Segmenter) Cut(input string) ([]string, error) {
	if input == "" {
		return nil, ErrEmptyInput
	}
	if s.cutCache != nil {
		if cached, ok := s.cutCache.Get(input); ok {
			return cached.([]string), nil
		}
	}

	seq, err := codepoint.DecodeString(input)
	if err != nil {
		return nil, errors.Wrap(err, "mpseg: cut")
	}

	ctx := segment.NewContext(seq)
	segment.BuildDAG(ctx, seq, s.dict)
	segment.Solve(ctx, s.dict)
	tokens := segment.Assemble(ctx, s.dict)

	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		word, err := codepoint.EncodeString(tok.Word)
		if err != nil {
			s.logger.Error("mpseg: dropping token that failed to re-encode", "err", err)
			continue
		}
		out = append(out, word)
	}

	if s.cutCache != nil {
		s.cutCache.Add(input, out)
	}
	return out, nil
}

// MinLogFreq exposes the dictionary's out-of-vocabulary fallback
// score, mainly useful for tests and diagnostics.
func (s *Segmenter) MinLogFreq() float64 {
	return s.dict.GetMinLogFreq()
}
