// Package dictionary implements the immutable prefix-tree
// dictionary that backs segmentation: a set of words, each carrying
// an occurrence frequency and its derived log-probability, looked
// up by code-point prefix.
//
// The trie itself is github.com/tchap/go-patricia's compressed
// radix tree, keyed on the big-endian byte encoding of a word's
// code points. Because every inserted key is a multiple of four
// bytes long, VisitPrefixes never reports a match straddling a
// code-point boundary.
package dictionary

import (
	"bufio"
	"encoding/binary"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/ericlingit/mpseg/codepoint"
)

// Entry is a single dictionary word: its surface form, raw
// occurrence count, and derived natural-log frequency.
//
// An Entry with Freq == 0 and LogFreq == the owning Dictionary's
// MinLogFreq is synthetic: it represents an out-of-vocabulary
// single code point rather than a loaded trie node.
type Entry struct {
	Word    codepoint.Seq
	Freq    uint64
	LogFreq float64
}

// Dictionary is an immutable prefix-tree of Entry values. The zero
// value is not usable; build one with LoadDict.
type Dictionary struct {
	trie       *patricia.Trie
	minLogFreq float64
}

// ErrEmptyDict is returned by LoadDict when no valid entry could be
// read, or the entries read carry a total frequency of zero.
var ErrEmptyDict = errors.New("dictionary: no usable entries loaded")

// Match is one result of Find: the matched word spans k code
// points starting at the queried offset, and Entry describes it.
type Match struct {
	Len   int
	Entry *Entry
}

// LoadDict reads a dictionary file of "WORD FREQ [TAG]" lines and
// builds an immutable Dictionary. Malformed or empty lines are
// skipped with a logged warning; loading only fails if the file
// cannot be opened or read, or if, after skipping bad lines, no entry with
// positive total frequency survived.
//
// Parsing and frequency totals are computed before any trie node is
// created, so a failed load never leaves a partially built trie
// reachable from the returned error.
func LoadDict(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "dictionary: open %q", path)
	}
	defer f.Close()

	type rawEntry struct {
		word codepoint.Seq
		freq uint64
	}
	var raws []rawEntry
	var total uint64

	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			log.Warnf("dictionary: %s:%d malformed line, skipped", path, lineno)
			continue
		}
		freq, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			log.Warnf("dictionary: %s:%d bad frequency %q, skipped", path, lineno, fields[1])
			continue
		}
		if freq == 0 {
			// freq=0 is reserved for synthetic out-of-vocabulary
			// fallback entries (spec's Dictionary invariants); a
			// loaded word with freq=0 would give logFreq = log(0) =
			// -Inf and break minLogFreq's finiteness.
			log.Warnf("dictionary: %s:%d zero-frequency word %q, skipped", path, lineno, fields[0])
			continue
		}
		seq, err := codepoint.DecodeString(fields[0])
		if err != nil || len(seq) == 0 {
			log.Warnf("dictionary: %s:%d bad word %q, skipped", path, lineno, fields[0])
			continue
		}
		raws = append(raws, rawEntry{word: seq, freq: freq})
		total += freq
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "dictionary: read %q", path)
	}
	if len(raws) == 0 || total == 0 {
		return nil, errors.Wrapf(ErrEmptyDict, "%q", path)
	}

	trie := patricia.NewTrie()
	minLogFreq := math.Inf(1)
	logTotal := math.Log(float64(total))
	for _, r := range raws {
		logFreq := math.Log(float64(r.freq)) - logTotal
		if logFreq < minLogFreq {
			minLogFreq = logFreq
		}
		entry := &Entry{Word: r.word, Freq: r.freq, LogFreq: logFreq}
		trie.Insert(encodeKey(r.word), entry)
	}

	// Subtract a safety margin so the out-of-vocabulary fallback
	// score is strictly below every loaded entry's logFreq, never
	// merely equal to it. Without this, a dictionary whose entries
	// sum to exactly one word's own frequency (logFreq == 0, as with
	// a single-entry dictionary) ties the identity edge on score,
	// and the tie-break rule of "first edge in ascending end-
	// position order wins" would then prefer the shorter,
	// single-code-point span over the real dictionary match.
	minLogFreq -= minLogFreqMargin

	return &Dictionary{trie: trie, minLogFreq: minLogFreq}, nil
}

// minLogFreqMargin is the safety margin subtracted from the raw
// min(logFreq) to compute minLogFreq (spec's Open Question on this
// value, resolved here in favor of the margin that keeps known
// matches winning ties against the out-of-vocabulary fallback).
const minLogFreqMargin = 1e-9

// GetMinLogFreq returns the dictionary-wide floor score used for
// any single code point that has no entry of its own.
func (d *Dictionary) GetMinLogFreq() float64 {
	return d.minLogFreq
}

// Find returns every (k, Entry) pair such that the first k code
// points of seq form a dictionary word, k >= 1. Results are
// unordered; callers needing deterministic iteration should sort by
// Len.
func (d *Dictionary) Find(seq codepoint.Seq) []Match {
	if len(seq) == 0 {
		return nil
	}
	var matches []Match
	key := encodeKey(seq)
	_ = d.trie.VisitPrefixes(key, func(prefix patricia.Prefix, item patricia.Item) error {
		entry := item.(*Entry)
		matches = append(matches, Match{Len: len(prefix) / 4, Entry: entry})
		return nil
	})
	return matches
}

// encodeKey renders a code-point sequence as a big-endian byte key
// suitable for patricia.Trie, one 4-byte group per code point. The
// fixed width keeps every inserted key aligned on a code-point
// boundary, so VisitPrefixes can never return a partial match.
func encodeKey(seq codepoint.Seq) patricia.Prefix {
	key := make(patricia.Prefix, len(seq)*4)
	for i, cp := range seq {
		binary.BigEndian.PutUint32(key[i*4:], uint32(cp))
	}
	return key
}
