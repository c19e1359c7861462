// Package keyword extracts TF-IDF keywords from a segmenter's
// output: it tokenizes with an mpseg.Segmenter, drops stop words and
// single-code-point tokens, and scores each surviving token by term
// frequency times inverse document frequency.
package keyword

import (
	"bufio"
	"os"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"github.com/ericlingit/mpseg"
)

// Pair is one scored keyword.
type Pair struct {
	Word  string
	Score float64
}

// Extractor pairs a Segmenter with an IDF table and a stop-word set.
type Extractor struct {
	seg        *mpseg.Segmenter
	idf        map[string]float64
	idfAverage float64
	stopWords  map[string]struct{}
}

// New builds an Extractor. idfPath is a two-column whitespace file
// of "WORD IDF"; stopPath is one stop word per line. The IDF file
// must yield at least one entry; an empty stop-word file is accepted
// and gives an empty stop-word set.
func New(seg *mpseg.Segmenter, idfPath, stopPath string) (*Extractor, error) {
	idf, avg, err := loadIDF(idfPath)
	if err != nil {
		return nil, errors.Wrap(err, "keyword: init")
	}
	stop, err := loadStopWords(stopPath)
	if err != nil {
		return nil, errors.Wrap(err, "keyword: init")
	}
	return &Extractor{seg: seg, idf: idf, idfAverage: avg, stopWords: stop}, nil
}

// Extract segments input, then returns its topN highest-scoring
// keywords. Scores are non-increasing in the returned slice; ties
// break by first-encounter order in the segmented token stream.
// topN is clamped to the number of surviving candidates.
func (e *Extractor) Extract(input string, topN int) ([]Pair, error) {
	tokens, err := e.seg.Cut(input)
	if err != nil {
		return nil, errors.Wrap(err, "keyword: extract")
	}

	tf := map[string]int{}
	order := map[string]int{}
	next := 0
	for _, tok := range tokens {
		if utf8.RuneCountInString(tok) == 1 {
			continue
		}
		if _, skip := e.stopWords[tok]; skip {
			continue
		}
		if _, seen := order[tok]; !seen {
			order[tok] = next
			next++
		}
		tf[tok]++
	}

	pairs := make([]Pair, 0, len(tf))
	for word, count := range tf {
		idf, ok := e.idf[word]
		if !ok {
			idf = e.idfAverage
		}
		pairs = append(pairs, Pair{Word: word, Score: float64(count) * idf})
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Score != pairs[j].Score {
			return pairs[i].Score > pairs[j].Score
		}
		return order[pairs[i].Word] < order[pairs[j].Word]
	})

	if topN > len(pairs) {
		topN = len(pairs)
	}
	if topN < 0 {
		topN = 0
	}
	return pairs[:topN], nil
}

func loadIDF(path string) (map[string]float64, float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "open %q", path)
	}
	defer f.Close()

	idf := map[string]float64{}
	var sum float64
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			log.Warnf("keyword: %s malformed idf line, skipped", path)
			continue
		}
		v, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			log.Warnf("keyword: %s bad idf value %q, skipped", path, fields[1])
			continue
		}
		idf[fields[0]] = v
		sum += v
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, errors.Wrapf(err, "read %q", path)
	}
	if len(idf) == 0 {
		return nil, 0, errors.Errorf("%q carries no usable idf entries", path)
	}
	return idf, sum / float64(len(idf)), nil
}

func loadStopWords(path string) (map[string]struct{}, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %q", path)
	}
	defer f.Close()

	stop := map[string]struct{}{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		stop[scanner.Text()] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "read %q", path)
	}
	return stop, nil
}
