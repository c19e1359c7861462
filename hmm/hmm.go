// Package hmm implements the alternative HMM-only segmenter: a
// Hidden-Markov/Viterbi tagger over the BMES (Begin/Middle/End/
// Single) state set, used as a standalone segmentation strategy
// when no dictionary is available. Neither the MP segmenter nor the
// keyword extractor calls into this package.
//
// Unlike the dictionary-backed MP segmenter, this package carries no
// trie: every decision comes from the Model's start/transition/
// emission probabilities. LoadModel reads the emission table from a
// file and pairs it with the built-in start/transition defaults;
// none of these weights are learned here.
package hmm

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// State is one of the four BMES tags a rune can carry: Begin,
// Middle, End, Single.
type State string

const (
	Begin  State = "B"
	Middle State = "M"
	End    State = "E"
	Single State = "S"
)

// floor stands in for log(0): a transition or emission the model
// never observed, without actually under/overflowing float64 math.
const floor = -3.14e100

var states = []State{Begin, Middle, End, Single}

// allowedPrev lists, for each current state, which previous states
// may legally precede it in a BMES path.
var allowedPrev = map[State][]State{
	Begin:  {End, Single},
	Middle: {Begin, Middle},
	End:    {Begin, Middle},
	Single: {End, Single},
}

// Model is a loaded Hidden Markov Model: start-state log
// probabilities, state-transition log probabilities, and per-state
// emission log probabilities keyed by rune.
type Model struct {
	startP map[State]float64
	transP map[State]map[State]float64
	emitP  map[State]map[string]float64
}

// DefaultStartP and DefaultTransP are the structural BMES
// parameters: they describe the shape of Chinese word boundaries in
// general, independent of any particular corpus, so unlike emission
// probabilities they ship as constants rather than a loaded file.
var (
	DefaultStartP = map[State]float64{
		Begin:  -0.26268660809250016,
		End:    floor,
		Middle: floor,
		Single: -1.4652633398537678,
	}
	DefaultTransP = map[State]map[State]float64{
		Begin:  {End: -0.51082562376599, Middle: -0.916290731874155},
		End:    {Begin: -0.5897149736854513, Single: -0.8085250474669937},
		Middle: {End: -0.33344856811948514, Middle: -1.2603623820268226},
		Single: {Begin: -0.7211965654669841, Single: -0.6658631448798212},
	}
)

// NewModel builds a Model from already-loaded probability tables.
func NewModel(startP map[State]float64, transP map[State]map[State]float64, emitP map[State]map[string]float64) *Model {
	return &Model{startP: startP, transP: transP, emitP: emitP}
}

// LoadModel reads a per-state emission-probability table from a
// JSON file shaped as {"B": {"word": -1.1, ...}, "M": {...}, ...}
// and pairs it with the structural start/transition defaults.
func LoadModel(emitPath string) (*Model, error) {
	data, err := os.ReadFile(emitPath)
	if err != nil {
		return nil, errors.Wrapf(err, "hmm: read %q", emitPath)
	}
	emitP := map[State]map[string]float64{}
	if err := json.Unmarshal(data, &emitP); err != nil {
		return nil, errors.Wrapf(err, "hmm: parse %q", emitPath)
	}
	if len(emitP) == 0 {
		return nil, errors.Errorf("hmm: %q carries no emission probabilities", emitPath)
	}
	return NewModel(DefaultStartP, DefaultTransP, emitP), nil
}

// Viterbi returns the most likely BMES state path for text's runes.
func (m *Model) Viterbi(text string) []State {
	runes := []rune(text)
	if len(runes) == 1 {
		return []State{Single}
	}

	stateProba := make([]map[State]float64, len(runes))
	fullPath := map[State][]State{
		Begin:  {Begin},
		Middle: {Middle},
		End:    {End},
		Single: {Single},
	}

	stateProba[0] = map[State]float64{}
	for _, s := range states {
		stateProba[0][s] = m.startP[s] + m.emit(s, runes[0])
	}

	for i := 1; i < len(runes); i++ {
		stateProba[i] = map[State]float64{}
		nextPath := map[State][]State{}
		for _, s := range states {
			fromState, routeProba := m.bestRoute(s, stateProba[i-1])
			stateProba[i][s] = routeProba + m.emit(s, runes[i])
			nextPath[s] = append(append([]State{}, fullPath[fromState]...), s)
		}
		fullPath = nextPath
	}

	last := stateProba[len(runes)-1]
	if last[End] >= last[Single] {
		return fullPath[End]
	}
	return fullPath[Single]
}

// Cut converts a BMES path over text into token boundaries: a span
// closes after every End or Single state.
func (m *Model) Cut(text string, path []State) []string {
	runes := []rune(text)
	tokens := make([]string, 0, len(path))
	start := 0
	for i, s := range path {
		if s == End || s == Single {
			tokens = append(tokens, string(runes[start:i+1]))
			start = i + 1
		}
	}
	return tokens
}

// bestRoute finds, among the states allowed to precede cur, the one
// with the highest cumulative log probability.
func (m *Model) bestRoute(cur State, prevProba map[State]float64) (State, float64) {
	best := floor
	bestFrom := allowedPrev[cur][0]
	for _, prev := range allowedPrev[cur] {
		p := prevProba[prev] + m.transP[prev][cur]
		if p > best {
			best = p
			bestFrom = prev
		}
	}
	return bestFrom, best
}

func (m *Model) emit(s State, r rune) float64 {
	if p, ok := m.emitP[s][string(r)]; ok {
		return p
	}
	return floor
}
