package hmm

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTestEmit(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "emit.json")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const testEmitJSON = `{
  "B": {"今": -1.0, "天": -2.5, "氣": -3.0, "很": -2.0, "好": -1.5},
  "M": {"今": -3.0, "天": -3.0, "氣": -3.0, "很": -3.0, "好": -3.0},
  "E": {"今": -2.5, "天": -1.2, "氣": -1.0, "很": -2.0, "好": -1.0},
  "S": {"今": -2.0, "天": -2.0, "氣": -2.0, "很": -0.8, "好": -0.8}
}`

func TestViterbiSinglePieceIsSingle(t *testing.T) {
	path := writeTestEmit(t, testEmitJSON)
	model, err := LoadModel(path)
	if err != nil {
		t.Fatal(err)
	}
	got := model.Viterbi("好")
	if len(got) != 1 || got[0] != Single {
		t.Fatalf("expected [Single], got %v", got)
	}
}

func TestCutProducesCoveringTokens(t *testing.T) {
	path := writeTestEmit(t, testEmitJSON)
	model, err := LoadModel(path)
	if err != nil {
		t.Fatal(err)
	}
	text := "今天氣很好"
	pathStates := model.Viterbi(text)
	tokens := model.Cut(text, pathStates)
	joined := ""
	for _, tok := range tokens {
		joined += tok
	}
	if joined != text {
		t.Fatalf("coverage violated: got %q from tokens %v, want %q", joined, tokens, text)
	}
}

func TestSegmenterCoversMixedHanAndLatin(t *testing.T) {
	path := writeTestEmit(t, testEmitJSON)
	model, err := LoadModel(path)
	if err != nil {
		t.Fatal(err)
	}
	seg := NewSegmenter(model)
	got, err := seg.Cut("hello今天氣很好world")
	if err != nil {
		t.Fatal(err)
	}
	joined := ""
	for _, tok := range got {
		joined += tok
	}
	if joined != "hello今天氣很好world" {
		t.Fatalf("coverage violated: %v", got)
	}
}

func TestSegmenterEmptyInput(t *testing.T) {
	path := writeTestEmit(t, testEmitJSON)
	model, err := LoadModel(path)
	if err != nil {
		t.Fatal(err)
	}
	seg := NewSegmenter(model)
	if _, err := seg.Cut(""); err != ErrEmptyInput {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}

func TestLoadModelRejectsEmptyEmissions(t *testing.T) {
	path := writeTestEmit(t, `{}`)
	if _, err := LoadModel(path); err == nil {
		t.Fatal("expected error for empty emission table")
	}
}
