package keyword

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ericlingit/mpseg"
)

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExtractScoresAndOrders(t *testing.T) {
	dictPath := writeFile(t, "dict.txt", "中国 5000\n天安门 2000\n的 9000\n")
	seg, err := mpseg.New(dictPath)
	if err != nil {
		t.Fatal(err)
	}

	idfPath := writeFile(t, "idf.txt", "中国 3.0\n")
	stopPath := writeFile(t, "stop.txt", "的\n")

	ex, err := New(seg, idfPath, stopPath)
	if err != nil {
		t.Fatal(err)
	}

	got, err := ex.Extract("中国中国的天安门", 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 keyword, got %v", got)
	}
	if got[0].Word != "中国" || got[0].Score != 6.0 {
		t.Fatalf("got %+v, want {中国 6.0}", got[0])
	}
}

func TestExtractExcludesStopWordsAndSingleChars(t *testing.T) {
	dictPath := writeFile(t, "dict.txt", "中国 5000\n天安门 2000\n的 9000\n人 1000\n")
	seg, err := mpseg.New(dictPath)
	if err != nil {
		t.Fatal(err)
	}
	idfPath := writeFile(t, "idf.txt", "中国 3.0\n天安门 2.0\n")
	stopPath := writeFile(t, "stop.txt", "的\n")

	ex, err := New(seg, idfPath, stopPath)
	if err != nil {
		t.Fatal(err)
	}

	got, err := ex.Extract("中国人的天安门", 10)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range got {
		if p.Word == "的" {
			t.Fatalf("stop word leaked into results: %+v", got)
		}
		if p.Word == "人" {
			t.Fatalf("single-char token leaked into results: %+v", got)
		}
	}
}

func TestExtractTopNMonotone(t *testing.T) {
	dictPath := writeFile(t, "dict.txt", "中国 5000\n天安门 2000\n北京 3000\n")
	seg, err := mpseg.New(dictPath)
	if err != nil {
		t.Fatal(err)
	}
	idfPath := writeFile(t, "idf.txt", "中国 3.0\n天安门 5.0\n北京 1.0\n")
	stopPath := writeFile(t, "stop.txt", "\n")

	ex, err := New(seg, idfPath, stopPath)
	if err != nil {
		t.Fatal(err)
	}
	got, err := ex.Extract("中国天安门北京中国天安门", 3)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Score > got[i-1].Score {
			t.Fatalf("scores not non-increasing: %+v", got)
		}
	}
}

func TestExtractClampsTopN(t *testing.T) {
	dictPath := writeFile(t, "dict.txt", "中国 5000\n")
	seg, err := mpseg.New(dictPath)
	if err != nil {
		t.Fatal(err)
	}
	idfPath := writeFile(t, "idf.txt", "中国 3.0\n")
	stopPath := writeFile(t, "stop.txt", "\n")

	ex, err := New(seg, idfPath, stopPath)
	if err != nil {
		t.Fatal(err)
	}
	got, err := ex.Extract("中国", 50)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("expected clamp to 1 result, got %d", len(got))
	}
}
