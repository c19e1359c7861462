package codepoint

import (
	"reflect"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	cases := []string{
		"",
		"hello",
		"我爱北京天安门",
		"english번역『하다』今天天氣很好",
		"😀emoji🚀test",
	}
	for _, c := range cases {
		t.Run(c, func(t *testing.T) {
			seq, err := DecodeString(c)
			if err != nil {
				t.Fatalf("DecodeString(%q) error: %v", c, err)
			}
			got, err := EncodeString(seq)
			if err != nil {
				t.Fatalf("EncodeString error: %v", err)
			}
			if got != c {
				t.Fatalf("round trip mismatch: got %q, want %q", got, c)
			}
		})
	}
}

func TestDecodeRejectsMalformedUTF8(t *testing.T) {
	cases := [][]byte{
		{0xff, 0xfe},
		{0xc0, 0x80}, // overlong encoding
		{0xed, 0xa0, 0x80}, // encoded surrogate U+D800
	}
	for _, c := range cases {
		if _, err := Decode(c); err == nil {
			t.Fatalf("Decode(%v) expected error, got nil", c)
		}
	}
}

func TestSeqLength(t *testing.T) {
	seq, err := DecodeString("我爱北京")
	if err != nil {
		t.Fatal(err)
	}
	if len(seq) != 4 {
		t.Fatalf("expected 4 code points, got %d", len(seq))
	}
	want := Seq{0x6211, 0x7231, 0x5317, 0x4eac}
	if !reflect.DeepEqual(seq, want) {
		t.Fatalf("got %v, want %v", seq, want)
	}
}
