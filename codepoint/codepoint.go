// Package codepoint converts between UTF-8 byte strings and the
// 32-bit Unicode scalar values the segmentation engine operates on.
package codepoint

import (
	"unicode/utf8"

	"github.com/pkg/errors"
)

// CodePoint is a single Unicode scalar value, U+0000..U+10FFFF
// excluding the surrogate range U+D800..U+DFFF.
type CodePoint uint32

// Seq is an ordered sequence of CodePoint.
type Seq []CodePoint

const (
	surrogateLo = 0xD800
	surrogateHi = 0xDFFF
)

// ErrMalformedUTF8 is returned when Decode encounters a byte
// sequence that is not well-formed UTF-8.
var ErrMalformedUTF8 = errors.New("codepoint: malformed utf-8 input")

// Decode converts a well-formed UTF-8 byte slice into a Seq. It
// fails on the first malformed byte sequence it finds, including
// any encoding of a surrogate code point.
func Decode(b []byte) (Seq, error) {
	seq := make(Seq, 0, len(b))
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return nil, errors.Wrapf(ErrMalformedUTF8, "at byte offset %d", i)
		}
		if r >= surrogateLo && r <= surrogateHi {
			return nil, errors.Wrapf(ErrMalformedUTF8, "surrogate code point at byte offset %d", i)
		}
		seq = append(seq, CodePoint(r))
		i += size
	}
	return seq, nil
}

// DecodeString is a convenience wrapper around Decode for string
// input.
func DecodeString(s string) (Seq, error) {
	return Decode([]byte(s))
}

// Encode renders seq back to UTF-8 bytes. It only fails if seq
// contains a value that is not a Unicode scalar value (above
// U+10FFFF, or a surrogate), which cannot occur for a Seq produced
// by Decode.
func Encode(seq Seq) ([]byte, error) {
	out := make([]byte, 0, len(seq)*3)
	var buf [utf8.UTFMax]byte
	for _, cp := range seq {
		r := rune(cp)
		if !utf8.ValidRune(r) {
			return nil, errors.Errorf("codepoint: invalid scalar value U+%04X", uint32(cp))
		}
		n := utf8.EncodeRune(buf[:], r)
		out = append(out, buf[:n]...)
	}
	return out, nil
}

// EncodeString is a convenience wrapper around Encode returning a
// string.
func EncodeString(seq Seq) (string, error) {
	b, err := Encode(seq)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
