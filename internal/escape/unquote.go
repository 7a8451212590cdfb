// Copyright (C) 2024 Casey Beldan. All Rights Reserved.

// Package escape handles decoding of JSON string escapes.
package escape

import (
	"errors"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

// Decode decodes the body of a JSON string literal. The input must have
// the enclosing double quotation marks already removed, and its escape
// sequences must already be structurally valid (backslash followed by a
// legal escape character, \u followed by four hex digits); the scanner
// establishes that before calling Decode.
//
// Escape sequences are replaced with their unescaped equivalents, and
// consecutive \uXXXX escapes that form a surrogate pair are combined
// into the single code point they encode. An unpaired surrogate half is
// decoded to U+FFFD, or reported as an error when strict is true; the
// returned offset is the byte position of the offending escape within
// src. Invalid UTF-8 in unescaped content is replaced by U+FFFD, so the
// result is always valid Unicode text.
func Decode(src mem.RO, strict bool) ([]byte, int, error) {
	dec := make([]byte, 0, src.Len())
	putRune := func(r rune) {
		var buf [6]byte
		n := utf8.EncodeRune(buf[:], r)
		dec = append(dec, buf[:n]...)
	}

	total := src.Len()
	for src.Len() != 0 {
		i := mem.IndexByte(src, '\\')
		if i < 0 {
			return appendSanitized(dec, src), 0, nil
		}
		dec = appendSanitized(dec, src.SliceTo(i))
		src = src.SliceFrom(i)
		escOff := total - src.Len() // offset of the backslash in the original src

		src = src.SliceFrom(1)
		if src.Len() == 0 {
			return nil, escOff, errors.New("incomplete escape sequence")
		}
		b := src.At(0)
		src = src.SliceFrom(1)
		switch b {
		case '"', '\\', '/':
			dec = append(dec, b)
		case 'b':
			dec = append(dec, '\b')
		case 'f':
			dec = append(dec, '\f')
		case 'n':
			dec = append(dec, '\n')
		case 'r':
			dec = append(dec, '\r')
		case 't':
			dec = append(dec, '\t')
		case 'u':
			if src.Len() < 4 {
				return nil, escOff, errors.New("incomplete Unicode escape")
			}
			v, err := parseHex(src.SliceTo(4))
			if err != nil {
				return nil, escOff, err
			}
			src = src.SliceFrom(4)
			r := rune(v)
			if !utf16.IsSurrogate(r) {
				putRune(r)
				break
			}

			// A high surrogate may combine with an immediately following
			// \uXXXX low surrogate into one code point.
			if r2, ok := pairedSurrogate(src, r); ok {
				putRune(r2)
				src = src.SliceFrom(6)
				break
			}
			if strict {
				return nil, escOff, fmt.Errorf("unpaired surrogate %U", r)
			}
			putRune(utf8.RuneError)
		default:
			return nil, escOff, fmt.Errorf("invalid %q after escape", b)
		}
	}
	return dec, 0, nil
}

// pairedSurrogate reports whether src begins with a \uXXXX escape whose
// value forms a valid surrogate pair with hi, and if so returns the
// combined code point.
func pairedSurrogate(src mem.RO, hi rune) (rune, bool) {
	if src.Len() < 6 || src.At(0) != '\\' || src.At(1) != 'u' {
		return 0, false
	}
	v, err := parseHex(src.SliceTo(6).SliceFrom(2))
	if err != nil {
		return 0, false
	}
	r := utf16.DecodeRune(hi, rune(v))
	if r == utf8.RuneError {
		return 0, false
	}
	return r, true
}

// appendSanitized appends src to dec, replacing invalid UTF-8 sequences
// with the Unicode replacement rune.
func appendSanitized(dec []byte, src mem.RO) []byte {
	for src.Len() != 0 {
		r, n := mem.DecodeRune(src)
		if r == utf8.RuneError && n <= 1 {
			if n == 0 {
				n = 1
			}
			dec = utf8.AppendRune(dec, utf8.RuneError)
			src = src.SliceFrom(n)
			continue
		}
		var buf [6]byte
		nb := utf8.EncodeRune(buf[:], r)
		dec = append(dec, buf[:nb]...)
		src = src.SliceFrom(n)
	}
	return dec
}

func parseHex(data mem.RO) (int64, error) {
	var v int64
	for i := 0; i < data.Len(); i++ {
		b := data.At(i)
		v <<= 4
		if '0' <= b && b <= '9' {
			v += int64(b - '0')
		} else if 'a' <= b && b <= 'f' {
			v += int64(b - 'a' + 10)
		} else if 'A' <= b && b <= 'F' {
			v += int64(b - 'A' + 10)
		} else {
			return 0, fmt.Errorf("invalid hex digit %q", b)
		}
	}
	return v, nil
}
