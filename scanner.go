// Copyright (C) 2024 Casey Beldan. All Rights Reserved.

package jstrict

import (
	"fmt"

	"go4.org/mem"

	"github.com/cbeldan/jstrict/internal/escape"
)

// A Scanner is a lexical cursor over a JSON input held fully in memory.
// It recognizes the primitive lexemes of the grammar: string literals,
// numeric literals, keywords, and punctuation. The cursor position can be
// saved with Pos and restored with Seek, which is the backtrack primitive
// for ordered choice.
//
// String and number lexing are atomic: once a literal begins, no
// whitespace skipping occurs until its natural end. A literal space
// inside a quoted string is content, not a separator.
type Scanner struct {
	data []byte
	pos  int

	strictFractions  bool
	strictSurrogates bool
}

// NewScanner constructs a new lexical scanner over data.
func NewScanner(data []byte) *Scanner { return &Scanner{data: data} }

// StrictFractions configures the scanner to reject (true) or accept
// (false) a numeric literal with a decimal point but no fractional
// digits, such as "1.". The dialect accepts such literals by default.
func (s *Scanner) StrictFractions(ok bool) { s.strictFractions = ok }

// StrictSurrogates configures the scanner to reject (true) unpaired
// surrogate halves in \uXXXX escapes, or decode them to U+FFFD (false).
func (s *Scanner) StrictSurrogates(ok bool) { s.strictSurrogates = ok }

// Pos reports the current byte offset of the cursor.
func (s *Scanner) Pos() int { return s.pos }

// Seek restores the cursor to a position previously reported by Pos.
func (s *Scanner) Seek(pos int) { s.pos = pos }

// EOF reports whether the cursor has reached the end of the input.
func (s *Scanner) EOF() bool { return s.pos >= len(s.data) }

// Peek returns the byte at the cursor without consuming it.
// It reports false at the end of the input.
func (s *Scanner) Peek() (byte, bool) {
	if s.EOF() {
		return 0, false
	}
	return s.data[s.pos], true
}

// ScanByte consumes the next byte if it equals b, and reports whether it
// did. At the end of the input it consumes nothing.
func (s *Scanner) ScanByte(b byte) bool {
	if s.EOF() || s.data[s.pos] != b {
		return false
	}
	s.pos++
	return true
}

// SkipSpace advances the cursor past insignificant whitespace (space,
// tab, CR, LF). It must not be called while a string or number literal
// is being scanned; those rules are atomic.
func (s *Scanner) SkipSpace() {
	for s.pos < len(s.data) && isSpace(s.data[s.pos]) {
		s.pos++
	}
}

// ScanString scans a complete string literal at the cursor and returns
// its escape-decoded content. The cursor must be positioned at the
// opening quote. On failure the cursor position is unspecified.
func (s *Scanner) ScanString() (string, error) {
	start := s.pos
	if !s.ScanByte('"') {
		return "", errAt(UnexpectedToken, s.pos, `want '"'`)
	}
	body := s.pos
	for {
		if s.EOF() {
			return "", &ParseError{Kind: UnterminatedString, Offset: start}
		}
		switch ch := s.data[s.pos]; ch {
		case '"':
			raw := s.data[body:s.pos]
			s.pos++
			dec, off, err := escape.Decode(mem.B(raw), s.strictSurrogates)
			if err != nil {
				return "", &ParseError{
					Kind:   InvalidUnicodeEscape,
					Offset: body + off,
					Detail: err.Error(),
					err:    err,
				}
			}
			return string(dec), nil

		case '\\':
			s.pos++
			if s.EOF() {
				return "", &ParseError{Kind: UnterminatedString, Offset: start}
			}
			switch esc := s.data[s.pos]; esc {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				s.pos++
			case 'u':
				s.pos++
				if err := s.scanHex4(); err != nil {
					return "", err
				}
			default:
				return "", errAt(InvalidEscape, s.pos, "invalid %q after escape", esc)
			}

		default:
			// Verbatim content. Any byte other than the quote and the
			// backslash is part of the string, including raw controls.
			s.pos++
		}
	}
}

// scanHex4 consumes exactly 4 hexadecimal digits from the input.
func (s *Scanner) scanHex4() error {
	for i := 0; i < 4; i++ {
		if s.EOF() {
			return errAt(InvalidUnicodeEscape, s.pos, "incomplete Unicode escape")
		}
		if b := s.data[s.pos]; !isHexDigit(b) {
			return errAt(InvalidUnicodeEscape, s.pos, "not a hex digit: %q", b)
		}
		s.pos++
	}
	return nil
}

// ScanNumber scans a numeric literal at the cursor and returns its
// lexeme. The cursor must be positioned at the leading sign or first
// digit; once that byte is consumed, a malformed continuation is a
// terminal error, not a backtrack.
func (s *Scanner) ScanNumber() (string, error) {
	start := s.pos
	s.ScanByte('-')

	first, ok := s.Peek()
	if !ok || !isDigit(first) {
		return "", s.numberError(start, "want digit")
	}
	s.pos++
	if first == '0' {
		// A leading zero must be the only integer digit.
		// That is: 0.12 is OK, 01.2 is not.
		if b, ok := s.Peek(); ok && isDigit(b) {
			return "", s.numberError(start, "extra leading zeroes")
		}
	} else {
		s.skipDigits()
	}

	// If a decimal point follows, consume a fractional part. The dialect
	// permits an empty fraction ("1."); StrictFractions tightens this to
	// require at least one digit.
	if s.ScanByte('.') {
		if nd := s.skipDigits(); nd == 0 && s.strictFractions {
			return "", s.numberError(start, "no digits after decimal point")
		}
	}

	// If an exponent marker follows, its digits are mandatory.
	if b, ok := s.Peek(); ok && (b == 'e' || b == 'E') {
		s.pos++
		if b, ok := s.Peek(); ok && (b == '+' || b == '-') {
			s.pos++
		}
		if nd := s.skipDigits(); nd == 0 {
			return "", s.numberError(start, "missing exponent digits")
		}
	}
	return string(s.data[start:s.pos]), nil
}

// ScanKeyword consumes a run of lowercase letters at the cursor and
// requires it to equal want. Keywords match whole words only; a prefix
// such as "tru" is an error at that position, not a backtrack.
func (s *Scanner) ScanKeyword(want string) error {
	start := s.pos
	for s.pos < len(s.data) && isNameByte(s.data[s.pos]) {
		s.pos++
	}
	if got := mem.B(s.data[start:s.pos]); !got.Equal(mem.S(want)) {
		return errAt(UnexpectedToken, start, "unknown constant %q", got.StringCopy())
	}
	return nil
}

func (s *Scanner) skipDigits() int {
	var nd int
	for s.pos < len(s.data) && isDigit(s.data[s.pos]) {
		s.pos++
		nd++
	}
	return nd
}

func (s *Scanner) numberError(start int, msg string, args ...any) error {
	return &ParseError{Kind: InvalidNumberFormat, Offset: start, Detail: fmt.Sprintf(msg, args...)}
}

func isSpace(b byte) bool    { return b == ' ' || b == '\r' || b == '\n' || b == '\t' }
func isDigit(b byte) bool    { return '0' <= b && b <= '9' }
func isNameByte(b byte) bool { return b >= 'a' && b <= 'z' }

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
