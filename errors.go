// Copyright (C) 2024 Casey Beldan. All Rights Reserved.

package jstrict

import "fmt"

// ErrKind identifies the category of a parse failure.
type ErrKind int

// Constants defining the valid ErrKind values.
const (
	UnexpectedToken      ErrKind = 1 + iota // input matches no expected form
	UnterminatedString                      // string missing its closing quote
	InvalidEscape                           // invalid character after backslash
	InvalidUnicodeEscape                    // malformed \uXXXX escape
	InvalidNumberFormat                     // malformed numeric literal
	TrailingContent                         // non-whitespace after the root value
	NestingTooDeep                          // nesting exceeds the configured limit
	EmptyInput                              // no input before end of input
)

var kindStr = [...]string{
	UnexpectedToken:      "unexpected token",
	UnterminatedString:   "unterminated string",
	InvalidEscape:        "invalid escape sequence",
	InvalidUnicodeEscape: "invalid Unicode escape",
	InvalidNumberFormat:  "invalid number format",
	TrailingContent:      "trailing content",
	NestingTooDeep:       "nesting too deep",
	EmptyInput:           "empty input",
}

func (k ErrKind) String() string {
	if k < 1 || int(k) >= len(kindStr) {
		return "invalid error kind"
	}
	return kindStr[k]
}

// A ParseError reports the first point at which an input failed to
// conform to the grammar. Parsing stops at the first violation; no
// partial result accompanies a ParseError.
type ParseError struct {
	Kind   ErrKind // the category of failure
	Offset int     // byte offset into the input, 0-based
	Detail string  // human-readable specifics, may be empty
	Limit  int     // for NestingTooDeep, the configured depth limit

	err error
}

// Error satisfies the error interface.
func (e *ParseError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("offset %d: %s: %s", e.Offset, e.Kind, e.Detail)
	}
	return fmt.Sprintf("offset %d: %s", e.Offset, e.Kind)
}

// Unwrap supports error wrapping.
func (e *ParseError) Unwrap() error { return e.err }

func errAt(kind ErrKind, offset int, msg string, args ...any) *ParseError {
	return &ParseError{Kind: kind, Offset: offset, Detail: fmt.Sprintf(msg, args...)}
}
