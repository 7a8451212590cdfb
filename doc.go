// Copyright (C) 2024 Casey Beldan. All Rights Reserved.

// Package jstrict implements the lexical layer of a parser for a strict
// dialect of JSON text.
//
// # The dialect
//
// The grammar is JSON with two deliberate differences from RFC 8259:
//
//   - The root of a document must be an object or an array. Bare scalars
//     ("x", 42, true, null) are valid values inside containers but are
//     rejected at the top level.
//
//   - A numeric literal may carry a decimal point with no fractional
//     digits, as in "1.". This looseness is part of the grammar and is
//     preserved; the StrictFractions switch restores RFC behavior.
//
// Everything else is strict: no comments, no trailing commas, keywords
// are matched as whole case-sensitive words, exponent digits are
// mandatory after an exponent marker, and leading zeroes are rejected.
//
// # Scanning
//
// The Scanner type is a cursor over an in-memory input. It exposes the
// atomic lexical rules of the grammar (ScanString, ScanNumber,
// ScanKeyword) together with cursor primitives (Pos, Seek, Peek,
// ScanByte, SkipSpace) that let a recursive-descent parser implement
// ordered choice: try an alternative, and on a soft failure restore the
// position and try the next.
//
//	s := jstrict.NewScanner(data)
//	s.SkipSpace()
//	if b, ok := s.Peek(); ok && b == '"' {
//	   text, err := s.ScanString()
//	   ...
//	}
//
// Whitespace is insignificant between structural tokens only. String and
// number scanning is atomic: no whitespace skipping occurs inside a
// literal.
//
// # Errors
//
// All failures are reported as *ParseError carrying an ErrKind and the
// byte offset of the violation. Line and column presentation, when
// wanted, can be derived from the offset with PositionAt.
//
// Parsing into a value tree is provided by the ast subpackage.
package jstrict
