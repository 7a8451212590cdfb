// Copyright (C) 2024 Casey Beldan. All Rights Reserved.

package jstrict

import "fmt"

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// PositionAt derives the line and column of the given byte offset in
// data, for presentation of parse errors. Offsets past the end of data
// report the end of input.
func PositionAt(data []byte, offset int) LineCol {
	if offset > len(data) {
		offset = len(data)
	}
	lc := LineCol{Line: 1}
	for _, b := range data[:offset] {
		if b == '\n' {
			lc.Line++
			lc.Column = 0
		} else {
			lc.Column++
		}
	}
	return lc
}
