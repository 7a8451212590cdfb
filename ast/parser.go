// Copyright (C) 2024 Casey Beldan. All Rights Reserved.

package ast

import (
	"errors"
	"fmt"

	"github.com/cbeldan/jstrict"
)

// DefaultMaxDepth is the nesting depth limit applied when a Parser does
// not specify one.
const DefaultMaxDepth = 1000

// A Parser holds configuration for parsing. The zero value is ready for
// use and applies the dialect's defaults. A Parser holds no state across
// calls, so a single Parser may be used concurrently.
type Parser struct {
	// MaxDepth bounds object and array nesting. Input nested deeper than
	// this fails with NestingTooDeep, keeping stack usage bounded against
	// adversarial input. If zero, DefaultMaxDepth applies.
	MaxDepth int

	// StrictFractions rejects numeric literals with a decimal point but
	// no fractional digits ("1."), which the dialect otherwise accepts.
	StrictFractions bool

	// StrictSurrogates rejects unpaired surrogate halves in \uXXXX
	// escapes instead of decoding them to U+FFFD.
	StrictSurrogates bool
}

// Parse converts data into a value tree using the default configuration.
// See Parser.Parse.
func Parse(data []byte) (Value, error) {
	var p Parser
	return p.Parse(data)
}

// Parse converts data into a value tree. The root of a document must be
// an object or an array; bare scalars are rejected at the top level even
// though they are valid values inside containers, and non-whitespace
// content after the root value is rejected as well.
//
// On failure Parse returns an error of concrete type
// [*jstrict.ParseError] describing the first violation; no partial tree
// accompanies an error.
func (p *Parser) Parse(data []byte) (Value, error) {
	sc := jstrict.NewScanner(data)
	sc.StrictFractions(p.StrictFractions)
	sc.StrictSurrogates(p.StrictSurrogates)

	st := &state{sc: sc, maxDepth: p.MaxDepth}
	if st.maxDepth <= 0 {
		st.maxDepth = DefaultMaxDepth
	}

	sc.SkipSpace()
	if sc.EOF() {
		return nil, &jstrict.ParseError{Kind: jstrict.EmptyInput, Offset: sc.Pos()}
	}

	// The root rule admits only the container alternatives.
	var root Value
	var err error
	switch b, _ := sc.Peek(); b {
	case '{':
		root, err = st.parseObject(1)
	case '[':
		root, err = st.parseArray(1)
	default:
		return nil, st.errAt(jstrict.UnexpectedToken, "root value must be an object or array")
	}
	if err != nil {
		return nil, err
	}

	sc.SkipSpace()
	if !sc.EOF() {
		return nil, &jstrict.ParseError{Kind: jstrict.TrailingContent, Offset: sc.Pos()}
	}
	return root, nil
}

// errNoMatch is the soft failure of a try function: the alternative did
// not match and consumed nothing, so ordered choice moves on to the next
// one. Any other error is terminal and stops the parse.
var errNoMatch = errors.New("no match")

type state struct {
	sc       *jstrict.Scanner
	maxDepth int
}

// parseValue parses one value by ordered choice: object, array, string,
// number, boolean, null. Each alternative either fails softly having
// consumed nothing, or commits at its distinguishing prefix, after which
// any failure is terminal.
func (st *state) parseValue(depth int) (Value, error) {
	st.sc.SkipSpace()
	tries := [...]func(int) (Value, error){
		st.tryObject,
		st.tryArray,
		st.tryString,
		st.tryNumber,
		st.tryBool,
		st.tryNull,
	}
	for _, try := range tries {
		save := st.sc.Pos()
		v, err := try(depth)
		if err == errNoMatch {
			st.sc.Seek(save)
			continue
		}
		return v, err
	}
	return nil, st.syntaxError("want value")
}

func (st *state) tryObject(depth int) (Value, error) {
	if b, ok := st.sc.Peek(); !ok || b != '{' {
		return nil, errNoMatch
	}
	return st.parseObject(depth)
}

// parseObject parses an object at the cursor. The opening brace commits
// the parse; a malformed body is a terminal error, not a backtrack.
// Precondition: the next byte is '{'.
func (st *state) parseObject(depth int) (Value, error) {
	if err := st.checkDepth(depth); err != nil {
		return nil, err
	}
	st.sc.ScanByte('{')
	st.sc.SkipSpace()

	obj := Object{}
	if st.sc.ScanByte('}') {
		return obj, nil // empty object
	}
	for {
		st.sc.SkipSpace()
		m, err := st.parseMember(depth)
		if err != nil {
			return nil, err
		}
		obj = append(obj, m)

		// A comma must be followed by another member; a close brace ends
		// the object. Anything else is an error.
		st.sc.SkipSpace()
		if st.sc.ScanByte(',') {
			continue
		}
		if st.sc.ScanByte('}') {
			return obj, nil
		}
		return nil, st.syntaxError(`want "," or "}"`)
	}
}

// parseMember parses a single "key": value pair.
func (st *state) parseMember(depth int) (*Member, error) {
	if b, ok := st.sc.Peek(); !ok || b != '"' {
		return nil, st.syntaxError("want object key")
	}
	key, err := st.sc.ScanString()
	if err != nil {
		return nil, err
	}
	st.sc.SkipSpace()
	if !st.sc.ScanByte(':') {
		return nil, st.syntaxError(`want ":"`)
	}
	val, err := st.parseValue(depth + 1)
	if err != nil {
		return nil, err
	}
	return &Member{Key: key, Value: val}, nil
}

func (st *state) tryArray(depth int) (Value, error) {
	if b, ok := st.sc.Peek(); !ok || b != '[' {
		return nil, errNoMatch
	}
	return st.parseArray(depth)
}

// parseArray parses an array at the cursor. Structurally identical to
// parseObject with bare values instead of members.
// Precondition: the next byte is '['.
func (st *state) parseArray(depth int) (Value, error) {
	if err := st.checkDepth(depth); err != nil {
		return nil, err
	}
	st.sc.ScanByte('[')
	st.sc.SkipSpace()

	arr := Array{}
	if st.sc.ScanByte(']') {
		return arr, nil // empty array
	}
	for {
		v, err := st.parseValue(depth + 1)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)

		st.sc.SkipSpace()
		if st.sc.ScanByte(',') {
			continue
		}
		if st.sc.ScanByte(']') {
			return arr, nil
		}
		return nil, st.syntaxError(`want "," or "]"`)
	}
}

func (st *state) tryString(int) (Value, error) {
	if b, ok := st.sc.Peek(); !ok || b != '"' {
		return nil, errNoMatch
	}
	text, err := st.sc.ScanString()
	if err != nil {
		return nil, err
	}
	return String(text), nil
}

func (st *state) tryNumber(int) (Value, error) {
	b, ok := st.sc.Peek()
	if !ok || (b != '-' && !(b >= '0' && b <= '9')) {
		return nil, errNoMatch
	}
	text, err := st.sc.ScanNumber()
	if err != nil {
		return nil, err
	}
	return Number{text: text}, nil
}

func (st *state) tryBool(int) (Value, error) {
	switch b, ok := st.sc.Peek(); {
	case !ok:
		return nil, errNoMatch
	case b == 't':
		if err := st.sc.ScanKeyword("true"); err != nil {
			return nil, err
		}
		return Bool(true), nil
	case b == 'f':
		if err := st.sc.ScanKeyword("false"); err != nil {
			return nil, err
		}
		return Bool(false), nil
	}
	return nil, errNoMatch
}

func (st *state) tryNull(int) (Value, error) {
	if b, ok := st.sc.Peek(); !ok || b != 'n' {
		return nil, errNoMatch
	}
	if err := st.sc.ScanKeyword("null"); err != nil {
		return nil, err
	}
	return Null, nil
}

func (st *state) checkDepth(depth int) error {
	if depth > st.maxDepth {
		return &jstrict.ParseError{
			Kind:   jstrict.NestingTooDeep,
			Offset: st.sc.Pos(),
			Limit:  st.maxDepth,
			Detail: fmt.Sprintf("nesting exceeds %d levels", st.maxDepth),
		}
	}
	return nil
}

func (st *state) errAt(kind jstrict.ErrKind, msg string, args ...any) error {
	return &jstrict.ParseError{Kind: kind, Offset: st.sc.Pos(), Detail: fmt.Sprintf(msg, args...)}
}

// syntaxError reports an UnexpectedToken error at the cursor, describing
// what was expected and what was found (a character, or end of input).
func (st *state) syntaxError(want string) error {
	if b, ok := st.sc.Peek(); ok {
		return st.errAt(jstrict.UnexpectedToken, "%s, got %q", want, b)
	}
	return st.errAt(jstrict.UnexpectedToken, "%s, got end of input", want)
}
