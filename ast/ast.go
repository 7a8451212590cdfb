// Copyright (C) 2024 Casey Beldan. All Rights Reserved.

// Package ast defines the value tree for a strict dialect of JSON, and a
// parser that constructs value trees from source text.
//
// See the package comment of jstrict for a description of the dialect.
package ast

import (
	"errors"
	"strconv"
	"strings"
)

// A Value is a JSON value. The set of variants is closed: Null, Bool,
// Number, String, Array, and Object are the only kinds of Value. A tree
// returned by Parse is fully owned by the caller and is not mutated by
// this package afterward.
type Value interface {
	Kind() Kind
}

// Kind identifies which variant a Value is.
type Kind int

// Constants defining the valid Kind values.
const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

var kindStr = [...]string{"null", "bool", "number", "string", "array", "object"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindStr) {
		return "invalid"
	}
	return kindStr[k]
}

// Null is the JSON null value.
var Null Value = nullValue{}

type nullValue struct{}

func (nullValue) Kind() Kind { return KindNull }

// A Bool is a Boolean constant, true or false.
type Bool bool

// Kind satisfies the Value interface.
func (Bool) Kind() Kind { return KindBool }

// A String is a string value. Its content is fully escape-decoded and is
// always valid Unicode text; it may contain control characters that were
// escaped in the source.
type String string

// Kind satisfies the Value interface.
func (String) Kind() Kind { return KindString }

// A Number is a numeric value. It retains the exact lexeme of the source
// literal, so the source text can be reproduced and interpretations are
// computed on demand without precision loss.
type Number struct {
	text string
}

// Int constructs a Number with the value of z.
func Int(z int64) Number { return Number{text: strconv.FormatInt(z, 10)} }

// Float constructs a Number with the value of f.
func Float(f float64) Number { return Number{text: strconv.FormatFloat(f, 'g', -1, 64)} }

// Kind satisfies the Value interface.
func (Number) Kind() Kind { return KindNumber }

// Text returns the source lexeme of n.
func (n Number) Text() string { return n.text }

// IsInt reports whether n has neither a fractional part nor an exponent.
func (n Number) IsInt() bool { return !strings.ContainsAny(n.text, ".eE") }

// Int64 returns n as an int64. It panics if n is not representable as a
// 64-bit integer.
func (n Number) Int64() int64 {
	v, err := strconv.ParseInt(n.text, 10, 64)
	if err != nil {
		panic(err)
	}
	return v
}

// Float64 returns n as a float64. Lexemes outside the range of a float64
// yield an infinity, as strconv.ParseFloat does. A lexeme with an empty
// fraction such as "1." is interpreted the same way ParseFloat reads it.
func (n Number) Float64() float64 {
	v, err := strconv.ParseFloat(n.text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		panic(err)
	}
	return v
}

// An Array is an ordered sequence of values. It may be empty.
type Array []Value

// Kind satisfies the Value interface.
func (Array) Kind() Kind { return KindArray }

// An Object is an ordered sequence of key-value members. It is not a
// map: duplicate keys are preserved in order, and member order is the
// order given in the source.
type Object []*Member

// Kind satisfies the Value interface.
func (Object) Kind() Kind { return KindObject }

// Find returns the first member of o with the given key, or nil.
func (o Object) Find(key string) *Member {
	for _, m := range o {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

// Field constructs a Member with the given key and value.
func Field(key string, val Value) *Member { return &Member{Key: key, Value: val} }
