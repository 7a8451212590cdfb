// Copyright (C) 2024 Casey Beldan. All Rights Reserved.

package ast_test

import (
	"math"
	"testing"

	"github.com/cbeldan/jstrict/ast"
	"github.com/creachadair/mds/mtest"
)

func TestKind(t *testing.T) {
	tests := []struct {
		value ast.Value
		kind  ast.Kind
		str   string
	}{
		{ast.Null, ast.KindNull, "null"},
		{ast.Bool(true), ast.KindBool, "bool"},
		{ast.Int(3), ast.KindNumber, "number"},
		{ast.String("x"), ast.KindString, "string"},
		{ast.Array{}, ast.KindArray, "array"},
		{ast.Object{}, ast.KindObject, "object"},
	}
	for _, test := range tests {
		if got := test.value.Kind(); got != test.kind {
			t.Errorf("Kind of %T: got %v, want %v", test.value, got, test.kind)
		}
		if got := test.kind.String(); got != test.str {
			t.Errorf("String of %v: got %q, want %q", test.kind, got, test.str)
		}
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		n     ast.Number
		text  string
		isInt bool
		f64   float64
	}{
		{ast.Int(0), "0", true, 0},
		{ast.Int(15), "15", true, 15},
		{ast.Int(-25), "-25", true, -25},
		{ast.Float(-0.00239), "-0.00239", false, -0.00239},
		{ast.Float(2.5), "2.5", false, 2.5},
	}
	for _, test := range tests {
		if got := test.n.Text(); got != test.text {
			t.Errorf("Text: got %q, want %q", got, test.text)
		}
		if got := test.n.IsInt(); got != test.isInt {
			t.Errorf("IsInt(%q): got %v, want %v", test.text, got, test.isInt)
		}
		if got := test.n.Float64(); got != test.f64 {
			t.Errorf("Float64(%q): got %v, want %v", test.text, got, test.f64)
		}
	}

	if got := ast.Int(-25).Int64(); got != -25 {
		t.Errorf("Int64: got %v, want -25", got)
	}
}

func TestNumber_fromSource(t *testing.T) {
	arr := mustParse(t, `[15,-2.5,6.02e23,1e999]`).(ast.Array)

	if n := arr[0].(ast.Number); !n.IsInt() || n.Int64() != 15 {
		t.Errorf("arr[0]: got %q (isInt=%v), want integer 15", n.Text(), n.IsInt())
	}
	if n := arr[1].(ast.Number); n.IsInt() || n.Float64() != -2.5 {
		t.Errorf("arr[1]: got %q, want -2.5", n.Text())
	}
	if n := arr[2].(ast.Number); n.Text() != "6.02e23" {
		t.Errorf("arr[2]: lexeme %q, want 6.02e23", n.Text())
	}

	// Interpretation beyond float64 range saturates, as ParseFloat does;
	// the lexeme itself is preserved exactly.
	if n := arr[3].(ast.Number); !math.IsInf(n.Float64(), +1) || n.Text() != "1e999" {
		t.Errorf("arr[3]: got %q = %v, want 1e999 = +Inf", n.Text(), n.Float64())
	}
}

func TestNumber_panics(t *testing.T) {
	// Int64 of a lexeme beyond int64 range.
	big := mustParse(t, `[99999999999999999999]`).(ast.Array)[0].(ast.Number)
	mtest.MustPanic(t, func() { big.Int64() })

	// Interpreting the zero Number, which holds no lexeme.
	mtest.MustPanic(t, func() { ast.Number{}.Float64() })
	mtest.MustPanic(t, func() { ast.Number{}.Int64() })
}

func TestObjectFind(t *testing.T) {
	obj := mustParse(t, `{"a":1,"b":2,"a":3}`).(ast.Object)

	m := obj.Find("a")
	if m == nil {
		t.Fatal(`Find("a"): got nil`)
	}
	// Find returns the first member with the key, even with duplicates.
	if got := m.Value.(ast.Number).Int64(); got != 1 {
		t.Errorf(`Find("a"): got %d, want 1`, got)
	}
	if got := obj.Find("b"); got == nil || got.Value.(ast.Number).Int64() != 2 {
		t.Errorf(`Find("b"): got %+v, want value 2`, got)
	}
	if got := obj.Find("missing"); got != nil {
		t.Errorf(`Find("missing"): got %+v, want nil`, got)
	}
}

func TestField(t *testing.T) {
	m := ast.Field("name", ast.String("Dennis"))
	if m.Key != "name" {
		t.Errorf("Key: got %q, want %q", m.Key, "name")
	}
	if got := m.Value.(ast.String); got != "Dennis" {
		t.Errorf("Value: got %q, want %q", string(got), "Dennis")
	}
}
