package kox

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// astCmpOpts compares programs structurally, ignoring source positions.
var astCmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(
		Identifier{}, IntegerLiteral{}, FloatLiteral{}, StringLiteral{},
		BoolLiteral{}, NilLiteral{}, BinaryExpr{}, UnaryExpr{}, CallExpr{},
		AssignExpr{}, LetExpr{}, ReturnExpr{}, BlockExpr{}, IfExpr{},
		FunctionExpr{}, ForExpr{},
	),
}

func mustParse(t *testing.T, input string) *Program {
	t.Helper()
	program, err := Parse(input)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return program
}

func parseKind(t *testing.T, input string) string {
	t.Helper()
	_, err := Parse(input)
	if err == nil {
		t.Fatalf("expected parse error for %q", input)
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	return perr.Kind
}

func TestParsePrecedence(t *testing.T) {
	program := mustParse(t, "1 + 2 * 3 == 7")

	want := &Program{Expressions: []Expression{
		&BinaryExpr{
			Left: &BinaryExpr{
				Left: &IntegerLiteral{Value: 1},
				Operator: tokenPlus,
				Right: &BinaryExpr{
					Left:     &IntegerLiteral{Value: 2},
					Operator: tokenAsterisk,
					Right:    &IntegerLiteral{Value: 3},
				},
			},
			Operator: tokenEQ,
			Right:    &IntegerLiteral{Value: 7},
		},
	}}

	if diff := cmp.Diff(want, program, astCmpOpts...); diff != "" {
		t.Fatalf("AST mismatch (-want +got):\n%s", diff)
	}
}

func TestParseExponentialBindsTighterThanProduct(t *testing.T) {
	program := mustParse(t, "2 * 3 ^ 4")

	want := &Program{Expressions: []Expression{
		&BinaryExpr{
			Left:     &IntegerLiteral{Value: 2},
			Operator: tokenAsterisk,
			Right: &BinaryExpr{
				Left:     &IntegerLiteral{Value: 3},
				Operator: tokenCaret,
				Right:    &IntegerLiteral{Value: 4},
			},
		},
	}}

	if diff := cmp.Diff(want, program, astCmpOpts...); diff != "" {
		t.Fatalf("AST mismatch (-want +got):\n%s", diff)
	}
}

func TestParseGroupingOverridesPrecedence(t *testing.T) {
	program := mustParse(t, "(1 + 2) * 3")

	want := &Program{Expressions: []Expression{
		&BinaryExpr{
			Left: &BinaryExpr{
				Left:     &IntegerLiteral{Value: 1},
				Operator: tokenPlus,
				Right:    &IntegerLiteral{Value: 2},
			},
			Operator: tokenAsterisk,
			Right:    &IntegerLiteral{Value: 3},
		},
	}}

	if diff := cmp.Diff(want, program, astCmpOpts...); diff != "" {
		t.Fatalf("AST mismatch (-want +got):\n%s", diff)
	}
}

func TestParseAssignmentRightAssociative(t *testing.T) {
	program := mustParse(t, "a = b = 1")

	want := &Program{Expressions: []Expression{
		&AssignExpr{
			Name: "a",
			Value: &AssignExpr{
				Name:  "b",
				Value: &IntegerLiteral{Value: 1},
			},
		},
	}}

	if diff := cmp.Diff(want, program, astCmpOpts...); diff != "" {
		t.Fatalf("AST mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFunctionAndCall(t *testing.T) {
	program := mustParse(t, "fn add(a, b) { a + b }\nadd(1, 2)")

	want := &Program{Expressions: []Expression{
		&FunctionExpr{
			Name:   "add",
			Params: []string{"a", "b"},
			Body: &BlockExpr{Expressions: []Expression{
				&BinaryExpr{
					Left:     &Identifier{Name: "a"},
					Operator: tokenPlus,
					Right:    &Identifier{Name: "b"},
				},
			}},
		},
		&CallExpr{
			Callee: &Identifier{Name: "add"},
			Args:   []Expression{&IntegerLiteral{Value: 1}, &IntegerLiteral{Value: 2}},
		},
	}}

	if diff := cmp.Diff(want, program, astCmpOpts...); diff != "" {
		t.Fatalf("AST mismatch (-want +got):\n%s", diff)
	}
}

func TestParseForLoop(t *testing.T) {
	program := mustParse(t, "for i in range(0, 3) { print(i); }")

	want := &Program{Expressions: []Expression{
		&ForExpr{
			Iterator: "i",
			Iterable: &CallExpr{
				Callee: &Identifier{Name: "range"},
				Args:   []Expression{&IntegerLiteral{Value: 0}, &IntegerLiteral{Value: 3}},
			},
			Body: &BlockExpr{Expressions: []Expression{
				&CallExpr{
					Callee: &Identifier{Name: "print"},
					Args:   []Expression{&Identifier{Name: "i"}},
				},
				&NilLiteral{},
			}},
		},
	}}

	if diff := cmp.Diff(want, program, astCmpOpts...); diff != "" {
		t.Fatalf("AST mismatch (-want +got):\n%s", diff)
	}
}

func TestParseBlockValueForms(t *testing.T) {
	// A trailing separator or an empty block plants an implicit nil.
	cases := []struct {
		input string
		want  []Expression
	}{
		{"{}", []Expression{&NilLiteral{}}},
		{"{ 1; }", []Expression{&IntegerLiteral{Value: 1}, &NilLiteral{}}},
		{"{ 1 }", []Expression{&IntegerLiteral{Value: 1}}},
		{"{ 1; 2 }", []Expression{&IntegerLiteral{Value: 1}, &IntegerLiteral{Value: 2}}},
	}

	for _, c := range cases {
		program := mustParse(t, c.input)
		want := &Program{Expressions: []Expression{&BlockExpr{Expressions: c.want}}}
		if diff := cmp.Diff(want, program, astCmpOpts...); diff != "" {
			t.Fatalf("%q AST mismatch (-want +got):\n%s", c.input, diff)
		}
	}
}

func TestParseSemicolonElision(t *testing.T) {
	// Constructs ending in a braced block self-delimit.
	inputs := []string{
		"fn f() { 1 }\nfn g() { 2 }",
		"if true { 1 }\n2",
		"if true { 1 } else { 2 }\n3",
		"for i in r { 1 }\n2",
		"{ if true { 1 }\n2 }",
	}
	for _, input := range inputs {
		if _, err := Parse(input); err != nil {
			t.Fatalf("expected %q to parse, got %v", input, err)
		}
	}
}

func TestParseMissingSeparator(t *testing.T) {
	if kind := parseKind(t, "1 2"); kind != ErrExpectedToken {
		t.Fatalf("expected ExpectedToken, got %s", kind)
	}
	if kind := parseKind(t, "{ 1 2 }"); kind != ErrExpectedToken {
		t.Fatalf("expected ExpectedToken, got %s", kind)
	}
}

func TestParseInvalidAssignmentTarget(t *testing.T) {
	if kind := parseKind(t, "1 = 2"); kind != ErrInvalidAssignmentTarget {
		t.Fatalf("expected InvalidAssignmentTarget, got %s", kind)
	}
}

func TestParseExpectedIdentifier(t *testing.T) {
	for _, input := range []string{"let 1 = 2", "fn 3() {}", "for 4 in x {}", "fn f(1) {}"} {
		if kind := parseKind(t, input); kind != ErrExpectedIdentifier {
			t.Fatalf("%q: expected ExpectedIdentifier, got %s", input, kind)
		}
	}
}

func TestParseUnterminatedConstructs(t *testing.T) {
	for _, input := range []string{"{ 1; 2", "(1 + 2", "f(1, 2"} {
		if kind := parseKind(t, input); kind != ErrUnterminatedConstruct {
			t.Fatalf("%q: expected UnterminatedConstruct, got %s", input, kind)
		}
	}
}

func TestParseLexicalFailureSurfacesAsParseError(t *testing.T) {
	_, err := Parse(`let s = "never closed`)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if perr.Kind != ErrUnexpectedToken {
		t.Fatalf("expected UnexpectedToken, got %s", perr.Kind)
	}
}

func TestParseErrorCarriesPosition(t *testing.T) {
	_, err := Parse("let x =\n  = 2")
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if perr.Pos.Line != 2 {
		t.Fatalf("expected error on line 2, got line %d", perr.Pos.Line)
	}
}

func TestParseDeterministic(t *testing.T) {
	input := `let x = 1;
fn fib(n) {
  if n < 2 { return n }
  fib(n - 1) + fib(n - 2)
}
for i in range(0, 10) { print(fib(i)) }`

	first := mustParse(t, input)
	second := mustParse(t, input)

	// Positions included: the same source must yield identical trees.
	opts := cmp.AllowUnexported(
		Identifier{}, IntegerLiteral{}, FloatLiteral{}, StringLiteral{},
		BoolLiteral{}, NilLiteral{}, BinaryExpr{}, UnaryExpr{}, CallExpr{},
		AssignExpr{}, LetExpr{}, ReturnExpr{}, BlockExpr{}, IfExpr{},
		FunctionExpr{}, ForExpr{},
	)
	if diff := cmp.Diff(first, second, opts); diff != "" {
		t.Fatalf("parse is not deterministic:\n%s", diff)
	}
}
