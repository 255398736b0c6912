package kox

import (
	"errors"
	"strings"
	"testing"
)

func run(t *testing.T, input string) Value {
	t.Helper()
	in := NewInterpreter(Config{})
	result, err := in.Run(input)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	return result
}

func runKind(t *testing.T, input string) *RuntimeError {
	t.Helper()
	in := NewInterpreter(Config{})
	_, err := in.Run(input)
	if err == nil {
		t.Fatalf("expected runtime error for %q", input)
	}
	var rerr *RuntimeError
	if !errors.As(err, &rerr) {
		t.Fatalf("expected *RuntimeError, got %T: %v", err, err)
	}
	return rerr
}

func expectInt(t *testing.T, input string, want int64) {
	t.Helper()
	result := run(t, input)
	if result.Kind() != KindInt || result.Int() != want {
		t.Fatalf("%q: expected %d, got %s", input, want, result.String())
	}
}

func TestIntegerArithmetic(t *testing.T) {
	expectInt(t, "7 / 2", 3) // truncating
	expectInt(t, "1 + 2 * 3", 7)
	expectInt(t, "10 - 4", 6)
	expectInt(t, "-3 + 5", 2)
}

func TestFloatArithmetic(t *testing.T) {
	result := run(t, "7.0 / 2.0")
	if result.Kind() != KindFloat || result.Float() != 3.5 {
		t.Fatalf("expected 3.5, got %s", result.String())
	}
}

func TestMixedOperandsFail(t *testing.T) {
	for _, input := range []string{"1 + 1.0", `1 + "one"`, "true + 1", "1.0 == 1"} {
		if rerr := runKind(t, input); rerr.Kind != ErrTypeMismatch {
			t.Fatalf("%q: expected TypeMismatch, got %s", input, rerr.Kind)
		}
	}
}

func TestUndefinedOperators(t *testing.T) {
	for _, input := range []string{"2 ^ 3", "1.0 < 2.0", `"a" + "b"`, "true < false"} {
		if rerr := runKind(t, input); rerr.Kind != ErrUndefinedOperatorForType {
			t.Fatalf("%q: expected UndefinedOperatorForType, got %s", input, rerr.Kind)
		}
	}
}

func TestEqualityOnLikeTypedPairs(t *testing.T) {
	cases := map[string]bool{
		`"a" == "a"`:    true,
		`"a" != "b"`:    true,
		"true == true":  true,
		"nil == nil":    true,
		"1 == 2":        false,
		"1.5 == 1.5":    true,
		"false != true": true,
	}
	for input, want := range cases {
		result := run(t, input)
		if result.Kind() != KindBool || result.Bool() != want {
			t.Fatalf("%q: expected %v, got %s", input, want, result.String())
		}
	}
}

func TestIntDivisionByZero(t *testing.T) {
	if rerr := runKind(t, "1 / 0"); rerr.Kind != ErrDivisionByZero {
		t.Fatalf("expected DivisionByZero, got %s", rerr.Kind)
	}
}

func TestFloatDivisionByZeroIsIEEE(t *testing.T) {
	result := run(t, "1.0 / 0.0")
	if result.Kind() != KindFloat {
		t.Fatalf("expected float, got %s", result.KindName())
	}
}

func TestLetAssignLookup(t *testing.T) {
	expectInt(t, "let x = 1; x = 2; x", 2)
}

func TestAssignmentYieldsValueAndChains(t *testing.T) {
	expectInt(t, "let a = 0; let b = 0; a = b = 5; a + b", 10)
}

func TestAssignUndefinedFails(t *testing.T) {
	if rerr := runKind(t, "x = 1"); rerr.Kind != ErrUndefinedVariable {
		t.Fatalf("expected UndefinedVariable, got %s", rerr.Kind)
	}
}

func TestBlockShadowing(t *testing.T) {
	expectInt(t, "let x = 1; { let x = 2; x }", 2)
	expectInt(t, "let x = 1; { let x = 2; x }; x", 1)
}

func TestBlockAssignMutatesOuter(t *testing.T) {
	expectInt(t, "let x = 1; { x = 2; x }; x", 2)
}

func TestBlockValueForms(t *testing.T) {
	if result := run(t, "{}"); !result.IsNil() {
		t.Fatalf("empty block should be nil, got %s", result.String())
	}
	if result := run(t, "{ 1; }"); !result.IsNil() {
		t.Fatalf("trailing separator block should be nil, got %s", result.String())
	}
	expectInt(t, "{ 1; 2 }", 2)
}

func TestLetEvaluatesToBoundValue(t *testing.T) {
	expectInt(t, "let x = 41 + 1", 42)
}

func TestIfExpression(t *testing.T) {
	expectInt(t, "if 1 < 2 { 10 } else { 20 }", 10)
	expectInt(t, "if 2 < 1 { 10 } else { 20 }", 20)
	if result := run(t, "if false { 10 }"); !result.IsNil() {
		t.Fatalf("if without alternative should be nil on false")
	}
	expectInt(t, "let x = if true { 1 } else { 2 }; x", 1)
}

func TestNonBooleanCondition(t *testing.T) {
	if rerr := runKind(t, "if 1 { 2 }"); rerr.Kind != ErrNonBooleanCondition {
		t.Fatalf("expected NonBooleanCondition, got %s", rerr.Kind)
	}
}

func TestFunctionDefinitionEvaluatesToNil(t *testing.T) {
	if result := run(t, "fn f() { 1 }"); !result.IsNil() {
		t.Fatalf("definition should yield nil, got %s", result.String())
	}
}

func TestFunctionCall(t *testing.T) {
	expectInt(t, "fn add(a, b) { a + b }\nadd(2, 3)", 5)
}

func TestParametersBindByDeclaredNameInOrder(t *testing.T) {
	expectInt(t, "fn sub(a, b) { a - b }\nsub(10, 4)", 6)
}

func TestArityMismatch(t *testing.T) {
	for _, input := range []string{
		"fn f(a) { a }\nf()",
		"fn f(a) { a }\nf(1, 2)",
		"print()",
	} {
		if rerr := runKind(t, input); rerr.Kind != ErrArityMismatch {
			t.Fatalf("%q: expected ArityMismatch, got %s", input, rerr.Kind)
		}
	}
}

func TestArityMismatchPerformsNoBinding(t *testing.T) {
	// A failed call must not leak parameter bindings into any scope.
	in := NewInterpreter(Config{})
	if _, err := in.Run("fn f(a) { a }\nf(1, 2)"); err == nil {
		t.Fatalf("expected arity error")
	}
	if _, ok := in.Globals().Get("a"); ok {
		t.Fatalf("parameter must not be bound after failed call")
	}
}

func TestNotCallable(t *testing.T) {
	if rerr := runKind(t, "let x = 1; x(2)"); rerr.Kind != ErrNotCallable {
		t.Fatalf("expected NotCallable, got %s", rerr.Kind)
	}
}

func TestRecursion(t *testing.T) {
	expectInt(t, `fn fib(n) {
  if n < 2 { return n }
  fib(n - 1) + fib(n - 2)
}
fib(10)`, 55)
}

func TestClosureCapturesDefiningEnvironment(t *testing.T) {
	expectInt(t, `let x = 1;
fn get() { x }
x = 5;
get()`, 5)
}

func TestClosuresFromSeparateCallsAreIndependent(t *testing.T) {
	expectInt(t, `fn makeCounter() {
  let count = 0;
  fn bump() { count = count + 1; count }
  bump
}
let a = makeCounter();
let b = makeCounter();
a(); a(); b()`, 1)
}

func TestClosuresFromSameCallShareFrame(t *testing.T) {
	expectInt(t, `fn makeBoth() {
  let count = 10;
  fn bump() { count = count + 1 }
  fn read() { count }
  bump(); bump();
  read()
}
makeBoth()`, 12)
}

func TestLexicalNotDynamicScoping(t *testing.T) {
	// The call frame roots at the captured env, not the call site.
	if rerr := runKind(t, `fn f() { y }
{ let y = 1; f() }`); rerr.Kind != ErrUndefinedVariable {
		t.Fatalf("expected UndefinedVariable under lexical scoping, got %s", rerr.Kind)
	}
}

func TestReturnUnwindsBlocksButStopsAtCall(t *testing.T) {
	expectInt(t, `fn f() {
  {
    { return 7 };
    1
  };
  2
}
f()`, 7)
}

func TestReturnStopsLoop(t *testing.T) {
	expectInt(t, `fn firstOver(limit) {
  for i in range(0, 100) {
    if i > limit { return i }
  }
  0 - 1
}
firstOver(5)`, 6)
}

func TestTopLevelReturnBecomesProgramResult(t *testing.T) {
	expectInt(t, "return 3; 4", 3)
	expectInt(t, "{ return 3 }; 4", 3)
}

func TestUndefinedVariableCarriesPosition(t *testing.T) {
	rerr := runKind(t, "let x = 1;\nghost")
	if rerr.Kind != ErrUndefinedVariable {
		t.Fatalf("expected UndefinedVariable, got %s", rerr.Kind)
	}
	if rerr.Pos.Line != 2 {
		t.Fatalf("expected error on line 2, got %d", rerr.Pos.Line)
	}
	if !strings.Contains(rerr.Message, "ghost") {
		t.Fatalf("message should name the identifier: %s", rerr.Message)
	}
}

func TestForLoop(t *testing.T) {
	expectInt(t, `let sum = 0;
for i in range(0, 5) {
  sum = sum + i
}
sum`, 10)
}

func TestForLoopYieldsNil(t *testing.T) {
	if result := run(t, "for i in range(0, 3) { i }"); !result.IsNil() {
		t.Fatalf("loop should yield nil, got %s", result.String())
	}
}

func TestForLoopVariableIsPerIteration(t *testing.T) {
	// The loop variable lives in a per-iteration scope and does not leak.
	if rerr := runKind(t, "for i in range(0, 3) { i }\ni"); rerr.Kind != ErrUndefinedVariable {
		t.Fatalf("expected UndefinedVariable after loop, got %s", rerr.Kind)
	}
}

func TestForOverString(t *testing.T) {
	expectInt(t, `let n = 0;
for ch in "abc" { n = n + 1 }
n`, 3)
}

func TestNotIterable(t *testing.T) {
	if rerr := runKind(t, "for i in 5 { i }"); rerr.Kind != ErrNotIterable {
		t.Fatalf("expected NotIterable, got %s", rerr.Kind)
	}
}

func TestUnaryOperators(t *testing.T) {
	expectInt(t, "-(1 + 2)", -3)
	result := run(t, "!false")
	if result.Kind() != KindBool || !result.Bool() {
		t.Fatalf("expected true, got %s", result.String())
	}
	if rerr := runKind(t, "-true"); rerr.Kind != ErrUndefinedOperatorForType {
		t.Fatalf("expected UndefinedOperatorForType, got %s", rerr.Kind)
	}
}

func TestDeterministicEvaluation(t *testing.T) {
	input := `fn fib(n) {
  if n < 2 { return n }
  fib(n - 1) + fib(n - 2)
}
fib(12)`
	first := run(t, input)
	second := run(t, input)
	if !first.Equal(second) {
		t.Fatalf("evaluation not deterministic: %s vs %s", first.String(), second.String())
	}
}
