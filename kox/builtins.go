package kox

import "fmt"

// newGlobalEnv returns a fresh global scope pre-populated with the native
// bindings.
func newGlobalEnv() *Env {
	env := newEnv(nil)
	env.Define("print", NewBuiltin("print", 1, builtinPrint))
	env.Define("range", NewBuiltin("range", 2, builtinRange))
	return env
}

// builtinPrint writes the argument's display form and a newline, then yields
// nil.
func builtinPrint(in *Interpreter, args []Value) (Value, error) {
	fmt.Fprintln(in.config.Stdout, args[0].String())
	return NewNil(), nil
}

// builtinRange yields the half-open integer interval [start, end), the
// iterable consumed by for loops.
func builtinRange(in *Interpreter, args []Value) (Value, error) {
	if args[0].Kind() != KindInt || args[1].Kind() != KindInt {
		return NewNil(), fmt.Errorf("range expects int bounds, got %s and %s",
			args[0].KindName(), args[1].KindName())
	}
	return NewRange(Range{Start: args[0].Int(), End: args[1].Int()}), nil
}
