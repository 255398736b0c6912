package kox

type ValueKind int

const (
	KindNil ValueKind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindRange
	KindBuiltin
	KindFunction

	// kindReturn is the in-flight early-return signal. It only ever exists
	// between a return expression and the nearest call boundary; it is never
	// bound, passed as an argument, or printed.
	kindReturn
)

// Value is the runtime representation of every Kox value.
type Value struct {
	kind ValueKind
	data any
}

// Function is a user-defined function together with the environment chain
// that was active at its definition. The environment is held by reference:
// closures from the same frame observe each other's mutations.
type Function struct {
	Name   string
	Params []string
	Body   Expression
	Env    *Env
}

// Builtin is a host-implemented native function with a fixed arity.
type Builtin struct {
	Name  string
	Arity int
	Fn    BuiltinFunc
}

type BuiltinFunc func(in *Interpreter, args []Value) (Value, error)

// Range is a half-open integer interval [Start, End), the iterable produced
// by the range native.
type Range struct {
	Start int64
	End   int64
}
