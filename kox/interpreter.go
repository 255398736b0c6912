package kox

import (
	"io"
	"os"
)

// Config controls interpreter execution bounds and output.
type Config struct {
	// RecursionLimit caps user-function call depth; exceeding it reports a
	// RecursionLimit runtime error instead of exhausting the host stack.
	RecursionLimit int
	// Stdout receives the output of the print native.
	Stdout io.Writer
}

// Interpreter evaluates Kox programs against a chain of lexical scopes. The
// zero global scope is created once, pre-populated with the native bindings.
type Interpreter struct {
	config  Config
	globals *Env
	source  string
	depth   int
}

// NewInterpreter constructs an Interpreter with sane defaults and registers
// the natives in a fresh global environment.
func NewInterpreter(cfg Config) *Interpreter {
	if cfg.RecursionLimit <= 0 {
		cfg.RecursionLimit = 512
	}
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}

	in := &Interpreter{config: cfg}
	in.globals = newGlobalEnv()
	return in
}

// Globals returns the interpreter's global scope.
func (in *Interpreter) Globals() *Env {
	return in.globals
}

// SetStdout redirects the print native. The REPL swaps in a buffer per
// evaluation so output lands in the session history.
func (in *Interpreter) SetStdout(w io.Writer) {
	in.config.Stdout = w
}

// Eval evaluates a program's expressions in order against env. A return
// signal stops evaluation and its payload becomes the result; otherwise the
// result is the value of the last expression, or nil for an empty program.
func (in *Interpreter) Eval(program *Program, env *Env) (Value, error) {
	result := NewNil()
	for _, expr := range program.Expressions {
		val, err := in.eval(expr, env)
		if err != nil {
			return NewNil(), err
		}
		if val.isReturn() {
			return val.returnValue(), nil
		}
		result = val
	}
	return result, nil
}

// EvalExpression evaluates a single expression against env. An uncaught
// return signal becomes the expression's value, as at top level.
func (in *Interpreter) EvalExpression(expr Expression, env *Env) (Value, error) {
	val, err := in.eval(expr, env)
	if err != nil {
		return NewNil(), err
	}
	return val.returnValue(), nil
}

// Run parses input and evaluates it against the global environment.
func (in *Interpreter) Run(input string) (Value, error) {
	program, err := Parse(input)
	if err != nil {
		return NewNil(), err
	}
	in.source = input
	defer func() { in.source = "" }()
	return in.Eval(program, in.globals)
}

func (in *Interpreter) errorAt(kind string, pos Position, message string) error {
	return &RuntimeError{
		Kind:      kind,
		Message:   message,
		Pos:       pos,
		CodeFrame: formatCodeFrame(in.source, pos),
	}
}
