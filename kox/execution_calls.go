package kox

import "fmt"

func (in *Interpreter) evalCall(e *CallExpr, env *Env) (Value, error) {
	callee, err := in.eval(e.Callee, env)
	if err != nil {
		return NewNil(), err
	}
	if callee.isReturn() {
		return callee, nil
	}

	args := make([]Value, 0, len(e.Args))
	for _, argExpr := range e.Args {
		arg, err := in.eval(argExpr, env)
		if err != nil {
			return NewNil(), err
		}
		if arg.isReturn() {
			return arg, nil
		}
		args = append(args, arg)
	}

	switch callee.Kind() {
	case KindFunction:
		return in.callFunction(callee.Function(), args, e.Pos())
	case KindBuiltin:
		return in.callBuiltin(callee.Builtin(), args, e.Pos())
	default:
		return NewNil(), in.errorAt(ErrNotCallable, e.Pos(),
			fmt.Sprintf("can only call functions, not %s", callee.KindName()))
	}
}

// callFunction binds arguments by declared parameter name, in order, in a
// fresh scope rooted at the function's captured environment (lexical, not
// dynamic, scoping). The call boundary is the only place a return signal is
// absorbed.
func (in *Interpreter) callFunction(fn *Function, args []Value, pos Position) (Value, error) {
	if len(args) != len(fn.Params) {
		return NewNil(), in.errorAt(ErrArityMismatch, pos,
			fmt.Sprintf("%s expects %d arguments, got %d", fn.Name, len(fn.Params), len(args)))
	}

	if in.depth >= in.config.RecursionLimit {
		return NewNil(), in.errorAt(ErrRecursionLimit, pos,
			fmt.Sprintf("recursion limit of %d exceeded", in.config.RecursionLimit))
	}
	in.depth++
	defer func() { in.depth-- }()

	frame := fn.Env.Child()
	for i, param := range fn.Params {
		frame.Define(param, args[i])
	}

	result, err := in.eval(fn.Body, frame)
	if err != nil {
		return NewNil(), err
	}
	return result.returnValue(), nil
}

func (in *Interpreter) callBuiltin(b *Builtin, args []Value, pos Position) (Value, error) {
	if len(args) != b.Arity {
		return NewNil(), in.errorAt(ErrArityMismatch, pos,
			fmt.Sprintf("%s expects %d arguments, got %d", b.Name, b.Arity, len(args)))
	}
	result, err := b.Fn(in, args)
	if err != nil {
		if _, ok := err.(*RuntimeError); ok {
			return NewNil(), err
		}
		return NewNil(), in.errorAt(ErrTypeMismatch, pos, err.Error())
	}
	return result, nil
}
