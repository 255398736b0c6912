package kox

import "fmt"

// eval is the single evaluation entry point. It returns the raw result,
// which may be an in-flight return signal; callers that form a boundary
// (blocks propagate, calls absorb) inspect it.
func (in *Interpreter) eval(expr Expression, env *Env) (Value, error) {
	switch e := expr.(type) {
	case *IntegerLiteral:
		return NewInt(e.Value), nil
	case *FloatLiteral:
		return NewFloat(e.Value), nil
	case *StringLiteral:
		return NewString(e.Value), nil
	case *BoolLiteral:
		return NewBool(e.Value), nil
	case *NilLiteral:
		return NewNil(), nil
	case *Identifier:
		return in.evalIdentifier(e, env)
	case *LetExpr:
		return in.evalLet(e, env)
	case *AssignExpr:
		return in.evalAssign(e, env)
	case *BinaryExpr:
		return in.evalBinary(e, env)
	case *UnaryExpr:
		return in.evalUnary(e, env)
	case *CallExpr:
		return in.evalCall(e, env)
	case *ReturnExpr:
		return in.evalReturn(e, env)
	case *BlockExpr:
		return in.evalBlock(e, env)
	case *IfExpr:
		return in.evalIf(e, env)
	case *FunctionExpr:
		return in.evalFunction(e, env)
	case *ForExpr:
		return in.evalFor(e, env)
	default:
		// Unreachable for parser-produced trees; still reported as an
		// ordinary error rather than a panic.
		return NewNil(), in.errorAt(ErrTypeMismatch, expr.Pos(), fmt.Sprintf("cannot evaluate %T", expr))
	}
}

func (in *Interpreter) evalIdentifier(e *Identifier, env *Env) (Value, error) {
	val, ok := env.Get(e.Name)
	if !ok {
		return NewNil(), in.errorAt(ErrUndefinedVariable, e.Pos(), fmt.Sprintf("undefined variable %q", e.Name))
	}
	return val, nil
}

// evalLet binds in the current scope, shadowing any outer binding, and
// yields the bound value.
func (in *Interpreter) evalLet(e *LetExpr, env *Env) (Value, error) {
	val, err := in.eval(e.Value, env)
	if err != nil {
		return NewNil(), err
	}
	if val.isReturn() {
		return val, nil
	}
	env.Define(e.Name, val)
	return val, nil
}

// evalAssign mutates the nearest scope that defines the name; assignment
// never creates a binding.
func (in *Interpreter) evalAssign(e *AssignExpr, env *Env) (Value, error) {
	val, err := in.eval(e.Value, env)
	if err != nil {
		return NewNil(), err
	}
	if val.isReturn() {
		return val, nil
	}
	if !env.Assign(e.Name, val) {
		return NewNil(), in.errorAt(ErrUndefinedVariable, e.Pos(), fmt.Sprintf("undefined variable %q", e.Name))
	}
	return val, nil
}

// evalFunction builds the closure over the current scope chain and binds it
// under the function's name. The definition itself evaluates to nil.
func (in *Interpreter) evalFunction(e *FunctionExpr, env *Env) (Value, error) {
	fn := &Function{Name: e.Name, Params: e.Params, Body: e.Body, Env: env}
	env.Define(e.Name, NewFunction(fn))
	return NewNil(), nil
}
