package kox

import "fmt"

func (in *Interpreter) evalReturn(e *ReturnExpr, env *Env) (Value, error) {
	val, err := in.eval(e.Value, env)
	if err != nil {
		return NewNil(), err
	}
	if val.isReturn() {
		return val, nil
	}
	return newReturn(val), nil
}

// evalBlock runs its expressions in a child scope. A return signal stops the
// block immediately and propagates unchanged; blocks never absorb returns,
// only call boundaries do. The block's value is its last expression's value;
// the parser plants a nil literal for empty and separator-terminated blocks.
func (in *Interpreter) evalBlock(e *BlockExpr, env *Env) (Value, error) {
	scope := env.Child()
	result := NewNil()
	for _, expr := range e.Expressions {
		val, err := in.eval(expr, scope)
		if err != nil {
			return NewNil(), err
		}
		if val.isReturn() {
			return val, nil
		}
		result = val
	}
	return result, nil
}

func (in *Interpreter) evalIf(e *IfExpr, env *Env) (Value, error) {
	cond, err := in.eval(e.Condition, env)
	if err != nil {
		return NewNil(), err
	}
	if cond.isReturn() {
		return cond, nil
	}
	if cond.Kind() != KindBool {
		return NewNil(), in.errorAt(ErrNonBooleanCondition, e.Condition.Pos(),
			fmt.Sprintf("condition must be boolean, got %s", cond.KindName()))
	}

	if cond.Bool() {
		return in.eval(e.Consequence, env)
	}
	if e.Alternative != nil {
		return in.eval(e.Alternative, env)
	}
	return NewNil(), nil
}

// evalFor iterates ranges and strings. Each element gets a fresh child scope
// with the loop variable bound; per-iteration results are discarded unless a
// return signal is in flight. The loop itself yields nil.
func (in *Interpreter) evalFor(e *ForExpr, env *Env) (Value, error) {
	iterable, err := in.eval(e.Iterable, env)
	if err != nil {
		return NewNil(), err
	}
	if iterable.isReturn() {
		return iterable, nil
	}

	runBody := func(item Value) (Value, error) {
		scope := env.Child()
		scope.Define(e.Iterator, item)
		return in.eval(e.Body, scope)
	}

	switch iterable.Kind() {
	case KindRange:
		r := iterable.Range()
		for i := r.Start; i < r.End; i++ {
			val, err := runBody(NewInt(i))
			if err != nil {
				return NewNil(), err
			}
			if val.isReturn() {
				return val, nil
			}
		}
	case KindString:
		for _, r := range iterable.String() {
			val, err := runBody(NewString(string(r)))
			if err != nil {
				return NewNil(), err
			}
			if val.isReturn() {
				return val, nil
			}
		}
	default:
		return NewNil(), in.errorAt(ErrNotIterable, e.Iterable.Pos(),
			fmt.Sprintf("cannot iterate %s", iterable.KindName()))
	}

	return NewNil(), nil
}
