package kox

import "fmt"

func (in *Interpreter) evalBinary(e *BinaryExpr, env *Env) (Value, error) {
	left, err := in.eval(e.Left, env)
	if err != nil {
		return NewNil(), err
	}
	if left.isReturn() {
		return left, nil
	}
	right, err := in.eval(e.Right, env)
	if err != nil {
		return NewNil(), err
	}
	if right.isReturn() {
		return right, nil
	}

	if left.Kind() != right.Kind() {
		return NewNil(), in.errorAt(ErrTypeMismatch, e.Pos(),
			fmt.Sprintf("operands must be of the same type, got %s and %s", left.KindName(), right.KindName()))
	}

	// Equality is defined for every like-typed pair.
	switch e.Operator {
	case tokenEQ:
		return NewBool(left.Equal(right)), nil
	case tokenNotEQ:
		return NewBool(!left.Equal(right)), nil
	}

	switch left.Kind() {
	case KindInt:
		return in.evalIntBinary(e, left.Int(), right.Int())
	case KindFloat:
		return in.evalFloatBinary(e, left.Float(), right.Float())
	default:
		return NewNil(), in.errorAt(ErrUndefinedOperatorForType, e.Pos(),
			fmt.Sprintf("operator %s is not defined for %s", e.Operator, left.KindName()))
	}
}

func (in *Interpreter) evalIntBinary(e *BinaryExpr, left, right int64) (Value, error) {
	switch e.Operator {
	case tokenPlus:
		return NewInt(left + right), nil
	case tokenMinus:
		return NewInt(left - right), nil
	case tokenAsterisk:
		return NewInt(left * right), nil
	case tokenSlash:
		if right == 0 {
			return NewNil(), in.errorAt(ErrDivisionByZero, e.Pos(), "division by zero")
		}
		return NewInt(left / right), nil
	case tokenGT:
		return NewBool(left > right), nil
	case tokenLT:
		return NewBool(left < right), nil
	case tokenGTE:
		return NewBool(left >= right), nil
	case tokenLTE:
		return NewBool(left <= right), nil
	default:
		return NewNil(), in.errorAt(ErrUndefinedOperatorForType, e.Pos(),
			fmt.Sprintf("operator %s is not defined for int", e.Operator))
	}
}

// evalFloatBinary applies IEEE-754 arithmetic; float division by zero yields
// an infinity or NaN rather than an error.
func (in *Interpreter) evalFloatBinary(e *BinaryExpr, left, right float64) (Value, error) {
	switch e.Operator {
	case tokenPlus:
		return NewFloat(left + right), nil
	case tokenMinus:
		return NewFloat(left - right), nil
	case tokenAsterisk:
		return NewFloat(left * right), nil
	case tokenSlash:
		return NewFloat(left / right), nil
	default:
		return NewNil(), in.errorAt(ErrUndefinedOperatorForType, e.Pos(),
			fmt.Sprintf("operator %s is not defined for float", e.Operator))
	}
}

func (in *Interpreter) evalUnary(e *UnaryExpr, env *Env) (Value, error) {
	right, err := in.eval(e.Right, env)
	if err != nil {
		return NewNil(), err
	}
	if right.isReturn() {
		return right, nil
	}

	switch e.Operator {
	case tokenMinus:
		switch right.Kind() {
		case KindInt:
			return NewInt(-right.Int()), nil
		case KindFloat:
			return NewFloat(-right.Float()), nil
		}
		return NewNil(), in.errorAt(ErrUndefinedOperatorForType, e.Pos(),
			fmt.Sprintf("operator - is not defined for %s", right.KindName()))
	case tokenBang:
		if right.Kind() == KindBool {
			return NewBool(!right.Bool()), nil
		}
		return NewNil(), in.errorAt(ErrUndefinedOperatorForType, e.Pos(),
			fmt.Sprintf("operator ! is not defined for %s", right.KindName()))
	default:
		return NewNil(), in.errorAt(ErrUndefinedOperatorForType, e.Pos(),
			fmt.Sprintf("unknown unary operator %s", e.Operator))
	}
}
