package kox

func NewNil() Value            { return Value{kind: KindNil} }
func NewBool(b bool) Value     { return Value{kind: KindBool, data: b} }
func NewInt(i int64) Value     { return Value{kind: KindInt, data: i} }
func NewFloat(f float64) Value { return Value{kind: KindFloat, data: f} }
func NewString(s string) Value { return Value{kind: KindString, data: s} }
func NewRange(r Range) Value   { return Value{kind: KindRange, data: r} }

func NewBuiltin(name string, arity int, fn BuiltinFunc) Value {
	return Value{kind: KindBuiltin, data: &Builtin{Name: name, Arity: arity, Fn: fn}}
}

func NewFunction(fn *Function) Value {
	return Value{kind: KindFunction, data: fn}
}

func newReturn(v Value) Value {
	return Value{kind: kindReturn, data: v}
}
