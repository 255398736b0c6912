package kox

import "fmt"

// String returns the display form used by print and the REPL.
func (v Value) String() string {
	switch v.kind {
	case KindNil:
		return "nil"
	case KindBool:
		if v.Bool() {
			return "true"
		}
		return "false"
	case KindInt:
		return fmt.Sprintf("%d", v.data.(int64))
	case KindFloat:
		return fmt.Sprintf("%g", v.data.(float64))
	case KindString:
		return v.data.(string)
	case KindRange:
		r := v.data.(Range)
		return fmt.Sprintf("range(%d, %d)", r.Start, r.End)
	case KindBuiltin:
		return fmt.Sprintf("<native fn %s>", v.data.(*Builtin).Name)
	case KindFunction:
		return fmt.Sprintf("<fn %s>", v.data.(*Function).Name)
	case kindReturn:
		return v.returnValue().String()
	default:
		return "<unknown>"
	}
}

// KindName returns the operand type name used in error messages.
func (v Value) KindName() string {
	switch v.kind {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindRange:
		return "range"
	case KindBuiltin:
		return "native function"
	case KindFunction:
		return "function"
	default:
		return "unknown"
	}
}

// Equal reports value equality for like-typed operands. Functions compare by
// identity.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNil:
		return true
	case KindBool:
		return v.Bool() == other.Bool()
	case KindInt:
		return v.Int() == other.Int()
	case KindFloat:
		return v.Float() == other.Float()
	case KindString:
		return v.data.(string) == other.data.(string)
	case KindRange:
		return v.Range() == other.Range()
	case KindBuiltin:
		return v.data.(*Builtin) == other.data.(*Builtin)
	case KindFunction:
		return v.data.(*Function) == other.data.(*Function)
	default:
		return false
	}
}
