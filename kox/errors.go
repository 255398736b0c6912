package kox

import "fmt"

// ParseError kinds.
const (
	ErrUnexpectedToken         = "UnexpectedToken"
	ErrExpectedToken           = "ExpectedToken"
	ErrExpectedIdentifier      = "ExpectedIdentifier"
	ErrInvalidAssignmentTarget = "InvalidAssignmentTarget"
	ErrUnterminatedConstruct   = "UnterminatedConstruct"
)

// RuntimeError kinds.
const (
	ErrTypeMismatch             = "TypeMismatch"
	ErrUndefinedOperatorForType = "UndefinedOperatorForType"
	ErrUndefinedVariable        = "UndefinedVariable"
	ErrArityMismatch            = "ArityMismatch"
	ErrNotCallable              = "NotCallable"
	ErrDivisionByZero           = "DivisionByZero"
	ErrNonBooleanCondition      = "NonBooleanCondition"
	ErrNotIterable              = "NotIterable"
	ErrRecursionLimit           = "RecursionLimit"
)

// ParseError is the only error the parser produces. The first failure stops
// the parse; no partial program is returned alongside one.
type ParseError struct {
	Kind      string
	Message   string
	Pos       Position
	CodeFrame string
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("parse error at %d:%d: %s", e.Pos.Line, e.Pos.Column, e.Message)
	if e.CodeFrame != "" {
		msg += "\n" + e.CodeFrame
	}
	return msg
}

// RuntimeError reports an evaluation failure at a source position. It is an
// ordinary value; evaluation never panics on bad programs.
type RuntimeError struct {
	Kind      string
	Message   string
	Pos       Position
	CodeFrame string
}

func (e *RuntimeError) Error() string {
	msg := fmt.Sprintf("runtime error at %d:%d: %s", e.Pos.Line, e.Pos.Column, e.Message)
	if e.CodeFrame != "" {
		msg += "\n" + e.CodeFrame
	}
	return msg
}
