package kox

// Expression is the single node type of the language: every construct,
// including bindings, conditionals, and loops, evaluates to a value.
type Expression interface {
	Pos() Position
	exprNode()
}

// Program is an ordered sequence of top-level expressions.
type Program struct {
	Expressions []Expression
}

func (p *Program) Pos() Position {
	if len(p.Expressions) == 0 {
		return Position{}
	}
	return p.Expressions[0].Pos()
}

type Identifier struct {
	Name     string
	position Position
}

func (e *Identifier) exprNode()     {}
func (e *Identifier) Pos() Position { return e.position }

type IntegerLiteral struct {
	Value    int64
	position Position
}

func (e *IntegerLiteral) exprNode()     {}
func (e *IntegerLiteral) Pos() Position { return e.position }

type FloatLiteral struct {
	Value    float64
	position Position
}

func (e *FloatLiteral) exprNode()     {}
func (e *FloatLiteral) Pos() Position { return e.position }

type StringLiteral struct {
	Value    string
	position Position
}

func (e *StringLiteral) exprNode()     {}
func (e *StringLiteral) Pos() Position { return e.position }

type BoolLiteral struct {
	Value    bool
	position Position
}

func (e *BoolLiteral) exprNode()     {}
func (e *BoolLiteral) Pos() Position { return e.position }

type NilLiteral struct {
	position Position
}

func (e *NilLiteral) exprNode()     {}
func (e *NilLiteral) Pos() Position { return e.position }

type BinaryExpr struct {
	Left     Expression
	Operator TokenType
	Right    Expression
	position Position
}

func (e *BinaryExpr) exprNode()     {}
func (e *BinaryExpr) Pos() Position { return e.position }

type UnaryExpr struct {
	Operator TokenType
	Right    Expression
	position Position
}

func (e *UnaryExpr) exprNode()     {}
func (e *UnaryExpr) Pos() Position { return e.position }

type CallExpr struct {
	Callee   Expression
	Args     []Expression
	position Position
}

func (e *CallExpr) exprNode()     {}
func (e *CallExpr) Pos() Position { return e.position }

type AssignExpr struct {
	Name     string
	Value    Expression
	position Position
}

func (e *AssignExpr) exprNode()     {}
func (e *AssignExpr) Pos() Position { return e.position }

type LetExpr struct {
	Name     string
	Value    Expression
	position Position
}

func (e *LetExpr) exprNode()     {}
func (e *LetExpr) Pos() Position { return e.position }

type ReturnExpr struct {
	Value    Expression
	position Position
}

func (e *ReturnExpr) exprNode()     {}
func (e *ReturnExpr) Pos() Position { return e.position }

type BlockExpr struct {
	Expressions []Expression
	position    Position
}

func (e *BlockExpr) exprNode()     {}
func (e *BlockExpr) Pos() Position { return e.position }

// IfExpr yields the value of whichever branch runs; Alternative may be nil,
// in which case a false condition yields nil.
type IfExpr struct {
	Condition   Expression
	Consequence Expression
	Alternative Expression
	position    Position
}

func (e *IfExpr) exprNode()     {}
func (e *IfExpr) Pos() Position { return e.position }

type FunctionExpr struct {
	Name     string
	Params   []string
	Body     Expression
	position Position
}

func (e *FunctionExpr) exprNode()     {}
func (e *FunctionExpr) Pos() Position { return e.position }

type ForExpr struct {
	Iterator string
	Iterable Expression
	Body     Expression
	position Position
}

func (e *ForExpr) exprNode()     {}
func (e *ForExpr) Pos() Position { return e.position }
