package formula

import (
	"strconv"
	"strings"

	"github.com/tabwright/tabwright/pkg/table"
)

// Node is the base interface for all formula AST nodes. Every node
// satisfies table.Noder so the table builder can anchor cells to it.
type Node interface {
	table.Noder
	// String returns the source form of the node.
	String() string
}

// Expr is a marker interface for expression nodes (everything below a
// TableFormula).
type Expr interface {
	Node
	exprNode()
}

// TableFormula is a parsed "cols ~ rows" formula: the left-hand side
// describes the column axis, the right-hand side the row axis.
type TableFormula struct {
	Cols Expr
	Rows Expr
}

func (f *TableFormula) Name() string              { return f.String() }
func (f *TableFormula) NodeData() *table.NodeData { return nil }
func (f *TableFormula) String() string            { return f.Cols.String() + " ~ " + f.Rows.String() }

// Variable is a dataset column reference, optionally annotated with a
// type ("age::Continuous"). Data is filled in by the reducer before
// label derivation; the parser leaves it nil.
type Variable struct {
	Pos   Position
	Ident string
	Type  string
	Data  *table.NodeData
}

func (v *Variable) Name() string              { return v.Ident }
func (v *Variable) NodeData() *table.NodeData { return v.Data }
func (v *Variable) String() string {
	if v.Type != "" {
		return v.Ident + "::" + v.Type
	}
	return v.Ident
}
func (*Variable) exprNode() {}

// Number is a numeric literal term.
type Number struct {
	Pos     Position
	Literal string
	Value   float64
}

func (n *Number) Name() string              { return n.Literal }
func (n *Number) NodeData() *table.NodeData { return nil }
func (n *Number) String() string            { return n.Literal }
func (*Number) exprNode()                   {}

// BinaryExpr combines two expressions with "+" (juxtaposition of
// terms) or "*" (interaction).
type BinaryExpr struct {
	Pos   Position
	Op    TokenType
	Left  Expr
	Right Expr
}

func (b *BinaryExpr) Name() string              { return b.String() }
func (b *BinaryExpr) NodeData() *table.NodeData { return nil }
func (b *BinaryExpr) String() string {
	var sb strings.Builder
	sb.WriteString(b.Left.String())
	sb.WriteString(" ")
	sb.WriteString(b.Op.String())
	sb.WriteString(" ")
	sb.WriteString(b.Right.String())
	return sb.String()
}
func (*BinaryExpr) exprNode() {}

// Terms flattens a "+" chain into its ordered terms. A single term
// yields a one-element slice; "*" interactions stay intact as one term.
func Terms(e Expr) []Expr {
	if b, ok := e.(*BinaryExpr); ok && b.Op == TOKEN_PLUS {
		return append(Terms(b.Left), Terms(b.Right)...)
	}
	return []Expr{e}
}

// Variables collects every Variable in the expression, left to right.
func Variables(e Expr) []*Variable {
	switch v := e.(type) {
	case *Variable:
		return []*Variable{v}
	case *BinaryExpr:
		return append(Variables(v.Left), Variables(v.Right)...)
	default:
		return nil
	}
}

// parseFloat is strconv.ParseFloat with the error discarded; the lexer
// only emits literals that already scanned as numbers.
func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}
