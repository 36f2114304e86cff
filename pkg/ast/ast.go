// Package ast defines the read-only abstract syntax tree that the CSG
// converter consumes. The tree is produced by an upstream parser and
// arrives as loosely typed JSON; Decode resolves all known field aliases
// at this boundary so the rest of the system works with one explicit shape.
package ast

// Position is a line/column pair in the original source.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Location is the source span covered by a node.
type Location struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Expression kinds carried in the expressionType discriminant.
const (
	ExprLiteral         = "literal"
	ExprIdentifier      = "identifier"
	ExprSpecialVariable = "special_variable"
	ExprBinary          = "binary_expression"
	ExprUnary           = "unary_expression"
	ExprConditional     = "conditional_expression"
	ExprParenthesized   = "parenthesized_expression"
	ExprVector          = "vector_expression"
	ExprAccessor        = "accessor"
	ExprFunctionCall    = "function_call"
	ExprError           = "error" // parser error-recovery fragment
)

// Node is a single AST node. Statement nodes are discriminated by Type
// (cube, sphere, union, translate, ...); expression nodes additionally
// carry Expr with one of the Expr* kinds and the matching payload fields.
//
// Nodes are immutable inputs: nothing in this module mutates them.
type Node struct {
	Type string `json:"type"`
	Expr string `json:"expressionType,omitempty"`

	Location *Location `json:"location,omitempty"`

	// Text holds the raw source slice when the parser recovered from a
	// syntax error, or for parenthesized fragments whose body was lost.
	Text string `json:"text,omitempty"`

	// Literal payload: float64, string, or bool after JSON decoding.
	Value any `json:"value,omitempty"`

	// Identifier, special variable, accessor, or function name.
	Name string `json:"name,omitempty"`

	Operator string `json:"operator,omitempty"`
	Left     *Node  `json:"left,omitempty"`
	Right    *Node  `json:"right,omitempty"`
	Operand  *Node  `json:"operand,omitempty"`

	Condition *Node `json:"condition,omitempty"`
	Then      *Node `json:"then,omitempty"`
	Else      *Node `json:"else,omitempty"`

	Elements []*Node `json:"elements,omitempty"`

	// Inner is the body of a parenthesized expression.
	Inner *Node `json:"expression,omitempty"`

	// Args holds named arguments promoted from the normalized upstream
	// shape (e.g. a cube's "size" field). Params holds the raw
	// parameter-list shape some producers expose instead.
	Args   map[string]*Node `json:"-"`
	Params map[string]*Node `json:"parameters,omitempty"`

	Children []*Node `json:"children,omitempty"`
}

// Arg resolves a named argument, probing each alias first against the
// promoted fields and then against the raw parameter list. This is the
// single place alias tolerance lives; converters never re-probe.
func (n *Node) Arg(names ...string) *Node {
	if n == nil {
		return nil
	}
	for _, name := range names {
		if v, ok := n.Args[name]; ok && v != nil {
			return v
		}
	}
	for _, name := range names {
		if v, ok := n.Params[name]; ok && v != nil {
			return v
		}
	}
	return nil
}

// Start returns the start position of the node, or the zero position when
// the parser recorded no location.
func (n *Node) Start() Position {
	if n == nil || n.Location == nil {
		return Position{}
	}
	return n.Location.Start
}
