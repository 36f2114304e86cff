package eval_test

import (
	"testing"

	"github.com/adze-cad/adze/pkg/ast"
	"github.com/adze-cad/adze/pkg/eval"
	"github.com/stretchr/testify/require"
)

func lit(v any) *ast.Node {
	return &ast.Node{Type: "expression", Expr: ast.ExprLiteral, Value: v}
}

func bin(op string, left, right *ast.Node) *ast.Node {
	return &ast.Node{Type: "expression", Expr: ast.ExprBinary, Operator: op, Left: left, Right: right}
}

func TestValueCascade(t *testing.T) {
	e := eval.New()

	tests := []struct {
		name string
		node *ast.Node
		want float64
		ok   bool
	}{
		{"nil", nil, 0, false},
		{"float literal", lit(2.5), 2.5, true},
		{"string literal", lit(" 42 "), 42, true},
		{"unparseable string literal", lit("twelve"), 0, false},
		{"bool literal is not a scalar", lit(true), 0, false},
		{"identifier reads as zero", &ast.Node{Expr: ast.ExprIdentifier, Name: "width"}, 0, true},
		{"special variable reads as zero", &ast.Node{Expr: ast.ExprSpecialVariable, Name: "$t"}, 0, true},
		{"accessor reads as zero", &ast.Node{Expr: ast.ExprAccessor, Name: "v.x"}, 0, true},
		{"function call reads as zero", &ast.Node{Expr: ast.ExprFunctionCall, Name: "sin"}, 0, true},
		{"addition", bin("+", lit(1.0), lit(2.0)), 3, true},
		{"subtraction", bin("-", lit(5.0), lit(2.0)), 3, true},
		{"multiplication", bin("*", lit(4.0), lit(2.5)), 10, true},
		{"division", bin("/", lit(9.0), lit(3.0)), 3, true},
		{"division by zero", bin("/", lit(1.0), lit(0.0)), 0, false},
		{"modulo", bin("%", lit(7.0), lit(4.0)), 3, true},
		{"modulo by zero", bin("%", lit(7.0), lit(0.0)), 0, false},
		{"power caret", bin("^", lit(2.0), lit(10.0)), 1024, true},
		{"power double star", bin("**", lit(3.0), lit(2.0)), 9, true},
		{"power overflow", bin("^", lit(1e308), lit(2.0)), 0, false},
		{"unknown operator", bin("<<", lit(1.0), lit(1.0)), 0, false},
		{"unresolved operand poisons", bin("+", lit("x"), lit(1.0)), 0, false},
		{"unary negate", &ast.Node{Expr: ast.ExprUnary, Operator: "-", Operand: lit(4.0)}, -4, true},
		{"unary plus", &ast.Node{Expr: ast.ExprUnary, Operator: "+", Operand: lit(4.0)}, 4, true},
		{"unary not truthy", &ast.Node{Expr: ast.ExprUnary, Operator: "!", Operand: lit(3.0)}, 0, true},
		{"unary not zero", &ast.Node{Expr: ast.ExprUnary, Operator: "!", Operand: lit(0.0)}, 1, true},
		{"conditional takes then branch", &ast.Node{
			Expr:      ast.ExprConditional,
			Condition: lit(0.0),
			Then:      lit(7.0),
			Else:      lit(9.0),
		}, 7, true},
		{"error node scrapes text", &ast.Node{Expr: ast.ExprError, Text: "cube(12.5);"}, 12.5, true},
		{"error node without number", &ast.Node{Expr: ast.ExprError, Text: "oops"}, 0, false},
		{"parenthesized inner", &ast.Node{Expr: ast.ExprParenthesized, Inner: lit(6.0)}, 6, true},
		{"parenthesized text only", &ast.Node{Expr: ast.ExprParenthesized, Text: "( 3.5 )"}, 3.5, true},
		{"unknown kind", &ast.Node{Expr: "lambda"}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := e.Value(tt.node)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestValueNestedExpression(t *testing.T) {
	e := eval.New()

	// (1 + 2) * -3
	node := bin("*",
		&ast.Node{Expr: ast.ExprParenthesized, Inner: bin("+", lit(1.0), lit(2.0))},
		&ast.Node{Expr: ast.ExprUnary, Operator: "-", Operand: lit(3.0)},
	)
	got, ok := e.Value(node)
	require.True(t, ok)
	require.Equal(t, float64(-9), got)
}

func TestValueScraperDisabled(t *testing.T) {
	e := &eval.Evaluator{}

	_, ok := e.Value(&ast.Node{Expr: ast.ExprError, Text: "cube(5)"})
	require.False(t, ok)

	_, ok = e.Value(&ast.Node{Expr: ast.ExprParenthesized, Text: "(5)"})
	require.False(t, ok)

	_, ok = e.Vector(&ast.Node{Expr: ast.ExprError, Text: "[1,2,3]"})
	require.False(t, ok)
}

func TestVector(t *testing.T) {
	e := eval.New()

	vec := func(elems ...*ast.Node) *ast.Node {
		return &ast.Node{Type: "expression", Expr: ast.ExprVector, Elements: elems}
	}

	tests := []struct {
		name string
		node *ast.Node
		want [3]float64
		ok   bool
	}{
		{"nil", nil, [3]float64{}, false},
		{"full vector", vec(lit(1.0), lit(2.0), lit(3.0)), [3]float64{1, 2, 3}, true},
		{"short vector pads with zero", vec(lit(5.0)), [3]float64{5, 0, 0}, true},
		{"extra elements ignored", vec(lit(1.0), lit(2.0), lit(3.0), lit(4.0)), [3]float64{1, 2, 3}, true},
		{"unresolvable element reads as zero", vec(lit(1.0), lit("x"), lit(3.0)), [3]float64{1, 0, 3}, true},
		{"scalar broadcasts", lit(4.0), [3]float64{4, 4, 4}, true},
		{"identifier broadcasts zero", &ast.Node{Expr: ast.ExprIdentifier, Name: "v"}, [3]float64{}, true},
		{"parenthesized inner vector", &ast.Node{
			Expr:  ast.ExprParenthesized,
			Inner: vec(lit(1.0), lit(2.0), lit(3.0)),
		}, [3]float64{1, 2, 3}, true},
		{"parenthesized text triple", &ast.Node{
			Expr: ast.ExprParenthesized,
			Text: "([1, -2, 3.5])",
		}, [3]float64{1, -2, 3.5}, true},
		{"error node triple", &ast.Node{Expr: ast.ExprError, Text: "translate([10, 20, 30])"}, [3]float64{10, 20, 30}, true},
		{"error node scalar broadcasts", &ast.Node{Expr: ast.ExprError, Text: "scale(2)"}, [3]float64{2, 2, 2}, true},
		{"error node without values", &ast.Node{Expr: ast.ExprError, Text: "???"}, [3]float64{}, false},
		{"unresolvable", lit("x"), [3]float64{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := e.Vector(tt.node)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestBool(t *testing.T) {
	e := eval.New()

	tests := []struct {
		name string
		node *ast.Node
		want bool
		ok   bool
	}{
		{"nil", nil, false, false},
		{"true literal", lit(true), true, true},
		{"false literal", lit(false), false, true},
		{"nonzero number", lit(2.0), true, true},
		{"zero number", lit(0.0), false, true},
		{"numeric expression", bin("-", lit(3.0), lit(3.0)), false, true},
		{"unresolvable", lit("maybe"), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := e.Bool(tt.node)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
		})
	}
}
