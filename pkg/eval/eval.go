// Package eval reduces AST expression subtrees to constants. It is a
// best-effort partial evaluator: every entry point reports "cannot
// determine" through its ok result and never panics, so one unresolvable
// parameter degrades a single node instead of the whole conversion.
package eval

import (
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/adze-cad/adze/pkg/ast"
)

// Evaluator resolves expression nodes to constant values.
//
// There is no variable-binding environment: identifiers, special variables
// ($t, $fn, ...), accessors, and function calls all resolve to 0. Callers
// that need real bindings must substitute them upstream.
type Evaluator struct {
	// Log receives debug diagnostics for unhandled expression kinds.
	// nil discards.
	Log *slog.Logger

	// Scraper provides last-resort recovery from raw source text.
	// nil disables all text fallbacks.
	Scraper *Scraper
}

// New returns an Evaluator with text fallbacks enabled and logging off.
func New() *Evaluator {
	return &Evaluator{Scraper: NewScraper()}
}

func (e *Evaluator) logger() *slog.Logger {
	if e.Log != nil {
		return e.Log
	}
	return slog.New(slog.DiscardHandler)
}

// Value reduces an expression to a scalar. The cascade is tried in order
// of the node's expression kind; ok is false when no strategy applies.
func (e *Evaluator) Value(n *ast.Node) (float64, bool) {
	if n == nil {
		return 0, false
	}

	switch n.Expr {
	case ast.ExprLiteral:
		switch v := n.Value.(type) {
		case float64:
			return v, true
		case string:
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return 0, false
			}
			return f, true
		}
		return 0, false

	case ast.ExprIdentifier, ast.ExprSpecialVariable:
		// No binding environment; unresolved names read as 0.
		return 0, true

	case ast.ExprBinary:
		return e.binary(n)

	case ast.ExprUnary:
		return e.unary(n)

	case ast.ExprAccessor, ast.ExprFunctionCall:
		// Same placeholder policy as identifiers.
		return 0, true

	case ast.ExprConditional:
		// Only the then branch is ever evaluated.
		return e.Value(n.Then)

	case ast.ExprError:
		if e.Scraper == nil {
			return 0, false
		}
		return e.Scraper.Number(n.Text)

	case ast.ExprParenthesized:
		if n.Inner != nil {
			return e.Value(n.Inner)
		}
		if e.Scraper == nil {
			return 0, false
		}
		return e.Scraper.Unwrapped(n.Text)
	}

	e.logger().Debug("unhandled expression kind", "kind", n.Expr, "type", n.Type)
	return 0, false
}

// binary evaluates both operands and applies the operator. Division or
// modulo by zero yields not-determined rather than Inf/NaN, as does any
// operator result outside the reals.
func (e *Evaluator) binary(n *ast.Node) (float64, bool) {
	left, ok := e.Value(n.Left)
	if !ok {
		return 0, false
	}
	right, ok := e.Value(n.Right)
	if !ok {
		return 0, false
	}

	var out float64
	switch n.Operator {
	case "+":
		out = left + right
	case "-":
		out = left - right
	case "*":
		out = left * right
	case "/":
		if right == 0 {
			return 0, false
		}
		out = left / right
	case "%":
		if right == 0 {
			return 0, false
		}
		out = math.Mod(left, right)
	case "^", "**":
		out = math.Pow(left, right)
	default:
		e.logger().Debug("unhandled binary operator", "operator", n.Operator)
		return 0, false
	}

	if math.IsNaN(out) || math.IsInf(out, 0) {
		return 0, false
	}
	return out, true
}

func (e *Evaluator) unary(n *ast.Node) (float64, bool) {
	v, ok := e.Value(n.Operand)
	if !ok {
		return 0, false
	}
	switch n.Operator {
	case "-":
		return -v, true
	case "+":
		return v, true
	case "!":
		if v != 0 {
			return 0, true
		}
		return 1, true
	}
	e.logger().Debug("unhandled unary operator", "operator", n.Operator)
	return 0, false
}

// Vector reduces an expression to a 3-vector. Vector expressions extract
// element-wise with unresolvable or missing elements reading as 0; a node
// that reduces to a scalar broadcasts to a uniform vector.
func (e *Evaluator) Vector(n *ast.Node) ([3]float64, bool) {
	if n == nil {
		return [3]float64{}, false
	}

	switch n.Expr {
	case ast.ExprVector:
		var out [3]float64
		for i := 0; i < 3 && i < len(n.Elements); i++ {
			if v, ok := e.Value(n.Elements[i]); ok {
				out[i] = v
			}
		}
		return out, true

	case ast.ExprParenthesized:
		if n.Inner != nil {
			return e.Vector(n.Inner)
		}
		if e.Scraper == nil {
			return [3]float64{}, false
		}
		return e.Scraper.Triple(n.Text)

	case ast.ExprError:
		if e.Scraper == nil {
			return [3]float64{}, false
		}
		if v, ok := e.Scraper.Triple(n.Text); ok {
			return v, true
		}
		if v, ok := e.Scraper.Number(n.Text); ok {
			return [3]float64{v, v, v}, true
		}
		return [3]float64{}, false
	}

	if v, ok := e.Value(n); ok {
		return [3]float64{v, v, v}, true
	}
	return [3]float64{}, false
}

// Bool reduces an expression to a boolean. Literal booleans pass through;
// anything numeric is tested against zero.
func (e *Evaluator) Bool(n *ast.Node) (bool, bool) {
	if n == nil {
		return false, false
	}
	if n.Expr == ast.ExprLiteral {
		switch v := n.Value.(type) {
		case bool:
			return v, true
		case float64:
			return v != 0, true
		}
	}
	if v, ok := e.Value(n); ok {
		return v != 0, true
	}
	return false, false
}
