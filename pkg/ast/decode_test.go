package ast_test

import (
	"testing"

	"github.com/adze-cad/adze/pkg/ast"
	"github.com/stretchr/testify/require"
)

func TestDecodeEmpty(t *testing.T) {
	nodes, err := ast.Decode(nil)
	require.NoError(t, err)
	require.Empty(t, nodes)

	nodes, err = ast.Decode([]byte("  \n "))
	require.NoError(t, err)
	require.Empty(t, nodes)
}

func TestDecodeNormalizedCube(t *testing.T) {
	payload := []byte(`[{
		"type": "cube",
		"size": [2, 3, 4],
		"center": true,
		"location": {"start": {"line": 3, "column": 1}, "end": {"line": 3, "column": 24}}
	}]`)

	nodes, err := ast.Decode(payload)
	require.NoError(t, err)
	require.Len(t, nodes, 1)

	n := nodes[0]
	require.Equal(t, "cube", n.Type)
	require.Equal(t, ast.Position{Line: 3, Column: 1}, n.Start())

	size := n.Arg("size")
	require.NotNil(t, size)
	require.Equal(t, ast.ExprVector, size.Expr)
	require.Len(t, size.Elements, 3)
	require.Equal(t, float64(3), size.Elements[1].Value)

	center := n.Arg("center")
	require.NotNil(t, center)
	require.Equal(t, ast.ExprLiteral, center.Expr)
	require.Equal(t, true, center.Value)
}

func TestDecodeParameterListShape(t *testing.T) {
	payload := []byte(`{
		"type": "cylinder",
		"parameters": {"h": 10, "r": 2.5}
	}`)

	nodes, err := ast.Decode(payload)
	require.NoError(t, err)
	require.Len(t, nodes, 1)

	n := nodes[0]
	h := n.Arg("height", "h")
	require.NotNil(t, h)
	require.Equal(t, float64(10), h.Value)

	r := n.Arg("radius", "r", "r1")
	require.NotNil(t, r)
	require.Equal(t, 2.5, r.Value)
}

// A direct field wins over the parameter list when both carry the value.
func TestArgPrecedence(t *testing.T) {
	payload := []byte(`{
		"type": "sphere",
		"r": 7,
		"parameters": {"r": 1}
	}`)

	nodes, err := ast.Decode(payload)
	require.NoError(t, err)

	r := nodes[0].Arg("radius", "r")
	require.NotNil(t, r)
	require.Equal(t, float64(7), r.Value)
}

func TestDecodeExpressionPayload(t *testing.T) {
	payload := []byte(`{
		"type": "sphere",
		"radius": {
			"type": "expression",
			"expressionType": "binary_expression",
			"operator": "+",
			"left": {"type": "expression", "expressionType": "literal", "value": 1},
			"right": {"type": "expression", "expressionType": "literal", "value": 2}
		}
	}`)

	nodes, err := ast.Decode(payload)
	require.NoError(t, err)

	r := nodes[0].Arg("radius")
	require.NotNil(t, r)
	require.Equal(t, ast.ExprBinary, r.Expr)
	require.Equal(t, "+", r.Operator)
	require.Equal(t, float64(1), r.Left.Value)
	require.Equal(t, float64(2), r.Right.Value)
}

func TestDecodeChildren(t *testing.T) {
	payload := []byte(`{
		"type": "union",
		"children": [
			{"type": "cube", "size": [1, 1, 1]},
			{"type": "sphere", "r": 1}
		]
	}`)

	nodes, err := ast.Decode(payload)
	require.NoError(t, err)
	require.Len(t, nodes[0].Children, 2)
	require.Equal(t, "cube", nodes[0].Children[0].Type)
	require.Equal(t, "sphere", nodes[0].Children[1].Type)
}

func TestDecodeRawTextAlias(t *testing.T) {
	nodes, err := ast.Decode([]byte(`{"type": "expression", "expressionType": "error", "raw": "cube(5)"}`))
	require.NoError(t, err)
	require.Equal(t, "cube(5)", nodes[0].Text)
}

func TestArgMissing(t *testing.T) {
	nodes, err := ast.Decode([]byte(`{"type": "cube"}`))
	require.NoError(t, err)
	require.Nil(t, nodes[0].Arg("size"))
	require.Nil(t, (*ast.Node)(nil).Arg("size"))
}
