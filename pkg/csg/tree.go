package csg

import "github.com/adze-cad/adze/pkg/ast"

// Metadata holds aggregate statistics for a converted tree.
type Metadata struct {
	NodeCount      int `json:"nodeCount"`
	PrimitiveCount int `json:"primitiveCount"`
	OperationCount int `json:"operationCount"`
	MaxDepth       int `json:"maxDepth"`
}

// Tree is the root container for a conversion. Source keeps the original
// AST for traceability; it is never re-read after conversion.
type Tree struct {
	Roots  []*Node     `json:"roots"`
	Meta   Metadata    `json:"metadata"`
	Source []*ast.Node `json:"-"`
}

// computeMetadata walks the finished tree once and tallies statistics.
// Root nodes sit at depth 0.
func computeMetadata(roots []*Node) Metadata {
	var meta Metadata
	Walk(roots, func(n *Node, depth int, path []string) struct{} {
		meta.NodeCount++
		if n.Kind.IsPrimitive() {
			meta.PrimitiveCount++
		}
		if n.Kind.IsOperation() {
			meta.OperationCount++
		}
		if depth > meta.MaxDepth {
			meta.MaxDepth = depth
		}
		return struct{}{}
	})
	return meta
}
