package csg

import "fmt"

// Validate re-checks the invariants converters are trusted to enforce at
// construction time. It is consumer-invoked, read-only, and not
// fail-fast: all violations in the tree are collected and returned. An
// empty slice means the tree is valid.
func Validate(tree *Tree) []Error {
	if tree == nil {
		return nil
	}
	var errs []Error
	Walk(tree.Roots, func(n *Node, depth int, path []string) struct{} {
		errs = append(errs, validateNode(n)...)
		return struct{}{}
	})
	return errs
}

func validateNode(n *Node) []Error {
	var errs []Error

	fail := func(code, msg string) {
		errs = append(errs, Error{
			Message:  msg,
			Code:     code,
			Severity: SeverityError,
			Source:   n.Source,
			NodeID:   n.ID,
		})
	}

	if n.ID == "" {
		fail(CodeMissingNodeID, "node has no id")
	}
	if n.Kind < KindCube || n.Kind > KindGroup {
		fail(CodeMissingNodeType, fmt.Sprintf("node has invalid kind %d", int(n.Kind)))
	}

	switch d := n.Data.(type) {
	case CubeData:
		if d.Size.X <= 0 || d.Size.Y <= 0 || d.Size.Z <= 0 {
			fail(CodeInvalidCubeSize, fmt.Sprintf("cube size must be strictly positive, got [%g %g %g]", d.Size.X, d.Size.Y, d.Size.Z))
		}
	case SphereData:
		if d.Radius <= 0 {
			fail(CodeInvalidSphereRadius, fmt.Sprintf("sphere radius must be strictly positive, got %g", d.Radius))
		}
	case CylinderData:
		if d.Height <= 0 {
			fail(CodeInvalidCylinderHeight, fmt.Sprintf("cylinder height must be strictly positive, got %g", d.Height))
		}
		if d.Radius1 <= 0 {
			fail(CodeInvalidCylinderRadius, fmt.Sprintf("cylinder radius1 must be strictly positive, got %g", d.Radius1))
		}
	case PolyhedronData:
		if len(d.Points) == 0 || len(d.Faces) == 0 {
			fail(CodeInvalidPolyhedron, "polyhedron must have points and faces")
		}
	case TransformData:
		if d.Translation == nil && d.Rotation == nil && d.Scale == nil {
			fail(CodeInvalidTransform, "transform carries no components")
		}
	}

	if n.Kind.IsOperation() && len(n.Children) == 0 {
		fail(CodeEmptyOperation, fmt.Sprintf("%s node has no children", n.Kind))
	}
	if n.Kind == KindTransform && n.Child == nil {
		fail(CodeTransformNoChild, "transform node has no child")
	}

	return errs
}
