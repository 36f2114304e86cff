package csg

import (
	"fmt"
	"math"

	"github.com/adze-cad/adze/pkg/ast"
)

// sourceOf resolves a node's source location; zero when the parser
// recorded none.
func sourceOf(n *ast.Node) *SourceLocation {
	start := n.Start()
	return &SourceLocation{Line: start.Line, Column: start.Column}
}

// material returns a per-node copy of the configured default material.
func (p *Processor) material() *Material {
	m := p.cfg.DefaultMaterial
	return &m
}

// vectorArg resolves a named vector argument, falling back to def.
func (p *Processor) vectorArg(n *ast.Node, def Vec3, names ...string) Vec3 {
	if arg := n.Arg(names...); arg != nil {
		if v, ok := p.eval.Vector(arg); ok {
			return FromArray(v)
		}
	}
	return def
}

// scalarArg resolves a named scalar argument, falling back to def.
func (p *Processor) scalarArg(n *ast.Node, def float64, names ...string) float64 {
	if arg := n.Arg(names...); arg != nil {
		if v, ok := p.eval.Value(arg); ok {
			return v
		}
	}
	return def
}

// boolArg resolves a named boolean argument, falling back to def.
func (p *Processor) boolArg(n *ast.Node, def bool, names ...string) bool {
	if arg := n.Arg(names...); arg != nil {
		if v, ok := p.eval.Bool(arg); ok {
			return v
		}
	}
	return def
}

func (p *Processor) segmentsArg(n *ast.Node) int {
	v := p.scalarArg(n, float64(DefaultSegments), "segments", "fn", "$fn")
	if v <= 0 {
		return DefaultSegments
	}
	return int(math.Round(v))
}

// recoverInto converts a converter panic into a boundary error. Converter
// failures never propagate as raw panics.
func recoverInto(code string, n *ast.Node, node **Node, cerr **Error) {
	if r := recover(); r != nil {
		*node = nil
		*cerr = &Error{
			Message:  fmt.Sprintf("%s conversion panicked: %v", n.Type, r),
			Code:     code,
			Severity: SeverityError,
			Source:   sourceOf(n),
		}
	}
}

// ---------------------------------------------------------------------------
// Primitive converters
// ---------------------------------------------------------------------------

func (p *Processor) convertCube(n *ast.Node) (node *Node, cerr *Error) {
	defer recoverInto(CodeCubeConversion, n, &node, &cerr)

	data := CubeData{
		Size:   p.vectorArg(n, Splat(1), "size"),
		Center: p.boolArg(n, false, "center"),
	}
	return &Node{
		ID:       newNodeID(KindCube),
		Kind:     KindCube,
		Material: p.material(),
		Source:   sourceOf(n),
		Data:     data,
	}, nil
}

func (p *Processor) convertSphere(n *ast.Node) (node *Node, cerr *Error) {
	defer recoverInto(CodeSphereConversion, n, &node, &cerr)

	data := SphereData{
		Radius:   p.scalarArg(n, 1, "radius", "r"),
		Segments: p.segmentsArg(n),
	}
	return &Node{
		ID:       newNodeID(KindSphere),
		Kind:     KindSphere,
		Material: p.material(),
		Source:   sourceOf(n),
		Data:     data,
	}, nil
}

// convertCylinder handles both cylinder and cone source nodes. For a
// cylinder radius2 follows radius1 (which is how source cones are usually
// expressed); an explicit cone node defaults radius2 to 0 (apex).
func (p *Processor) convertCylinder(n *ast.Node, kind Kind) (node *Node, cerr *Error) {
	defer recoverInto(CodeCylinderConversion, n, &node, &cerr)

	radius1 := p.scalarArg(n, 1, "radius", "r", "r1", "radius1")
	radius2 := radius1
	if kind == KindCone {
		radius2 = 0
	}
	data := CylinderData{
		Height:   p.scalarArg(n, 1, "height", "h"),
		Radius1:  radius1,
		Radius2:  p.scalarArg(n, radius2, "r2", "radius2"),
		Segments: p.segmentsArg(n),
		Center:   p.boolArg(n, false, "center"),
	}
	return &Node{
		ID:       newNodeID(kind),
		Kind:     kind,
		Material: p.material(),
		Source:   sourceOf(n),
		Data:     data,
	}, nil
}

func (p *Processor) convertPolyhedron(n *ast.Node) (node *Node, cerr *Error) {
	defer recoverInto(CodePolyhedronConversion, n, &node, &cerr)

	fail := func(msg string) (*Node, *Error) {
		return nil, &Error{
			Message:  msg,
			Code:     CodePolyhedronConversion,
			Severity: SeverityError,
			Source:   sourceOf(n),
		}
	}

	pointsArg := n.Arg("points")
	if pointsArg == nil || len(pointsArg.Elements) == 0 {
		return fail("polyhedron requires a points list")
	}
	points := make([]Vec3, 0, len(pointsArg.Elements))
	for _, el := range pointsArg.Elements {
		v, ok := p.eval.Vector(el)
		if !ok {
			return fail("polyhedron point did not resolve to a vector")
		}
		points = append(points, FromArray(v))
	}

	facesArg := n.Arg("faces", "triangles")
	if facesArg == nil || len(facesArg.Elements) == 0 {
		return fail("polyhedron requires a faces list")
	}
	faces := make([][]int, 0, len(facesArg.Elements))
	for _, faceEl := range facesArg.Elements {
		if faceEl == nil || faceEl.Expr != ast.ExprVector {
			return fail("polyhedron face is not an index list")
		}
		face := make([]int, 0, len(faceEl.Elements))
		for _, idxEl := range faceEl.Elements {
			idx, ok := p.eval.Value(idxEl)
			if !ok || idx < 0 || idx != math.Trunc(idx) || int(idx) >= len(points) {
				return fail("polyhedron face index out of range")
			}
			face = append(face, int(idx))
		}
		faces = append(faces, face)
	}

	return &Node{
		ID:       newNodeID(KindPolyhedron),
		Kind:     KindPolyhedron,
		Material: p.material(),
		Source:   sourceOf(n),
		Data:     PolyhedronData{Points: points, Faces: faces},
	}, nil
}

// ---------------------------------------------------------------------------
// Operation and transform converters
// ---------------------------------------------------------------------------

// convertOperation assembles a boolean operation from already-converted
// children. Zero surviving children is a hard construction error.
func (p *Processor) convertOperation(kind Kind, n *ast.Node, children []*Node) (*Node, *Error) {
	if len(children) == 0 {
		return nil, &Error{
			Message:  fmt.Sprintf("%s operation has no children", kind),
			Code:     CodeEmptyOperation,
			Severity: SeverityError,
			Source:   sourceOf(n),
		}
	}
	return &Node{
		ID:       newNodeID(kind),
		Kind:     kind,
		Source:   sourceOf(n),
		Children: children,
		Data:     OperationData{},
	}, nil
}

// convertTransform wraps one already-converted child in an affine
// adjustment. Translate and rotate require an extractable vector; scale
// defaults to identity.
func (p *Processor) convertTransform(n *ast.Node, child *Node) (node *Node, cerr *Error) {
	defer recoverInto(CodeTransformConversion, n, &node, &cerr)

	var data TransformData
	switch n.Type {
	case "translate":
		if arg := n.Arg("v", "vector", "translation"); arg != nil {
			if v, ok := p.eval.Vector(arg); ok {
				vec := FromArray(v)
				data.Translation = &vec
			}
		}
		if data.Translation == nil {
			return nil, invalidTransform(n, "translate has no resolvable vector")
		}
	case "rotate":
		if arg := n.Arg("v", "a", "vector", "rotation", "angles"); arg != nil {
			if v, ok := p.eval.Vector(arg); ok {
				vec := FromArray(v)
				data.Rotation = &vec
			}
		}
		if data.Rotation == nil {
			return nil, invalidTransform(n, "rotate has no resolvable vector")
		}
	case "scale":
		vec := p.vectorArg(n, Splat(1), "v", "vector", "scale")
		data.Scale = &vec
	default:
		return nil, invalidTransform(n, fmt.Sprintf("unknown transform %q", n.Type))
	}

	if child == nil {
		return nil, &Error{
			Message:  fmt.Sprintf("%s has no child to transform", n.Type),
			Code:     CodeTransformNoChild,
			Severity: SeverityError,
			Source:   sourceOf(n),
		}
	}

	return &Node{
		ID:     newNodeID(KindTransform),
		Kind:   KindTransform,
		Source: sourceOf(n),
		Child:  child,
		Data:   data,
	}, nil
}

func invalidTransform(n *ast.Node, msg string) *Error {
	return &Error{
		Message:  msg,
		Code:     CodeInvalidTransform,
		Severity: SeverityError,
		Source:   sourceOf(n),
	}
}

// convertGroup assembles a logical grouping node. An empty group is a
// valid no-op and yields no node and no error.
func (p *Processor) convertGroup(n *ast.Node, children []*Node) (*Node, *Error) {
	if len(children) == 0 {
		return nil, nil
	}
	return &Node{
		ID:       newNodeID(KindGroup),
		Kind:     KindGroup,
		Source:   sourceOf(n),
		Children: children,
		Data:     GroupData{},
	}, nil
}
