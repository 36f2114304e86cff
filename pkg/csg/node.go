package csg

// Kind enumerates the types of nodes in the CSG tree.
type Kind int

const (
	KindCube Kind = iota
	KindSphere
	KindCylinder
	KindCone
	KindPolyhedron
	KindUnion
	KindDifference
	KindIntersection
	KindTransform
	KindGroup
)

func (k Kind) String() string {
	switch k {
	case KindCube:
		return "cube"
	case KindSphere:
		return "sphere"
	case KindCylinder:
		return "cylinder"
	case KindCone:
		return "cone"
	case KindPolyhedron:
		return "polyhedron"
	case KindUnion:
		return "union"
	case KindDifference:
		return "difference"
	case KindIntersection:
		return "intersection"
	case KindTransform:
		return "transform"
	case KindGroup:
		return "group"
	default:
		return "unknown"
	}
}

// IsPrimitive reports whether the kind is an atomic solid.
func (k Kind) IsPrimitive() bool {
	switch k {
	case KindCube, KindSphere, KindCylinder, KindCone, KindPolyhedron:
		return true
	}
	return false
}

// IsOperation reports whether the kind is a boolean set operation.
func (k Kind) IsOperation() bool {
	switch k {
	case KindUnion, KindDifference, KindIntersection:
		return true
	}
	return false
}

// Node is the fundamental element of the CSG tree. Nodes are immutable
// value objects once constructed; to change a node, rebuild it.
type Node struct {
	ID       string
	Kind     Kind
	Material *Material
	Source   *SourceLocation

	// Children is populated for operation and group nodes; Child for
	// transform nodes, which wrap exactly one subtree.
	Children []*Node
	Child    *Node

	Data NodeData
}

// NodeData is the interface for kind-specific node payloads.
type NodeData interface {
	nodeData() // marker method restricting implementations to this package
}
