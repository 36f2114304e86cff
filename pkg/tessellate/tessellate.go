// Package tessellate walks a CSG tree and produces triangle meshes using
// a geometry kernel. One mesh is produced per root node.
package tessellate

import (
	"fmt"

	"github.com/adze-cad/adze/pkg/csg"
	"github.com/adze-cad/adze/pkg/kernel"
)

// Tessellate evaluates every root of the tree against the kernel and
// meshes the results. The tessellator is read-only and never mutates the
// tree.
func Tessellate(tree *csg.Tree, k kernel.Kernel) ([]*kernel.Mesh, error) {
	if tree == nil {
		return nil, nil
	}

	var meshes []*kernel.Mesh
	for _, root := range tree.Roots {
		solid, err := BuildSolid(root, k)
		if err != nil {
			return nil, fmt.Errorf("tessellate: root %s: %w", root.ID, err)
		}
		mesh, err := k.ToMesh(solid)
		if err != nil {
			return nil, fmt.Errorf("tessellate: mesh root %s: %w", root.ID, err)
		}
		mesh.Name = root.ID
		meshes = append(meshes, mesh)
	}
	return meshes, nil
}

// BuildSolid recursively evaluates one CSG subtree into a kernel solid.
func BuildSolid(n *csg.Node, k kernel.Kernel) (kernel.Solid, error) {
	if n == nil {
		return nil, fmt.Errorf("nil node")
	}

	switch d := n.Data.(type) {
	case csg.CubeData:
		s := k.Box(d.Size.X, d.Size.Y, d.Size.Z)
		if d.Center {
			s = k.Translate(s, -d.Size.X/2, -d.Size.Y/2, -d.Size.Z/2)
		}
		return s, nil

	case csg.SphereData:
		return k.Sphere(d.Radius), nil

	case csg.CylinderData:
		var s kernel.Solid
		if d.Radius1 == d.Radius2 {
			s = k.Cylinder(d.Height, d.Radius1, d.Segments)
		} else {
			s = k.Cone(d.Height, d.Radius1, d.Radius2, d.Segments)
		}
		if d.Center {
			s = k.Translate(s, 0, 0, -d.Height/2)
		}
		return s, nil

	case csg.PolyhedronData:
		// SDF kernels have no face-list primitive.
		return nil, fmt.Errorf("polyhedron %s: not supported by this kernel", n.ID)

	case csg.TransformData:
		child, err := BuildSolid(n.Child, k)
		if err != nil {
			return nil, err
		}
		if d.Scale != nil {
			child = k.Scale(child, d.Scale.X, d.Scale.Y, d.Scale.Z)
		}
		if d.Rotation != nil {
			child = k.Rotate(child, d.Rotation.X, d.Rotation.Y, d.Rotation.Z)
		}
		if d.Translation != nil {
			child = k.Translate(child, d.Translation.X, d.Translation.Y, d.Translation.Z)
		}
		return child, nil

	case csg.OperationData:
		return buildOperation(n, k)

	case csg.GroupData:
		return foldUnion(n, n.Children, k)
	}

	return nil, fmt.Errorf("node %s: unsupported kind %s", n.ID, n.Kind)
}

func buildOperation(n *csg.Node, k kernel.Kernel) (kernel.Solid, error) {
	if len(n.Children) == 0 {
		return nil, fmt.Errorf("operation %s has no children", n.ID)
	}
	switch n.Kind {
	case csg.KindUnion:
		return foldUnion(n, n.Children, k)
	case csg.KindDifference:
		// First child minus the union of the rest.
		base, err := BuildSolid(n.Children[0], k)
		if err != nil {
			return nil, err
		}
		for _, c := range n.Children[1:] {
			s, err := BuildSolid(c, k)
			if err != nil {
				return nil, err
			}
			base = k.Difference(base, s)
		}
		return base, nil
	case csg.KindIntersection:
		base, err := BuildSolid(n.Children[0], k)
		if err != nil {
			return nil, err
		}
		for _, c := range n.Children[1:] {
			s, err := BuildSolid(c, k)
			if err != nil {
				return nil, err
			}
			base = k.Intersection(base, s)
		}
		return base, nil
	}
	return nil, fmt.Errorf("node %s: not an operation", n.ID)
}

func foldUnion(n *csg.Node, children []*csg.Node, k kernel.Kernel) (kernel.Solid, error) {
	if len(children) == 0 {
		return nil, fmt.Errorf("group %s has no children", n.ID)
	}
	base, err := BuildSolid(children[0], k)
	if err != nil {
		return nil, err
	}
	for _, c := range children[1:] {
		s, err := BuildSolid(c, k)
		if err != nil {
			return nil, err
		}
		base = k.Union(base, s)
	}
	return base, nil
}
