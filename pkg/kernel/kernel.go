// Package kernel defines the abstract geometry kernel interface. The CSG
// converter itself never evaluates geometry; implementations (sdfx) turn
// finished CSG trees into solids and meshes behind this boundary, so
// backends can be swapped without touching the converter.
package kernel

// Solid is an opaque handle to a geometry kernel solid.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Kernel is the abstract geometry kernel interface.
//
// Placement follows source-language conventions: boxes sit with their
// minimum corner at the origin, spheres are centered, cylinders and cones
// rest with their base at z=0. Centered variants are produced by
// translating.
type Kernel interface {
	// Primitives
	Box(x, y, z float64) Solid
	Sphere(radius float64) Solid
	Cylinder(height, radius float64, segments int) Solid
	Cone(height, radius1, radius2 float64, segments int) Solid

	// Boolean operations
	Union(a, b Solid) Solid
	Difference(a, b Solid) Solid
	Intersection(a, b Solid) Solid

	// Transforms
	Translate(s Solid, x, y, z float64) Solid
	Rotate(s Solid, x, y, z float64) Solid // Euler angles in degrees
	Scale(s Solid, x, y, z float64) Solid

	// Mesh output
	ToMesh(s Solid) (*Mesh, error)
}
