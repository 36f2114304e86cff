package csg

// Vec3 is a 3-component vector.
type Vec3 struct {
	X, Y, Z float64
}

// Splat returns a uniform vector with every component set to v.
func Splat(v float64) Vec3 {
	return Vec3{X: v, Y: v, Z: v}
}

// Add returns the component-wise sum.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Array returns the vector as a fixed-size array.
func (v Vec3) Array() [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// FromArray builds a Vec3 from a fixed-size array.
func FromArray(a [3]float64) Vec3 {
	return Vec3{X: a[0], Y: a[1], Z: a[2]}
}

// SourceLocation points back at the source position a node came from.
// A zero location means the parser recorded none.
type SourceLocation struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Material describes the render material attached to a node. Advisory
// only; geometry is unaffected.
type Material struct {
	Color     [4]float64 `json:"color" yaml:"color"` // RGBA in [0,1]
	Metalness float64    `json:"metalness" yaml:"metalness"`
	Roughness float64    `json:"roughness" yaml:"roughness"`
	Opacity   float64    `json:"opacity" yaml:"opacity"`
	Wireframe bool       `json:"wireframe" yaml:"wireframe"`
}

// ---------------------------------------------------------------------------
// Primitives
// ---------------------------------------------------------------------------

// CubeData is an axis-aligned box. Center selects corner-at-origin (false)
// or centered-at-origin (true) placement.
type CubeData struct {
	Size   Vec3
	Center bool
}

func (CubeData) nodeData() {}

// SphereData is a sphere centered at the origin.
type SphereData struct {
	Radius   float64
	Segments int
}

func (SphereData) nodeData() {}

// CylinderData is a cylinder (or cone frustum when Radius2 differs from
// Radius1). Shared by the cylinder and cone kinds.
type CylinderData struct {
	Height   float64
	Radius1  float64
	Radius2  float64
	Segments int
	Center   bool
}

func (CylinderData) nodeData() {}

// PolyhedronData is an explicit vertex/face solid.
type PolyhedronData struct {
	Points []Vec3
	Faces  [][]int
}

func (PolyhedronData) nodeData() {}

// ---------------------------------------------------------------------------
// Operations, transforms, groups
// ---------------------------------------------------------------------------

// OperationData is the payload for union/difference/intersection nodes.
// The children live on the Node itself.
type OperationData struct{}

func (OperationData) nodeData() {}

// TransformData is an affine adjustment applied to the node's single
// child. An absent component means identity. Rotation units are whatever
// the source used; unit conversion is a downstream concern.
type TransformData struct {
	Translation *Vec3
	Rotation    *Vec3
	Scale       *Vec3
}

func (TransformData) nodeData() {}

// GroupData is the payload for logical grouping nodes.
type GroupData struct{}

func (GroupData) nodeData() {}
