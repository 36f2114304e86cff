package sdfx

import (
	"math"
	"testing"
)

func testKernel() *SdfxKernel {
	// Low resolution keeps the marching cubes pass fast in tests.
	return &SdfxKernel{MeshCells: 40}
}

func TestBox(t *testing.T) {
	k := testKernel()
	box := k.Box(10, 5, 2.5)
	mesh, err := k.ToMesh(box)
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("mesh is empty")
	}
	if mesh.VertexCount() == 0 {
		t.Fatal("expected non-zero vertex count")
	}
	if mesh.TriangleCount() == 0 {
		t.Fatal("expected non-zero triangle count")
	}
	// Vertex and index arrays must stay consistent.
	if len(mesh.Vertices) != len(mesh.Normals) {
		t.Fatalf("vertices length %d != normals length %d", len(mesh.Vertices), len(mesh.Normals))
	}
	if len(mesh.Indices) != mesh.TriangleCount()*3 {
		t.Fatalf("indices length %d != triCount*3 %d", len(mesh.Indices), mesh.TriangleCount()*3)
	}
}

// Boxes sit with their minimum corner at the origin.
func TestBoxPlacement(t *testing.T) {
	k := testKernel()
	min, max := k.Box(10, 5, 2.5).BoundingBox()

	const tol = 0.01
	expectMin := [3]float64{0, 0, 0}
	expectMax := [3]float64{10, 5, 2.5}

	for i := 0; i < 3; i++ {
		if math.Abs(min[i]-expectMin[i]) > tol {
			t.Errorf("min[%d] = %f, expected %f", i, min[i], expectMin[i])
		}
		if math.Abs(max[i]-expectMax[i]) > tol {
			t.Errorf("max[%d] = %f, expected %f", i, max[i], expectMax[i])
		}
	}
}

// Cylinders rest with their base at z=0.
func TestCylinderPlacement(t *testing.T) {
	k := testKernel()
	min, max := k.Cylinder(50, 10, 32).BoundingBox()

	const tol = 0.01
	if math.Abs(min[2]) > tol {
		t.Errorf("base z = %f, expected 0", min[2])
	}
	if math.Abs(max[2]-50) > tol {
		t.Errorf("top z = %f, expected 50", max[2])
	}
}

func TestSphere(t *testing.T) {
	k := testKernel()
	mesh, err := k.ToMesh(k.Sphere(5))
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("mesh is empty")
	}

	min, max := k.Sphere(5).BoundingBox()
	const tol = 0.5
	for i := 0; i < 3; i++ {
		if math.Abs(min[i]+5) > tol || math.Abs(max[i]-5) > tol {
			t.Errorf("axis %d bounds = [%f, %f], expected ~[-5, 5]", i, min[i], max[i])
		}
	}
}

func TestCone(t *testing.T) {
	k := testKernel()
	mesh, err := k.ToMesh(k.Cone(10, 4, 0, 32))
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("cone mesh is empty")
	}
	t.Logf("cone triangle count: %d", mesh.TriangleCount())
}

func TestDifference(t *testing.T) {
	k := testKernel()

	box := k.Box(10, 10, 10)
	boxMesh, err := k.ToMesh(box)
	if err != nil {
		t.Fatalf("ToMesh(box) failed: %v", err)
	}

	cyl := k.Translate(k.Cylinder(12, 2, 32), 5, 5, -1)
	diff := k.Difference(box, cyl)
	diffMesh, err := k.ToMesh(diff)
	if err != nil {
		t.Fatalf("ToMesh(diff) failed: %v", err)
	}
	if diffMesh.IsEmpty() {
		t.Fatal("difference mesh is empty")
	}
	// A box with a hole through it needs more triangles than a plain box.
	if diffMesh.TriangleCount() <= boxMesh.TriangleCount() {
		t.Fatalf("difference (%d triangles) should have more triangles than box (%d triangles)",
			diffMesh.TriangleCount(), boxMesh.TriangleCount())
	}
}

func TestUnion(t *testing.T) {
	k := testKernel()
	a := k.Box(5, 5, 5)
	b := k.Translate(k.Box(5, 5, 5), 3, 0, 0)
	mesh, err := k.ToMesh(k.Union(a, b))
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("union mesh is empty")
	}
}

func TestIntersection(t *testing.T) {
	k := testKernel()
	a := k.Box(10, 10, 10)
	b := k.Translate(k.Box(10, 10, 10), 5, 0, 0)
	mesh, err := k.ToMesh(k.Intersection(a, b))
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("intersection mesh is empty")
	}
}

func TestTranslate(t *testing.T) {
	k := testKernel()
	translated := k.Translate(k.Box(10, 10, 10), 100, 200, 300)
	min, max := translated.BoundingBox()

	const tol = 0.5
	expectMin := [3]float64{100, 200, 300}
	expectMax := [3]float64{110, 210, 310}

	for i := 0; i < 3; i++ {
		if math.Abs(min[i]-expectMin[i]) > tol {
			t.Errorf("min[%d] = %f, expected ~%f", i, min[i], expectMin[i])
		}
		if math.Abs(max[i]-expectMax[i]) > tol {
			t.Errorf("max[%d] = %f, expected ~%f", i, max[i], expectMax[i])
		}
	}
}

func TestRotate(t *testing.T) {
	k := testKernel()
	// A long box along X rotated 90 degrees around Z should extend along Y.
	box := k.Translate(k.Box(100, 10, 10), -50, -5, -5)
	rotated := k.Rotate(box, 0, 0, 90)
	min, max := rotated.BoundingBox()

	xExtent := max[0] - min[0]
	yExtent := max[1] - min[1]

	const tol = 1.0
	if math.Abs(xExtent-10) > tol {
		t.Errorf("rotated X extent = %f, expected ~10", xExtent)
	}
	if math.Abs(yExtent-100) > tol {
		t.Errorf("rotated Y extent = %f, expected ~100", yExtent)
	}
}

func TestScale(t *testing.T) {
	k := testKernel()
	scaled := k.Scale(k.Box(10, 10, 10), 2, 1, 0.5)
	min, max := scaled.BoundingBox()

	const tol = 0.5
	if math.Abs(max[0]-min[0]-20) > tol {
		t.Errorf("scaled X extent = %f, expected ~20", max[0]-min[0])
	}
	if math.Abs(max[2]-min[2]-5) > tol {
		t.Errorf("scaled Z extent = %f, expected ~5", max[2]-min[2])
	}
}
