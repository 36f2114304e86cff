package main

import (
	"encoding/binary"
	"io"

	"github.com/adze-cad/adze/pkg/kernel"
)

// writeSTL emits the meshes as a single binary STL body: an 80-byte
// header, a uint32 triangle count, then per triangle a normal, three
// vertices, and a zero attribute word, all little-endian float32.
func writeSTL(w io.Writer, meshes []*kernel.Mesh) error {
	var header [80]byte
	copy(header[:], "adze binary stl")
	if _, err := w.Write(header[:]); err != nil {
		return err
	}

	var count uint32
	for _, m := range meshes {
		count += uint32(m.TriangleCount())
	}
	if err := binary.Write(w, binary.LittleEndian, count); err != nil {
		return err
	}

	for _, m := range meshes {
		for t := 0; t < m.TriangleCount(); t++ {
			// Per-vertex normals are face normals here; the first vertex
			// carries the triangle normal.
			i0 := m.Indices[t*3]
			tri := make([]float32, 0, 12)
			tri = append(tri, m.Normals[i0*3], m.Normals[i0*3+1], m.Normals[i0*3+2])
			for v := 0; v < 3; v++ {
				idx := m.Indices[t*3+v]
				tri = append(tri, m.Vertices[idx*3], m.Vertices[idx*3+1], m.Vertices[idx*3+2])
			}
			if err := binary.Write(w, binary.LittleEndian, tri); err != nil {
				return err
			}
			if err := binary.Write(w, binary.LittleEndian, uint16(0)); err != nil {
				return err
			}
		}
	}
	return nil
}
