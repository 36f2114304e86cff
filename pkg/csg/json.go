package csg

import "encoding/json"

// MarshalJSON flattens the kind-specific payload into the node object so
// consumers see the familiar tagged-union wire shape
// ({"type":"cube","size":[...],"center":false,...}).
func (n *Node) MarshalJSON() ([]byte, error) {
	m := map[string]any{
		"id":   n.ID,
		"type": n.Kind.String(),
	}
	if n.Material != nil {
		m["material"] = n.Material
	}
	if n.Source != nil {
		m["sourceLocation"] = n.Source
	}

	switch d := n.Data.(type) {
	case CubeData:
		m["size"] = d.Size.Array()
		m["center"] = d.Center
	case SphereData:
		m["radius"] = d.Radius
		m["segments"] = d.Segments
	case CylinderData:
		m["height"] = d.Height
		m["radius1"] = d.Radius1
		m["radius2"] = d.Radius2
		m["segments"] = d.Segments
		m["center"] = d.Center
	case PolyhedronData:
		points := make([][3]float64, len(d.Points))
		for i, pt := range d.Points {
			points[i] = pt.Array()
		}
		m["points"] = points
		m["faces"] = d.Faces
	case TransformData:
		transform := map[string]any{}
		if d.Translation != nil {
			transform["translation"] = d.Translation.Array()
		}
		if d.Rotation != nil {
			transform["rotation"] = d.Rotation.Array()
		}
		if d.Scale != nil {
			transform["scale"] = d.Scale.Array()
		}
		m["transform"] = transform
	}

	if len(n.Children) > 0 {
		m["children"] = n.Children
	}
	if n.Child != nil {
		m["child"] = n.Child
	}
	return json.Marshal(m)
}
