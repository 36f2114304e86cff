package csg

import "github.com/google/uuid"

// newNodeID returns a fresh, kind-prefixed node identifier. IDs are
// probabilistically unique and regenerated on every conversion; structural
// comparison between runs must ignore them.
func newNodeID(k Kind) string {
	return k.String() + "-" + uuid.NewString()
}
