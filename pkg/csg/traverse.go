package csg

// Visitor is invoked for every node during a Walk. depth is 0 for roots;
// path holds the IDs from the root down to and including n. The path slice
// is reused between calls and must be copied if retained.
type Visitor[T any] func(n *Node, depth int, path []string) T

// Walk traverses the forest pre-order depth-first, collecting the visitor
// results in visit order.
func Walk[T any](nodes []*Node, visit Visitor[T]) []T {
	var out []T
	var path []string
	var walk func(n *Node, depth int)
	walk = func(n *Node, depth int) {
		if n == nil {
			return
		}
		path = append(path, n.ID)
		out = append(out, visit(n, depth, path))
		for _, c := range n.Children {
			walk(c, depth+1)
		}
		walk(n.Child, depth+1)
		path = path[:len(path)-1]
	}
	for _, n := range nodes {
		walk(n, 0)
	}
	return out
}

// FindByID returns the first node with the given id in depth-first order,
// or nil.
func FindByID(nodes []*Node, id string) *Node {
	for _, n := range nodes {
		if found := findByID(n, id); found != nil {
			return found
		}
	}
	return nil
}

func findByID(n *Node, id string) *Node {
	if n == nil {
		return nil
	}
	if n.ID == id {
		return n
	}
	for _, c := range n.Children {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return findByID(n.Child, id)
}
