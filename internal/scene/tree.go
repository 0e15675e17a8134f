package scene

import (
	"go.uber.org/zap"
)

// Tree builds the subtree rooted at the given object. Child references are
// followed in order; references to missing transforms or to transforms whose
// object is missing are skipped. An object already on the current path is
// skipped as well, so cyclic documents terminate. It returns nil if the
// object does not exist.
func (h *Hierarchy) Tree(objectID string) *Node {
	return h.build(objectID, make(map[string]bool))
}

func (h *Hierarchy) build(objectID string, path map[string]bool) *Node {
	obj, ok := h.Object(objectID)
	if !ok {
		return nil
	}

	node := &Node{
		ObjectID: obj.ID,
		Name:     obj.Name,
		Active:   obj.Active,
	}

	t, ok := h.TransformOf(objectID)
	if !ok {
		return node
	}
	node.TransformID = t.ID

	path[objectID] = true
	defer delete(path, objectID)

	for _, ref := range t.Children {
		child, ok := h.scene.Transforms[ref]
		if !ok {
			h.logger.Debug("skipping dangling child", zap.String("parent", t.ID), zap.String("child", ref))
			continue
		}
		if path[child.GameObject] {
			h.logger.Debug("skipping cyclic child", zap.String("parent", t.ID), zap.String("object", child.GameObject))
			continue
		}
		sub := h.build(child.GameObject, path)
		if sub == nil {
			h.logger.Debug("skipping child without object", zap.String("transform", ref), zap.String("object", child.GameObject))
			continue
		}
		node.Children = append(node.Children, sub)
	}

	return node
}

// Forest returns one tree per root object, in root order.
func (h *Hierarchy) Forest() []*Node {
	forest := make([]*Node, 0, len(h.roots))
	for _, id := range h.roots {
		if n := h.Tree(id); n != nil {
			forest = append(forest, n)
		}
	}
	return forest
}

// Walk traverses the tree in depth-first order, calling fn for each node.
func (n *Node) Walk(fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// Depth returns the number of levels in the tree; a lone node has depth 1.
func (n *Node) Depth() int {
	if n == nil {
		return 0
	}
	deepest := 0
	for _, child := range n.Children {
		if d := child.Depth(); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}

// FlattenTree returns all nodes of the forest in pre-order.
func FlattenTree(nodes []*Node) []*Node {
	var result []*Node
	for _, root := range nodes {
		root.Walk(func(n *Node) {
			result = append(result, n)
		})
	}
	return result
}

// GetLeafNodes returns only leaf nodes (nodes without children).
func GetLeafNodes(nodes []*Node) []*Node {
	var leaves []*Node
	for _, root := range nodes {
		root.Walk(func(n *Node) {
			if len(n.Children) == 0 {
				leaves = append(leaves, n)
			}
		})
	}
	return leaves
}
