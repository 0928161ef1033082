package scene

import "github.com/df07/go-whitted-raytracer/pkg/core"

// NodeID addresses a node inside a Graph
type NodeID int

// NoNode is the zero reference; it never addresses a node
const NoNode NodeID = -1

// Attributes is the appearance block a node hands down to its subtree.
// Tags are resolved through a Registry at compile time.
type Attributes struct {
	Color    core.Vec3
	Scale    float64 // Values <= 0 are read as 1
	Material string  // Empty means the neutral material
	Texture  string  // Optional
}

// Node is one entry of the scene graph. Leaves carry a shape tag; inner nodes
// only group children under a transform and an optional attribute block.
type Node struct {
	Shape      string
	Attributes *Attributes // nil inherits the nearest ancestor's block
	Transform  string      // e.g. "translate(0,1,0) rotateY(45)"
	Children   []NodeID
}

// IsLeaf reports whether the node has no children
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Graph stores nodes in a flat arena. Children refer to their nodes by index,
// so there are no parent links to keep consistent.
type Graph struct {
	Nodes []Node
	Root  NodeID
}

// NewGraph creates an empty graph
func NewGraph() *Graph {
	return &Graph{Root: NoNode}
}

// Add appends a detached node. The first node added becomes the root.
func (g *Graph) Add(n Node) NodeID {
	id := NodeID(len(g.Nodes))
	g.Nodes = append(g.Nodes, n)
	if g.Root == NoNode {
		g.Root = id
	}
	return id
}

// AddChild appends n and links it under parent
func (g *Graph) AddChild(parent NodeID, n Node) NodeID {
	id := g.Add(n)
	if p, ok := g.Node(parent); ok {
		p.Children = append(p.Children, id)
	}
	return id
}

// Node returns the node with the given id
func (g *Graph) Node(id NodeID) (*Node, bool) {
	if id < 0 || int(id) >= len(g.Nodes) {
		return nil, false
	}
	return &g.Nodes[id], true
}

// HasRoot reports whether the root references a node
func (g *Graph) HasRoot() bool {
	if g == nil {
		return false
	}
	_, ok := g.Node(g.Root)
	return ok
}
