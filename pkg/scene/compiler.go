package scene

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// defaultAttributes is used for leaves with no attribute block anywhere on
// their path
var defaultAttributes = Attributes{
	Color: core.NewVec3(1, 1, 1),
	Scale: 1,
}

// Compile flattens the graph into world-space shapes. The traversal is depth
// first, pre-order. Every node composes its transform with its parent's as
// node · parent, and either uses its own attribute block or inherits the
// nearest ancestor's.
//
// Problems with individual nodes never abort the compile: the node (and, for
// a bad transform, its subtree) is skipped and a Warning is returned.
func Compile(g *Graph, registry *Registry, logger *slog.Logger) (geometry.ShapeList, []Warning) {
	if !g.HasRoot() {
		return nil, nil
	}
	if registry == nil {
		registry = DefaultRegistry()
	}

	c := &compiler{
		graph:     g,
		registry:  registry,
		logger:    core.LoggerOrNop(logger),
		materials: make(map[string]*material.Material),
		textures:  make(map[string]material.Texture),
		onPath:    make(map[NodeID]bool),
	}
	c.visit(g.Root, mgl64.Ident4(), nil)
	return c.shapes, c.warnings
}

type compiler struct {
	graph    *Graph
	registry *Registry
	logger   *slog.Logger

	// Instances are shared by every shape naming the same tag
	materials map[string]*material.Material
	textures  map[string]material.Texture

	onPath   map[NodeID]bool
	shapes   geometry.ShapeList
	warnings []Warning
}

func (c *compiler) visit(id NodeID, parent mgl64.Mat4, inherited *Attributes) {
	node, ok := c.graph.Node(id)
	if !ok || c.onPath[id] {
		c.warn(id, fmt.Errorf("%w: %d", ErrInvalidNode, id))
		return
	}

	local, err := ParseTransform(node.Transform)
	if err != nil {
		c.warn(id, err)
		return
	}
	// The accumulated parent transform is applied to a point first
	current := local.Mul4(parent)

	attrs := inherited
	if node.Attributes != nil {
		attrs = node.Attributes
	}

	if !node.IsLeaf() {
		c.onPath[id] = true
		for _, child := range node.Children {
			c.visit(child, current, attrs)
		}
		delete(c.onPath, id)
		return
	}

	shape, err := c.instantiate(node, attrs)
	if err != nil {
		c.warn(id, err)
		return
	}
	shape.Transform(current)
	c.shapes = append(c.shapes, shape)
}

func (c *compiler) instantiate(node *Node, attrs *Attributes) (geometry.Shape, error) {
	if node.Shape == "" {
		return nil, ErrLeafWithoutShape
	}
	if attrs == nil {
		attrs = &defaultAttributes
	}

	mat, err := c.material(attrs.Material)
	if err != nil {
		return nil, err
	}
	tex, err := c.texture(attrs.Texture)
	if err != nil {
		return nil, err
	}
	shape, err := c.registry.NewShape(node.Shape)
	if err != nil {
		return nil, err
	}

	props := shape.Properties()
	props.Color = attrs.Color
	props.Material = mat
	props.Texture = tex
	props.Scale = attrs.Scale
	if props.Scale <= 0 {
		props.Scale = 1
	}
	return shape, nil
}

func (c *compiler) material(tag string) (*material.Material, error) {
	if tag == "" {
		tag = "Neutral"
	}
	if m, ok := c.materials[tag]; ok {
		return m, nil
	}
	m, err := c.registry.NewMaterial(tag)
	if err != nil {
		if tag != "Neutral" {
			return nil, err
		}
		m = material.NewNeutral()
	}
	c.materials[tag] = m
	return m, nil
}

func (c *compiler) texture(tag string) (material.Texture, error) {
	if tag == "" {
		return nil, nil
	}
	if t, ok := c.textures[tag]; ok {
		return t, nil
	}
	t, err := c.registry.NewTexture(tag)
	if err != nil {
		return nil, err
	}
	c.textures[tag] = t
	return t, nil
}

func (c *compiler) warn(id NodeID, err error) {
	w := Warning{Node: id, Err: err}
	c.logger.Warn("skipping scene graph node", "node", int(id), "error", err)
	c.warnings = append(c.warnings, w)
}
