package scene

import (
	"fmt"
	"sort"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// ShapeFactory creates an untransformed shape at the origin
type ShapeFactory func() geometry.Shape

// MaterialFactory creates a material
type MaterialFactory func() *material.Material

// TextureFactory creates a texture
type TextureFactory func() material.Texture

// Registry maps the tags used in scene descriptions to constructors
type Registry struct {
	shapes    map[string]ShapeFactory
	materials map[string]MaterialFactory
	textures  map[string]TextureFactory
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		shapes:    make(map[string]ShapeFactory),
		materials: make(map[string]MaterialFactory),
		textures:  make(map[string]TextureFactory),
	}
}

// DefaultRegistry returns a registry with every built-in shape, material
// preset and texture
func DefaultRegistry() *Registry {
	r := NewRegistry()

	r.RegisterShape("Sphere", func() geometry.Shape {
		return geometry.NewSphere(core.Vec3{}, 1, nil)
	})
	r.RegisterShape("Plane", func() geometry.Shape {
		return geometry.NewPlane(core.Vec3{}, core.NewVec3(0, 1, 0), nil)
	})

	r.RegisterMaterial("Neutral", material.NewNeutral)
	r.RegisterMaterial("Air", material.NewAir)
	r.RegisterMaterial("Phong1", material.NewPhong1)
	r.RegisterMaterial("Phong2", material.NewPhong2)
	r.RegisterMaterial("Phong3", material.NewPhong3)
	r.RegisterMaterial("Phong4", material.NewPhong4)
	r.RegisterMaterial("Phong5", material.NewPhong5)
	r.RegisterMaterial("Glass", material.NewGlass)
	r.RegisterMaterial("Mirror", material.NewMirror)
	r.RegisterMaterial("CookTorrance1", material.NewCookTorrance1)
	r.RegisterMaterial("CookTorrance2", material.NewCookTorrance2)

	r.RegisterTexture("CheckerBoard", func() material.Texture {
		return material.NewCheckerBoard(0.125, core.NewVec3(0.1, 0.1, 0.1))
	})
	r.RegisterTexture("Bumps", func() material.Texture {
		return material.NewBumps(0.15, 8)
	})

	return r
}

// RegisterShape binds tag to f, replacing any previous binding
func (r *Registry) RegisterShape(tag string, f ShapeFactory) {
	r.shapes[tag] = f
}

// RegisterMaterial binds tag to f, replacing any previous binding
func (r *Registry) RegisterMaterial(tag string, f MaterialFactory) {
	r.materials[tag] = f
}

// RegisterTexture binds tag to f, replacing any previous binding
func (r *Registry) RegisterTexture(tag string, f TextureFactory) {
	r.textures[tag] = f
}

// NewShape instantiates the shape registered under tag
func (r *Registry) NewShape(tag string) (geometry.Shape, error) {
	f, ok := r.shapes[tag]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, tag)
	}
	return f(), nil
}

// NewMaterial instantiates the material registered under tag
func (r *Registry) NewMaterial(tag string) (*material.Material, error) {
	f, ok := r.materials[tag]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMaterial, tag)
	}
	return f(), nil
}

// NewTexture instantiates the texture registered under tag
func (r *Registry) NewTexture(tag string) (material.Texture, error) {
	f, ok := r.textures[tag]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTexture, tag)
	}
	return f(), nil
}

// MaterialTags returns the registered material tags in sorted order
func (r *Registry) MaterialTags() []string {
	tags := make([]string, 0, len(r.materials))
	for tag := range r.materials {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
