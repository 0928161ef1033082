package scene

import (
	"fmt"
	"log/slog"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// CameraConfig places the perspective camera
type CameraConfig struct {
	Position core.Vec3
	Target   core.Vec3
	FOV      float64 // Horizontal field of view in degrees
}

func (c *CameraConfig) validate() error {
	if c.FOV <= 0 || c.FOV >= 180 {
		return fmt.Errorf("%w (got %g)", ErrInvalidCamera, c.FOV)
	}
	return nil
}

// PlaneConfig is the image resolution and sampling rate
type PlaneConfig struct {
	Width           int
	Height          int
	SamplesPerPixel int // Values <= 0 are read as 1
}

// PointLights lists point lights as parallel attribute lists
type PointLights struct {
	Number              int
	Positions           []core.Vec3
	DiffuseIntensities  []core.Vec3
	SpecularIntensities []core.Vec3
}

// DirectionalLights lists directional lights as parallel attribute lists.
// Directions are the direction the light travels in.
type DirectionalLights struct {
	Number              int
	Directions          []core.Vec3
	DiffuseIntensities  []core.Vec3
	SpecularIntensities []core.Vec3
}

// Description is the already-parsed input to Build
type Description struct {
	Camera            *CameraConfig
	Plane             PlaneConfig
	Ambient           core.Vec3
	Background        core.Vec3
	WorldUp           core.Vec3 // Zero means +Y
	Shadows           bool
	MaxDepth          int
	PointLights       PointLights
	DirectionalLights DirectionalLights
	Graph             *Graph
}

// Validate checks the fields a render cannot start without
func (d *Description) Validate() error {
	if d.Camera == nil {
		return ErrMissingCamera
	}
	if err := d.Camera.validate(); err != nil {
		return err
	}
	if !d.Graph.HasRoot() {
		return ErrMissingRoot
	}
	if d.Plane.Width <= 0 || d.Plane.Height <= 0 {
		return fmt.Errorf("%w (got %dx%d)", ErrInvalidPlane, d.Plane.Width, d.Plane.Height)
	}
	return nil
}

// Scene is the flattened, render-time scene. It is read-only while a render
// is in progress.
type Scene struct {
	Camera     CameraConfig
	Plane      PlaneConfig
	Ambient    core.Vec3
	Background core.Vec3
	WorldUp    core.Vec3
	Shadows    bool
	MaxDepth   int
	Shapes     geometry.ShapeList
	Lights     []lights.Light
}

// Build validates the description, compiles its graph and instantiates its
// lights. It returns an error wrapping ErrConfiguration, or the scene plus
// any warnings collected along the way.
func Build(d Description, registry *Registry, logger *slog.Logger) (*Scene, []Warning, error) {
	if err := d.Validate(); err != nil {
		return nil, nil, err
	}
	logger = core.LoggerOrNop(logger)

	shapes, warnings := Compile(d.Graph, registry, logger)
	sceneLights, lightWarnings := buildLights(d.PointLights, d.DirectionalLights)
	for _, w := range lightWarnings {
		logger.Warn("light list mismatch", "error", w.Err)
	}
	warnings = append(warnings, lightWarnings...)

	s := &Scene{
		Camera:     *d.Camera,
		Plane:      d.Plane,
		Ambient:    d.Ambient,
		Background: d.Background,
		WorldUp:    d.WorldUp,
		Shadows:    d.Shadows,
		MaxDepth:   max(d.MaxDepth, 0),
		Shapes:     shapes,
		Lights:     sceneLights,
	}
	if s.WorldUp.IsZero() {
		s.WorldUp = core.NewVec3(0, 1, 0)
	}
	if s.Plane.SamplesPerPixel <= 0 {
		s.Plane.SamplesPerPixel = 1
	}

	logger.Info("scene compiled",
		"shapes", len(s.Shapes),
		"lights", len(s.Lights),
		"warnings", len(warnings))
	return s, warnings, nil
}

// Validate checks that a scene built by hand can be rendered
func (s *Scene) Validate() error {
	if s == nil {
		return ErrMissingRoot
	}
	if err := s.Camera.validate(); err != nil {
		return err
	}
	if s.Plane.Width <= 0 || s.Plane.Height <= 0 {
		return fmt.Errorf("%w (got %dx%d)", ErrInvalidPlane, s.Plane.Width, s.Plane.Height)
	}
	return nil
}

// Environment returns the lighting state reflectance models shade against
func (s *Scene) Environment() material.Environment {
	return material.Environment{
		Ambient:  s.Ambient,
		Lights:   s.Lights,
		Shadows:  s.Shadows,
		Occluder: s.Shapes,
	}
}

func buildLights(points PointLights, directionals DirectionalLights) ([]lights.Light, []Warning) {
	var result []lights.Light
	var warnings []Warning

	n, err := lightCount("point", points.Number,
		len(points.Positions), len(points.DiffuseIntensities), len(points.SpecularIntensities))
	if err != nil {
		warnings = append(warnings, Warning{Node: NoNode, Err: err})
	}
	for i := range n {
		result = append(result, lights.NewPointLight(
			points.Positions[i], points.DiffuseIntensities[i], points.SpecularIntensities[i]))
	}

	n, err = lightCount("directional", directionals.Number,
		len(directionals.Directions), len(directionals.DiffuseIntensities), len(directionals.SpecularIntensities))
	if err != nil {
		warnings = append(warnings, Warning{Node: NoNode, Err: err})
	}
	for i := range n {
		result = append(result, lights.NewDirectionalLight(
			directionals.Directions[i], directionals.DiffuseIntensities[i], directionals.SpecularIntensities[i]))
	}

	return result, warnings
}

// lightCount returns how many complete lights the lists describe
func lightCount(kind string, declared, vectors, diffuse, specular int) (int, error) {
	n := min(max(declared, 0), vectors, diffuse, specular)
	if declared != vectors || n < declared {
		return n, fmt.Errorf("%w: %d %s lights declared, %d vectors, %d diffuse, %d specular intensities",
			ErrLightCountMismatch, declared, kind, vectors, diffuse, specular)
	}
	return n, nil
}
