package renderer

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Camera is a pinhole perspective camera. Its local frame is right handed;
// it looks down its -Z axis.
type Camera struct {
	Position core.Vec3
	X, Y, Z  core.Vec3
	FOV      float64 // Horizontal field of view in degrees

	cameraToWorld mgl64.Mat4
}

// NewCamera builds the camera frame from its position, target and the world
// up direction
func NewCamera(config scene.CameraConfig, worldUp core.Vec3) *Camera {
	z := config.Position.Subtract(config.Target).Normalize()
	if z.IsZero() {
		z = core.NewVec3(0, 0, 1)
	}

	x := worldUp.Cross(z).Normalize()
	if x.IsZero() {
		// Looking straight along the up vector
		x = core.NewVec3(0, 0, 1).Cross(z).Normalize()
		if x.IsZero() {
			x = core.NewVec3(1, 0, 0)
		}
	}
	y := z.Cross(x).Normalize()

	c := &Camera{
		Position: config.Position,
		X:        x,
		Y:        y,
		Z:        z,
		FOV:      config.FOV,
	}
	c.cameraToWorld = c.WorldToCamera().Inv()
	return c
}

// WorldToCamera returns the view matrix taking world points into the camera frame
func (c *Camera) WorldToCamera() mgl64.Mat4 {
	p := c.Position
	return mgl64.Mat4{
		c.X.X, c.Y.X, c.Z.X, 0,
		c.X.Y, c.Y.Y, c.Z.Y, 0,
		c.X.Z, c.Y.Z, c.Z.Z, 0,
		-c.X.Dot(p), -c.Y.Dot(p), -c.Z.Dot(p), 1,
	}
}

// ToWorld takes a camera space direction into world space
func (c *Camera) ToWorld(direction core.Vec3) core.Vec3 {
	v := c.cameraToWorld.Mul4x1(mgl64.Vec4{direction.X, direction.Y, direction.Z, 0})
	return core.NewVec3(v[0], v[1], v[2])
}

// ProjectionPlane is the virtual image plane in front of the camera. It is
// PlaneWidth units wide and keeps the pixel aspect ratio square.
type ProjectionPlane struct {
	Width           int
	Height          int
	SamplesPerPixel int
	PlaneWidth      float64
	PlaneHeight     float64
}

// NewProjectionPlane creates a plane two units wide for the configured resolution
func NewProjectionPlane(config scene.PlaneConfig) ProjectionPlane {
	const planeWidth = 2.0
	p := ProjectionPlane{
		Width:           config.Width,
		Height:          config.Height,
		SamplesPerPixel: max(config.SamplesPerPixel, 1),
		PlaneWidth:      planeWidth,
	}
	if config.Width > 0 {
		p.PlaneHeight = float64(config.Height) * planeWidth / float64(config.Width)
	}
	return p
}

// PixelSize returns the extent of one pixel on the plane
func (p ProjectionPlane) PixelSize() (dx, dy float64) {
	return p.PlaneWidth / float64(p.Width), p.PlaneHeight / float64(p.Height)
}

// CastRay returns samples primary rays through pixel (px, py), each through a
// uniformly random point of the pixel's footprint. Pixel (0,0) is top left.
func (c *Camera) CastRay(plane ProjectionPlane, px, py, samples int, random *rand.Rand) []core.Ray {
	dx, dy := plane.PixelSize()
	z := (plane.PlaneWidth / 2) / math.Tan(mgl64.DegToRad(c.FOV)/2)

	rays := make([]core.Ray, 0, max(samples, 1))
	for range max(samples, 1) {
		x := -plane.PlaneWidth/2 + (float64(px)+random.Float64())*dx
		y := -plane.PlaneHeight/2 + (float64(py)+random.Float64())*dy
		direction := c.ToWorld(core.NewVec3(x, -y, -z))
		rays = append(rays, core.NewRay(c.Position, direction))
	}
	return rays
}
