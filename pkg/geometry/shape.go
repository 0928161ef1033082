package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Frame is a local orthonormal basis expressed in world coordinates
type Frame struct {
	X, Y, Z core.Vec3
}

// IdentityFrame returns the world axes
func IdentityFrame() Frame {
	return Frame{
		X: core.NewVec3(1, 0, 0),
		Y: core.NewVec3(0, 1, 0),
		Z: core.NewVec3(0, 0, 1),
	}
}

// FrameFromY builds a right-handed frame whose Y axis is y
func FrameFromY(y core.Vec3) Frame {
	y = y.Normalize()
	helper := core.NewVec3(1, 0, 0)
	if math.Abs(y.X) > 0.9 {
		helper = core.NewVec3(0, 0, 1)
	}
	x := helper.Subtract(y.Multiply(helper.Dot(y))).Normalize()
	return Frame{X: x, Y: y, Z: x.Cross(y)}
}

// Base holds the placement and appearance shared by all shapes
type Base struct {
	Position core.Vec3
	Frame    Frame
	Scale    float64
	Color    core.Vec3
	Material *material.Material
	Texture  material.Texture // Optional
}

// Properties returns the shape's properties
func (p *Base) Properties() *Base {
	return p
}

// Transform applies m to the position; the frame axes only see its rotation
func (p *Base) Transform(m mgl64.Mat4) {
	p.Position = fromMgl(mgl64.TransformCoordinate(toMgl(p.Position), m))

	rotation := m.Mat3()
	p.Frame = Frame{
		X: fromMgl(rotation.Mul3x1(toMgl(p.Frame.X))).Normalize(),
		Y: fromMgl(rotation.Mul3x1(toMgl(p.Frame.Y))).Normalize(),
		Z: fromMgl(rotation.Mul3x1(toMgl(p.Frame.Z))).Normalize(),
	}
}

func defaultBase(position core.Vec3, scale float64, mat *material.Material) Base {
	if mat == nil {
		mat = material.NewNeutral()
	}
	return Base{
		Position: position,
		Frame:    IdentityFrame(),
		Scale:    scale,
		Color:    core.NewVec3(1, 1, 1),
		Material: mat,
	}
}

// Interact builds the shading record for shape hit at parameter t along ray
func Interact(shape Shape, ray core.Ray, t float64) *material.SurfaceInteraction {
	point := ray.At(t)
	tangent, bitangent, normal := shape.LocalFrame(point)
	props := shape.Properties()

	return &material.SurfaceInteraction{
		Point:     point,
		Normal:    normal,
		T:         t,
		UV:        shape.SurfaceUV(point),
		Tangent:   tangent,
		Bitangent: bitangent,
		Color:     props.Color,
		Texture:   props.Texture,
		Material:  props.Material,
	}
}

func toMgl(v core.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func fromMgl(v mgl64.Vec3) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}
