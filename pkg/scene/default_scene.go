package scene

import "github.com/df07/go-whitted-raytracer/pkg/core"

// NewDefaultDescription returns the built-in demo: a checkered floor, a glass
// sphere in front of a mirror and a Cook-Torrance sphere, and a rotated row
// of small bumpy spheres, lit by two point lights and the sun
func NewDefaultDescription() Description {
	g := NewGraph()
	root := g.Add(Node{})

	g.AddChild(root, Node{
		Shape:     "Plane",
		Transform: "translate(0,-1,0)",
		Attributes: &Attributes{
			Color:    core.NewVec3(0.9, 0.9, 0.85),
			Scale:    8,
			Material: "Phong3",
			Texture:  "CheckerBoard",
		},
	})

	spheres := g.AddChild(root, Node{Transform: "translate(0,0,-1)"})
	g.AddChild(spheres, Node{
		Shape:      "Sphere",
		Transform:  "translate(0,0,1.5)",
		Attributes: &Attributes{Color: core.NewVec3(1, 1, 1), Scale: 0.6, Material: "Glass"},
	})
	g.AddChild(spheres, Node{
		Shape:      "Sphere",
		Transform:  "translate(-1.6,0,-0.5)",
		Attributes: &Attributes{Color: core.NewVec3(0.9, 0.9, 0.9), Scale: 1, Material: "Mirror"},
	})
	g.AddChild(spheres, Node{
		Shape:      "Sphere",
		Transform:  "translate(1.6,0,-0.5)",
		Attributes: &Attributes{Color: core.NewVec3(0.8, 0.5, 0.2), Scale: 1, Material: "CookTorrance1"},
	})

	// Children inherit the group's attribute block. A node's own transform
	// acts after its ancestors', so each sphere turns the row itself.
	ring := g.AddChild(root, Node{
		Attributes: &Attributes{Color: core.NewVec3(0.2, 0.4, 0.9), Scale: 0.3, Material: "Phong1", Texture: "Bumps"},
	})
	for _, x := range []string{"-1.2", "-0.4", "0.4", "1.2"} {
		g.AddChild(ring, Node{Shape: "Sphere", Transform: "translate(" + x + ",0,0) rotateY(30) translate(0,-0.7,-3.5)"})
	}

	return Description{
		Camera: &CameraConfig{
			Position: core.NewVec3(0, 1, 4),
			Target:   core.NewVec3(0, 0, -1),
			FOV:      60,
		},
		Plane:      PlaneConfig{Width: 400, Height: 300, SamplesPerPixel: 4},
		Ambient:    core.NewVec3(0.3, 0.3, 0.3),
		Background: core.NewVec3(0.55, 0.7, 0.9),
		WorldUp:    core.NewVec3(0, 1, 0),
		Shadows:    true,
		MaxDepth:   5,
		PointLights: PointLights{
			Number:              2,
			Positions:           []core.Vec3{core.NewVec3(-3, 5, 3), core.NewVec3(4, 3, 1)},
			DiffuseIntensities:  []core.Vec3{core.NewVec3(0.7, 0.7, 0.7), core.NewVec3(0.3, 0.3, 0.35)},
			SpecularIntensities: []core.Vec3{core.NewVec3(1, 1, 1), core.NewVec3(0.5, 0.5, 0.5)},
		},
		DirectionalLights: DirectionalLights{
			Number:              1,
			Directions:          []core.Vec3{core.NewVec3(-1, -2, -1)},
			DiffuseIntensities:  []core.Vec3{core.NewVec3(0.2, 0.2, 0.18)},
			SpecularIntensities: []core.Vec3{core.NewVec3(0.2, 0.2, 0.2)},
		},
		Graph: g,
	}
}
