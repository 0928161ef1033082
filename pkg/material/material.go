package material

// Material describes how a surface shades and how it splits light between
// reflection and refraction. Materials are stateless and shared between shapes.
type Material struct {
	Name            string
	RefractionIndex float64 // >= 1
	Glossy          bool    // Spawns mirror reflections
	Transparent     bool    // Spawns refractions
	Model           ReflectanceModel
}

// NewMaterial creates a material. Refraction indices below 1 are raised to 1.
func NewMaterial(name string, refractionIndex float64, glossy, transparent bool, model ReflectanceModel) *Material {
	return &Material{
		Name:            name,
		RefractionIndex: max(refractionIndex, 1.0),
		Glossy:          glossy,
		Transparent:     transparent,
		Model:           model,
	}
}

// NewNeutral is the material given to shapes with no material in scope:
// plain diffuse, no reflection or refraction.
func NewNeutral() *Material {
	return NewMaterial("Neutral", 1, false, false, NewPhong(0.1, 0.9, 0.0, 1))
}

// NewAir is fully transparent and contributes no local shading
func NewAir() *Material {
	return NewMaterial("Air", 1, false, true, NewPhong(0, 0, 0, 0))
}

// NewPhong1 is a glossy, slightly specular surface
func NewPhong1() *Material {
	return NewMaterial("Phong1", 2, true, false, NewPhong(0.1, 0.8, 0.2, 10))
}

// NewPhong2 is a glossy surface with a tight highlight
func NewPhong2() *Material {
	return NewMaterial("Phong2", 4, true, false, NewPhong(0.1, 0.5, 0.5, 150))
}

// NewPhong3 is a matte surface
func NewPhong3() *Material {
	return NewMaterial("Phong3", 4, false, false, NewPhong(0.1, 0.6, 0.4, 80))
}

// NewPhong4 is transparent with a strong highlight
func NewPhong4() *Material {
	return NewMaterial("Phong4", 4, false, true, NewPhong(0.2, 0.2, 0.8, 400))
}

// NewPhong5 is glossy with a broad highlight
func NewPhong5() *Material {
	return NewMaterial("Phong5", 4, true, false, NewPhong(0.1, 0.6, 0.4, 80))
}

// NewGlass reflects and refracts with the index of crown glass
func NewGlass() *Material {
	return NewMaterial("Glass", 1.5, true, true, NewPhong(0.0, 0.05, 0.5, 300))
}

// NewMirror is almost perfectly reflective
func NewMirror() *Material {
	return NewMaterial("Mirror", 50, true, false, NewPhong(0.0, 0.05, 0.3, 500))
}

// NewCookTorrance1 is a glossy rough metal
func NewCookTorrance1() *Material {
	return NewMaterial("CookTorrance1", 1.8, true, false, NewCookTorrance(0.8, 0.1, 0.3))
}

// NewCookTorrance2 is a non-glossy smoother surface
func NewCookTorrance2() *Material {
	return NewMaterial("CookTorrance2", 1.5, false, false, NewCookTorrance(0.9, 0.1, 0.15))
}
