package builder

import (
	"hangar-service/internal/generator/models"
	"hangar-service/internal/generator/planner"
)

// ============================================================
// Builder steps
// ============================================================

// step: один билдер категории: свой флажок видимости и функция построения.
// Билдер читает только Plan; от включённости других билдеров он не зависит.
type step struct {
	category models.Category
	enabled  func(v models.Visualization) bool
	build    func(p *planner.Plan) []models.StructuralElement
}

func toggle(name string) func(models.Visualization) bool {
	return func(v models.Visualization) bool {
		return v.On(name)
	}
}

func anyToggle(names ...string) func(models.Visualization) bool {
	return func(v models.Visualization) bool {
		for _, name := range names {
			if v.On(name) {
				return true
			}
		}
		return false
	}
}

// ============================================================
// Primitive constructors
// ============================================================

func vec(x, y, z float64) models.Vec3 {
	return models.Vec3{X: x, Y: y, Z: z}
}

func boxGeometry(w, h, d float64) models.Geometry {
	size := vec(w, h, d)
	return models.Geometry{Kind: models.GeometryBox, Size: &size}
}

func element(kind models.ElementKind, category models.Category, geom models.Geometry, pos models.Vec3, mat models.MaterialStyle) models.StructuralElement {
	return models.StructuralElement{
		Kind:     kind,
		Category: category,
		Geometry: geom,
		Position: pos,
		Material: mat,
	}
}

func rotated(e models.StructuralElement, rot models.Vec3) models.StructuralElement {
	e.Rotation = rot
	return e
}
