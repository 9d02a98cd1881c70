package builder

import (
	"hangar-service/internal/generator/material"
	"hangar-service/internal/generator/models"
	"hangar-service/internal/generator/planner"
)

// ============================================================
// Roof surface
// ============================================================

const (
	ridgeCapColor  = "#2d3748"
	ridgeCapHeight = 0.15
	flatRoofHeight = 0.2
)

// roofIndices: два треугольника на каждый скат.
var roofIndices = []int{
	0, 2, 1, 1, 2, 3, // левый скат
	0, 1, 4, 1, 5, 4, // правый скат
}

func buildRoof(p *planner.Plan) []models.StructuralElement {
	switch p.Roof.Type {
	case models.RoofDuoPitch:
		return duoPitchRoof(p)
	case models.RoofFlat:
		return flatRoof(p)
	}
	return nil
}

// duoPitchRoof: сетка из 6 вершин (линия конька, левый и правый карниз) с учётом свеса,
// плюс коньковый колпак.
func duoPitchRoof(p *planner.Plan) []models.StructuralElement {
	b := p.Building
	roofWidth := b.Width + 2*b.Roof.Overhang
	roofDepth := b.Depth + 2*b.Roof.Overhang
	ridgeY, eaveY := p.Roof.RidgeY, p.Roof.EaveY

	mesh := models.Geometry{
		Kind: models.GeometryMesh,
		Vertices: []models.Vec3{
			vec(0, ridgeY, -roofDepth/2),
			vec(0, ridgeY, roofDepth/2),
			vec(-roofWidth/2, eaveY, -roofDepth/2),
			vec(-roofWidth/2, eaveY, roofDepth/2),
			vec(roofWidth/2, eaveY, -roofDepth/2),
			vec(roofWidth/2, eaveY, roofDepth/2),
		},
		Indices: append([]int(nil), roofIndices...),
	}

	return []models.StructuralElement{
		element(
			models.KindRoofSurface, models.CategoryRoof,
			mesh,
			vec(0, 0, 0),
			material.For(b.Visualization, false, b.Roof.Color),
		),
		element(
			models.KindRidgeCap, models.CategoryRoof,
			boxGeometry(0.2, ridgeCapHeight, roofDepth),
			vec(0, ridgeY+ridgeCapHeight/2, 0),
			material.For(b.Visualization, true, ridgeCapColor),
		),
	}
}

func flatRoof(p *planner.Plan) []models.StructuralElement {
	b := p.Building
	return []models.StructuralElement{
		element(
			models.KindFlatRoof, models.CategoryRoof,
			boxGeometry(b.Width, flatRoofHeight, b.Depth),
			vec(0, p.Roof.EaveY+flatRoofHeight/2, 0),
			material.For(b.Visualization, false, b.Roof.Color),
		),
	}
}
