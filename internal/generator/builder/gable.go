package builder

import (
	"math"

	"hangar-service/internal/generator/material"
	"hangar-service/internal/generator/models"
	"hangar-service/internal/generator/planner"
)

// buildGables: треугольные фронтоны на z = ±depth/2, задний развёрнут на π вокруг y.
func buildGables(p *planner.Plan) []models.StructuralElement {
	if p.Roof.Type != models.RoofDuoPitch {
		return nil
	}

	b := p.Building
	mat := material.For(b.Visualization, false, b.Panels.Color)

	front := element(models.KindGableEnd, models.CategoryGables, gableTriangle(p), vec(0, 0, b.Depth/2), mat)
	back := element(models.KindGableEnd, models.CategoryGables, gableTriangle(p), vec(0, 0, -b.Depth/2), mat)

	return []models.StructuralElement{
		front,
		rotated(back, vec(0, math.Pi, 0)),
	}
}

func gableTriangle(p *planner.Plan) models.Geometry {
	half := p.Building.Width / 2
	return models.Geometry{
		Kind: models.GeometryMesh,
		Vertices: []models.Vec3{
			vec(-half, p.Roof.EaveY, 0),
			vec(half, p.Roof.EaveY, 0),
			vec(0, p.Roof.RidgeY, 0),
		},
		Indices: []int{0, 1, 2},
	}
}
