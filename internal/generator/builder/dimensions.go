package builder

import (
	"hangar-service/internal/generator/material"
	"hangar-service/internal/generator/models"
	"hangar-service/internal/generator/planner"
)

const (
	dimensionColor  = "#ff0000"
	dimensionOffset = 2.0
	dimensionLevel  = -0.5
)

// buildDimensions: размерные линии ширины (перед фасадом) и глубины (слева от здания).
func buildDimensions(p *planner.Plan) []models.StructuralElement {
	b := p.Building
	mat := material.For(b.Visualization, true, dimensionColor)

	width := models.Geometry{
		Kind:     models.GeometryLine,
		Vertices: []models.Vec3{vec(-b.Width/2, 0, 0), vec(b.Width/2, 0, 0)},
	}
	depth := models.Geometry{
		Kind:     models.GeometryLine,
		Vertices: []models.Vec3{vec(0, 0, -b.Depth/2), vec(0, 0, b.Depth/2)},
	}

	return []models.StructuralElement{
		element(models.KindDimensionLine, models.CategoryDimensions, width,
			vec(0, dimensionLevel, b.Depth/2+dimensionOffset), mat),
		element(models.KindDimensionLine, models.CategoryDimensions, depth,
			vec(-b.Width/2-dimensionOffset, dimensionLevel, 0), mat),
	}
}
