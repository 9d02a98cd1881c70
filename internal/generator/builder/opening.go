package builder

import (
	"hangar-service/internal/generator/material"
	"hangar-service/internal/generator/models"
	"hangar-service/internal/generator/planner"
)

const (
	doorColor = "#8b5cf6"
	// doorInset выносит плоскость двери чуть перед передней стеной.
	doorInset = 0.02
)

func buildOpenings(p *planner.Plan) []models.StructuralElement {
	b := p.Building
	if !b.Door.Enabled {
		return nil
	}

	return []models.StructuralElement{
		element(
			models.KindDoor, models.CategoryOpenings,
			models.Geometry{Kind: models.GeometryPlane, Width: b.Door.Width, Height: b.Door.Height},
			vec(b.Door.X, b.Door.Height/2+b.BaseHeight, b.Depth/2+doorInset),
			material.For(b.Visualization, false, doorColor),
		),
	}
}
