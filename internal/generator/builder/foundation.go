package builder

import (
	"hangar-service/internal/generator/material"
	"hangar-service/internal/generator/models"
	"hangar-service/internal/generator/planner"
)

// ============================================================
// Foundation
// ============================================================

// buildFoundation: плита (width+2)×baseHeight×(depth+2) и опорная пластина под каждой колонной.
func buildFoundation(p *planner.Plan) []models.StructuralElement {
	b := p.Building
	out := make([]models.StructuralElement, 0, 1+2*len(p.Frames))

	out = append(out, element(
		models.KindFoundationSlab, models.CategoryFoundation,
		boxGeometry(b.Width+2, b.BaseHeight, b.Depth+2),
		vec(0, b.BaseHeight/2, 0),
		material.For(b.Visualization, false, b.Colors.BasePlate),
	))

	plate := material.For(b.Visualization, true, b.Colors.BasePlate)
	for _, z := range p.Frames {
		for _, x := range []float64{-b.Width / 2, b.Width / 2} {
			out = append(out, element(
				models.KindBasePlate, models.CategoryFoundation,
				boxGeometry(1, b.BaseHeight*0.8, 1),
				vec(x, b.BaseHeight*0.4, z),
				plate,
			))
		}
	}

	return out
}
