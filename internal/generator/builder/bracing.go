package builder

import (
	"math"

	"hangar-service/internal/generator/material"
	"hangar-service/internal/generator/models"
	"hangar-service/internal/generator/planner"
)

// ============================================================
// Bracing
// ============================================================

const braceSection = 0.15

// buildBracing: X-связи в каждом пролёте на обеих боковых стенах.
// Длина диагонали берётся по фактическому пролёту, последний пролёт может быть короче.
func buildBracing(p *planner.Plan) []models.StructuralElement {
	b := p.Building
	mat := material.For(b.Visualization, true, b.Colors.Bracing)
	centerY := b.BaseHeight + b.EaveHeight/2

	var out []models.StructuralElement
	for i := 0; i+1 < len(p.Frames); i++ {
		z1, z2 := p.Frames[i], p.Frames[i+1]
		bay := z2 - z1
		length := math.Hypot(bay, b.EaveHeight)
		angle := math.Atan2(b.EaveHeight, bay)
		midZ := (z1 + z2) / 2

		for _, x := range []float64{-b.Width / 2, b.Width / 2} {
			for _, a := range []float64{angle, -angle} {
				brace := element(
					models.KindBrace, models.CategoryBracing,
					boxGeometry(braceSection, braceSection, length),
					vec(x, centerY, midZ),
					mat,
				)
				out = append(out, rotated(brace, vec(a, 0, 0)))
			}
		}
	}

	return out
}
