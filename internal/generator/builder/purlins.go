package builder

import (
	"math"

	"hangar-service/internal/generator/material"
	"hangar-service/internal/generator/models"
	"hangar-service/internal/generator/planner"
)

// ============================================================
// Purlins
// ============================================================

const (
	// PurlinSpacing: шаг прогонов вдоль стропила, не по x.
	PurlinSpacing = 3.0
	purlinSection = 0.2
)

// PurlinsPerSide = floor(rafterLength / PurlinSpacing).
func PurlinsPerSide(rafterLength float64) int {
	return int(math.Floor(rafterLength / PurlinSpacing))
}

// buildPurlins: прогоны только для двускатной крыши. На каждом скате n прогонов
// на расстояниях i·L/(n+1) вдоль стропила, плюс коньковый прогон.
func buildPurlins(p *planner.Plan) []models.StructuralElement {
	if p.Roof.Type != models.RoofDuoPitch {
		return nil
	}

	b := p.Building
	mat := material.For(b.Visualization, true, b.Colors.SecondaryStructure)
	length := p.Roof.RafterLength
	n := PurlinsPerSide(length)
	cos, sin := math.Cos(p.Roof.RafterAngle), math.Sin(p.Roof.RafterAngle)

	out := make([]models.StructuralElement, 0, 2*n+1)
	for _, side := range []float64{-1, 1} {
		for i := 1; i <= n; i++ {
			along := float64(i) * length / float64(n+1)
			x := side * (b.Width/2 - along*cos)
			y := p.Roof.EaveY + along*sin
			out = append(out, element(
				models.KindPurlin, models.CategoryPurlins,
				boxGeometry(purlinSection, purlinSection, b.Depth),
				vec(x, y, 0),
				mat,
			))
		}
	}

	out = append(out, element(
		models.KindRidgePurlin, models.CategoryPurlins,
		boxGeometry(purlinSection, purlinSection, b.Depth),
		vec(0, p.Roof.RidgeY, 0),
		mat,
	))

	return out
}
