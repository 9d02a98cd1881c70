package builder

import (
	"math"

	"hangar-service/internal/generator/material"
	"hangar-service/internal/generator/models"
	"hangar-service/internal/generator/planner"
)

// ============================================================
// Wall panels & corrugation
// ============================================================

const (
	// CorrugationSpacing: шаг вертикальных рёбер профлиста вдоль боковой стены.
	CorrugationSpacing = 1.2

	wallThickness  = 0.05
	wallOffset     = 0.1
	ribSection     = 0.02
	ribOffset      = 0.12
	stripThickness = 0.02
	ribEpsilon     = 1e-9
)

// buildWalls: сплошные боковые стены, рёбра профлиста на каждой из них и,
// при включённых panels, вертикальные полосы панелей на передней и задней стене.
func buildWalls(p *planner.Plan) []models.StructuralElement {
	b := p.Building
	mat := material.For(b.Visualization, false, b.Panels.Color)
	wallH := p.WallHeight()
	centerY := wallH/2 + b.BaseHeight
	sides := []float64{-1, 1}

	var out []models.StructuralElement
	for _, side := range sides {
		out = append(out, element(
			models.KindWallPanel, models.CategoryWalls,
			boxGeometry(wallThickness, wallH, b.Depth),
			vec(side*(b.Width/2+wallOffset), centerY, 0),
			mat,
		))
	}

	ribs := int(math.Floor(b.Depth/CorrugationSpacing + ribEpsilon))
	for i := 0; i <= ribs; i++ {
		z := -b.Depth/2 + float64(i)*CorrugationSpacing
		for _, side := range sides {
			out = append(out, element(
				models.KindCorrugation, models.CategoryWalls,
				boxGeometry(ribSection, wallH, ribSection),
				vec(side*(b.Width/2+ribOffset), centerY, z),
				mat,
			))
		}
	}

	if b.Visualization.On(models.TogglePanels) {
		out = append(out, panelStrips(p, mat)...)
	}

	return out
}

// panelStrips: panels.count полос шириной width/count на торцевых стенах.
func panelStrips(p *planner.Plan, mat models.MaterialStyle) []models.StructuralElement {
	b := p.Building
	stripW := b.Width / float64(b.Panels.Count)

	out := make([]models.StructuralElement, 0, 2*b.Panels.Count)
	for _, z := range []float64{b.Depth / 2, -b.Depth / 2} {
		for i := 0; i < b.Panels.Count; i++ {
			x := -b.Width/2 + (float64(i)+0.5)*stripW
			out = append(out, element(
				models.KindPanelStrip, models.CategoryWalls,
				boxGeometry(stripW, b.EaveHeight, stripThickness),
				vec(x, b.EaveHeight/2+b.BaseHeight, z),
				mat,
			))
		}
	}
	return out
}
