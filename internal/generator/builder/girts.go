package builder

import (
	"hangar-service/internal/generator/material"
	"hangar-service/internal/generator/models"
	"hangar-service/internal/generator/planner"
)

const (
	girtLevels  = 3
	girtSection = 0.2
)

// buildGirts: три ригеля на передней и задней стене, равномерно между основанием и карнизом.
func buildGirts(p *planner.Plan) []models.StructuralElement {
	b := p.Building
	mat := material.For(b.Visualization, true, b.Colors.SecondaryStructure)

	out := make([]models.StructuralElement, 0, 2*girtLevels)
	for level := 1; level <= girtLevels; level++ {
		y := b.BaseHeight + float64(level)*b.EaveHeight/(girtLevels+1)
		for _, z := range []float64{b.Depth / 2, -b.Depth / 2} {
			out = append(out, element(
				models.KindGirt, models.CategoryGirts,
				boxGeometry(b.Width, girtSection, girtSection),
				vec(0, y, z),
				mat,
			))
		}
	}

	return out
}
