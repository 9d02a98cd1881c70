package builder

import (
	"hangar-service/internal/generator/material"
	"hangar-service/internal/generator/models"
	"hangar-service/internal/generator/planner"
)

// ============================================================
// Frames: columns, rafters, ridge, tie beam
// ============================================================

const memberSection = 0.4

func buildFrames(p *planner.Plan) []models.StructuralElement {
	b := p.Building
	mat := material.For(b.Visualization, true, b.Colors.PrimaryStructure)
	duoPitch := p.Roof.Type == models.RoofDuoPitch

	var out []models.StructuralElement
	for _, z := range p.Frames {
		// Колонны всегда на x = ±width/2.
		for _, x := range []float64{-b.Width / 2, b.Width / 2} {
			out = append(out, element(
				models.KindColumn, models.CategoryFrames,
				boxGeometry(memberSection, b.EaveHeight, memberSection),
				vec(x, b.EaveHeight/2+b.BaseHeight, z),
				mat,
			))
		}

		if duoPitch {
			out = append(out, rafters(p, z, mat)...)
		}

		out = append(out, element(
			models.KindTieBeam, models.CategoryFrames,
			boxGeometry(b.Width, memberSection, memberSection),
			vec(0, p.Roof.EaveY-0.2, z),
			mat,
		))
	}

	return out
}

// rafters: два стропила, зеркальных относительно x=0, и блок конька в вершине.
func rafters(p *planner.Plan, z float64, mat models.MaterialStyle) []models.StructuralElement {
	b := p.Building
	centerY := p.Roof.EaveY + b.Roof.RidgeHeight/2
	length := p.Roof.RafterLength

	left := element(models.KindRafter, models.CategoryFrames, boxGeometry(length, memberSection, memberSection), vec(-b.Width/4, centerY, z), mat)
	right := element(models.KindRafter, models.CategoryFrames, boxGeometry(length, memberSection, memberSection), vec(b.Width/4, centerY, z), mat)

	return []models.StructuralElement{
		rotated(left, vec(0, 0, p.Roof.RafterAngle)),
		rotated(right, vec(0, 0, -p.Roof.RafterAngle)),
		element(
			models.KindRidgeBeam, models.CategoryFrames,
			boxGeometry(memberSection, memberSection, memberSection),
			vec(0, p.Roof.RidgeY, z),
			mat,
		),
	}
}
