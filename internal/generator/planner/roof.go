package planner

import (
	"fmt"
	"math"

	"hangar-service/internal/generator/models"
)

// ============================================================
// Roof geometry
// ============================================================

// RoofGeometry считает тригонометрию ската, общую для рам, прогонов, кровли и фронтонов.
// Для flat конёк совпадает с карнизом. mono-pitch не поддерживается.
func RoofGeometry(roof models.Roof, width, eaveHeight, baseHeight float64) (models.RoofGeometry, error) {
	eaveY := eaveHeight + baseHeight

	switch roof.Type {
	case models.RoofDuoPitch:
		half := width / 2
		return models.RoofGeometry{
			Type:         roof.Type,
			RafterLength: math.Sqrt(half*half + roof.RidgeHeight*roof.RidgeHeight),
			RafterAngle:  math.Atan(roof.RidgeHeight / half),
			RidgeY:       eaveY + roof.RidgeHeight,
			EaveY:        eaveY,
		}, nil
	case models.RoofFlat:
		return models.RoofGeometry{
			Type:   roof.Type,
			RidgeY: eaveY,
			EaveY:  eaveY,
		}, nil
	case models.RoofMonoPitch:
		return models.RoofGeometry{}, fmt.Errorf("%w: %s", models.ErrUnsupportedRoofType, roof.Type)
	}
	return models.RoofGeometry{}, fmt.Errorf("%w: unknown roof type %q", models.ErrInvalidConfig, roof.Type)
}

// ============================================================
// Plan
// ============================================================

// Plan: выходы планировщиков, которые получают все билдеры.
type Plan struct {
	Building models.Building
	Frames   []float64
	Roof     models.RoofGeometry
}

// New прогоняет оба планировщика. Все геометрические ошибки возникают здесь,
// до запуска любого билдера.
func New(b models.Building) (*Plan, error) {
	frames, err := FramePositions(b.Depth, b.FrameSpacing)
	if err != nil {
		return nil, err
	}

	roof, err := RoofGeometry(b.Roof, b.Width, b.EaveHeight, b.BaseHeight)
	if err != nil {
		return nil, err
	}

	return &Plan{Building: b, Frames: frames, Roof: roof}, nil
}

// WallHeight: высота боковых стен до линии кровли (для flat: высота карниза).
func (p *Plan) WallHeight() float64 {
	return p.Building.EaveHeight + (p.Roof.RidgeY - p.Roof.EaveY)
}
