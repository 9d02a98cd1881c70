package planner

import (
	"fmt"
	"math"

	"hangar-service/internal/generator/models"
)

// ============================================================
// Frame layout
// ============================================================

const (
	// floorEpsilon гасит ошибку округления вида 36/0.1 = 359.99999...
	floorEpsilon = 1e-9

	// MaxFrames: больше рам генератор не строит.
	MaxFrames = 10000
)

// FrameCount = floor(depth / frameSpacing) + 1, не больше MaxFrames.
func FrameCount(depth, frameSpacing float64) (int, error) {
	if !(depth > 0) || !(frameSpacing > 0) {
		return 0, fmt.Errorf("%w: depth=%v frameSpacing=%v", models.ErrInvalidConfig, depth, frameSpacing)
	}
	bays := depth/frameSpacing + floorEpsilon
	if !(bays < MaxFrames) {
		return 0, fmt.Errorf("%w: depth=%v frameSpacing=%v gives more than %d frames",
			models.ErrInvalidConfig, depth, frameSpacing, MaxFrames)
	}
	return int(math.Floor(bays)) + 1, nil
}

// FramePositions возвращает z-координаты рам по глубине здания, строго по возрастанию,
// начиная с -depth/2. Если depth не кратна шагу, последний пролёт короче: это не исправляется.
func FramePositions(depth, frameSpacing float64) ([]float64, error) {
	count, err := FrameCount(depth, frameSpacing)
	if err != nil {
		return nil, err
	}

	positions := make([]float64, count)
	for i := range positions {
		positions[i] = -depth/2 + float64(i)*frameSpacing
	}
	return positions, nil
}
