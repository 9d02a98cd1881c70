package normalizer

import (
	"fmt"
	"math"
	"strings"

	"hangar-service/internal/generator/models"
	"hangar-service/internal/generator/planner"

	"github.com/go-playground/validator/v10"
)

// ============================================================
// Defaults
// ============================================================

const (
	DefaultWidth        = 52.0
	DefaultDepth        = 36.0
	DefaultEaveHeight   = 5.5
	DefaultBaseHeight   = 0.3
	DefaultFrameSpacing = 6.0
	DefaultRidgeHeight  = 2.5
	DefaultOverhang     = 0.5
	DefaultPanelCount   = 16

	DefaultDoorWidth  = 2.5
	DefaultDoorHeight = 3.0

	DefaultRoofColor      = "#4a5568"
	DefaultPanelColor     = "#cbd5e0"
	DefaultBasePlateColor = "#a0aec0"
	DefaultPrimaryColor   = "#2b6cb0"
	DefaultSecondaryColor = "#4a5568"
	DefaultBracingColor   = "#e53e3e"
)

// DefaultVisualization применяется, когда блок visualization не передан совсем.
func DefaultVisualization() models.Visualization {
	return models.Visualization{
		models.ToggleEdges:      true,
		models.ToggleFaces:      true,
		models.ToggleMainParts:  true,
		models.TogglePanels:     true,
		models.ToggleSolidWalls: true,
		models.ToggleOpenings:   true,
		models.ToggleBasePlate:  true,
	}
}

var validate = validator.New()

// ============================================================
// Normalize
// ============================================================

// Normalize заполняет отсутствующие поля значениями по умолчанию и проверяет диапазоны.
// Входная конфигурация не изменяется.
func Normalize(cfg models.BuildingConfig) (models.Building, error) {
	b := models.Building{
		Width:        valueOr(cfg.Dimensions.Width, DefaultWidth),
		Depth:        valueOr(cfg.Dimensions.Depth, DefaultDepth),
		EaveHeight:   eaveHeight(cfg.Dimensions),
		BaseHeight:   valueOr(cfg.Dimensions.BaseHeight, DefaultBaseHeight),
		FrameSpacing: valueOr(cfg.Structure.FrameSpacing, DefaultFrameSpacing),
	}

	// Отдельно от validator: дальше по этим значениям считаются углы.
	if err := checkPositive(b); err != nil {
		return models.Building{}, err
	}

	roofType, err := parseRoofType(cfg.Roof.Type)
	if err != nil {
		return models.Building{}, err
	}

	b.Roof = resolveRoof(cfg.Roof, roofType, b.Width)
	b.Colors = resolveColors(cfg.Structure.Colors)
	b.Panels = models.Panels{
		Count: intOr(cfg.Panels.Count, DefaultPanelCount),
		Color: stringOr(cfg.Panels.Color, DefaultPanelColor),
	}
	b.Door = models.Door{
		Enabled: cfg.Openings.Door.Enabled,
		Width:   valueOr(cfg.Openings.Door.Width, DefaultDoorWidth),
		Height:  valueOr(cfg.Openings.Door.Height, DefaultDoorHeight),
		X:       valueOr(cfg.Openings.Door.X, 0),
	}
	b.Visualization = resolveVisualization(cfg.Visualization)

	if err := validate.Struct(b); err != nil {
		return models.Building{}, fmt.Errorf("%w: %w", models.ErrInvalidConfig, err)
	}
	if err := checkDoor(b); err != nil {
		return models.Building{}, err
	}
	if _, err := planner.FrameCount(b.Depth, b.FrameSpacing); err != nil {
		return models.Building{}, err
	}

	return b, nil
}

func checkPositive(b models.Building) error {
	switch {
	case !(b.Width > 0):
		return fmt.Errorf("%w: width must be positive, got %v", models.ErrInvalidConfig, b.Width)
	case !(b.Depth > 0):
		return fmt.Errorf("%w: depth must be positive, got %v", models.ErrInvalidConfig, b.Depth)
	case !(b.EaveHeight > 0):
		return fmt.Errorf("%w: eave height must be positive, got %v", models.ErrInvalidConfig, b.EaveHeight)
	case !(b.FrameSpacing > 0):
		return fmt.Errorf("%w: frame spacing must be positive, got %v", models.ErrInvalidConfig, b.FrameSpacing)
	}
	return nil
}

func checkDoor(b models.Building) error {
	d := b.Door
	if !d.Enabled {
		return nil
	}
	if !(d.Width > 0) || !(d.Height > 0) {
		return fmt.Errorf("%w: door size must be positive", models.ErrInvalidConfig)
	}
	if d.Height > b.EaveHeight {
		return fmt.Errorf("%w: door height %v exceeds eave height %v", models.ErrInvalidConfig, d.Height, b.EaveHeight)
	}
	if math.Abs(d.X)+d.Width/2 > b.Width/2 {
		return fmt.Errorf("%w: door at x=%v does not fit the front wall", models.ErrInvalidConfig, d.X)
	}
	return nil
}

// ============================================================
// Field resolution
// ============================================================

func eaveHeight(d models.DimensionsConfig) float64 {
	if d.EaveHeight != nil {
		return *d.EaveHeight
	}
	return valueOr(d.Height, DefaultEaveHeight)
}

func parseRoofType(raw string) (models.RoofType, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "duo-pitch", "pitched":
		return models.RoofDuoPitch, nil
	case "flat":
		return models.RoofFlat, nil
	case "mono-pitch":
		return models.RoofMonoPitch, nil
	}
	return "", fmt.Errorf("%w: unknown roof type %q", models.ErrInvalidConfig, raw)
}

// resolveRoof согласует pitch, slope (x/12) и ridgeHeight: явно заданное значение
// имеет приоритет, недостающие выводятся из него.
func resolveRoof(r models.RoofConfig, roofType models.RoofType, width float64) models.Roof {
	half := width / 2

	pitch, hasPitch := 0.0, false
	switch {
	case r.Pitch != nil:
		pitch, hasPitch = *r.Pitch, true
	case r.Slope != nil:
		pitch, hasPitch = degrees(math.Atan(*r.Slope/12)), true
	}

	var ridge float64
	switch {
	case r.RidgeHeight != nil:
		ridge = *r.RidgeHeight
	case hasPitch && pitch >= 0 && pitch < 90:
		ridge = half * math.Tan(radians(pitch))
	default:
		ridge = DefaultRidgeHeight
	}

	if !hasPitch {
		pitch = degrees(math.Atan(ridge / half))
	}

	slope := 12 * math.Tan(radians(pitch))
	if r.Slope != nil {
		slope = *r.Slope
	}

	return models.Roof{
		Type:         roofType,
		PitchDegrees: pitch,
		SlopeRatio:   slope,
		RidgeHeight:  ridge,
		Overhang:     valueOr(r.Overhang, DefaultOverhang),
		Color:        stringOr(r.Color, DefaultRoofColor),
	}
}

func resolveColors(c models.StructureColors) models.StructureColors {
	return models.StructureColors{
		BasePlate:          stringOr(c.BasePlate, DefaultBasePlateColor),
		PrimaryStructure:   stringOr(c.PrimaryStructure, DefaultPrimaryColor),
		SecondaryStructure: stringOr(c.SecondaryStructure, DefaultSecondaryColor),
		Bracing:            stringOr(c.Bracing, DefaultBracingColor),
	}
}

// resolveVisualization копирует флажки; frames: старое имя mainParts.
func resolveVisualization(v map[string]bool) models.Visualization {
	if v == nil {
		return DefaultVisualization()
	}

	out := make(models.Visualization, len(v)+1)
	for k, on := range v {
		out[k] = on
	}
	if _, ok := out[models.ToggleMainParts]; !ok {
		if frames, ok := out[models.ToggleFrames]; ok {
			out[models.ToggleMainParts] = frames
		}
	}
	return out
}

// ============================================================
// Helpers
// ============================================================

func valueOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

func stringOr(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
