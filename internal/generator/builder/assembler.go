package builder

import (
	"fmt"

	"hangar-service/internal/generator/models"
	"hangar-service/internal/generator/normalizer"
	"hangar-service/internal/generator/planner"
)

// ============================================================
// Assembler
// ============================================================

// Categories: фиксированный порядок запуска билдеров.
var Categories = []models.Category{
	models.CategoryFoundation,
	models.CategoryFrames,
	models.CategoryBracing,
	models.CategoryGirts,
	models.CategoryPurlins,
	models.CategoryRoof,
	models.CategoryGables,
	models.CategoryWalls,
	models.CategoryOpenings,
	models.CategoryDimensions,
}

type Assembler struct {
	steps []step
}

func New() *Assembler {
	return &Assembler{
		steps: []step{
			{models.CategoryFoundation, toggle(models.ToggleBasePlate), buildFoundation},
			{models.CategoryFrames, toggle(models.ToggleMainParts), buildFrames},
			{models.CategoryBracing, toggle(models.ToggleBracing), buildBracing},
			{models.CategoryGirts, toggle(models.ToggleGirts), buildGirts},
			{models.CategoryPurlins, toggle(models.TogglePurlins), buildPurlins},
			{models.CategoryRoof, toggle(models.ToggleMainParts), buildRoof},
			{models.CategoryGables, toggle(models.TogglePanels), buildGables},
			{models.CategoryWalls, anyToggle(models.TogglePanels, models.ToggleSolidWalls), buildWalls},
			{models.CategoryOpenings, toggle(models.ToggleOpenings), buildOpenings},
			{models.CategoryDimensions, toggle(models.ToggleDimensions), buildDimensions},
		},
	}
}

// Generate: конфигурация -> нормализация -> планировщики -> билдеры.
// При ошибке примитивы не возвращаются вовсе.
func (a *Assembler) Generate(cfg models.BuildingConfig) (*models.Scene, error) {
	b, err := normalizer.Normalize(cfg)
	if err != nil {
		return nil, err
	}
	return a.Build(b)
}

// Build собирает сцену из уже нормализованной конфигурации.
func (a *Assembler) Build(b models.Building) (*models.Scene, error) {
	plan, err := planner.New(b)
	if err != nil {
		return nil, err
	}

	hash, err := normalizer.Hash(b)
	if err != nil {
		return nil, fmt.Errorf("hash config: %w", err)
	}

	scene := &models.Scene{
		Hash:           hash,
		FrameCount:     len(plan.Frames),
		FramePositions: append([]float64(nil), plan.Frames...),
		Roof:           plan.Roof,
		Counts:         make(map[models.Category]int, len(a.steps)),
		Elements:       make([]models.StructuralElement, 0),
	}

	for _, s := range a.steps {
		scene.Counts[s.category] = 0
		if !s.enabled(b.Visualization) {
			continue
		}
		elements := s.build(plan)
		scene.Counts[s.category] = len(elements)
		scene.Elements = append(scene.Elements, elements...)
	}

	return scene, nil
}

// Generate: генерация с набором билдеров по умолчанию.
func Generate(cfg models.BuildingConfig) (*models.Scene, error) {
	return New().Generate(cfg)
}
