package handlers

import (
	"errors"
	"log"

	"hangar-service/internal/generator/mapper"
	"hangar-service/internal/generator/models"
	"hangar-service/internal/generator/presets"
	"hangar-service/internal/generator/schema"
	"hangar-service/internal/generator/service"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Generator Handler
// ============================================================

type GeneratorHandler struct {
	cache    *service.SceneCache
	renderer *mapper.Renderer
}

func NewGeneratorHandler(cache *service.SceneCache) *GeneratorHandler {
	return &GeneratorHandler{
		cache:    cache,
		renderer: mapper.NewRenderer(),
	}
}

// Generate строит список примитивов по конфигурации из тела (JSON или YAML) или по ?preset=.
func (h *GeneratorHandler) Generate(c fiber.Ctx) error {
	log.Printf("[GENERATOR] Generate request")
	log.Printf("[GENERATOR] Content-Type: %s", c.Get("Content-Type"))

	cfg, err := readConfig(c)
	if err != nil {
		return writeError(c, err)
	}

	scene, hit, err := h.cache.Generate(cfg)
	if err != nil {
		log.Printf("[GENERATOR] Generate error: %v", err)
		return writeError(c, err)
	}

	log.Printf("[GENERATOR] Scene %s: %d elements (cache hit: %t)", shortHash(scene.Hash), len(scene.Elements), hit)
	c.Set("X-Scene-Cache", cacheStatus(hit))
	return c.JSON(scene)
}

// Render отдаёт план сцены в SVG.
func (h *GeneratorHandler) Render(c fiber.Ctx) error {
	log.Printf("[RENDER] Received request")

	cfg, err := readConfig(c)
	if err != nil {
		return writeError(c, err)
	}

	scene, _, err := h.cache.Generate(cfg)
	if err != nil {
		log.Printf("[RENDER] Generate error: %v", err)
		return writeError(c, err)
	}

	svg, err := h.renderer.Render(scene)
	if err != nil {
		log.Printf("[RENDER] Render error: %v", err)
		return c.Status(500).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	c.Set("Content-Type", "image/svg+xml")
	return c.SendString(svg)
}

// ============================================================
// Helpers
// ============================================================

func readConfig(c fiber.Ctx) (models.BuildingConfig, error) {
	if name := c.Query("preset"); name != "" {
		return presets.Load(name)
	}

	body := c.Body()
	if len(body) == 0 {
		// пустое тело: все значения по умолчанию
		return models.BuildingConfig{}, nil
	}
	return schema.Decode(body, schema.FormatFromContentType(c.Get("Content-Type")))
}

// writeError переводит ошибки генератора в HTTP-статусы.
func writeError(c fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrInvalidConfig):
		status = fiber.StatusBadRequest
	case errors.Is(err, models.ErrUnsupportedRoofType):
		status = fiber.StatusUnprocessableEntity
	case errors.Is(err, presets.ErrNotFound):
		status = fiber.StatusNotFound
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func cacheStatus(hit bool) string {
	if hit {
		return "hit"
	}
	return "miss"
}

func shortHash(hash string) string {
	if len(hash) > 12 {
		return hash[:12]
	}
	return hash
}
