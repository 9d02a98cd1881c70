package handlers

import (
	"hangar-service/internal/generator/presets"

	"github.com/gofiber/fiber/v3"
)

// ListPresets возвращает имена встроенных пресетов.
func ListPresets(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"presets": presets.Names(),
	})
}

func GetPreset(c fiber.Ctx) error {
	cfg, err := presets.Load(c.Params("name"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(cfg)
}
