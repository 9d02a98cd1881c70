package handlers

import (
	"encoding/json"
	"errors"
	"log"

	"hangar-service/internal/generator/builder"
	genmodels "hangar-service/internal/generator/models"
	"hangar-service/internal/generator/normalizer"
	"hangar-service/internal/generator/schema"
	"hangar-service/internal/store/repository"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Store Handler
// ============================================================

type StoreHandler struct {
	repo      *repository.Repository
	assembler *builder.Assembler
	validate  *validator.Validate
}

func NewStoreHandler(repo *repository.Repository) *StoreHandler {
	return &StoreHandler{
		repo:      repo,
		assembler: builder.New(),
		validate:  validator.New(),
	}
}

type configRequest struct {
	Name   string          `json:"name" validate:"required,max=200"`
	Config json.RawMessage `json:"config"`
}

// CreateConfig сохраняет именованную конфигурацию здания.
func (h *StoreHandler) CreateConfig(c fiber.Ctx) error {
	log.Printf("[STORE] Create config request")

	name, cfg, err := h.parseConfigRequest(c)
	if err != nil {
		return err
	}

	saved, err := h.repo.CreateConfig(c.Context(), name, cfg)
	if err != nil {
		log.Printf("[STORE] Create config error: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to save config"})
	}
	return c.Status(fiber.StatusCreated).JSON(saved)
}

func (h *StoreHandler) ListConfigs(c fiber.Ctx) error {
	list, err := h.repo.ListConfigs(c.Context())
	if err != nil {
		log.Printf("[STORE] List configs error: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to list configs"})
	}
	return c.JSON(list)
}

func (h *StoreHandler) GetConfig(c fiber.Ctx) error {
	saved, err := h.repo.GetConfig(c.Context(), c.Params("id"))
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(saved)
}

func (h *StoreHandler) UpdateConfig(c fiber.Ctx) error {
	log.Printf("[STORE] Update config %s", c.Params("id"))

	name, cfg, err := h.parseConfigRequest(c)
	if err != nil {
		return err
	}

	saved, err := h.repo.UpdateConfig(c.Context(), c.Params("id"), name, cfg)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(saved)
}

func (h *StoreHandler) DeleteConfig(c fiber.Ctx) error {
	if err := h.repo.DeleteConfig(c.Context(), c.Params("id")); err != nil {
		return repoError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Scene генерирует сцену сохранённой конфигурации. Сцены кешируются в sqlite по хешу.
func (h *StoreHandler) Scene(c fiber.Ctx) error {
	saved, err := h.repo.GetConfig(c.Context(), c.Params("id"))
	if err != nil {
		return repoError(c, err)
	}

	b, err := normalizer.Normalize(saved.Config)
	if err != nil {
		return generatorError(c, err)
	}
	hash, err := normalizer.Hash(b)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	scene, err := h.repo.GetScene(c.Context(), hash)
	if err == nil {
		c.Set("X-Scene-Cache", "hit")
		return c.JSON(scene)
	}
	if !errors.Is(err, repository.ErrNotFound) {
		log.Printf("[STORE] Scene cache read error: %v", err)
	}

	scene, err = h.assembler.Build(b)
	if err != nil {
		return generatorError(c, err)
	}
	if err := h.repo.PutScene(c.Context(), scene); err != nil {
		log.Printf("[STORE] Scene cache write error: %v", err)
	}

	c.Set("X-Scene-Cache", "miss")
	return c.JSON(scene)
}

// ============================================================
// Helpers
// ============================================================

func (h *StoreHandler) parseConfigRequest(c fiber.Ctx) (string, genmodels.BuildingConfig, error) {
	var cfg genmodels.BuildingConfig

	if len(c.Body()) == 0 {
		return "", cfg, fiber.NewError(fiber.StatusBadRequest, "body required")
	}

	var req configRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return "", cfg, fiber.NewError(fiber.StatusBadRequest, "invalid json")
	}
	if err := h.validate.Struct(req); err != nil {
		// ValidationErrors рендерит общий ErrorHandler
		return "", cfg, err
	}

	raw := []byte(req.Config)
	if len(raw) == 0 || string(raw) == "null" {
		raw = []byte("{}")
	}
	cfg, err := schema.Decode(raw, schema.FormatJSON)
	if err != nil {
		return "", cfg, fiber.NewError(generatorStatus(err), err.Error())
	}
	if _, err := normalizer.Normalize(cfg); err != nil {
		return "", cfg, fiber.NewError(generatorStatus(err), err.Error())
	}
	return req.Name, cfg, nil
}

func repoError(c fiber.Ctx, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "config not found"})
	}
	log.Printf("[STORE] Repository error: %v", err)
	return c.Status(500).JSON(fiber.Map{"error": "storage failure"})
}

func generatorError(c fiber.Ctx, err error) error {
	return c.Status(generatorStatus(err)).JSON(fiber.Map{"error": err.Error()})
}

func generatorStatus(err error) int {
	switch {
	case errors.Is(err, genmodels.ErrInvalidConfig):
		return fiber.StatusBadRequest
	case errors.Is(err, genmodels.ErrUnsupportedRoofType):
		return fiber.StatusUnprocessableEntity
	}
	return fiber.StatusInternalServerError
}
