package handlers

import (
	"encoding/json"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Status Checks
// ============================================================

type statusRequest struct {
	ClientName string `json:"client_name" validate:"required"`
}

// CreateStatusCheck записывает отметку клиента и возвращает её с id и временем.
func (h *StoreHandler) CreateStatusCheck(c fiber.Ctx) error {
	var req statusRequest
	if len(c.Body()) > 0 {
		if err := json.Unmarshal(c.Body(), &req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid json")
		}
	}
	req.ClientName = strings.TrimSpace(req.ClientName)
	if err := h.validate.Struct(req); err != nil {
		return err
	}

	check, err := h.repo.CreateStatusCheck(c.Context(), req.ClientName)
	if err != nil {
		log.Printf("[STORE] Status check error: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to save status check"})
	}
	return c.JSON(check)
}

func (h *StoreHandler) ListStatusChecks(c fiber.Ctx) error {
	checks, err := h.repo.ListStatusChecks(c.Context(), queryInt(c, "limit", 1000))
	if err != nil {
		log.Printf("[STORE] List status error: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to list status checks"})
	}
	return c.JSON(checks)
}

// Ready проверяет соединение с базой.
func (h *StoreHandler) Ready(c fiber.Ctx) error {
	ctx := c.Context()
	if err := h.repo.Ping(ctx); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "not ready", "error": err.Error()})
	}
	scenes, err := h.repo.CountScenes(ctx)
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "not ready", "error": err.Error()})
	}
	return c.JSON(fiber.Map{"status": "ready", "cached_scenes": scenes})
}

func queryInt(c fiber.Ctx, key string, defaultVal int) int {
	if v, err := strconv.Atoi(c.Query(key)); err == nil {
		return v
	}
	return defaultVal
}
