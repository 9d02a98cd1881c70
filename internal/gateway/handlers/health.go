package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Health Check Handlers
// ============================================================

var probeClient = &http.Client{Timeout: 2 * time.Second}

// LivenessProbe проверяет, что приложение работает
func LivenessProbe(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "alive",
	})
}

// ReadinessProbe опрашивает /health/live у каждого сервиса за шлюзом.
func ReadinessProbe(upstreams map[string]string) fiber.Handler {
	return func(c fiber.Ctx) error {
		services := fiber.Map{}
		ready := true
		for name, baseURL := range upstreams {
			if err := ping(baseURL + "/health/live"); err != nil {
				services[name] = err.Error()
				ready = false
				continue
			}
			services[name] = "ok"
		}

		status := fiber.StatusOK
		state := "ready"
		if !ready {
			status = fiber.StatusServiceUnavailable
			state = "degraded"
		}
		return c.Status(status).JSON(fiber.Map{
			"status":   state,
			"services": services,
		})
	}
}

// StartupProbe проверяет, что приложение успешно запустилось
func StartupProbe(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "started",
	})
}

func ping(url string) error {
	resp, err := probeClient.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fiber.NewError(resp.StatusCode, "upstream unhealthy: "+resp.Status)
	}
	return nil
}
