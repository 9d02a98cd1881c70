package main

import (
	"fmt"
	"log"
	"time"

	"hangar-service/internal/common/config"
	"hangar-service/internal/common/middleware"
	"hangar-service/internal/gateway/handlers"
	"hangar-service/internal/gateway/proxy"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

// ============================================================
// API Gateway
// ============================================================

func main() {
	config.LoadDotEnv(".env")
	cfg := config.Load()

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "Hangar API Gateway",
		ErrorHandler: middleware.ErrorHandler,
	})

	// ============================================================
	// Global Middleware
	// ============================================================

	app.Use(recover.New())
	app.Use(middleware.Logger())
	app.Use(middleware.CORS())

	// ============================================================
	// Health Check Routes
	// ============================================================

	app.Get("/health/live", handlers.LivenessProbe)
	app.Get("/health/ready", handlers.ReadinessProbe(map[string]string{
		"generator": cfg.GeneratorURL,
		"store":     cfg.StoreURL,
	}))
	app.Get("/health/startup", handlers.StartupProbe)

	docs := handlers.NewDocs("docs/hangar.openapi.yaml", "Hangar API")
	app.Get("/docs/openapi.yaml", docs.Spec)
	app.Get("/docs", docs.UI)

	// ============================================================
	// API Routes
	// ============================================================

	api := app.Group("/api/v1")

	api.Get("/", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Hello World",
			"status":  "ok",
		})
	})

	// Generator Service
	api.Post("/generate", proxy.ProxyTo(cfg.GeneratorURL+"/generate"))
	api.Post("/render", proxy.ProxyTo(cfg.GeneratorURL+"/render"))
	api.Get("/presets", proxy.ProxyTo(cfg.GeneratorURL+"/presets"))
	api.Get("/presets/:name", proxy.Prefix(cfg.GeneratorURL, "/api/v1"))

	// Store Service
	configs := proxy.Prefix(cfg.StoreURL, "/api/v1")
	api.Get("/configs", configs)
	api.Post("/configs", configs)
	api.Get("/configs/:id", configs)
	api.Put("/configs/:id", configs)
	api.Delete("/configs/:id", configs)
	api.Get("/configs/:id/scene", configs)
	api.Get("/status", proxy.ProxyTo(cfg.StoreURL+"/status"))
	api.Post("/status", proxy.ProxyTo(cfg.StoreURL+"/status"))

	// ============================================================
	// Server Start
	// ============================================================

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting API Gateway on %s (env: %s)", addr, cfg.Environment)
	log.Printf("Proxying generator to %s, store to %s", cfg.GeneratorURL, cfg.StoreURL)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
