package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hangar-service/internal/common/config"
	"hangar-service/internal/common/middleware"
	"hangar-service/internal/generator/handlers"
	"hangar-service/internal/generator/service"
	"hangar-service/internal/generator/stream"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

// ============================================================
// Generator Service
// ============================================================

func main() {
	config.LoadDotEnv(".env")
	cfg := config.Load()
	if os.Getenv("PORT") == "" {
		cfg.Port = "3001"
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cache := service.NewSceneCache(cfg.CacheSize)
	generatorHandler := handlers.NewGeneratorHandler(cache)

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "Hangar Generator",
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

	app.Get("/health/live", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "alive"})
	})

	app.Get("/health/ready", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ready", "cached_scenes": cache.Len()})
	})

	// ============================================================
	// Generator Routes
	// ============================================================

	app.Post("/generate", generatorHandler.Generate)
	app.Post("/render", generatorHandler.Render)
	app.Get("/presets", handlers.ListPresets)
	app.Get("/presets/:name", handlers.GetPreset)

	// ============================================================
	// Live preview
	// ============================================================

	streamServer := stream.NewServer(cache)
	go func() {
		if err := streamServer.ListenAndServe(ctx, ":"+cfg.StreamPort); err != nil {
			log.Printf("[STREAM] stopped: %v", err)
		}
	}()

	go func() {
		<-ctx.Done()
		_ = app.Shutdown()
	}()

	// ============================================================
	// Server Start
	// ============================================================

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting Generator Service on %s (env: %s, cache: %d)", addr, cfg.Environment, cfg.CacheSize)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
