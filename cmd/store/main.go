package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"hangar-service/internal/common/config"
	"hangar-service/internal/common/middleware"
	"hangar-service/internal/store/handlers"
	"hangar-service/internal/store/repository"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

// ============================================================
// Store Service
// ============================================================

func main() {
	config.LoadDotEnv(".env")
	cfg := config.Load()
	if os.Getenv("PORT") == "" {
		cfg.Port = "3002"
	}

	db, err := repository.OpenSQLite(cfg.StoreDBPath)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	repo := repository.New(db)
	if err := repo.Init(context.Background(), cfg.MigrationsPath); err != nil {
		log.Fatalf("init db: %v", err)
	}

	storeHandler := handlers.NewStoreHandler(repo)

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "Hangar Store",
		ErrorHandler: middleware.ErrorHandler,
	})

	// ============================================================
	// Global Middleware
	// ============================================================

	app.Use(recover.New())
	app.Use(middleware.Logger())

	// ============================================================
	// Health Check Routes
	// ============================================================

	app.Get("/health/live", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "alive"})
	})

	app.Get("/health/ready", storeHandler.Ready)

	// ============================================================
	// Store Routes
	// ============================================================

	app.Post("/configs", storeHandler.CreateConfig)
	app.Get("/configs", storeHandler.ListConfigs)
	app.Get("/configs/:id", storeHandler.GetConfig)
	app.Put("/configs/:id", storeHandler.UpdateConfig)
	app.Delete("/configs/:id", storeHandler.DeleteConfig)
	app.Get("/configs/:id/scene", storeHandler.Scene)

	app.Post("/status", storeHandler.CreateStatusCheck)
	app.Get("/status", storeHandler.ListStatusChecks)

	// ============================================================
	// Server Start
	// ============================================================

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting Store Service on %s (env: %s, db: %s)", addr, cfg.Environment, cfg.StoreDBPath)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
