package main

import (
	"context"
	"fmt"
	"time"

	"acoustic-planner/internal/catalog/repository"
	"acoustic-planner/internal/common/config"
	"acoustic-planner/internal/common/middleware"
	"acoustic-planner/internal/placement/handlers"
	"acoustic-planner/internal/placement/session"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/sirupsen/logrus"
)

// ============================================================
// Placement Service
// ============================================================

func main() {
	cfg := config.Load()
	log := middleware.NewLogger(cfg.LogLevel)

	db, err := repository.OpenSQLite(cfg.CatalogDBPath)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	catalog := repository.New(db)
	if err := catalog.Init(context.Background()); err != nil {
		log.Fatalf("init db: %v", err)
	}

	handler := handlers.New(catalog, session.NewManager(), log.WithField("service", "placement"))

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "Placement Service",
	})

	// ============================================================
	// Global Middleware
	// ============================================================

	app.Use(recover.New())
	app.Use(middleware.Logger(log))
	app.Use(middleware.CORS(cfg.CORSOrigins))

	// ============================================================
	// Routes
	// ============================================================

	handler.Register(app)

	// ============================================================
	// Server Start
	// ============================================================

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.WithFields(logrus.Fields{
		"addr": addr,
		"env":  cfg.Environment,
		"db":   cfg.CatalogDBPath,
	}).Info("starting placement service")

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
