package handlers

import (
	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Routes
// ============================================================

func (h *Handler) Register(app fiber.Router) {
	app.Get("/health/live", h.LivenessProbe)
	app.Get("/health/ready", h.ReadinessProbe)

	api := app.Group("/api/v1")

	api.Post("/walls/closest", h.ClosestWall)
	api.Post("/walls/:index/drop", h.DropPosition)
	api.Post("/placements/validate", h.ValidatePlacement)
	api.Post("/openings/display", h.DisplayPosition)

	api.Get("/templates", h.ListTemplates)
	api.Get("/templates/:name", h.GetTemplate)
	api.Post("/templates/:name/drop", h.DropTemplate)

	api.Post("/sessions", h.CreateSession)
	api.Post("/sessions/:id/pointer", h.Pointer)
	api.Delete("/sessions/:id", h.DeleteSession)
}
