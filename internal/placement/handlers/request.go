package handlers

import (
	"encoding/json"
	"errors"
	"fmt"

	"acoustic-planner/internal/placement/footprint"
	"acoustic-planner/internal/placement/models"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Request decoding
// ============================================================

// footprintInput контур передается списком вершин либо SVG path.
type footprintInput struct {
	Footprint []models.Point2D `json:"footprint"`
	Path      string           `json:"path"`
}

func (f footprintInput) resolve() ([]models.Point2D, error) {
	points := f.Footprint
	if f.Path != "" {
		parsed, err := footprint.ParsePath(f.Path)
		if err != nil {
			return nil, fmt.Errorf("invalid path: %w", err)
		}
		points = parsed
	}
	if len(points) < 2 {
		return nil, errors.New("footprint requires at least 2 vertices")
	}
	return points, nil
}

func decode(c fiber.Ctx, dst any) error {
	if len(c.Body()) == 0 {
		return errors.New("body required")
	}
	if err := json.Unmarshal(c.Body(), dst); err != nil {
		return errors.New("invalid JSON payload")
	}
	return nil
}

func badRequest(c fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
}

func notFound(c fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": msg})
}
