package handlers

import (
	"errors"

	"acoustic-planner/internal/catalog/repository"
	"acoustic-planner/internal/placement/geometry"
	"acoustic-planner/internal/placement/interaction"
	"acoustic-planner/internal/placement/models"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// ============================================================
// Template Handlers
// ============================================================

func (h *Handler) ListTemplates(c fiber.Ctx) error {
	list, err := h.catalog.List(c.Context())
	if err != nil {
		h.log.WithError(err).Error("list templates")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list templates"})
	}
	if list == nil {
		list = []models.Template{}
	}
	return c.JSON(list)
}

func (h *Handler) GetTemplate(c fiber.Ctx) error {
	tpl, ok, err := h.lookupTemplate(c)
	if !ok {
		return err
	}
	return c.JSON(tpl)
}

type templateDropRequest struct {
	footprintInput
	Point     models.PointerHit `json:"point"`
	WallIndex int               `json:"wallIndex"`
	Openings  []models.Opening  `json:"openings"`
	Height    float64           `json:"height"`
}

type templateDropResponse struct {
	Opening models.Opening            `json:"opening"`
	Result  geometry.ValidationResult `json:"result"`
}

// DropTemplate сбрасывает шаблон из каталога на стену и проверяет место.
func (h *Handler) DropTemplate(c fiber.Ctx) error {
	tpl, ok, err := h.lookupTemplate(c)
	if !ok {
		return err
	}

	var req templateDropRequest
	if err := decode(c, &req); err != nil {
		return badRequest(c, err)
	}
	fp, err := req.resolve()
	if err != nil {
		return badRequest(c, err)
	}

	scene := interaction.Scene{Footprint: fp, Openings: req.Openings}
	opening, res, ok := interaction.DropTemplate(*tpl, req.Point, req.WallIndex, scene, req.Height)
	if !ok {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "wall cannot take a drop"})
	}

	h.log.WithFields(logrus.Fields{
		"template": tpl.Name,
		"wall":     opening.WallIndex,
		"position": opening.Position,
		"valid":    res.Valid,
	}).Info("template dropped")

	return c.JSON(templateDropResponse{Opening: opening, Result: res})
}

// lookupTemplate при неудаче уже записал ответ и вернул false.
func (h *Handler) lookupTemplate(c fiber.Ctx) (*models.Template, bool, error) {
	tpl, err := h.catalog.GetByName(c.Context(), c.Params("name"))
	if err == nil {
		return tpl, true, nil
	}
	if errors.Is(err, repository.ErrNotFound) {
		return nil, false, notFound(c, "template not found")
	}
	h.log.WithError(err).Error("get template")
	return nil, false, c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load template"})
}
