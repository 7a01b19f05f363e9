package handlers

import (
	"acoustic-planner/internal/placement/interaction"
	"acoustic-planner/internal/placement/models"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// ============================================================
// Session Handlers
// ============================================================

func (h *Handler) CreateSession(c fiber.Ctx) error {
	id, state := h.sessions.Create()
	h.log.WithField("session", id).Debug("session created")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id, "state": state})
}

type pointerRequest struct {
	footprintInput
	Kind     string            `json:"kind"`
	Point    models.PointerHit `json:"point"`
	Openings []models.Opening  `json:"openings"`
}

type pointerResponse struct {
	State    interaction.State        `json:"state"`
	Release  *interaction.Release     `json:"release,omitempty"`
	Displays []models.DisplayPosition `json:"displays"`
}

type pointerEvent func(interaction.State, models.PointerHit, interaction.Scene) (interaction.State, *interaction.Release)

var pointerEvents = map[string]pointerEvent{
	"move": func(s interaction.State, hit models.PointerHit, scene interaction.Scene) (interaction.State, *interaction.Release) {
		return interaction.PointerMove(s, hit, scene), nil
	},
	"down": func(s interaction.State, hit models.PointerHit, scene interaction.Scene) (interaction.State, *interaction.Release) {
		return interaction.PointerDown(s, hit, scene), nil
	},
	"up": interaction.PointerUp,
	"cancel": func(s interaction.State, _ models.PointerHit, _ interaction.Scene) (interaction.State, *interaction.Release) {
		return interaction.Cancel(s), nil
	},
}

// Pointer применяет событие указателя к состоянию сессии.
func (h *Handler) Pointer(c fiber.Ctx) error {
	id := c.Params("id")
	if _, ok := h.sessions.Get(id); !ok {
		return notFound(c, "session not found")
	}

	var req pointerRequest
	if err := decode(c, &req); err != nil {
		return badRequest(c, err)
	}
	fp, err := req.resolve()
	if err != nil {
		return badRequest(c, err)
	}
	apply, ok := pointerEvents[req.Kind]
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "kind must be move, down, up or cancel"})
	}
	scene := interaction.Scene{Footprint: fp, Openings: req.Openings}

	var release *interaction.Release
	state, ok := h.sessions.Update(id, func(s interaction.State) interaction.State {
		s, release = apply(s, req.Point, scene)
		return s
	})
	if !ok {
		return notFound(c, "session not found")
	}

	if release != nil {
		h.log.WithFields(logrus.Fields{
			"session":  id,
			"opening":  release.Index,
			"wall":     release.WallIndex,
			"position": release.Position,
			"valid":    release.Result.Valid,
		}).Info("opening released")
	}

	return c.JSON(pointerResponse{
		State:    state,
		Release:  release,
		Displays: interaction.DisplayPositions(state, scene),
	})
}

func (h *Handler) DeleteSession(c fiber.Ctx) error {
	if !h.sessions.Delete(c.Params("id")) {
		return notFound(c, "session not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
