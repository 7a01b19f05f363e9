package handlers

import (
	"context"
	"strconv"

	"acoustic-planner/internal/placement/geometry"
	"acoustic-planner/internal/placement/models"
	"acoustic-planner/internal/placement/session"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// ============================================================
// Placement Handler
// ============================================================

// Catalog источник шаблонов проемов.
type Catalog interface {
	List(ctx context.Context) ([]models.Template, error)
	GetByName(ctx context.Context, name string) (*models.Template, error)
	Ping(ctx context.Context) error
}

type Handler struct {
	catalog  Catalog
	sessions *session.Manager
	log      logrus.FieldLogger
}

func New(catalog Catalog, sessions *session.Manager, log logrus.FieldLogger) *Handler {
	return &Handler{
		catalog:  catalog,
		sessions: sessions,
		log:      log,
	}
}

type closestRequest struct {
	footprintInput
	Point   models.PointerHit `json:"point"`
	CenterY float64           `json:"centerY"`
	Mode    string            `json:"mode"`
}

// ClosestWall ищет ближайшую к точке стену.
// mode "reposition" ограничивает позицию отступами перетаскивания, "nearest" нет.
func (h *Handler) ClosestWall(c fiber.Ctx) error {
	var req closestRequest
	if err := decode(c, &req); err != nil {
		return badRequest(c, err)
	}
	fp, err := req.resolve()
	if err != nil {
		return badRequest(c, err)
	}

	margin := geometry.RepositionMargin
	switch req.Mode {
	case "", "reposition":
	case "nearest":
		margin = geometry.FullRange
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "mode must be reposition or nearest"})
	}

	wp, ok := geometry.FindClosestWall(req.Point.WorldX, req.Point.WorldZ, fp, req.CenterY, margin)
	if !ok {
		return notFound(c, "no selectable wall")
	}
	return c.JSON(wp)
}

type dropRequest struct {
	footprintInput
	Point  models.PointerHit `json:"point"`
	Height float64           `json:"height"`
}

// DropPosition нормализованная позиция точки сброса на известной стене.
func (h *Handler) DropPosition(c fiber.Ctx) error {
	wallIndex, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "wall index must be an integer"})
	}

	var req dropRequest
	if err := decode(c, &req); err != nil {
		return badRequest(c, err)
	}
	fp, err := req.resolve()
	if err != nil {
		return badRequest(c, err)
	}

	pos, ok := geometry.CalculateTemplateDropPosition(req.Point, wallIndex, fp, req.Height)
	if !ok {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "wall cannot take a drop"})
	}
	return c.JSON(fiber.Map{"position": pos})
}

type validateRequest struct {
	Candidate models.Opening   `json:"candidate"`
	Openings  []models.Opening `json:"openings"`
}

// ValidatePlacement отказ в размещении не ошибка, ответ всегда 200.
func (h *Handler) ValidatePlacement(c fiber.Ctx) error {
	var req validateRequest
	if err := decode(c, &req); err != nil {
		return badRequest(c, err)
	}

	res := geometry.ValidatePlacement(req.Candidate, req.Openings)
	if !res.Valid {
		h.log.WithFields(logrus.Fields{
			"wall":   req.Candidate.WallIndex,
			"reason": res.Reason,
		}).Debug("placement rejected")
	}
	return c.JSON(res)
}

type displayRequest struct {
	footprintInput
	Opening  models.Opening       `json:"opening"`
	Dragging bool                 `json:"dragging"`
	Preview  *models.WallPosition `json:"preview"`
}

func (h *Handler) DisplayPosition(c fiber.Ctx) error {
	var req displayRequest
	if err := decode(c, &req); err != nil {
		return badRequest(c, err)
	}
	fp, err := req.resolve()
	if err != nil {
		return badRequest(c, err)
	}

	return c.JSON(geometry.ResolveDisplayPosition(req.Opening, fp, req.Dragging, req.Preview))
}
