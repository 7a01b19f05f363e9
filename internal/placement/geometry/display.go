package geometry

import (
	"acoustic-planner/internal/placement/models"
)

// ============================================================
// Display position
// ============================================================

// ResolveDisplayPosition координаты проема для текущего кадра.
// Во время перетаскивания с готовым превью возвращается превью как есть,
// иначе позиция интерполируется по сохраненной стене. Отсутствующее превью
// при перетаскивании не ошибка.
func ResolveDisplayPosition(o models.Opening, footprint []models.Point2D, dragging bool, preview *models.WallPosition) models.DisplayPosition {
	if dragging && preview != nil {
		return models.DisplayPosition{X: preview.WorldX, Y: preview.WorldY, Z: preview.WorldZ}
	}

	out := models.DisplayPosition{Y: o.CenterY()}
	if p, ok := PointAt(footprint, o.WallIndex, o.Position); ok {
		out.X = p.X
		out.Z = p.Z
	}
	return out
}
