package interaction

import (
	"math"

	"acoustic-planner/internal/placement/geometry"
	"acoustic-planner/internal/placement/models"
)

// ============================================================
// Pointer Handlers
// ============================================================

// PointerMove обновляет превью перетаскивания или подсветку проема.
func PointerMove(s State, hit models.PointerHit, scene Scene) State {
	if s.Dragging() {
		if s.DraggedIndex >= len(scene.Openings) {
			return NewState()
		}
		s.Preview = preview(s.DraggedIndex, hit, scene)
		s.Cursor = CursorGrabbing
		return s
	}

	return hover(s, hit, scene)
}

// PointerDown начинает перетаскивание проема под указателем.
// Реагирует только на основную кнопку.
func PointerDown(s State, hit models.PointerHit, scene Scene) State {
	if hit.Button != models.ButtonPrimary || s.Dragging() {
		return s
	}

	idx := pick(hit, scene)
	if idx == none {
		s.HoveredIndex = none
		s.Cursor = CursorDefault
		return s
	}

	return State{
		HoveredIndex: idx,
		DraggedIndex: idx,
		Cursor:       CursorGrabbing,
	}
}

// PointerUp завершает перетаскивание. Если проем двигали, возвращает
// Release с результатом проверки нового места. Место пересчитывается по
// точке отпускания и контуру из этого же события.
func PointerUp(s State, hit models.PointerHit, scene Scene) (State, *Release) {
	if !s.Dragging() {
		return s, nil
	}

	var rel *Release
	if s.Preview != nil && s.DraggedIndex < len(scene.Openings) {
		rel = &Release{
			Index:     s.DraggedIndex,
			WallIndex: s.Preview.WallIndex,
			Position:  s.Preview.Position,
			Result:    geometry.ValidationResult{Reason: geometry.ReasonOutOfBounds},
		}
		if wp := preview(s.DraggedIndex, hit, scene); wp != nil {
			rel.WallIndex = wp.WallIndex
			rel.Position = wp.Position
			rel.Result = geometry.ValidateMove(scene.Openings, s.DraggedIndex, wp.WallIndex, wp.Position)
		}
	}

	return hover(NewState(), hit, scene), rel
}

// Cancel сбрасывает перетаскивание без фиксации, например при уходе указателя.
func Cancel(State) State {
	return NewState()
}

// DisplayPositions координаты всех проемов для текущего кадра.
func DisplayPositions(s State, scene Scene) []models.DisplayPosition {
	out := make([]models.DisplayPosition, len(scene.Openings))
	for i, o := range scene.Openings {
		out[i] = geometry.ResolveDisplayPosition(o, scene.Footprint, s.DraggedIndex == i, s.Preview)
	}
	return out
}

// ============================================================
// Template Drop
// ============================================================

// DropTemplate строит новый проем из шаблона, сброшенного на стену wallIndex.
// Ширина шаблона в метрах переводится в доли длины стены.
func DropTemplate(t models.Template, hit models.PointerHit, wallIndex int, scene Scene, height float64) (models.Opening, geometry.ValidationResult, bool) {
	pos, ok := geometry.CalculateTemplateDropPosition(hit, wallIndex, scene.Footprint, height)
	if !ok {
		return models.Opening{}, geometry.ValidationResult{}, false
	}

	opening := models.Opening{
		WallIndex:    wallIndex,
		Position:     pos,
		Width:        t.Width / geometry.WallLength(scene.Footprint, wallIndex),
		Height:       t.Height,
		BottomOffset: t.BottomOffset,
		Type:         t.Type,
	}

	return opening, geometry.ValidatePlacement(opening, scene.Openings), true
}

// ============================================================
// Helpers
// ============================================================

// preview место перетаскиваемого проема под указателем, nil если стены нет.
func preview(index int, hit models.PointerHit, scene Scene) *models.WallPosition {
	o := scene.Openings[index]
	wp, ok := geometry.FindClosestWall(hit.WorldX, hit.WorldZ, scene.Footprint, o.CenterY(), geometry.RepositionMargin)
	if !ok {
		return nil
	}
	return &wp
}

func hover(s State, hit models.PointerHit, scene Scene) State {
	s.HoveredIndex = pick(hit, scene)
	if s.HoveredIndex == none {
		s.Cursor = CursorDefault
	} else {
		s.Cursor = CursorPointer
	}
	return s
}

// pick ищет проем, в пределах полуширины которого лежит точка.
// При нескольких кандидатах берется ближайший.
func pick(hit models.PointerHit, scene Scene) int {
	idx := none
	minDistSq := math.Inf(1)

	for i, o := range scene.Openings {
		halfWidth := o.Width * geometry.WallLength(scene.Footprint, o.WallIndex) / 2
		if halfWidth <= 0 {
			continue
		}

		d := geometry.ResolveDisplayPosition(o, scene.Footprint, false, nil)
		dx := hit.WorldX - d.X
		dz := hit.WorldZ - d.Z
		distSq := dx*dx + dz*dz
		if distSq <= halfWidth*halfWidth && distSq < minDistSq {
			minDistSq = distSq
			idx = i
		}
	}

	return idx
}
