package interaction

import (
	"acoustic-planner/internal/placement/geometry"
	"acoustic-planner/internal/placement/models"
)

// ============================================================
// Interaction State
// ============================================================

type Cursor string

const (
	CursorDefault  Cursor = "default"
	CursorPointer  Cursor = "pointer"
	CursorGrabbing Cursor = "grabbing"
)

const none = -1

// State состояние взаимодействия сцены между кадрами. Обработчики не
// меняют его на месте, а возвращают новое значение.
type State struct {
	HoveredIndex int                  `json:"hoveredIndex"`
	DraggedIndex int                  `json:"draggedIndex"`
	Preview      *models.WallPosition `json:"preview,omitempty"`
	Cursor       Cursor               `json:"cursor"`
}

func NewState() State {
	return State{HoveredIndex: none, DraggedIndex: none, Cursor: CursorDefault}
}

func (s State) Dragging() bool {
	return s.DraggedIndex != none
}

// Scene снимок стен и проемов на момент события.
type Scene struct {
	Footprint []models.Point2D `json:"footprint"`
	Openings  []models.Opening `json:"openings"`
}

// Release итог отпускания перетаскиваемого проема.
type Release struct {
	Index     int                       `json:"index"`
	WallIndex int                       `json:"wallIndex"`
	Position  float64                   `json:"position"`
	Result    geometry.ValidationResult `json:"result"`
}
