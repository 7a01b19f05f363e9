package geometry

import (
	"math"

	"acoustic-planner/internal/placement/models"
)

// ============================================================
// Wall segments
// ============================================================

// Margin допустимый диапазон нормализованной позиции на стене.
type Margin struct {
	Lo float64
	Hi float64
}

// Clamp прижимает t к границам диапазона.
func (m Margin) Clamp(t float64) float64 {
	return clamp(t, m.Lo, m.Hi)
}

var (
	// RepositionMargin применяется при перетаскивании существующего проема.
	RepositionMargin = Margin{Lo: 0.05, Hi: 0.95}
	// DropMargin строже: новый проем не должен прижиматься к углу.
	DropMargin = Margin{Lo: 0.1, Hi: 0.9}
	// FullRange поиск ближайшей стены без намерения что-то ставить.
	FullRange = Margin{Lo: 0, Hi: 1}
)

// WallSegment возвращает концы стены i. Контур замкнут: последняя
// вершина соединяется с первой.
func WallSegment(footprint []models.Point2D, i int) (models.Point2D, models.Point2D, bool) {
	n := len(footprint)
	if n == 0 || i < 0 || i >= n {
		return models.Point2D{}, models.Point2D{}, false
	}
	return footprint[i], footprint[(i+1)%n], true
}

// WallLength длина стены i, 0 для несуществующей стены.
func WallLength(footprint []models.Point2D, i int) float64 {
	p1, p2, ok := WallSegment(footprint, i)
	if !ok {
		return 0
	}
	return math.Sqrt(lengthSquared(sub(p2, p1)))
}

// ProjectOntoSegment скалярная проекция p на отрезок a→b без ограничения.
// Для сегмента нулевой длины возвращает false.
func ProjectOntoSegment(p, a, b models.Point2D) (float64, bool) {
	w := sub(b, a)
	lenSq := lengthSquared(w)
	if isDegenerate(lenSq) {
		return 0, false
	}
	return dot(sub(p, a), w) / lenSq, true
}

// PointAt точка на стене i при нормализованной позиции t.
func PointAt(footprint []models.Point2D, i int, t float64) (models.Point2D, bool) {
	p1, p2, ok := WallSegment(footprint, i)
	if !ok {
		return models.Point2D{}, false
	}
	return lerp(p1, p2, t), true
}
