package geometry

import (
	"math"

	"acoustic-planner/internal/placement/models"
)

// ============================================================
// Closest wall search
// ============================================================

// FindClosestWall ищет стену, ближайшую к точке (x, z), и нормализованную
// позицию точки на ней, прижатую к m. Ось y не участвует в поиске,
// centerY просто переносится в результат.
//
// Вырожденные стены пропускаются. Возвращает false, если выбрать нечего.
func FindClosestWall(x, z float64, footprint []models.Point2D, centerY float64, m Margin) (models.WallPosition, bool) {
	n := len(footprint)

	best := -1
	bestT := 0.0
	bestDistSq := math.Inf(1)

	for i := 0; i < n; i++ {
		p1 := footprint[i]
		p2 := footprint[(i+1)%n]

		wx := p2.X - p1.X
		wz := p2.Z - p1.Z
		lenSq := wx*wx + wz*wz
		if isDegenerate(lenSq) {
			continue
		}

		t := ((x-p1.X)*wx + (z-p1.Z)*wz) / lenSq
		t = m.Clamp(t)

		distSq := distanceSquared(x, z, p1.X+t*wx, p1.Z+t*wz)
		if distSq < bestDistSq {
			bestDistSq = distSq
			best = i
			bestT = t
		}
	}

	if best < 0 {
		return models.WallPosition{}, false
	}

	p := lerp(footprint[best], footprint[(best+1)%n], bestT)
	return models.WallPosition{
		WallIndex: best,
		Position:  bestT,
		WorldX:    p.X,
		WorldY:    centerY,
		WorldZ:    p.Z,
		Distance:  math.Sqrt(bestDistSq),
	}, true
}

// NearestWall ближайшая стена без ограничения позиции.
func NearestWall(x, z float64, footprint []models.Point2D) (models.WallPosition, bool) {
	return FindClosestWall(x, z, footprint, 0, FullRange)
}
