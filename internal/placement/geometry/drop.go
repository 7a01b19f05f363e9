package geometry

import (
	"math"

	"acoustic-planner/internal/placement/models"

	"github.com/go-gl/mathgl/mgl64"
)

// ============================================================
// Template drop
// ============================================================

// CalculateTemplateDropPosition переводит точку сброса в локальную систему
// стены wallIndex (начало в середине стены, ось x вдоль стены) и возвращает
// нормализованную позицию, прижатую к DropMargin.
//
// height нужен только для вертикального центра начала координат.
func CalculateTemplateDropPosition(hit models.PointerHit, wallIndex int, footprint []models.Point2D, height float64) (float64, bool) {
	p1, p2, ok := WallSegment(footprint, wallIndex)
	if !ok {
		return 0, false
	}

	dx := p2.X - p1.X
	dz := p2.Z - p1.Z
	if isDegenerate(dx*dx + dz*dz) {
		return 0, false
	}

	length := math.Hypot(dx, dz)
	angle := math.Atan2(dz, dx)
	origin := mgl64.Vec3{(p1.X + p2.X) / 2, height / 2, (p1.Z + p2.Z) / 2}

	local := mgl64.Vec3{hit.WorldX, hit.WorldY, hit.WorldZ}.Sub(origin)
	// Поворот mgl64 вокруг Y переводит направление (cos, sin) в плоскости x-z на +x.
	local = mgl64.Rotate3DY(angle).Mul3x1(local)

	rel := (local.X() + length/2) / length
	return DropMargin.Clamp(rel), true
}
