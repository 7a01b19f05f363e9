package geometry

import (
	"acoustic-planner/internal/placement/models"
)

// ============================================================
// Vector primitives
// ============================================================

func sub(a, b models.Point2D) models.Point2D {
	return models.Point2D{X: a.X - b.X, Z: a.Z - b.Z}
}

func dot(a, b models.Point2D) float64 {
	return a.X*b.X + a.Z*b.Z
}

func lengthSquared(v models.Point2D) float64 {
	return dot(v, v)
}

func distanceSquared(ax, az, bx, bz float64) float64 {
	dx := ax - bx
	dz := az - bz
	return dx*dx + dz*dz
}

func lerp(a, b models.Point2D, t float64) models.Point2D {
	return models.Point2D{
		X: a.X + t*(b.X-a.X),
		Z: a.Z + t*(b.Z-a.Z),
	}
}

// isDegenerate только точный ноль: контур может быть задан в любом масштабе.
func isDegenerate(lenSq float64) bool {
	return lenSq == 0
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
