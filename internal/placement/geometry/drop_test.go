package geometry

import (
	"math"
	"testing"

	"acoustic-planner/internal/placement/models"
)

func rotateAboutOrigin(p models.Point2D, angle float64) models.Point2D {
	sin, cos := math.Sin(angle), math.Cos(angle)
	return models.Point2D{X: p.X*cos - p.Z*sin, Z: p.X*sin + p.Z*cos}
}

func TestCalculateTemplateDropPosition_VerticalWall(t *testing.T) {
	hit := models.PointerHit{WorldX: 10, WorldY: 1, WorldZ: 5}
	got, ok := CalculateTemplateDropPosition(hit, 1, square(), 3)
	if !ok {
		t.Fatal("expected a drop position")
	}
	if !near(got, 0.5) {
		t.Errorf("position = %v, want 0.5", got)
	}
}

func TestCalculateTemplateDropPosition_MeasuredFromStartVertex(t *testing.T) {
	cases := []struct {
		name string
		wall []models.Point2D
		hit  models.PointerHit
		want float64
	}{
		{"forward", []models.Point2D{{X: 0, Z: 0}, {X: 10, Z: 0}}, models.PointerHit{WorldX: 2, WorldZ: 0.4}, 0.2},
		{"reversed", []models.Point2D{{X: 10, Z: 0}, {X: 0, Z: 0}}, models.PointerHit{WorldX: 2, WorldZ: -0.4}, 0.8},
		{"diagonal", []models.Point2D{{X: 0, Z: 0}, {X: 3, Z: 4}}, models.PointerHit{WorldX: 1.5, WorldY: 2, WorldZ: 2}, 0.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := CalculateTemplateDropPosition(tc.hit, 0, tc.wall, 2.7)
			if !ok {
				t.Fatal("expected a drop position")
			}
			if !near(got, tc.want) {
				t.Errorf("position = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCalculateTemplateDropPosition_RotationInvariant(t *testing.T) {
	wall := []models.Point2D{{X: 1, Z: -2}, {X: 9, Z: 1}, {X: 4, Z: 6}}
	hit := models.Point2D{X: 3.5, Z: 0.2}

	base, ok := CalculateTemplateDropPosition(models.PointerHit{WorldX: hit.X, WorldY: 1, WorldZ: hit.Z}, 0, wall, 3)
	if !ok {
		t.Fatal("expected a drop position")
	}

	for _, angle := range []float64{0.3, math.Pi / 2, 2.1, math.Pi, -0.7, 5.9} {
		rotated := make([]models.Point2D, len(wall))
		for i, p := range wall {
			rotated[i] = rotateAboutOrigin(p, angle)
		}
		h := rotateAboutOrigin(hit, angle)

		got, ok := CalculateTemplateDropPosition(models.PointerHit{WorldX: h.X, WorldY: 1, WorldZ: h.Z}, 0, rotated, 3)
		if !ok {
			t.Fatalf("angle %v: expected a drop position", angle)
		}
		if math.Abs(got-base) > 1e-9 {
			t.Errorf("angle %v: position = %v, want %v", angle, got, base)
		}
	}
}

func TestCalculateTemplateDropPosition_ClampsToDropMargin(t *testing.T) {
	fp := square()
	cases := []struct {
		x    float64
		want float64
	}{
		{0.1, 0.1},
		{-3, 0.1},
		{9.95, 0.9},
		{25, 0.9},
	}
	for _, tc := range cases {
		got, ok := CalculateTemplateDropPosition(models.PointerHit{WorldX: tc.x}, 0, fp, 3)
		if !ok {
			t.Fatalf("x=%v: expected a drop position", tc.x)
		}
		if !near(got, tc.want) {
			t.Errorf("x=%v: position = %v, want %v", tc.x, got, tc.want)
		}
	}
}

func TestCalculateTemplateDropPosition_NoResult(t *testing.T) {
	hit := models.PointerHit{WorldX: 1, WorldZ: 1}
	if _, ok := CalculateTemplateDropPosition(hit, 7, square(), 3); ok {
		t.Error("out of range wall index should give no result")
	}
	if _, ok := CalculateTemplateDropPosition(hit, 0, nil, 3); ok {
		t.Error("empty footprint should give no result")
	}
	degenerate := []models.Point2D{{X: 4, Z: 4}, {X: 4, Z: 4}, {X: 8, Z: 4}}
	if _, ok := CalculateTemplateDropPosition(hit, 0, degenerate, 3); ok {
		t.Error("zero-length wall should give no result")
	}
}
