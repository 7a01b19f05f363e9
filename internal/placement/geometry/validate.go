package geometry

import (
	"acoustic-planner/internal/placement/models"
)

// ============================================================
// Placement validation
// ============================================================

type Reason string

const (
	ReasonOverlap     Reason = "overlap"
	ReasonOutOfBounds Reason = "out-of-bounds"
)

type ValidationResult struct {
	Valid  bool   `json:"valid"`
	Reason Reason `json:"reason,omitempty"`
}

func accept() ValidationResult {
	return ValidationResult{Valid: true}
}

func reject(r Reason) ValidationResult {
	return ValidationResult{Valid: false, Reason: r}
}

// ValidatePlacement проверяет, можно ли поставить candidate на его стену.
// Ширины нормализованы к длине стены. Пересечение проверяется раньше границ.
func ValidatePlacement(candidate models.Opening, existing []models.Opening) ValidationResult {
	return validate(candidate, existing, -1)
}

// ValidateMove проверяет перенос existing[index] на wallIndex/position.
// Размеры берутся у самого проема, он же исключается из проверки пересечений.
func ValidateMove(existing []models.Opening, index, wallIndex int, position float64) ValidationResult {
	if index < 0 || index >= len(existing) {
		return reject(ReasonOutOfBounds)
	}
	candidate := existing[index]
	candidate.WallIndex = wallIndex
	candidate.Position = position
	return validate(candidate, existing, index)
}

func validate(candidate models.Opening, existing []models.Opening, skip int) ValidationResult {
	half := candidate.Width / 2
	start := candidate.Position - half
	end := candidate.Position + half

	for i, other := range existing {
		if i == skip || other.WallIndex != candidate.WallIndex {
			continue
		}
		otherStart := other.Position - other.Width/2
		otherEnd := other.Position + other.Width/2
		if !(end < otherStart || start > otherEnd) {
			return reject(ReasonOverlap)
		}
	}

	if candidate.Position < half || candidate.Position > 1-half {
		return reject(ReasonOutOfBounds)
	}
	return accept()
}
