package footprint

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"acoustic-planner/internal/placement/models"
)

// ============================================================
// Footprint Path Parser
// ============================================================

var commandRe = regexp.MustCompile(`([MmLlHhVvZz])([^MmLlHhVvZz]*)`)

// ParsePath разбирает SVG path контура здания в список вершин.
// Координата y из SVG становится z на плоскости построения.
// Контур замкнут неявно, поэтому Z не дублирует первую вершину.
func ParsePath(d string) ([]models.Point2D, error) {
	d = strings.TrimSpace(d)
	if d == "" {
		return nil, fmt.Errorf("empty path")
	}

	var points []models.Point2D
	var x, z float64

	add := func() {
		p := models.Point2D{X: x, Z: z}
		if len(points) > 0 && points[len(points)-1] == p {
			return
		}
		points = append(points, p)
	}

	for _, match := range commandRe.FindAllStringSubmatch(d, -1) {
		cmd := match[1]
		coords, err := parseCoords(match[2])
		if err != nil {
			return nil, fmt.Errorf("command %s: %w", cmd, err)
		}
		if err := checkArity(cmd, coords); err != nil {
			return nil, err
		}

		switch cmd {
		case "M", "L":
			for i := 0; i+1 < len(coords); i += 2 {
				x, z = coords[i], coords[i+1]
				add()
			}
		case "m", "l":
			for i := 0; i+1 < len(coords); i += 2 {
				x += coords[i]
				z += coords[i+1]
				add()
			}
		case "H":
			for _, c := range coords {
				x = c
				add()
			}
		case "h":
			for _, c := range coords {
				x += c
				add()
			}
		case "V":
			for _, c := range coords {
				z = c
				add()
			}
		case "v":
			for _, c := range coords {
				z += c
				add()
			}
		case "Z", "z":
			// Возвращаемся к первой точке, саму точку не добавляем
			if len(points) > 0 {
				x, z = points[0].X, points[0].Z
			}
		}
	}

	if len(points) > 1 && points[0] == points[len(points)-1] {
		points = points[:len(points)-1]
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("path has no vertices")
	}

	return points, nil
}

func parseCoords(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	// Разделитель: запятая или пробел
	s = strings.ReplaceAll(s, ",", " ")
	parts := strings.Fields(s)

	coords := make([]float64, 0, len(parts))
	for _, part := range parts {
		val, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", part, err)
		}
		coords = append(coords, val)
	}

	return coords, nil
}

func checkArity(cmd string, coords []float64) error {
	switch cmd {
	case "M", "m", "L", "l":
		if len(coords) == 0 || len(coords)%2 != 0 {
			return fmt.Errorf("command %s: expected coordinate pairs, got %d numbers", cmd, len(coords))
		}
	case "H", "h", "V", "v":
		if len(coords) == 0 {
			return fmt.Errorf("command %s: missing coordinate", cmd)
		}
	case "Z", "z":
		if len(coords) != 0 {
			return fmt.Errorf("command %s: takes no coordinates", cmd)
		}
	}
	return nil
}
