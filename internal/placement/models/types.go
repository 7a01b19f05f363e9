package models

// ============================================================
// Footprint
// ============================================================

// Point2D вершина контура здания на плоскости построения (x, z).
type Point2D struct {
	X float64 `json:"x"`
	Z float64 `json:"z"`
}

// ============================================================
// Openings
// ============================================================

type OpeningType string

const (
	OpeningDoor   OpeningType = "door"
	OpeningWindow OpeningType = "window"
)

// Opening дверь или окно, привязанные к стене.
// Position и Width выражены в долях длины стены.
type Opening struct {
	WallIndex    int         `json:"wallIndex"`
	Position     float64     `json:"position"`
	Width        float64     `json:"width"`
	Height       float64     `json:"height"`
	BottomOffset float64     `json:"bottomOffset"`
	Type         OpeningType `json:"type"`
}

// CenterY вертикальный центр проема.
func (o Opening) CenterY() float64 {
	return o.BottomOffset + o.Height/2
}

// Template заготовка проема из каталога. Размеры в метрах.
type Template struct {
	Name         string      `json:"name"`
	Type         OpeningType `json:"type"`
	Width        float64     `json:"width"`
	Height       float64     `json:"height"`
	BottomOffset float64     `json:"bottomOffset"`
}

// ============================================================
// Engine outputs
// ============================================================

type WallPosition struct {
	WallIndex int     `json:"wallIndex"`
	Position  float64 `json:"position"`
	WorldX    float64 `json:"worldX"`
	WorldY    float64 `json:"worldY"`
	WorldZ    float64 `json:"worldZ"`
	Distance  float64 `json:"distance"`
}

type DisplayPosition struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// ============================================================
// Pointer input
// ============================================================

// PointerHit точка попадания указателя в мировых координатах.
type PointerHit struct {
	WorldX float64 `json:"x"`
	WorldY float64 `json:"y"`
	WorldZ float64 `json:"z"`
	Button int     `json:"button"`
}

const ButtonPrimary = 0
