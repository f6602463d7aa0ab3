package trashtoss

import (
	"math"

	"github.com/vovakirdan/trash-toss/internal/core"
)

// HUDRows is the number of screen rows reserved above the playfield.
const HUDRows = 1

// Viewport maps world coordinates onto a grid of screen cells. The world is
// stretched to fill the playfield rows below the HUD.
type Viewport struct {
	cols, rows int
	worldW     float64
	worldH     float64
}

// NewViewport creates a mapping for a cols x rows screen.
func NewViewport(cols, rows int, worldW, worldH float64) Viewport {
	return Viewport{cols: cols, rows: rows, worldW: worldW, worldH: worldH}
}

func (v Viewport) fieldRows() int {
	return max(v.rows-HUDRows, 1)
}

func (v Viewport) scaleX() float64 {
	return float64(max(v.cols, 1)) / v.worldW
}

func (v Viewport) scaleY() float64 {
	return float64(v.fieldRows()) / v.worldH
}

// ToCell returns the cell containing world point p.
func (v Viewport) ToCell(p core.Vec2) (int, int) {
	x := int(math.Floor(p.X * v.scaleX()))
	y := int(math.Floor(p.Y*v.scaleY())) + HUDRows
	return x, y
}

// ToWorld returns the world point at the center of cell (x, y).
func (v Viewport) ToWorld(x, y int) core.Vec2 {
	return core.V(
		(float64(x)+0.5)/v.scaleX(),
		(float64(y-HUDRows)+0.5)/v.scaleY(),
	)
}

// CellRect returns the cells covered by a world rectangle.
func (v Viewport) CellRect(r core.RectF) core.Rect {
	x0, y0 := v.ToCell(core.V(r.Left, r.Top))
	x1, y1 := v.ToCell(core.V(r.Right, r.Bottom))
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}
