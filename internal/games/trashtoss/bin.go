package trashtoss

import (
	"github.com/vovakirdan/trash-toss/internal/config"
	"github.com/vovakirdan/trash-toss/internal/core"
)

// Bin is the static target. Its position is the center of its base.
type Bin struct {
	Pos          core.Vec2
	Width        float64
	Height       float64
	OpeningWidth float64
}

// NewBin creates a bin standing at base with the dimensions from cfg.
func NewBin(base core.Vec2, cfg config.TossBin) Bin {
	return Bin{
		Pos:          base,
		Width:        cfg.Width,
		Height:       cfg.Height,
		OpeningWidth: cfg.OpeningWidth,
	}
}

// Mouth returns the region an item's center must enter to count as binned.
func (b Bin) Mouth() core.RectF {
	return core.RectF{
		Left:   b.Pos.X - b.Width/2,
		Right:  b.Pos.X + b.Width/2,
		Top:    b.Pos.Y - b.Height,
		Bottom: b.Pos.Y,
	}
}

// MouthCenter returns the middle of the opening, where celebrations start.
func (b Bin) MouthCenter() core.Vec2 {
	return core.V(b.Pos.X, b.Pos.Y-b.Height)
}
