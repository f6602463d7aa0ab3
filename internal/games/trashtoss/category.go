package trashtoss

import (
	"github.com/vovakirdan/trash-toss/internal/config"
	"github.com/vovakirdan/trash-toss/internal/core"
)

// Category is the kind of item being thrown.
type Category int

const (
	Paper Category = iota
	Snack
	MouseToy
	Confetti
)

// Material is the fixed physical and scoring profile of a category.
type Material struct {
	Drag   float64
	Bounce float64
	Radius float64
	Points int
	Glyph  rune
	Color  core.Color
}

var materials = [...]Material{
	Paper:    {Drag: 0.02, Bounce: 0.3, Radius: 12, Points: 1, Glyph: '▤', Color: core.ColorWhite},
	Snack:    {Drag: 0.01, Bounce: 0.5, Radius: 10, Points: 2, Glyph: '●', Color: core.ColorBrown},
	MouseToy: {Drag: 0.005, Bounce: 0.7, Radius: 15, Points: 5, Glyph: '&', Color: core.ColorGray},
	Confetti: {Drag: 0.05, Bounce: 0.2, Radius: 8, Points: 3, Glyph: '✱', Color: core.ColorBrightRed},
}

// Material returns the category's profile.
func (c Category) Material() Material {
	if c < Paper || c > Confetti {
		return materials[Paper]
	}
	return materials[c]
}

// String returns the wire name of the category.
func (c Category) String() string {
	switch c {
	case Paper:
		return "paper"
	case Snack:
		return "snack"
	case MouseToy:
		return "mouse"
	case Confetti:
		return "confetti"
	default:
		return "unknown"
	}
}

// MarshalText encodes the category by name for JSON snapshots.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// confettiPalette is shared by confetti items and celebration particles.
var confettiPalette = []core.Color{
	core.ColorBrightRed,
	core.ColorCyan,
	core.ColorBlue,
	core.ColorYellow,
	core.ColorOrange,
	core.ColorRed,
	core.ColorPurple,
	core.ColorLavender,
}

// drawCategory picks a throwable category by cumulative weight over a
// uniform draw in [0, total). Confetti is never drawn here.
func drawCategory(rng core.Rand, w config.TossWeights) Category {
	if w.Total() <= 0 {
		w = config.DefaultTossConfig().Weights
	}

	r := rng.Float64() * w.Total()
	cumulative := 0.0
	for _, entry := range []struct {
		cat    Category
		weight float64
	}{
		{Paper, w.Paper},
		{Snack, w.Snack},
		{MouseToy, w.MouseToy},
	} {
		cumulative += entry.weight
		if r <= cumulative {
			return entry.cat
		}
	}
	return Paper
}
