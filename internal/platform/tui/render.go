package tui

import (
	"iter"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/trash-toss/internal/core"
)

// cellStyles holds one style per palette color. Foregrounds use the same hex
// values the browser client draws with; lipgloss downsamples them to what
// the terminal supports.
var cellStyles = buildCellStyles()

func buildCellStyles() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style)
	for _, c := range core.Palette() {
		if c == core.ColorDefault {
			styles[c] = lipgloss.NewStyle()
			continue
		}
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
	}
	return styles
}

func styleFor(c core.Color) lipgloss.Style {
	if st, ok := cellStyles[c]; ok {
		return st
	}
	return cellStyles[core.ColorDefault]
}

// cellRuns yields row y as maximal runs of same-colored cells, left to right.
func cellRuns(s *core.Screen, y int) iter.Seq2[core.Color, string] {
	return func(yield func(core.Color, string) bool) {
		var run strings.Builder
		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			if !yield(color, run.String()) {
				return
			}
		}
	}
}

// RenderScreen converts a Screen buffer to a styled string, one escape
// sequence per color run rather than per cell.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for color, run := range cellRuns(s, y) {
			sb.WriteString(styleFor(color).Render(run))
		}
	}
	return sb.String()
}
