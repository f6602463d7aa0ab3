package trashtoss

import (
	"fmt"
	"math"

	"github.com/vovakirdan/trash-toss/internal/core"
)

// Visual characters for rendering
const (
	GroundChar  = '▀'
	PreviewChar = '·'
	BarFull     = '█'
	BarEmpty    = '░'
	CatAwake    = "=^o^="
	CatAsleep   = "=-.-="
)

// particleGlyphs are picked by particle rotation to make confetti twinkle.
var particleGlyphs = []rune{'*', '+', 'x', '•'}

// Render draws the current frame into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	r := g.round
	cfg := r.Config()
	vp := NewViewport(dst.Width(), dst.Height(), cfg.World.Width, cfg.World.Height)
	g.viewport = vp

	// Ground
	_, groundRow := vp.ToCell(core.V(0, r.Engine().GroundY()))
	dst.DrawHLine(0, groundRow, dst.Width(), GroundChar, core.ColorGray)

	g.drawBin(dst, vp)
	g.drawCat(dst, vp)

	for _, s := range r.Settled() {
		x, y := vp.ToCell(s.Pos)
		dst.SetColored(x, y, s.Category.Material().Glyph, s.Color)
	}

	if p := r.Active(); p != nil && !p.Dead() {
		g.drawAim(dst, vp, p)
		x, y := vp.ToCell(p.Pos())
		dst.SetColored(x, y, p.Category().Material().Glyph, p.Color())
	}

	for _, p := range r.Burst().Particles() {
		x, y := vp.ToCell(p.Pos)
		i := int(math.Abs(p.Rotation)*2) % len(particleGlyphs)
		dst.SetColored(x, y, particleGlyphs[i], p.Color)
	}

	g.drawHUD(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

func (g *Game) drawBin(dst *core.Screen, vp Viewport) {
	bin := g.round.Bin()
	box := vp.CellRect(bin.Mouth())
	dst.DrawBox(box, core.ColorTeal)

	// Open the lid over the opening width.
	half := bin.OpeningWidth / 2
	x0, _ := vp.ToCell(core.V(bin.Pos.X-half, bin.Pos.Y))
	x1, _ := vp.ToCell(core.V(bin.Pos.X+half, bin.Pos.Y))
	for x := max(x0, box.X+1); x <= min(x1, box.Right()-2); x++ {
		dst.Set(x, box.Y, ' ')
	}
}

func (g *Game) drawCat(dst *core.Screen, vp Viewport) {
	cat := g.round.Cat()
	face, color := CatAsleep, core.ColorGray
	if cat.Active() {
		face, color = CatAwake, core.ColorOrange
	}
	x, y := vp.ToCell(cat.Pos())
	dst.DrawTextColored(x-len(face)/2, y, face, color)
}

func (g *Game) drawAim(dst *core.Screen, vp Viewport, p *Projectile) {
	if !g.aim.Dragging() {
		return
	}

	first := true
	for pt := range g.aim.Preview(g.round.Engine(), p) {
		if first {
			first = false
			continue
		}
		x, y := vp.ToCell(pt)
		dst.SetColored(x, y, PreviewChar, core.ColorWhite)
	}

	// Power bar above the item.
	const barWidth = 10
	ratio := g.aim.PowerRatio()
	filled := int(math.Round(ratio * barWidth))
	x, y := vp.ToCell(p.Pos())
	barX := x - barWidth/2
	barY := y - 2
	color := PowerColor(ratio)
	for i := 0; i < barWidth; i++ {
		ch := BarEmpty
		if i < filled {
			ch = BarFull
		}
		dst.SetColored(barX+i, barY, ch, color)
	}
	dst.DrawTextColored(barX, barY-1, fmt.Sprintf("Power %d%%", int(math.Round(ratio*100))), core.ColorWhite)
}

func (g *Game) drawHUD(dst *core.Screen) {
	r := g.round
	hud := fmt.Sprintf(" Score: %d  Best: %d  Next: %s ", r.Scores().Current(), r.Scores().Best(), r.Next())
	dst.DrawTextColored(0, 0, hud, core.ColorWhite)

	var label string
	var color core.Color
	switch r.Phase() {
	case PhaseAwaitingNext:
		label, color = "Get ready...", core.ColorWhite
	case PhaseCelebrating:
		label, color = "Nice shot!", core.ColorYellow
	default:
		label, color = "Drag to throw", core.ColorGray
	}
	dst.DrawTextColored(dst.Width()-len([]rune(label))-1, 0, label, color)
}

// drawCenteredMessage draws a two-line message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	centerY := dst.Height() / 2

	maxLen := max(len(title), len(subtitle))
	boxWidth := maxLen + 4
	boxX := (dst.Width() - boxWidth) / 2

	box := core.NewRect(boxX, centerY-2, boxWidth, 5)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	dst.DrawTextCentered(centerY-1, title, core.ColorBrightYellow)
	dst.DrawTextCentered(centerY+1, subtitle, core.ColorWhite)
}
