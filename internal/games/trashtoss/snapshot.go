package trashtoss

import "github.com/vovakirdan/trash-toss/internal/core"

// Snapshot is the render surface: everything a host needs to draw one frame,
// in world coordinates with colors as CSS hex strings.
type Snapshot struct {
	Tick    uint64   `json:"tick"`
	Width   float64  `json:"width"`
	Height  float64  `json:"height"`
	GroundY float64  `json:"groundY"`
	Phase   Phase    `json:"phase"`
	Paused  bool     `json:"paused"`
	Score   int      `json:"score"`
	Best    int      `json:"best"`
	Binned  int      `json:"binned"`
	Next    Category `json:"next"`

	Active    *ItemView      `json:"active,omitempty"`
	Settled   []ItemView     `json:"settled"`
	Cat       CatView        `json:"cat"`
	Bin       BinView        `json:"bin"`
	Particles []ParticleView `json:"particles"`
	Aim       *AimView       `json:"aim,omitempty"`
}

// ItemView is a drawable item.
type ItemView struct {
	X        float64  `json:"x"`
	Y        float64  `json:"y"`
	Radius   float64  `json:"radius"`
	Category Category `json:"category"`
	Color    string   `json:"color"`
	Thrown   bool     `json:"thrown"`
}

// CatView is the drawable cat.
type CatView struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
	Active bool    `json:"active"`
}

// BinView is the drawable bin; X and Y are the center of its base.
type BinView struct {
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
	OpeningWidth float64 `json:"openingWidth"`
}

// ParticleView is a drawable confetti particle.
type ParticleView struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Size     float64 `json:"size"`
	Rotation float64 `json:"rotation"`
	Life     float64 `json:"life"`
	Color    string  `json:"color"`
}

// AimView is the aim line and power bar of a drag in progress.
type AimView struct {
	Path       []core.Vec2 `json:"path"`
	Power      float64     `json:"power"`
	PowerColor string      `json:"powerColor"`
}

// Snapshot returns the current frame.
func (g *Game) Snapshot() Snapshot {
	r := g.round
	cfg := r.Config()
	bin := r.Bin()
	cat := r.Cat()

	snap := Snapshot{
		Tick:    r.Ticks(),
		Width:   cfg.World.Width,
		Height:  cfg.World.Height,
		GroundY: r.Engine().GroundY(),
		Phase:   r.Phase(),
		Paused:  g.paused,
		Score:   r.Scores().Current(),
		Best:    r.Scores().Best(),
		Binned:  r.Binned(),
		Next:    r.Next(),
		Settled: make([]ItemView, 0, len(r.Settled())),
		Cat: CatView{
			X:      cat.Pos().X,
			Y:      cat.Pos().Y,
			Radius: cat.Radius(),
			Active: cat.Active(),
		},
		Bin: BinView{
			X:            bin.Pos.X,
			Y:            bin.Pos.Y,
			Width:        bin.Width,
			Height:       bin.Height,
			OpeningWidth: bin.OpeningWidth,
		},
	}

	for _, s := range r.Settled() {
		snap.Settled = append(snap.Settled, ItemView{
			X:        s.Pos.X,
			Y:        s.Pos.Y,
			Radius:   s.Radius,
			Category: s.Category,
			Color:    s.Color.Hex(),
			Thrown:   true,
		})
	}

	if p := r.Active(); p != nil && !p.Dead() {
		snap.Active = &ItemView{
			X:        p.Pos().X,
			Y:        p.Pos().Y,
			Radius:   p.Radius(),
			Category: p.Category(),
			Color:    p.Color().Hex(),
			Thrown:   p.Thrown(),
		}
	}

	particles := r.Burst().Particles()
	snap.Particles = make([]ParticleView, 0, len(particles))
	for _, p := range particles {
		snap.Particles = append(snap.Particles, ParticleView{
			X:        p.Pos.X,
			Y:        p.Pos.Y,
			Size:     p.Size,
			Rotation: p.Rotation,
			Life:     p.Life,
			Color:    p.Color.Hex(),
		})
	}

	if g.aim.Dragging() {
		ratio := g.aim.PowerRatio()
		view := &AimView{Power: ratio, PowerColor: PowerColor(ratio).Hex()}
		for pt := range g.aim.Preview(r.Engine(), r.Active()) {
			view.Path = append(view.Path, pt)
		}
		snap.Aim = view
	}

	return snap
}
