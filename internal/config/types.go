// Package config provides YAML-based game configuration loading for the
// trash toss game.
package config

// TossConfig contains all tunable parameters of the trash toss game.
type TossConfig struct {
	World    TossWorld    `yaml:"world"`
	Physics  TossPhysics  `yaml:"physics"`
	Throw    TossThrow    `yaml:"throw"`
	Round    TossRound    `yaml:"round"`
	Cat      TossCat      `yaml:"cat"`
	Bin      TossBin      `yaml:"bin"`
	Confetti TossConfetti `yaml:"confetti"`
	Weights  TossWeights  `yaml:"weights"`
}

// TossWorld defines the playfield size in world units.
type TossWorld struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// TossPhysics defines the projectile integrator constants.
type TossPhysics struct {
	Gravity         float64 `yaml:"gravity"`
	GroundMargin    float64 `yaml:"ground_margin"` // Ground plane distance from bottom edge
	WallRestitution float64 `yaml:"wall_restitution"`
	GroundFriction  float64 `yaml:"ground_friction"`
	RestVY          float64 `yaml:"rest_vy"`
	RestVX          float64 `yaml:"rest_vx"`
}

// TossThrow defines the drag-to-throw gesture.
type TossThrow struct {
	PowerMultiplier float64 `yaml:"power_multiplier"`
	GrabSlack       float64 `yaml:"grab_slack"` // Extra grab distance beyond the item radius
	PreviewSteps    int     `yaml:"preview_steps"`
	MaxPower        float64 `yaml:"max_power"` // Drag length shown as a full power bar
	SpawnX          float64 `yaml:"spawn_x"`
	SpawnOffsetY    float64 `yaml:"spawn_offset_y"` // Spawn height above the bottom edge
}

// TossRound defines round sequencing.
type TossRound struct {
	WaitTicks         int     `yaml:"wait_ticks"`
	OutOfBoundsMargin float64 `yaml:"out_of_bounds_margin"`
	BurstCount        int     `yaml:"burst_count"`
}

// TossCat defines the cat that swats mouse toys.
type TossCat struct {
	OffsetX     float64 `yaml:"offset_x"` // Distance from the right edge
	OffsetY     float64 `yaml:"offset_y"` // Distance from the bottom edge
	Radius      float64 `yaml:"radius"`
	ActiveTicks int     `yaml:"active_ticks"`
	Chance      float64 `yaml:"chance"`
	Spread      float64 `yaml:"spread"` // Total random angle range in radians
	MinForce    float64 `yaml:"min_force"`
	MaxForce    float64 `yaml:"max_force"`
}

// TossBin defines the trash bin.
type TossBin struct {
	OffsetX      float64 `yaml:"offset_x"` // Distance from the right edge
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	OpeningWidth float64 `yaml:"opening_width"`
}

// TossConfetti defines the celebration particles.
type TossConfetti struct {
	Gravity float64 `yaml:"gravity"`
	Damping float64 `yaml:"damping"`
}

// TossWeights defines how often each item is drawn, in percent.
type TossWeights struct {
	Paper    float64 `yaml:"paper"`
	Snack    float64 `yaml:"snack"`
	MouseToy float64 `yaml:"mouse_toy"`
}

// Total returns the sum of all weights.
func (w TossWeights) Total() float64 {
	return w.Paper + w.Snack + w.MouseToy
}
