package physics

// Default tuning, calibrated for one integration step per 60 Hz tick.
const (
	DefaultGravity         = 0.5  // px/tick² downward
	DefaultGroundMargin    = 50.0 // ground plane sits this far above the bottom edge
	DefaultWallRestitution = 0.6  // horizontal speed kept (and reversed) after a wall hit
	DefaultGroundFriction  = 0.8  // horizontal speed kept after a ground bounce
	DefaultRestVY          = 2.0  // below this vertical speed a bounce settles
	DefaultRestVX          = 1.0  // below this horizontal speed a bounce settles
	FallbackDrag           = 0.01 // used when a body declares no drag
)

// Tuning groups the engine constants so they can be loaded from config.
type Tuning struct {
	Gravity         float64
	GroundMargin    float64
	WallRestitution float64
	GroundFriction  float64
	RestVY          float64
	RestVX          float64
}

// DefaultTuning returns the stock constants.
func DefaultTuning() Tuning {
	return Tuning{
		Gravity:         DefaultGravity,
		GroundMargin:    DefaultGroundMargin,
		WallRestitution: DefaultWallRestitution,
		GroundFriction:  DefaultGroundFriction,
		RestVY:          DefaultRestVY,
		RestVX:          DefaultRestVX,
	}
}
