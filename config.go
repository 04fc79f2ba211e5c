package thumbstick

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every error Config.Validate returns.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the immutable geometry a Stick runs with. Build one by hand or
// derive it from a Layout.
type Config struct {
	// BaseRadius is how far the knob may travel from its anchor, in local units.
	BaseRadius float64
	// PlacementOffset is subtracted from every mapped screen point.
	PlacementOffset Vec2
	// ViewportWidth and ViewportHeight are the screen size in pixels.
	ViewportWidth, ViewportHeight float64
	// FrustumWidth and FrustumHeight are the visible world extents at Distance.
	FrustumWidth, FrustumHeight float64
	// Distance is how far the widget plane sits from the camera.
	Distance float64
	// Position is the widget origin in camera space. Only renderers use it.
	Position Vec2
}

// Validate reports the first field that would make ticking produce NaN or
// infinite directions.
func (c Config) Validate() error {
	switch {
	case !isFinite(c.BaseRadius) || c.BaseRadius <= 0:
		return fmt.Errorf("%w: base radius %v must be > 0", ErrInvalidConfig, c.BaseRadius)
	case !isFinite(c.ViewportWidth) || c.ViewportWidth <= 0:
		return fmt.Errorf("%w: viewport width %v must be > 0", ErrInvalidConfig, c.ViewportWidth)
	case !isFinite(c.ViewportHeight) || c.ViewportHeight <= 0:
		return fmt.Errorf("%w: viewport height %v must be > 0", ErrInvalidConfig, c.ViewportHeight)
	case !isFinite(c.FrustumWidth) || c.FrustumWidth <= 0:
		return fmt.Errorf("%w: frustum width %v must be > 0", ErrInvalidConfig, c.FrustumWidth)
	case !isFinite(c.FrustumHeight) || c.FrustumHeight <= 0:
		return fmt.Errorf("%w: frustum height %v must be > 0", ErrInvalidConfig, c.FrustumHeight)
	case !isFinite(c.Distance) || c.Distance <= 0:
		return fmt.Errorf("%w: distance %v must be > 0", ErrInvalidConfig, c.Distance)
	case !c.PlacementOffset.isFinite():
		return fmt.Errorf("%w: placement offset %v is not finite", ErrInvalidConfig, c.PlacementOffset)
	case !c.Position.isFinite():
		return fmt.Errorf("%w: position %v is not finite", ErrInvalidConfig, c.Position)
	}
	return nil
}

// MaxProbeDistance is the longest pick distance handed to a HitTester.
func (c Config) MaxProbeDistance() float64 {
	return c.Distance * 2
}
