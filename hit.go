package thumbstick

// HitShape is an interactive region in widget-local coordinates.
type HitShape interface {
	Contains(x, y float64) bool
}

// --- Built-in HitShape types ---

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// HitPolygon is a convex polygon hit area in local coordinates.
// Points must define a convex polygon in either winding order.
type HitPolygon struct {
	Points []Vec2
}

// Contains reports whether (x, y) lies inside or on the polygon: the point
// must sit on the same side of every edge.
func (p HitPolygon) Contains(x, y float64) bool {
	if len(p.Points) < 3 {
		return false
	}
	side := 0
	prev := p.Points[len(p.Points)-1]
	for _, cur := range p.Points {
		cross := (cur.X-prev.X)*(y-prev.Y) - (cur.Y-prev.Y)*(x-prev.X)
		prev = cur
		s := 0
		if cross > 0 {
			s = 1
		} else if cross < 0 {
			s = -1
		}
		if s == 0 {
			continue
		}
		if side != 0 && s != side {
			return false
		}
		side = s
	}
	return true
}

// --- Hit testers ---

// HitTester decides whether a screen position lands on the widget. On a hit
// it returns the hit point in widget-local space, which becomes the anchor the
// knob is dragged from. Probes farther than maxDistance from the camera miss.
type HitTester interface {
	HitTest(screen Vec2, maxDistance float64) (local Vec2, ok bool)
}

// HitTestFunc adapts a host picking function, such as a physics raycast, to
// the HitTester interface.
type HitTestFunc func(screen Vec2, maxDistance float64) (Vec2, bool)

// HitTest calls f.
func (f HitTestFunc) HitTest(screen Vec2, maxDistance float64) (Vec2, bool) {
	return f(screen, maxDistance)
}

// RegionHitTester hit-tests a HitShape lying flat on the widget plane. Screen
// points are mapped to local space with Mapper before the shape test.
type RegionHitTester struct {
	Shape  HitShape
	Mapper Mapper
	// Depth is the plane's distance from the camera. A plane beyond the probe
	// distance is never hit.
	Depth float64
}

// NewRegionHitTester returns a RegionHitTester for shape on the plane
// described by cfg.
func NewRegionHitTester(cfg Config, shape HitShape) *RegionHitTester {
	return &RegionHitTester{
		Shape:  shape,
		Mapper: NewMapper(cfg),
		Depth:  cfg.Distance,
	}
}

// HitTest implements HitTester.
func (r *RegionHitTester) HitTest(screen Vec2, maxDistance float64) (Vec2, bool) {
	if r.Shape == nil || r.Depth > maxDistance {
		return Vec2{}, false
	}
	local := r.Mapper.ToLocal(screen)
	if !r.Shape.Contains(local.X, local.Y) {
		return Vec2{}, false
	}
	return local, true
}
