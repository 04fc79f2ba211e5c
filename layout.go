package thumbstick

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

const (
	defaultPixelToUnits = 1000.0
	defaultDistance     = 0.5
	defaultFieldOfView  = 60.0 // degrees
)

// Bounds is an axis-aligned box given by its center and half-size.
type Bounds struct {
	Center  Vec2
	Extents Vec2
}

// Min returns the lower-left corner.
func (b Bounds) Min() Vec2 { return b.Center.Sub(b.Extents) }

// Max returns the upper-right corner.
func (b Bounds) Max() Vec2 { return b.Center.Add(b.Extents) }

// Layout describes where a joystick sits on screen. It is resolved into a
// Config once, at setup, for a given viewport size.
type Layout struct {
	// Snap is the viewport corner the widget's Region is pushed into.
	Snap Snap
	// PixelToUnits converts base sprite pixels into world units. 0 means 1000.
	PixelToUnits float64
	// BaseSpriteHeight is the height of the base sprite in pixels. The base
	// radius is half of it, in world units.
	BaseSpriteHeight float64
	// Distance is how far the widget plane sits in front of the camera.
	// 0 means 0.5.
	Distance float64
	// FieldOfView is the camera's vertical field of view in degrees. 0 means 60.
	FieldOfView float64
	// Aspect is width over height. 0 uses the viewport's aspect.
	Aspect float64
	// Region is the widget's interactive box with the widget at the origin.
	// A zero Extents uses a square hugging the base circle.
	Region Bounds
	// Polygon, when it has at least three points, is a convex interactive
	// outline used instead of Region. Its bounding box is what gets snapped.
	Polygon []Vec2
}

// region returns the box snapped into the corner.
func (l Layout) region(radius float64) Bounds {
	if len(l.Polygon) >= 3 {
		return polygonBounds(l.Polygon)
	}
	r := l.Region
	if r.Extents == (Vec2{}) {
		r.Extents = Vec2{radius, radius}
	}
	return r
}

func polygonBounds(pts []Vec2) Bounds {
	lo, hi := pts[0], pts[0]
	for _, p := range pts[1:] {
		lo = Vec2{min(lo.X, p.X), min(lo.Y, p.Y)}
		hi = Vec2{max(hi.X, p.X), max(hi.Y, p.Y)}
	}
	return Bounds{Center: lo.Add(hi).Scale(0.5), Extents: hi.Sub(lo).Scale(0.5)}
}

// Config resolves the layout for a viewport of the given pixel size.
func (l Layout) Config(viewportW, viewportH float64) (Config, error) {
	if !isFinite(viewportW) || !isFinite(viewportH) || viewportW <= 0 || viewportH <= 0 {
		return Config{}, fmt.Errorf("resolve layout: %w: viewport %vx%v", ErrInvalidConfig, viewportW, viewportH)
	}

	ptu := orDefault(l.PixelToUnits, defaultPixelToUnits)
	dist := orDefault(l.Distance, defaultDistance)
	fov := orDefault(l.FieldOfView, defaultFieldOfView)
	aspect := orDefault(l.Aspect, viewportW/viewportH)
	if ptu < 0 || dist < 0 || fov < 0 || fov >= 180 || aspect < 0 {
		return Config{}, fmt.Errorf("resolve layout: %w: pixelToUnits=%v distance=%v fov=%v aspect=%v",
			ErrInvalidConfig, ptu, dist, fov, aspect)
	}

	frustumH := 2 * dist * math.Tan(fov*0.5*math.Pi/180)
	frustumW := frustumH * aspect
	radius := (l.BaseSpriteHeight / 2) / ptu

	pos := snapPosition(l.Snap, l.region(radius), frustumW, frustumH)
	cfg := Config{
		BaseRadius:      radius,
		PlacementOffset: pos.Add(Vec2{frustumW / 2, frustumH / 2}),
		ViewportWidth:   viewportW,
		ViewportHeight:  viewportH,
		FrustumWidth:    frustumW,
		FrustumHeight:   frustumH,
		Distance:        dist,
		Position:        pos,
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("resolve layout: %w", err)
	}
	return cfg, nil
}

// RegionShape returns the layout's interactive area in widget-local space:
// a HitPolygon when Polygon is set, otherwise Region as a HitRect.
func (l Layout) RegionShape(cfg Config) HitShape {
	if len(l.Polygon) >= 3 {
		return HitPolygon{Points: l.Polygon}
	}
	region := l.region(cfg.BaseRadius)
	lo := region.Min()
	return HitRect{X: lo.X, Y: lo.Y, Width: region.Extents.X * 2, Height: region.Extents.Y * 2}
}

// snapPosition pushes region into the chosen corner of a camera-centered
// frustum and returns the widget origin in camera space.
func snapPosition(snap Snap, region Bounds, frustumW, frustumH float64) Vec2 {
	lo, hi := region.Min(), region.Max()
	halfW, halfH := frustumW/2, frustumH/2

	var p Vec2
	switch snap {
	case SnapLeftTop:
		p = Vec2{-halfW - lo.X, halfH - hi.Y}
	case SnapRightBottom:
		p = Vec2{halfW - hi.X, -halfH - lo.Y}
	case SnapRightTop:
		p = Vec2{halfW - hi.X, halfH - hi.Y}
	default:
		p = Vec2{-halfW - lo.X, -halfH - lo.Y}
	}
	return p
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

// --- Layout files ---

type layoutFile struct {
	Snap             string  `yaml:"snap"`
	PixelToUnits     float64 `yaml:"pixelToUnits"`
	BaseSpriteHeight float64 `yaml:"baseSpriteHeight"`
	Distance         float64 `yaml:"distance"`
	FieldOfView      float64 `yaml:"fieldOfView"`
	Aspect           float64 `yaml:"aspect"`
	Region           *struct {
		Center  [2]float64 `yaml:"center"`
		Extents [2]float64 `yaml:"extents"`
	} `yaml:"region"`
	Polygon [][2]float64 `yaml:"polygon"`
}

// LoadLayout parses a YAML layout file:
//
//	snap: rightBottom
//	pixelToUnits: 1000
//	baseSpriteHeight: 256
//	distance: 0.5
//	fieldOfView: 60
//	region:
//	  center: [0, 0]
//	  extents: [0.15, 0.15]
//
// A convex polygon may replace region:
//
//	polygon: [[-0.15, -0.15], [0.15, -0.15], [0, 0.15]]
func LoadLayout(data []byte) (Layout, error) {
	var f layoutFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Layout{}, fmt.Errorf("parse layout: %w", err)
	}
	snap, ok := ParseSnap(f.Snap)
	if !ok {
		return Layout{}, fmt.Errorf("parse layout: unknown snap %q", f.Snap)
	}
	if f.BaseSpriteHeight <= 0 {
		return Layout{}, fmt.Errorf("parse layout: baseSpriteHeight must be > 0")
	}
	l := Layout{
		Snap:             snap,
		PixelToUnits:     f.PixelToUnits,
		BaseSpriteHeight: f.BaseSpriteHeight,
		Distance:         f.Distance,
		FieldOfView:      f.FieldOfView,
		Aspect:           f.Aspect,
	}
	if len(f.Polygon) > 0 {
		if len(f.Polygon) < 3 {
			return Layout{}, fmt.Errorf("parse layout: polygon needs at least 3 points, got %d", len(f.Polygon))
		}
		l.Polygon = make([]Vec2, len(f.Polygon))
		for i, pt := range f.Polygon {
			l.Polygon[i] = Vec2{pt[0], pt[1]}
		}
	}
	if f.Region != nil {
		l.Region = Bounds{
			Center:  Vec2{f.Region.Center[0], f.Region.Center[1]},
			Extents: Vec2{f.Region.Extents[0], f.Region.Extents[1]},
		}
	}
	return l, nil
}
