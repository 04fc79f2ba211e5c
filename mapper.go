package thumbstick

// Mapper converts screen positions into the widget's local space.
// The zero value is unusable; build one with NewMapper.
type Mapper struct {
	scaleX, scaleY float64
	offset         Vec2
}

// NewMapper returns a Mapper for cfg. cfg should already be valid.
func NewMapper(cfg Config) Mapper {
	return Mapper{
		scaleX: cfg.FrustumWidth / cfg.ViewportWidth,
		scaleY: cfg.FrustumHeight / cfg.ViewportHeight,
		offset: cfg.PlacementOffset,
	}
}

// ToLocal maps a bottom-left-origin screen point to widget-local space:
//
//	(x/viewportW*frustumW, y/viewportH*frustumH) - placementOffset
func (m Mapper) ToLocal(screen Vec2) Vec2 {
	return Vec2{screen.X * m.scaleX, screen.Y * m.scaleY}.Sub(m.offset)
}

// ToScreen is the inverse of ToLocal.
func (m Mapper) ToScreen(local Vec2) Vec2 {
	p := local.Add(m.offset)
	return Vec2{p.X / m.scaleX, p.Y / m.scaleY}
}
