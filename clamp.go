package thumbstick

// Clamp confines local to the base circle of the given radius around anchor.
// knob is where the knob should be drawn; direction is the displacement scaled
// so that 1 means the knob sits on the rim.
//
// Inside the circle the knob follows the pointer exactly and direction is
// raw/radius. Outside it the knob is pinned to the rim and direction is the
// unit vector toward the pointer. A zero displacement yields a zero direction.
func Clamp(local, anchor Vec2, radius float64) (knob, direction Vec2) {
	raw := local.Sub(anchor)
	if raw.LenSq() <= radius*radius {
		return local, raw.Scale(1 / radius)
	}
	dir := raw.Normalize()
	return anchor.Add(dir.Scale(radius)), dir
}
