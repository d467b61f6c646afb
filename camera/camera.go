// Package camera provides the viewport transform between arena and
// screen coordinates.
package camera

// Camera maps the origin-centered arena onto the screen. The view is
// fixed: it always shows the whole arena, centered, at the largest scale
// that fits, so there is no pan and no wrapping.
type Camera struct {
	// Viewport dimensions (screen size, pixels)
	ViewportW, ViewportH float32

	// Arena half-extents in world units
	ArenaHalfW, ArenaHalfH float32

	// Pixels per world unit, clamped so the arena always fits
	Scale float32
}

// New creates a camera showing the whole arena. nativeScale is the
// preferred pixels-per-unit; it is reduced when the arena would not fit
// the viewport at that scale.
func New(viewportW, viewportH, arenaHalfW, arenaHalfH, nativeScale float32) *Camera {
	scale := nativeScale
	if fit := viewportW / (2 * arenaHalfW); fit < scale {
		scale = fit
	}
	if fit := viewportH / (2 * arenaHalfH); fit < scale {
		scale = fit
	}

	return &Camera{
		ViewportW:  viewportW,
		ViewportH:  viewportH,
		ArenaHalfW: arenaHalfW,
		ArenaHalfH: arenaHalfH,
		Scale:      scale,
	}
}

// Resize updates the viewport dimensions, refitting the scale.
func (c *Camera) Resize(viewportW, viewportH, nativeScale float32) {
	next := New(viewportW, viewportH, c.ArenaHalfW, c.ArenaHalfH, nativeScale)
	*c = *next
}

// WorldToScreen converts arena coordinates to screen coordinates.
// The arena origin maps to the viewport center; world Y grows upward,
// screen Y grows downward.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	sx = c.ViewportW/2 + wx*c.Scale
	sy = c.ViewportH/2 - wy*c.Scale
	return sx, sy
}

// ScreenToWorld converts screen coordinates to arena coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	wx = (sx - c.ViewportW/2) / c.Scale
	wy = (c.ViewportH/2 - sy) / c.Scale
	return wx, wy
}

// Length converts a world-unit length to pixels.
func (c *Camera) Length(units float32) float32 {
	return units * c.Scale
}
