package geometry

// Rect represents pixel bounds on screen
type Rect struct {
	X      int // Left edge (pixels from screen left)
	Y      int // Top edge (pixels from screen top)
	Width  int // Width in pixels
	Height int // Height in pixels
}

// UnitRect is a rectangle expressed in [0,1] fractions of the usable
// screen, independent of resolution. Overlapping rects are allowed.
type UnitRect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Screen is a pixel extent (raw display size or usable area).
type Screen struct {
	Width  int
	Height int
}

// Converter maps unit rectangles onto pixel coordinates for a given
// screen. FrameOffset reserves a border on every edge, YOffset reserves
// an additional strip at the top (menu/status bar).
type Converter struct {
	FrameOffset int
	YOffset     int
}

// Usable returns the screen area left after the reserved margins.
func (c Converter) Usable(raw Screen) Screen {
	return Screen{
		Width:  raw.Width - 2*c.FrameOffset,
		Height: raw.Height - 2*c.FrameOffset - c.YOffset,
	}
}

// ToPixels converts a unit rectangle to pixel bounds inside the usable
// screen. Fractional pixels are truncated, not rounded; layouts depend
// on this being reproducible.
func (c Converter) ToPixels(u UnitRect, usable Screen) Rect {
	return Rect{
		X:      c.FrameOffset + int(float64(usable.Width)*u.X),
		Y:      c.YOffset + c.FrameOffset + int(float64(usable.Height)*u.Y),
		Width:  int(float64(usable.Width) * u.Width),
		Height: int(float64(usable.Height) * u.Height),
	}
}
