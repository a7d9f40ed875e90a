// canvas.go — Flat RGBA pixel buffer and dot rasterization.
// The buffer layout is row-major with stride Width*4; alpha is always 255.
// Rounded corners come from an integer quarter-circle membership test, not
// an anti-aliasing library, so output stays byte-deterministic.
package wallpaper

// Canvas is a mutable RGBA pixel buffer.
type Canvas struct {
	Width  int
	Height int
	Pix    []byte // len = Width*Height*4, stride Width*4
}

// NewCanvas allocates an all-zero canvas.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*4),
	}
}

// SetPixel writes one opaque pixel. The caller guarantees bounds.
func (c *Canvas) SetPixel(x, y int, col RGB) {
	i := (y*c.Width + x) * 4
	c.Pix[i] = col.R
	c.Pix[i+1] = col.G
	c.Pix[i+2] = col.B
	c.Pix[i+3] = 255
}

// At reads back one pixel.
func (c *Canvas) At(x, y int) RGB {
	i := (y*c.Width + x) * 4
	return RGB{c.Pix[i], c.Pix[i+1], c.Pix[i+2]}
}

// FillGradient paints the background: each row is the top color blended
// toward the bottom color by its normalized y.
func (c *Canvas) FillGradient(top, bottom RGB) {
	stride := c.Width * 4
	denom := max(1, c.Height-1)

	for y := 0; y < c.Height; y++ {
		row := Blend(top, bottom, float64(y)/float64(denom))
		base := y * stride
		for x := 0; x < c.Width; x++ {
			i := base + x*4
			c.Pix[i] = row.R
			c.Pix[i+1] = row.G
			c.Pix[i+2] = row.B
			c.Pix[i+3] = 255
		}
	}
}

// FillCell paints a (possibly rounded) square of the given size at (x, y),
// clipped to the canvas.
func (c *Canvas) FillCell(x, y, cellW, cellH int, col RGB, radius int) {
	startX := max(0, x)
	startY := max(0, y)
	endX := min(c.Width, x+cellW)
	endY := min(c.Height, y+cellH)

	for py := startY; py < endY; py++ {
		localY := py - y
		for px := startX; px < endX; px++ {
			if pointInRoundedRect(px-x, localY, cellW, cellH, radius) {
				c.SetPixel(px, py, col)
			}
		}
	}
}

// pointInRoundedRect reports whether the local pixel (lx, ly) belongs to a
// w×h rectangle with the given corner radius. The horizontal and vertical
// center bands short-circuit; only corner pixels pay for the circle test.
func pointInRoundedRect(lx, ly, w, h, radius int) bool {
	if radius <= 0 {
		return true
	}
	if lx >= radius && lx < w-radius {
		return true
	}
	if ly >= radius && ly < h-radius {
		return true
	}

	r := float64(radius) - 0.5
	inCorner := func(px, py float64) bool {
		return px*px+py*py <= r*r
	}

	switch {
	case lx < radius && ly < radius:
		return inCorner(float64(lx-(radius-1)), float64(ly-(radius-1)))
	case lx >= w-radius && ly < radius:
		return inCorner(float64(lx-(w-radius)), float64(ly-(radius-1)))
	case lx < radius && ly >= h-radius:
		return inCorner(float64(lx-(radius-1)), float64(ly-(h-radius)))
	}
	return inCorner(float64(lx-(w-radius)), float64(ly-(h-radius)))
}

// ApplyReadability mutes a dot color when its center falls under system UI.
// Mood dots inside the clock box are desaturated and pulled toward the
// background; placeholder dots inside the widget box are faded. Everything
// else passes through untouched.
func ApplyReadability(col, bg RGB, kind DotKind, centerX, centerY int) RGB {
	if kind == KindMood && ClockSafeBox().Contains(centerX, centerY) {
		muted := Blend(col, Desaturate(col), 0.82)
		return Blend(muted, bg, 0.52)
	}

	if (kind == KindEmpty || kind == KindFuture) && WidgetSoftSafeBox().Contains(centerX, centerY) {
		alpha := 0.34
		if kind == KindFuture {
			alpha = 0.50
		}
		return Blend(col, bg, alpha)
	}

	return col
}
