// color.go — RGB color math for the wallpaper pipeline.
// All blending is integer per-channel lerp with round-and-clamp, so renders
// are byte-reproducible across platforms.
package wallpaper

import "math"

// RGB is an opaque 8-bit-per-channel color. The canvas is always fully
// opaque; alpha exists only in the output buffer.
type RGB struct {
	R, G, B uint8
}

var (
	white = RGB{255, 255, 255}
	black = RGB{0, 0, 0}
)

// ParseHex parses "rrggbb" or "#rrggbb" into an RGB value.
// Malformed input returns fallback (never an error — a wallpaper render
// must always produce an image).
func ParseHex(s string, fallback RGB) RGB {
	hex := s
	if len(hex) == 7 && hex[0] == '#' {
		hex = hex[1:]
	}
	if len(hex) != 6 {
		return fallback
	}

	var v [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hexDigit(hex[i*2])
		lo, ok2 := hexDigit(hex[i*2+1])
		if !ok1 || !ok2 {
			return fallback
		}
		v[i] = hi<<4 | lo
	}
	return RGB{v[0], v[1], v[2]}
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

func blendChannel(a, b uint8, alpha float64) uint8 {
	v := int(math.Round(float64(a)*(1-alpha) + float64(b)*alpha))
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return uint8(v)
}

// Blend linearly interpolates between a and b. alpha=0 yields a, alpha=1
// yields b. Each channel is rounded and clamped independently.
func Blend(a, b RGB, alpha float64) RGB {
	return RGB{
		blendChannel(a.R, b.R, alpha),
		blendChannel(a.G, b.G, alpha),
		blendChannel(a.B, b.B, alpha),
	}
}

// Luminance is the Rec. 709 relative luminance of c, in [0, 255].
func Luminance(c RGB) float64 {
	return 0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)
}

// Desaturate collapses c to its luminance gray.
func Desaturate(c RGB) RGB {
	l := uint8(math.Round(Luminance(c)))
	return RGB{l, l, l}
}

// DeriveEmptyColor produces the "no entry" dot color for a background.
// Dark backgrounds lighten, light backgrounds darken, so the empty dot is
// always visibly distinct from the canvas.
func DeriveEmptyColor(bg RGB) RGB {
	if Luminance(bg) < 128 {
		return Blend(bg, white, 0.18)
	}
	return Blend(bg, black, 0.14)
}

// BackgroundGradient returns the (top, bottom) colors of the canvas
// gradient: slightly lifted at the top, sunk at the bottom.
func BackgroundGradient(bg RGB) (top, bottom RGB) {
	if Luminance(bg) < 128 {
		return Blend(bg, white, 0.09), Blend(bg, black, 0.16)
	}
	return Blend(bg, white, 0.05), Blend(bg, black, 0.10)
}

// FutureColor is the dimmed placeholder for days after the render date:
// always the exact midpoint of the empty color and the background.
func FutureColor(empty, bg RGB) RGB {
	return Blend(empty, bg, 0.5)
}
