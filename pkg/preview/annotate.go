// Package preview stamps small text labels onto finished wallpapers for
// visual review (sample sheets, dev builds). It is never part of the
// deterministic render path.
package preview

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/soleren/moodpaper/pkg/wallpaper"
)

// labelMargin keeps the label inside the canvas insets, above the bottom
// reserved area.
const labelMargin = 24

// StampLabel draws text near the bottom-left of a rendered RGBA wallpaper
// buffer, in place. The buffer must be width*height*4 bytes.
func StampLabel(rgba []byte, width, height int, text string) {
	if text == "" || len(rgba) != width*height*4 {
		return
	}

	img := &image.RGBA{
		Pix:    rgba,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}

	face := basicfont.Face7x13
	x := wallpaper.SideInset
	y := height - wallpaper.BottomInset + labelMargin

	// Shadow first, then the label, so it reads on light and dark themes.
	drawString(img, text, x+1, y+1, color.RGBA{0, 0, 0, 255}, face)
	drawString(img, text, x, y, color.RGBA{235, 238, 242, 255}, face)
}

func drawString(img *image.RGBA, text string, x, y int, col color.Color, face font.Face) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
