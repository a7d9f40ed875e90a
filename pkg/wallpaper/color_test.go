package wallpaper

import (
	"math"
	"testing"
)

func TestParseHex(t *testing.T) {
	fallback := RGB{1, 2, 3}

	tests := []struct {
		name string
		in   string
		want RGB
	}{
		{"plain", "ff8800", RGB{255, 136, 0}},
		{"hash prefix", "#0d1117", RGB{13, 17, 23}},
		{"uppercase", "#3B82F6", RGB{59, 130, 246}},
		{"too short", "fff", fallback},
		{"too long", "#ff88001", fallback},
		{"non-hex", "gg0000", fallback},
		{"empty", "", fallback},
		{"hash only", "#", fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseHex(tt.in, fallback); got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestBlendEndpoints(t *testing.T) {
	a := RGB{10, 200, 77}
	b := RGB{240, 3, 128}

	if got := Blend(a, b, 0); got != a {
		t.Errorf("Blend(a, b, 0) = %v, want %v", got, a)
	}
	if got := Blend(a, b, 1); got != b {
		t.Errorf("Blend(a, b, 1) = %v, want %v", got, b)
	}
}

func TestBlendRoundsPerChannel(t *testing.T) {
	got := Blend(RGB{0, 0, 0}, RGB{255, 255, 255}, 0.5)
	want := RGB{128, 128, 128} // 127.5 rounds up
	if got != want {
		t.Errorf("midpoint blend = %v, want %v", got, want)
	}

	got = Blend(RGB{100, 100, 100}, RGB{101, 101, 101}, 0.3)
	want = RGB{100, 100, 100} // 100.3 rounds down
	if got != want {
		t.Errorf("blend = %v, want %v", got, want)
	}
}

func TestLuminanceBounds(t *testing.T) {
	if got := Luminance(RGB{0, 0, 0}); got != 0 {
		t.Errorf("Luminance(black) = %v, want 0", got)
	}
	if got := Luminance(RGB{255, 255, 255}); math.Abs(got-255) > 1e-9 {
		t.Errorf("Luminance(white) = %v, want 255", got)
	}
	// Green dominates.
	if Luminance(RGB{0, 255, 0}) <= Luminance(RGB{255, 0, 0}) {
		t.Error("green should be brighter than red")
	}
}

func TestDeriveEmptyColor(t *testing.T) {
	darkBG := RGB{13, 17, 23}
	empty := DeriveEmptyColor(darkBG)
	if want := Blend(darkBG, RGB{255, 255, 255}, 0.18); empty != want {
		t.Errorf("dark empty = %v, want %v", empty, want)
	}
	if Luminance(empty) <= Luminance(darkBG) {
		t.Error("empty color on a dark background must be lighter than the background")
	}

	lightBG := RGB{240, 240, 240}
	empty = DeriveEmptyColor(lightBG)
	if want := Blend(lightBG, RGB{0, 0, 0}, 0.14); empty != want {
		t.Errorf("light empty = %v, want %v", empty, want)
	}
	if Luminance(empty) >= Luminance(lightBG) {
		t.Error("empty color on a light background must be darker than the background")
	}
}

func TestBackgroundGradientBranchesOnLuminance(t *testing.T) {
	dark := RGB{13, 17, 23}
	top, bottom := BackgroundGradient(dark)
	if top != Blend(dark, RGB{255, 255, 255}, 0.09) {
		t.Errorf("dark gradient top = %v", top)
	}
	if bottom != Blend(dark, RGB{0, 0, 0}, 0.16) {
		t.Errorf("dark gradient bottom = %v", bottom)
	}

	light := RGB{230, 228, 220}
	top, bottom = BackgroundGradient(light)
	if top != Blend(light, RGB{255, 255, 255}, 0.05) {
		t.Errorf("light gradient top = %v", top)
	}
	if bottom != Blend(light, RGB{0, 0, 0}, 0.10) {
		t.Errorf("light gradient bottom = %v", bottom)
	}
}

func TestFutureColorIsExactMidpoint(t *testing.T) {
	pairs := []struct {
		empty, bg RGB
	}{
		{RGB{57, 60, 65}, RGB{13, 17, 23}},
		{RGB{206, 206, 206}, RGB{240, 240, 240}},
		{RGB{0, 0, 0}, RGB{255, 255, 255}},
		{RGB{10, 250, 3}, RGB{9, 251, 4}},
	}

	for _, p := range pairs {
		got := FutureColor(p.empty, p.bg)
		want := Blend(p.empty, p.bg, 0.5)
		if got != want {
			t.Errorf("FutureColor(%v, %v) = %v, want midpoint %v", p.empty, p.bg, got, want)
		}
	}
}
