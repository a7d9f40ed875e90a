// layout.go — Grid geometry for the lockscreen wallpaper.
// Converts theme settings (columns, spacing, position, safe-zone toggle) into
// concrete pixel geometry: gap, slot and dot sizes, row count, grid offsets.
package wallpaper

import (
	"math"
	"time"
)

// Canvas and inset constants. These match the lockscreen of a 6.1" class
// phone and are invariant across all renders.
const (
	CanvasWidth  = 1290
	CanvasHeight = 2796

	SideInset     = 72
	TopInsetClock = 320
	BottomInset   = 220
)

// Spacing keys.
const (
	SpacingTight  = "tight"
	SpacingMedium = "medium"
	SpacingWide   = "wide"
)

// Position keys.
const (
	PositionClock  = "clock"
	PositionCenter = "center"
)

var spacingToGap = map[string]int{
	SpacingTight:  2,
	SpacingMedium: 4,
	SpacingWide:   6,
}

// Box is a half-open pixel rectangle: x in [Left, Right), y in [Top, Bottom).
type Box struct {
	Left, Top, Right, Bottom int
}

// Contains reports whether (x, y) lies inside the box.
func (b Box) Contains(x, y int) bool {
	return x >= b.Left && x < b.Right && y >= b.Top && y < b.Bottom
}

// ClockSafeBox is the region where the system clock renders. Mood dots whose
// centers fall here get muted so they do not compete with the overlay.
func ClockSafeBox() Box {
	return Box{
		Left:   int(math.Trunc(float64(CanvasWidth) * 0.17)),
		Top:    int(math.Trunc(float64(CanvasHeight) * 0.05)),
		Right:  int(math.Trunc(float64(CanvasWidth) * 0.83)),
		Bottom: TopInsetClock + 220,
	}
}

// WidgetSoftSafeBox is the region where lockscreen widgets typically render.
// Placeholder dots here are de-emphasized; mood dots are left alone.
func WidgetSoftSafeBox() Box {
	return Box{
		Left:   SideInset,
		Top:    TopInsetClock + 170,
		Right:  CanvasWidth - SideInset,
		Bottom: TopInsetClock + 620,
	}
}

// ProtectedTop is the vertical offset the grid must start below. With the
// lockscreen-UI toggle on, the grid is pushed under the widget area.
func ProtectedTop(avoidLockScreenUI bool) int {
	if avoidLockScreenUI {
		return WidgetSoftSafeBox().Bottom + 28
	}
	return TopInsetClock
}

// EffectiveGap resolves the inter-dot gap for a spacing key and column
// count. Dense multi-column layouts get tighter gutters so dots stay
// legible, floored at 1px.
func EffectiveGap(spacing string, columns int) int {
	gap, ok := spacingToGap[spacing]
	if !ok {
		gap = spacingToGap[SpacingMedium]
	}

	denseColumns := max(0, columns-20)
	gap -= min(2, denseColumns/5)
	return max(1, gap)
}

// ResolveDotSize derives the dot edge length from the slot size. Utilization
// rises with column count (denser grids get relatively bigger dots), capped
// at 0.92 and never exceeding the slot.
func ResolveDotSize(slotSize int, spacing string, columns int) int {
	denseRatio := math.Min(1, math.Max(0, float64(columns-14)/17))

	base := 0.80
	switch spacing {
	case SpacingTight:
		base = 0.84
	case SpacingWide:
		base = 0.74
	}

	utilization := math.Min(0.92, base+denseRatio*0.08)
	dot := int(math.Round(float64(slotSize) * utilization))
	return max(8, min(slotSize, dot))
}

// ResolveGridTop picks the grid's vertical offset. A grid taller than the
// drawable area is clamped rather than rejected.
func ResolveGridTop(position string, gridHeight, protectedTop, availableHeight int) int {
	minTop := max(0, protectedTop)
	maxTop := CanvasHeight - BottomInset - gridHeight
	if maxTop < minTop {
		return max(0, maxTop)
	}

	if position == PositionCenter {
		centered := minTop + max(0, (availableHeight-gridHeight)/2)
		return clampInt(centered, minTop, maxTop)
	}

	if protectedTop > TopInsetClock {
		// Lockscreen-UI avoidance inflated the protected area; bias the
		// grid slightly down within whatever room is left.
		extraRoom := max(0, availableHeight-gridHeight)
		return clampInt(minTop+min(56, extraRoom/7), minTop, maxTop)
	}

	minTop = max(minTop, TopInsetClock+36)

	// Place the grid lower than center to sit beneath clock/widgets on
	// tall phones.
	centeredTop := int(math.Trunc(float64(CanvasHeight)*0.60)) - gridHeight/2
	extraRoom := max(0, availableHeight-gridHeight)
	return clampInt(centeredTop+min(72, extraRoom/5), minTop, maxTop)
}

func clampInt(v, lo, hi int) int {
	if lo > hi {
		return lo
	}
	return max(lo, min(hi, v))
}

// Layout is the fully resolved grid geometry for one render.
type Layout struct {
	Columns int
	Rows    int

	Gap      int
	SlotSize int
	DotSize  int
	DotInset int // centers the dot within its slot
	Radius   int // corner radius; 0 for square dots

	Top  int
	Left int

	GridWidth  int
	GridHeight int

	Jan1Offset int // Sunday-origin weekday of Jan 1
}

// LayoutParams are the theme settings that drive grid geometry. Values are
// assumed pre-normalized; unknown strings fall back to defaults here anyway.
type LayoutParams struct {
	Columns           int
	Spacing           string
	Position          string
	Shape             string
	AvoidLockScreenUI bool
}

// ResolveLayout computes the grid geometry for the given year.
func ResolveLayout(p LayoutParams, year int) Layout {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	jan1Offset := int(jan1.Weekday()) // Go weeks already start on Sunday

	columns := p.Columns
	if columns < MinColumns || columns > MaxColumns {
		columns = 14
	}

	gap := EffectiveGap(p.Spacing, columns)
	rows := (daysInYear(year) + jan1Offset + columns - 1) / columns

	availableWidth := CanvasWidth - SideInset*2
	protectedTop := ProtectedTop(p.AvoidLockScreenUI)
	availableHeight := CanvasHeight - protectedTop - BottomInset

	slotByWidth := (availableWidth - gap*(columns-1)) / columns
	slotByHeight := (availableHeight - gap*(rows-1)) / rows
	slotSize := max(2, min(slotByWidth, slotByHeight))

	gridWidth := slotSize*columns + gap*(columns-1)
	gridHeight := slotSize*rows + gap*(rows-1)

	dotSize := ResolveDotSize(slotSize, p.Spacing, columns)

	radius := 0
	if p.Shape != "square" {
		// "rounded" and the legacy "rough" shape both render rounded.
		radius = max(1, int(math.Round(float64(dotSize)*0.24)))
	}

	return Layout{
		Columns:    columns,
		Rows:       rows,
		Gap:        gap,
		SlotSize:   slotSize,
		DotSize:    dotSize,
		DotInset:   (slotSize - dotSize) / 2,
		Radius:     radius,
		Top:        ResolveGridTop(p.Position, gridHeight, protectedTop, availableHeight),
		Left:       (CanvasWidth - gridWidth) / 2,
		GridWidth:  gridWidth,
		GridHeight: gridHeight,
		Jan1Offset: jan1Offset,
	}
}

// Column count bounds for the grid.
const (
	MinColumns = 7
	MaxColumns = 31
)

func daysInYear(year int) int {
	return time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC).YearDay()
}
