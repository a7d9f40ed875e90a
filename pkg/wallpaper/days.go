// days.go — Calendar walk: every day of the target year becomes one dot
// with a kind, a color, and a pixel position.
package wallpaper

import (
	"strconv"
	"time"

	"github.com/soleren/moodpaper/pkg/theme"
)

// DotKind classifies a rendered day.
type DotKind uint8

const (
	// KindMood marks a day with a logged mood entry.
	KindMood DotKind = iota
	// KindFuture marks a day strictly after the render date.
	KindFuture
	// KindEmpty marks a past or present day without an entry.
	KindEmpty
)

func (k DotKind) String() string {
	switch k {
	case KindMood:
		return "mood"
	case KindFuture:
		return "future"
	}
	return "empty"
}

// Dot is one calendar day resolved to canvas coordinates.
type Dot struct {
	DateKey string
	Kind    DotKind
	Color   RGB

	X, Y             int // top-left of the dot square
	CenterX, CenterY int
}

// Palette holds every color a render can paint with.
type Palette struct {
	Background RGB
	Empty      RGB
	Future     RGB
	Moods      map[int]RGB
}

// BuildPalette resolves a theme's color strings into concrete RGB values.
// Missing or malformed values fall back to the defaults; an absent empty
// color is derived from the background.
func BuildPalette(t theme.Theme) Palette {
	def := theme.Default()

	bg := ParseHex(t.BGColor, ParseHex(def.BGColor, RGB{13, 17, 23}))

	var empty RGB
	if t.EmptyColor != "" {
		empty = ParseHex(t.EmptyColor, DeriveEmptyColor(bg))
	} else {
		empty = DeriveEmptyColor(bg)
	}

	moods := make(map[int]RGB, theme.MaxMoodLevel)
	for level := theme.MinMoodLevel; level <= theme.MaxMoodLevel; level++ {
		key := strconv.Itoa(level)
		fallback := ParseHex(def.MoodColors[key], empty)
		moods[level] = ParseHex(t.MoodColors[key], fallback)
	}

	return Palette{
		Background: bg,
		Empty:      empty,
		Future:     FutureColor(empty, bg),
		Moods:      moods,
	}
}

// ClassifyDays walks every day of the year in calendar order and assigns
// each a dot. The sequence starts at Jan 1, offset by its Sunday-origin
// weekday so columns align with weekdays.
func ClassifyDays(year int, today time.Time, moods map[string]theme.Mood, pal Palette, lay Layout) []Dot {
	todayDate := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	dots := make([]Dot, 0, daysInYear(year))
	cursor := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; cursor.Year() == year; i++ {
		slot := i + lay.Jan1Offset
		col := slot % lay.Columns
		row := slot / lay.Columns

		key := cursor.Format(theme.DateKeyFormat)

		var kind DotKind
		var color RGB
		if mood, ok := moods[key]; ok {
			kind = KindMood
			// Out-of-range levels still render as mood dots, just with
			// the empty color.
			if c, ok := pal.Moods[mood.Level]; ok {
				color = c
			} else {
				color = pal.Empty
			}
		} else if cursor.After(todayDate) {
			kind = KindFuture
			color = pal.Future
		} else {
			kind = KindEmpty
			color = pal.Empty
		}

		x := lay.Left + col*(lay.SlotSize+lay.Gap) + lay.DotInset
		y := lay.Top + row*(lay.SlotSize+lay.Gap) + lay.DotInset

		dots = append(dots, Dot{
			DateKey: key,
			Kind:    kind,
			Color:   color,
			X:       x,
			Y:       y,
			CenterX: x + lay.DotSize/2,
			CenterY: y + lay.DotSize/2,
		})

		cursor = cursor.AddDate(0, 0, 1)
	}

	return dots
}
