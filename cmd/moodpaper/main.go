// moodpaper — Year-in-pixels lockscreen wallpaper renderer.
//
// Usage:
//
//	moodpaper render -o <file.png> [--theme <json>] [--moods <json>] [--date YYYY-MM-DD] [--label <text>]
//	moodpaper samples --output-dir <dir> [--date YYYY-MM-DD] [--notes <text>]
//	moodpaper serve [--port 8080] [--token <token>] [--theme <json>] [--moods <json>]
//	moodpaper init
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/soleren/moodpaper/clients/server"
	"github.com/soleren/moodpaper/pkg/cache"
	"github.com/soleren/moodpaper/pkg/preview"
	"github.com/soleren/moodpaper/pkg/theme"
	"github.com/soleren/moodpaper/pkg/wallpaper"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "render":
		if err := runRender(os.Args[2:]); err != nil {
			fatal(err)
		}
	case "samples":
		if err := runSamples(os.Args[2:]); err != nil {
			fatal(err)
		}
	case "serve":
		if err := runServe(os.Args[2:]); err != nil {
			fatal(err)
		}
	case "init":
		if err := runInit(os.Args[2:]); err != nil {
			fatal(err)
		}
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

// ── render ──

func runRender(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)

	var (
		output    string
		themePath string
		moodsPath string
		dateKey   string
		label     string
	)

	fs.StringVar(&output, "o", "", "Output PNG path")
	fs.StringVar(&output, "output", "", "Output PNG path")
	fs.StringVar(&themePath, "theme", "", "Theme JSON (partial; merged over defaults)")
	fs.StringVar(&moodsPath, "moods", "", "Moods JSON: {\"YYYY-MM-DD\": {\"level\": 1..5}}")
	fs.StringVar(&dateKey, "date", "", "Render date YYYY-MM-DD (default: today)")
	fs.StringVar(&label, "label", "", "Stamp a review label onto the image")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if output == "" {
		return fmt.Errorf("output file is required (-o)")
	}

	t, moods, err := loadInputs(themePath, moodsPath)
	if err != nil {
		return err
	}

	today, err := resolveDate(dateKey)
	if err != nil {
		return err
	}

	png, err := renderOne(t, moods, today, label)
	if err != nil {
		return err
	}

	if err := os.WriteFile(output, png, 0644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	fmt.Printf("Done: %s\n", output)
	return nil
}

func renderOne(t theme.Theme, moods map[string]theme.Mood, today time.Time, label string) ([]byte, error) {
	if label == "" {
		return wallpaper.Render(t, moods, today)
	}

	// Labeled renders go through the raw buffer so the stamp lands before
	// PNG encoding.
	lay := wallpaper.ResolveLayout(wallpaper.LayoutParams{
		Columns:           theme.NormalizeColumns(t.Columns, theme.Default().Columns),
		Spacing:           t.Spacing,
		Position:          t.Position,
		Shape:             t.Shape,
		AvoidLockScreenUI: t.AvoidLockScreenUI,
	}, today.Year())
	pal := wallpaper.BuildPalette(t)

	canvas := wallpaper.NewCanvas(wallpaper.CanvasWidth, wallpaper.CanvasHeight)
	top, bottom := wallpaper.BackgroundGradient(pal.Background)
	canvas.FillGradient(top, bottom)
	for _, dot := range wallpaper.ClassifyDays(today.Year(), today, moods, pal, lay) {
		col := wallpaper.ApplyReadability(dot.Color, pal.Background, dot.Kind, dot.CenterX, dot.CenterY)
		canvas.FillCell(dot.X, dot.Y, lay.DotSize, lay.DotSize, col, lay.Radius)
	}

	preview.StampLabel(canvas.Pix, canvas.Width, canvas.Height, label)
	return wallpaper.EncodePNG(canvas.Width, canvas.Height, canvas.Pix)
}

// ── samples ──

// sampleSpec is one themed variant in a review sheet.
type sampleSpec struct {
	Name  string      `json:"name"`
	Patch theme.Patch `json:"-"`
}

func sampleSpecs() []sampleSpec {
	patch := func(raw string) theme.Patch {
		p, err := theme.ParsePatch([]byte(raw))
		if err != nil {
			panic("bad built-in sample patch: " + err.Error())
		}
		return p
	}

	return []sampleSpec{
		{Name: "default", Patch: theme.Patch{}},
		{Name: "columns-7", Patch: patch(`{"columns": 7}`)},
		{Name: "columns-21", Patch: patch(`{"columns": 21}`)},
		{Name: "columns-31-tight", Patch: patch(`{"columns": 31, "spacing": "tight"}`)},
		{Name: "square", Patch: patch(`{"shape": "square"}`)},
		{Name: "light", Patch: patch(`{"bg_color": "#f5f2ec", "empty_color": "#d9d4ca"}`)},
		{Name: "avoid-lockscreen-ui", Patch: patch(`{"avoid_lock_screen_ui": true}`)},
		{Name: "center-wide", Patch: patch(`{"position": "center", "spacing": "wide"}`)},
		{Name: "warm-moods", Patch: patch(`{"mood_colors": {"1": "#7f1d1d", "2": "#b45309", "3": "#ca8a04", "4": "#4d7c0f", "5": "#0f766e"}}`)},
	}
}

type sampleManifest struct {
	Iteration   int      `json:"iteration"`
	RenderDate  string   `json:"render_date"`
	Notes       string   `json:"notes,omitempty"`
	SampleCount int      `json:"sample_count"`
	Samples     []string `json:"samples"`
}

func runSamples(args []string) error {
	fs := flag.NewFlagSet("samples", flag.ExitOnError)

	var (
		outputDir string
		dateKey   string
		notes     string
		moodsPath string
	)

	fs.StringVar(&outputDir, "output-dir", "wallpaper-samples", "Directory for sample iterations")
	fs.StringVar(&dateKey, "date", "", "Render date YYYY-MM-DD (default: today)")
	fs.StringVar(&notes, "notes", "", "Free-text notes recorded in the manifest")
	fs.StringVar(&moodsPath, "moods", "", "Moods JSON shared by all samples (default: generated demo moods)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	today, err := resolveDate(dateKey)
	if err != nil {
		return err
	}

	moods := demoMoods(today)
	if moodsPath != "" {
		if _, moods, err = loadInputs("", moodsPath); err != nil {
			return err
		}
	}

	iteration, iterDir, err := nextIterationDir(outputDir)
	if err != nil {
		return err
	}

	specs := sampleSpecs()
	manifest := sampleManifest{
		Iteration:   iteration,
		RenderDate:  today.Format(theme.DateKeyFormat),
		Notes:       notes,
		SampleCount: len(specs),
	}

	base := theme.Default()
	for _, spec := range specs {
		png, err := renderOne(base.Apply(spec.Patch), moods, today, spec.Name+" @ "+manifest.RenderDate)
		if err != nil {
			return fmt.Errorf("sample %s: %w", spec.Name, err)
		}
		name := spec.Name + ".png"
		if err := os.WriteFile(filepath.Join(iterDir, name), png, 0644); err != nil {
			return fmt.Errorf("write sample %s: %w", name, err)
		}
		manifest.Samples = append(manifest.Samples, name)
		fmt.Printf("Rendered: %s\n", filepath.Join(iterDir, name))
	}

	manifestName := fmt.Sprintf("iter-%03d-manifest.json", iteration)
	if err := writeJSON(filepath.Join(iterDir, manifestName), manifest); err != nil {
		return err
	}

	latest := map[string]any{
		"iteration":      iteration,
		"iteration_name": fmt.Sprintf("iter-%03d", iteration),
	}
	if err := writeJSON(filepath.Join(outputDir, "latest.json"), latest); err != nil {
		return err
	}

	fmt.Printf("Done: %d samples in %s\n", len(specs), iterDir)
	return nil
}

// nextIterationDir creates and returns the first unused iter-NNN directory.
func nextIterationDir(outputDir string) (int, string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return 0, "", fmt.Errorf("create %s: %w", outputDir, err)
	}
	for i := 1; ; i++ {
		dir := filepath.Join(outputDir, fmt.Sprintf("iter-%03d", i))
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return 0, "", fmt.Errorf("create %s: %w", dir, err)
			}
			return i, dir, nil
		}
	}
}

// demoMoods scatters a handful of entries over the render year so samples
// show all three dot kinds.
func demoMoods(today time.Time) map[string]theme.Mood {
	year := today.Year()
	day := func(month time.Month, d, level int) (string, theme.Mood) {
		key := time.Date(year, month, d, 0, 0, 0, 0, time.UTC).Format(theme.DateKeyFormat)
		return key, theme.Mood{Level: level}
	}

	moods := make(map[string]theme.Mood)
	for _, e := range []struct {
		month time.Month
		d     int
		level int
	}{
		{time.January, 3, 2}, {time.January, 7, 5}, {time.January, 20, 3},
		{time.February, 2, 4}, {time.February, 14, 1},
		{time.March, 9, 4}, {time.March, 28, 5},
	} {
		k, m := day(e.month, e.d, e.level)
		moods[k] = m
	}
	return moods
}

// ── serve ──

func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)

	var (
		port      string
		token     string
		themePath string
		moodsPath string
	)

	fs.StringVar(&port, "port", "8080", "Listen port")
	fs.StringVar(&port, "p", "8080", "Listen port")
	fs.StringVar(&token, "token", "demo", "Wallpaper token for the seeded user")
	fs.StringVar(&themePath, "theme", "", "Theme JSON for the seeded user")
	fs.StringVar(&moodsPath, "moods", "", "Moods JSON for the seeded user")

	if err := fs.Parse(args); err != nil {
		return err
	}

	t, moods, err := loadInputs(themePath, moodsPath)
	if err != nil {
		return err
	}

	store := server.NewMemoryStore()
	store.Put(token, server.User{
		ID:       "local",
		Revision: time.Now().UTC().Format(time.RFC3339),
		Theme:    t,
		Moods:    moods,
	})

	srv := server.New(store, cache.NewMemory(256))
	fmt.Printf("Wallpaper: http://localhost:%s/w/%s\n", port, token)
	return srv.ListenAndServe(":" + port)
}

// ── init ──

const sampleThemeJSON = `{
  "bg_color": "#0d1117",
  "mood_colors": {
    "1": "#ef4444",
    "2": "#f97316",
    "3": "#eab308",
    "4": "#22c55e",
    "5": "#3b82f6"
  },
  "shape": "rounded",
  "spacing": "medium",
  "position": "clock",
  "avoid_lock_screen_ui": false,
  "columns": 14
}
`

const sampleMoodsJSON = `{
  "2026-01-03": {"level": 2},
  "2026-01-07": {"level": 5, "note": "great day"},
  "2026-02-14": {"level": 1}
}
`

func runInit(args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	var themeOut, moodsOut string
	fs.StringVar(&themeOut, "theme", "theme.json", "Output path for sample theme")
	fs.StringVar(&moodsOut, "moods", "moods.json", "Output path for sample moods")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := os.WriteFile(themeOut, []byte(sampleThemeJSON), 0644); err != nil {
		return fmt.Errorf("write theme: %w", err)
	}
	if err := os.WriteFile(moodsOut, []byte(sampleMoodsJSON), 0644); err != nil {
		return fmt.Errorf("write moods: %w", err)
	}

	fmt.Printf("Created: %s, %s\n", themeOut, moodsOut)
	fmt.Println("Run: moodpaper render -o wallpaper.png --theme theme.json --moods moods.json")
	return nil
}

// ── helpers ──

// loadInputs reads optional theme and moods files. The theme file is a
// partial document merged over the defaults; invalid values fall back
// silently, matching the renderer's philosophy. Invalid mood entries are
// skipped with a warning.
func loadInputs(themePath, moodsPath string) (theme.Theme, map[string]theme.Mood, error) {
	t := theme.Default()
	if themePath != "" {
		raw, err := os.ReadFile(themePath)
		if err != nil {
			return theme.Theme{}, nil, fmt.Errorf("read theme: %w", err)
		}
		patch, err := theme.ParsePatch(raw)
		if err != nil {
			return theme.Theme{}, nil, err
		}
		t = t.Apply(patch)
	}

	moods := make(map[string]theme.Mood)
	if moodsPath != "" {
		raw, err := os.ReadFile(moodsPath)
		if err != nil {
			return theme.Theme{}, nil, fmt.Errorf("read moods: %w", err)
		}
		var parsed map[string]theme.Mood
		if err := json.Unmarshal(raw, &parsed); err != nil {
			return theme.Theme{}, nil, fmt.Errorf("parse moods: %w", err)
		}
		for key, mood := range parsed {
			if _, err := theme.ParseDateKey(key); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: skipping mood with bad date key %q\n", key)
				continue
			}
			if err := theme.ValidateMood(mood); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: skipping mood %s: %v\n", key, err)
				continue
			}
			moods[key] = mood
		}
	}

	return t, moods, nil
}

func resolveDate(dateKey string) (time.Time, error) {
	if dateKey == "" {
		return time.Now(), nil
	}
	return theme.ParseDateKey(dateKey)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func printUsage() {
	fmt.Print(`moodpaper — Year-in-pixels lockscreen wallpaper renderer

USAGE:
    moodpaper render -o <file.png> [options]
    moodpaper samples --output-dir <dir> [options]
    moodpaper serve [--port 8080] [options]
    moodpaper init [options]

RENDER:
    -o, --output <path>    Output PNG path (1290x2796)
    --theme <path>         Theme JSON, merged over defaults
    --moods <path>         Moods JSON: {"YYYY-MM-DD": {"level": 1..5}}
    --date <YYYY-MM-DD>    Render date (default: today)
    --label <text>         Stamp a review label onto the image

SAMPLES:
    --output-dir <dir>     Directory for iter-NNN sample folders
    --date <YYYY-MM-DD>    Render date shared by all samples
    --notes <text>         Notes recorded in the manifest
    --moods <path>         Moods JSON (default: generated demo moods)

SERVE:
    --port <port>          Listen port (default: 8080)
    --token <token>        Wallpaper token of the seeded user (default: demo)
    --theme, --moods       Inputs for the seeded user

EXAMPLES:
    moodpaper init
    moodpaper render -o wallpaper.png --theme theme.json --moods moods.json
    moodpaper render -o check.png --date 2026-02-20 --label "feb check"
    moodpaper samples --output-dir samples --date 2026-02-20 --notes "first pass"
    moodpaper serve --port 8080 --moods moods.json
`)
}
