package theme

import (
	"net/url"
	"testing"
)

func TestParsePatchTriState(t *testing.T) {
	p, err := ParsePatch([]byte(`{"bg_color": "#112233", "empty_color": null}`))
	if err != nil {
		t.Fatal(err)
	}

	if !p.BGColor.Present || p.BGColor.Null || p.BGColor.Value != "#112233" {
		t.Errorf("bg_color = %+v, want present value", p.BGColor)
	}
	if !p.EmptyColor.Present || !p.EmptyColor.Null {
		t.Errorf("empty_color = %+v, want present null", p.EmptyColor)
	}
	if p.Shape.Present {
		t.Errorf("shape = %+v, want absent", p.Shape)
	}
}

func TestParsePatchCamelCaseAliases(t *testing.T) {
	payload := []byte(`{
		"bgColor": "#0d1117",
		"gridColumns": 21,
		"avoidLockScreenUi": true,
		"bgImageUrl": "https://example.com/bg.png",
		"moodColors": {"5": "#0000ff"}
	}`)

	p, err := ParsePatch(payload)
	if err != nil {
		t.Fatal(err)
	}

	if !p.BGColor.Present || p.BGColor.Value != "#0d1117" {
		t.Errorf("bgColor alias not honored: %+v", p.BGColor)
	}
	if !p.Columns.Present || p.Columns.Value != 21 {
		t.Errorf("gridColumns alias not honored: %+v", p.Columns)
	}
	if !p.AvoidLockScreenUI.Present || !p.AvoidLockScreenUI.Value {
		t.Errorf("avoidLockScreenUi alias not honored: %+v", p.AvoidLockScreenUI)
	}
	if !p.BGImageURL.Present || p.BGImageURL.Value != "https://example.com/bg.png" {
		t.Errorf("bgImageUrl alias not honored: %+v", p.BGImageURL)
	}
	if !p.MoodColors.Present || p.MoodColors.Value["5"] != "#0000ff" {
		t.Errorf("moodColors alias not honored: %+v", p.MoodColors)
	}
}

func TestParsePatchSnakeCaseWinsOverAlias(t *testing.T) {
	p, err := ParsePatch([]byte(`{"columns": 9, "gridColumns": 21}`))
	if err != nil {
		t.Fatal(err)
	}
	if p.Columns.Value != 9 {
		t.Errorf("columns = %d, want snake_case value 9", p.Columns.Value)
	}
}

func TestParsePatchRejectsNonObject(t *testing.T) {
	if _, err := ParsePatch([]byte(`[1, 2, 3]`)); err == nil {
		t.Error("array payload accepted")
	}
	if _, err := ParsePatch([]byte(`{broken`)); err == nil {
		t.Error("malformed JSON accepted")
	}
}

func TestParsePatchIgnoresWrongTypes(t *testing.T) {
	p, err := ParsePatch([]byte(`{"bg_color": 42, "columns": "many", "avoid_lock_screen_ui": "yes"}`))
	if err != nil {
		t.Fatal(err)
	}
	if p.BGColor.Present {
		t.Errorf("numeric bg_color treated as present: %+v", p.BGColor)
	}
	if p.Columns.Present {
		t.Errorf("string columns treated as present: %+v", p.Columns)
	}
	if p.AvoidLockScreenUI.Present {
		t.Errorf("string avoid flag treated as present: %+v", p.AvoidLockScreenUI)
	}
}

func TestApplyKeepsLastKnownGoodOnInvalidValues(t *testing.T) {
	base := Default()

	p, err := ParsePatch([]byte(`{
		"bg_color": "not-a-color",
		"shape": "blob",
		"spacing": "huge",
		"position": "sideways",
		"columns": 99
	}`))
	if err != nil {
		t.Fatal(err)
	}

	next := base.Apply(p)
	if next.BGColor != base.BGColor {
		t.Errorf("bg_color = %q, want untouched %q", next.BGColor, base.BGColor)
	}
	if next.Shape != base.Shape || next.Spacing != base.Spacing || next.Position != base.Position {
		t.Errorf("enums changed: %+v", next)
	}
	if next.Columns != base.Columns {
		t.Errorf("columns = %d, want untouched %d", next.Columns, base.Columns)
	}
}

func TestApplyEmptyColorNullRevertsToDerived(t *testing.T) {
	base := Default()
	base.EmptyColor = "#445566"

	p, err := ParsePatch([]byte(`{"empty_color": null}`))
	if err != nil {
		t.Fatal(err)
	}
	if next := base.Apply(p); next.EmptyColor != "" {
		t.Errorf("empty_color = %q, want cleared", next.EmptyColor)
	}
}

func TestApplyBGImageURLNullClears(t *testing.T) {
	base := Default()
	base.BGImageURL = "https://example.com/old.png"

	p, err := ParsePatch([]byte(`{"bg_image_url": null}`))
	if err != nil {
		t.Fatal(err)
	}
	if next := base.Apply(p); next.BGImageURL != "" {
		t.Errorf("bg_image_url = %q, want cleared", next.BGImageURL)
	}
}

func TestApplyMergesMoodColorsPerLevel(t *testing.T) {
	p, err := ParsePatch([]byte(`{"mood_colors": {"2": "#ABCDEF", "4": "junk", "7": "#123456"}}`))
	if err != nil {
		t.Fatal(err)
	}

	next := Default().Apply(p)
	if next.MoodColors["2"] != "#abcdef" {
		t.Errorf("level 2 = %q, want normalized #abcdef", next.MoodColors["2"])
	}
	if next.MoodColors["4"] != "#22c55e" {
		t.Errorf("level 4 = %q, want untouched default", next.MoodColors["4"])
	}
	if _, ok := next.MoodColors["7"]; ok {
		t.Error("out-of-range level 7 leaked into the theme")
	}
}

func TestApplyAcceptsLegacyRoughShape(t *testing.T) {
	p, err := ParsePatch([]byte(`{"shape": "rough"}`))
	if err != nil {
		t.Fatal(err)
	}
	if next := Default().Apply(p); next.Shape != ShapeRough {
		t.Errorf("shape = %q, want rough", next.Shape)
	}
}

func TestApplyDoesNotMutateReceiver(t *testing.T) {
	base := Default()
	p, err := ParsePatch([]byte(`{"mood_colors": {"1": "#101010"}, "columns": 7}`))
	if err != nil {
		t.Fatal(err)
	}

	_ = base.Apply(p)
	if base.MoodColors["1"] != "#ef4444" || base.Columns != 14 {
		t.Errorf("Apply mutated the receiver: %+v", base)
	}
}

func TestPreviewPatch(t *testing.T) {
	p := PreviewPatch(url.Values{"columns": {"7"}, "avoid_lock_screen_ui": {"true"}})
	if !p.Columns.Present || p.Columns.Value != 7 {
		t.Errorf("columns = %+v", p.Columns)
	}
	if !p.AvoidLockScreenUI.Present || !p.AvoidLockScreenUI.Value {
		t.Errorf("avoid flag = %+v", p.AvoidLockScreenUI)
	}

	p = PreviewPatch(url.Values{"gridColumns": {"21"}, "avoidLockScreenUi": {"0"}})
	if !p.Columns.Present || p.Columns.Value != 21 {
		t.Errorf("gridColumns alias = %+v", p.Columns)
	}
	if !p.AvoidLockScreenUI.Present || p.AvoidLockScreenUI.Value {
		t.Errorf("avoidLockScreenUi alias = %+v", p.AvoidLockScreenUI)
	}

	p = PreviewPatch(url.Values{"columns": {"lots"}, "avoid_lock_screen_ui": {"maybe"}})
	if p.Columns.Present || p.AvoidLockScreenUI.Present {
		t.Errorf("junk query produced a non-empty patch: %+v", p)
	}

	if p := PreviewPatch(url.Values{}); p.Columns.Present || p.AvoidLockScreenUI.Present {
		t.Errorf("empty query produced a non-empty patch: %+v", p)
	}
}
