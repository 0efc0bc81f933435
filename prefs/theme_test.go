package prefs

import "testing"

func TestThemeResolution(t *testing.T) {
	tests := []struct {
		theme        string
		layout       Layout
		transparent  bool
		lightAtDay   bool
		lightAtNight bool
	}{
		{ThemeLight, LayoutDefault, false, true, true},
		{ThemeDark, LayoutDark, false, false, false},
		{ThemeTransparentDark, LayoutTransparentDark, true, false, false},
		{ThemeDayNight, LayoutAuto, false, true, false},
		{ThemeTransparentDayNight, LayoutTransparentAuto, true, true, false},
		{ThemeTransparent, LayoutTransparent, true, true, true},
		{"Solarized", LayoutDefault, false, true, true},
	}

	store := NewStore(NewMemoryBackend())
	for i, tt := range tests {
		w := store.Widget(i)
		if err := w.SetValue(KeyTheme, tt.theme); err != nil {
			t.Fatalf("SetValue(%q): %v", tt.theme, err)
		}
		if got := w.ThemeLayout(); got != tt.layout {
			t.Fatalf("ThemeLayout(%q) = %v, want %v", tt.theme, got, tt.layout)
		}
		if got := w.IsTransparent(); got != tt.transparent {
			t.Fatalf("IsTransparent(%q) = %v, want %v", tt.theme, got, tt.transparent)
		}
		if got := w.IsLightTheme(false); got != tt.lightAtDay {
			t.Fatalf("IsLightTheme(%q, day) = %v, want %v", tt.theme, got, tt.lightAtDay)
		}
		if got := w.IsLightTheme(true); got != tt.lightAtNight {
			t.Fatalf("IsLightTheme(%q, night) = %v, want %v", tt.theme, got, tt.lightAtNight)
		}
	}
}

func TestLayoutString(t *testing.T) {
	if got := LayoutTransparentAuto.String(); got != "widget_layout_transparent_auto" {
		t.Fatalf("String() = %q", got)
	}
	if got := Layout(99).String(); got != "widget_layout" {
		t.Fatalf("unknown layout String() = %q", got)
	}
}

func TestParseHelpers(t *testing.T) {
	if _, ok := ParseKey("temp"); !ok {
		t.Fatalf("ParseKey(temp) not found")
	}
	if _, ok := ParseKey("color"); ok {
		t.Fatalf("ParseKey(color) should be unknown")
	}
	if o, ok := ParseOrientation("landscape"); !ok || o != Landscape {
		t.Fatalf("ParseOrientation(landscape) = %v, %v", o, ok)
	}
	if _, ok := ParseOrientation("sideways"); ok {
		t.Fatalf("ParseOrientation(sideways) should fail")
	}
	if _, ok := ParseExchange("kraken"); ok {
		t.Fatalf("exchange lookup must be exact")
	}
}
