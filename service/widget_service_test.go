package service

import (
	"coinwidget/models"
	"coinwidget/prefs"
	"errors"
	"math"
	"testing"
	"time"
)

func newTestService() *WidgetService {
	clock := func() time.Time { return time.UnixMilli(1700000000000) }
	return NewWidgetService(prefs.NewStore(prefs.NewMemoryBackend(), prefs.WithClock(clock)))
}

func TestParseWidgetID(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"42", 42, false},
		{" 7 ", 7, false},
		{"abc", 0, true},
		{"-1", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseWidgetID(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Fatalf("ParseWidgetID(%q) = %d, %v", tt.in, got, err)
		}
		if err != nil && !errors.Is(err, ErrInvalidWidgetID) {
			t.Fatalf("error %v does not wrap ErrInvalidWidgetID", err)
		}
	}
}

func TestWidgetService_Setup(t *testing.T) {
	svc := newTestService()
	hideIcon := false

	err := svc.Setup(42, models.WidgetSetup{
		Coin:      " btc ",
		Currency:  "USD",
		Exchange:  "COINBASE",
		ShowLabel: true,
		Theme:     "Transparent DayNight",
		ShowIcon:  &hideIcon,
		Unit:      "mBTC",
	})
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}

	view := svc.Get(42)
	if view.ID != 42 || view.Coin != prefs.BTC || view.Exchange != prefs.Coinbase {
		t.Fatalf("unexpected view: %+v", view)
	}
	if view.Interval != prefs.DefaultInterval {
		t.Fatalf("Interval = %d, want default", view.Interval)
	}
	if view.IconShown || !view.ShowDecimals || !view.LabelShown || !view.Transparent {
		t.Fatalf("unexpected flags: %+v", view.Settings)
	}
	if view.Layout != "widget_layout_transparent_auto" {
		t.Fatalf("Layout = %q", view.Layout)
	}
	if !svc.IsLightTheme(42, false) || svc.IsLightTheme(42, true) {
		t.Fatalf("auto theme should follow night mode")
	}
}

func TestWidgetService_SetupValidation(t *testing.T) {
	svc := newTestService()
	if err := svc.Setup(1, models.WidgetSetup{Coin: "BTC"}); !errors.Is(err, ErrInvalidSetup) {
		t.Fatalf("err = %v, want ErrInvalidSetup", err)
	}
	if err := svc.Setup(1, models.WidgetSetup{Coin: "BTC", Currency: "USD", Exchange: "KRAKEN", Refresh: -5}); !errors.Is(err, ErrInvalidSetup) {
		t.Fatalf("err = %v, want ErrInvalidSetup", err)
	}
}

func TestWidgetService_SetField(t *testing.T) {
	svc := newTestService()
	value := "15"

	if err := svc.SetField(3, "refresh", &value); err != nil {
		t.Fatalf("SetField: %v", err)
	}
	if got := svc.Get(3).Interval; got != 15 {
		t.Fatalf("Interval = %d", got)
	}
	if err := svc.SetField(3, "refresh", nil); err != nil {
		t.Fatalf("SetField(nil): %v", err)
	}
	if got := svc.Get(3).Interval; got != prefs.DefaultInterval {
		t.Fatalf("Interval = %d after clear", got)
	}
	if err := svc.SetField(3, "colour", &value); !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("err = %v, want ErrUnknownKey", err)
	}
}

func TestWidgetService_TextSizeAndTemporary(t *testing.T) {
	svc := newTestService()

	if err := svc.SetTextSize(5, models.TextSizeUpdate{Orientation: "Landscape", Size: 22}); err != nil {
		t.Fatalf("SetTextSize: %v", err)
	}
	if got := svc.Get(5).LandscapeTextSize; got != 22 {
		t.Fatalf("LandscapeTextSize = %v", got)
	}
	if err := svc.SetTextSize(5, models.TextSizeUpdate{Orientation: "diagonal", Size: 22}); !errors.Is(err, ErrInvalidOrientation) {
		t.Fatalf("err = %v, want ErrInvalidOrientation", err)
	}
	if err := svc.SetTextSize(5, models.TextSizeUpdate{Orientation: "portrait", Size: float32(math.Inf(1))}); !errors.Is(err, ErrInvalidTextSize) {
		t.Fatalf("err = %v, want ErrInvalidTextSize", err)
	}
	if err := svc.ClearTextSize(5); err != nil {
		t.Fatalf("ClearTextSize: %v", err)
	}
	if got := svc.Get(5).LandscapeTextSize; got != prefs.TextSizeUnset {
		t.Fatalf("LandscapeTextSize = %v after clear", got)
	}

	if err := svc.MarkTemporary(5, true); err != nil {
		t.Fatalf("MarkTemporary: %v", err)
	}
	if !svc.Get(5).Temporary {
		t.Fatalf("Temporary = false")
	}
	deleted, err := svc.Cleanup(5)
	if err != nil || !deleted {
		t.Fatalf("Cleanup = %v, %v", deleted, err)
	}
	deleted, err = svc.Cleanup(5)
	if err != nil || deleted {
		t.Fatalf("second Cleanup = %v, %v", deleted, err)
	}
}

func TestWidgetService_RecordPrice(t *testing.T) {
	svc := newTestService()
	if err := svc.RecordPrice(8, models.PriceUpdate{Value: " 64000.12 "}); err != nil {
		t.Fatalf("RecordPrice: %v", err)
	}
	view := svc.Get(8)
	if view.LastValue != "64000.12" {
		t.Fatalf("LastValue = %q", view.LastValue)
	}
	if view.LastUpdate != 1700000000000 {
		t.Fatalf("LastUpdate = %d", view.LastUpdate)
	}
}

func TestWidgetService_ExchangeValues(t *testing.T) {
	svc := newTestService()
	coin := "XXBT"
	if err := svc.SetExchangeValues(9, models.ExchangeValues{Coin: &coin}); err != nil {
		t.Fatalf("SetExchangeValues: %v", err)
	}
	view := svc.Get(9)
	if view.ExchangeCoinName != "XXBT" || view.ExchangeCurrencyName != "" {
		t.Fatalf("unexpected names: %q / %q", view.ExchangeCoinName, view.ExchangeCurrencyName)
	}
}
