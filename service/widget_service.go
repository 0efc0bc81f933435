package service

import (
	"coinwidget/models"
	"coinwidget/prefs"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrInvalidWidgetID = errors.New("invalid widget id")
var ErrUnknownKey = errors.New("unknown setting key")
var ErrInvalidSetup = errors.New("invalid widget setup")
var ErrInvalidOrientation = errors.New("invalid orientation")
var ErrInvalidTextSize = errors.New("invalid text size")

// WidgetService exposes widget settings to the settings screen, the
// renderer and the refresh job.
type WidgetService struct {
	store *prefs.Store
}

// NewWidgetService constructs a widget service
func NewWidgetService(store *prefs.Store) *WidgetService {
	return &WidgetService{store: store}
}

// ParseWidgetID parses a decimal widget id from a path or command argument.
func ParseWidgetID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidWidgetID, raw)
	}
	return id, nil
}

// Get returns every resolved setting of a widget. Unknown widgets resolve to defaults.
func (s *WidgetService) Get(id int) models.WidgetView {
	return models.WidgetView{ID: id, Settings: s.store.Widget(id).Snapshot()}
}

// IsLightTheme resolves the theme against the caller's night mode.
func (s *WidgetService) IsLightTheme(id int, nightMode bool) bool {
	return s.store.Widget(id).IsLightTheme(nightMode)
}

// Setup replaces the widget's record with the settings screen fields
func (s *WidgetService) Setup(id int, req models.WidgetSetup) error {
	req.Normalize()

	if req.Coin == "" || req.Currency == "" || req.Exchange == "" {
		return fmt.Errorf("%w: coin, currency and exchange are required", ErrInvalidSetup)
	}
	if req.Refresh == 0 {
		req.Refresh = prefs.DefaultInterval
	}
	if req.Refresh < 0 {
		return fmt.Errorf("%w: refresh must be positive", ErrInvalidSetup)
	}

	setup := prefs.Setup{
		Coin:         req.Coin,
		Currency:     req.Currency,
		Refresh:      req.Refresh,
		Exchange:     req.Exchange,
		ShowLabel:    req.ShowLabel,
		Theme:        req.Theme,
		ShowIcon:     true,
		ShowDecimals: true,
		Unit:         req.Unit,
	}
	if req.ShowIcon != nil {
		setup.ShowIcon = *req.ShowIcon
	}
	if req.ShowDecimals != nil {
		setup.ShowDecimals = *req.ShowDecimals
	}

	if err := s.store.SetAll(id, setup); err != nil {
		return fmt.Errorf("failed to save widget setup: %w", err)
	}
	return nil
}

// SetField writes or (with a nil value) clears one raw field
func (s *WidgetService) SetField(id int, name string, value *string) error {
	key, ok := prefs.ParseKey(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKey, name)
	}

	var err error
	if value == nil {
		err = s.store.ClearValue(id, key)
	} else {
		err = s.store.SetValue(id, key, *value)
	}
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", key, err)
	}
	return nil
}

// SetExchangeValues stores exchange-specific names; nil names are left alone
func (s *WidgetService) SetExchangeValues(id int, req models.ExchangeValues) error {
	if err := s.store.Widget(id).SetExchangeValues(req.Coin, req.Currency); err != nil {
		return fmt.Errorf("failed to update exchange values: %w", err)
	}
	return nil
}

// SetTextSize records the measured text size for one orientation
func (s *WidgetService) SetTextSize(id int, req models.TextSizeUpdate) error {
	o, ok := prefs.ParseOrientation(strings.ToLower(strings.TrimSpace(req.Orientation)))
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidOrientation, req.Orientation)
	}
	if math.IsInf(float64(req.Size), 0) || math.IsNaN(float64(req.Size)) {
		return fmt.Errorf("%w: must be finite", ErrInvalidTextSize)
	}
	if err := s.store.Widget(id).SetTextSize(req.Size, o); err != nil {
		return fmt.Errorf("failed to update text size: %w", err)
	}
	return nil
}

// ClearTextSize resets both text sizes so the renderer measures again
func (s *WidgetService) ClearTextSize(id int) error {
	if err := s.store.Widget(id).ClearTextSize(); err != nil {
		return fmt.Errorf("failed to clear text size: %w", err)
	}
	return nil
}

// MarkTemporary sets or clears the provisional-widget flag
func (s *WidgetService) MarkTemporary(id int, temporary bool) error {
	if err := s.store.Widget(id).MarkTemporary(temporary); err != nil {
		return fmt.Errorf("failed to update temporary flag: %w", err)
	}
	return nil
}

// Cleanup deletes the widget if its setup was abandoned
func (s *WidgetService) Cleanup(id int) (bool, error) {
	deleted, err := s.store.DeleteIfTemporary(id)
	if err != nil {
		return false, fmt.Errorf("failed to clean up widget: %w", err)
	}
	return deleted, nil
}

// RecordPrice stores the latest price and stamps the update time
func (s *WidgetService) RecordPrice(id int, req models.PriceUpdate) error {
	w := s.store.Widget(id)
	if err := w.SetLastValue(strings.TrimSpace(req.Value)); err != nil {
		return fmt.Errorf("failed to record price: %w", err)
	}
	if err := w.SetLastUpdate(); err != nil {
		return fmt.Errorf("failed to record update time: %w", err)
	}
	return nil
}

// Delete removes the widget's record
func (s *WidgetService) Delete(id int) error {
	if err := s.store.Delete(id); err != nil {
		return fmt.Errorf("failed to delete widget: %w", err)
	}
	return nil
}
