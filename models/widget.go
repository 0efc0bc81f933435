package models

import (
	"coinwidget/prefs"
	"strings"
)

// WidgetSetup request payload saved by the settings screen
type WidgetSetup struct {
	Coin         string `json:"coin" binding:"required"`
	Currency     string `json:"currency" binding:"required"`
	Refresh      int    `json:"refresh"`
	Exchange     string `json:"exchange" binding:"required"`
	ShowLabel    bool   `json:"show_label"`
	Theme        string `json:"theme"`
	ShowIcon     *bool  `json:"show_icon"`
	ShowDecimals *bool  `json:"show_decimals"`
	Unit         string `json:"unit"`
}

// Normalize trims whitespace from input fields
func (s *WidgetSetup) Normalize() {
	s.Coin = strings.ToUpper(strings.TrimSpace(s.Coin))
	s.Currency = strings.TrimSpace(s.Currency)
	s.Exchange = strings.TrimSpace(s.Exchange)
	s.Theme = strings.TrimSpace(s.Theme)
	s.Unit = strings.TrimSpace(s.Unit)
}

// FieldUpdate sets one raw field; a null value clears it.
type FieldUpdate struct {
	Value *string `json:"value"`
}

// ExchangeValues request payload; omitted names are left unchanged.
type ExchangeValues struct {
	Coin     *string `json:"coin"`
	Currency *string `json:"currency"`
}

// TextSizeUpdate request payload
type TextSizeUpdate struct {
	Orientation string  `json:"orientation" binding:"required"`
	Size        float32 `json:"size"`
}

// TemporaryUpdate request payload
type TemporaryUpdate struct {
	Temporary bool `json:"temporary"`
}

// PriceUpdate request payload written by the refresh job
type PriceUpdate struct {
	Value string `json:"value" binding:"required"`
}

// WidgetView response model with every setting resolved
type WidgetView struct {
	ID int `json:"id"`
	prefs.Settings
}
