package models

import "time"

// WidgetRecord stores one widget's serialized settings in SQLite.
// Data holds the whole record as a flat JSON object.
type WidgetRecord struct {
	WidgetID  string    `gorm:"primaryKey;size:32" json:"widget_id"`
	Data      string    `gorm:"type:text;not null" json:"data"`
	UpdatedAt time.Time `json:"updated_at"`
}
