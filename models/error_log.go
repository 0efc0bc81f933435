package models

import "time"

// ErrorLog is one storage failure the widget store swallowed.
type ErrorLog struct {
	ID        int       `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"`     // ERROR, WARN
	Source    string    `json:"source"`    // Component that reported it
	WidgetID  int       `json:"widget_id"` // Widget whose record was involved
	Op        string    `json:"op"`        // load, decode, encode, save, remove
	Message   string    `json:"message"`
	Stack     string    `json:"stack,omitempty"`
}
