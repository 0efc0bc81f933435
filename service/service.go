package service

import (
	"coinwidget/core"
	"coinwidget/prefs"
)

// Services is the global service container
type Services struct {
	Widgets *WidgetService
	Errors  *core.ErrorLogger
}

// GlobalServices is the global service instance
var GlobalServices *Services

// InitServices initializes all services
func InitServices(store *prefs.Store, errors *core.ErrorLogger) {
	GlobalServices = &Services{
		Widgets: NewWidgetService(store),
		Errors:  errors,
	}
}
