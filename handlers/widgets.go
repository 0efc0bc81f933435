package handlers

import (
	"coinwidget/models"
	"coinwidget/service"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the widget and system routes on api.
func RegisterRoutes(api *gin.RouterGroup) {
	widgets := api.Group("/widgets/:id")
	{
		widgets.GET("", GetWidget)
		widgets.PUT("", SetupWidget)
		widgets.DELETE("", DeleteWidget)
		widgets.PUT("/fields/:key", SetWidgetField)
		widgets.PUT("/exchange-values", SetExchangeValues)
		widgets.PUT("/text-size", SetTextSize)
		widgets.DELETE("/text-size", ClearTextSize)
		widgets.PUT("/temporary", MarkTemporary)
		widgets.POST("/cleanup", CleanupWidget)
		widgets.POST("/price", RecordPrice)
		widgets.GET("/light", GetLightTheme)
	}

	api.GET("/health", HealthCheck)
	api.GET("/metrics", GetMetrics)
	api.GET("/error-logs", GetErrorLogs)
	api.DELETE("/error-logs", ClearErrorLogs)
}

// widgetID parses the :id path parameter, answering the request itself on failure.
func widgetID(c *gin.Context) (int, bool) {
	id, err := service.ParseWidgetID(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, CodeInvalidRequest, "Invalid widget id", err.Error())
		return 0, false
	}
	return id, true
}

// bindJSON decodes the body, answering the request itself on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		fail(c, http.StatusBadRequest, CodeInvalidRequest, "Invalid request", err.Error())
		return false
	}
	return true
}

func writeFailed(c *gin.Context, message string, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidSetup),
		errors.Is(err, service.ErrUnknownKey),
		errors.Is(err, service.ErrInvalidOrientation),
		errors.Is(err, service.ErrInvalidTextSize):
		fail(c, http.StatusBadRequest, CodeInvalidRequest, message, err.Error())
	default:
		fail(c, http.StatusInternalServerError, CodeInternal, message, err.Error())
	}
}

// GetWidget returns every resolved setting of a widget
func GetWidget(c *gin.Context) {
	id, valid := widgetID(c)
	if !valid {
		return
	}
	ok(c, service.GlobalServices.Widgets.Get(id))
}

// SetupWidget replaces a widget's settings from the settings screen
func SetupWidget(c *gin.Context) {
	id, valid := widgetID(c)
	if !valid {
		return
	}
	var req models.WidgetSetup
	if !bindJSON(c, &req) {
		return
	}

	if err := service.GlobalServices.Widgets.Setup(id, req); err != nil {
		writeFailed(c, "Failed to save widget", err)
		return
	}
	ok(c, service.GlobalServices.Widgets.Get(id))
}

// DeleteWidget removes a widget's settings
func DeleteWidget(c *gin.Context) {
	id, valid := widgetID(c)
	if !valid {
		return
	}
	if err := service.GlobalServices.Widgets.Delete(id); err != nil {
		writeFailed(c, "Failed to delete widget", err)
		return
	}
	ok(c, gin.H{"ok": true})
}

// SetWidgetField writes one raw field; a null value clears it
func SetWidgetField(c *gin.Context) {
	id, valid := widgetID(c)
	if !valid {
		return
	}
	var req models.FieldUpdate
	if !bindJSON(c, &req) {
		return
	}

	if err := service.GlobalServices.Widgets.SetField(id, c.Param("key"), req.Value); err != nil {
		writeFailed(c, "Failed to update field", err)
		return
	}
	ok(c, gin.H{"ok": true})
}

// SetExchangeValues stores exchange-specific coin and currency names
func SetExchangeValues(c *gin.Context) {
	id, valid := widgetID(c)
	if !valid {
		return
	}
	var req models.ExchangeValues
	if !bindJSON(c, &req) {
		return
	}

	if err := service.GlobalServices.Widgets.SetExchangeValues(id, req); err != nil {
		writeFailed(c, "Failed to update exchange values", err)
		return
	}
	ok(c, gin.H{"ok": true})
}

// SetTextSize records a measured text size
func SetTextSize(c *gin.Context) {
	id, valid := widgetID(c)
	if !valid {
		return
	}
	var req models.TextSizeUpdate
	if !bindJSON(c, &req) {
		return
	}

	if err := service.GlobalServices.Widgets.SetTextSize(id, req); err != nil {
		writeFailed(c, "Failed to update text size", err)
		return
	}
	ok(c, gin.H{"ok": true})
}

// ClearTextSize resets both text sizes
func ClearTextSize(c *gin.Context) {
	id, valid := widgetID(c)
	if !valid {
		return
	}
	if err := service.GlobalServices.Widgets.ClearTextSize(id); err != nil {
		writeFailed(c, "Failed to clear text size", err)
		return
	}
	ok(c, gin.H{"ok": true})
}

// MarkTemporary sets or clears the provisional-widget flag
func MarkTemporary(c *gin.Context) {
	id, valid := widgetID(c)
	if !valid {
		return
	}
	var req models.TemporaryUpdate
	if !bindJSON(c, &req) {
		return
	}

	if err := service.GlobalServices.Widgets.MarkTemporary(id, req.Temporary); err != nil {
		writeFailed(c, "Failed to update temporary flag", err)
		return
	}
	ok(c, gin.H{"ok": true})
}

// CleanupWidget deletes a widget whose setup was abandoned
func CleanupWidget(c *gin.Context) {
	id, valid := widgetID(c)
	if !valid {
		return
	}
	deleted, err := service.GlobalServices.Widgets.Cleanup(id)
	if err != nil {
		writeFailed(c, "Failed to clean up widget", err)
		return
	}
	ok(c, gin.H{"deleted": deleted})
}

// RecordPrice stores the latest price from the refresh job
func RecordPrice(c *gin.Context) {
	id, valid := widgetID(c)
	if !valid {
		return
	}
	var req models.PriceUpdate
	if !bindJSON(c, &req) {
		return
	}

	if err := service.GlobalServices.Widgets.RecordPrice(id, req); err != nil {
		writeFailed(c, "Failed to record price", err)
		return
	}
	ok(c, gin.H{"ok": true})
}

// GetLightTheme resolves the theme for the caller's night mode (?night=true)
func GetLightTheme(c *gin.Context) {
	id, valid := widgetID(c)
	if !valid {
		return
	}
	night, err := strconv.ParseBool(c.DefaultQuery("night", "false"))
	if err != nil {
		fail(c, http.StatusBadRequest, CodeInvalidRequest, "Invalid night parameter", err.Error())
		return
	}
	ok(c, gin.H{"light": service.GlobalServices.Widgets.IsLightTheme(id, night)})
}
