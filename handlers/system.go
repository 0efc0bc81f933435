package handlers

import (
	"coinwidget/config"
	"coinwidget/database"
	"coinwidget/service"
	"coinwidget/version"
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
)

var storeProbe func(ctx context.Context) bool

// SetStoreProbe installs the storage health check used by HealthCheck.
// Without one the store is reported healthy.
func SetStoreProbe(probe func(ctx context.Context) bool) {
	storeProbe = probe
}

// HealthCheck health endpoint
func HealthCheck(c *gin.Context) {
	storeHealthy := true
	if storeProbe != nil {
		storeHealthy = storeProbe(c.Request.Context())
	}

	health := gin.H{
		"status":        "healthy",
		"timestamp":     time.Now().Unix(),
		"version":       version.GetFullVersion(),
		"store":         config.Settings.StoreBackend,
		"store_healthy": storeHealthy,
	}

	if !storeHealthy {
		health["status"] = "degraded"
		respond(c, http.StatusServiceUnavailable, CodeUnavailable, "Store unavailable", health)
		return
	}

	ok(c, health)
}

// GetMetrics gathers process and storage metrics
func GetMetrics(c *gin.Context) {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	ok(c, gin.H{
		"timestamp": time.Now().Unix(),
		"sqlite": gin.H{
			"busy_errors":   database.Stats.BusyErrors(),
			"locked_errors": database.Stats.LockedErrors(),
		},
		"error_logs": gin.H{
			"total": service.GlobalServices.Errors.Len(),
		},
		"system": gin.H{
			"goroutines":   runtime.NumGoroutine(),
			"memory_alloc": mem.Alloc,
			"memory_total": mem.TotalAlloc,
			"memory_sys":   mem.Sys,
			"gc_runs":      mem.NumGC,
		},
	})
}

// GetErrorLogs returns recent storage errors
func GetErrorLogs(c *gin.Context) {
	ok(c, service.GlobalServices.Errors.Recent())
}

// ClearErrorLogs wipes stored storage errors
func ClearErrorLogs(c *gin.Context) {
	service.GlobalServices.Errors.Clear()
	ok(c, gin.H{"ok": true})
}
