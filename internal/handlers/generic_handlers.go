package handlers

import (
	"net/http"
	"time"

	"github.com/khairuladnan/StudentMS_Backend/internal/config"
	"github.com/khairuladnan/StudentMS_Backend/internal/utils"
)

// SystemHandler serves the health and version endpoints.
type SystemHandler struct {
	db        HealthChecker
	cfg       *config.AppConfig
	startTime time.Time
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(db HealthChecker, cfg *config.AppConfig) *SystemHandler {
	return &SystemHandler{
		db:        db,
		cfg:       cfg,
		startTime: time.Now(),
	}
}

// Health reports service and database status. A failing database probe
// degrades the status but the endpoint itself still answers.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	overall, dbStatus := "healthy", "up"
	status := http.StatusOK
	if h.db != nil {
		if err := h.db.HealthCheck(r.Context()); err != nil {
			overall, dbStatus = "degraded", "down"
			status = http.StatusServiceUnavailable
		}
	}

	utils.JSON(w, status, "Health check", map[string]interface{}{
		"status":   overall,
		"database": dbStatus,
		"uptime":   time.Since(h.startTime).Round(time.Second).String(),
	})
}

// Version reports build information.
func (h *SystemHandler) Version(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, "Version information", map[string]string{
		"name":        h.cfg.App.Name,
		"version":     h.cfg.App.Version,
		"environment": h.cfg.App.Environment,
	})
}
