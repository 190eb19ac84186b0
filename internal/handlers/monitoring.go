package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mizuki-dev/task-tracker-api/internal/services"
)

// MonitoringHandler exposes the health and metrics endpoints.
type MonitoringHandler struct {
	monitorService *services.MonitorService
}

// NewMonitoringHandler creates a new MonitoringHandler.
func NewMonitoringHandler(monitorService *services.MonitorService) *MonitoringHandler {
	return &MonitoringHandler{
		monitorService: monitorService,
	}
}

// Health reports store connectivity. The endpoint itself never fails; a broken
// store is reported as unhealthy with a 200 response.
func (h *MonitoringHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, h.monitorService.Health())
}

// Metrics renders the Prometheus-style text exposition.
func (h *MonitoringHandler) Metrics(c *gin.Context) {
	text, err := h.monitorService.Metrics()
	if err != nil {
		c.Data(http.StatusInternalServerError, "text/plain; charset=utf-8",
			[]byte(fmt.Sprintf("# Error generating metrics: %s", err)))
		return
	}

	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(text))
}
