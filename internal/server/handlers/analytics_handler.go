package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Mamlesh18/apex-gaming-cafe/internal/service/reporting"
)

// AnalyticsHandler serves the read-only derived views: daily and range
// rollups and the weekly occupancy grid.
type AnalyticsHandler struct {
	svc    *reporting.Service
	logger *zap.Logger
}

// NewAnalyticsHandler constructs the HTTP handler adapter.
func NewAnalyticsHandler(svc *reporting.Service, logger *zap.Logger) *AnalyticsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalyticsHandler{svc: svc, logger: logger}
}

// Daily returns the rollup for the date query parameter.
func (h *AnalyticsHandler) Daily(c *gin.Context) {
	summary, err := h.svc.DailySummary(c.Request.Context(), c.Query("date"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Range returns the rollup for the inclusive start/end query parameters.
func (h *AnalyticsHandler) Range(c *gin.Context) {
	summary, err := h.svc.RangeSummary(c.Request.Context(), c.Query("start"), c.Query("end"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// WeekGrid returns the occupancy grid for the Monday-start week containing
// the date query parameter.
func (h *AnalyticsHandler) WeekGrid(c *gin.Context) {
	grid, err := h.svc.WeekGrid(c.Request.Context(), c.Query("date"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, grid)
}
