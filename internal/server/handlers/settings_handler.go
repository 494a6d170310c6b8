package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Mamlesh18/apex-gaming-cafe/internal/domain/models"
	"github.com/Mamlesh18/apex-gaming-cafe/internal/service/records"
)

// SettingsHandler serves the pricing-settings singleton.
type SettingsHandler struct {
	svc    *records.Service
	logger *zap.Logger
}

// NewSettingsHandler constructs the HTTP handler adapter.
func NewSettingsHandler(svc *records.Service, logger *zap.Logger) *SettingsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SettingsHandler{svc: svc, logger: logger}
}

// Get returns the current pricing configuration, seeded with defaults when
// never saved.
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.svc.GetSettings(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// Replace overwrites the pricing configuration in full.
func (h *SettingsHandler) Replace(c *gin.Context) {
	var settings models.PricingSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		h.logger.Warn("invalid settings payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	saved, err := h.svc.ReplaceSettings(c.Request.Context(), settings)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}
