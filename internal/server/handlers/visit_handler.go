package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Mamlesh18/apex-gaming-cafe/internal/service/records"
)

// VisitHandler serves the visits resource family.
type VisitHandler struct {
	svc    *records.Service
	logger *zap.Logger
}

// NewVisitHandler constructs the HTTP handler adapter.
func NewVisitHandler(svc *records.Service, logger *zap.Logger) *VisitHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VisitHandler{svc: svc, logger: logger}
}

// List returns all visits for the date query parameter.
func (h *VisitHandler) List(c *gin.Context) {
	visits, err := h.svc.ListVisits(c.Request.Context(), c.Query("date"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, visits)
}

// Create logs a new visit.
func (h *VisitHandler) Create(c *gin.Context) {
	var in records.VisitInput
	if err := c.ShouldBindJSON(&in); err != nil {
		h.logger.Warn("invalid visit payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	visit, err := h.svc.CreateVisit(c.Request.Context(), in, operatorFrom(c))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, visit)
}

// Delete removes one visit by identifier.
func (h *VisitHandler) Delete(c *gin.Context) {
	if err := h.svc.DeleteVisit(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
