package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Mamlesh18/apex-gaming-cafe/internal/service/records"
)

// FoodHandler serves the food-entries resource family.
type FoodHandler struct {
	svc    *records.Service
	logger *zap.Logger
}

// NewFoodHandler constructs the HTTP handler adapter.
func NewFoodHandler(svc *records.Service, logger *zap.Logger) *FoodHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FoodHandler{svc: svc, logger: logger}
}

// List returns all food entries for the date query parameter.
func (h *FoodHandler) List(c *gin.Context) {
	entries, err := h.svc.ListFoodEntries(c.Request.Context(), c.Query("date"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Create records a new food entry, echoing the derived revenue and profit.
func (h *FoodHandler) Create(c *gin.Context) {
	var in records.FoodInput
	if err := c.ShouldBindJSON(&in); err != nil {
		h.logger.Warn("invalid food entry payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	entry, err := h.svc.CreateFoodEntry(c.Request.Context(), in, operatorFrom(c))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// Delete removes one food entry by identifier.
func (h *FoodHandler) Delete(c *gin.Context) {
	if err := h.svc.DeleteFoodEntry(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
