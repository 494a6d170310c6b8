package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Mamlesh18/apex-gaming-cafe/internal/service/records"
)

// SessionHandler serves the gaming-sessions resource family.
type SessionHandler struct {
	svc    *records.Service
	logger *zap.Logger
}

// NewSessionHandler constructs the HTTP handler adapter.
func NewSessionHandler(svc *records.Service, logger *zap.Logger) *SessionHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionHandler{svc: svc, logger: logger}
}

// List returns all gaming sessions for the date query parameter.
func (h *SessionHandler) List(c *gin.Context) {
	sessions, err := h.svc.ListSessions(c.Request.Context(), c.Query("date"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, sessions)
}

// Create records a new gaming session. The response echoes the derived
// total so the client never needs to recompute it.
func (h *SessionHandler) Create(c *gin.Context) {
	var in records.SessionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		h.logger.Warn("invalid session payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	session, err := h.svc.CreateSession(c.Request.Context(), in, operatorFrom(c))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// Delete removes one gaming session by identifier.
func (h *SessionHandler) Delete(c *gin.Context) {
	if err := h.svc.DeleteSession(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
