package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Mamlesh18/apex-gaming-cafe/internal/apperr"
)

// operatorHeader carries the explicit operator identity on every creating
// request; there is no ambient session state to read it from.
const operatorHeader = "X-Operator"

func operatorFrom(c *gin.Context) string {
	return c.GetHeader(operatorHeader)
}

// writeError maps the error taxonomy onto HTTP statuses: validation
// failures are the caller's fault, collaborator failures surface as a
// generic upstream error, anything else is internal.
func writeError(c *gin.Context, logger *zap.Logger, err error) {
	switch {
	case apperr.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperr.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
	case apperr.IsCollaborator(err):
		logger.Error("record store failure", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "record store unavailable"})
	default:
		logger.Error("unexpected failure", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
