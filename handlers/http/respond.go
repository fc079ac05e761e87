package httpHandler

import (
	"billscan-server/usecases"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// respondError maps usecase errors onto the HTTP taxonomy. Anything
// unrecognized is logged and answered with a generic 500 body.
func respondError(c *gin.Context, err error) {
	switch {
	case usecases.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, usecases.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, usecases.ErrEmailTaken), errors.Is(err, usecases.ErrUsernameTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, usecases.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, usecases.ErrInvalidOrExpiredToken):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
