package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/julisunkan/LearnMan/internal/app_errors"
)

// RespondError maps a service error to a status code and a machine-readable
// JSON body. Import failures carry the failing stage and reason, validation
// failures the offending field.
func RespondError(c *gin.Context, err error) {
	var ve *app_errors.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "validation failed",
			"field":  ve.Field,
			"reason": ve.Reason,
		})
		return
	}

	var ie *app_errors.ImportError
	if errors.As(err, &ie) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "import failed",
			"stage":  ie.Stage,
			"reason": app_errors.ReasonOf(ie.Err),
		})
		return
	}

	switch {
	case errors.Is(err, app_errors.ErrModuleNotFound), errors.Is(err, app_errors.ErrQuizNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, app_errors.ErrIncorrectPasscode):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
