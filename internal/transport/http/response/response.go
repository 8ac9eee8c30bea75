// Package response maps service results and domain errors onto the wire
// contract the frontend expects: real HTTP statuses, failures as a bare
// {"error": message} body.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lyepez-glitch/VitalCore/internal/domain"
)

func Err(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

// FromError applies the error taxonomy. Store errors deliberately collapse
// to a generic 500 so internals are not leaked; the detail goes to the gin
// error stack for the access log.
func FromError(c *gin.Context, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		Err(c, http.StatusBadRequest, ve.Error())
	case errors.Is(err, domain.ErrNotFound):
		Err(c, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrEmailTaken):
		Err(c, http.StatusConflict, domain.ErrEmailTaken.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		Err(c, http.StatusUnauthorized, domain.ErrInvalidCredentials.Error())
	default:
		_ = c.Error(err)
		Err(c, http.StatusInternalServerError, "internal server error")
	}
}
