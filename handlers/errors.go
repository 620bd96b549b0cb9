package handlers

import (
	"errors"
	"log"
	"net/http"

	"VidaClinic/domain"
	"VidaClinic/services"

	"github.com/gin-gonic/gin"
)

// respondError maps domain errors to 4xx responses with a structured body
// and everything else to an opaque 500.
func respondError(c *gin.Context, err error) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error(), "field": validationErr.Field})
		return
	}
	var duplicateErr *domain.DuplicateEntityError
	if errors.As(err, &duplicateErr) {
		c.JSON(http.StatusConflict, gin.H{"error": duplicateErr.Error()})
		return
	}
	var notFoundErr *domain.EntityNotFoundError
	if errors.As(err, &notFoundErr) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Error()})
		return
	}
	var deniedErr *domain.AccessDeniedError
	if errors.As(err, &deniedErr) {
		c.JSON(http.StatusForbidden, gin.H{"error": deniedErr.Error()})
		return
	}
	if errors.Is(err, services.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	// Infrastructure failure: log the detail, hide it from the client.
	log.Printf("Internal error: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
