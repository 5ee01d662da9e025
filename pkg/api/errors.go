package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reporadar/reporadar/pkg/batch"
	"github.com/reporadar/reporadar/pkg/store"
)

// respondError maps domain errors to stable HTTP status codes.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, store.ErrNotFound):
		status = http.StatusNotFound
	case store.IsValidationError(err) || errors.Is(err, store.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, batch.ErrBatchActive) || errors.Is(err, store.ErrAlreadyExists):
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
