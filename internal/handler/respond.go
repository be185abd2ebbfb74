package handler

import (
	"errors"
	"net/http"

	"homeprice/internal/model"
	"homeprice/internal/service"

	"github.com/gin-gonic/gin"
)

// statusFor maps the error taxonomy to HTTP status codes
func statusFor(err error) int {
	var tooLarge *http.MaxBytesError
	var verr *ValidationError
	var loadErr *service.ArtifactLoadError
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &verr):
		return http.StatusBadRequest
	case errors.As(err, &loadErr):
		return http.StatusInternalServerError
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the {"error", "status"} envelope for err
func respondError(c *gin.Context, err error) {
	resp := model.ErrorResponse{
		Error:  err.Error(),
		Status: model.StatusError,
	}

	var verr *ValidationError
	if errors.As(err, &verr) {
		resp.Fields = verr.Missing
		if len(verr.Invalid) > 0 {
			resp.Invalid = verr.Invalid
		}
	}

	_ = c.Error(err)
	c.JSON(statusFor(err), resp)
}
