// Package handler contains HTTP handlers for the API.
package handler

import (
	"errors"
	"log"
	"net/http"

	apperrors "carmarket/internal/errors"
	"carmarket/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindJSON decodes and validates the request body into obj, writing a 400
// when that fails. Absent required values are reported as missing fields,
// anything else as an invalid body.
func bindJSON(c *gin.Context, obj interface{}) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Tag() == "required" || fe.Tag() == "min" {
				response.BadRequest(c, apperrors.ErrMissingFields.Error())
				return false
			}
		}
	}

	response.BadRequest(c, apperrors.ErrInvalidBody.Error())
	return false
}

// statusFor maps service errors to HTTP status codes.
var statusFor = []struct {
	err    error
	status int
}{
	{apperrors.ErrMissingFields, http.StatusBadRequest},
	{apperrors.ErrInvalidBody, http.StatusBadRequest},
	{apperrors.ErrUnsupportedMedia, http.StatusBadRequest},
	{apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
	{apperrors.ErrUnauthorized, http.StatusUnauthorized},
	{apperrors.ErrInvalidToken, http.StatusUnauthorized},
	{apperrors.ErrListingNotFound, http.StatusNotFound},
	{apperrors.ErrConversationNotFound, http.StatusNotFound},
	{apperrors.ErrUserAlreadyExists, http.StatusConflict},
	{apperrors.ErrAIUnavailable, http.StatusBadGateway},
	{apperrors.ErrUploadsNotAvailable, http.StatusServiceUnavailable},
}

// handleServiceError writes the response for an error returned by a service.
// Unknown errors are logged and hidden behind a generic 500.
func handleServiceError(c *gin.Context, err error) {
	for _, m := range statusFor {
		if errors.Is(err, m.err) {
			response.Error(c, m.status, err.Error())
			return
		}
	}

	log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	response.InternalError(c)
}
