package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/studenthub/internal/app/models/dto"
	"github.com/yigit/studenthub/internal/pkg/apperrors"
)

// HandleAPIError maps service errors onto the response envelope. Every error
// a handler surfaces goes through here, so the status mapping lives in one
// place.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		respond(c, http.StatusBadRequest, err, "Validation failed")
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		respond(c, http.StatusConflict, err, "Email already exists")
	case errors.Is(err, apperrors.ErrUsernameAlreadyExists):
		respond(c, http.StatusConflict, err, "Username already exists")
	case errors.Is(err, apperrors.ErrStudentNotFound):
		respond(c, http.StatusNotFound, err, "Student not found")
	case errors.Is(err, apperrors.ErrUserNotFound):
		respond(c, http.StatusNotFound, err, "User not found")
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(c, http.StatusUnauthorized, err, "Invalid credentials")
	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrTokenExpired):
		respond(c, http.StatusForbidden, err, "Invalid or expired token")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		respond(c, http.StatusForbidden, err, "Admin access required")
	default:
		respond(c, http.StatusInternalServerError, nil, "Internal server error")
	}
}

// respond prefers the message carried by a CustomError over the default
func respond(c *gin.Context, status int, err error, defaultMessage string) {
	message := defaultMessage

	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Message != "" {
		message = customErr.Message
	}

	c.JSON(status, dto.NewErrorResponse(message))
}
