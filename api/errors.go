package api

import (
	"errors"
	"net/http"

	"authgate/auth-api/internal/auth"
	"authgate/auth-api/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var validationErrors = []error{
	validators.ErrEmailEmpty,
	validators.ErrEmailInvalid,
	validators.ErrPasswordEmpty,
	validators.ErrPasswordTooShort,
	validators.ErrPasswordTooLong,
	validators.ErrPasswordMismatch,
}

func isValidationError(err error) bool {
	for _, v := range validationErrors {
		if errors.Is(err, v) {
			return true
		}
	}

	return false
}

// abortAuthError maps a core auth error to its HTTP response. Anything not
// in the taxonomy is logged and reported as a generic 500 so storage
// details never leak to the caller.
func abortAuthError(c *gin.Context, requestID string, err error) {
	switch {
	case isValidationError(err):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrSecondFactorInvalid),
		errors.Is(err, auth.ErrUnauthenticated):
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
	case errors.Is(err, auth.ErrAlreadyAuthenticated):
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
	case errors.Is(err, auth.ErrTokenInvalidOrExpired):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":        err.Error(),
			"tokenInvalid": true,
			"requestID":    requestID,
		})
	case errors.Is(err, auth.ErrEmailTaken):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
	case errors.Is(err, auth.ErrInvalidCode),
		errors.Is(err, auth.ErrEnrollmentNotStarted):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
	case errors.Is(err, auth.ErrUserNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
	case errors.Is(err, auth.ErrMailDelivery):
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Unexpected error", zap.Error(err), zap.String("requestID", requestID))
	}
}
