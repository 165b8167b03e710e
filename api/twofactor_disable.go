package api

import (
	"net/http"

	"authgate/auth-api/middleware"

	"github.com/gin-gonic/gin"
)

// TwoFactorDisable turns 2FA off for the caller and discards the secret.
func (a *API) TwoFactorDisable(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	err := a.Auth.DisableTwoFactor(c.Request.Context(), middleware.Identity(c))
	if err != nil {
		abortAuthError(c, requestID, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Two-factor authentication disabled",
		"requestID": requestID,
	})
}
