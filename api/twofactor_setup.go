package api

import (
	"net/http"

	"authgate/auth-api/middleware"

	"github.com/gin-gonic/gin"
)

// TwoFactorSetup returns the provisioning URI for the caller's pending
// secret, generating one if needed. Repeating the call before activation
// returns the same secret. Nothing is activated here.
func (a *API) TwoFactorSetup(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	uri, err := a.Auth.BeginTwoFactorSetup(c.Request.Context(), middleware.Identity(c))
	if err != nil {
		abortAuthError(c, requestID, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"provisioningUri": uri,
	})
}
