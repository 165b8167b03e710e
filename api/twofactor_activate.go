package api

import (
	"net/http"

	"authgate/auth-api/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type twoFactorActivateBody struct {
	OTP string `json:"otp"`
}

// TwoFactorActivate confirms enrollment with a code from the caller's
// authenticator app.
func (a *API) TwoFactorActivate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data twoFactorActivateBody
	if err := c.ShouldBind(&data); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Error("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if data.OTP == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "OTP field can't be empty",
			"requestID": requestID,
		})
		return
	}

	err := a.Auth.ConfirmTwoFactorSetup(c.Request.Context(), middleware.Identity(c), data.OTP)
	if err != nil {
		abortAuthError(c, requestID, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Two-factor authentication activated",
		"requestID": requestID,
	})
}
