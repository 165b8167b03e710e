package api

import (
	"net/http"

	"authgate/auth-api/middleware"
	"authgate/auth-api/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type passwordChangeBody struct {
	CurrentPassword string `json:"currentPassword"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"passwordConfirm"`
}

// PasswordChange updates the password of a logged-in user after verifying
// the current one. Anonymous callers use the reset token flow instead.
func (a *API) PasswordChange(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data passwordChangeBody
	if err := c.ShouldBind(&data); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Error("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if data.CurrentPassword == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Current password field can't be empty",
			"requestID": requestID,
		})
		return
	}

	if err := validators.PasswordMatchValidator(data.Password, data.PasswordConfirm); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	err := a.Auth.ChangePassword(c.Request.Context(), middleware.Identity(c), data.CurrentPassword, data.Password, data.PasswordConfirm)
	if err != nil {
		abortAuthError(c, requestID, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Password changed",
		"requestID": requestID,
	})
}
