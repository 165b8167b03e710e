package api

import (
	"net/http"

	"authgate/auth-api/middleware"
	"authgate/auth-api/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type passwordUpdateBody struct {
	Token           string `json:"token"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"passwordConfirm"`
}

// PasswordUpdate consumes a reset token and sets the owner's new password.
// A spent or lapsed token tells the caller to restart the flow via the
// tokenInvalid flag.
func (a *API) PasswordUpdate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data passwordUpdateBody
	if err := c.ShouldBind(&data); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Error("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if err := validators.PasswordMatchValidator(data.Password, data.PasswordConfirm); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	err := a.Auth.ConsumeResetToken(c.Request.Context(), middleware.Identity(c), data.Token, data.Password, data.PasswordConfirm)
	if err != nil {
		abortAuthError(c, requestID, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Password updated, you can now log in",
		"requestID": requestID,
	})
}
