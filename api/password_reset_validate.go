package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PasswordResetValidate lets the reset form check its token before asking
// the user to type a new password. No side effects.
func (a *API) PasswordResetValidate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	token := c.Query("token")
	if token == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "No reset token provided",
			"requestID": requestID,
		})
		return
	}

	valid, err := a.Auth.ValidateResetToken(c.Request.Context(), token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to validate reset token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid": valid,
	})
}
