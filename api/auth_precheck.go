package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type precheckBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginPreCheck verifies credentials without issuing a session so the
// client knows whether to ask for a one-time passcode. An unknown email
// and a wrong password produce the same response.
func (a *API) LoginPreCheck(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data precheckBody
	if err := c.ShouldBind(&data); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Error("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if data.Email == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Email field can't be empty",
			"requestID": requestID,
		})
		return
	}

	if data.Password == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Password field can't be empty",
			"requestID": requestID,
		})
		return
	}

	result, err := a.Auth.PreCheck(c.Request.Context(), data.Email, data.Password)
	if err != nil {
		abortAuthError(c, requestID, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"twoFactorActivated": result.TwoFactorActivated,
	})
}
