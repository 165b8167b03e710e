package api

import (
	"net/http"

	"authgate/auth-api/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	OTP      string `json:"otp"`
}

// Login is the authoritative credential exchange. On success the session
// token is set as an httpOnly cookie plus a readable logged_in flag for
// the frontend.
func (a *API) Login(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data loginBody
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

	result, err := a.Auth.Login(c.Request.Context(), auth.Credentials{
		Email:    data.Email,
		Password: data.Password,
		OTPCode:  data.OTP,
	})
	if err != nil {
		abortAuthError(c, requestID, err)
		return
	}

	maxAge := int(a.Sessions.TTL().Seconds())
	secure := viper.GetBool("host.ssl.enabled")

	c.SetCookie("auth_token", result.Token, maxAge, "/", "", secure, true)
	c.SetCookie("logged_in", "1", maxAge, "/", "", secure, false)

	c.JSON(http.StatusOK, gin.H{
		"userID": result.UserID,
	})
}
