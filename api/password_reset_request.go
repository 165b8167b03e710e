package api

import (
	"net/http"

	"authgate/auth-api/middleware"
	"authgate/auth-api/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type resetRequestBody struct {
	Email string `json:"email"`
}

// PasswordResetRequest emails a reset link. The response is identical for
// known and unknown emails; logged-in callers are refused.
func (a *API) PasswordResetRequest(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data resetRequestBody
	if err := c.ShouldBind(&data); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Error("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if err := validators.EmailValidator(data.Email); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	err := a.Auth.RequestReset(c.Request.Context(), middleware.Identity(c), data.Email)
	if err != nil {
		abortAuthError(c, requestID, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "If that email is registered, a reset link is on its way",
		"requestID": requestID,
	})
}
