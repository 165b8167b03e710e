package api

import (
	"net/http"

	"authgate/auth-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserFetch returns the caller's own account. The secret itself is never
// sent back, only whether 2FA is active.
func (a *API) UserFetch(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var user model.User

	err := a.DB.Where("id = ?", userID).First(&user).Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":                 user.ID,
		"email":              user.Email,
		"twoFactorActivated": user.TwoFactorActivated,
		"createdAt":          user.CreatedAt,
	})
}
