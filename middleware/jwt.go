// Package middleware contains the session-aware middleware guarding the API
package middleware

import (
	"errors"
	"net/http"

	"authgate/auth-api/internal/session"
	"authgate/auth-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// identityKey is where verified session claims are stored on the gin
// context. Handlers read it through Identity.
const identityKey = "identity"

// Identity returns the verified session claims set by the JWT middleware,
// or nil when the request is anonymous.
func Identity(c *gin.Context) *session.Claims {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil
	}

	claims, ok := v.(*session.Claims)
	if !ok {
		return nil
	}

	return claims
}

// NewJWTMiddleware rejects requests without a valid auth_token cookie. The
// token's user is looked up so a session outliving its account stops
// working immediately.
func NewJWTMiddleware(sessions *session.Issuer, d *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.MustGet("requestID").(string)

		tokenStr, err := c.Cookie("auth_token")
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "No auth_token cookie",
				"requestID": requestID,
			})
			return
		}

		claims, err := sessions.Verify(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "token_invalid",
				"requestID": requestID,
			})
			return
		}

		var user model.User

		err = d.Select("id").Where("id = ?", claims.UserID).First(&user).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error":     "user_not_found",
					"requestID": requestID,
				})
				return
			}

			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":     "internal_server_error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to check if user exists", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		c.Set(identityKey, claims)
		c.Set("userID", claims.UserID)
		c.Next()
	}
}

// NewOptionalJWTMiddleware attaches the caller's identity when a valid
// auth_token cookie is present but never rejects the request. The password
// reset endpoints need this: they serve anonymous callers and must refuse
// authenticated ones themselves.
func NewOptionalJWTMiddleware(sessions *session.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie("auth_token")
		if err != nil {
			c.Next()
			return
		}

		claims, err := sessions.Verify(tokenStr)
		if err != nil {
			c.Next()
			return
		}

		c.Set(identityKey, claims)
		c.Set("userID", claims.UserID)
		c.Next()
	}
}
