package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

// Logout clears the session cookies. The JWT itself stays valid until it
// expires; there is no server-side revocation list.
func (a *API) Logout(c *gin.Context) {
	secure := viper.GetBool("host.ssl.enabled")

	c.SetCookie("auth_token", "", -1, "/", "", secure, true)
	c.SetCookie("logged_in", "", -1, "/", "", secure, false)

	c.Status(http.StatusOK)
}
