// Package api contains all endpoints available
package api

import (
	"fmt"
	"time"

	"authgate/auth-api/db"
	"authgate/auth-api/internal/auth"
	"authgate/auth-api/internal/service"
	"authgate/auth-api/internal/session"
	"authgate/auth-api/middleware"
	pkgmw "authgate/auth-api/pkg/middleware"
	"authgate/auth-api/pkg/security"

	ginzap "github.com/gin-contrib/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

type API struct {
	DB       *gorm.DB
	Router   *gin.Engine
	Auth     *auth.Service
	Sessions *session.Issuer
}

func NewRouter() (*API, error) {
	database, err := db.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}

	makeLogger()

	sessions := session.NewIssuer(
		viper.GetString("jwt.secret"),
		viper.GetDuration("jwt.ttl"),
	)

	a := &API{
		DB:       database,
		Sessions: sessions,
		Auth: &auth.Service{
			DB:           database,
			Hasher:       security.NewHasher(),
			TOTP:         security.NewTOTP(viper.GetString("totp.issuer")),
			Sessions:     sessions,
			Mailer:       service.NewSMTPMailer(),
			BaseURL:      viper.GetString("host.base_url"),
			MailFailOpen: viper.GetBool("mail.fail_open"),
		},
	}

	router := gin.New()
	a.Router = router

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     []string{"http://localhost:5173"},
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		pkgmw.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				if v := c.GetString("userID"); v != "" {
					fields = append(fields, zap.String("userID", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	router.RedirectFixedPath = true

	a.registerRoutes()

	service.TokenCleanup(time.Hour, database)

	return a, nil
}

func (a *API) registerRoutes() {
	jwt := middleware.NewJWTMiddleware(a.Sessions, a.DB)
	optionalJWT := middleware.NewOptionalJWTMiddleware(a.Sessions)

	main := a.Router.Group("/api", pkgmw.BodySizeLimiter(1<<20))
	{
		// HEAD /api/heartbeat 		-> Used to check if the server is alive
		main.HEAD("/heartbeat", a.Heartbeat)

		// HEAD /api/validate		-> Validates a JWT token
		main.HEAD("/validate", jwt, a.Validate)
	}

	users := main.Group("/users")
	{
		// GET /api/users		-> Returns the caller's own account
		users.GET("", jwt, a.UserFetch)

		// POST /api/users 		-> Registers a new user
		users.POST("", a.UserRegister)

		// POST /api/users/login/precheck -> Verifies credentials, tells the
		// client whether to prompt for an OTP. Issues no session.
		users.POST("/login/precheck", a.LoginPreCheck)

		// POST /api/users/login 	-> Logs in a user and sets the session cookie
		users.POST("/login", a.Login)

		// POST /api/users/logout 	-> Clears the session cookie
		users.POST("/logout", a.Logout)
	}

	passwords := main.Group("")
	{
		// POST /api/password-reset	-> Emails a reset link, refuses logged-in callers
		passwords.POST("/password-reset", optionalJWT, a.PasswordResetRequest)

		// GET /api/password-reset/validate -> Tells the reset form whether its token is still live
		passwords.GET("/password-reset/validate", a.PasswordResetValidate)

		// POST /api/update-password	-> Consumes a reset token and sets a new password
		passwords.POST("/update-password", optionalJWT, a.PasswordUpdate)

		// POST /api/change-password	-> Changes the password of a logged-in user
		passwords.POST("/change-password", jwt, a.PasswordChange)
	}

	twofactor := main.Group("/2fa", jwt)
	{
		// GET /api/2fa/setup		-> Returns the provisioning URI for enrollment
		twofactor.GET("/setup", a.TwoFactorSetup)

		// POST /api/2fa/activate	-> Confirms enrollment with a code
		twofactor.POST("/activate", a.TwoFactorActivate)

		// POST /api/2fa/disable	-> Turns 2FA off and clears the secret
		twofactor.POST("/disable", a.TwoFactorDisable)
	}
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	cfg.DisableStacktrace = true

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}
