package auth

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"authgate/auth-api/internal/session"
	"authgate/auth-api/model"
	"authgate/auth-api/pkg/security"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type sentMail struct {
	To      string
	Subject string
	Body    string
}

// mailRecorder captures outbound mail instead of sending it. Set fail to
// exercise the transport failure paths.
type mailRecorder struct {
	sent []sentMail
	fail bool
}

func (m *mailRecorder) Send(to, subject, htmlBody string) error {
	if m.fail {
		return errors.New("smtp: connection refused")
	}

	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: htmlBody})
	return nil
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named shared in-memory database so every pooled connection sees
	// the same data.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(model.User{}, model.PasswordResetToken{}))

	return db
}

func newTestService(t *testing.T) (*Service, *mailRecorder) {
	t.Helper()

	mailer := &mailRecorder{}

	s := &Service{
		DB:       newTestDB(t),
		Hasher:   &security.PasswordHasher{Cost: bcrypt.MinCost},
		TOTP:     security.NewTOTP("authgate-test"),
		Sessions: session.NewIssuer("test-secret", time.Hour),
		Mailer:   mailer,
		BaseURL:  "http://localhost:8080",
	}

	return s, mailer
}

// mustRegister creates a user directly through the registration flow.
func mustRegister(t *testing.T, s *Service, email, password string) *model.User {
	t.Helper()

	user, err := s.Register(t.Context(), email, password, password)
	require.NoError(t, err)

	return user
}

func identityOf(user *model.User) *session.Claims {
	return &session.Claims{UserID: user.ID, Email: user.Email}
}
