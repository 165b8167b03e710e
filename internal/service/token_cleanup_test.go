package service

import (
	"fmt"
	"testing"
	"time"

	"authgate/auth-api/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestTokenCleanup(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.User{}, model.PasswordResetToken{}))

	user := model.User{Email: "a@x.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)

	expired := model.PasswordResetToken{
		UserID:      user.ID,
		Token:       "expired-token",
		TokenExpiry: time.Now().Add(-time.Minute),
	}
	require.NoError(t, db.Create(&expired).Error)

	TokenCleanup(10*time.Millisecond, db)

	require.Eventually(t, func() bool {
		var count int64
		if err := db.Model(&model.PasswordResetToken{}).Count(&count).Error; err != nil {
			return false
		}
		return count == 0
	}, 2*time.Second, 20*time.Millisecond)
}

func TestTokenCleanupKeepsLiveTokens(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.User{}, model.PasswordResetToken{}))

	user := model.User{Email: "a@x.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)

	live := model.PasswordResetToken{
		UserID:      user.ID,
		Token:       "live-token",
		TokenExpiry: time.Now().Add(time.Hour),
	}
	require.NoError(t, db.Create(&live).Error)

	TokenCleanup(10*time.Millisecond, db)

	time.Sleep(100 * time.Millisecond)

	var count int64
	require.NoError(t, db.Model(&model.PasswordResetToken{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}
