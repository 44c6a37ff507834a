package auth

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Inteegrus-Research/SP-tenderscope/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Tender{}, &models.Report{}))
	return db
}

func TestVerifyRoundTrip(t *testing.T) {
	db := openTestDB(t)
	user := models.User{Name: "Alice", Email: "alice@example.com", IsAdmin: true}
	require.NoError(t, db.Create(&user).Error)

	v := NewVerifier(db, "test-secret")
	token, err := v.IssueToken(user.ID)
	require.NoError(t, err)

	identity, err := v.Verify(token)
	require.NoError(t, err)
	require.Equal(t, user.ID, identity.ID)
	require.Equal(t, "Alice", identity.Name)
	require.True(t, identity.IsAdmin)
}

func TestVerifyMissingToken(t *testing.T) {
	v := NewVerifier(openTestDB(t), "test-secret")
	_, err := v.Verify("")
	require.ErrorIs(t, err, ErrMissingToken)
}

func TestVerifyMalformedToken(t *testing.T) {
	v := NewVerifier(openTestDB(t), "test-secret")
	_, err := v.Verify("not.a.jwt")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	db := openTestDB(t)
	user := models.User{Name: "Bob", Email: "bob@example.com"}
	require.NoError(t, db.Create(&user).Error)

	token, err := NewVerifier(db, "secret-a").IssueToken(user.ID)
	require.NoError(t, err)

	_, err = NewVerifier(db, "secret-b").Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyExpiredToken(t *testing.T) {
	db := openTestDB(t)
	user := models.User{Name: "Carol", Email: "carol@example.com"}
	require.NoError(t, db.Create(&user).Error)

	v := NewVerifier(db, "test-secret")
	v.TTL = -time.Minute
	token, err := v.IssueToken(user.ID)
	require.NoError(t, err)

	_, err = v.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyDeletedAccount(t *testing.T) {
	db := openTestDB(t)
	user := models.User{Name: "Dave", Email: "dave@example.com"}
	require.NoError(t, db.Create(&user).Error)

	v := NewVerifier(db, "test-secret")
	token, err := v.IssueToken(user.ID)
	require.NoError(t, err)

	require.NoError(t, db.Delete(&user).Error)

	_, err = v.Verify(token)
	require.ErrorIs(t, err, ErrUnknownUser)
}
