// Package auth turns a bearer token into a verified identity.
//
// Tokens are HS256 JWTs carrying the user id and an expiry. Verification is
// stateless apart from a single lookup of the current user row, so an
// identity is re-derived on every request and never cached.
package auth

import (
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
	"gorm.io/gorm"

	"github.com/Inteegrus-Research/SP-tenderscope/models"
)

var (
	// ErrMissingToken means no credential was supplied at all.
	ErrMissingToken = errors.New("auth: missing token")
	// ErrInvalidToken covers malformed tokens, bad signatures and expiry.
	ErrInvalidToken = errors.New("auth: invalid token")
	// ErrUnknownUser means the token was valid but the account is gone.
	ErrUnknownUser = errors.New("auth: unknown user")
)

// Identity is a verified actor for the duration of one request.
type Identity struct {
	ID      uint
	Name    string
	IsAdmin bool
}

// Verifier validates tokens and resolves them against current user records.
type Verifier struct {
	DB     *gorm.DB
	Secret []byte
	TTL    time.Duration
}

const defaultTTL = 7 * 24 * time.Hour

func NewVerifier(db *gorm.DB, secret string) *Verifier {
	return &Verifier{DB: db, Secret: []byte(secret), TTL: defaultTTL}
}

// IssueToken signs a token for the given user id.
func (v *Verifier) IssueToken(userID uint) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(v.TTL).Unix(),
	})
	return token.SignedString(v.Secret)
}

// Verify authenticates the token and resolves it to a live identity.
func (v *Verifier) Verify(tokenString string) (*Identity, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return v.Secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	rawID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}

	var user models.User
	if err := v.DB.First(&user, uint(rawID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownUser
		}
		return nil, err
	}

	return &Identity{ID: user.ID, Name: user.Name, IsAdmin: user.IsAdmin}, nil
}
