package sessions

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the standard registered claims plus the session owner.
type Claims struct {
	jwt.RegisteredClaims
	Username string
}

// GenerateAccessToken mints a short-lived HS256-signed token for username.
// It is derived from, but independent of, the opaque session token: revoking
// the session does not invalidate an already-minted access token before its
// expiry.
func GenerateAccessToken(username string, secretKey []byte, validity time.Duration, now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validity)),
		},
		Username: username,
	})

	return token.SignedString(secretKey)
}

// UsernameFromAccessToken verifies the signature and expiry of an access
// token and returns the username it was minted for.
func UsernameFromAccessToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrSessionExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.Username, nil
}
