// Package auth implements the credential and session primitives of FitTrack:
// password hashing, the signed session token (JWT) and its projections, and
// the post-authentication redirect policy.
package auth

import (
	"errors"
	"time"

	"github.com/fittrackhq/fittrack/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionValidity is the maximum age of a session token. There is no
// server-side revocation; an issued token stays valid until it expires.
const DefaultSessionValidity = 30 * 24 * time.Hour

// Claims is the signed session token payload. Every identity field present
// at authentication time is copied verbatim; optional fields stay nil and
// marshal as JSON null, never omitted or defaulted to "".
type Claims struct {
	jwt.RegisteredClaims
	UserID    string  `json:"uid"`
	Email     string  `json:"email"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Avatar    *string `json:"avatar"`
}

// SignToken signs claims with HS256 and the given validity window.
func SignToken(claims Claims, secretKey []byte, validity time.Duration) (string, error) {
	now := time.Now()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(validity))
	claims.Subject = claims.UserID

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

// ParseToken verifies the signature and expiry of a session token and
// returns its claims. Expired tokens yield common.ErrTokenExpired; anything
// else that fails verification yields common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) { return secretKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}
	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
