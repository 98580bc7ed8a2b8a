// file: internals/features/users/auth/service/token_service.go
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"klinikku_backend/internals/configs"
)

// AccessTokenTTL bounds how long a login stays valid.
const AccessTokenTTL = 12 * time.Hour

func buildAccessClaims(userID uuid.UUID, username, role string, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub":      userID.String(),
		"username": username,
		"role":     role,
		"iat":      now.Unix(),
		"exp":      now.Add(AccessTokenTTL).Unix(),
	}
}

// IssueAccessToken signs an HS256 token for the user.
func IssueAccessToken(userID uuid.UUID, username, role string) (string, error) {
	claims := buildAccessClaims(userID, username, role, time.Now())
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(configs.JWTSecret))
}

// ParseAccessToken verifies the signature and returns the claims.
func ParseAccessToken(raw string) (jwt.MapClaims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(configs.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok || !tok.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
