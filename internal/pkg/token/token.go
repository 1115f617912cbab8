// Package token issues and verifies the signed session tokens returned
// by login. Clients never mint their own identity payloads.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/matsci-ai/matsci/internal/pkg/apperror"
	"github.com/matsci-ai/matsci/internal/pkg/env"
)

// TTL is the session lifetime.
const TTL = 24 * time.Hour

func secret() []byte {
	return []byte(env.GetEnv("JWT_SECRET", "matsci-dev-secret"))
}

// Issue signs a session token for the given user id.
func Issue(userID string) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(TTL).Unix(),
	})
	signed, err := t.SignedString(secret())
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses a session token and returns the user id it identifies.
func Verify(tokenString string) (string, *apperror.Error) {
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret(), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil || !parsed.Valid {
		return "", apperror.New(apperror.KindAuth, "invalid or expired session token")
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", apperror.New(apperror.KindAuth, "invalid or expired session token")
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", apperror.New(apperror.KindAuth, "invalid or expired session token")
	}
	return sub, nil
}
