package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoExpiry возвращается, если в токене нет claim exp
var ErrNoExpiry = errors.New("token has no exp claim")

// TokenExpiry reads the exp claim of a JWT access token without verifying
// its signature. The client never holds the server's signing key; the
// value is only used to show and check the local session lifetime.
func TokenExpiry(token string) (time.Time, error) {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, fmt.Errorf("failed to parse token: %w", err)
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, ErrNoExpiry
	}
	return claims.ExpiresAt.Time, nil
}

// ExpiresAt вычисляет момент истечения access token в unix секундах.
// Приоритет: expiresIn из ответа сервера, затем exp из JWT.
// Возвращает 0, если срок определить нельзя.
func ExpiresAt(now time.Time, accessToken string, expiresIn int64) int64 {
	if expiresIn > 0 {
		return now.Add(time.Duration(expiresIn) * time.Second).Unix()
	}
	exp, err := TokenExpiry(accessToken)
	if err != nil {
		return 0
	}
	return exp.Unix()
}
