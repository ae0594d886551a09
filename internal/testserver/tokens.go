package testserver

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenIssuer = "matrimony-fake"

// accessClaims claims access token фейкового сервера
type accessClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// WithSecret задает ключ подписи access token. По умолчанию ключ случайный.
func WithSecret(secret []byte) Option {
	return func(b *Backend) {
		if len(secret) > 0 {
			b.secret = secret
		}
	}
}

func randomSecret() []byte {
	secret := make([]byte, 32)
	_, _ = rand.Read(secret)
	return secret
}

// issueTokensLocked выдает новую пару токенов; вызывать под s.mu
func (s *Backend) issueTokensLocked(userID string) (access, refresh string, err error) {
	access, err = s.issueAccessTokenLocked(userID)
	if err != nil {
		return "", "", err
	}

	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", "", fmt.Errorf("failed to generate random token: %w", err)
	}
	refresh = base64.URLEncoding.EncodeToString(tokenBytes)
	s.refreshTokens[refresh] = userID

	return access, refresh, nil
}

func (s *Backend) issueAccessTokenLocked(userID string) (string, error) {
	now := time.Now()

	claims := accessClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(AccessTokenTTL * time.Second)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			// ID делает токены, выданные в одну секунду, различными
			ID: uuid.NewString(),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	s.accessTokens[token] = userID
	return token, nil
}

// parseAccessToken проверяет подпись и срок действия
func (s *Backend) parseAccessToken(token string) (*accessClaims, error) {
	claims := &accessClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	return claims, nil
}
