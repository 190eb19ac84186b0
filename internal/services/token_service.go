package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any token that cannot be accepted: bad
// signature, unexpected algorithm, malformed payload, or past expiry.
var ErrInvalidToken = errors.New("invalid or expired token")

// TokenClaims defines the information carried by an access token.
type TokenClaims struct {
	UserID uint64 `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies stateless HMAC-SHA256 bearer tokens.
// Verification needs no server-side state beyond the signing key.
type TokenService struct {
	signingKey []byte
	lifetime   time.Duration
	timeFunc   func() time.Time // injectable for testing
}

// NewTokenService creates a new TokenService.
func NewTokenService(secret string, lifetime time.Duration) *TokenService {
	return &TokenService{
		signingKey: []byte(secret),
		lifetime:   lifetime,
		timeFunc:   time.Now,
	}
}

// Issue creates a signed token encoding the user's identity, expiring after
// the configured lifetime.
func (s *TokenService) Issue(userID uint64) (string, error) {
	now := s.timeFunc()

	claims := TokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify checks the token's signature and expiration and returns the encoded
// user ID.
func (s *TokenService) Verify(tokenString string) (uint64, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&TokenClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.signingKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithTimeFunc(func() time.Time { return s.timeFunc() }),
	)
	if err != nil {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid || claims.UserID == 0 {
		return 0, ErrInvalidToken
	}

	return claims.UserID, nil
}
