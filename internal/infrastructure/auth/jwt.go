// Package auth holds credential hashing and the session token service.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/greenflow-inc/greenflow/internal/shared/clock"
)

// Claims carries the account identity inside a session token. AccountID is
// the normalized email; SID is the external reference code.
type Claims struct {
	AccountID string `json:"account_id"`
	SID       string `json:"sid"`
	jwt.RegisteredClaims
}

// JWTService signs and verifies HS256 session tokens.
type JWTService struct {
	secret     []byte
	expMinutes int
	clock      clock.Clock
}

// NewJWTService creates the token service.
func NewJWTService(secret string, expMinutes int, clk clock.Clock) *JWTService {
	return &JWTService{
		secret:     []byte(secret),
		expMinutes: expMinutes,
		clock:      clk,
	}
}

// Generate issues a signed token for the account.
func (s *JWTService) Generate(accountID, sid string) (string, error) {
	now := s.clock.Now()

	claims := &Claims{
		AccountID: accountID,
		SID:       sid,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.expMinutes) * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token, returning its claims.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
