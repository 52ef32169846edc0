package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for malformed, expired, or forged tokens
var ErrInvalidToken = errors.New("invalid token")

const tokenTTL = 24 * time.Hour

// Claims carries the participant identity issued after a successful PIN check
type Claims struct {
	ParticipantID int64 `json:"participant_id"`
	EventID       int64 `json:"event_id"`
	IsAdmin       bool  `json:"is_admin"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies participant tokens
type TokenManager struct {
	secret []byte
}

// NewTokenManager creates a token manager with the given signing secret
func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret)}
}

// Issue creates a signed token for the given participant
func (m *TokenManager) Issue(participantID, eventID int64, isAdmin bool) (string, error) {
	now := time.Now()
	claims := &Claims{
		ParticipantID: participantID,
		EventID:       eventID,
		IsAdmin:       isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", participantID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses a token string and returns its claims
func (m *TokenManager) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
