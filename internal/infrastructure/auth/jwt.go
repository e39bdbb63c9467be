package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"chefviral/internal/shared/biztime"
)

// Claims carries the authenticated user identity inside a session token.
type Claims struct {
	UserID  uint   `json:"user_id"`
	UserSID string `json:"user_sid"`
	Email   string `json:"email"`
	jwt.RegisteredClaims
}

// JWTService issues and verifies HS256 session tokens.
type JWTService struct {
	secret         []byte
	accessExpHours int
}

// NewJWTService creates a JWTService with the given signing secret and
// access token lifetime in hours.
func NewJWTService(secret string, accessExpHours int) *JWTService {
	return &JWTService{
		secret:         []byte(secret),
		accessExpHours: accessExpHours,
	}
}

// Generate signs a session token for the user.
func (s *JWTService) Generate(userID uint, userSID, email string) (string, error) {
	now := biztime.NowUTC()
	exp := now.Add(time.Duration(s.accessExpHours) * time.Hour)

	claims := &Claims{
		UserID:  userID,
		UserSID: userSID,
		Email:   email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a session token, returning its claims.
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

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}

// ExpiresInSeconds returns the access token lifetime in seconds.
func (s *JWTService) ExpiresInSeconds() int64 {
	return int64(s.accessExpHours) * 3600
}
