package auth

import (
	"fmt"
	"time"

	apperrors "fieldsafe-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims are the JWT claims this service issues and validates. BranchID names
// the caller's home branch; Admin grants cross-branch visibility. Role and
// permission mapping beyond that flag belongs to an upstream system.
type Claims struct {
	Email    string `json:"email"`
	BranchID string `json:"branch_id"`
	Admin    bool   `json:"admin"`
	jwt.RegisteredClaims
}

// Service issues and validates access tokens
type Service struct {
	secret   []byte
	tokenTTL time.Duration
}

// NewService creates a new auth service
func NewService(secret string, tokenTTL time.Duration) *Service {
	if tokenTTL == 0 {
		tokenTTL = 12 * time.Hour
	}
	return &Service{secret: []byte(secret), tokenTTL: tokenTTL}
}

// GenerateToken issues a signed token for a caller identity.
func (s *Service) GenerateToken(subject, email string, branchID uuid.UUID, admin bool) (string, error) {
	now := time.Now()
	claims := &Claims{
		Email:    email,
		BranchID: branchID.String(),
		Admin:    admin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			Issuer:    "fieldsafe-backend",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and verifies a token, returning its claims.
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, apperrors.ErrInvalidToken
	}
	if claims.Subject == "" || claims.BranchID == "" {
		return nil, apperrors.ErrInvalidToken
	}
	if _, err := uuid.Parse(claims.BranchID); err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	return claims, nil
}
