package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims identify the principal behind an access token. Exactly one of
// UserID (staff) or ComplainantID (citizen) is set.
type Claims struct {
	UserID        *uuid.UUID
	ComplainantID *uuid.UUID
}

// IsCitizen reports whether the token was issued to a complainant.
func (c Claims) IsCitizen() bool { return c.ComplainantID != nil }

func (c Claims) validate() error {
	switch {
	case c.UserID != nil && c.ComplainantID != nil:
		return errors.New("token carries both user and complainant id")
	case c.UserID == nil && c.ComplainantID == nil:
		return errors.New("token carries no principal")
	}
	return nil
}

// JWTManager validates HS256 access tokens issued by the identity provider.
// GenerateAccessToken exists for tooling and tests that need signed tokens.
type JWTManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
func NewJWTManager(secret string, issuer string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
	}
}

type accessClaims struct {
	jwt.RegisteredClaims
	UserID        string `json:"user_id,omitempty"`
	ComplainantID string `json:"complainant_id,omitempty"`
}

// GenerateAccessToken creates a signed HS256 JWT for the given principal.
func (m *JWTManager) GenerateAccessToken(c Claims) (string, error) {
	if err := c.validate(); err != nil {
		return "", err
	}

	now := time.Now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	if c.UserID != nil {
		claims.UserID = c.UserID.String()
		claims.Subject = claims.UserID
	} else {
		claims.ComplainantID = c.ComplainantID.String()
		claims.Subject = claims.ComplainantID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// ValidateAccessToken parses and validates a JWT access token: signature,
// expiry, issuer and the principal ids.
func (m *JWTManager) ValidateAccessToken(tokenString string) (Claims, error) {
	if tokenString == "" {
		return Claims{}, fmt.Errorf("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return Claims{}, fmt.Errorf("parse token: %w", err)
	}

	ac, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return Claims{}, fmt.Errorf("invalid token claims")
	}

	if ac.Issuer != m.issuer {
		return Claims{}, fmt.Errorf("invalid issuer: expected %s, got %s", m.issuer, ac.Issuer)
	}

	var out Claims
	if ac.UserID != "" {
		id, err := uuid.Parse(ac.UserID)
		if err != nil {
			return Claims{}, fmt.Errorf("invalid user_id: %w", err)
		}
		out.UserID = &id
	}
	if ac.ComplainantID != "" {
		id, err := uuid.Parse(ac.ComplainantID)
		if err != nil {
			return Claims{}, fmt.Errorf("invalid complainant_id: %w", err)
		}
		out.ComplainantID = &id
	}

	if err := out.validate(); err != nil {
		return Claims{}, err
	}

	return out, nil
}
