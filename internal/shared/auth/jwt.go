package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	accessTokenTTL  = 24 * time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour
)

// ErrInvalidToken is returned when a token fails verification.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the identity carried by session tokens.
type Claims struct {
	Email     string `json:"email,omitempty"`
	Name      string `json:"name,omitempty"`
	TokenType string `json:"tokenType,omitempty"`
	jwt.RegisteredClaims
}

// TokenPair bundles an access token with its refresh token.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
}

// Signer issues and verifies session tokens with HS256.
type Signer struct {
	secret []byte
}

// NewSigner builds a Signer. An empty secret falls back to a dev-only value.
func NewSigner(secret string) *Signer {
	if strings.TrimSpace(secret) == "" {
		secret = "dev-secret"
	}
	return &Signer{secret: []byte(secret)}
}

// IssuePair signs an access/refresh token pair for the given identity.
func (s *Signer) IssuePair(userID, email, name string) (TokenPair, error) {
	if strings.TrimSpace(userID) == "" {
		return TokenPair{}, errors.New("user id is required")
	}

	access, err := s.sign(userID, email, name, "access", accessTokenTTL)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := s.sign(userID, email, name, "refresh", refreshTokenTTL)
	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(accessTokenTTL / time.Second),
	}, nil
}

// Refresh exchanges a valid refresh token for a fresh token pair.
func (s *Signer) Refresh(refreshToken string) (TokenPair, error) {
	claims, err := s.verify(refreshToken)
	if err != nil {
		return TokenPair{}, err
	}
	if claims.TokenType != "refresh" {
		return TokenPair{}, ErrInvalidToken
	}
	return s.IssuePair(claims.Subject, claims.Email, claims.Name)
}

// VerifyAccess verifies an access token and returns its claims.
func (s *Signer) VerifyAccess(token string) (Claims, error) {
	claims, err := s.verify(token)
	if err != nil {
		return Claims{}, err
	}
	if claims.TokenType != "access" {
		return Claims{}, ErrInvalidToken
	}
	return claims, nil
}

func (s *Signer) sign(userID, email, name, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		Email:     email,
		Name:      name,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Issuer:    "resume-optimizer",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Signer) verify(raw string) (Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return Claims{}, ErrInvalidToken
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return Claims{}, ErrInvalidToken
	}
	return claims, nil
}
