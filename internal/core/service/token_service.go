package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mdtreza/booking-api/internal/core/domain"
	"github.com/mdtreza/booking-api/internal/core/ports"
)

// TokenService mints and validates HS256 JWTs. Access and refresh tokens
// share the claim shape (sub + role) but are signed with distinct secrets
// so one can never stand in for the other.
type TokenService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewTokenService(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *TokenService {
	if accessTTL <= 0 {
		accessTTL = time.Hour
	}
	if refreshTTL <= 0 {
		refreshTTL = 7 * 24 * time.Hour
	}
	return &TokenService{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

func (s *TokenService) IssueAccessToken(userID int64, role string) (string, error) {
	return sign(userID, role, s.accessSecret, s.accessTTL)
}

func (s *TokenService) IssueRefreshToken(userID int64, role string) (string, error) {
	return sign(userID, role, s.refreshSecret, s.refreshTTL)
}

func (s *TokenService) VerifyAccessToken(token string) (*ports.TokenClaims, error) {
	return verify(token, s.accessSecret)
}

// Refresh verifies the refresh token against the refresh secret and mints a
// new access token with the same claims. The refresh token is not rotated.
func (s *TokenService) Refresh(refreshToken string) (string, error) {
	claims, err := verify(refreshToken, s.refreshSecret)
	if err != nil {
		return "", err
	}
	return s.IssueAccessToken(claims.UserID, claims.Role)
}

func sign(userID int64, role string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(secret)
}

func verify(token string, secret []byte) (*ports.TokenClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}

	// JSON numbers decode into float64 inside MapClaims.
	sub, okSub := claims["sub"].(float64)
	role, okRole := claims["role"].(string)
	if !okSub || !okRole {
		return nil, domain.ErrInvalidToken
	}

	return &ports.TokenClaims{UserID: int64(sub), Role: role}, nil
}
