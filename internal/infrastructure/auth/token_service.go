package auth

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"autokorea/internal/domain/entities"
	"autokorea/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// TokenService issues HS256 session tokens for the API.
type TokenService struct {
	secret   []byte
	tokenExp time.Duration
}

var _ interfaces.ITokenService = (*TokenService)(nil)

// NewTokenService reads JWT_SECRET and JWT_EXPIRY from the environment.
func NewTokenService() *TokenService {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default-secret-key-change-in-production"
	}

	exp := 24 * time.Hour
	if expStr := os.Getenv("JWT_EXPIRY"); expStr != "" {
		if parsed, err := time.ParseDuration(expStr); err == nil {
			exp = parsed
		}
	}

	return &TokenService{secret: []byte(secret), tokenExp: exp}
}

func (s *TokenService) Generate(claims interfaces.Claims) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  claims.Subject,
		"name": claims.Name,
		"role": string(claims.Role),
		"exp":  now.Add(s.tokenExp).Unix(),
		"iat":  now.Unix(),
	})
	return token.SignedString(s.secret)
}

func (s *TokenService) Validate(tokenString string) (interfaces.Claims, error) {
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return interfaces.Claims{}, ErrExpiredToken
		}
		return interfaces.Claims{}, ErrInvalidToken
	}
	if !token.Valid {
		return interfaces.Claims{}, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return interfaces.Claims{}, ErrInvalidToken
	}

	sub, ok := mapClaims["sub"].(string)
	if !ok {
		return interfaces.Claims{}, ErrInvalidToken
	}
	name, ok := mapClaims["name"].(string)
	if !ok {
		return interfaces.Claims{}, ErrInvalidToken
	}
	role, ok := mapClaims["role"].(string)
	if !ok {
		return interfaces.Claims{}, ErrInvalidToken
	}

	return interfaces.Claims{Subject: sub, Name: name, Role: entities.StaffRole(role)}, nil
}
