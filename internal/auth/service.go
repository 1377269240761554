package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AuthService provides authentication functionality
type AuthService struct {
	config *AuthConfig
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID   string `json:"user_id" example:"7f3b7d3e-4a85-4f5e-9f9a-0a1b2c3d4e5f"`
	Username string `json:"username" example:"johndoe"`
	jwt.RegisteredClaims
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig) (*AuthService, error) {
	if config == nil {
		return nil, fmt.Errorf("auth config is required")
	}
	if config.JWTSecret == "" {
		return nil, fmt.Errorf("jwt_secret is required")
	}
	return &AuthService{config: config}, nil
}

// GenerateJWT creates a JWT token for the user
func (s *AuthService) GenerateJWT(userID uuid.UUID, username string) (string, error) {
	now := time.Now()
	ttl := time.Duration(s.config.TokenTTLMins) * time.Minute
	claims := &AuthClaims{
		UserID:   userID.String(),
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.config.Issuer,
			Subject:   userID.String(),
			Audience:  jwt.ClaimStrings{s.config.Audience},
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates a JWT token and returns its claims
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Validate signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		if _, err := uuid.Parse(claims.UserID); err != nil {
			return nil, fmt.Errorf("invalid user id in token: %w", err)
		}
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
