package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hrmslite/hrms-lite-api/internal/models"
)

// tokenTTL is the fixed validity window of every access token.
const tokenTTL = 24 * time.Hour

var (
	// ErrNoSigningKey is returned when JWT_SECRET is not configured. It maps
	// to a 500-class response, never to a signed token.
	ErrNoSigningKey     = errors.New("token signing key is not configured")
	ErrTokenExpired     = errors.New("token expired")
	ErrTokenMalformed   = errors.New("token malformed")
	ErrTokenNotYetValid = errors.New("token not yet valid")
	ErrTokenInvalid     = errors.New("token invalid")
)

// Claims is the payload embedded in every access token.
type Claims struct {
	ID    string      `json:"id"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
	Name  string      `json:"name"`
	jwt.RegisteredClaims
}

// Issue signs a 24-hour HS256 access token for the given user.
func Issue(secret string, user *models.User) (string, error) {
	if secret == "" {
		return "", ErrNoSigningKey
	}

	now := time.Now()
	claims := Claims{
		ID:    user.ID.String(),
		Email: user.Email,
		Role:  user.Role,
		Name:  user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Verify parses and validates a token, classifying failures so the caller can
// answer with a reason-specific message. A token whose claims lack an id or
// email is rejected even when the signature verifies.
func Verify(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, ErrNoSigningKey
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			return nil, ErrTokenNotYetValid
		default:
			return nil, ErrTokenInvalid
		}
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}
	if claims.ID == "" || claims.Email == "" {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
