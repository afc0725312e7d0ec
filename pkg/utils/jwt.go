package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// jwtKey reads the secret at call time, not package init, so a value
// loaded from .env after startup is honored.
func jwtKey() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// Session tokens are valid for multiple days; a role change re-issues the
// token so the role claim stays current, but onboarding decisions never
// trust the claim alone (storage is re-checked on every transition).
const tokenTTL = 72 * time.Hour

type Claims struct {
	Email   string `json:"email"`
	Role    string `json:"role,omitempty"`
	IsAdmin bool   `json:"is_admin,omitempty"`
	jwt.RegisteredClaims
}

func CreateToken(accountID uuid.UUID, email string, role string, isAdmin bool) (string, error) {
	claims := &Claims{
		Email:   email,
		Role:    role,
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey())
}

func ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey(), nil
	})

	if err != nil || !token.Valid {
		return nil, err
	}

	return claims, nil
}
