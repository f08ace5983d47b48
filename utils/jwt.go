package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/phealthcare/healthcare-api/models"
)

// GenerateToken signs an HS256 token holding email and role.
func GenerateToken(email string, role models.UserRole, secret string, expiresIn time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"role":  string(role),
		"exp":   time.Now().Add(expiresIn).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyToken parses and validates a token, returning its claims.
func VerifyToken(tokenString, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}

// ClaimsIdentity extracts the email and role claims.
func ClaimsIdentity(claims jwt.MapClaims) (string, models.UserRole, error) {
	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", "", fmt.Errorf("no email found in claims")
	}
	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return "", "", fmt.Errorf("no role found in claims")
	}
	return email, models.UserRole(role), nil
}
