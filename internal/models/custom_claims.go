package models

import "github.com/golang-jwt/jwt/v5"

// CustomClaims carries the authenticated owner identity inside access tokens.
type CustomClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
