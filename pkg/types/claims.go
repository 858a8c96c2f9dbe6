package types

import "github.com/golang-jwt/jwt/v5"

// Claims is the JWT payload shared with the claims backend.
type Claims struct {
	UserID   string `json:"uid"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}
