package common

import (
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the model for the claims in the session token
type SessionClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  Role   `json:"role"`
}
