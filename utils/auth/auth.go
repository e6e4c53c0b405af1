package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/matrizimoveis/matriz_portal/utils/auth/common"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

const (
	// SessionCookieName is the name of the cookie storing the session token
	SessionCookieName = "Session"
	// SessionContextKey is the gin context key the verified session claims are stored under
	SessionContextKey = "session"
)

var (
	// ErrInvalidToken is returned when a session token can't be parsed or verified
	ErrInvalidToken = errors.New("invalid session token")
	// ErrMissingSecret is returned when a token is signed or verified without a secret
	ErrMissingSecret = errors.New("session token secret undefined")
)

// TokenProvider extracts the session token from the request
type TokenProvider func(*gin.Context) string

// NewSessionJWT creates a session token carrying the email and role of a logged in account.
// The token expires maxAge after issuedAt; a maxAge of 0 or less gives a token without expiry.
func NewSessionJWT(email string, role common.Role, issuedAt int64, maxAge time.Duration, secret []byte) (string, error) {
	if len(secret) == 0 {
		return "", ErrMissingSecret
	}

	registeredClaims := jwt.RegisteredClaims{
		Subject:  email,
		IssuedAt: jwt.NewNumericDate(time.Unix(issuedAt, 0)),
	}
	if maxAge > 0 {
		registeredClaims.ExpiresAt = jwt.NewNumericDate(time.Unix(issuedAt, 0).Add(maxAge))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, common.SessionClaims{
		RegisteredClaims: registeredClaims,
		Email:            email,
		Role:             role,
	})

	return token.SignedString(secret)
}

// GetSessionClaims verifies the token and returns its claims
func GetSessionClaims(token string, secret []byte) (*common.SessionClaims, error) {
	if len(secret) == 0 {
		return nil, ErrMissingSecret
	}

	claims := &common.SessionClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, err.Error())
	}

	if !claims.Role.Valid() {
		return nil, errors.Wrap(ErrInvalidToken, "token carries an unknown role")
	}

	return claims, nil
}

// RoleVerifierFactory creates a middleware letting through only sessions of the given role.
// Requests without a valid session are passed to invalidTokenHandler,
// sessions of another role are redirected to their own landing page.
func RoleVerifierFactory(role common.Role, tokenProvider TokenProvider, secret []byte, invalidTokenHandler gin.HandlerFunc) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, err := GetSessionClaims(tokenProvider(ctx), secret)
		if err != nil {
			invalidTokenHandler(ctx)
			return
		}

		if claims.Role != role {
			ctx.Redirect(http.StatusSeeOther, claims.Role.LandingPath())
			ctx.Abort()
			return
		}

		ctx.Set(SessionContextKey, claims)
		ctx.Next()
	}
}

// GetSessionFromContext returns the claims stored by RoleVerifierFactory
func GetSessionFromContext(ctx *gin.Context) (*common.SessionClaims, bool) {
	value, exists := ctx.Get(SessionContextKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*common.SessionClaims)
	return claims, ok
}

// GetHashForPassword generates a bcrypt hash for the given password
func GetHashForPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CompareHashAndPassword compares the hash to the password.
// Returns nil when they match.
func CompareHashAndPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
