// Package middleware verifies bearer tokens issued by the external
// identity provider. Token issuance, sessions and password handling all
// live with the provider; the server only checks signatures against the
// provider's published JWKS and trusts the claims.
package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MicahParks/keyfunc"
	"github.com/golang-jwt/jwt/v4"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/niloyahmadramjan/surplusshare-server/internal/api/respond"
	"github.com/niloyahmadramjan/surplusshare-server/internal/config"
)

// Context keys set for downstream handlers.
const (
	CtxEmail = "email"
	CtxName  = "name"
	CtxRole  = "role"
)

// Auth verifies tokens against the identity provider's JWKS.
type Auth struct {
	jwks *keyfunc.JWKS
	cfg  config.Auth
}

// New fetches the provider's JWKS and keeps it refreshed in the background.
func New(cfg config.Auth) (*Auth, error) {
	jwks, err := keyfunc.Get(cfg.JWKSURL, keyfunc.Options{
		RefreshInterval: time.Hour,
		RefreshErrorHandler: func(err error) {
			zlog.Logger.Error().Err(err).Msg("failed to refresh JWKS")
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get JWKS from %s: %w", cfg.JWKSURL, err)
	}

	return &Auth{jwks: jwks, cfg: cfg}, nil
}

// RequireAuth rejects requests without a valid bearer token and stashes
// the principal's email, name and role in the context.
func (a *Auth) RequireAuth(c *ginext.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.Abort()
		respond.Fail(c.Writer, http.StatusUnauthorized, errors.New("authorization header is required"))
		return
	}

	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenStr == "" || tokenStr == authHeader {
		c.Abort()
		respond.Fail(c.Writer, http.StatusUnauthorized, errors.New("bearer token is required"))
		return
	}

	token, err := jwt.Parse(tokenStr, a.jwks.Keyfunc)
	if err != nil || !token.Valid {
		c.Abort()
		respond.Fail(c.Writer, http.StatusUnauthorized, errors.New("invalid authorization token"))
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.Abort()
		respond.Fail(c.Writer, http.StatusUnauthorized, errors.New("invalid token claims"))
		return
	}

	if !claims.VerifyIssuer(a.cfg.Issuer, true) || !claims.VerifyAudience(a.cfg.Audience, true) {
		c.Abort()
		respond.Fail(c.Writer, http.StatusUnauthorized, errors.New("token issuer or audience mismatch"))
		return
	}

	email, _ := claims["email"].(string)
	if email == "" {
		c.Abort()
		respond.Fail(c.Writer, http.StatusUnauthorized, errors.New("token has no email claim"))
		return
	}

	name, _ := claims["name"].(string)
	role, _ := claims["role"].(string)

	c.Set(CtxEmail, email)
	c.Set(CtxName, name)
	c.Set(CtxRole, role)

	c.Next()
}

// RequireRole guards a route group for a single role. It runs after
// RequireAuth.
func (a *Auth) RequireRole(role string) func(c *ginext.Context) {
	return func(c *ginext.Context) {
		if c.GetString(CtxRole) != role {
			c.Abort()
			respond.Fail(c.Writer, http.StatusForbidden, errors.New("forbidden"))
			return
		}

		c.Next()
	}
}
