package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"PROFILE_EXPLORER_BACK-END/internal/config"
	"PROFILE_EXPLORER_BACK-END/internal/models"
	"PROFILE_EXPLORER_BACK-END/internal/session"
	"PROFILE_EXPLORER_BACK-END/internal/utils"
)

type contextKey string

const roleKey contextKey = "role"

// RoleClaims carries the role picked on the entry screen. It is a
// tamper-evident flag, not a login.
type RoleClaims struct {
	Role models.Role `json:"role"`
	jwt.RegisteredClaims
}

// Roles signs and reads role tokens.
type Roles struct {
	secret     []byte
	cookieName string
}

// NewRoles creates a role token codec from the session configuration
func NewRoles(cfg config.SessionConfig) *Roles {
	return &Roles{secret: []byte(cfg.Secret), cookieName: cfg.CookieName}
}

// GenerateToken signs a token for role
func (r *Roles) GenerateToken(role models.Role) (string, error) {
	claims := RoleClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       uuid.NewString(),
			IssuedAt: jwt.NewNumericDate(time.Now()),
			Issuer:   "profile-explorer",
			Subject:  "role",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(r.secret)
}

// ValidateToken checks the signature and returns the role it carries
func (r *Roles) ValidateToken(tokenString string) (models.Role, error) {
	token, err := jwt.ParseWithClaims(tokenString, &RoleClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return r.secret, nil
	})
	if err != nil {
		return models.RoleNone, err
	}

	claims, ok := token.Claims.(*RoleClaims)
	if !ok || !token.Valid || claims.Subject != "role" {
		return models.RoleNone, jwt.ErrTokenMalformed
	}
	return models.ParseRole(string(claims.Role))
}

// SetCookie stores a role token in a browser-session cookie. No expiry is set
// so the role is gone once the browser session ends.
func (r *Roles) SetCookie(w http.ResponseWriter, role models.Role) error {
	token, err := r.GenerateToken(role)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     r.cookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// ClearCookie resets the visitor to no role
func (r *Roles) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     r.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// RoleFromRequest reads the role from the Authorization header or the role
// cookie. Missing or invalid tokens mean no role.
func (r *Roles) RoleFromRequest(req *http.Request) models.Role {
	if authHeader := req.Header.Get("Authorization"); authHeader != "" {
		// Extract token from "Bearer <token>"
		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) == 2 && tokenParts[0] == "Bearer" {
			if role, err := r.ValidateToken(tokenParts[1]); err == nil {
				return role
			}
		}
		return models.RoleNone
	}
	c, err := req.Cookie(r.cookieName)
	if err != nil || c.Value == "" {
		return models.RoleNone
	}
	role, err := r.ValidateToken(c.Value)
	if err != nil {
		return models.RoleNone
	}
	return role
}

// WithRole attaches the request's role to its context for every handler
func (r *Roles) WithRole(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ctx := context.WithValue(req.Context(), roleKey, r.RoleFromRequest(req))
		next.ServeHTTP(w, req.WithContext(ctx))
	})
}

// RoleFromContext returns the role stored by WithRole
func RoleFromContext(ctx context.Context) models.Role {
	if role, ok := ctx.Value(roleKey).(models.Role); ok {
		return role
	}
	return models.RoleNone
}

// RequireRole guards a page: visitors without the role are redirected the
// way the role gate decides.
func (r *Roles) RequireRole(required models.Role, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		role := r.RoleFromRequest(req)
		decision := session.Gate(required, role)
		if !decision.Allow {
			http.Redirect(w, req, decision.Redirect, http.StatusSeeOther)
			return
		}
		ctx := context.WithValue(req.Context(), roleKey, role)
		next.ServeHTTP(w, req.WithContext(ctx))
	}
}

// RequireAPIRole guards a JSON endpoint: 401 without a role, 403 when the
// role is not one of allowed.
func (r *Roles) RequireAPIRole(next http.HandlerFunc, allowed ...models.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		role := r.RoleFromRequest(req)
		if role == models.RoleNone {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "role token required")
			return
		}
		permitted := false
		for _, a := range allowed {
			if a == role {
				permitted = true
				break
			}
		}
		if !permitted {
			utils.WriteErrorResponse(w, http.StatusForbidden, "Forbidden", "role "+string(role)+" may not use this endpoint")
			return
		}
		ctx := context.WithValue(req.Context(), roleKey, role)
		next.ServeHTTP(w, req.WithContext(ctx))
	}
}
