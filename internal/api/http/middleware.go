package http

import (
	"context"
	"net/http"
	"strings"

	"carlink-backend/internal/apperr"
	"carlink-backend/internal/domain"
	"carlink-backend/internal/security"
	"carlink-backend/internal/service"

	"github.com/gorilla/mux"
)

type contextKey string

const (
	callerContextKey contextKey = "caller"
	apiKeyContextKey contextKey = "api_key"
)

type Middleware struct {
	tokens security.TokenManager
	keys   service.ApiKeyService
}

func NewMiddleware(tokens security.TokenManager, keys service.ApiKeyService) *Middleware {
	return &Middleware{tokens: tokens, keys: keys}
}

// RequireAuth validates the Bearer access token and injects the caller into
// the request context.
func (m *Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			writeError(w, r, apperr.Unauthorized("authorization token is not provided"))
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			writeError(w, r, apperr.Unauthorized("invalid token"))
			return
		}
		if claims.Type != security.TokenTypeAccess {
			writeError(w, r, apperr.Unauthorized("access token required"))
			return
		}

		caller := service.Caller{
			UserID:    claims.UserID,
			Role:      claims.Role,
			PartnerID: claims.PartnerID,
		}
		ctx := context.WithValue(r.Context(), callerContextKey, caller)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuth injects the caller when a valid Bearer token is present but
// lets anonymous requests through untouched. Used where guests and logged-in
// customers share an endpoint.
func (m *Middleware) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil || claims.Type != security.TokenTypeAccess {
			next.ServeHTTP(w, r)
			return
		}

		caller := service.Caller{
			UserID:    claims.UserID,
			Role:      claims.Role,
			PartnerID: claims.PartnerID,
		}
		ctx := context.WithValue(r.Context(), callerContextKey, caller)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole restricts a subrouter to the given roles. It only narrows the
// audience; per-resource ownership is still checked by the services.
func (m *Middleware) RequireRole(roles ...domain.UserRole) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller, ok := CallerFrom(r.Context())
			if !ok {
				writeError(w, r, apperr.Unauthorized("authorization token is not provided"))
				return
			}
			for _, role := range roles {
				if caller.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			writeError(w, r, apperr.Forbidden())
		})
	}
}

// RequireAPIKey authenticates the X-API-Key header and checks the key carries
// the needed permission. The key record (with its partner scope) is attached
// to the request context.
func (m *Middleware) RequireAPIKey(permission domain.ApiKeyPermission) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			plaintext := r.Header.Get("X-API-Key")
			if plaintext == "" {
				writeError(w, r, apperr.Unauthorized("API key is not provided"))
				return
			}

			key, err := m.keys.Authenticate(r.Context(), plaintext)
			if err != nil {
				writeError(w, r, err)
				return
			}
			if !key.HasPermission(permission) {
				writeError(w, r, apperr.Forbidden())
				return
			}

			ctx := context.WithValue(r.Context(), apiKeyContextKey, key)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func CallerFrom(ctx context.Context) (service.Caller, bool) {
	caller, ok := ctx.Value(callerContextKey).(service.Caller)
	return caller, ok
}

func APIKeyFrom(ctx context.Context) (*domain.ApiKey, bool) {
	key, ok := ctx.Value(apiKeyContextKey).(*domain.ApiKey)
	return key, ok
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return header[7:]
	}
	return ""
}
