package middlewares

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/mannsoni/portfolio/internal/jwt"
	"github.com/mannsoni/portfolio/internal/logger"
	"github.com/mannsoni/portfolio/internal/models"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

const (
	AdminPrefix = "/admin"
	LoginPath   = "/admin/login"
)

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

type claimsKey struct{}

// ClaimsFromContext returns the claims stored by AuthMiddleware.
func ClaimsFromContext(ctx context.Context) (*jwt.Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*jwt.Claims)
	return claims, ok
}

func authenticate(tokener Tokener, r *http.Request) (*jwt.Claims, error) {
	ctx := r.Context()

	tokenString, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		return nil, err
	}
	return tokener.GetClaims(ctx, tokenString)
}

// AuthMiddleware rejects requests without a valid session token with 401.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := authenticate(tokener, r)
			if err != nil {
				logger.Log.Warnw("authorization failed", "path", r.URL.Path, "err", err)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Unauthorized"})
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminPageGate redirects anonymous visitors of admin pages to the login page
// and signed-in admins away from it.
func AdminPageGate(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			if path != AdminPrefix && !strings.HasPrefix(path, AdminPrefix+"/") {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := authenticate(tokener, r)
			isLogin := path == LoginPath || strings.HasPrefix(path, LoginPath+"/")

			switch {
			case err != nil && !isLogin:
				logger.Log.Debugw("admin page without session", "path", path, "err", err)
				http.Redirect(w, r, LoginPath, http.StatusTemporaryRedirect)
			case err == nil && isLogin:
				http.Redirect(w, r, AdminPrefix, http.StatusTemporaryRedirect)
			default:
				if claims != nil {
					r = r.WithContext(context.WithValue(r.Context(), claimsKey{}, claims))
				}
				next.ServeHTTP(w, r)
			}
		})
	}
}
