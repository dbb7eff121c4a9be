package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/mannsoni/portfolio/internal/logger"
	"github.com/mannsoni/portfolio/internal/middlewares"
	"github.com/mannsoni/portfolio/internal/models"
	"github.com/mannsoni/portfolio/internal/services"
)

//go:generate mockgen -source=login.go -destination=login_mock.go -package=handlers

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// SessionCookies builds the session cookie.
type SessionCookies interface {
	NewCookie(token string) *http.Cookie
	ExpiredCookie() *http.Cookie
}

// NewLoginHandler returns an HTTP handler for admin login.
// @Summary Admin login
// @Description Checks the credentials and sets the session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body models.LoginRequest true "Login Request"
// @Success 200 {object} models.SuccessResponse "Logged in successfully"
// @Failure 400 {object} models.ErrorResponse "Email and password are required"
// @Failure 401 {object} models.ErrorResponse "Invalid credentials"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer, cookies SessionCookies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if strings.TrimSpace(req.Email) == "" || req.Password == "" {
			writeError(w, http.StatusBadRequest, "Email and password are required")
			return
		}

		token, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				writeError(w, http.StatusUnauthorized, "Invalid credentials")
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		http.SetCookie(w, cookies.NewCookie(token))
		writeJSON(w, http.StatusOK, models.SuccessResponse{Success: true, Message: "Logged in successfully"})
	}
}

// NewLogoutHandler returns an HTTP handler clearing the session cookie.
// @Summary Admin logout
// @Tags auth
// @Produce json
// @Success 200 {object} models.SuccessResponse "Logged out successfully"
// @Router /auth/logout [post]
func NewLogoutHandler(cookies SessionCookies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, cookies.ExpiredCookie())
		writeJSON(w, http.StatusOK, models.SuccessResponse{Success: true, Message: "Logged out successfully"})
	}
}

// NewSessionHandler returns the admin behind the session cookie.
// Must run behind middlewares.AuthMiddleware.
// @Summary Current session
// @Tags auth
// @Produce json
// @Success 200 {object} models.SessionResponse
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /auth/me [get]
// @Security CookieAuth
func NewSessionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middlewares.ClaimsFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		writeJSON(w, http.StatusOK, models.SessionResponse{AdminID: claims.AdminID, Email: claims.Email})
	}
}
