package handlers

import (
	"context"
	"crypto/subtle"
	"net/http"

	"github.com/mannsoni/portfolio/internal/logger"
	"github.com/mannsoni/portfolio/internal/models"
)

//go:generate mockgen -source=seed.go -destination=seed_mock.go -package=handlers

// Seeder fills the database with demo content.
type Seeder interface {
	Seed(ctx context.Context) error
}

// NewSeedHandler returns an HTTP handler seeding the database when ?secret= matches.
// An empty configured secret disables the endpoint.
// @Summary Seed demo data
// @Tags ops
// @Produce json
// @Param secret query string true "Seed secret"
// @Success 200 {object} models.SuccessResponse "Database seeded successfully"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Failed to seed database"
// @Router /seed [post]
func NewSeedHandler(svc Seeder, secret string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		given := r.URL.Query().Get("secret")
		if secret == "" || subtle.ConstantTimeCompare([]byte(given), []byte(secret)) != 1 {
			logger.Log.Warnw("seed rejected", "remote", r.RemoteAddr)
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		if err := svc.Seed(r.Context()); err != nil {
			logger.Log.Errorw("seed error", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to seed database")
			return
		}

		writeJSON(w, http.StatusOK, models.SuccessResponse{Success: true, Message: "Database seeded successfully"})
	}
}
