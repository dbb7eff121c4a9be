package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/mannsoni/portfolio/internal/logger"
	"github.com/mannsoni/portfolio/internal/models"
	"github.com/mannsoni/portfolio/internal/services"
)

type validator interface {
	Validate() error
}

// listHandler serves every row of a resource as a JSON array.
func listHandler[T any](resource string, list func(context.Context) ([]T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := list(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list", "resource", resource, "error", err)
			writeError(w, http.StatusInternalServerError, "Error fetching "+resource)
			return
		}
		if items == nil {
			items = []T{}
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// decodePayload reads a JSON body and validates it. It writes the 400 itself.
func decodePayload[P validator](w http.ResponseWriter, r *http.Request) (P, bool) {
	var payload P
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logger.Log.Warnw("failed to decode request body", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return payload, false
	}
	if err := payload.Validate(); err != nil {
		logger.Log.Warnw("invalid payload", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return payload, false
	}
	return payload, true
}

func createHandler[C validator, T any](resource string, create func(context.Context, C) (*T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, ok := decodePayload[C](w, r)
		if !ok {
			return
		}

		item, err := create(r.Context(), payload)
		if err != nil {
			logger.Log.Errorw("failed to create", "resource", resource, "error", err)
			writeError(w, http.StatusInternalServerError, "Error creating "+resource)
			return
		}
		writeJSON(w, http.StatusOK, item)
	}
}

func updateHandler[U validator, T any](resource string, update func(context.Context, U) (*T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, ok := decodePayload[U](w, r)
		if !ok {
			return
		}

		item, err := update(r.Context(), payload)
		if err != nil {
			writeWriteError(w, "updating", resource, err)
			return
		}
		writeJSON(w, http.StatusOK, item)
	}
}

func deleteHandler(resource string, del func(context.Context, uuid.UUID) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := r.URL.Query().Get("id")
		if raw == "" {
			writeError(w, http.StatusBadRequest, "ID is required")
			return
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			logger.Log.Warnw("invalid id", "resource", resource, "id", raw)
			writeError(w, http.StatusBadRequest, "Invalid ID")
			return
		}

		if err := del(r.Context(), id); err != nil {
			writeWriteError(w, "deleting", resource, err)
			return
		}
		writeJSON(w, http.StatusOK, models.SuccessResponse{Success: true})
	}
}

func writeWriteError(w http.ResponseWriter, verb, resource string, err error) {
	if errors.Is(err, services.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}
	logger.Log.Errorw("write failed", "op", verb, "resource", resource, "error", err)
	writeError(w, http.StatusInternalServerError, "Error "+verb+" "+resource)
}
