package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-expense-tracker/internal/logger"
	"github.com/sbilibin2017/gw-expense-tracker/internal/middlewares"
	"github.com/sbilibin2017/gw-expense-tracker/internal/models"
	"github.com/sbilibin2017/gw-expense-tracker/internal/services"
)

func writeResponse(w http.ResponseWriter, status int, resp models.Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeResponse(w, status, models.Response{Success: true, Data: data})
}

func writeFailure(w http.ResponseWriter, status int, msg string) {
	writeResponse(w, status, models.Response{Success: false, Msg: msg})
}

// writeError maps a service error to its HTTP status and failure envelope.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrInsufficientBalance):
		status = http.StatusConflict
	case errors.Is(err, services.ErrAttachmentFailed),
		errors.Is(err, services.ErrUploadFailed):
		status = http.StatusBadGateway
	case errors.Is(err, services.ErrUserAlreadyExists):
		status = http.StatusConflict
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrUserDoesNotExist):
		status = http.StatusUnauthorized
	}

	if status == http.StatusInternalServerError {
		logger.Log.Errorw("internal server error", "err", err)
	}
	writeFailure(w, status, err.Error())
}

// userID returns the authenticated user or writes 401.
func userID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	uid, ok := middlewares.UserIDFromContext(r.Context())
	if !ok {
		writeFailure(w, http.StatusUnauthorized, "Unauthorized")
	}
	return uid, ok
}

func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// queryUUID parses an optional UUID query parameter. A missing parameter yields nil.
func queryUUID(w http.ResponseWriter, r *http.Request, name string) (*uuid.UUID, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid "+name)
		return nil, false
	}
	return &id, true
}
