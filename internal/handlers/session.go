package handlers

//go:generate mockgen -source=session.go -destination=session_mock_test.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-peakbet-deposit/internal/logger"
	"github.com/sbilibin2017/gw-peakbet-deposit/internal/models"
)

// SessionOpener opens a deposit session.
type SessionOpener interface {
	Open(ctx context.Context, userID uuid.UUID) (models.SessionSnapshot, error)
}

// SessionReader reads a deposit session.
type SessionReader interface {
	Snapshot(ctx context.Context, userID uuid.UUID) (models.SessionSnapshot, error)
}

// SessionCloser tears a deposit session down.
type SessionCloser interface {
	Close(ctx context.Context, userID uuid.UUID) error
}

// NewOpenSessionHandler returns an HTTP handler that opens a fresh deposit session.
// @Summary Open deposit session
// @Description Starts a new deposit session on SELECT_METHOD with default amounts. Any previous session of the user is torn down.
// @Tags deposit
// @Produce json
// @Success 200 {object} models.SessionSnapshot
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /deposit/session [post]
// @Security BearerAuth
func NewOpenSessionHandler(svc SessionOpener, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, claims, ok := authenticate(w, r, tokener)
		if !ok {
			return
		}

		snap, err := svc.Open(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to open deposit session", "userID", claims.UserID, "error", err)
		}
		writeSession(w, snap, err)
	}
}

// NewGetSessionHandler returns an HTTP handler that reads the current deposit session.
// @Summary Get deposit session
// @Description Returns the state of the caller's deposit session, including PIX status and notifications.
// @Tags deposit
// @Produce json
// @Success 200 {object} models.SessionSnapshot
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "No open session"
// @Router /deposit/session [get]
// @Security BearerAuth
func NewGetSessionHandler(svc SessionReader, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, claims, ok := authenticate(w, r, tokener)
		if !ok {
			return
		}

		snap, err := svc.Snapshot(ctx, claims.UserID)
		writeSession(w, snap, err)
	}
}

// NewCloseSessionHandler returns an HTTP handler that closes the deposit session.
// @Summary Close deposit session
// @Description Tears the session down. Status polling and pending resets are cancelled.
// @Tags deposit
// @Success 204 "Session closed"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "No open session"
// @Router /deposit/session [delete]
// @Security BearerAuth
func NewCloseSessionHandler(svc SessionCloser, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, claims, ok := authenticate(w, r, tokener)
		if !ok {
			return
		}

		if err := svc.Close(ctx, claims.UserID); err != nil {
			writeJSON(w, statusFor(err), ErrorResponse{Error: err.Error()})
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// RegisterSessionHandlers registers the session lifecycle routes
func RegisterSessionHandlers(r chi.Router, open, get, close http.HandlerFunc) {
	r.Post("/deposit/session", open)
	r.Get("/deposit/session", get)
	r.Delete("/deposit/session", close)
}
