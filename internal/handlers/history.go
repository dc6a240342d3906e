package handlers

//go:generate mockgen -source=history.go -destination=history_mock_test.go -package=handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-peakbet-deposit/internal/logger"
	"github.com/sbilibin2017/gw-peakbet-deposit/internal/models"
)

// HistoryReader lists journaled deposit attempts.
type HistoryReader interface {
	History(ctx context.Context, userID uuid.UUID, limit int) ([]models.DepositAttempt, error)
}

// NewHistoryHandler returns an HTTP handler that lists the caller's deposit attempts.
// @Summary Deposit history
// @Description Returns the latest deposit attempts, newest first.
// @Tags deposit
// @Produce json
// @Param limit query int false "Maximum number of attempts (default 20, max 100)"
// @Success 200 {array} models.DepositAttempt
// @Failure 400 {object} handlers.ErrorResponse "Invalid limit"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /deposit/history [get]
// @Security BearerAuth
func NewHistoryHandler(svc HistoryReader, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, claims, ok := authenticate(w, r, tokener)
		if !ok {
			return
		}

		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid limit"})
				return
			}
			limit = n
		}

		attempts, err := svc.History(ctx, claims.UserID, limit)
		if err != nil {
			logger.Log.Errorw("failed to read deposit history", "userID", claims.UserID, "error", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
			return
		}
		writeJSON(w, http.StatusOK, attempts)
	}
}

// RegisterHistoryHandler registers the history route
func RegisterHistoryHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/deposit/history", h)
}
