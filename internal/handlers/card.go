package handlers

//go:generate mockgen -source=card.go -destination=card_mock_test.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-peakbet-deposit/internal/logger"
	"github.com/sbilibin2017/gw-peakbet-deposit/internal/models"
)

// CardProcessor edits and submits the card form of a session.
type CardProcessor interface {
	UpdateCard(ctx context.Context, userID uuid.UUID, upd models.CardFormUpdate) (models.SessionSnapshot, error)
	SubmitCard(ctx context.Context, userID uuid.UUID) (models.SessionSnapshot, error)
}

// NewUpdateCardHandler returns an HTTP handler that stores card form fields.
// @Summary Update card form
// @Description Applies the input masks to the given fields and stores them. Omitted fields are left unchanged.
// @Tags deposit
// @Accept json
// @Produce json
// @Param request body models.CardFormUpdate true "Card fields"
// @Success 200 {object} models.SessionSnapshot
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "No open session"
// @Failure 409 {object} handlers.ErrorResponse "Not allowed on the current step"
// @Router /deposit/session/card [patch]
// @Security BearerAuth
func NewUpdateCardHandler(svc CardProcessor, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, claims, ok := authenticate(w, r, tokener)
		if !ok {
			return
		}

		var upd models.CardFormUpdate
		if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request"})
			return
		}

		snap, err := svc.UpdateCard(ctx, claims.UserID, upd)
		writeSession(w, snap, err)
	}
}

// NewSubmitCardHandler returns an HTTP handler that validates and charges the card.
// @Summary Submit card payment
// @Description Validates the card form and charges it. On approval the session returns to SELECT_METHOD and the balance is refreshed.
// @Tags deposit
// @Produce json
// @Success 200 {object} models.SessionSnapshot
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 402 {object} handlers.ErrorResponse "Card declined"
// @Failure 404 {object} handlers.ErrorResponse "No open session"
// @Failure 409 {object} handlers.ErrorResponse "Not allowed on the current step"
// @Failure 422 {object} handlers.ErrorResponse "Invalid card data"
// @Failure 502 {object} handlers.ErrorResponse "Payment gateway error"
// @Router /deposit/session/card/submit [post]
// @Security BearerAuth
func NewSubmitCardHandler(svc CardProcessor, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, claims, ok := authenticate(w, r, tokener)
		if !ok {
			return
		}

		snap, err := svc.SubmitCard(ctx, claims.UserID)
		if err != nil {
			logger.Log.Warnw("card payment not completed", "userID", claims.UserID, "error", err)
		}
		writeSession(w, snap, err)
	}
}

// RegisterCardHandlers registers the card form routes
func RegisterCardHandlers(r chi.Router, update, submit http.HandlerFunc) {
	r.Patch("/deposit/session/card", update)
	r.Post("/deposit/session/card/submit", submit)
}
