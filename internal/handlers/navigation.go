package handlers

//go:generate mockgen -source=navigation.go -destination=navigation_mock_test.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-peakbet-deposit/internal/models"
)

// Navigator moves a session between steps.
type Navigator interface {
	Back(ctx context.Context, userID uuid.UUID) (models.SessionSnapshot, error)
	Continue(ctx context.Context, userID uuid.UUID) (models.SessionSnapshot, error)
	Reset(ctx context.Context, userID uuid.UUID) (models.SessionSnapshot, error)
}

// NewBackHandler returns an HTTP handler that goes to the previous step.
// @Summary Previous step
// @Description Leaving PIX_QR abandons the charge and stops status polling.
// @Tags deposit
// @Produce json
// @Success 200 {object} models.SessionSnapshot
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "No open session"
// @Failure 409 {object} handlers.ErrorResponse "Not allowed on the current step"
// @Router /deposit/session/back [post]
// @Security BearerAuth
func NewBackHandler(svc Navigator, tokener Tokener) http.HandlerFunc {
	return newStepHandler(tokener, svc.Back)
}

// NewContinueHandler returns an HTTP handler that advances the card flow.
// @Summary Next step
// @Description Goes from CARD_AMOUNT to CARD_USER once the amount meets the minimum, then from CARD_USER to CARD_DETAILS once holder name and CPF are valid.
// @Tags deposit
// @Produce json
// @Success 200 {object} models.SessionSnapshot
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "No open session"
// @Failure 409 {object} handlers.ErrorResponse "Not allowed on the current step"
// @Failure 422 {object} handlers.ErrorResponse "Amount below minimum or invalid holder data"
// @Router /deposit/session/continue [post]
// @Security BearerAuth
func NewContinueHandler(svc Navigator, tokener Tokener) http.HandlerFunc {
	return newStepHandler(tokener, svc.Continue)
}

// NewResetHandler returns an HTTP handler that restores the session defaults.
// @Summary Reset session
// @Description Cancels polling, clears the charge and card form, and returns to SELECT_METHOD.
// @Tags deposit
// @Produce json
// @Success 200 {object} models.SessionSnapshot
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "No open session"
// @Router /deposit/session/reset [post]
// @Security BearerAuth
func NewResetHandler(svc Navigator, tokener Tokener) http.HandlerFunc {
	return newStepHandler(tokener, svc.Reset)
}

func newStepHandler(tokener Tokener, op func(context.Context, uuid.UUID) (models.SessionSnapshot, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, claims, ok := authenticate(w, r, tokener)
		if !ok {
			return
		}

		snap, err := op(ctx, claims.UserID)
		writeSession(w, snap, err)
	}
}

// RegisterNavigationHandlers registers the back, continue and reset routes
func RegisterNavigationHandlers(r chi.Router, back, cont, reset http.HandlerFunc) {
	r.Post("/deposit/session/back", back)
	r.Post("/deposit/session/continue", cont)
	r.Post("/deposit/session/reset", reset)
}
