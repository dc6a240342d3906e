package handlers

//go:generate mockgen -source=amount.go -destination=amount_mock_test.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-peakbet-deposit/internal/models"
	"github.com/shopspring/decimal"
)

// AmountSetter sets the deposit amount of a session.
type AmountSetter interface {
	SetAmount(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (models.SessionSnapshot, error)
}

// SetAmountRequest represents the payload of an amount change
// swagger:model SetAmountRequest
type SetAmountRequest struct {
	// Amount in BRL, rounded to cents
	// required: true
	// example: 50.00
	Amount decimal.Decimal `json:"amount" swaggertype:"number"`
}

// NewSetAmountHandler returns an HTTP handler that changes the deposit amount.
// @Summary Set deposit amount
// @Description Stores the amount on PIX_AMOUNT or CARD_AMOUNT. Any amount is accepted; canContinue reports whether the method minimum is met.
// @Tags deposit
// @Accept json
// @Produce json
// @Param request body SetAmountRequest true "Amount"
// @Success 200 {object} models.SessionSnapshot
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "No open session"
// @Failure 409 {object} handlers.ErrorResponse "Not allowed on the current step"
// @Router /deposit/session/amount [put]
// @Security BearerAuth
func NewSetAmountHandler(svc AmountSetter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, claims, ok := authenticate(w, r, tokener)
		if !ok {
			return
		}

		var req SetAmountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request"})
			return
		}
		if req.Amount.IsNegative() {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Amount must not be negative"})
			return
		}

		snap, err := svc.SetAmount(ctx, claims.UserID, req.Amount)
		writeSession(w, snap, err)
	}
}

// RegisterSetAmountHandler registers the amount route
func RegisterSetAmountHandler(r chi.Router, h http.HandlerFunc) {
	r.Put("/deposit/session/amount", h)
}
