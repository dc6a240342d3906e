package handlers

//go:generate mockgen -source=method.go -destination=method_mock_test.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-peakbet-deposit/internal/models"
	"github.com/sbilibin2017/gw-peakbet-deposit/internal/services"
)

// MethodSelector chooses the payment method of a session.
type MethodSelector interface {
	SelectMethod(ctx context.Context, userID uuid.UUID, m models.Method) (models.SessionSnapshot, error)
}

// SelectMethodRequest represents the payload of a method selection
// swagger:model SelectMethodRequest
type SelectMethodRequest struct {
	// Payment method
	// required: true
	// enum: PIX,CARD
	Method string `json:"method"`
}

// NewSelectMethodHandler returns an HTTP handler that selects PIX or CARD.
// @Summary Select deposit method
// @Description Moves the session to the amount step of the chosen method. CARD is only available once the balance is positive; otherwise the session stays on SELECT_METHOD with an error notification.
// @Tags deposit
// @Accept json
// @Produce json
// @Param request body SelectMethodRequest true "Method"
// @Success 200 {object} models.SessionSnapshot
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "No open session"
// @Failure 409 {object} handlers.ErrorResponse "Not allowed on the current step"
// @Router /deposit/session/method [post]
// @Security BearerAuth
func NewSelectMethodHandler(svc MethodSelector, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, claims, ok := authenticate(w, r, tokener)
		if !ok {
			return
		}

		var req SelectMethodRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request"})
			return
		}
		method, err := models.ParseMethod(req.Method)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}

		snap, err := svc.SelectMethod(ctx, claims.UserID, method)
		if errors.Is(err, services.ErrCardLocked) {
			// the rejection is carried by the session notifications
			writeJSON(w, http.StatusOK, snap)
			return
		}
		writeSession(w, snap, err)
	}
}

// RegisterSelectMethodHandler registers the method selection route
func RegisterSelectMethodHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/deposit/session/method", h)
}
