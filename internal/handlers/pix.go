package handlers

//go:generate mockgen -source=pix.go -destination=pix_mock_test.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-peakbet-deposit/internal/logger"
	"github.com/sbilibin2017/gw-peakbet-deposit/internal/models"
)

// PixGenerator creates PIX charges.
type PixGenerator interface {
	GeneratePix(ctx context.Context, userID uuid.UUID) (models.SessionSnapshot, error)
}

// NewGeneratePixHandler returns an HTTP handler that creates the PIX charge of the session.
// @Summary Generate PIX
// @Description Creates a PIX charge for the current amount, renders its QR code and starts status polling. A request made while a charge is being created is ignored.
// @Tags deposit
// @Produce json
// @Success 200 {object} models.SessionSnapshot
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "No open session"
// @Failure 409 {object} handlers.ErrorResponse "Not allowed on the current step"
// @Failure 422 {object} handlers.ErrorResponse "Amount below minimum"
// @Failure 502 {object} handlers.ErrorResponse "Payment gateway error"
// @Router /deposit/session/pix [post]
// @Security BearerAuth
func NewGeneratePixHandler(svc PixGenerator, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, claims, ok := authenticate(w, r, tokener)
		if !ok {
			return
		}

		snap, err := svc.GeneratePix(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to generate pix", "userID", claims.UserID, "error", err)
		}
		writeSession(w, snap, err)
	}
}

// RegisterGeneratePixHandler registers the PIX generation route
func RegisterGeneratePixHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/deposit/session/pix", h)
}
