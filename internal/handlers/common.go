package handlers

//go:generate mockgen -source=common.go -destination=common_mock_test.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-peakbet-deposit/internal/jwt"
	"github.com/sbilibin2017/gw-peakbet-deposit/internal/logger"
	"github.com/sbilibin2017/gw-peakbet-deposit/internal/models"
	"github.com/sbilibin2017/gw-peakbet-deposit/internal/services"
)

// Tokener defines only the methods the deposit handlers need from the JWT service.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// ErrorResponse is returned by every deposit endpoint on failure
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: operation not allowed on the current step
	Error string `json:"error"`

	// Session state after the failed operation, when a session exists
	Session *models.SessionSnapshot `json:"session,omitempty"`
}

// authenticate resolves the caller and returns a request context carrying its token.
// It writes 401 and returns false when the token is missing or invalid.
func authenticate(w http.ResponseWriter, r *http.Request, tokener Tokener) (context.Context, *jwt.Claims, bool) {
	ctx := r.Context()

	tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Errorw("failed to get token from request", "error", err)
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return nil, nil, false
	}

	claims, err := tokener.GetClaims(ctx, tokenStr)
	if err != nil {
		logger.Log.Errorw("failed to get claims from token", "error", err)
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return nil, nil, false
	}
	return jwt.WithToken(ctx, claims.Token), claims, true
}

// writeSession writes the snapshot, or the error with the snapshot attached.
func writeSession(w http.ResponseWriter, snap models.SessionSnapshot, err error) {
	if err == nil {
		writeJSON(w, http.StatusOK, snap)
		return
	}

	status := statusFor(err)
	resp := ErrorResponse{Error: err.Error()}
	if status == http.StatusBadGateway {
		resp.Error = "Payment gateway error"
	}
	if status != http.StatusNotFound {
		resp.Session = &snap
	}
	writeJSON(w, status, resp)
}

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrSessionNotFound), errors.Is(err, services.ErrSessionClosed):
		return http.StatusNotFound
	case services.IsValidationError(err):
		return http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrIllegalTransition), errors.Is(err, services.ErrCardLocked):
		return http.StatusConflict
	case errors.Is(err, services.ErrCardDeclined):
		return http.StatusPaymentRequired
	default:
		return http.StatusBadGateway
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}
