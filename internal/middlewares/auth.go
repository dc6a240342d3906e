package middlewares

//go:generate mockgen -source=auth.go -destination=auth_mock_test.go -package=middlewares

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-peakbet-deposit/internal/jwt"
	"github.com/sbilibin2017/gw-peakbet-deposit/internal/logger"
)

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	Validate(ctx context.Context, tokenString string) error
}

// AuthMiddleware rejects requests without a valid bearer token and stores the
// token in the request context for calls to the PeakBET API.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err, "uri", r.RequestURI)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			if err := tokener.Validate(ctx, tokenString); err != nil {
				logger.Log.Errorw("authorization failed", "err", err, "uri", r.RequestURI)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(jwt.WithToken(ctx, tokenString)))
		})
	}
}
