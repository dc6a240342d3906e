package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-peakbet-deposit/internal/jwt"
	"github.com/sbilibin2017/gw-peakbet-deposit/internal/logger"
	"github.com/sbilibin2017/gw-peakbet-deposit/internal/models"
)

const (
	pixGeneratePath   = "/api/pix/generate"
	pixStatusPath     = "/api/pix/status/%s"
	cardDepositPath   = "/api/credit-card/deposit"
	profilePath       = "/api/auth/profile"
	maxGatewayBody    = 1 << 20
	defaultGatewayTTL = 15 * time.Second
)

// ErrUnrecognizedResponse is returned when a reply matches none of the known shapes.
var ErrUnrecognizedResponse = errors.New("unrecognized gateway response")

// GatewayError is a non-2xx reply from the PeakBET API.
type GatewayError struct {
	StatusCode int
	Message    string // user-facing message extracted from the payload, may be empty
}

func (e *GatewayError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("gateway http %d", e.StatusCode)
	}
	return fmt.Sprintf("gateway http %d: %s", e.StatusCode, e.Message)
}

// PaymentGatewayFacade calls the PIX, credit card and profile endpoints of the PeakBET API.
// The caller's bearer token is taken from the request context (see jwt.WithToken).
type PaymentGatewayFacade struct {
	baseURL string
	client  *http.Client
}

// NewPaymentGatewayFacade creates a facade for the API rooted at baseURL.
func NewPaymentGatewayFacade(baseURL string, timeout time.Duration) *PaymentGatewayFacade {
	if timeout <= 0 {
		timeout = defaultGatewayTTL
	}
	return &PaymentGatewayFacade{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// GeneratePix creates a PIX charge.
func (f *PaymentGatewayFacade) GeneratePix(ctx context.Context, req models.PixChargeRequest) (*models.PixCharge, error) {
	body, err := f.doJSON(ctx, http.MethodPost, pixGeneratePath, req)
	if err != nil {
		logger.Log.Errorw("failed to generate pix charge", "amount", req.Amount, "error", err)
		return nil, err
	}

	charge, err := decodePixCharge(body)
	if err != nil {
		logger.Log.Errorw("unexpected pix charge response", "body", string(body), "error", err)
		return nil, err
	}
	return charge, nil
}

// GetPixStatus looks up the settlement status of a PIX charge.
func (f *PaymentGatewayFacade) GetPixStatus(ctx context.Context, externalID string) (models.PaymentStatus, error) {
	body, err := f.doJSON(ctx, http.MethodGet, fmt.Sprintf(pixStatusPath, url.PathEscape(externalID)), nil)
	if err != nil {
		return models.PaymentStatusNone, err
	}
	return decodePixStatus(body)
}

// ChargeCard submits a credit card deposit. A declined charge is not an error:
// it comes back with Approved false and the gateway message.
func (f *PaymentGatewayFacade) ChargeCard(ctx context.Context, req models.CardChargeRequest) (*models.CardChargeResult, error) {
	body, err := f.doJSON(ctx, http.MethodPost, cardDepositPath, req)
	if err != nil {
		logger.Log.Errorw("failed to charge card", "amount", req.Amount, "error", err)
		return nil, err
	}
	return decodeCardResult(body)
}

// GetProfile reads the caller's profile.
func (f *PaymentGatewayFacade) GetProfile(ctx context.Context) (*models.Profile, error) {
	body, err := f.doJSON(ctx, http.MethodGet, profilePath, nil)
	if err != nil {
		logger.Log.Errorw("failed to fetch profile", "error", err)
		return nil, err
	}
	return decodeProfile(body)
}

func (f *PaymentGatewayFacade) doJSON(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, f.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := jwt.TokenFromContext(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, maxGatewayBody))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, &GatewayError{StatusCode: res.StatusCode, Message: extractMessage(body)}
	}
	return body, nil
}

// UserMessage returns the message to show for err, or fallback when the error carries none.
func UserMessage(err error, fallback string) string {
	var gwErr *GatewayError
	if errors.As(err, &gwErr) && gwErr.Message != "" {
		return gwErr.Message
	}
	return fallback
}
