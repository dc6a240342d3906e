package facades

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/sbilibin2017/gw-peakbet-deposit/internal/models"
)

// The PeakBET API answers either with the bare object or with {success, data: object}.
// Everything below resolves both shapes into the canonical models.

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

type pixChargeBody struct {
	QRCode     string `json:"qr_code"`
	ExternalID string `json:"external_id"`
}

type pixStatusBody struct {
	Status string `json:"status"`
}

type cardResultBody struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
}

type profileBody struct {
	Balance *float64 `json:"balance"`
}

type errorBody struct {
	Message string          `json:"message"`
	Error   json.RawMessage `json:"error"`
}

// unwrapData returns the payload of a {success: true, data: {...}} reply.
func unwrapData(body []byte) (json.RawMessage, bool) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, false
	}
	data := bytes.TrimSpace(env.Data)
	if !env.Success || len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, false
	}
	return data, true
}

func decodePixCharge(body []byte) (*models.PixCharge, error) {
	if charge, ok := parsePixCharge(body); ok {
		return charge, nil
	}
	if data, ok := unwrapData(body); ok {
		if charge, ok := parsePixCharge(data); ok {
			return charge, nil
		}
	}
	return nil, ErrUnrecognizedResponse
}

func parsePixCharge(raw []byte) (*models.PixCharge, bool) {
	var b pixChargeBody
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, false
	}
	if b.QRCode == "" || b.ExternalID == "" {
		return nil, false
	}
	return &models.PixCharge{
		ExternalID: b.ExternalID,
		QRText:     b.QRCode,
		Raw:        append([]byte(nil), raw...),
	}, true
}

func decodePixStatus(body []byte) (models.PaymentStatus, error) {
	raw, ok := parseStatus(body)
	if !ok {
		data, wrapped := unwrapData(body)
		if !wrapped {
			return models.PaymentStatusNone, ErrUnrecognizedResponse
		}
		if raw, ok = parseStatus(data); !ok {
			return models.PaymentStatusNone, ErrUnrecognizedResponse
		}
	}

	status, known := models.ParsePaymentStatus(raw)
	if !known {
		return models.PaymentStatusNone, ErrUnrecognizedResponse
	}
	return status, nil
}

func parseStatus(raw []byte) (string, bool) {
	var b pixStatusBody
	if err := json.Unmarshal(raw, &b); err != nil || b.Status == "" {
		return "", false
	}
	return b.Status, true
}

func decodeCardResult(body []byte) (*models.CardChargeResult, error) {
	var b cardResultBody
	if err := json.Unmarshal(body, &b); err != nil {
		return nil, ErrUnrecognizedResponse
	}

	status, _ := models.ParsePaymentStatus(b.Status)
	if b.Success || b.TransactionID != "" || status == models.PaymentStatusCompleted {
		return &models.CardChargeResult{Approved: true, TransactionID: b.TransactionID}, nil
	}
	return &models.CardChargeResult{Approved: false, Message: extractMessage(body)}, nil
}

func decodeProfile(body []byte) (*models.Profile, error) {
	raw := body
	if data, ok := unwrapData(body); ok {
		raw = data
	}

	var b profileBody
	if err := json.Unmarshal(raw, &b); err != nil || b.Balance == nil {
		return nil, ErrUnrecognizedResponse
	}
	return &models.Profile{Balance: *b.Balance}, nil
}

// extractMessage picks message, then error.message, then a plain string error.
func extractMessage(body []byte) string {
	var b errorBody
	if err := json.Unmarshal(body, &b); err != nil {
		return ""
	}
	if msg := strings.TrimSpace(b.Message); msg != "" {
		return msg
	}
	if len(b.Error) == 0 {
		return ""
	}

	var nested struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(b.Error, &nested); err == nil {
		return strings.TrimSpace(nested.Message)
	}
	var plain string
	if err := json.Unmarshal(b.Error, &plain); err == nil {
		return strings.TrimSpace(plain)
	}
	return ""
}
