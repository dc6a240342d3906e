package models

import "strings"

// PaymentStatus is the settlement state of a charge as reported by the gateway.
type PaymentStatus string

const (
	PaymentStatusNone      PaymentStatus = ""
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
)

// ParsePaymentStatus maps a gateway status string onto a known status.
// The second value is false for anything the engine does not recognize.
func ParsePaymentStatus(raw string) (PaymentStatus, bool) {
	switch PaymentStatus(strings.ToUpper(strings.TrimSpace(raw))) {
	case PaymentStatusPending:
		return PaymentStatusPending, true
	case PaymentStatusCompleted:
		return PaymentStatusCompleted, true
	case PaymentStatusFailed:
		return PaymentStatusFailed, true
	}
	return PaymentStatusNone, false
}

// IsTerminal returns true once no further change is expected for the charge.
func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentStatusCompleted || s == PaymentStatusFailed
}
