package models

import (
	"time"

	"github.com/google/uuid"
)

// DepositAttempt is one charge orchestrated by a session, as kept in the journal.
type DepositAttempt struct {
	AttemptID     uuid.UUID     `json:"attempt_id" db:"attempt_id"`         // Primary key
	SessionID     uuid.UUID     `json:"session_id" db:"session_id"`         // Session that created the charge
	UserID        uuid.UUID     `json:"user_id" db:"user_id"`               // Depositing user
	Method        Method        `json:"method" db:"method"`                 // PIX or CARD
	Amount        float64       `json:"amount" db:"amount"`                 // Charged amount
	ExternalID    string        `json:"external_id" db:"external_id"`       // Gateway id (PIX external id or card transaction id)
	Status        PaymentStatus `json:"status" db:"status"`                 // Last known status
	FailureReason string        `json:"failure_reason" db:"failure_reason"` // User message of a failed charge
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at" db:"updated_at"`
}

// DepositOutcome is the event published for every journaled status change of an attempt.
type DepositOutcome struct {
	AttemptID  string  `json:"attempt_id"`
	UserID     string  `json:"user_id"`
	Method     string  `json:"method"`
	Amount     float64 `json:"amount"`
	ExternalID string  `json:"external_id"`
	Status     string  `json:"status"`
	Timestamp  int64   `json:"timestamp"`
}

// NewDepositOutcome builds the event for an attempt.
func NewDepositOutcome(a DepositAttempt, at time.Time) DepositOutcome {
	return DepositOutcome{
		AttemptID:  a.AttemptID.String(),
		UserID:     a.UserID.String(),
		Method:     string(a.Method),
		Amount:     a.Amount,
		ExternalID: a.ExternalID,
		Status:     string(a.Status),
		Timestamp:  at.Unix(),
	}
}
