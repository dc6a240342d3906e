package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NotificationLevel classifies a user-visible message.
type NotificationLevel string

const (
	NotificationSuccess NotificationLevel = "success"
	NotificationError   NotificationLevel = "error"
	NotificationInfo    NotificationLevel = "info"
)

// Notification is a toast-style message raised by the deposit flow.
// swagger:model Notification
type Notification struct {
	ID        uuid.UUID         `json:"id"`
	Level     NotificationLevel `json:"level"`
	Message   string            `json:"message"`
	CreatedAt time.Time         `json:"createdAt"`
}

// CardFormView is the card form as shown back to the page. The CVV is never echoed.
// swagger:model CardFormView
type CardFormView struct {
	Amount         decimal.Decimal `json:"amount"`
	HolderName     string          `json:"holderName"`
	CPF            string          `json:"cpf"`
	Number         string          `json:"number"`
	ExpirationDate string          `json:"expirationDate"`
	CVVFilled      bool            `json:"cvvFilled"`
}

// SessionSnapshot is a read-only copy of a deposit session.
// swagger:model SessionSnapshot
type SessionSnapshot struct {
	SessionID            uuid.UUID         `json:"sessionId"`
	Step                 Step              `json:"step"`
	Method               Method            `json:"method,omitempty"`
	Amount               decimal.Decimal   `json:"amount"`
	MinAmount            decimal.Decimal   `json:"minAmount"`
	Presets              []decimal.Decimal `json:"presets,omitempty"`
	CanContinue          bool              `json:"canContinue"`
	CardLocked           bool              `json:"cardLocked"`
	Generating           bool              `json:"generating"`
	ProcessingCard       bool              `json:"processingCard"`
	AwaitingConfirmation bool              `json:"awaitingConfirmation"`
	PaymentStatus        PaymentStatus     `json:"paymentStatus,omitempty"`
	PixCharge            *PixCharge        `json:"pixCharge,omitempty"`
	QRImage              string            `json:"qrImage,omitempty"`
	QRAvailable          bool              `json:"qrAvailable"`
	Card                 CardFormView      `json:"card"`
	Notifications        []Notification    `json:"notifications"`
}
