package models

import "github.com/shopspring/decimal"

// CardForm holds the free-text card fields as the user typed them, after live masking.
type CardForm struct {
	Amount         decimal.Decimal
	HolderName     string
	CPF            string
	Number         string
	ExpirationDate string
	CVV            string
}

// NewCardForm returns the form of a fresh session.
func NewCardForm() CardForm {
	return CardForm{Amount: DefaultDepositAmount}
}

// CardFormUpdate carries the fields sent by the page; nil fields are left untouched.
// swagger:model CardFormUpdate
type CardFormUpdate struct {
	HolderName     *string `json:"holderName,omitempty"`
	CPF            *string `json:"cpf,omitempty"`
	Number         *string `json:"number,omitempty"`
	ExpirationDate *string `json:"expirationDate,omitempty"`
	CVV            *string `json:"cvv,omitempty"`
}

// CardChargeRequest is the body of POST /api/credit-card/deposit.
type CardChargeRequest struct {
	CardNumber     string  `json:"cardNumber"`
	HolderName     string  `json:"holderName"`
	ExpirationDate string  `json:"expirationDate"`
	CVV            string  `json:"cvv"`
	CPF            string  `json:"cpf"`
	Amount         float64 `json:"amount"`
}

// CardChargeResult is the canonical outcome of a card charge.
type CardChargeResult struct {
	Approved      bool
	TransactionID string
	Message       string
}
