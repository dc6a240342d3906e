package services

import "errors"

var (
	// ErrSessionNotFound is returned when the user has no open deposit session.
	ErrSessionNotFound = errors.New("deposit session not found")
	// ErrSessionClosed is returned by any operation on a session that was torn down.
	ErrSessionClosed = errors.New("deposit session closed")
	// ErrIllegalTransition is returned when the operation is not available on the active step.
	ErrIllegalTransition = errors.New("operation not allowed on the current step")
	// ErrCardLocked is returned when CARD is selected while the balance is zero.
	ErrCardLocked = errors.New("card deposits require a previous pix deposit")
	// ErrAmountBelowMinimum is returned when the amount is below the method minimum.
	ErrAmountBelowMinimum = errors.New("amount below method minimum")

	// ErrInvalidHolderName is returned when the trimmed holder name is shorter than 3 characters.
	ErrInvalidHolderName = errors.New("invalid holder name")
	// ErrInvalidCPF is returned when the CPF does not hold exactly 11 digits.
	ErrInvalidCPF = errors.New("invalid cpf")
	// ErrInvalidCardNumber is returned when the card number does not hold exactly 16 digits.
	ErrInvalidCardNumber = errors.New("invalid card number")
	// ErrInvalidExpiration is returned when the expiration date is not a complete MM/YY.
	ErrInvalidExpiration = errors.New("invalid expiration date")
	// ErrInvalidExpirationMonth is returned when the expiration month is outside 01..12.
	ErrInvalidExpirationMonth = errors.New("invalid expiration month")
	// ErrCardExpired is returned when the two-digit expiration year lies before the current one.
	ErrCardExpired = errors.New("card expired")
	// ErrInvalidCVV is returned when the CVV holds fewer than 3 digits.
	ErrInvalidCVV = errors.New("invalid cvv")

	// ErrCardDeclined is returned when the gateway answered but did not approve the charge.
	ErrCardDeclined = errors.New("card charge declined")
)

// validationMessages are the notifications shown for rejected input.
var validationMessages = map[error]string{
	ErrCardLocked:             "Cartão de crédito disponível apenas após primeiro depósito via PIX",
	ErrInvalidHolderName:      "Nome do titular inválido",
	ErrInvalidCPF:             "CPF inválido",
	ErrInvalidCardNumber:      "Número do cartão inválido",
	ErrInvalidExpiration:      "Data de validade inválida",
	ErrInvalidExpirationMonth: "Mês de validade inválido",
	ErrCardExpired:            "Cartão expirado",
	ErrInvalidCVV:             "CVV inválido",
}

// IsValidationError reports whether err is rejected user input.
func IsValidationError(err error) bool {
	if errors.Is(err, ErrAmountBelowMinimum) {
		return true
	}
	for target := range validationMessages {
		if target != ErrCardLocked && errors.Is(err, target) {
			return true
		}
	}
	return false
}
