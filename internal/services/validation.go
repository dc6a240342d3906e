package services

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sbilibin2017/gw-peakbet-deposit/internal/formatters"
	"github.com/sbilibin2017/gw-peakbet-deposit/internal/models"
)

const (
	cardNumberLength = 16
	cpfLength        = 11
	minHolderName    = 3
	minCVV           = 3
)

// validateCardUser checks the CardUser step: holder name and CPF.
func validateCardUser(form models.CardForm) error {
	if utf8.RuneCountInString(strings.TrimSpace(form.HolderName)) < minHolderName {
		return ErrInvalidHolderName
	}
	if len(formatters.Digits(form.CPF)) != cpfLength {
		return ErrInvalidCPF
	}
	return nil
}

// validateCardSubmit runs every submit-time check, first failure wins:
// number, expiration format, month, expiry, cvv, holder name, cpf.
func validateCardSubmit(form models.CardForm, now time.Time) error {
	if len(strings.ReplaceAll(form.Number, " ", "")) != cardNumberLength ||
		len(formatters.Digits(form.Number)) != cardNumberLength {
		return ErrInvalidCardNumber
	}
	if err := validateExpiration(form.ExpirationDate, now); err != nil {
		return err
	}
	if len(formatters.Digits(form.CVV)) < minCVV {
		return ErrInvalidCVV
	}
	return validateCardUser(form)
}

// validateExpiration accepts MM/YY with a month in 1..12 and a two-digit year
// not earlier than the current one. Only the year is compared.
func validateExpiration(exp string, now time.Time) error {
	if len(exp) != 5 || exp[2] != '/' {
		return ErrInvalidExpiration
	}

	month, err := strconv.Atoi(exp[:2])
	if err != nil || month < 1 || month > 12 {
		return ErrInvalidExpirationMonth
	}

	year, err := strconv.Atoi(exp[3:])
	if err != nil {
		return ErrInvalidExpiration
	}
	if year < now.Year()%100 {
		return ErrCardExpired
	}
	return nil
}
