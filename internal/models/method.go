package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Method is the payment rail chosen for a deposit.
type Method string

const (
	MethodNone Method = ""
	MethodPix  Method = "PIX"
	MethodCard Method = "CARD"
)

// DefaultDepositAmount is the amount preselected on every fresh session, for both methods.
var DefaultDepositAmount = decimal.NewFromInt(50)

var (
	pixMinAmount  = decimal.NewFromInt(25)
	cardMinAmount = decimal.NewFromInt(10)

	pixPresets  = []int64{25, 50, 100, 200, 500, 1000}
	cardPresets = []int64{20, 50, 100, 200, 500, 1000}
)

// ParseMethod accepts the method name case-insensitively.
func ParseMethod(raw string) (Method, error) {
	switch Method(strings.ToUpper(strings.TrimSpace(raw))) {
	case MethodPix:
		return MethodPix, nil
	case MethodCard:
		return MethodCard, nil
	}
	return MethodNone, fmt.Errorf("unknown deposit method %q", raw)
}

// MinAmount is the smallest amount accepted before leaving the amount step.
func (m Method) MinAmount() decimal.Decimal {
	switch m {
	case MethodPix:
		return pixMinAmount
	case MethodCard:
		return cardMinAmount
	}
	return decimal.Zero
}

// Presets returns the curated amounts offered on the amount step.
func (m Method) Presets() []decimal.Decimal {
	var src []int64
	switch m {
	case MethodPix:
		src = pixPresets
	case MethodCard:
		src = cardPresets
	default:
		return nil
	}

	out := make([]decimal.Decimal, len(src))
	for i, v := range src {
		out[i] = decimal.NewFromInt(v)
	}
	return out
}

// MeetsMinimum reports whether amount can leave the amount step of m.
func (m Method) MeetsMinimum(amount decimal.Decimal) bool {
	if m == MethodNone {
		return false
	}
	return amount.GreaterThanOrEqual(m.MinAmount())
}
