package models

import "fmt"

// Step is one screen of the deposit wizard. Exactly one step is active per session.
type Step uint8

const (
	StepSelectMethod Step = iota
	StepPixAmount
	StepPixQRCode
	StepCardAmount
	StepCardUser
	StepCardDetails
)

var stepNames = map[Step]string{
	StepSelectMethod: "SELECT_METHOD",
	StepPixAmount:    "PIX_AMOUNT",
	StepPixQRCode:    "PIX_QRCODE",
	StepCardAmount:   "CARD_AMOUNT",
	StepCardUser:     "CARD_USER",
	StepCardDetails:  "CARD_DETAILS",
}

// String returns the wire name of the step.
func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return fmt.Sprintf("STEP(%d)", uint8(s))
}

// IsValid reports whether s is one of the declared steps.
func (s Step) IsValid() bool {
	_, ok := stepNames[s]
	return ok
}

// MarshalText implements encoding.TextMarshaler.
func (s Step) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("unknown step %d", uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Step) UnmarshalText(text []byte) error {
	step, err := ParseStep(string(text))
	if err != nil {
		return err
	}
	*s = step
	return nil
}

// ParseStep resolves a wire name such as "PIX_QRCODE".
func ParseStep(name string) (Step, error) {
	for step, n := range stepNames {
		if n == name {
			return step, nil
		}
	}
	return StepSelectMethod, fmt.Errorf("unknown step %q", name)
}
