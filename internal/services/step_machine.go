package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/looplab/fsm"
	"github.com/sbilibin2017/gw-peakbet-deposit/internal/models"
)

// Step events. A step only changes by firing one of these.
const (
	eventSelectPix  = "select_pix"
	eventSelectCard = "select_card"
	eventShowQR     = "show_qr"
	eventContinue   = "continue"
	eventBack       = "back"
	eventReset      = "reset"
)

var (
	stepSelectMethod = models.StepSelectMethod.String()
	stepPixAmount    = models.StepPixAmount.String()
	stepPixQRCode    = models.StepPixQRCode.String()
	stepCardAmount   = models.StepCardAmount.String()
	stepCardUser     = models.StepCardUser.String()
	stepCardDetails  = models.StepCardDetails.String()
)

var stepEvents = fsm.Events{
	{Name: eventSelectPix, Src: []string{stepSelectMethod}, Dst: stepPixAmount},
	{Name: eventSelectCard, Src: []string{stepSelectMethod}, Dst: stepCardAmount},
	{Name: eventShowQR, Src: []string{stepPixAmount}, Dst: stepPixQRCode},

	{Name: eventContinue, Src: []string{stepCardAmount}, Dst: stepCardUser},
	{Name: eventContinue, Src: []string{stepCardUser}, Dst: stepCardDetails},

	{Name: eventBack, Src: []string{stepPixAmount, stepCardAmount}, Dst: stepSelectMethod},
	{Name: eventBack, Src: []string{stepPixQRCode}, Dst: stepPixAmount},
	{Name: eventBack, Src: []string{stepCardUser}, Dst: stepCardAmount},
	{Name: eventBack, Src: []string{stepCardDetails}, Dst: stepCardUser},

	{Name: eventReset, Src: []string{
		stepSelectMethod, stepPixAmount, stepPixQRCode, stepCardAmount, stepCardUser, stepCardDetails,
	}, Dst: stepSelectMethod},
}

// newStepMachine returns the wizard machine parked on SELECT_METHOD.
func newStepMachine() *fsm.FSM {
	return fsm.NewFSM(stepSelectMethod, stepEvents, nil)
}

// stepLocked returns the active step.
func (s *DepositSession) stepLocked() models.Step {
	// the machine only holds states declared in stepEvents
	step, _ := models.ParseStep(s.steps.Current())
	return step
}

// fireLocked moves the machine. An event that is not declared from the active step
// leaves it untouched and returns ErrIllegalTransition.
func (s *DepositSession) fireLocked(event string) error {
	from := s.steps.Current()
	err := s.steps.Event(context.Background(), event)

	var same fsm.NoTransitionError
	if err == nil || errors.As(err, &same) {
		return nil
	}
	return fmt.Errorf("%w: %s on %s", ErrIllegalTransition, event, from)
}
