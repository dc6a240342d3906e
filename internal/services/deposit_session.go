package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/looplab/fsm"
	"github.com/sbilibin2017/gw-peakbet-deposit/internal/facades"
	"github.com/sbilibin2017/gw-peakbet-deposit/internal/formatters"
	"github.com/sbilibin2017/gw-peakbet-deposit/internal/jwt"
	"github.com/sbilibin2017/gw-peakbet-deposit/internal/logger"
	"github.com/sbilibin2017/gw-peakbet-deposit/internal/metrics"
	"github.com/sbilibin2017/gw-peakbet-deposit/internal/models"
	"github.com/shopspring/decimal"
)

const maxNotifications = 20

const (
	msgPixGenerateFailed = "Erro ao gerar PIX"
	msgPixBadResponse    = "Formato de resposta inválido"
	msgPixCompleted      = "Pagamento confirmado! Seu saldo foi atualizado."
	msgPixFailed         = "Pagamento falhou. Por favor, tente novamente."
	msgCardFailed        = "Erro ao processar cartão"
	msgCardDeclined      = "Falha ao processar pagamento"
	msgCardApproved      = "Depósito realizado com sucesso!"
	msgAmountBelowMin    = "O valor mínimo para depósito é R$ %s"
)

// PaymentGateway issues charges and status lookups against the PeakBET API.
type PaymentGateway interface {
	GeneratePix(ctx context.Context, req models.PixChargeRequest) (*models.PixCharge, error)        // Creates a PIX charge
	GetPixStatus(ctx context.Context, externalID string) (models.PaymentStatus, error)              // Looks up a PIX charge
	ChargeCard(ctx context.Context, req models.CardChargeRequest) (*models.CardChargeResult, error) // Charges a credit card
}

// QREncoder renders a PIX payment string as an image data URI.
type QREncoder interface {
	Encode(text string) (string, error)
}

// SessionTimings are the delays of the deposit flow.
type SessionTimings struct {
	PollInterval   time.Duration // between two PIX status checks
	PixResetDelay  time.Duration // COMPLETED shown before the session resets
	CardResetDelay time.Duration // approved card shown before the session resets
}

// DefaultSessionTimings returns 5s polling, 3s PIX and 2s card reset delays.
func DefaultSessionTimings() SessionTimings {
	return SessionTimings{
		PollInterval:   5 * time.Second,
		PixResetDelay:  3 * time.Second,
		CardResetDelay: 2 * time.Second,
	}
}

// SessionHooks connect a session to its owner. They are never called with the session lock held.
type SessionHooks struct {
	OnDepositSuccess func(ctx context.Context)                                // once per completed deposit, before the reset
	OnAttempt        func(ctx context.Context, attempt models.DepositAttempt) // every created charge and every status change
}

// SessionOpt configures a DepositSession.
type SessionOpt func(*DepositSession)

// WithTimings overrides the default delays.
func WithTimings(t SessionTimings) SessionOpt {
	return func(s *DepositSession) {
		s.timings = t
	}
}

// WithHooks sets the owner callbacks.
func WithHooks(h SessionHooks) SessionOpt {
	return func(s *DepositSession) {
		s.hooks = h
	}
}

// WithClock replaces time.Now, used for the card expiry check.
func WithClock(now func() time.Time) SessionOpt {
	return func(s *DepositSession) {
		s.now = now
	}
}

// WithBalance sets the balance known when the session opens.
func WithBalance(balance float64) SessionOpt {
	return func(s *DepositSession) {
		s.balance = balance
	}
}

type pollTask struct {
	externalID string
	cancel     context.CancelFunc
	done       chan struct{}
}

// DepositSession is the state machine of one deposit attempt: method and amount selection,
// PIX charge with status polling, or the three card steps.
//
// All methods are safe for concurrent use. Network calls are made without the lock held;
// their results are dropped when the session was reset or closed in the meantime.
type DepositSession struct {
	id      uuid.UUID
	userID  uuid.UUID
	gateway PaymentGateway
	qr      QREncoder
	timings SessionTimings
	hooks   SessionHooks
	now     func() time.Time

	mu             sync.Mutex
	token          string
	closed         bool
	epoch          uint64
	balance        float64
	steps          *fsm.FSM
	method         models.Method
	pixAmount      decimal.Decimal
	card           models.CardForm
	pixCharge      *models.PixCharge
	qrImage        string
	paymentStatus  models.PaymentStatus
	generating     bool
	processingCard bool
	attempt        *models.DepositAttempt
	poll           *pollTask
	resetTimer     *time.Timer
	notifications  []models.Notification
	lastActive     time.Time
}

// NewDepositSession opens a fresh session on SelectMethod with default amounts.
func NewDepositSession(userID uuid.UUID, gateway PaymentGateway, qr QREncoder, opts ...SessionOpt) *DepositSession {
	s := &DepositSession{
		id:      uuid.New(),
		userID:  userID,
		gateway: gateway,
		qr:      qr,
		timings: DefaultSessionTimings(),
		now:     time.Now,
		steps:   newStepMachine(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.clearLocked()
	s.lastActive = s.now()
	return s
}

// ID returns the session id.
func (s *DepositSession) ID() uuid.UUID {
	return s.id
}

// UserID returns the depositing user.
func (s *DepositSession) UserID() uuid.UUID {
	return s.userID
}

// SetBalance updates the balance that gates card deposits.
func (s *DepositSession) SetBalance(balance float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.balance = balance
}

// LastActive returns the time of the last user operation.
func (s *DepositSession) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// SelectMethod moves from SelectMethod to the amount step of m.
// CARD with a zero balance leaves the session untouched and returns ErrCardLocked.
func (s *DepositSession) SelectMethod(ctx context.Context, m models.Method) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.enterLocked(ctx); err != nil {
		return err
	}

	var event string
	switch m {
	case models.MethodPix:
		event = eventSelectPix
	case models.MethodCard:
		event = eventSelectCard
	default:
		return fmt.Errorf("%w: unknown method %q", ErrIllegalTransition, string(m))
	}
	if !s.steps.Can(event) {
		return fmt.Errorf("%w: select method on %s", ErrIllegalTransition, s.stepLocked())
	}
	if m == models.MethodCard && s.balance == 0 {
		s.rejectLocked(ErrCardLocked)
		return ErrCardLocked
	}

	if err := s.fireLocked(event); err != nil {
		return err
	}
	s.method = m
	return nil
}

// SetAmount sets the amount of the active amount step.
func (s *DepositSession) SetAmount(ctx context.Context, amount decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.enterLocked(ctx); err != nil {
		return err
	}

	amount = amount.Round(2)
	switch step := s.stepLocked(); step {
	case models.StepPixAmount:
		s.pixAmount = amount
	case models.StepCardAmount:
		s.card.Amount = amount
	default:
		return fmt.Errorf("%w: set amount on %s", ErrIllegalTransition, step)
	}
	return nil
}

// Back navigates to the previous step. Entered data is kept; leaving the QR code
// abandons the charge, stops polling and cancels a pending reset.
func (s *DepositSession) Back(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.enterLocked(ctx); err != nil {
		return err
	}

	from := s.stepLocked()
	if err := s.fireLocked(eventBack); err != nil {
		return err
	}

	if from == models.StepPixQRCode {
		s.epoch++
		s.stopPollLocked()
		s.stopResetLocked()
		s.pixCharge = nil
		s.qrImage = ""
		s.paymentStatus = models.PaymentStatusNone
		s.attempt = nil
	}
	if s.stepLocked() == models.StepSelectMethod {
		s.method = models.MethodNone
	}
	return nil
}

// Continue advances the card flow: CardAmount to CardUser and CardUser to CardDetails.
func (s *DepositSession) Continue(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.enterLocked(ctx); err != nil {
		return err
	}

	switch s.stepLocked() {
	case models.StepCardAmount:
		if !models.MethodCard.MeetsMinimum(s.card.Amount) {
			return ErrAmountBelowMinimum
		}
	case models.StepCardUser:
		if err := validateCardUser(s.card); err != nil {
			s.rejectLocked(err)
			return err
		}
	}
	return s.fireLocked(eventContinue)
}

// UpdateCard applies the live input masks and stores the given card fields.
func (s *DepositSession) UpdateCard(ctx context.Context, upd models.CardFormUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.enterLocked(ctx); err != nil {
		return err
	}
	if s.method != models.MethodCard {
		return fmt.Errorf("%w: card form on %s", ErrIllegalTransition, s.stepLocked())
	}

	if upd.HolderName != nil {
		s.card.HolderName = *upd.HolderName
	}
	if upd.CPF != nil {
		s.card.CPF = formatters.FormatCPF(*upd.CPF)
	}
	if upd.Number != nil {
		s.card.Number = formatters.FormatCardNumber(*upd.Number)
	}
	if upd.ExpirationDate != nil {
		s.card.ExpirationDate = formatters.FormatExpirationDate(*upd.ExpirationDate)
	}
	if upd.CVV != nil {
		s.card.CVV = formatters.FormatCVV(*upd.CVV)
	}
	return nil
}

// Reset brings the session back to SelectMethod defaults and cancels polling.
func (s *DepositSession) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.enterLocked(ctx); err != nil {
		return err
	}
	s.clearLocked()
	return nil
}

// GeneratePix creates the PIX charge for the current amount, moves to PixQRCode and
// starts polling. A call while a generation is in flight is a no-op.
func (s *DepositSession) GeneratePix(ctx context.Context) error {
	s.mu.Lock()
	if err := s.enterLocked(ctx); err != nil {
		s.mu.Unlock()
		return err
	}
	if !s.steps.Can(eventShowQR) {
		s.mu.Unlock()
		return fmt.Errorf("%w: generate pix on %s", ErrIllegalTransition, s.stepLocked())
	}
	if s.generating {
		s.mu.Unlock()
		return nil
	}
	if !models.MethodPix.MeetsMinimum(s.pixAmount) {
		s.pushLocked(models.NotificationError, fmt.Sprintf(msgAmountBelowMin, models.MethodPix.MinAmount().StringFixed(2)))
		s.mu.Unlock()
		return ErrAmountBelowMinimum
	}
	s.generating = true
	epoch := s.epoch
	amount := s.pixAmount
	s.mu.Unlock()

	charge, err := s.gateway.GeneratePix(ctx, models.PixChargeRequest{Amount: amount.InexactFloat64()})

	var qrImage string
	if err == nil {
		if qrImage, err = s.renderQR(charge.QRText); err != nil {
			logger.Log.Errorw("failed to render pix qr code", "session_id", s.id, "external_id", charge.ExternalID, "error", err)
			qrImage, err = "", nil
		}
	}

	s.mu.Lock()
	if s.epoch == epoch {
		s.generating = false
	}
	stale := s.closed || s.epoch != epoch || !s.steps.Can(eventShowQR)

	if err != nil {
		metrics.PixCharges.WithLabelValues("failed").Inc()
		if !stale {
			fallback := msgPixGenerateFailed
			if errors.Is(err, facades.ErrUnrecognizedResponse) {
				fallback = msgPixBadResponse
			}
			s.pushLocked(models.NotificationError, facades.UserMessage(err, fallback))
		}
		s.mu.Unlock()
		return fmt.Errorf("generate pix: %w", err)
	}

	metrics.PixCharges.WithLabelValues("created").Inc()
	if stale {
		s.mu.Unlock()
		logger.Log.Warnw("pix charge discarded, session changed while generating", "session_id", s.id, "external_id", charge.ExternalID)
		return fmt.Errorf("%w: session changed while the charge was created", ErrIllegalTransition)
	}

	if err := s.fireLocked(eventShowQR); err != nil {
		s.mu.Unlock()
		return err
	}
	s.pixCharge = charge
	s.qrImage = qrImage
	s.paymentStatus = models.PaymentStatusNone
	attempt := s.beginAttemptLocked(models.MethodPix, amount, charge.ExternalID)
	s.startPollLocked(charge.ExternalID)
	hookCtx := s.hookContextLocked()
	s.mu.Unlock()

	logger.Log.Infow("pix charge created", "session_id", s.id, "external_id", charge.ExternalID, "amount", amount.String())
	s.emitAttempt(hookCtx, attempt)
	return nil
}

// SubmitCard validates the card form and charges it once. A call while a charge is
// in flight is a no-op.
func (s *DepositSession) SubmitCard(ctx context.Context) error {
	s.mu.Lock()
	if err := s.enterLocked(ctx); err != nil {
		s.mu.Unlock()
		return err
	}
	if step := s.stepLocked(); step != models.StepCardDetails {
		s.mu.Unlock()
		return fmt.Errorf("%w: submit card on %s", ErrIllegalTransition, step)
	}
	if s.processingCard {
		s.mu.Unlock()
		return nil
	}
	if err := validateCardSubmit(s.card, s.now()); err != nil {
		s.rejectLocked(err)
		s.mu.Unlock()
		metrics.CardCharges.WithLabelValues("rejected").Inc()
		return err
	}
	s.processingCard = true
	epoch := s.epoch
	form := s.card
	s.mu.Unlock()

	res, err := s.gateway.ChargeCard(ctx, models.CardChargeRequest{
		CardNumber:     formatters.Digits(form.Number),
		HolderName:     strings.TrimSpace(form.HolderName),
		ExpirationDate: form.ExpirationDate,
		CVV:            form.CVV,
		CPF:            formatters.Digits(form.CPF),
		Amount:         form.Amount.InexactFloat64(),
	})

	s.mu.Lock()
	if s.epoch == epoch {
		s.processingCard = false
	}
	stale := s.closed || s.epoch != epoch
	attempt := s.newAttemptLocked(models.MethodCard, form.Amount, "")
	hookCtx := s.hookContextLocked()

	switch {
	case err != nil:
		msg := facades.UserMessage(err, msgCardFailed)
		if !stale {
			s.pushLocked(models.NotificationError, msg)
		}
		s.mu.Unlock()

		metrics.CardCharges.WithLabelValues("error").Inc()
		attempt.Status, attempt.FailureReason = models.PaymentStatusFailed, msg
		s.emitAttempt(hookCtx, attempt)
		return fmt.Errorf("charge card: %w", err)

	case !res.Approved:
		msg := res.Message
		if msg == "" {
			msg = msgCardDeclined
		}
		if !stale {
			s.pushLocked(models.NotificationError, msg)
		}
		s.mu.Unlock()

		metrics.CardCharges.WithLabelValues("declined").Inc()
		attempt.Status, attempt.FailureReason = models.PaymentStatusFailed, msg
		s.emitAttempt(hookCtx, attempt)
		return fmt.Errorf("%w: %s", ErrCardDeclined, msg)
	}

	if !stale {
		s.pushLocked(models.NotificationSuccess, msgCardApproved)
	}
	s.mu.Unlock()

	logger.Log.Infow("card deposit approved", "session_id", s.id, "transaction_id", res.TransactionID, "amount", form.Amount.String())
	metrics.CardCharges.WithLabelValues("approved").Inc()
	attempt.ExternalID, attempt.Status = res.TransactionID, models.PaymentStatusCompleted
	s.emitAttempt(hookCtx, attempt)
	s.depositSucceeded(hookCtx)
	if !stale {
		s.scheduleReset(epoch, s.timings.CardResetDelay)
	}
	return nil
}

// Close tears the session down. It returns once the poll loop has exited, without
// waiting for hooks of a settled charge; a pending reset timer is stopped and will not fire.
func (s *DepositSession) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.epoch++
	task := s.poll
	s.stopPollLocked()
	s.stopResetLocked()
	s.mu.Unlock()

	if task != nil {
		<-task.done
	}
	logger.Log.Infow("deposit session closed", "session_id", s.id, "user_id", s.userID)
}

// Snapshot returns a copy of the session state.
func (s *DepositSession) Snapshot() models.SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	amount := models.DefaultDepositAmount
	switch s.method {
	case models.MethodPix:
		amount = s.pixAmount
	case models.MethodCard:
		amount = s.card.Amount
	}

	var canContinue bool
	step := s.stepLocked()
	switch step {
	case models.StepPixAmount:
		canContinue = !s.generating && s.method.MeetsMinimum(amount)
	case models.StepCardAmount:
		canContinue = s.method.MeetsMinimum(amount)
	case models.StepCardUser:
		canContinue = validateCardUser(s.card) == nil
	case models.StepCardDetails:
		canContinue = !s.processingCard
	}

	snap := models.SessionSnapshot{
		SessionID:            s.id,
		Step:                 step,
		Method:               s.method,
		Amount:               amount,
		MinAmount:            s.method.MinAmount(),
		Presets:              s.method.Presets(),
		CanContinue:          canContinue,
		CardLocked:           s.balance == 0,
		Generating:           s.generating,
		ProcessingCard:       s.processingCard,
		AwaitingConfirmation: s.poll != nil,
		PaymentStatus:        s.paymentStatus,
		QRImage:              s.qrImage,
		QRAvailable:          s.qrImage != "",
		Card: models.CardFormView{
			Amount:         s.card.Amount,
			HolderName:     s.card.HolderName,
			CPF:            s.card.CPF,
			Number:         s.card.Number,
			ExpirationDate: s.card.ExpirationDate,
			CVVFilled:      s.card.CVV != "",
		},
		Notifications: append([]models.Notification(nil), s.notifications...),
	}
	if s.pixCharge != nil {
		charge := *s.pixCharge
		snap.PixCharge = &charge
	}
	return snap
}

func (s *DepositSession) enterLocked(ctx context.Context) error {
	if s.closed {
		return ErrSessionClosed
	}
	if token := jwt.TokenFromContext(ctx); token != "" {
		s.token = token
	}
	s.lastActive = s.now()
	return nil
}

// clearLocked resets every field of the flow. Notifications and balance survive.
func (s *DepositSession) clearLocked() {
	s.epoch++
	s.stopPollLocked()
	s.stopResetLocked()

	if err := s.fireLocked(eventReset); err != nil {
		logger.Log.Errorw("failed to reset deposit step", "session_id", s.id, "error", err)
	}
	s.method = models.MethodNone
	s.pixAmount = models.DefaultDepositAmount
	s.card = models.NewCardForm()
	s.pixCharge = nil
	s.qrImage = ""
	s.paymentStatus = models.PaymentStatusNone
	s.generating = false
	s.processingCard = false
	s.attempt = nil
}

func (s *DepositSession) renderQR(text string) (string, error) {
	if s.qr == nil {
		return "", errors.New("qr encoder not configured")
	}
	return s.qr.Encode(text)
}

func (s *DepositSession) rejectLocked(err error) {
	if msg, ok := validationMessages[err]; ok {
		s.pushLocked(models.NotificationError, msg)
	}
}

func (s *DepositSession) pushLocked(level models.NotificationLevel, msg string) {
	s.notifications = append(s.notifications, models.Notification{
		ID:        uuid.New(),
		Level:     level,
		Message:   msg,
		CreatedAt: s.now(),
	})
	if n := len(s.notifications); n > maxNotifications {
		s.notifications = append([]models.Notification(nil), s.notifications[n-maxNotifications:]...)
	}
}

// hookContextLocked detaches hooks from the request that triggered them while
// keeping the caller's bearer token for upstream calls.
func (s *DepositSession) hookContextLocked() context.Context {
	return jwt.WithToken(context.Background(), s.token)
}

func (s *DepositSession) newAttemptLocked(m models.Method, amount decimal.Decimal, externalID string) models.DepositAttempt {
	now := s.now()
	return models.DepositAttempt{
		AttemptID:  uuid.New(),
		SessionID:  s.id,
		UserID:     s.userID,
		Method:     m,
		Amount:     amount.InexactFloat64(),
		ExternalID: externalID,
		Status:     models.PaymentStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (s *DepositSession) beginAttemptLocked(m models.Method, amount decimal.Decimal, externalID string) models.DepositAttempt {
	attempt := s.newAttemptLocked(m, amount, externalID)
	s.attempt = &attempt
	return attempt
}

func (s *DepositSession) finishAttemptLocked(status models.PaymentStatus, reason string) (models.DepositAttempt, bool) {
	if s.attempt == nil {
		return models.DepositAttempt{}, false
	}
	attempt := *s.attempt
	attempt.Status = status
	attempt.FailureReason = reason
	attempt.UpdatedAt = s.now()
	s.attempt = nil
	return attempt, true
}

func (s *DepositSession) emitAttempt(ctx context.Context, attempt models.DepositAttempt) {
	if s.hooks.OnAttempt != nil {
		s.hooks.OnAttempt(ctx, attempt)
	}
}

func (s *DepositSession) depositSucceeded(ctx context.Context) {
	if s.hooks.OnDepositSuccess != nil {
		s.hooks.OnDepositSuccess(ctx)
	}
}

// scheduleReset arms the reset after an outcome, unless the flow the outcome
// belongs to (epoch) was left or the session closed while the hooks ran.
func (s *DepositSession) scheduleReset(epoch uint64, delay time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.epoch != epoch {
		return
	}
	s.scheduleResetLocked(delay)
}

func (s *DepositSession) scheduleResetLocked(delay time.Duration) {
	s.stopResetLocked()
	epoch := s.epoch
	s.resetTimer = time.AfterFunc(delay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed || s.epoch != epoch {
			return
		}
		s.clearLocked()
		logger.Log.Infow("deposit session reset after outcome", "session_id", s.id)
	})
}

func (s *DepositSession) stopResetLocked() {
	if s.resetTimer != nil {
		s.resetTimer.Stop()
		s.resetTimer = nil
	}
}
