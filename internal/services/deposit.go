package services

//go:generate mockgen -source=deposit.go -destination=deposit_mock_test.go -package=services

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-peakbet-deposit/internal/logger"
	"github.com/sbilibin2017/gw-peakbet-deposit/internal/metrics"
	"github.com/sbilibin2017/gw-peakbet-deposit/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
	hookTimeout         = 10 * time.Second
)

// BalanceReader provides the balance of a user.
type BalanceReader interface {
	GetBalance(ctx context.Context, userID uuid.UUID) (float64, error)     // Returns the current balance, possibly cached
	RefreshBalance(ctx context.Context, userID uuid.UUID) (float64, error) // Re-reads the balance upstream
}

// AttemptJournal persists deposit attempts.
type AttemptJournal interface {
	Save(ctx context.Context, a models.DepositAttempt) error                                      // Inserts or updates an attempt
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.DepositAttempt, error) // Returns the latest attempts of a user
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// DepositServiceOpt configures a DepositService.
type DepositServiceOpt func(*DepositService)

// WithSessionTimings sets the timings of every session opened by the service.
func WithSessionTimings(t SessionTimings) DepositServiceOpt {
	return func(s *DepositService) {
		s.timings = t
	}
}

// WithSessionTTL sets how long a session may stay idle before Sweep closes it.
func WithSessionTTL(ttl time.Duration) DepositServiceOpt {
	return func(s *DepositService) {
		s.ttl = ttl
	}
}

// DepositService owns one deposit session per user. It supplies the balance,
// refreshes it after a successful deposit and journals every attempt.
type DepositService struct {
	gateway     PaymentGateway
	qr          QREncoder
	balances    BalanceReader
	journal     AttemptJournal
	kafkaWriter KafkaWriter
	timings     SessionTimings
	ttl         time.Duration
	now         func() time.Time

	mu       sync.Mutex
	sessions map[uuid.UUID]*DepositSession
}

// NewDepositService creates a new DepositService. journal and kafkaWriter may be nil.
func NewDepositService(
	gateway PaymentGateway,
	qr QREncoder,
	balances BalanceReader,
	journal AttemptJournal,
	kafkaWriter KafkaWriter,
	opts ...DepositServiceOpt,
) *DepositService {
	s := &DepositService{
		gateway:     gateway,
		qr:          qr,
		balances:    balances,
		journal:     journal,
		kafkaWriter: kafkaWriter,
		timings:     DefaultSessionTimings(),
		ttl:         30 * time.Minute,
		now:         time.Now,
		sessions:    make(map[uuid.UUID]*DepositSession),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open starts a fresh session for the user, tearing down the previous one.
func (s *DepositService) Open(ctx context.Context, userID uuid.UUID) (models.SessionSnapshot, error) {
	balance, err := s.balances.GetBalance(ctx, userID)
	if err != nil {
		// card stays locked until the balance is known
		logger.Log.Warnw("balance unavailable, opening session with zero balance", "userID", userID, "error", err)
		balance = 0
	}

	var sess *DepositSession
	sess = NewDepositSession(userID, s.gateway, s.qr,
		WithTimings(s.timings),
		WithBalance(balance),
		WithHooks(SessionHooks{
			OnDepositSuccess: func(ctx context.Context) { s.refreshBalance(ctx, sess) },
			OnAttempt:        s.recordAttempt,
		}),
	)

	s.mu.Lock()
	prev := s.sessions[userID]
	s.sessions[userID] = sess
	s.mu.Unlock()

	if prev != nil {
		prev.Close()
	} else {
		metrics.ActiveSessions.Inc()
	}

	logger.Log.Infow("deposit session opened", "userID", userID, "session_id", sess.ID(), "balance", balance)
	return sess.Snapshot(), nil
}

// Close tears down the user's session.
func (s *DepositService) Close(ctx context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	sess, ok := s.sessions[userID]
	delete(s.sessions, userID)
	s.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	sess.Close()
	metrics.ActiveSessions.Dec()
	return nil
}

// Snapshot returns the state of the user's session.
func (s *DepositService) Snapshot(ctx context.Context, userID uuid.UUID) (models.SessionSnapshot, error) {
	sess, err := s.session(userID)
	if err != nil {
		return models.SessionSnapshot{}, err
	}
	return sess.Snapshot(), nil
}

// SelectMethod chooses PIX or CARD.
func (s *DepositService) SelectMethod(ctx context.Context, userID uuid.UUID, m models.Method) (models.SessionSnapshot, error) {
	return s.apply(userID, func(sess *DepositSession) error { return sess.SelectMethod(ctx, m) })
}

// SetAmount sets the amount of the active amount step.
func (s *DepositService) SetAmount(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (models.SessionSnapshot, error) {
	return s.apply(userID, func(sess *DepositSession) error { return sess.SetAmount(ctx, amount) })
}

// Back navigates to the previous step.
func (s *DepositService) Back(ctx context.Context, userID uuid.UUID) (models.SessionSnapshot, error) {
	return s.apply(userID, func(sess *DepositSession) error { return sess.Back(ctx) })
}

// Reset brings the session back to its defaults.
func (s *DepositService) Reset(ctx context.Context, userID uuid.UUID) (models.SessionSnapshot, error) {
	return s.apply(userID, func(sess *DepositSession) error { return sess.Reset(ctx) })
}

// Continue advances the card flow.
func (s *DepositService) Continue(ctx context.Context, userID uuid.UUID) (models.SessionSnapshot, error) {
	return s.apply(userID, func(sess *DepositSession) error { return sess.Continue(ctx) })
}

// GeneratePix creates the PIX charge and starts polling its status.
func (s *DepositService) GeneratePix(ctx context.Context, userID uuid.UUID) (models.SessionSnapshot, error) {
	return s.apply(userID, func(sess *DepositSession) error { return sess.GeneratePix(ctx) })
}

// UpdateCard stores card form fields.
func (s *DepositService) UpdateCard(ctx context.Context, userID uuid.UUID, upd models.CardFormUpdate) (models.SessionSnapshot, error) {
	return s.apply(userID, func(sess *DepositSession) error { return sess.UpdateCard(ctx, upd) })
}

// SubmitCard validates and charges the card.
func (s *DepositService) SubmitCard(ctx context.Context, userID uuid.UUID) (models.SessionSnapshot, error) {
	return s.apply(userID, func(sess *DepositSession) error { return sess.SubmitCard(ctx) })
}

// History returns the latest journaled attempts of the user.
func (s *DepositService) History(ctx context.Context, userID uuid.UUID, limit int) ([]models.DepositAttempt, error) {
	if s.journal == nil {
		return []models.DepositAttempt{}, nil
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	attempts, err := s.journal.ListByUser(ctx, userID, limit)
	if err != nil {
		logger.Log.Errorw("failed to list deposit attempts", "userID", userID, "error", err)
		return nil, err
	}
	if attempts == nil {
		attempts = []models.DepositAttempt{}
	}
	return attempts, nil
}

// Sweep closes sessions idle for longer than the TTL and returns how many were closed.
func (s *DepositService) Sweep() int {
	deadline := s.now().Add(-s.ttl)

	var stale []*DepositSession
	s.mu.Lock()
	for userID, sess := range s.sessions {
		if sess.LastActive().Before(deadline) {
			stale = append(stale, sess)
			delete(s.sessions, userID)
		}
	}
	s.mu.Unlock()

	for _, sess := range stale {
		sess.Close()
		metrics.ActiveSessions.Dec()
	}
	if len(stale) > 0 {
		logger.Log.Infow("idle deposit sessions closed", "count", len(stale))
	}
	return len(stale)
}

// Run sweeps idle sessions until ctx is done.
func (s *DepositService) Run(ctx context.Context) {
	interval := s.ttl / 2
	if interval < time.Second {
		interval = time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

// Shutdown closes every session.
func (s *DepositService) Shutdown() {
	s.mu.Lock()
	sessions := s.sessions
	s.sessions = make(map[uuid.UUID]*DepositSession)
	s.mu.Unlock()

	for _, sess := range sessions {
		sess.Close()
		metrics.ActiveSessions.Dec()
	}
	logger.Log.Infow("deposit sessions shut down", "count", len(sessions))
}

func (s *DepositService) session(userID uuid.UUID) (*DepositSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// apply runs op on the user's session and returns the resulting snapshot, also on error.
func (s *DepositService) apply(userID uuid.UUID, op func(*DepositSession) error) (models.SessionSnapshot, error) {
	sess, err := s.session(userID)
	if err != nil {
		return models.SessionSnapshot{}, err
	}
	err = op(sess)
	return sess.Snapshot(), err
}

func (s *DepositService) refreshBalance(ctx context.Context, sess *DepositSession) {
	ctx, cancel := context.WithTimeout(ctx, hookTimeout)
	defer cancel()

	balance, err := s.balances.RefreshBalance(ctx, sess.UserID())
	if err != nil {
		return
	}
	sess.SetBalance(balance)
	logger.Log.Infow("balance refreshed after deposit", "userID", sess.UserID(), "balance", balance)
}

// recordAttempt journals an attempt and publishes the outcome.
func (s *DepositService) recordAttempt(ctx context.Context, a models.DepositAttempt) {
	ctx, cancel := context.WithTimeout(ctx, hookTimeout)
	defer cancel()

	metrics.Outcomes.WithLabelValues(string(a.Method), string(a.Status)).Inc()

	if s.journal != nil {
		if err := s.journal.Save(ctx, a); err != nil {
			logger.Log.Errorw("failed to journal deposit attempt", "attempt_id", a.AttemptID, "status", a.Status, "error", err)
		}
	}
	s.publishOutcome(ctx, models.NewDepositOutcome(a, s.now()))
}

// publishOutcome publishes an attempt status change to Kafka.
func (s *DepositService) publishOutcome(ctx context.Context, outcome models.DepositOutcome) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "attempt_id", outcome.AttemptID)
		return
	}

	data, err := json.Marshal(outcome)
	if err != nil {
		logger.Log.Errorw("Failed to marshal deposit outcome for Kafka", "attempt_id", outcome.AttemptID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(outcome.UserID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish deposit outcome to Kafka", "attempt_id", outcome.AttemptID, "error", err)
	} else {
		logger.Log.Infow("Deposit outcome published to Kafka", "attempt_id", outcome.AttemptID, "status", outcome.Status)
	}
}
