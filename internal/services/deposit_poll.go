package services

import (
	"context"
	"errors"
	"time"

	"github.com/sbilibin2017/gw-peakbet-deposit/internal/facades"
	"github.com/sbilibin2017/gw-peakbet-deposit/internal/jwt"
	"github.com/sbilibin2017/gw-peakbet-deposit/internal/logger"
	"github.com/sbilibin2017/gw-peakbet-deposit/internal/metrics"
	"github.com/sbilibin2017/gw-peakbet-deposit/internal/models"
)

// startPollLocked replaces any running poll loop with one for externalID.
func (s *DepositSession) startPollLocked(externalID string) {
	s.stopPollLocked()

	ctx, cancel := context.WithCancel(context.Background())
	task := &pollTask{
		externalID: externalID,
		cancel:     cancel,
		done:       make(chan struct{}),
	}
	s.poll = task
	go s.runPoll(ctx, task)
}

// stopPollLocked cancels the poll loop without waiting for it.
func (s *DepositSession) stopPollLocked() {
	if s.poll != nil {
		s.poll.cancel()
		s.poll = nil
	}
}

// runPoll checks once immediately, then once per interval, until a terminal
// status is seen or the task is cancelled. Hooks of a terminal status run after
// task.done is closed, so Close never waits on them.
func (s *DepositSession) runPoll(ctx context.Context, task *pollTask) {
	settle := s.pollUntilSettled(ctx, task)
	task.cancel()
	close(task.done)

	if settle != nil {
		settle()
	}
}

func (s *DepositSession) pollUntilSettled(ctx context.Context, task *pollTask) func() {
	ticker := time.NewTicker(s.timings.PollInterval)
	defer ticker.Stop()

	for {
		if ctx.Err() != nil {
			return nil
		}
		if stop, settle := s.checkStatus(ctx, task); stop {
			return settle
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// checkStatus runs one status lookup. Lookup errors are logged and the loop goes on.
func (s *DepositSession) checkStatus(ctx context.Context, task *pollTask) (bool, func()) {
	s.mu.Lock()
	token := s.token
	s.mu.Unlock()

	checkCtx, cancel := context.WithTimeout(jwt.WithToken(ctx, token), s.timings.PollInterval)
	status, err := s.gateway.GetPixStatus(checkCtx, task.externalID)
	cancel()

	if err != nil {
		if ctx.Err() != nil {
			return true, nil
		}
		if errors.Is(err, facades.ErrUnrecognizedResponse) {
			metrics.PixStatusChecks.WithLabelValues("unrecognized").Inc()
		} else {
			metrics.PixStatusChecks.WithLabelValues("error").Inc()
		}
		logger.Log.Warnw("pix status check failed", "session_id", s.id, "external_id", task.externalID, "error", err)
		return false, nil
	}

	metrics.PixStatusChecks.WithLabelValues(string(status)).Inc()
	return s.applyStatus(task, status)
}

// applyStatus records a polled status. Results of a replaced task, or arriving
// after a terminal status, are ignored and stop the loop.
//
// A terminal status returns the work left outside the lock: the attempt and success
// hooks, then the reset delay of a completed charge.
func (s *DepositSession) applyStatus(task *pollTask, status models.PaymentStatus) (bool, func()) {
	s.mu.Lock()
	if s.closed || s.poll != task || s.paymentStatus.IsTerminal() {
		s.mu.Unlock()
		return true, nil
	}

	s.paymentStatus = status
	if !status.IsTerminal() {
		s.mu.Unlock()
		return false, nil
	}

	s.poll = nil
	epoch := s.epoch
	hookCtx := s.hookContextLocked()

	var reason string
	if status == models.PaymentStatusCompleted {
		s.pushLocked(models.NotificationSuccess, msgPixCompleted)
	} else {
		reason = msgPixFailed
		s.pushLocked(models.NotificationError, msgPixFailed)
	}
	attempt, ok := s.finishAttemptLocked(status, reason)
	s.mu.Unlock()

	logger.Log.Infow("pix charge settled", "session_id", s.id, "external_id", task.externalID, "status", status)
	return true, func() {
		if ok {
			s.emitAttempt(hookCtx, attempt)
		}
		if status == models.PaymentStatusCompleted {
			s.depositSucceeded(hookCtx)
			s.scheduleReset(epoch, s.timings.PixResetDelay)
		}
	}
}
