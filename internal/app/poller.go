// internal/app/poller.go
package app

import (
	"context"
	"errors"
	"fmt"

	"homework_status_bot/internal/domain/homework"

	"github.com/sirupsen/logrus"
)

// StatusFetcher fetches the raw homework statuses changed since fromDate.
type StatusFetcher interface {
	Fetch(ctx context.Context, fromDate int64) (homework.Payload, error)
}

// Scheduler runs job immediately and then on every tick, never letting
// two runs overlap. Stop waits for a running job to finish.
type Scheduler interface {
	Start(job func())
	Stop()
}

// Poller runs the fetch, validate, format, dedup and notify cycle on a fixed interval.
type Poller struct {
	fetcher   StatusFetcher
	validator *homework.Validator
	dedup     *Deduplicator
	notifier  *Notifier
	scheduler Scheduler
	logger    logrus.FieldLogger
	cursor    int64
}

func NewPoller(
	fetcher StatusFetcher,
	validator *homework.Validator,
	dedup *Deduplicator,
	notifier *Notifier,
	scheduler Scheduler,
	logger logrus.FieldLogger,
	fromDate int64, // Initial cursor, unix seconds
) *Poller {
	return &Poller{
		fetcher:   fetcher,
		validator: validator,
		dedup:     dedup,
		notifier:  notifier,
		scheduler: scheduler,
		logger:    logger,
		cursor:    fromDate,
	}
}

// Cursor returns the from_date used by the next fetch.
func (p *Poller) Cursor() int64 {
	return p.cursor
}

// Run polls until ctx is cancelled. Cycle failures are logged and retried
// on the next tick; Run only returns the context error.
func (p *Poller) Run(ctx context.Context) error {
	p.logger.WithField("from_date", p.cursor).Info("Polling started")
	p.scheduler.Start(func() {
		_ = p.RunCycle(ctx)
	})

	<-ctx.Done()
	p.scheduler.Stop()
	p.logger.Info("Polling stopped")
	return ctx.Err()
}

// RunCycle performs one poll. The returned error has already been logged
// and is exposed for callers that want to inspect the outcome.
func (p *Poller) RunCycle(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in poll cycle: %v", r)
			p.logCycleError(err)
		}
	}()

	err = p.cycle(ctx)
	p.logCycleError(err)
	return err
}

func (p *Poller) cycle(ctx context.Context) error {
	payload, err := p.fetcher.Fetch(ctx, p.cursor)
	if err != nil {
		return err
	}

	p.advanceCursor(payload)

	homeworks, err := p.validator.Validate(payload)
	if err != nil {
		return err
	}

	message := homework.NoNewStatusMessage
	if len(homeworks) > 0 {
		latest, err := homework.ParseRecord(homeworks[0])
		if err != nil {
			return err
		}
		message, err = homework.FormatStatus(latest)
		if err != nil {
			return err
		}
	}

	if !p.dedup.ShouldSend(message) {
		p.logger.Debug("Status unchanged, nothing to send")
		return nil
	}
	p.notifier.Send(message)
	p.dedup.Record(message)
	return nil
}

// advanceCursor moves the cursor to the server's current_date. The cursor
// never goes backwards.
func (p *Poller) advanceCursor(payload homework.Payload) {
	ts, ok := payload.CurrentDate()
	switch {
	case !ok:
		p.logger.WithField("from_date", p.cursor).Warn("Response has no usable current_date, keeping cursor")
	case ts < p.cursor:
		p.logger.WithFields(logrus.Fields{
			"from_date":    p.cursor,
			"current_date": ts,
		}).Warn("Server current_date is behind the cursor, keeping cursor")
	default:
		p.cursor = ts
	}
}

func (p *Poller) logCycleError(err error) {
	if err == nil {
		return
	}
	log := p.logger.WithError(err).WithField("from_date", p.cursor)
	switch {
	case errors.Is(err, context.Canceled):
		log.Debug("Poll cycle cancelled")
	case errors.Is(err, homework.ErrGetData), errors.Is(err, homework.ErrInvalidStatusCode):
		log.Error("Failed to get homework statuses")
	case errors.Is(err, homework.ErrValidation):
		log.Error("Homework API response failed validation")
	case errors.Is(err, homework.ErrParsing):
		log.Error("Failed to parse homework status")
	default:
		log.Error("Unexpected failure in poll cycle")
	}
}
