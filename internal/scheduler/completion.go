package scheduler

//go:generate go run go.uber.org/mock/mockgen -source=./completion.go -destination=./mocks/completion_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"futsal/config"
	"futsal/infras/otel"
	bookingModel "futsal/internal/domains/booking/model"
	"futsal/internal/domains/booking/model/dto"
	"futsal/internal/domains/booking/repository"
	bookingService "futsal/internal/domains/booking/service"
	historyService "futsal/internal/domains/history/service"
	"futsal/shared/constant"
	"futsal/shared/timezone"

	"github.com/rs/zerolog/log"
)

// SweepResult summarizes one auto-completion pass.
type SweepResult struct {
	Examined  int `json:"examined"`
	Completed int `json:"completed"`
	Skipped   int `json:"skipped"`
}

// Completion drives confirmed bookings to completed once their slot has
// ended plus a grace period. The ticker runs Sweep on an interval; admins
// can run the same Sweep on demand.
type Completion interface {
	Start(ctx context.Context)
	Sweep(ctx context.Context, triggeredBy *string) (SweepResult, error)
}

type completionImpl struct {
	repo     repository.Booking
	bookings bookingService.Booking
	history  historyService.Logger
	cfg      *config.Config
	otel     otel.Otel
}

func New(
	repo repository.Booking,
	bookings bookingService.Booking,
	history historyService.Logger,
	cfg *config.Config,
	otel otel.Otel,
) Completion {
	return &completionImpl{
		repo:     repo,
		bookings: bookings,
		history:  history,
		cfg:      cfg,
		otel:     otel,
	}
}

// Start blocks until the context is cancelled, sweeping on the configured
// interval. A failed sweep is logged and retried on the next tick.
func (c *completionImpl) Start(ctx context.Context) {
	interval := time.Duration(c.cfg.Booking.SweepIntervalMinutes) * time.Minute

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Info().Dur("interval", interval).Msg("auto-completion scheduler started")

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("auto-completion scheduler stopped")

			return
		case <-ticker.C:
			if _, err := c.Sweep(ctx, nil); err != nil {
				log.Error().Err(err).Msg("auto-completion sweep failed")
			}
		}
	}
}

// Sweep fetches eligible bookings and completes each one whose end instant
// plus grace has passed. One bad row never aborts the batch; only the
// batch fetch itself is fatal. A nil triggeredBy marks a scheduled run.
func (c *completionImpl) Sweep(ctx context.Context, triggeredBy *string) (res SweepResult, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelSchedulerScopeName, constant.OtelSchedulerScopeName+".Sweep")
	defer scope.End()
	defer scope.TraceIfError(err)

	now := timezone.Now()
	grace := time.Duration(c.cfg.Booking.CompletionGraceMinutes) * time.Minute

	bookings, err := c.repo.FindEligibleForCompletion(ctx, now)
	if err != nil {
		return res, fmt.Errorf("failed to fetch bookings eligible for completion: %w", err)
	}

	res.Examined = len(bookings)

	for _, booking := range bookings {
		if !booking.HasSlot() {
			log.Warn().Str("id", booking.ID).Msg("skipping booking with malformed slot data")
			c.history.LogAutoCompleteError(booking.ID, "booking has no usable date or end time, skipped by auto-completion")
			res.Skipped++

			continue
		}

		if now.Before(booking.EndInstant().Add(grace)) {
			continue
		}

		req := dto.UpdateBookingStatusRequest{
			Status: bookingModel.StatusCompleted,
			Reason: fmt.Sprintf("Auto-completed by system at %s", now.Format(constant.DateFormat)),
		}

		if _, err := c.bookings.UpdateStatus(ctx, booking.ID, req, bookingService.Actor{ID: triggeredBy}); err != nil {
			log.Error().Err(err).Str("id", booking.ID).Msg("failed to auto-complete booking")
			c.history.LogAutoCompleteError(booking.ID, fmt.Sprintf("auto-completion failed: %v", err))
			res.Skipped++

			continue
		}

		res.Completed++
	}

	if res.Completed > 0 {
		notes := fmt.Sprintf("Auto-completion sweep completed %d booking(s)", res.Completed)
		if triggeredBy != nil {
			notes += " (triggered manually)"
		}

		c.history.LogAutoCompleteSummary(notes, triggeredBy)

		log.Info().Int("completed", res.Completed).Int("examined", res.Examined).Msg("auto-completion sweep finished")
	} else {
		log.Debug().Int("examined", res.Examined).Msg("auto-completion sweep found nothing to complete")
	}

	return res, nil
}
