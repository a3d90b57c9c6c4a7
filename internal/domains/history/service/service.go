package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"futsal/config"
	"futsal/infras/otel"
	"futsal/internal/domains/history/model"
	"futsal/internal/domains/history/model/dto"
	"futsal/internal/domains/history/repository"
	"futsal/shared/constant"
	gDto "futsal/shared/dto"
	"futsal/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const writeTimeout = 10 * time.Second

// Logger is the append-only audit trail. Log* methods enqueue and never
// block: when the buffer is full the entry is dropped with an error log,
// and a failed write never reaches the caller.
type Logger interface {
	LogBookingCreated(bookingID string, changedBy *string, notes string)
	LogStatusChange(bookingID, oldStatus, newStatus string, changedBy *string, notes string)
	LogAutoCompleteError(bookingID string, notes string)
	LogAutoCompleteSummary(notes string, triggeredBy *string)
	LogPaymentCreation(paymentID string, amount float64, statusTo string, requestPayload *string, processedBy *string)
	LogPaymentProcessing(paymentID string, amount float64, statusFrom, statusTo string, responsePayload *string, processedBy *string)
	LogPaymentRefund(paymentID string, amount float64, statusFrom string, responsePayload *string, processedBy *string)
	GetBookingHistory(ctx context.Context, bookingID string, params gDto.QueryParams) (dto.GetBookingHistoriesResponse, error)
	PurgeOlderThan(ctx context.Context, days int) (dto.PurgeResponse, error)
	Run()
	Close()
}

type entry struct {
	bookingHistory *model.BookingHistory
	paymentLog     *model.PaymentLog
}

type serviceImpl struct {
	repo        repository.BookingHistory
	paymentRepo repository.PaymentLog
	cfg         *config.Config
	otel        otel.Otel
	queue       chan entry
	closeOnce   sync.Once
	done        chan struct{}
}

func New(repo repository.BookingHistory, paymentRepo repository.PaymentLog, cfg *config.Config, otel otel.Otel) Logger {
	return &serviceImpl{
		repo:        repo,
		paymentRepo: paymentRepo,
		cfg:         cfg,
		otel:        otel,
		queue:       make(chan entry, cfg.Booking.HistoryQueueSize),
		done:        make(chan struct{}),
	}
}

// Run drains the queue until Close is called. Meant to run on its own
// goroutine; write failures are logged and swallowed.
func (s *serviceImpl) Run() {
	for e := range s.queue {
		s.write(e)
	}

	close(s.done)
}

// Close stops accepting entries and waits for the worker to drain the queue.
func (s *serviceImpl) Close() {
	s.closeOnce.Do(func() {
		close(s.queue)
		<-s.done
	})
}

func (s *serviceImpl) write(e entry) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	if e.bookingHistory != nil {
		if err := s.repo.Insert(ctx, *e.bookingHistory); err != nil {
			log.Error().Err(err).Str("action", e.bookingHistory.Action).Msg("failed to write booking history entry")
		}
	}

	if e.paymentLog != nil {
		if err := s.paymentRepo.Insert(ctx, *e.paymentLog); err != nil {
			log.Error().Err(err).Str("action", e.paymentLog.Action).Msg("failed to write payment log entry")
		}
	}
}

func (s *serviceImpl) enqueue(e entry) {
	select {
	case s.queue <- e:
	default:
		log.Error().Msg("history queue full, dropping audit entry")
	}
}

func (s *serviceImpl) LogBookingCreated(bookingID string, changedBy *string, notes string) {
	newStatus := "pending"

	s.enqueue(entry{bookingHistory: &model.BookingHistory{
		ID:        uuid.NewString(),
		BookingID: &bookingID,
		Action:    model.ActionCreated,
		NewStatus: &newStatus,
		ChangedBy: changedBy,
		Notes:     notes,
		CreatedAt: timezone.Now(),
	}})
}

func (s *serviceImpl) LogStatusChange(bookingID, oldStatus, newStatus string, changedBy *string, notes string) {
	s.enqueue(entry{bookingHistory: &model.BookingHistory{
		ID:        uuid.NewString(),
		BookingID: &bookingID,
		Action:    model.StatusChangeAction(oldStatus, newStatus),
		OldStatus: &oldStatus,
		NewStatus: &newStatus,
		ChangedBy: changedBy,
		Notes:     notes,
		CreatedAt: timezone.Now(),
	}})
}

func (s *serviceImpl) LogAutoCompleteError(bookingID string, notes string) {
	s.enqueue(entry{bookingHistory: &model.BookingHistory{
		ID:        uuid.NewString(),
		BookingID: &bookingID,
		Action:    model.ActionAutoCompleteError,
		Notes:     notes,
		CreatedAt: timezone.Now(),
	}})
}

func (s *serviceImpl) LogAutoCompleteSummary(notes string, triggeredBy *string) {
	s.enqueue(entry{bookingHistory: &model.BookingHistory{
		ID:        uuid.NewString(),
		Action:    model.ActionAutoCompleteSummary,
		ChangedBy: triggeredBy,
		Notes:     notes,
		CreatedAt: timezone.Now(),
	}})
}

func (s *serviceImpl) LogPaymentCreation(paymentID string, amount float64, statusTo string, requestPayload *string, processedBy *string) {
	s.enqueue(entry{paymentLog: &model.PaymentLog{
		ID:             uuid.NewString(),
		PaymentID:      paymentID,
		Action:         model.PaymentActionCreated,
		StatusTo:       &statusTo,
		RequestPayload: requestPayload,
		Amount:         amount,
		ProcessedBy:    processedBy,
		CreatedAt:      timezone.Now(),
	}})
}

func (s *serviceImpl) LogPaymentProcessing(paymentID string, amount float64, statusFrom, statusTo string, responsePayload *string, processedBy *string) {
	s.enqueue(entry{paymentLog: &model.PaymentLog{
		ID:              uuid.NewString(),
		PaymentID:       paymentID,
		Action:          model.PaymentActionProcessed,
		StatusFrom:      &statusFrom,
		StatusTo:        &statusTo,
		ResponsePayload: responsePayload,
		Amount:          amount,
		ProcessedBy:     processedBy,
		CreatedAt:       timezone.Now(),
	}})
}

func (s *serviceImpl) LogPaymentRefund(paymentID string, amount float64, statusFrom string, responsePayload *string, processedBy *string) {
	statusTo := "refunded"

	s.enqueue(entry{paymentLog: &model.PaymentLog{
		ID:              uuid.NewString(),
		PaymentID:       paymentID,
		Action:          model.PaymentActionRefunded,
		StatusFrom:      &statusFrom,
		StatusTo:        &statusTo,
		ResponsePayload: responsePayload,
		Amount:          amount,
		ProcessedBy:     processedBy,
		CreatedAt:       timezone.Now(),
	}})
}

func (s *serviceImpl) GetBookingHistory(ctx context.Context, bookingID string, params gDto.QueryParams) (res dto.GetBookingHistoriesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBookingHistory")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBookingID,
				Operator: gDto.FilterOperatorEq,
				Value:    bookingID,
				Table:    model.TableName,
			},
		},
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count booking histories")

		return res, fmt.Errorf("failed to count booking histories: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking histories")

		return res, fmt.Errorf("failed to get booking histories: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

// PurgeOlderThan removes audit rows past the retention window from both
// ledgers. A non-positive days value falls back to the configured default.
func (s *serviceImpl) PurgeOlderThan(ctx context.Context, days int) (res dto.PurgeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PurgeOlderThan")
	defer scope.End()
	defer scope.TraceIfError(err)

	if days <= 0 {
		days = s.cfg.Booking.HistoryRetentionDays
	}

	cutoff := timezone.Now().AddDate(0, 0, -days)

	histories, err := s.repo.PurgeOlderThan(ctx, cutoff)
	if err != nil {
		return res, err
	}

	paymentLogs, err := s.paymentRepo.PurgeOlderThan(ctx, cutoff)
	if err != nil {
		return res, err
	}

	log.Info().
		Int64("booking_histories", histories).
		Int64("payment_logs", paymentLogs).
		Time("cutoff", cutoff).
		Msg("purged audit entries past retention")

	res.BookingHistoriesRemoved = histories
	res.PaymentLogsRemoved = paymentLogs

	return res, nil
}
