package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"

	"futsal/config"
	"futsal/infras/otel"
	"futsal/infras/postgres"
	bookingModel "futsal/internal/domains/booking/model"
	bookingRepo "futsal/internal/domains/booking/repository"
	historyService "futsal/internal/domains/history/service"
	"futsal/internal/domains/payment/model"
	"futsal/internal/domains/payment/model/dto"
	"futsal/internal/domains/payment/repository"
	"futsal/shared"
	"futsal/shared/constant"
	gDto "futsal/shared/dto"
	"futsal/shared/failure"
	"futsal/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Payment interface {
	Create(ctx context.Context, req dto.CreatePaymentRequest) (dto.PaymentResponse, error)
	UpdateStatus(ctx context.Context, id string, req dto.UpdatePaymentStatusRequest) (dto.PaymentResponse, error)
	GetByBooking(ctx context.Context, bookingID string) (dto.PaymentResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo        repository.Payment
	bookingRepo bookingRepo.Booking
	history     historyService.Logger
	db          *postgres.Connection
	cfg         *config.Config
	otel        otel.Otel
}

func New(
	repo repository.Payment,
	bookingRepo bookingRepo.Booking,
	history historyService.Logger,
	db *postgres.Connection,
	cfg *config.Config,
	otel otel.Otel,
) Payment {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		history:     history,
		db:          db,
		cfg:         cfg,
		otel:        otel,
	}
}

// bookingPaymentStatus maps a payment status onto the booking's
// payment_status column. A cancelled payment stops driving the booking,
// which falls back to implicit pending.
func bookingPaymentStatus(paymentStatus string) string {
	if paymentStatus == model.StatusCancelled {
		return bookingModel.PaymentStatusPending
	}

	return paymentStatus
}

func (s *serviceImpl) getBooking(ctx context.Context, bookingID string) (bookingModel.Booking, error) {
	booking, err := s.bookingRepo.Get(ctx, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found")
	}

	return booking, nil
}

func (s *serviceImpl) getPayment(ctx context.Context, id string) (model.Payment, error) {
	payment, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get payment")

		return payment, fmt.Errorf("failed to get payment: %w", err)
	}

	if payment.ID == constant.Empty {
		return payment, failure.NotFound("payment not found")
	}

	return payment, nil
}

// syncBookingTx pushes the payment's status onto the booking row inside the
// same transaction, so the two writes commit or roll back together.
func (s *serviceImpl) syncBookingTx(ctx context.Context, tx *sqlx.Tx, bookingID, paymentStatus, user string) error {
	updatedFields := map[string]any{
		bookingModel.FieldPaymentStatus: bookingPaymentStatus(paymentStatus),
		constant.FieldModifiedAt:        timezone.Now(),
		constant.FieldModifiedBy:        user,
	}

	return s.bookingRepo.UpdateTx(ctx, tx, updatedFields, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName))
}

// Create records a payment. The kasir manual path may create it directly as
// paid; the booking's payment_status moves in the same transaction.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePaymentRequest) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.getBooking(ctx, req.BookingID)
	if err != nil {
		return res, err
	}

	if booking.Status == bookingModel.StatusCancelled {
		return res, failure.UnprocessableEntity("cannot record a payment for a cancelled booking")
	}

	payment := req.ToModel(user)

	err = s.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.InsertTx(ctx, tx, payment); err != nil {
			return err
		}

		return s.syncBookingTx(ctx, tx, booking.ID, payment.Status, user)
	})
	if err != nil {
		log.Error().Err(err).Str("booking_id", req.BookingID).Msg("failed to create payment")

		return res, fmt.Errorf("failed to create payment: %w", err)
	}

	requestPayload := marshalPayload(req)
	s.history.LogPaymentCreation(payment.ID, payment.Amount, payment.Status, requestPayload, &user)

	res.FromModel(payment)

	return res, nil
}

func marshalPayload(payload any) *string {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil
	}

	str := string(raw)

	return &str
}

// UpdateStatus processes a gateway or kasir status change. paid_at stamping
// is idempotent at the SQL layer; replaying a paid webhook never moves it.
func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, req dto.UpdatePaymentStatusRequest) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	payment, err := s.getPayment(ctx, id)
	if err != nil {
		return res, err
	}

	if payment.Status == model.StatusCancelled {
		return res, failure.UnprocessableEntity("payment has been cancelled")
	}

	now := timezone.Now()

	err = s.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.UpdateStatusTx(ctx, tx, payment.ID, req.Status, req.GatewayResponse, user, now); err != nil {
			return err
		}

		return s.syncBookingTx(ctx, tx, payment.BookingID, req.Status, user)
	})
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update payment status")

		return res, fmt.Errorf("failed to update payment status: %w", err)
	}

	if req.Status == model.StatusRefunded {
		s.history.LogPaymentRefund(payment.ID, payment.Amount, payment.Status, req.GatewayResponse, &user)
	} else {
		s.history.LogPaymentProcessing(payment.ID, payment.Amount, payment.Status, req.Status, req.GatewayResponse, &user)
	}

	updated, err := s.getPayment(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(updated)

	return res, nil
}

// GetByBooking returns the effective payment for a booking. Bookings without
// a payment row get the synthesized implicit-pending view.
func (s *serviceImpl) GetByBooking(ctx context.Context, bookingID string) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return res, err
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBookingID,
				Operator: gDto.FilterOperatorEq,
				Value:    bookingID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorNotEq,
				Value:    model.StatusCancelled,
				Table:    model.TableName,
			},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}

	params := gDto.QueryParams{
		Limit:   1,
		SortBy:  constant.FieldCreatedAt,
		SortDir: constant.DefaultValueSortDir,
	}

	payments, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to get payments")

		return res, fmt.Errorf("failed to get payments: %w", err)
	}

	if len(payments) == 0 {
		res.FromBookingPlaceholder(booking)

		return res, nil
	}

	res.FromModel(payments[0])

	return res, nil
}

// Delete soft-cancels a payment; the row stays on record and the booking
// falls back to implicit pending.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	payment, err := s.getPayment(ctx, id)
	if err != nil {
		return err
	}

	if payment.Status == model.StatusCancelled {
		return nil
	}

	now := timezone.Now()

	err = s.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		updatedFields := map[string]any{
			model.FieldStatus:        model.StatusCancelled,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: user,
		}

		if err := s.repo.UpdateTx(ctx, tx, updatedFields, shared.FilterByID(payment.ID, model.FieldID, model.TableName)); err != nil {
			return err
		}

		return s.syncBookingTx(ctx, tx, payment.BookingID, model.StatusCancelled, user)
	})
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to cancel payment")

		return fmt.Errorf("failed to cancel payment: %w", err)
	}

	s.history.LogPaymentProcessing(payment.ID, payment.Amount, payment.Status, model.StatusCancelled, nil, &user)

	return nil
}
