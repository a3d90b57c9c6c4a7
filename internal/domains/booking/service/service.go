package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"futsal/config"
	"futsal/infras/otel"
	"futsal/infras/postgres"
	"futsal/internal/domains/booking/model"
	"futsal/internal/domains/booking/model/dto"
	"futsal/internal/domains/booking/repository"
	fieldService "futsal/internal/domains/field/service"
	"futsal/internal/domains/history/service"
	"futsal/internal/domains/notification"
	promoModel "futsal/internal/domains/promotion/model"
	promoRepo "futsal/internal/domains/promotion/repository"
	"futsal/shared"
	"futsal/shared/constant"
	gDto "futsal/shared/dto"
	"futsal/shared/failure"
	"futsal/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// Actor identifies who drives a transition. A nil ID means the system
// (auto-completion); completed_by stays NULL for those.
type Actor struct {
	ID   *string
	Role string
}

func (a Actor) IsSystem() bool {
	return a.ID == nil
}

func (a Actor) IsCustomer() bool {
	return a.Role == constant.RoleCustomer
}

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest, userID string) (dto.BookingResponse, error)
	CheckConflict(ctx context.Context, req dto.ConflictCheckRequest) (dto.ConflictCheckResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id string, actor Actor) (dto.BookingResponse, error)
	UpdateStatus(ctx context.Context, id string, req dto.UpdateBookingStatusRequest, actor Actor) (dto.StatusUpdateResponse, error)
	Cancel(ctx context.Context, id string, req dto.CancelBookingRequest, actor Actor) (dto.StatusUpdateResponse, error)
	UpdatePaymentStatus(ctx context.Context, id string, req dto.UpdatePaymentStatusRequest) error
}

type serviceImpl struct {
	repo      repository.Booking
	promoRepo promoRepo.Promotion
	fields    fieldService.Field
	history   service.Logger
	publisher notification.Publisher
	db        *postgres.Connection
	cfg       *config.Config
	otel      otel.Otel
}

func New(
	repo repository.Booking,
	promoRepo promoRepo.Promotion,
	fields fieldService.Field,
	history service.Logger,
	publisher notification.Publisher,
	db *postgres.Connection,
	cfg *config.Config,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:      repo,
		promoRepo: promoRepo,
		fields:    fields,
		history:   history,
		publisher: publisher,
		db:        db,
		cfg:       cfg,
		otel:      otel,
	}
}

// mapSlotTakenError translates unique or exclusion violations raised by the
// bookings table into the same conflict failure the in-transaction check
// produces, keeping the database the authority on overlaps.
func mapSlotTakenError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		code := string(pqErr.Code)
		if code == constant.PqErrorCodeUniqueViolation || code == constant.PqErrorCodeExclusionViolation {
			return failure.Conflict("time slot is already booked")
		}
	}

	return err
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest, userID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	date, start, end, err := req.ParseSlot()
	if err != nil {
		return res, err
	}

	field, err := s.fields.Get(ctx, req.FieldID)
	if err != nil {
		return res, err
	}

	if !field.Active {
		return res, failure.BadRequestFromString("field is not available for booking")
	}

	price := dto.PriceBreakdown{
		DurationHours: end.Sub(start).Hours(),
		AdminFee:      s.cfg.Booking.AdminFee,
	}
	price.BaseAmount = field.HourlyRate * price.DurationHours

	var promo *promoModel.Promotion
	if req.PromoCode != nil && *req.PromoCode != constant.Empty {
		promo, err = s.resolvePromotion(ctx, *req.PromoCode, date)
		if err != nil {
			return res, err
		}

		price.DiscountAmount = promo.DiscountFor(price.BaseAmount)
	}

	price.TotalAmount = price.BaseAmount - price.DiscountAmount + price.AdminFee

	bookingNumber := dto.NewBookingNumber(s.cfg.Booking.NumberPrefix, date)
	booking := req.ToModel(userID, bookingNumber, date, start, end, price)

	err = s.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		conflicts, err := s.repo.FindConflictsTx(ctx, tx, req.FieldID, date, start, end, constant.Empty)
		if err != nil {
			return err
		}

		if len(conflicts) > 0 {
			var conflictRes dto.ConflictCheckResponse
			conflictRes.FromModels(conflicts)

			return failure.ConflictWithDetails("time slot is already booked", conflictRes.Conflicts)
		}

		if err := s.repo.InsertTx(ctx, tx, booking); err != nil {
			return err
		}

		if promo != nil {
			return s.promoRepo.IncrementUsageTx(ctx, tx, promo.ID)
		}

		return nil
	})
	if err != nil {
		err = mapSlotTakenError(err)

		log.Error().Err(err).Str("field_id", req.FieldID).Msg("failed to create booking")

		return res, err
	}

	s.history.LogBookingCreated(booking.ID, &userID, "Booking created")
	s.publisher.PublishBookingEvent(ctx, notification.Event{
		Type:          notification.EventBookingCreated,
		BookingID:     booking.ID,
		BookingNumber: booking.BookingNumber,
		UserID:        booking.UserID,
		Status:        booking.Status,
		OccurredAt:    timezone.Now(),
	})

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) resolvePromotion(ctx context.Context, code string, date time.Time) (*promoModel.Promotion, error) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    promoModel.FieldCode,
				Operator: gDto.FilterOperatorEq,
				Value:    code,
				Table:    promoModel.TableName,
			},
		},
	}

	promo, err := s.promoRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("code", code).Msg("failed to get promotion")

		return nil, fmt.Errorf("failed to get promotion: %w", err)
	}

	if promo.ID == constant.Empty {
		return nil, failure.BadRequestFromString("promo code not found")
	}

	if !promo.UsableOn(date) {
		return nil, failure.BadRequestFromString("promo code is not applicable to this booking")
	}

	return &promo, nil
}

func (s *serviceImpl) CheckConflict(ctx context.Context, req dto.ConflictCheckRequest) (res dto.ConflictCheckResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckConflict")
	defer scope.End()
	defer scope.TraceIfError(err)

	date, start, end, err := req.ParseSlot()
	if err != nil {
		return res, err
	}

	excludeID := constant.Empty
	if req.ExcludeBookingID != nil {
		excludeID = *req.ExcludeBookingID
	}

	conflicts, err := s.repo.FindConflicts(ctx, req.FieldID, date, start, end, excludeID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check booking conflicts")

		return res, fmt.Errorf("failed to check booking conflicts: %w", err)
	}

	res.FromModels(conflicts)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string, actor Actor) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getByID(ctx, id)
	if err != nil {
		return res, err
	}

	if actor.IsCustomer() && (actor.ID == nil || booking.UserID != *actor.ID) {
		return res, failure.ResourceRestrictedError
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) getByID(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found")
	}

	return booking, nil
}

// UpdateStatus drives the lifecycle. Terminal bookings reject every further
// transition regardless of role; the override flag only relaxes the paid
// gate on confirmation, and only for admin-level actors.
func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, req dto.UpdateBookingStatusRequest, actor Actor) (res dto.StatusUpdateResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getByID(ctx, id)
	if err != nil {
		return res, err
	}

	if err := s.validateTransition(booking, req, actor); err != nil {
		return res, err
	}

	now := timezone.Now()
	updatedFields := s.transitionFields(req, actor, now)

	if err := s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update booking status")

		return res, fmt.Errorf("failed to update booking status: %w", err)
	}

	notes := req.Reason
	if notes == constant.Empty {
		notes = fmt.Sprintf("Status changed from %s to %s", booking.Status, req.Status)
	}

	s.history.LogStatusChange(id, booking.Status, req.Status, actor.ID, notes)
	s.publishTransition(ctx, booking, req.Status)

	oldStatus := booking.Status
	booking.Status = req.Status
	res.FromModel(booking, now)

	log.Info().
		Str("id", id).
		Str("from", oldStatus).
		Str("to", req.Status).
		Bool("system", actor.IsSystem()).
		Msg("booking status updated")

	return res, nil
}

func (s *serviceImpl) validateTransition(booking model.Booking, req dto.UpdateBookingStatusRequest, actor Actor) error {
	if model.IsTerminalStatus(booking.Status) {
		return failure.UnprocessableEntity(fmt.Sprintf("booking is already %s and cannot change status", booking.Status))
	}

	if !model.CanTransition(booking.Status, req.Status) {
		return failure.UnprocessableEntity(fmt.Sprintf("cannot change status from %s to %s", booking.Status, req.Status))
	}

	switch req.Status {
	case model.StatusConfirmed:
		if booking.PaymentStatus != model.PaymentStatusPaid && !s.canOverridePaymentCheck(req, actor) {
			return failure.UnprocessableEntity("booking must be paid before it can be confirmed")
		}
	case model.StatusCancelled:
		if actor.IsCustomer() {
			return s.validateCustomerCancellation(booking, actor)
		}
	}

	return nil
}

func (s *serviceImpl) canOverridePaymentCheck(req dto.UpdateBookingStatusRequest, actor Actor) bool {
	return req.OverridePaymentCheck && slices.Contains(constant.OverrideRoles, actor.Role)
}

// Customers may only cancel their own pending bookings, and only with enough
// notice before kickoff. Staff cancel at any stage.
func (s *serviceImpl) validateCustomerCancellation(booking model.Booking, actor Actor) error {
	if actor.ID == nil || booking.UserID != *actor.ID {
		return failure.ResourceRestrictedError
	}

	if booking.Status != model.StatusPending {
		return failure.UnprocessableEntity("only pending bookings can be cancelled")
	}

	notice := time.Duration(s.cfg.Booking.CancelNoticeHours) * time.Hour
	if timezone.Now().Add(notice).After(booking.StartInstant()) {
		return failure.UnprocessableEntity(fmt.Sprintf("cancellation requires at least %d hours notice", s.cfg.Booking.CancelNoticeHours))
	}

	return nil
}

func (s *serviceImpl) transitionFields(req dto.UpdateBookingStatusRequest, actor Actor, now time.Time) map[string]any {
	modifiedBy := constant.ContextGuest
	if actor.ID != nil {
		modifiedBy = *actor.ID
	}

	updatedFields := map[string]any{
		model.FieldStatus:        req.Status,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: modifiedBy,
	}

	switch req.Status {
	case model.StatusConfirmed:
		updatedFields[model.FieldConfirmedBy] = actor.ID
		updatedFields[model.FieldConfirmedAt] = now
	case model.StatusCancelled:
		updatedFields[model.FieldCancelledBy] = actor.ID
		updatedFields[model.FieldCancelledAt] = now
		updatedFields[model.FieldCancellationReason] = req.Reason
	case model.StatusCompleted:
		updatedFields[model.FieldCompletedBy] = actor.ID
		updatedFields[model.FieldCompletedAt] = now
	}

	return updatedFields
}

func (s *serviceImpl) publishTransition(ctx context.Context, booking model.Booking, newStatus string) {
	eventTypes := map[string]string{
		model.StatusConfirmed: notification.EventBookingConfirmed,
		model.StatusCancelled: notification.EventBookingCancelled,
		model.StatusCompleted: notification.EventBookingCompleted,
	}

	eventType, ok := eventTypes[newStatus]
	if !ok {
		return
	}

	s.publisher.PublishBookingEvent(ctx, notification.Event{
		Type:          eventType,
		BookingID:     booking.ID,
		BookingNumber: booking.BookingNumber,
		UserID:        booking.UserID,
		Status:        newStatus,
		OccurredAt:    timezone.Now(),
	})
}

func (s *serviceImpl) Cancel(ctx context.Context, id string, req dto.CancelBookingRequest, actor Actor) (dto.StatusUpdateResponse, error) {
	return s.UpdateStatus(ctx, id, dto.UpdateBookingStatusRequest{
		Status: model.StatusCancelled,
		Reason: req.Reason,
	}, actor)
}

// UpdatePaymentStatus is a separate write path: it never touches the
// lifecycle status and emits no history entry.
func (s *serviceImpl) UpdatePaymentStatus(ctx context.Context, id string, req dto.UpdatePaymentStatusRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdatePaymentStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getByID(ctx, id)
	if err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	updatedFields := map[string]any{
		model.FieldPaymentStatus: req.PaymentStatus,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err := s.repo.Update(ctx, updatedFields, shared.FilterByID(booking.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update booking payment status")

		return fmt.Errorf("failed to update booking payment status: %w", err)
	}

	return nil
}
