package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"futsal/config"
	"futsal/infras/otel/mocks"
	bookingMocks "futsal/internal/domains/booking/mocks"
	"futsal/internal/domains/booking/model"
	"futsal/internal/domains/booking/model/dto"
	"futsal/internal/domains/booking/service"
	fieldDto "futsal/internal/domains/field/model/dto"
	fieldServiceMocks "futsal/internal/domains/field/service/mocks"
	historyMocks "futsal/internal/domains/history/mocks"
	notificationMocks "futsal/internal/domains/notification/mocks"
	promoMocks "futsal/internal/domains/promotion/mocks"
	promoModel "futsal/internal/domains/promotion/model"
	"futsal/shared/constant"
	gDto "futsal/shared/dto"
	"futsal/shared/timezone"
)

func ptr(s string) *string {
	return &s
}

func clockAt(hour, minute int) time.Time {
	return time.Date(0, time.January, 1, hour, minute, 0, 0, time.UTC)
}

// futureBooking builds a booking two days out so customer cancellation
// notice checks pass by a wide margin.
func futureBooking(status, paymentStatus, userID string) model.Booking {
	return model.Booking{
		ID:            "booking-1",
		BookingNumber: "FB-20260901-ABC123",
		UserID:        userID,
		FieldID:       "field-1",
		BookingDate:   timezone.Now().AddDate(0, 0, 2),
		StartTime:     clockAt(10, 0),
		EndTime:       clockAt(12, 0),
		Status:        status,
		PaymentStatus: paymentStatus,
	}
}

func TestBookingService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockPromo := promoMocks.NewMockPromotion(ctrl)
	mockFields := fieldServiceMocks.NewMockField(ctrl)
	mockHistory := historyMocks.NewMockLogger(ctrl)
	mockPublisher := notificationMocks.NewMockPublisher(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Booking.CancelNoticeHours = 2

	svc := service.New(mockRepo, mockPromo, mockFields, mockHistory, mockPublisher, nil, cfg, mockOtel)

	tests := []struct {
		name      string
		req       dto.UpdateBookingStatusRequest
		actor     service.Actor
		setupMock func()
		wantErr   bool
	}{
		{
			name:  "completed booking rejects any further transition",
			req:   dto.UpdateBookingStatusRequest{Status: model.StatusCancelled},
			actor: service.Actor{ID: ptr("admin-1"), Role: constant.RoleAdmin},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(futureBooking(model.StatusCompleted, model.PaymentStatusPaid, "user-1"), nil)
			},
			wantErr: true,
		},
		{
			name:  "cancelled booking rejects any further transition",
			req:   dto.UpdateBookingStatusRequest{Status: model.StatusConfirmed},
			actor: service.Actor{ID: ptr("admin-1"), Role: constant.RoleSuperAdmin},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(futureBooking(model.StatusCancelled, model.PaymentStatusPending, "user-1"), nil)
			},
			wantErr: true,
		},
		{
			name:  "pending cannot jump straight to completed",
			req:   dto.UpdateBookingStatusRequest{Status: model.StatusCompleted},
			actor: service.Actor{ID: ptr("manager-1"), Role: constant.RoleManager},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(futureBooking(model.StatusPending, model.PaymentStatusPaid, "user-1"), nil)
			},
			wantErr: true,
		},
		{
			name:  "confirmation requires a paid booking",
			req:   dto.UpdateBookingStatusRequest{Status: model.StatusConfirmed},
			actor: service.Actor{ID: ptr("manager-1"), Role: constant.RoleManager},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(futureBooking(model.StatusPending, model.PaymentStatusPending, "user-1"), nil)
			},
			wantErr: true,
		},
		{
			name:  "payment override honored for admin",
			req:   dto.UpdateBookingStatusRequest{Status: model.StatusConfirmed, OverridePaymentCheck: true},
			actor: service.Actor{ID: ptr("admin-1"), Role: constant.RoleAdmin},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(futureBooking(model.StatusPending, model.PaymentStatusPending, "user-1"), nil)
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, model.StatusConfirmed, fields[model.FieldStatus])
						assert.NotNil(t, fields[model.FieldConfirmedAt])

						return nil
					})
				mockHistory.EXPECT().
					LogStatusChange("booking-1", model.StatusPending, model.StatusConfirmed, gomock.Any(), gomock.Any())
				mockPublisher.EXPECT().
					PublishBookingEvent(gomock.Any(), gomock.Any())
			},
			wantErr: false,
		},
		{
			name:  "payment override ignored for kasir",
			req:   dto.UpdateBookingStatusRequest{Status: model.StatusConfirmed, OverridePaymentCheck: true},
			actor: service.Actor{ID: ptr("kasir-1"), Role: constant.RoleKasir},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(futureBooking(model.StatusPending, model.PaymentStatusPending, "user-1"), nil)
			},
			wantErr: true,
		},
		{
			name:  "paid booking confirms",
			req:   dto.UpdateBookingStatusRequest{Status: model.StatusConfirmed},
			actor: service.Actor{ID: ptr("manager-1"), Role: constant.RoleManager},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(futureBooking(model.StatusPending, model.PaymentStatusPaid, "user-1"), nil)
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
				mockHistory.EXPECT().
					LogStatusChange("booking-1", model.StatusPending, model.StatusConfirmed, gomock.Any(), gomock.Any())
				mockPublisher.EXPECT().
					PublishBookingEvent(gomock.Any(), gomock.Any())
			},
			wantErr: false,
		},
		{
			name:  "customer cancels own pending booking with enough notice",
			req:   dto.UpdateBookingStatusRequest{Status: model.StatusCancelled, Reason: "schedule clash"},
			actor: service.Actor{ID: ptr("user-1"), Role: constant.RoleCustomer},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(futureBooking(model.StatusPending, model.PaymentStatusPending, "user-1"), nil)
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
				mockHistory.EXPECT().
					LogStatusChange("booking-1", model.StatusPending, model.StatusCancelled, gomock.Any(), "schedule clash")
				mockPublisher.EXPECT().
					PublishBookingEvent(gomock.Any(), gomock.Any())
			},
			wantErr: false,
		},
		{
			name:  "customer cannot cancel another customer's booking",
			req:   dto.UpdateBookingStatusRequest{Status: model.StatusCancelled},
			actor: service.Actor{ID: ptr("user-2"), Role: constant.RoleCustomer},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(futureBooking(model.StatusPending, model.PaymentStatusPending, "user-1"), nil)
			},
			wantErr: true,
		},
		{
			name:  "customer cannot cancel a confirmed booking",
			req:   dto.UpdateBookingStatusRequest{Status: model.StatusCancelled},
			actor: service.Actor{ID: ptr("user-1"), Role: constant.RoleCustomer},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(futureBooking(model.StatusConfirmed, model.PaymentStatusPaid, "user-1"), nil)
			},
			wantErr: true,
		},
		{
			name:  "customer cancellation too close to kickoff",
			req:   dto.UpdateBookingStatusRequest{Status: model.StatusCancelled},
			actor: service.Actor{ID: ptr("user-1"), Role: constant.RoleCustomer},
			setupMock: func() {
				booking := futureBooking(model.StatusPending, model.PaymentStatusPending, "user-1")
				booking.BookingDate = timezone.Now()
				booking.StartTime = clockAt(timezone.Now().Hour(), timezone.Now().Minute())

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)
			},
			wantErr: true,
		},
		{
			name:  "staff cancellation skips the notice check",
			req:   dto.UpdateBookingStatusRequest{Status: model.StatusCancelled, Reason: "field maintenance"},
			actor: service.Actor{ID: ptr("operator-1"), Role: constant.RoleOperator},
			setupMock: func() {
				booking := futureBooking(model.StatusConfirmed, model.PaymentStatusPaid, "user-1")
				booking.BookingDate = timezone.Now()

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
				mockHistory.EXPECT().
					LogStatusChange("booking-1", model.StatusConfirmed, model.StatusCancelled, gomock.Any(), "field maintenance")
				mockPublisher.EXPECT().
					PublishBookingEvent(gomock.Any(), gomock.Any())
			},
			wantErr: false,
		},
		{
			name:  "update failure surfaces",
			req:   dto.UpdateBookingStatusRequest{Status: model.StatusConfirmed},
			actor: service.Actor{ID: ptr("manager-1"), Role: constant.RoleManager},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(futureBooking(model.StatusPending, model.PaymentStatusPaid, "user-1"), nil)
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name:  "unknown booking",
			req:   dto.UpdateBookingStatusRequest{Status: model.StatusConfirmed},
			actor: service.Actor{ID: ptr("manager-1"), Role: constant.RoleManager},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.UpdateStatus(context.Background(), "booking-1", tt.req, tt.actor)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.req.Status, res.Status)
			}
		})
	}
}

func TestBookingService_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockPromo := promoMocks.NewMockPromotion(ctrl)
	mockFields := fieldServiceMocks.NewMockField(ctrl)
	mockHistory := historyMocks.NewMockLogger(ctrl)
	mockPublisher := notificationMocks.NewMockPublisher(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Booking.CancelNoticeHours = 2

	svc := service.New(mockRepo, mockPromo, mockFields, mockHistory, mockPublisher, nil, cfg, mockOtel)

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(futureBooking(model.StatusPending, model.PaymentStatusPending, "user-1"), nil)
	mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)
	mockHistory.EXPECT().
		LogStatusChange("booking-1", model.StatusPending, model.StatusCancelled, gomock.Any(), "cannot make it")
	mockPublisher.EXPECT().
		PublishBookingEvent(gomock.Any(), gomock.Any())

	actor := service.Actor{ID: ptr("user-1"), Role: constant.RoleCustomer}
	res, err := svc.Cancel(context.Background(), "booking-1", dto.CancelBookingRequest{Reason: "cannot make it"}, actor)

	assert.NoError(t, err)
	assert.Equal(t, model.StatusCancelled, res.Status)
}

func TestBookingService_CheckConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockPromo := promoMocks.NewMockPromotion(ctrl)
	mockFields := fieldServiceMocks.NewMockField(ctrl)
	mockHistory := historyMocks.NewMockLogger(ctrl)
	mockPublisher := notificationMocks.NewMockPublisher(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockPromo, mockFields, mockHistory, mockPublisher, nil, cfg, mockOtel)

	tests := []struct {
		name         string
		req          dto.ConflictCheckRequest
		setupMock    func()
		wantErr      bool
		wantConflict bool
	}{
		{
			name: "occupied slot reports conflicts",
			req: dto.ConflictCheckRequest{
				FieldID:     "field-1",
				BookingDate: "2026-09-01",
				StartTime:   "10:00",
				EndTime:     "12:00",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					FindConflicts(gomock.Any(), "field-1", gomock.Any(), gomock.Any(), gomock.Any(), constant.Empty).
					Return([]model.Booking{futureBooking(model.StatusConfirmed, model.PaymentStatusPaid, "user-1")}, nil)
			},
			wantConflict: true,
		},
		{
			name: "free slot reports no conflict",
			req: dto.ConflictCheckRequest{
				FieldID:     "field-1",
				BookingDate: "2026-09-01",
				StartTime:   "08:00",
				EndTime:     "10:00",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					FindConflicts(gomock.Any(), "field-1", gomock.Any(), gomock.Any(), gomock.Any(), constant.Empty).
					Return([]model.Booking{}, nil)
			},
			wantConflict: false,
		},
		{
			name: "excluded booking is passed through",
			req: dto.ConflictCheckRequest{
				FieldID:          "field-1",
				BookingDate:      "2026-09-01",
				StartTime:        "10:00",
				EndTime:          "12:00",
				ExcludeBookingID: ptr("booking-9"),
			},
			setupMock: func() {
				mockRepo.EXPECT().
					FindConflicts(gomock.Any(), "field-1", gomock.Any(), gomock.Any(), gomock.Any(), "booking-9").
					Return([]model.Booking{}, nil)
			},
			wantConflict: false,
		},
		{
			name: "malformed date rejected before hitting the repository",
			req: dto.ConflictCheckRequest{
				FieldID:     "field-1",
				BookingDate: "01-09-2026",
				StartTime:   "10:00",
				EndTime:     "12:00",
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "end before start rejected",
			req: dto.ConflictCheckRequest{
				FieldID:     "field-1",
				BookingDate: "2026-09-01",
				StartTime:   "12:00",
				EndTime:     "10:00",
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "repository error",
			req: dto.ConflictCheckRequest{
				FieldID:     "field-1",
				BookingDate: "2026-09-01",
				StartTime:   "10:00",
				EndTime:     "12:00",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					FindConflicts(gomock.Any(), "field-1", gomock.Any(), gomock.Any(), gomock.Any(), constant.Empty).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.CheckConflict(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantConflict, res.HasConflict)
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockPromo := promoMocks.NewMockPromotion(ctrl)
	mockFields := fieldServiceMocks.NewMockField(ctrl)
	mockHistory := historyMocks.NewMockLogger(ctrl)
	mockPublisher := notificationMocks.NewMockPublisher(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockPromo, mockFields, mockHistory, mockPublisher, nil, cfg, mockOtel)

	tests := []struct {
		name      string
		actor     service.Actor
		setupMock func()
		wantErr   bool
	}{
		{
			name:  "owner reads own booking",
			actor: service.Actor{ID: ptr("user-1"), Role: constant.RoleCustomer},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(futureBooking(model.StatusPending, model.PaymentStatusPending, "user-1"), nil)
			},
			wantErr: false,
		},
		{
			name:  "customer cannot read another customer's booking",
			actor: service.Actor{ID: ptr("user-2"), Role: constant.RoleCustomer},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(futureBooking(model.StatusPending, model.PaymentStatusPending, "user-1"), nil)
			},
			wantErr: true,
		},
		{
			name:  "staff reads any booking",
			actor: service.Actor{ID: ptr("kasir-1"), Role: constant.RoleKasir},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(futureBooking(model.StatusConfirmed, model.PaymentStatusPaid, "user-1"), nil)
			},
			wantErr: false,
		},
		{
			name:  "unknown booking",
			actor: service.Actor{ID: ptr("kasir-1"), Role: constant.RoleKasir},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Get(context.Background(), "booking-1", tt.actor)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "booking-1", res.ID)
			}
		})
	}
}

func TestBookingService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockPromo := promoMocks.NewMockPromotion(ctrl)
	mockFields := fieldServiceMocks.NewMockField(ctrl)
	mockHistory := historyMocks.NewMockLogger(ctrl)
	mockPublisher := notificationMocks.NewMockPublisher(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockPromo, mockFields, mockHistory, mockPublisher, nil, cfg, mockOtel)

	params := gDto.QueryParams{Page: 1, Limit: 10}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantTotal int
	}{
		{
			name: "successful listing",
			setupMock: func() {
				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)
				mockRepo.EXPECT().
					GetAll(gomock.Any(), params, gomock.Any()).
					Return([]model.Booking{futureBooking(model.StatusPending, model.PaymentStatusPending, "user-1")}, nil)
			},
			wantTotal: 1,
		},
		{
			name: "count error",
			setupMock: func() {
				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "listing error",
			setupMock: func() {
				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)
				mockRepo.EXPECT().
					GetAll(gomock.Any(), params, gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.GetAll(context.Background(), params, gDto.FilterGroup{})

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantTotal, res.TotalData)
			assert.Len(t, res.Bookings, tt.wantTotal)
		})
	}
}

func TestBookingService_UpdatePaymentStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockPromo := promoMocks.NewMockPromotion(ctrl)
	mockFields := fieldServiceMocks.NewMockField(ctrl)
	mockHistory := historyMocks.NewMockLogger(ctrl)
	mockPublisher := notificationMocks.NewMockPublisher(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockPromo, mockFields, mockHistory, mockPublisher, nil, cfg, mockOtel)

	tests := []struct {
		name      string
		req       dto.UpdatePaymentStatusRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "payment status moves without touching the lifecycle",
			req:  dto.UpdatePaymentStatusRequest{PaymentStatus: model.PaymentStatusPaid},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(futureBooking(model.StatusPending, model.PaymentStatusPending, "user-1"), nil)
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, model.PaymentStatusPaid, fields[model.FieldPaymentStatus])
						assert.NotContains(t, fields, model.FieldStatus)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "unknown booking",
			req:  dto.UpdatePaymentStatusRequest{PaymentStatus: model.PaymentStatusPaid},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
		{
			name: "update error",
			req:  dto.UpdatePaymentStatusRequest{PaymentStatus: model.PaymentStatusRefunded},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(futureBooking(model.StatusCancelled, model.PaymentStatusPaid, "user-1"), nil)
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "kasir-1")
			err := svc.UpdatePaymentStatus(ctx, "booking-1", tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// Create's happy path commits inside a transaction and is covered by the
// conflict exclusion constraint at the database level; the validation gates
// in front of it are unit-tested here.
func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockPromo := promoMocks.NewMockPromotion(ctrl)
	mockFields := fieldServiceMocks.NewMockField(ctrl)
	mockHistory := historyMocks.NewMockLogger(ctrl)
	mockPublisher := notificationMocks.NewMockPublisher(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Booking.AdminFee = 5000
	cfg.Booking.NumberPrefix = "FB"

	svc := service.New(mockRepo, mockPromo, mockFields, mockHistory, mockPublisher, nil, cfg, mockOtel)

	activeField := fieldDto.FieldResponse{ID: "field-1", HourlyRate: 150000, Active: true}

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func()
	}{
		{
			name: "malformed slot rejected",
			req: dto.CreateBookingRequest{
				FieldID:     "field-1",
				BookingDate: "2026-09-01",
				StartTime:   "10:00",
				EndTime:     "10:00",
			},
			setupMock: func() {},
		},
		{
			name: "unknown field rejected",
			req: dto.CreateBookingRequest{
				FieldID:     "field-9",
				BookingDate: "2026-09-01",
				StartTime:   "10:00",
				EndTime:     "12:00",
			},
			setupMock: func() {
				mockFields.EXPECT().
					Get(gomock.Any(), "field-9").
					Return(fieldDto.FieldResponse{}, errors.New("field not found"))
			},
		},
		{
			name: "inactive field rejected",
			req: dto.CreateBookingRequest{
				FieldID:     "field-1",
				BookingDate: "2026-09-01",
				StartTime:   "10:00",
				EndTime:     "12:00",
			},
			setupMock: func() {
				mockFields.EXPECT().
					Get(gomock.Any(), "field-1").
					Return(fieldDto.FieldResponse{ID: "field-1", Active: false}, nil)
			},
		},
		{
			name: "unknown promo code rejected",
			req: dto.CreateBookingRequest{
				FieldID:     "field-1",
				BookingDate: "2026-09-01",
				StartTime:   "10:00",
				EndTime:     "12:00",
				PromoCode:   ptr("NOPE"),
			},
			setupMock: func() {
				mockFields.EXPECT().
					Get(gomock.Any(), "field-1").
					Return(activeField, nil)
				mockPromo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(promoModel.Promotion{}, nil)
			},
		},
		{
			name: "expired promo code rejected",
			req: dto.CreateBookingRequest{
				FieldID:     "field-1",
				BookingDate: "2026-09-01",
				StartTime:   "10:00",
				EndTime:     "12:00",
				PromoCode:   ptr("LASTYEAR"),
			},
			setupMock: func() {
				mockFields.EXPECT().
					Get(gomock.Any(), "field-1").
					Return(activeField, nil)
				mockPromo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(promoModel.Promotion{
						ID:         "promo-1",
						Code:       "LASTYEAR",
						Active:     true,
						ValidFrom:  timezone.Now().AddDate(-1, 0, 0),
						ValidUntil: timezone.Now().AddDate(0, 0, -30),
					}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := svc.Create(context.Background(), tt.req, "user-1")

			assert.Error(t, err)
		})
	}
}
