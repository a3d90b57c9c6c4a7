package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"futsal/config"
	"futsal/infras/otel/mocks"
	bookingMocks "futsal/internal/domains/booking/mocks"
	bookingModel "futsal/internal/domains/booking/model"
	historyMocks "futsal/internal/domains/history/mocks"
	paymentMocks "futsal/internal/domains/payment/mocks"
	"futsal/internal/domains/payment/model"
	"futsal/internal/domains/payment/model/dto"
	"futsal/internal/domains/payment/service"
	"futsal/shared/constant"
)

func TestPaymentService_GetByBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := paymentMocks.NewMockPayment(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockHistory := historyMocks.NewMockLogger(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockBookingRepo, mockHistory, nil, cfg, mockOtel)

	booking := bookingModel.Booking{
		ID:            "booking-1",
		BookingNumber: "FB-20260901-ABC123",
		TotalAmount:   305000,
		Status:        bookingModel.StatusPending,
		PaymentStatus: bookingModel.PaymentStatusPending,
	}

	tests := []struct {
		name            string
		setupMock       func()
		wantErr         bool
		wantPlaceholder bool
		wantID          string
	}{
		{
			name: "booking without payment gets the implicit-pending view",
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Payment{}, nil)
			},
			wantPlaceholder: true,
			wantID:          "booking_booking-1",
		},
		{
			name: "recorded payment wins over the placeholder",
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Payment{{
						ID:        "payment-1",
						BookingID: "booking-1",
						Amount:    305000,
						Method:    "cash",
						Status:    model.StatusPaid,
					}}, nil)
			},
			wantID: "payment-1",
		},
		{
			name: "unknown booking",
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookingModel.Booking{}, nil)
			},
			wantErr: true,
		},
		{
			name: "payment lookup error",
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.GetByBooking(context.Background(), "booking-1")

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantID, res.ID)
			assert.Equal(t, tt.wantPlaceholder, res.Placeholder)
		})
	}
}

func TestPaymentService_CreateRejections(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := paymentMocks.NewMockPayment(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockHistory := historyMocks.NewMockLogger(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockBookingRepo, mockHistory, nil, cfg, mockOtel)

	req := dto.CreatePaymentRequest{
		BookingID: "booking-1",
		Amount:    305000,
		Method:    "cash",
		Status:    model.StatusPaid,
	}

	tests := []struct {
		name      string
		setupMock func()
	}{
		{
			name: "cancelled booking takes no payment",
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookingModel.Booking{
						ID:     "booking-1",
						Status: bookingModel.StatusCancelled,
					}, nil)
			},
		},
		{
			name: "unknown booking",
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookingModel.Booking{}, nil)
			},
		},
		{
			name: "booking lookup error",
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookingModel.Booking{}, errors.New("database error"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "kasir-1")
			_, err := svc.Create(ctx, req)

			assert.Error(t, err)
		})
	}
}

func TestPaymentService_UpdateStatusRejectsCancelledPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := paymentMocks.NewMockPayment(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockHistory := historyMocks.NewMockLogger(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockBookingRepo, mockHistory, nil, cfg, mockOtel)

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Payment{
			ID:        "payment-1",
			BookingID: "booking-1",
			Status:    model.StatusCancelled,
		}, nil)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "kasir-1")
	_, err := svc.UpdateStatus(ctx, "payment-1", dto.UpdatePaymentStatusRequest{Status: model.StatusPaid})

	assert.Error(t, err)
}

func TestPaymentService_DeleteIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := paymentMocks.NewMockPayment(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockHistory := historyMocks.NewMockLogger(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockBookingRepo, mockHistory, nil, cfg, mockOtel)

	// already cancelled: nothing to write, no error either.
	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Payment{
			ID:        "payment-1",
			BookingID: "booking-1",
			Status:    model.StatusCancelled,
		}, nil)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
	err := svc.Delete(ctx, "payment-1")

	assert.NoError(t, err)
}
