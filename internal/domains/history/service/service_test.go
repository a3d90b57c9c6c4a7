package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"futsal/config"
	"futsal/infras/otel/mocks"
	historyMocks "futsal/internal/domains/history/mocks"
	"futsal/internal/domains/history/model"
	"futsal/internal/domains/history/service"
	gDto "futsal/shared/dto"
)

func ptr(s string) *string {
	return &s
}

func newLogger(repo *historyMocks.MockBookingHistory, paymentRepo *historyMocks.MockPaymentLog, queueSize int) service.Logger {
	cfg := &config.Config{}
	cfg.Booking.HistoryQueueSize = queueSize
	cfg.Booking.HistoryRetentionDays = 365

	return service.New(repo, paymentRepo, cfg, mocks.NewOtel())
}

func TestHistoryLogger_DrainsQueueOnClose(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := historyMocks.NewMockBookingHistory(ctrl)
	mockPaymentRepo := historyMocks.NewMockPaymentLog(ctrl)

	svc := newLogger(mockRepo, mockPaymentRepo, 8)

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry model.BookingHistory) error {
			assert.Equal(t, model.ActionCreated, entry.Action)
			assert.Equal(t, "booking-1", *entry.BookingID)

			return nil
		})
	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry model.BookingHistory) error {
			assert.Equal(t, model.StatusChangeAction("pending", "confirmed"), entry.Action)
			assert.Equal(t, "pending", *entry.OldStatus)
			assert.Equal(t, "confirmed", *entry.NewStatus)

			return nil
		})
	mockPaymentRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry model.PaymentLog) error {
			assert.Equal(t, model.PaymentActionCreated, entry.Action)
			assert.Equal(t, "payment-1", entry.PaymentID)
			assert.Equal(t, 155000.0, entry.Amount)

			return nil
		})

	svc.LogBookingCreated("booking-1", ptr("user-1"), "Booking created")
	svc.LogStatusChange("booking-1", "pending", "confirmed", ptr("admin-1"), "paid in full")
	svc.LogPaymentCreation("payment-1", 155000, "paid", nil, ptr("kasir-1"))

	go svc.Run()
	svc.Close()
}

func TestHistoryLogger_FullQueueDropsEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := historyMocks.NewMockBookingHistory(ctrl)
	mockPaymentRepo := historyMocks.NewMockPaymentLog(ctrl)

	svc := newLogger(mockRepo, mockPaymentRepo, 1)

	// one entry fills the buffer; the rest are dropped, never written.
	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)

	svc.LogBookingCreated("booking-1", nil, "Booking created")
	svc.LogBookingCreated("booking-2", nil, "Booking created")
	svc.LogBookingCreated("booking-3", nil, "Booking created")

	go svc.Run()
	svc.Close()
}

func TestHistoryLogger_WriteFailureNeverPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := historyMocks.NewMockBookingHistory(ctrl)
	mockPaymentRepo := historyMocks.NewMockPaymentLog(ctrl)

	svc := newLogger(mockRepo, mockPaymentRepo, 8)

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Return(errors.New("database error"))

	svc.LogAutoCompleteError("booking-1", "auto-completion failed")

	go svc.Run()
	svc.Close()
}

func TestHistoryLogger_GetBookingHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := historyMocks.NewMockBookingHistory(ctrl)
	mockPaymentRepo := historyMocks.NewMockPaymentLog(ctrl)

	svc := newLogger(mockRepo, mockPaymentRepo, 8)

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
					Return(2, nil)
				mockRepo.EXPECT().
					GetAll(gomock.Any(), params, gomock.Any()).
					Return([]model.BookingHistory{
						{ID: "hist-1", BookingID: ptr("booking-1"), Action: model.ActionCreated},
						{ID: "hist-2", BookingID: ptr("booking-1"), Action: model.StatusChangeAction("pending", "confirmed")},
					}, nil)
			},
			wantTotal: 2,
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
					Return(2, nil)
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

			res, err := svc.GetBookingHistory(context.Background(), "booking-1", params)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantTotal, res.TotalData)
			assert.Len(t, res.Histories, tt.wantTotal)
		})
	}
}

func TestHistoryLogger_PurgeOlderThan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := historyMocks.NewMockBookingHistory(ctrl)
	mockPaymentRepo := historyMocks.NewMockPaymentLog(ctrl)

	svc := newLogger(mockRepo, mockPaymentRepo, 8)

	tests := []struct {
		name      string
		days      int
		setupMock func()
		wantErr   bool
	}{
		{
			name: "explicit retention window purges both ledgers",
			days: 30,
			setupMock: func() {
				mockRepo.EXPECT().
					PurgeOlderThan(gomock.Any(), gomock.Any()).
					Return(int64(12), nil)
				mockPaymentRepo.EXPECT().
					PurgeOlderThan(gomock.Any(), gomock.Any()).
					Return(int64(4), nil)
			},
		},
		{
			name: "non-positive days falls back to the configured default",
			days: 0,
			setupMock: func() {
				mockRepo.EXPECT().
					PurgeOlderThan(gomock.Any(), gomock.Any()).
					Return(int64(0), nil)
				mockPaymentRepo.EXPECT().
					PurgeOlderThan(gomock.Any(), gomock.Any()).
					Return(int64(0), nil)
			},
		},
		{
			name: "booking history purge failure stops the pass",
			days: 30,
			setupMock: func() {
				mockRepo.EXPECT().
					PurgeOlderThan(gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.PurgeOlderThan(context.Background(), tt.days)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.GreaterOrEqual(t, res.BookingHistoriesRemoved, int64(0))
		})
	}
}
