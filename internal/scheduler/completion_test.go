package scheduler_test

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
	bookingModel "futsal/internal/domains/booking/model"
	"futsal/internal/domains/booking/model/dto"
	bookingService "futsal/internal/domains/booking/service"
	bookingServiceMocks "futsal/internal/domains/booking/service/mocks"
	historyMocks "futsal/internal/domains/history/mocks"
	"futsal/internal/scheduler"
	"futsal/shared/timezone"
)

func clockAt(hour, minute int) time.Time {
	return time.Date(0, time.January, 1, hour, minute, 0, 0, time.UTC)
}

// endedBooking ended yesterday, far past any reasonable grace period.
func endedBooking(id string) bookingModel.Booking {
	return bookingModel.Booking{
		ID:            id,
		BookingNumber: "FB-20260828-ABC123",
		UserID:        "user-1",
		FieldID:       "field-1",
		BookingDate:   timezone.Now().AddDate(0, 0, -1),
		StartTime:     clockAt(10, 0),
		EndTime:       clockAt(12, 0),
		Status:        bookingModel.StatusConfirmed,
		PaymentStatus: bookingModel.PaymentStatusPaid,
	}
}

func TestCompletion_Sweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockBookings := bookingServiceMocks.NewMockBooking(ctrl)
	mockHistory := historyMocks.NewMockLogger(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Booking.CompletionGraceMinutes = 15

	completion := scheduler.New(mockRepo, mockBookings, mockHistory, cfg, mockOtel)

	tests := []struct {
		name        string
		triggeredBy *string
		setupMock   func()
		wantErr     bool
		wantResult  scheduler.SweepResult
	}{
		{
			name: "nothing eligible",
			setupMock: func() {
				mockRepo.EXPECT().
					FindEligibleForCompletion(gomock.Any(), gomock.Any()).
					Return([]bookingModel.Booking{}, nil)
			},
			wantResult: scheduler.SweepResult{},
		},
		{
			name: "ended booking completes and a summary is written",
			setupMock: func() {
				mockRepo.EXPECT().
					FindEligibleForCompletion(gomock.Any(), gomock.Any()).
					Return([]bookingModel.Booking{endedBooking("booking-1")}, nil)
				mockBookings.EXPECT().
					UpdateStatus(gomock.Any(), "booking-1", gomock.Any(), bookingService.Actor{}).
					DoAndReturn(func(_ context.Context, _ string, req dto.UpdateBookingStatusRequest, _ bookingService.Actor) (dto.StatusUpdateResponse, error) {
						assert.Equal(t, bookingModel.StatusCompleted, req.Status)

						return dto.StatusUpdateResponse{ID: "booking-1", Status: req.Status}, nil
					})
				mockHistory.EXPECT().
					LogAutoCompleteSummary(gomock.Any(), nil)
			},
			wantResult: scheduler.SweepResult{Examined: 1, Completed: 1},
		},
		{
			name: "booking still inside the grace period is left alone",
			setupMock: func() {
				booking := endedBooking("booking-2")
				booking.BookingDate = timezone.Now()
				booking.EndTime = clockAt(timezone.Now().Hour(), timezone.Now().Minute())

				mockRepo.EXPECT().
					FindEligibleForCompletion(gomock.Any(), gomock.Any()).
					Return([]bookingModel.Booking{booking}, nil)
			},
			wantResult: scheduler.SweepResult{Examined: 1},
		},
		{
			name: "booking that ended fourteen minutes ago stays confirmed",
			setupMock: func() {
				ended := timezone.Now().Add(-14 * time.Minute)

				booking := endedBooking("booking-6")
				booking.BookingDate = ended
				booking.EndTime = clockAt(ended.Hour(), ended.Minute())

				mockRepo.EXPECT().
					FindEligibleForCompletion(gomock.Any(), gomock.Any()).
					Return([]bookingModel.Booking{booking}, nil)
			},
			wantResult: scheduler.SweepResult{Examined: 1},
		},
		{
			name: "booking that ended sixteen minutes ago completes",
			setupMock: func() {
				ended := timezone.Now().Add(-16 * time.Minute)

				booking := endedBooking("booking-7")
				booking.BookingDate = ended
				booking.EndTime = clockAt(ended.Hour(), ended.Minute())

				mockRepo.EXPECT().
					FindEligibleForCompletion(gomock.Any(), gomock.Any()).
					Return([]bookingModel.Booking{booking}, nil)
				mockBookings.EXPECT().
					UpdateStatus(gomock.Any(), "booking-7", gomock.Any(), bookingService.Actor{}).
					Return(dto.StatusUpdateResponse{ID: "booking-7", Status: bookingModel.StatusCompleted}, nil)
				mockHistory.EXPECT().
					LogAutoCompleteSummary(gomock.Any(), nil)
			},
			wantResult: scheduler.SweepResult{Examined: 1, Completed: 1},
		},
		{
			name: "malformed slot is skipped with an audit entry",
			setupMock: func() {
				booking := endedBooking("booking-3")
				booking.BookingDate = time.Time{}

				mockRepo.EXPECT().
					FindEligibleForCompletion(gomock.Any(), gomock.Any()).
					Return([]bookingModel.Booking{booking}, nil)
				mockHistory.EXPECT().
					LogAutoCompleteError("booking-3", gomock.Any())
			},
			wantResult: scheduler.SweepResult{Examined: 1, Skipped: 1},
		},
		{
			name: "one failing row does not abort the batch",
			setupMock: func() {
				mockRepo.EXPECT().
					FindEligibleForCompletion(gomock.Any(), gomock.Any()).
					Return([]bookingModel.Booking{endedBooking("booking-4"), endedBooking("booking-5")}, nil)
				mockBookings.EXPECT().
					UpdateStatus(gomock.Any(), "booking-4", gomock.Any(), bookingService.Actor{}).
					Return(dto.StatusUpdateResponse{}, errors.New("database error"))
				mockHistory.EXPECT().
					LogAutoCompleteError("booking-4", gomock.Any())
				mockBookings.EXPECT().
					UpdateStatus(gomock.Any(), "booking-5", gomock.Any(), bookingService.Actor{}).
					Return(dto.StatusUpdateResponse{ID: "booking-5", Status: bookingModel.StatusCompleted}, nil)
				mockHistory.EXPECT().
					LogAutoCompleteSummary(gomock.Any(), nil)
			},
			wantResult: scheduler.SweepResult{Examined: 2, Completed: 1, Skipped: 1},
		},
		{
			name: "batch fetch failure is fatal",
			setupMock: func() {
				mockRepo.EXPECT().
					FindEligibleForCompletion(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := completion.Sweep(context.Background(), tt.triggeredBy)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantResult, res)
		})
	}
}

func TestCompletion_SweepManualTrigger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockBookings := bookingServiceMocks.NewMockBooking(ctrl)
	mockHistory := historyMocks.NewMockLogger(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Booking.CompletionGraceMinutes = 15

	completion := scheduler.New(mockRepo, mockBookings, mockHistory, cfg, mockOtel)

	adminID := "admin-1"

	mockRepo.EXPECT().
		FindEligibleForCompletion(gomock.Any(), gomock.Any()).
		Return([]bookingModel.Booking{endedBooking("booking-1")}, nil)
	mockBookings.EXPECT().
		UpdateStatus(gomock.Any(), "booking-1", gomock.Any(), bookingService.Actor{ID: &adminID}).
		Return(dto.StatusUpdateResponse{ID: "booking-1", Status: bookingModel.StatusCompleted}, nil)
	mockHistory.EXPECT().
		LogAutoCompleteSummary(gomock.Any(), &adminID).
		Do(func(notes string, _ *string) {
			assert.Contains(t, notes, "triggered manually")
		})

	res, err := completion.Sweep(context.Background(), &adminID)

	assert.NoError(t, err)
	assert.Equal(t, scheduler.SweepResult{Examined: 1, Completed: 1}, res)
}
