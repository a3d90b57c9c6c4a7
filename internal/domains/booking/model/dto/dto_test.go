package dto_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"futsal/internal/domains/booking/model"
	"futsal/internal/domains/booking/model/dto"
)

func TestCreateBookingRequest_ParseSlot(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.CreateBookingRequest
		wantErr bool
	}{
		{
			name: "valid slot",
			req: dto.CreateBookingRequest{
				BookingDate: "2026-09-01",
				StartTime:   "10:00",
				EndTime:     "12:00",
			},
		},
		{
			name: "bad date format",
			req: dto.CreateBookingRequest{
				BookingDate: "01/09/2026",
				StartTime:   "10:00",
				EndTime:     "12:00",
			},
			wantErr: true,
		},
		{
			name: "bad start time",
			req: dto.CreateBookingRequest{
				BookingDate: "2026-09-01",
				StartTime:   "10am",
				EndTime:     "12:00",
			},
			wantErr: true,
		},
		{
			name: "bad end time",
			req: dto.CreateBookingRequest{
				BookingDate: "2026-09-01",
				StartTime:   "10:00",
				EndTime:     "noon",
			},
			wantErr: true,
		},
		{
			name: "end equals start",
			req: dto.CreateBookingRequest{
				BookingDate: "2026-09-01",
				StartTime:   "10:00",
				EndTime:     "10:00",
			},
			wantErr: true,
		},
		{
			name: "end before start",
			req: dto.CreateBookingRequest{
				BookingDate: "2026-09-01",
				StartTime:   "12:00",
				EndTime:     "10:00",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, start, end, err := tt.req.ParseSlot()

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, 2026, date.Year())
			assert.True(t, end.After(start))
		})
	}
}

func TestNewBookingNumber(t *testing.T) {
	date := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)

	number := dto.NewBookingNumber("FB", date)

	assert.Regexp(t, regexp.MustCompile(`^FB-20260901-[0-9A-F]{6}$`), number)

	// suffixes are random; two numbers for the same slot must differ.
	assert.NotEqual(t, number, dto.NewBookingNumber("FB", date))
}

func TestConflictCheckResponse_FromModels(t *testing.T) {
	var res dto.ConflictCheckResponse

	res.FromModels(nil)
	assert.False(t, res.HasConflict)
	assert.Empty(t, res.Conflicts)

	res.FromModels([]model.Booking{
		{
			ID:            "booking-1",
			BookingNumber: "FB-20260901-ABC123",
			StartTime:     time.Date(0, time.January, 1, 10, 0, 0, 0, time.UTC),
			EndTime:       time.Date(0, time.January, 1, 12, 0, 0, 0, time.UTC),
			Status:        model.StatusConfirmed,
		},
	})

	assert.True(t, res.HasConflict)
	assert.Len(t, res.Conflicts, 1)
	assert.Equal(t, "10:00", res.Conflicts[0].StartTime)
	assert.Equal(t, "12:00", res.Conflicts[0].EndTime)
	assert.Equal(t, model.StatusConfirmed, res.Conflicts[0].Status)
}
