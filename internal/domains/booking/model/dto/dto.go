package dto

import (
	"fmt"
	"strings"
	"time"

	"futsal/internal/domains/booking/model"
	"futsal/shared"
	"futsal/shared/constant"
	gDto "futsal/shared/dto"
	"futsal/shared/failure"
	gModel "futsal/shared/model"
	"futsal/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	FieldID     string  `json:"field_id"     validate:"required"`
	BookingDate string  `json:"booking_date" validate:"required"`
	StartTime   string  `json:"start_time"   validate:"required"`
	EndTime     string  `json:"end_time"     validate:"required"`
	PromoCode   *string `json:"promo_code"   validate:"omitempty,max=50"`
	Notes       string  `json:"notes"        validate:"omitempty,max=500"`
}

// ParseSlot turns the wire-format date and wall-clock times into values the
// conflict detector and pricing work with. End must come after start; slots
// never span midnight.
func (c *CreateBookingRequest) ParseSlot() (date, start, end time.Time, err error) {
	date, err = timezone.Parse(constant.BookingDateFormat, c.BookingDate)
	if err != nil {
		return date, start, end, failure.BadRequestFromString("booking_date must be in YYYY-MM-DD format")
	}

	start, err = time.Parse(constant.BookingTimeFormat, c.StartTime)
	if err != nil {
		return date, start, end, failure.BadRequestFromString("start_time must be in HH:MM format")
	}

	end, err = time.Parse(constant.BookingTimeFormat, c.EndTime)
	if err != nil {
		return date, start, end, failure.BadRequestFromString("end_time must be in HH:MM format")
	}

	if !end.After(start) {
		return date, start, end, failure.BadRequestFromString("end_time must be after start_time")
	}

	return date, start, end, nil
}

// NewBookingNumber builds the human-facing reference, e.g. FB-20260829-3FA2C1.
func NewBookingNumber(prefix string, date time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])

	return fmt.Sprintf("%s-%s-%s", prefix, date.Format("20060102"), suffix)
}

type PriceBreakdown struct {
	DurationHours  float64
	BaseAmount     float64
	DiscountAmount float64
	AdminFee       float64
	TotalAmount    float64
}

func (c *CreateBookingRequest) ToModel(userID, bookingNumber string, date, start, end time.Time, price PriceBreakdown) model.Booking {
	return model.Booking{
		ID:             uuid.NewString(),
		BookingNumber:  bookingNumber,
		UserID:         userID,
		FieldID:        c.FieldID,
		BookingDate:    date,
		StartTime:      start,
		EndTime:        end,
		DurationHours:  price.DurationHours,
		BaseAmount:     price.BaseAmount,
		DiscountAmount: price.DiscountAmount,
		AdminFee:       price.AdminFee,
		TotalAmount:    price.TotalAmount,
		Status:         model.StatusPending,
		PaymentStatus:  model.PaymentStatusPending,
		PromoCode:      c.PromoCode,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}
}

type ConflictCheckRequest struct {
	FieldID          string  `json:"field_id"           validate:"required"`
	BookingDate      string  `json:"booking_date"       validate:"required"`
	StartTime        string  `json:"start_time"         validate:"required"`
	EndTime          string  `json:"end_time"           validate:"required"`
	ExcludeBookingID *string `json:"exclude_booking_id" validate:"omitempty"`
}

func (c *ConflictCheckRequest) ParseSlot() (date, start, end time.Time, err error) {
	create := CreateBookingRequest{
		BookingDate: c.BookingDate,
		StartTime:   c.StartTime,
		EndTime:     c.EndTime,
	}

	return create.ParseSlot()
}

// ConflictSlot is the projection of an occupying booking returned to the
// caller so they can pick a free slot.
type ConflictSlot struct {
	BookingID     string `json:"booking_id"`
	BookingNumber string `json:"booking_number"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	Status        string `json:"status"`
}

func (c *ConflictSlot) FromModel(model model.Booking) {
	c.BookingID = model.ID
	c.BookingNumber = model.BookingNumber
	c.StartTime = model.StartTime.Format(constant.BookingTimeFormat)
	c.EndTime = model.EndTime.Format(constant.BookingTimeFormat)
	c.Status = model.Status
}

type ConflictCheckResponse struct {
	HasConflict bool           `json:"has_conflict"`
	Conflicts   []ConflictSlot `json:"conflicts"`
}

func (r *ConflictCheckResponse) FromModels(models []model.Booking) {
	r.HasConflict = len(models) > 0

	r.Conflicts = make([]ConflictSlot, len(models))
	for i, mod := range models {
		r.Conflicts[i].FromModel(mod)
	}
}

type UpdateBookingStatusRequest struct {
	Status               string `json:"status"                 validate:"required,oneof=pending confirmed completed cancelled"`
	Reason               string `json:"reason"                 validate:"omitempty,max=500"`
	OverridePaymentCheck bool   `json:"override_payment_check" validate:"omitempty"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" validate:"required,oneof=pending paid failed refunded"`
}

type BookingResponse struct {
	ID                 string  `json:"id"`
	BookingNumber      string  `json:"booking_number"`
	UserID             string  `json:"user_id"`
	FieldID            string  `json:"field_id"`
	BookingDate        string  `json:"booking_date"`
	StartTime          string  `json:"start_time"`
	EndTime            string  `json:"end_time"`
	DurationHours      float64 `json:"duration_hours"`
	BaseAmount         float64 `json:"base_amount"`
	DiscountAmount     float64 `json:"discount_amount"`
	AdminFee           float64 `json:"admin_fee"`
	TotalAmount        float64 `json:"total_amount"`
	Status             string  `json:"status"`
	PaymentStatus      string  `json:"payment_status"`
	PromoCode          *string `json:"promo_code,omitempty"`
	ConfirmedBy        *string `json:"confirmed_by,omitempty"`
	ConfirmedAt        *string `json:"confirmed_at,omitempty"`
	CancelledBy        *string `json:"cancelled_by,omitempty"`
	CancelledAt        *string `json:"cancelled_at,omitempty"`
	CancellationReason *string `json:"cancellation_reason,omitempty"`
	CompletedBy        *string `json:"completed_by,omitempty"`
	CompletedAt        *string `json:"completed_at,omitempty"`
	gDto.Metadata
}

func formatTimestamp(t *time.Time) *string {
	if t == nil {
		return nil
	}

	formatted := t.Format(constant.DateFormat)

	return &formatted
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.BookingNumber = model.BookingNumber
	r.UserID = model.UserID
	r.FieldID = model.FieldID
	r.BookingDate = model.BookingDate.Format(constant.BookingDateFormat)
	r.StartTime = model.StartTime.Format(constant.BookingTimeFormat)
	r.EndTime = model.EndTime.Format(constant.BookingTimeFormat)
	r.DurationHours = model.DurationHours
	r.BaseAmount = model.BaseAmount
	r.DiscountAmount = model.DiscountAmount
	r.AdminFee = model.AdminFee
	r.TotalAmount = model.TotalAmount
	r.Status = model.Status
	r.PaymentStatus = model.PaymentStatus
	r.PromoCode = model.PromoCode
	r.ConfirmedBy = model.ConfirmedBy
	r.ConfirmedAt = formatTimestamp(model.ConfirmedAt)
	r.CancelledBy = model.CancelledBy
	r.CancelledAt = formatTimestamp(model.CancelledAt)
	r.CancellationReason = model.CancellationReason
	r.CompletedBy = model.CompletedBy
	r.CompletedAt = formatTimestamp(model.CompletedAt)
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// StatusUpdateResponse is the minimal projection returned after a
// transition commits.
type StatusUpdateResponse struct {
	ID            string `json:"id"`
	BookingNumber string `json:"booking_number"`
	Status        string `json:"status"`
	UpdatedAt     string `json:"updated_at"`
}

func (r *StatusUpdateResponse) FromModel(model model.Booking, updatedAt time.Time) {
	r.ID = model.ID
	r.BookingNumber = model.BookingNumber
	r.Status = model.Status
	r.UpdatedAt = updatedAt.Format(constant.DateFormat)
}
