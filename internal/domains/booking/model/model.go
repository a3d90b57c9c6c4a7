package model

import (
	"slices"
	"time"

	"futsal/shared/model"
	"futsal/shared/timezone"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID                 = "id"
	FieldBookingNumber      = "booking_number"
	FieldUserID             = "user_id"
	FieldFieldID            = "field_id"
	FieldBookingDate        = "booking_date"
	FieldStartTime          = "start_time"
	FieldEndTime            = "end_time"
	FieldStatus             = "status"
	FieldPaymentStatus      = "payment_status"
	FieldConfirmedBy        = "confirmed_by"
	FieldConfirmedAt        = "confirmed_at"
	FieldCancelledBy        = "cancelled_by"
	FieldCancelledAt        = "cancelled_at"
	FieldCancellationReason = "cancellation_reason"
	FieldCompletedBy        = "completed_by"
	FieldCompletedAt        = "completed_at"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusFailed   = "failed"
	PaymentStatusRefunded = "refunded"
)

// ActiveStatuses are the statuses that occupy a time slot. Cancelled
// bookings free the slot for rebooking.
var ActiveStatuses = []string{StatusPending, StatusConfirmed, StatusCompleted}

var allowedTransitions = map[string][]string{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

func IsValidStatus(status string) bool {
	return status == StatusPending || status == StatusConfirmed ||
		status == StatusCompleted || status == StatusCancelled
}

func IsValidPaymentStatus(status string) bool {
	return status == PaymentStatusPending || status == PaymentStatusPaid ||
		status == PaymentStatusFailed || status == PaymentStatusRefunded
}

// IsTerminalStatus reports whether a status ends the lifecycle. Terminal
// bookings accept no further transitions, whoever asks.
func IsTerminalStatus(status string) bool {
	return status == StatusCompleted || status == StatusCancelled
}

// CanTransition reports whether the lifecycle allows moving from one status
// to the other.
func CanTransition(from, to string) bool {
	return slices.Contains(allowedTransitions[from], to)
}

type Booking struct {
	ID                 string     `db:"id"`
	BookingNumber      string     `db:"booking_number"`
	UserID             string     `db:"user_id"`
	FieldID            string     `db:"field_id"`
	BookingDate        time.Time  `db:"booking_date"`
	StartTime          time.Time  `db:"start_time"`
	EndTime            time.Time  `db:"end_time"`
	DurationHours      float64    `db:"duration_hours"`
	BaseAmount         float64    `db:"base_amount"`
	DiscountAmount     float64    `db:"discount_amount"`
	AdminFee           float64    `db:"admin_fee"`
	TotalAmount        float64    `db:"total_amount"`
	Status             string     `db:"status"`
	PaymentStatus      string     `db:"payment_status"`
	PromoCode          *string    `db:"promo_code"`
	ConfirmedBy        *string    `db:"confirmed_by"`
	ConfirmedAt        *time.Time `db:"confirmed_at"`
	CancelledBy        *string    `db:"cancelled_by"`
	CancelledAt        *time.Time `db:"cancelled_at"`
	CancellationReason *string    `db:"cancellation_reason"`
	CompletedBy        *string    `db:"completed_by"`
	CompletedAt        *time.Time `db:"completed_at"`
	ReminderSent       bool       `db:"reminder_sent"`
	model.Metadata
}

// StartInstant resolves the stored date plus wall-clock start time into an
// instant in the facility timezone.
func (b *Booking) StartInstant() time.Time {
	return b.instantAt(b.StartTime)
}

// EndInstant resolves the stored date plus wall-clock end time into an
// instant in the facility timezone.
func (b *Booking) EndInstant() time.Time {
	return b.instantAt(b.EndTime)
}

func (b *Booking) instantAt(clock time.Time) time.Time {
	return time.Date(
		b.BookingDate.Year(), b.BookingDate.Month(), b.BookingDate.Day(),
		clock.Hour(), clock.Minute(), 0, 0,
		timezone.GetLocation(),
	)
}

// HasSlot reports whether the row carries a usable date and time pair.
// Rows that fail this are skipped by the auto-completion sweep.
func (b *Booking) HasSlot() bool {
	return !b.BookingDate.IsZero() && !b.EndTime.IsZero()
}
