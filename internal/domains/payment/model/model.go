package model

import (
	"time"

	"futsal/shared/model"
)

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID              = "id"
	FieldBookingID       = "booking_id"
	FieldAmount          = "amount"
	FieldMethod          = "method"
	FieldStatus          = "status"
	FieldGatewayResponse = "gateway_response"
	FieldPaidAt          = "paid_at"
)

const (
	StatusPending  = "pending"
	StatusPaid     = "paid"
	StatusFailed   = "failed"
	StatusRefunded = "refunded"

	// StatusCancelled marks a deleted payment row. Cancelled payments stop
	// driving the booking's payment_status but stay on record.
	StatusCancelled = "cancelled"
)

func IsValidStatus(status string) bool {
	return status == StatusPending || status == StatusPaid ||
		status == StatusFailed || status == StatusRefunded
}

type Payment struct {
	ID              string     `db:"id"`
	BookingID       string     `db:"booking_id"`
	Amount          float64    `db:"amount"`
	Method          string     `db:"method"`
	Status          string     `db:"status"`
	GatewayResponse *string    `db:"gateway_response"`
	PaidAt          *time.Time `db:"paid_at"`
	model.Metadata
}
