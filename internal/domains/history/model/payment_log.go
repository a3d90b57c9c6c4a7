package model

import "time"

const (
	PaymentLogTableName  = "payment_logs"
	PaymentLogEntityName = "payment_log"

	PaymentLogFieldID        = "id"
	PaymentLogFieldPaymentID = "payment_id"
	PaymentLogFieldCreatedAt = "created_at"
)

const (
	PaymentActionCreated   = "PAYMENT_CREATED"
	PaymentActionProcessed = "PAYMENT_PROCESSED"
	PaymentActionRefunded  = "PAYMENT_REFUNDED"
)

// PaymentLog is the append-only money trail kept alongside booking
// histories. ProcessedBy is nil for gateway-driven changes.
type PaymentLog struct {
	ID              string    `db:"id"`
	PaymentID       string    `db:"payment_id"`
	Action          string    `db:"action"`
	StatusFrom      *string   `db:"status_from"`
	StatusTo        *string   `db:"status_to"`
	RequestPayload  *string   `db:"request_payload"`
	ResponsePayload *string   `db:"response_payload"`
	Amount          float64   `db:"amount"`
	ProcessedBy     *string   `db:"processed_by"`
	CreatedAt       time.Time `db:"created_at"`
}
