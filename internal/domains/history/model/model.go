package model

import (
	"fmt"
	"strings"
	"time"
)

const (
	TableName  = "booking_histories"
	EntityName = "booking_history"

	FieldID        = "id"
	FieldBookingID = "booking_id"
	FieldAction    = "action"
	FieldOldStatus = "old_status"
	FieldNewStatus = "new_status"
	FieldChangedBy = "changed_by"
	FieldNotes     = "notes"
	FieldCreatedAt = "created_at"
)

const (
	ActionCreated             = "CREATED"
	ActionAutoCompleteError   = "AUTO_COMPLETE_ERROR"
	ActionAutoCompleteSummary = "AUTO_COMPLETE_SUMMARY"
)

// StatusChangeAction builds the canonical audit label for a transition,
// e.g. STATUS_CHANGE_PENDING_TO_CONFIRMED.
func StatusChangeAction(oldStatus, newStatus string) string {
	return fmt.Sprintf("STATUS_CHANGE_%s_TO_%s", strings.ToUpper(oldStatus), strings.ToUpper(newStatus))
}

// BookingHistory is an append-only audit row. ChangedBy is nil for entries
// written by the system rather than a user. BookingID is nil only for
// batch-level entries such as the auto-completion summary.
type BookingHistory struct {
	ID        string    `db:"id"`
	BookingID *string   `db:"booking_id"`
	Action    string    `db:"action"`
	OldStatus *string   `db:"old_status"`
	NewStatus *string   `db:"new_status"`
	ChangedBy *string   `db:"changed_by"`
	Notes     string    `db:"notes"`
	CreatedAt time.Time `db:"created_at"`
}
