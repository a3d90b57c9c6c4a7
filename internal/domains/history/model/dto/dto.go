package dto

import (
	"futsal/internal/domains/history/model"
	"futsal/shared"
	"futsal/shared/constant"
)

type BookingHistoryResponse struct {
	ID        string  `json:"id"`
	BookingID *string `json:"booking_id,omitempty"`
	Action    string  `json:"action"`
	OldStatus *string `json:"old_status,omitempty"`
	NewStatus *string `json:"new_status,omitempty"`
	ChangedBy *string `json:"changed_by,omitempty"`
	Notes     string  `json:"notes"`
	CreatedAt string  `json:"created_at"`
}

func (r *BookingHistoryResponse) FromModel(model model.BookingHistory) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.Action = model.Action
	r.OldStatus = model.OldStatus
	r.NewStatus = model.NewStatus
	r.ChangedBy = model.ChangedBy
	r.Notes = model.Notes
	r.CreatedAt = model.CreatedAt.Format(constant.DateFormat)
}

type GetBookingHistoriesResponse struct {
	Histories []BookingHistoryResponse `json:"histories"`
	TotalPage int                      `json:"total_page"`
	TotalData int                      `json:"total_data"`
}

func (r *GetBookingHistoriesResponse) FromModels(models []model.BookingHistory, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Histories = make([]BookingHistoryResponse, len(models))
	for i, mod := range models {
		r.Histories[i].FromModel(mod)
	}
}

type PurgeResponse struct {
	BookingHistoriesRemoved int64 `json:"booking_histories_removed"`
	PaymentLogsRemoved      int64 `json:"payment_logs_removed"`
}
