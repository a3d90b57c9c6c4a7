package dto

import (
	"fmt"
	"time"

	bookingModel "futsal/internal/domains/booking/model"
	"futsal/internal/domains/payment/model"
	"futsal/shared"
	"futsal/shared/constant"
	gDto "futsal/shared/dto"
	gModel "futsal/shared/model"
	"futsal/shared/timezone"

	"github.com/google/uuid"
)

type CreatePaymentRequest struct {
	BookingID string  `json:"booking_id" validate:"required"`
	Amount    float64 `json:"amount"     validate:"required,gt=0"`
	Method    string  `json:"method"     validate:"required,max=50"`
	Status    string  `json:"status"     validate:"omitempty,oneof=pending paid"`
}

func (c *CreatePaymentRequest) ToModel(user string) model.Payment {
	status := model.StatusPending
	if c.Status != "" {
		status = c.Status
	}

	var paidAt *time.Time
	if status == model.StatusPaid {
		now := timezone.Now()
		paidAt = &now
	}

	return model.Payment{
		ID:        uuid.NewString(),
		BookingID: c.BookingID,
		Amount:    c.Amount,
		Method:    c.Method,
		Status:    status,
		PaidAt:    paidAt,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdatePaymentStatusRequest struct {
	Status          string  `json:"status"           validate:"required,oneof=pending paid failed refunded"`
	GatewayResponse *string `json:"gateway_response" validate:"omitempty"`
}

type PaymentResponse struct {
	ID              string  `json:"id"`
	BookingID       string  `json:"booking_id"`
	Amount          float64 `json:"amount"`
	Method          string  `json:"method"`
	Status          string  `json:"status"`
	GatewayResponse *string `json:"gateway_response,omitempty"`
	PaidAt          *string `json:"paid_at,omitempty"`
	Placeholder     bool    `json:"placeholder,omitempty"`
	gDto.Metadata
}

func (r *PaymentResponse) FromModel(model model.Payment) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.Amount = model.Amount
	r.Method = model.Method
	r.Status = model.Status
	r.GatewayResponse = model.GatewayResponse

	if model.PaidAt != nil {
		paidAt := model.PaidAt.Format(constant.DateFormat)
		r.PaidAt = &paidAt
	}

	r.Metadata.FromModel(model.Metadata)
}

// FromBookingPlaceholder synthesizes the implicit-pending view for a booking
// with no payment row yet. The id is deterministic so clients can treat it
// as a stable reference until a real payment exists.
func (r *PaymentResponse) FromBookingPlaceholder(booking bookingModel.Booking) {
	r.ID = fmt.Sprintf("booking_%s", booking.ID)
	r.BookingID = booking.ID
	r.Amount = booking.TotalAmount
	r.Status = booking.PaymentStatus
	r.Placeholder = true
}

type GetPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetPaymentsResponse) FromModels(models []model.Payment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Payments = make([]PaymentResponse, len(models))
	for i, mod := range models {
		r.Payments[i].FromModel(mod)
	}
}
