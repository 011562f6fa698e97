package dto

type CreatePaymentRequest struct {
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Currency string  `json:"currency" validate:"omitempty,len=3"`
	Type     string  `json:"type" validate:"required,oneof=course_fee subscription teacher_payout"`
}

type SetPaymentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending success failed"`
}
