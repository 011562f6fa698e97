package dto

// PaymentDetailsRequest rekening tujuan yang ditampilkan ke student.
type PaymentDetailsRequest struct {
	BankName      string `json:"bank_name" validate:"required,min=2,max=100"`
	AccountNumber string `json:"account_number" validate:"required,min=4,max=32"`
	IFSCCode      string `json:"ifsc_code" validate:"omitempty,max=20"`
	UPIID         string `json:"upi_id" validate:"omitempty,max=100"`
}
