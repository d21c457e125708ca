package levy

import "time"

type AddPaymentRequest struct {
	MemberID uint32 `json:"memberId" binding:"required"`
	Year     int    `json:"year" binding:"required,levyyear"`
	Amount   int64  `json:"amount" binding:"required,gt=0"`
}

type UpdatePaymentRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

type PaymentIDRequest struct {
	ID uint32 `uri:"id" binding:"required"`
}

type PaymentResponse struct {
	ID       uint32    `json:"id"`
	MemberID uint32    `json:"memberId"`
	Year     int       `json:"year"`
	Amount   int64     `json:"amount"`
	PaidAt   time.Time `json:"paidAt"`
}

// YearSummary gives the cap arithmetic for one (member, year).
type YearSummary struct {
	Year      int   `json:"year"`
	TotalPaid int64 `json:"totalPaid"`
	Remaining int64 `json:"remaining"`
}

type ListPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	Summaries []YearSummary     `json:"summaries"`
}
