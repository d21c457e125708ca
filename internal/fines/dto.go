package fines

import "time"

type AddFineRequest struct {
	MemberID uint32 `json:"memberId" binding:"required"`
	Amount   int64  `json:"amount" binding:"required,gt=0"`
	Reason   string `json:"reason" binding:"required,min=1,max=500"`
}

// UpdateFineRequest is a partial patch: each field independently optional.
// Present fields are re-validated here - the ledger does not trust the
// caller's form validation.
type UpdateFineRequest struct {
	Amount *int64  `json:"amount,omitempty" binding:"omitempty,gt=0"`
	Reason *string `json:"reason,omitempty" binding:"omitempty,min=1,max=500"`
	Status *string `json:"status,omitempty" binding:"omitempty,oneof=paid unpaid"`
}

type FineIDRequest struct {
	ID uint32 `uri:"id" binding:"required"`
}

type FineResponse struct {
	ID       uint32    `json:"id"`
	MemberID uint32    `json:"memberId"`
	Amount   int64     `json:"amount"`
	Reason   string    `json:"reason"`
	Status   string    `json:"status"`
	IssuedAt time.Time `json:"issuedAt"`
}

// FineTotals are the per-member reductions over the fine set.
type FineTotals struct {
	Total  int64 `json:"total"`
	Paid   int64 `json:"paid"`
	Unpaid int64 `json:"unpaid"`
}

type ListFinesResponse struct {
	Fines  []FineResponse `json:"fines"`
	Totals FineTotals     `json:"totals"`
}
