package dues

type MarkPaidRequest struct {
	MemberID uint32 `json:"memberId" binding:"required"`
	Year     int    `json:"year" binding:"required"`
	Month    int    `json:"month" binding:"required,min=1,max=12"`
	// Amount is optional: omitted means the configured standard monthly due.
	// Ignored when the (member, year, month) record already exists - the
	// recorded amount is set at creation only.
	Amount *int64 `json:"amount,omitempty" binding:"omitempty,gt=0"`
}

type DuesIDRequest struct {
	ID uint32 `uri:"id" binding:"required"`
}

type DuesResponse struct {
	ID       uint32 `json:"id"`
	MemberID uint32 `json:"memberId"`
	Year     int    `json:"year"`
	Month    int    `json:"month"`
	Amount   int64  `json:"amount"`
	Status   string `json:"status"`
}

type ListDuesResponse struct {
	Dues []DuesResponse `json:"dues"`
}

// MemberPaidDuesResponse is one row of the aggregated "who paid which
// months" view: a member joined with their paid records across the
// supported year range.
type MemberPaidDuesResponse struct {
	MemberID uint32         `json:"memberId"`
	Name     string         `json:"name"`
	PaidDues []DuesResponse `json:"paidDues"`
}

type PaidMembersResponse struct {
	Members []MemberPaidDuesResponse `json:"members"`
}

// YearSummaryResponse reports collections for one year. TotalCollected is
// the sum of the recorded amounts of paid rows, not a per-payment constant
// times the count.
type YearSummaryResponse struct {
	Year           int   `json:"year"`
	PaidCount      int64 `json:"paidCount"`
	TotalCollected int64 `json:"totalCollected"`
}
