package model

// Monthly dues payment states.
const (
	DuesStatusPaid    = "paid"
	DuesStatusPending = "pending"
)

// MonthlyDue records one member's dues for one (year, month).
// A row exists only once a payment event has occurred; absence means
// unpaid/unrecorded. The amount is set at creation and never edited -
// marking a month unpaid flips the status to pending but keeps the row,
// so paid -> pending -> paid round-trips without amount re-entry.
type MonthlyDue struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement"`

	MemberID uint32 `gorm:"column:member_id;not null;index:idx_dues_member;uniqueIndex:idx_dues_member_year_month"`
	Year     int    `gorm:"column:year;not null;index:idx_dues_year;uniqueIndex:idx_dues_member_year_month"`
	Month    int    `gorm:"column:month;not null;uniqueIndex:idx_dues_member_year_month"`
	Amount   int64  `gorm:"column:amount;not null"` // whole currency units
	Status   string `gorm:"column:status;size:10;not null"`

	BaseEntity
}

// TableName specifies the table name for MonthlyDue
func (*MonthlyDue) TableName() string {
	return "monthly_due"
}

// NewMonthlyDue creates a paid dues record for (member, year, month).
func NewMonthlyDue(memberID uint32, year, month int, amount int64) *MonthlyDue {
	return &MonthlyDue{
		MemberID: memberID,
		Year:     year,
		Month:    month,
		Amount:   amount,
		Status:   DuesStatusPaid,
	}
}
