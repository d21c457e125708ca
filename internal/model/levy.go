package model

import "time"

// LevyPayment is one instalment toward a member's fixed annual project levy.
// The invariant - per (member, year) the amounts never sum past the cap -
// is enforced by the levy service inside a transaction, not here.
type LevyPayment struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement"`

	MemberID uint32    `gorm:"column:member_id;not null;index:idx_levy_member"`
	Year     int       `gorm:"column:year;not null;index:idx_levy_year"`
	Amount   int64     `gorm:"column:amount;not null"`
	PaidAt   time.Time `gorm:"column:paid_at;not null"`

	BaseEntity
}

// TableName specifies the table name for LevyPayment
func (*LevyPayment) TableName() string {
	return "levy_payment"
}

// NewLevyPayment creates a levy instalment stamped with the given time.
func NewLevyPayment(memberID uint32, year int, amount int64, paidAt time.Time) *LevyPayment {
	return &LevyPayment{
		MemberID: memberID,
		Year:     year,
		Amount:   amount,
		PaidAt:   paidAt,
	}
}
