package model

import "time"

// Fine payment states.
const (
	FineStatusPaid   = "paid"
	FineStatusUnpaid = "unpaid"
)

// Fine is a penalty charged to a member. Status toggles independently of
// amount/reason edits; fines may be deleted outright.
type Fine struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement"`

	MemberID uint32    `gorm:"column:member_id;not null;index:idx_fine_member"`
	Amount   int64     `gorm:"column:amount;not null"`
	Reason   string    `gorm:"column:reason;size:500;not null"`
	Status   string    `gorm:"column:status;size:10;not null;index:idx_fine_status"`
	IssuedAt time.Time `gorm:"column:issued_at;not null"`

	BaseEntity
}

// TableName specifies the table name for Fine
func (*Fine) TableName() string {
	return "fine"
}

// NewFine creates an unpaid fine stamped with the given time.
func NewFine(memberID uint32, amount int64, reason string, issuedAt time.Time) *Fine {
	return &Fine{
		MemberID: memberID,
		Amount:   amount,
		Reason:   reason,
		Status:   FineStatusUnpaid,
		IssuedAt: issuedAt,
	}
}
