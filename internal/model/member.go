package model

// Member is an admitted member of the organization.
// The access code is the member's only credential: issued once at admission,
// immutable afterwards, and unique across all members. NormalizedName backs
// the duplicate-name invariant (case-folded, whitespace-collapsed,
// word-order-independent), enforced by its unique index.
//
// Members are never deleted in the current scope, so the ledger tables'
// member references cannot dangle.
type Member struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement"`

	Name           string `gorm:"column:name;size:100;not null"`
	NormalizedName string `gorm:"column:normalized_name;size:100;not null;uniqueIndex:idx_member_normalized_name"`
	AccessCode     string `gorm:"column:access_code;size:6;not null;uniqueIndex:idx_member_access_code"`
	IsAdmin        bool   `gorm:"column:is_admin;not null;default:false"`

	BaseEntity
}

// TableName specifies the table name for Member
func (*Member) TableName() string {
	return "member"
}

// NewMember creates a new non-admin Member.
// Name must already be trimmed and normalizedName derived by the directory.
func NewMember(name, normalizedName, accessCode string) *Member {
	return &Member{
		Name:           name,
		NormalizedName: normalizedName,
		AccessCode:     accessCode,
		IsAdmin:        false,
	}
}
