package levy

import (
	"context"

	"github.com/adeyemik/union-register/go-api-server/internal/model"
	"gorm.io/gorm"
)

type LevyRepository struct{}

func NewLevyRepository() *LevyRepository {
	return &LevyRepository{}
}

func (r *LevyRepository) Create(ctx context.Context, db *gorm.DB, payment *model.LevyPayment) error {
	return db.WithContext(ctx).Create(payment).Error
}

func (r *LevyRepository) FindByID(ctx context.Context, db *gorm.DB, id uint32) (*model.LevyPayment, error) {
	var payment model.LevyPayment
	err := db.WithContext(ctx).Where("id = ?", id).First(&payment).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *LevyRepository) UpdateAmount(ctx context.Context, db *gorm.DB, id uint32, amount int64) error {
	return db.WithContext(ctx).
		Model(&model.LevyPayment{}).
		Where("id = ?", id).
		Update("amount", amount).Error
}

func (r *LevyRepository) Delete(ctx context.Context, db *gorm.DB, id uint32) error {
	return db.WithContext(ctx).Delete(&model.LevyPayment{}, id).Error
}

func (r *LevyRepository) ListByMember(ctx context.Context, db *gorm.DB, memberID uint32) ([]model.LevyPayment, error) {
	var payments []model.LevyPayment
	err := db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("year, paid_at").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *LevyRepository) ListByMemberYear(ctx context.Context, db *gorm.DB, memberID uint32, year int) ([]model.LevyPayment, error) {
	var payments []model.LevyPayment
	err := db.WithContext(ctx).
		Where("member_id = ? AND year = ?", memberID, year).
		Order("paid_at").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

// TotalPaid sums a member's instalments for one year, optionally excluding
// one payment id (used when re-checking the cap for an edit).
func (r *LevyRepository) TotalPaid(ctx context.Context, db *gorm.DB, memberID uint32, year int, excludeID uint32) (int64, error) {
	query := db.WithContext(ctx).
		Model(&model.LevyPayment{}).
		Where("member_id = ? AND year = ?", memberID, year)

	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var total int64
	err := query.Select("COALESCE(SUM(amount), 0)").Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
