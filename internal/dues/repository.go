package dues

import (
	"context"

	"github.com/adeyemik/union-register/go-api-server/internal/model"
	"gorm.io/gorm"
)

type DuesRepository struct{}

func NewDuesRepository() *DuesRepository {
	return &DuesRepository{}
}

func (r *DuesRepository) Create(ctx context.Context, db *gorm.DB, due *model.MonthlyDue) error {
	return db.WithContext(ctx).Create(due).Error
}

func (r *DuesRepository) FindByID(ctx context.Context, db *gorm.DB, id uint32) (*model.MonthlyDue, error) {
	var due model.MonthlyDue
	err := db.WithContext(ctx).Where("id = ?", id).First(&due).Error
	if err != nil {
		return nil, err
	}
	return &due, nil
}

func (r *DuesRepository) FindByMemberYearMonth(ctx context.Context, db *gorm.DB, memberID uint32, year, month int) (*model.MonthlyDue, error) {
	var due model.MonthlyDue
	err := db.WithContext(ctx).
		Where("member_id = ? AND year = ? AND month = ?", memberID, year, month).
		First(&due).Error
	if err != nil {
		return nil, err
	}
	return &due, nil
}

func (r *DuesRepository) UpdateStatus(ctx context.Context, db *gorm.DB, id uint32, status string) error {
	return db.WithContext(ctx).
		Model(&model.MonthlyDue{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *DuesRepository) ListByMember(ctx context.Context, db *gorm.DB, memberID uint32) ([]model.MonthlyDue, error) {
	var duesList []model.MonthlyDue
	err := db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("year, month").
		Find(&duesList).Error
	if err != nil {
		return nil, err
	}
	return duesList, nil
}

func (r *DuesRepository) ListAll(ctx context.Context, db *gorm.DB) ([]model.MonthlyDue, error) {
	var duesList []model.MonthlyDue
	err := db.WithContext(ctx).
		Order("year, month, member_id").
		Find(&duesList).Error
	if err != nil {
		return nil, err
	}
	return duesList, nil
}

func (r *DuesRepository) ListByYear(ctx context.Context, db *gorm.DB, year int) ([]model.MonthlyDue, error) {
	var duesList []model.MonthlyDue
	err := db.WithContext(ctx).
		Where("year = ?", year).
		Order("month, member_id").
		Find(&duesList).Error
	if err != nil {
		return nil, err
	}
	return duesList, nil
}

func (r *DuesRepository) ListByYearMonth(ctx context.Context, db *gorm.DB, year, month int) ([]model.MonthlyDue, error) {
	var duesList []model.MonthlyDue
	err := db.WithContext(ctx).
		Where("year = ? AND month = ?", year, month).
		Order("member_id").
		Find(&duesList).Error
	if err != nil {
		return nil, err
	}
	return duesList, nil
}

// ListPaidByMemberInRange returns a member's paid rows within [fromYear, toYear].
func (r *DuesRepository) ListPaidByMemberInRange(ctx context.Context, db *gorm.DB, memberID uint32, fromYear, toYear int) ([]model.MonthlyDue, error) {
	var duesList []model.MonthlyDue
	err := db.WithContext(ctx).
		Where("member_id = ? AND status = ? AND year >= ? AND year <= ?",
			memberID, model.DuesStatusPaid, fromYear, toYear).
		Order("year, month").
		Find(&duesList).Error
	if err != nil {
		return nil, err
	}
	return duesList, nil
}

type yearAggregate struct {
	PaidCount      int64
	TotalCollected int64
}

// AggregateYear counts paid rows for a year and sums their recorded amounts.
func (r *DuesRepository) AggregateYear(ctx context.Context, db *gorm.DB, year int) (paidCount, totalCollected int64, err error) {
	var agg yearAggregate
	err = db.WithContext(ctx).
		Model(&model.MonthlyDue{}).
		Select("COUNT(*) AS paid_count, COALESCE(SUM(amount), 0) AS total_collected").
		Where("year = ? AND status = ?", year, model.DuesStatusPaid).
		Scan(&agg).Error
	if err != nil {
		return 0, 0, err
	}
	return agg.PaidCount, agg.TotalCollected, nil
}
