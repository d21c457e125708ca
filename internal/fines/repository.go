package fines

import (
	"context"

	"github.com/adeyemik/union-register/go-api-server/internal/model"
	"gorm.io/gorm"
)

type FineRepository struct{}

func NewFineRepository() *FineRepository {
	return &FineRepository{}
}

func (r *FineRepository) Create(ctx context.Context, db *gorm.DB, fine *model.Fine) error {
	return db.WithContext(ctx).Create(fine).Error
}

func (r *FineRepository) FindByID(ctx context.Context, db *gorm.DB, id uint32) (*model.Fine, error) {
	var fine model.Fine
	err := db.WithContext(ctx).Where("id = ?", id).First(&fine).Error
	if err != nil {
		return nil, err
	}
	return &fine, nil
}

// UpdateFields applies a partial patch. Only the keys present in updates are
// written.
func (r *FineRepository) UpdateFields(ctx context.Context, db *gorm.DB, id uint32, updates map[string]interface{}) error {
	return db.WithContext(ctx).
		Model(&model.Fine{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *FineRepository) UpdateStatus(ctx context.Context, db *gorm.DB, id uint32, status string) error {
	return db.WithContext(ctx).
		Model(&model.Fine{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *FineRepository) Delete(ctx context.Context, db *gorm.DB, id uint32) error {
	return db.WithContext(ctx).Delete(&model.Fine{}, id).Error
}

func (r *FineRepository) ListByMember(ctx context.Context, db *gorm.DB, memberID uint32) ([]model.Fine, error) {
	var fineList []model.Fine
	err := db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("issued_at DESC").
		Find(&fineList).Error
	if err != nil {
		return nil, err
	}
	return fineList, nil
}
