package member

import (
	"context"

	"github.com/adeyemik/union-register/go-api-server/internal/model"
	"gorm.io/gorm"
)

type MemberRepository struct{}

func NewMemberRepository() *MemberRepository {
	return &MemberRepository{}
}

func (m *MemberRepository) Create(ctx context.Context, db *gorm.DB, member *model.Member) error {
	return db.WithContext(ctx).Create(member).Error
}

func (m *MemberRepository) NormalizedNameExists(ctx context.Context, db *gorm.DB, normalizedName string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&model.Member{}).
		Where("normalized_name = ?", normalizedName).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (m *MemberRepository) AccessCodeExists(ctx context.Context, db *gorm.DB, code string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&model.Member{}).
		Where("access_code = ?", code).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (m *MemberRepository) FindByAccessCode(ctx context.Context, db *gorm.DB, code string) (*model.Member, error) {
	var member model.Member
	err := db.WithContext(ctx).Where("access_code = ?", code).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (m *MemberRepository) FindByID(ctx context.Context, db *gorm.DB, id uint32) (*model.Member, error) {
	var member model.Member
	err := db.WithContext(ctx).Where("id = ?", id).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (m *MemberRepository) ExistsByID(ctx context.Context, db *gorm.DB, id uint32) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&model.Member{}).
		Where("id = ?", id).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// ListAll returns all members most-recently-admitted first.
func (m *MemberRepository) ListAll(ctx context.Context, db *gorm.DB) ([]model.Member, error) {
	var members []model.Member
	err := db.WithContext(ctx).Order("id DESC").Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}
