package checklist

import (
	"context"

	"github.com/daonswim/swim-club-api/internal/model"
	"gorm.io/gorm"
)

type ChecklistRepository struct{}

func NewChecklistRepository() *ChecklistRepository {
	return &ChecklistRepository{}
}

// List returns every checklist item ordered for display.
func (r *ChecklistRepository) List(ctx context.Context, db *gorm.DB) ([]model.ChecklistItem, error) {
	var items []model.ChecklistItem
	err := db.WithContext(ctx).
		Order("display_order ASC, id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// ListActive returns the active items an applicant must acknowledge.
func (r *ChecklistRepository) ListActive(ctx context.Context, db *gorm.DB) ([]model.ChecklistItem, error) {
	var items []model.ChecklistItem
	err := db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("display_order ASC, id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ChecklistRepository) FindByID(ctx context.Context, db *gorm.DB, id uint32) (*model.ChecklistItem, error) {
	var item model.ChecklistItem
	if err := db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *ChecklistRepository) Create(ctx context.Context, db *gorm.DB, item *model.ChecklistItem) error {
	return db.WithContext(ctx).Create(item).Error
}

func (r *ChecklistRepository) Save(ctx context.Context, db *gorm.DB, item *model.ChecklistItem) error {
	return db.WithContext(ctx).Save(item).Error
}

func (r *ChecklistRepository) Delete(ctx context.Context, db *gorm.DB, id uint32) error {
	return db.WithContext(ctx).Delete(&model.ChecklistItem{}, "id = ?", id).Error
}
