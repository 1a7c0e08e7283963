package statuschange

import (
	"context"
	"time"

	"github.com/daonswim/swim-club-api/internal/model"
	"gorm.io/gorm"
)

type StatusChangeRepository struct{}

func NewStatusChangeRepository() *StatusChangeRepository {
	return &StatusChangeRepository{}
}

func (r *StatusChangeRepository) Create(ctx context.Context, db *gorm.DB, request *model.StatusChangeRequest) error {
	return db.WithContext(ctx).Create(request).Error
}

func (r *StatusChangeRepository) FindByID(ctx context.Context, db *gorm.DB, id uint32) (*model.StatusChangeRequest, error) {
	var request model.StatusChangeRequest
	if err := db.WithContext(ctx).Where("id = ?", id).First(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

// List returns requests newest-first, optionally filtered by status.
func (r *StatusChangeRepository) List(ctx context.Context, db *gorm.DB, status *model.RequestStatus) ([]model.StatusChangeRequest, error) {
	query := db.WithContext(ctx).Model(&model.StatusChangeRequest{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var requests []model.StatusChangeRequest
	if err := query.Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// ListByMember returns the member's own requests, newest-first.
func (r *StatusChangeRepository) ListByMember(ctx context.Context, db *gorm.DB, memberID uint32) ([]model.StatusChangeRequest, error) {
	var requests []model.StatusChangeRequest
	err := db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// MarkDecided stamps the decision on a request.
func (r *StatusChangeRepository) MarkDecided(ctx context.Context, db *gorm.DB, request *model.StatusChangeRequest, status model.RequestStatus, processedBy string, rejectReason *string) error {
	now := time.Now().UTC()
	request.Status = status
	request.ProcessedBy = &processedBy
	request.ProcessedAt = &now
	request.RejectReason = rejectReason
	return db.WithContext(ctx).Save(request).Error
}
