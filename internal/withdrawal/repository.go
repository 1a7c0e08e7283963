package withdrawal

import (
	"context"
	"time"

	"github.com/daonswim/swim-club-api/internal/model"
	"gorm.io/gorm"
)

type WithdrawalRepository struct{}

func NewWithdrawalRepository() *WithdrawalRepository {
	return &WithdrawalRepository{}
}

func (r *WithdrawalRepository) Create(ctx context.Context, db *gorm.DB, request *model.WithdrawalRequest) error {
	return db.WithContext(ctx).Create(request).Error
}

func (r *WithdrawalRepository) FindByID(ctx context.Context, db *gorm.DB, id uint32) (*model.WithdrawalRequest, error) {
	var request model.WithdrawalRequest
	if err := db.WithContext(ctx).Where("id = ?", id).First(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

// List returns requests newest-first, optionally filtered by status.
func (r *WithdrawalRepository) List(ctx context.Context, db *gorm.DB, status *model.RequestStatus) ([]model.WithdrawalRequest, error) {
	query := db.WithContext(ctx).Model(&model.WithdrawalRequest{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var requests []model.WithdrawalRequest
	if err := query.Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// ListByMember returns the member's own requests, newest-first.
func (r *WithdrawalRepository) ListByMember(ctx context.Context, db *gorm.DB, memberID uint32) ([]model.WithdrawalRequest, error) {
	var requests []model.WithdrawalRequest
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
func (r *WithdrawalRepository) MarkDecided(ctx context.Context, db *gorm.DB, request *model.WithdrawalRequest, status model.RequestStatus, processedBy string, rejectReason *string) error {
	now := time.Now().UTC()
	request.Status = status
	request.ProcessedBy = &processedBy
	request.ProcessedAt = &now
	request.RejectReason = rejectReason
	return db.WithContext(ctx).Save(request).Error
}
