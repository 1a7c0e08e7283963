package application

import (
	"context"
	"time"

	"github.com/daonswim/swim-club-api/internal/model"
	"gorm.io/gorm"
)

// ApplicationRepository manages the append-only intake log. 승인 상태 기계
// 자체는 Member의 승인 레코드에 있고, 이 로그는 신청/처리 내역 조회용이다.
type ApplicationRepository struct{}

func NewApplicationRepository() *ApplicationRepository {
	return &ApplicationRepository{}
}

func (r *ApplicationRepository) Create(ctx context.Context, db *gorm.DB, app *model.MembershipApplication) error {
	return db.WithContext(ctx).Create(app).Error
}

// List returns intake rows newest-first, optionally filtered by status.
func (r *ApplicationRepository) List(ctx context.Context, db *gorm.DB, status *model.RequestStatus) ([]model.MembershipApplication, error) {
	query := db.WithContext(ctx).Model(&model.MembershipApplication{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var apps []model.MembershipApplication
	if err := query.Order("created_at DESC").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// FindPendingByMember returns the member's open intake row, if any.
func (r *ApplicationRepository) FindPendingByMember(ctx context.Context, db *gorm.DB, memberID uint32) (*model.MembershipApplication, error) {
	var app model.MembershipApplication
	err := db.WithContext(ctx).
		Where("member_id = ? AND status = ?", memberID, model.RequestPending).
		Order("id DESC").
		First(&app).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// Stamp records the admin decision on the open intake row.
func (r *ApplicationRepository) Stamp(ctx context.Context, db *gorm.DB, app *model.MembershipApplication, status model.RequestStatus, processedBy string, rejectReason *string) error {
	now := time.Now().UTC()
	app.Status = status
	app.ProcessedBy = &processedBy
	app.ProcessedAt = &now
	app.RejectReason = rejectReason
	return db.WithContext(ctx).Save(app).Error
}

// DeleteByMember purges every intake row of the member (신청 철회, 회원 삭제).
func (r *ApplicationRepository) DeleteByMember(ctx context.Context, db *gorm.DB, memberID uint32) error {
	return db.WithContext(ctx).
		Delete(&model.MembershipApplication{}, "member_id = ?", memberID).Error
}
