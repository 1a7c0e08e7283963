package member

import (
	"context"

	"github.com/daonswim/swim-club-api/internal/model"
	"gorm.io/gorm"
)

type MemberRepository struct{}

func NewMemberRepository() *MemberRepository {
	return &MemberRepository{}
}

// IsEmailTaken reports whether the email belongs to any member that has not
// withdrawn. pending 포함: 심사 중인 이메일로는 중복 신청할 수 없다.
func (m *MemberRepository) IsEmailTaken(ctx context.Context, db *gorm.DB, email string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&model.Member{}).
		Where("email = ? AND status <> ?", email, model.StatusWithdrawn).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (m *MemberRepository) Create(ctx context.Context, db *gorm.DB, member *model.Member) error {
	return db.WithContext(ctx).Create(member).Error
}

// Save persists every field of the member, embedded approval records included.
func (m *MemberRepository) Save(ctx context.Context, db *gorm.DB, member *model.Member) error {
	return db.WithContext(ctx).Save(member).Error
}

// Delete hard-deletes the member row. 상태 전이가 아니라 레코드 삭제다.
func (m *MemberRepository) Delete(ctx context.Context, db *gorm.DB, memberID uint32) error {
	return db.WithContext(ctx).Delete(&model.Member{}, "id = ?", memberID).Error
}

// FindByEmail returns the newest non-withdrawn member with the email.
// 탈퇴 후 재가입한 경우 같은 이메일의 탈퇴 행이 남아 있을 수 있다.
func (m *MemberRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.Member, error) {
	var member model.Member
	err := db.WithContext(ctx).
		Where("email = ? AND status <> ?", email, model.StatusWithdrawn).
		Order("id DESC").
		First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (m *MemberRepository) FindByID(ctx context.Context, db *gorm.DB, ID uint32) (*model.Member, error) {
	var member model.Member
	err := db.WithContext(ctx).Where("id = ?", ID).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// List returns members newest-first, optionally filtered by status.
func (m *MemberRepository) List(ctx context.Context, db *gorm.DB, status *model.MemberStatus) ([]model.Member, error) {
	query := db.WithContext(ctx).Model(&model.Member{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var members []model.Member
	if err := query.Order("created_at DESC").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// RecordHistory appends a status transition record. 모든 상태 전이 경로가
// 이 메서드를 거친다 (가입 승인, 신청 승인, 탈퇴, 운영진 직접 변경).
func (m *MemberRepository) RecordHistory(ctx context.Context, db *gorm.DB, history *model.StatusChangeHistory) error {
	return db.WithContext(ctx).Create(history).Error
}

// ListHistory returns a member's status transitions, newest-first.
func (m *MemberRepository) ListHistory(ctx context.Context, db *gorm.DB, memberID uint32) ([]model.StatusChangeHistory, error) {
	var histories []model.StatusChangeHistory
	err := db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("created_at DESC").
		Find(&histories).Error
	if err != nil {
		return nil, err
	}
	return histories, nil
}

// HasOpenRequest reports whether the member already has a pending
// status-change or withdrawal request. 두 큐는 상호 배타적이다: 하나라도
// 대기 중이면 새 신청을 만들 수 없다.
func (m *MemberRepository) HasOpenRequest(ctx context.Context, db *gorm.DB, memberID uint32) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&model.StatusChangeRequest{}).
		Where("member_id = ? AND status = ?", memberID, model.RequestPending).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	if count > 0 {
		return true, nil
	}

	err = db.WithContext(ctx).
		Model(&model.WithdrawalRequest{}).
		Where("member_id = ? AND status = ?", memberID, model.RequestPending).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
