package member

import (
	"context"
	"errors"
	"fmt"

	"github.com/daonswim/swim-club-api/internal/model"
	"github.com/daonswim/swim-club-api/internal/shared/database"
	"github.com/daonswim/swim-club-api/internal/shared/logger"
	"gorm.io/gorm"
)

type MemberService struct {
	db               *gorm.DB
	memberRepository *MemberRepository
}

func NewMemberService(db *gorm.DB, memberRepository *MemberRepository) *MemberService {
	return &MemberService{
		db:               db,
		memberRepository: memberRepository,
	}
}

func (s *MemberService) GetProfile(ctx context.Context, memberID uint32) (*GetProfileResponse, error) {
	member, err := s.findMember(ctx, s.db, memberID)
	if err != nil {
		return nil, err
	}

	return toProfileResponse(member), nil
}

func (s *MemberService) UpdateProfile(ctx context.Context, memberID uint32, request *UpdateProfileRequest) (*GetProfileResponse, error) {
	var response *GetProfileResponse

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		member, err := s.findMember(ctx, tx, memberID)
		if err != nil {
			return err
		}

		member.Name = request.Name
		member.Nickname = request.Nickname
		member.PhoneNumber = request.PhoneNumber
		member.BirthDate = request.BirthDate
		if request.BirthCalendar != "" {
			member.BirthCalendar = model.BirthCalendar(request.BirthCalendar)
		}

		if err := s.memberRepository.Save(ctx, tx, member); err != nil {
			return fmt.Errorf("프로필 수정 실패: %w", err)
		}

		response = toProfileResponse(member)
		return nil
	})

	if err != nil {
		return nil, err
	}

	return response, nil
}

// UpdateOnboarding sets the onboarding flags (카카오톡 입장, 온보딩 완료).
func (s *MemberService) UpdateOnboarding(ctx context.Context, memberID uint32, request *UpdateOnboardingRequest) (*GetProfileResponse, error) {
	var response *GetProfileResponse

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		member, err := s.findMember(ctx, tx, memberID)
		if err != nil {
			return err
		}

		if request.HasJoinedKakao != nil {
			member.HasJoinedKakao = *request.HasJoinedKakao
		}
		if request.HasCompletedOnboarding != nil {
			member.HasCompletedOnboarding = *request.HasCompletedOnboarding
		}

		if err := s.memberRepository.Save(ctx, tx, member); err != nil {
			return fmt.Errorf("온보딩 상태 수정 실패: %w", err)
		}

		response = toProfileResponse(member)
		return nil
	})

	if err != nil {
		return nil, err
	}

	return response, nil
}

// List returns members newest-first, optionally filtered by status (admin).
func (s *MemberService) List(ctx context.Context, status *model.MemberStatus) (*ListMembersResponse, error) {
	members, err := s.memberRepository.List(ctx, s.db, status)
	if err != nil {
		return nil, fmt.Errorf("회원 목록 조회 실패: %w", err)
	}

	response := &ListMembersResponse{Members: make([]MemberSummary, 0, len(members))}
	for _, m := range members {
		response.Members = append(response.Members, MemberSummary{
			ID:       m.ID,
			Email:    m.Email,
			Name:     m.Name,
			Nickname: m.Nickname,
			Status:   string(m.Status),
			Role:     string(m.Role),
			Position: m.Position,
			JoinedAt: m.JoinedAt,
		})
	}
	return response, nil
}

// OverrideStatus is the admin escape hatch: sets the status directly without
// consulting the request queues. 해당 회원의 대기 중 신청은 취소하지 않는다.
// 신청 승인 핸들러가 결정 시점에 상태를 재검증하므로 stale 신청은 거기서 걸러진다.
func (s *MemberService) OverrideStatus(ctx context.Context, memberID, actorID uint32, status model.MemberStatus) error {
	log := logger.FromContext(ctx)

	return database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		actor, err := s.findMember(ctx, tx, actorID)
		if err != nil {
			return err
		}

		member, err := s.findMember(ctx, tx, memberID)
		if err != nil {
			return err
		}

		fromStatus := member.Status
		if fromStatus == status {
			return nil // 변경 없음
		}

		member.Status = status
		if err := s.memberRepository.Save(ctx, tx, member); err != nil {
			return fmt.Errorf("회원 상태 변경 실패: %w", err)
		}

		history := &model.StatusChangeHistory{
			MemberID:   member.ID,
			FromStatus: fromStatus,
			ToStatus:   status,
			ChangedBy:  actor.Name,
			Source:     model.SourceAdminOverride,
		}
		if err := s.memberRepository.RecordHistory(ctx, tx, history); err != nil {
			return fmt.Errorf("상태 변경 이력 기록 실패: %w", err)
		}

		log.Info("운영진 직접 상태 변경",
			"member_id", memberID,
			"from", fromStatus,
			"to", status,
			"changed_by", actor.Name,
		)
		return nil
	})
}

// Delete purges the member record entirely.
func (s *MemberService) Delete(ctx context.Context, memberID uint32) error {
	log := logger.FromContext(ctx)

	return database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		member, err := s.findMember(ctx, tx, memberID)
		if err != nil {
			return err
		}

		if err := s.memberRepository.Delete(ctx, tx, member.ID); err != nil {
			return fmt.Errorf("회원 삭제 실패: %w", err)
		}

		log.Info("회원 삭제 완료", "member_id", memberID, "email", logger.MaskEmail(member.Email))
		return nil
	})
}

// ListHistory returns a member's status transition history (admin).
func (s *MemberService) ListHistory(ctx context.Context, memberID uint32) (*ListHistoryResponse, error) {
	if _, err := s.findMember(ctx, s.db, memberID); err != nil {
		return nil, err
	}

	histories, err := s.memberRepository.ListHistory(ctx, s.db, memberID)
	if err != nil {
		return nil, fmt.Errorf("상태 변경 이력 조회 실패: %w", err)
	}

	response := &ListHistoryResponse{Histories: make([]HistoryEntry, 0, len(histories))}
	for _, h := range histories {
		response.Histories = append(response.Histories, HistoryEntry{
			ID:         h.ID,
			FromStatus: string(h.FromStatus),
			ToStatus:   string(h.ToStatus),
			ChangedBy:  h.ChangedBy,
			Source:     string(h.Source),
			CreatedAt:  h.CreatedAt,
		})
	}
	return response, nil
}

func (s *MemberService) findMember(ctx context.Context, db *gorm.DB, memberID uint32) (*model.Member, error) {
	member, err := s.memberRepository.FindByID(ctx, db, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("회원을 찾을 수 없습니다 memberID=%d %w", memberID, ErrMemberNotFound)
		}
		return nil, fmt.Errorf("회원 조회 실패: %w", err)
	}
	return member, nil
}

func toProfileResponse(member *model.Member) *GetProfileResponse {
	return &GetProfileResponse{
		ID:                     member.ID,
		Email:                  member.Email,
		Name:                   member.Name,
		Nickname:               member.Nickname,
		PhoneNumber:            member.PhoneNumber,
		BirthDate:              member.BirthDate,
		BirthCalendar:          string(member.BirthCalendar),
		Gender:                 member.Gender,
		Position:               member.Position,
		Status:                 string(member.Status),
		Role:                   string(member.Role),
		HasJoinedKakao:         member.HasJoinedKakao,
		HasCompletedOnboarding: member.HasCompletedOnboarding,
		JoinedAt:               member.JoinedAt,
	}
}
