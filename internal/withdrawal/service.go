package withdrawal

import (
	"context"
	"errors"
	"fmt"

	"github.com/daonswim/swim-club-api/internal/member"
	"github.com/daonswim/swim-club-api/internal/model"
	"github.com/daonswim/swim-club-api/internal/shared/database"
	"github.com/daonswim/swim-club-api/internal/shared/logger"
	"gorm.io/gorm"
)

// WithdrawalService manages the leave-the-club request queue. 승인은 되돌릴
// 수 없다: 탈퇴한 회원은 새 신청자로 다시 가입해야 한다.
type WithdrawalService struct {
	db                   *gorm.DB
	withdrawalRepository *WithdrawalRepository
	memberRepository     *member.MemberRepository
}

func NewWithdrawalService(db *gorm.DB, withdrawalRepository *WithdrawalRepository, memberRepository *member.MemberRepository) *WithdrawalService {
	return &WithdrawalService{
		db:                   db,
		withdrawalRepository: withdrawalRepository,
		memberRepository:     memberRepository,
	}
}

// Create opens a pending withdrawal request.
func (s *WithdrawalService) Create(ctx context.Context, memberID uint32, request *CreateWithdrawalRequest) (*WithdrawalResponse, error) {
	log := logger.FromContext(ctx)
	var response *WithdrawalResponse

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		m, err := s.memberRepository.FindByID(ctx, tx, memberID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("memberID=%d %w", memberID, member.ErrMemberNotFound)
			}
			return fmt.Errorf("회원 조회 실패: %w", err)
		}

		if m.Status != model.StatusActive && m.Status != model.StatusInactive {
			return fmt.Errorf("memberID=%d status=%s %w", memberID, m.Status, member.ErrMemberNotEligible)
		}

		open, err := s.memberRepository.HasOpenRequest(ctx, tx, memberID)
		if err != nil {
			return fmt.Errorf("대기 신청 확인 실패: %w", err)
		}
		if open {
			return fmt.Errorf("memberID=%d %w", memberID, ErrAlreadyPending)
		}

		entity := &model.WithdrawalRequest{
			MemberID:   m.ID,
			MemberName: m.Name,
			Reason:     request.Reason,
			Status:     model.RequestPending,
		}
		if err := s.withdrawalRepository.Create(ctx, tx, entity); err != nil {
			return fmt.Errorf("탈퇴 신청 생성 실패: %w", err)
		}

		log.Info("탈퇴 신청 접수", "member_id", m.ID)

		response = toResponse(entity)
		return nil
	})

	if err != nil {
		return nil, err
	}

	return response, nil
}

// Decide approves or rejects a pending withdrawal. 승인은 무조건 탈퇴 처리
// 한다: 인터페이스 계층의 이중 확인을 신뢰하지 않고, 호출되면 수행한다.
func (s *WithdrawalService) Decide(ctx context.Context, requestID, actorID uint32, request *DecisionRequest) error {
	log := logger.FromContext(ctx)

	return database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		actor, err := s.memberRepository.FindByID(ctx, tx, actorID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("actorID=%d %w", actorID, member.ErrMemberNotFound)
			}
			return fmt.Errorf("운영진 조회 실패: %w", err)
		}

		entity, err := s.withdrawalRepository.FindByID(ctx, tx, requestID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("requestID=%d %w", requestID, ErrRequestNotFound)
			}
			return fmt.Errorf("탈퇴 신청 조회 실패: %w", err)
		}

		if entity.Status != model.RequestPending {
			return fmt.Errorf("requestID=%d status=%s %w", requestID, entity.Status, ErrAlreadyProcessed)
		}

		switch request.Decision {
		case "approve":
			m, err := s.memberRepository.FindByID(ctx, tx, entity.MemberID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("memberID=%d %w", entity.MemberID, member.ErrMemberNotFound)
				}
				return fmt.Errorf("회원 조회 실패: %w", err)
			}

			fromStatus := m.Status
			m.Status = model.StatusWithdrawn
			if err := s.memberRepository.Save(ctx, tx, m); err != nil {
				return fmt.Errorf("탈퇴 처리 실패: %w", err)
			}

			history := &model.StatusChangeHistory{
				MemberID:   m.ID,
				FromStatus: fromStatus,
				ToStatus:   model.StatusWithdrawn,
				ChangedBy:  actor.Name,
				Source:     model.SourceWithdrawal,
			}
			if err := s.memberRepository.RecordHistory(ctx, tx, history); err != nil {
				return fmt.Errorf("상태 변경 이력 기록 실패: %w", err)
			}

			if err := s.withdrawalRepository.MarkDecided(ctx, tx, entity, model.RequestApproved, actor.Name, nil); err != nil {
				return fmt.Errorf("탈퇴 승인 처리 실패: %w", err)
			}

		case "reject":
			if request.RejectReason == "" {
				return fmt.Errorf("requestID=%d %w", requestID, ErrRejectReasonRequired)
			}

			if err := s.withdrawalRepository.MarkDecided(ctx, tx, entity, model.RequestRejected, actor.Name, &request.RejectReason); err != nil {
				return fmt.Errorf("탈퇴 거절 처리 실패: %w", err)
			}
		}

		log.Info("탈퇴 신청 처리",
			"request_id", requestID,
			"decision", request.Decision,
			"processed_by", actor.Name,
		)
		return nil
	})
}

// List returns the admin queue, newest-first.
func (s *WithdrawalService) List(ctx context.Context, status *model.RequestStatus) (*ListWithdrawalsResponse, error) {
	requests, err := s.withdrawalRepository.List(ctx, s.db, status)
	if err != nil {
		return nil, fmt.Errorf("탈퇴 신청 목록 조회 실패: %w", err)
	}
	return toListResponse(requests), nil
}

// ListMine returns the member's own requests.
func (s *WithdrawalService) ListMine(ctx context.Context, memberID uint32) (*ListWithdrawalsResponse, error) {
	requests, err := s.withdrawalRepository.ListByMember(ctx, s.db, memberID)
	if err != nil {
		return nil, fmt.Errorf("탈퇴 신청 목록 조회 실패: %w", err)
	}
	return toListResponse(requests), nil
}

func toListResponse(requests []model.WithdrawalRequest) *ListWithdrawalsResponse {
	response := &ListWithdrawalsResponse{Requests: make([]WithdrawalResponse, 0, len(requests))}
	for i := range requests {
		response.Requests = append(response.Requests, *toResponse(&requests[i]))
	}
	return response
}

func toResponse(entity *model.WithdrawalRequest) *WithdrawalResponse {
	return &WithdrawalResponse{
		ID:           entity.ID,
		MemberID:     entity.MemberID,
		MemberName:   entity.MemberName,
		Reason:       entity.Reason,
		Status:       string(entity.Status),
		RejectReason: entity.RejectReason,
		ProcessedBy:  entity.ProcessedBy,
		ProcessedAt:  entity.ProcessedAt,
		CreatedAt:    entity.CreatedAt,
	}
}
