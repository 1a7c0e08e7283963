package statuschange

import (
	"context"
	"errors"
	"fmt"

	"github.com/daonswim/swim-club-api/internal/capacity"
	"github.com/daonswim/swim-club-api/internal/member"
	"github.com/daonswim/swim-club-api/internal/model"
	"github.com/daonswim/swim-club-api/internal/settings"
	"github.com/daonswim/swim-club-api/internal/shared/database"
	"github.com/daonswim/swim-club-api/internal/shared/logger"
	"gorm.io/gorm"
)

// StatusChangeService manages the active ⇄ inactive request queue.
type StatusChangeService struct {
	db                     *gorm.DB
	statusChangeRepository *StatusChangeRepository
	memberRepository       *member.MemberRepository
	settingsRepository     *settings.SettingsRepository
	accountant             *capacity.Accountant
}

func NewStatusChangeService(
	db *gorm.DB,
	statusChangeRepository *StatusChangeRepository,
	memberRepository *member.MemberRepository,
	settingsRepository *settings.SettingsRepository,
	accountant *capacity.Accountant,
) *StatusChangeService {
	return &StatusChangeService{
		db:                     db,
		statusChangeRepository: statusChangeRepository,
		memberRepository:       memberRepository,
		settingsRepository:     settingsRepository,
		accountant:             accountant,
	}
}

// Create opens a pending request toward the opposite status.
func (s *StatusChangeService) Create(ctx context.Context, memberID uint32, request *CreateStatusChangeRequest) (*StatusChangeResponse, error) {
	log := logger.FromContext(ctx)
	var response *StatusChangeResponse

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		m, err := s.memberRepository.FindByID(ctx, tx, memberID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("memberID=%d %w", memberID, member.ErrMemberNotFound)
			}
			return fmt.Errorf("회원 조회 실패: %w", err)
		}

		// 탈퇴/심사 중 회원은 상태 변경을 신청할 수 없다.
		if m.Status != model.StatusActive && m.Status != model.StatusInactive {
			return fmt.Errorf("memberID=%d status=%s %w", memberID, m.Status, member.ErrMemberNotEligible)
		}

		requested := model.MemberStatus(request.RequestedStatus)
		if requested == m.Status {
			return fmt.Errorf("memberID=%d status=%s %w", memberID, m.Status, ErrSameStatus)
		}

		open, err := s.memberRepository.HasOpenRequest(ctx, tx, memberID)
		if err != nil {
			return fmt.Errorf("대기 신청 확인 실패: %w", err)
		}
		if open {
			return fmt.Errorf("memberID=%d %w", memberID, ErrAlreadyPending)
		}

		entity := &model.StatusChangeRequest{
			MemberID:        m.ID,
			MemberName:      m.Name,
			CurrentStatus:   m.Status,
			RequestedStatus: requested,
			Reason:          request.Reason,
			Status:          model.RequestPending,
		}
		if err := s.statusChangeRepository.Create(ctx, tx, entity); err != nil {
			return fmt.Errorf("상태 변경 신청 생성 실패: %w", err)
		}

		log.Info("상태 변경 신청 접수",
			"member_id", m.ID,
			"from", m.Status,
			"to", requested,
		)

		response = toResponse(entity)
		return nil
	})

	if err != nil {
		return nil, err
	}

	return response, nil
}

// Decide approves or rejects a pending request. 승인 시점에 회원 상태를
// 재검증한다: 운영진 직접 변경으로 stale이 된 신청은 여기서 걸러진다.
func (s *StatusChangeService) Decide(ctx context.Context, requestID, actorID uint32, request *DecisionRequest) error {
	log := logger.FromContext(ctx)

	return database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		actor, err := s.memberRepository.FindByID(ctx, tx, actorID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("actorID=%d %w", actorID, member.ErrMemberNotFound)
			}
			return fmt.Errorf("운영진 조회 실패: %w", err)
		}

		entity, err := s.statusChangeRepository.FindByID(ctx, tx, requestID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("requestID=%d %w", requestID, ErrRequestNotFound)
			}
			return fmt.Errorf("상태 변경 신청 조회 실패: %w", err)
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

			if m.Status != entity.CurrentStatus {
				return fmt.Errorf("requestID=%d member_status=%s request_status=%s %w",
					requestID, m.Status, entity.CurrentStatus, ErrStateMismatch)
			}

			// 활동 복귀는 정원 게이트를 통과해야 한다. 휴면 전환은 무조건 허용.
			if entity.RequestedStatus == model.StatusActive {
				clubSettings, err := s.settingsRepository.Get(ctx, tx)
				if err != nil {
					return fmt.Errorf("설정 조회 실패: %w", err)
				}
				if err := s.accountant.EnsureRoom(ctx, tx, clubSettings); err != nil {
					return err
				}
			}

			m.Status = entity.RequestedStatus
			if err := s.memberRepository.Save(ctx, tx, m); err != nil {
				return fmt.Errorf("회원 상태 변경 실패: %w", err)
			}

			history := &model.StatusChangeHistory{
				MemberID:   m.ID,
				FromStatus: entity.CurrentStatus,
				ToStatus:   entity.RequestedStatus,
				ChangedBy:  actor.Name,
				Source:     model.SourceRequest,
			}
			if err := s.memberRepository.RecordHistory(ctx, tx, history); err != nil {
				return fmt.Errorf("상태 변경 이력 기록 실패: %w", err)
			}

			if err := s.statusChangeRepository.MarkDecided(ctx, tx, entity, model.RequestApproved, actor.Name, nil); err != nil {
				return fmt.Errorf("신청 승인 처리 실패: %w", err)
			}

		case "reject":
			if request.RejectReason == "" {
				return fmt.Errorf("requestID=%d %w", requestID, ErrRejectReasonRequired)
			}

			if err := s.statusChangeRepository.MarkDecided(ctx, tx, entity, model.RequestRejected, actor.Name, &request.RejectReason); err != nil {
				return fmt.Errorf("신청 거절 처리 실패: %w", err)
			}
		}

		log.Info("상태 변경 신청 처리",
			"request_id", requestID,
			"decision", request.Decision,
			"processed_by", actor.Name,
		)
		return nil
	})
}

// List returns the admin queue, newest-first.
func (s *StatusChangeService) List(ctx context.Context, status *model.RequestStatus) (*ListStatusChangesResponse, error) {
	requests, err := s.statusChangeRepository.List(ctx, s.db, status)
	if err != nil {
		return nil, fmt.Errorf("상태 변경 신청 목록 조회 실패: %w", err)
	}
	return toListResponse(requests), nil
}

// ListMine returns the member's own requests.
func (s *StatusChangeService) ListMine(ctx context.Context, memberID uint32) (*ListStatusChangesResponse, error) {
	requests, err := s.statusChangeRepository.ListByMember(ctx, s.db, memberID)
	if err != nil {
		return nil, fmt.Errorf("상태 변경 신청 목록 조회 실패: %w", err)
	}
	return toListResponse(requests), nil
}

func toListResponse(requests []model.StatusChangeRequest) *ListStatusChangesResponse {
	response := &ListStatusChangesResponse{Requests: make([]StatusChangeResponse, 0, len(requests))}
	for i := range requests {
		response.Requests = append(response.Requests, *toResponse(&requests[i]))
	}
	return response
}

func toResponse(entity *model.StatusChangeRequest) *StatusChangeResponse {
	return &StatusChangeResponse{
		ID:              entity.ID,
		MemberID:        entity.MemberID,
		MemberName:      entity.MemberName,
		CurrentStatus:   string(entity.CurrentStatus),
		RequestedStatus: string(entity.RequestedStatus),
		Reason:          entity.Reason,
		Status:          string(entity.Status),
		RejectReason:    entity.RejectReason,
		ProcessedBy:     entity.ProcessedBy,
		ProcessedAt:     entity.ProcessedAt,
		CreatedAt:       entity.CreatedAt,
	}
}
