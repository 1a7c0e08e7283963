package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/daonswim/swim-club-api/internal/capacity"
	"github.com/daonswim/swim-club-api/internal/checklist"
	"github.com/daonswim/swim-club-api/internal/member"
	"github.com/daonswim/swim-club-api/internal/model"
	"github.com/daonswim/swim-club-api/internal/settings"
	"github.com/daonswim/swim-club-api/internal/shared/database"
	"github.com/daonswim/swim-club-api/internal/shared/logger"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ApplicationService drives the applicant state machine:
//
//	제출 → 추천인 심사 → 운영진 심사 → 활동 회원
//
// 거절은 종착 상태가 아니다. 신청자는 수정 후 재신청할 수 있고, 거절된 단계만
// 대기 상태로 되돌아간다.
type ApplicationService struct {
	db                    *gorm.DB
	memberRepository      *member.MemberRepository
	applicationRepository *ApplicationRepository
	checklistRepository   *checklist.ChecklistRepository
	settingsRepository    *settings.SettingsRepository
	accountant            *capacity.Accountant
}

func NewApplicationService(
	db *gorm.DB,
	memberRepository *member.MemberRepository,
	applicationRepository *ApplicationRepository,
	checklistRepository *checklist.ChecklistRepository,
	settingsRepository *settings.SettingsRepository,
	accountant *capacity.Accountant,
) *ApplicationService {
	return &ApplicationService{
		db:                    db,
		memberRepository:      memberRepository,
		applicationRepository: applicationRepository,
		checklistRepository:   checklistRepository,
		settingsRepository:    settingsRepository,
		accountant:            accountant,
	}
}

// Submit creates a pending member with the referrer stage open, plus the
// intake log row.
func (s *ApplicationService) Submit(ctx context.Context, request *SubmitApplicationRequest) (*ApplicationStatusResponse, error) {
	log := logger.FromContext(ctx)
	var response *ApplicationStatusResponse

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		taken, err := s.memberRepository.IsEmailTaken(ctx, tx, request.Email)
		if err != nil {
			return fmt.Errorf("이메일 중복 확인 실패: %w", err)
		}
		if taken {
			log.Warn("가입 신청 거부 - 이메일 중복", "email", logger.MaskEmail(request.Email))
			return fmt.Errorf("email=%s %w", logger.MaskEmail(request.Email), member.ErrMemberAlreadyExists)
		}

		if err := s.ensureChecklistAcknowledged(ctx, tx, request.AcknowledgedChecklistItems); err != nil {
			return err
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("비밀번호 암호화 실패: %w", err)
		}

		pending := model.ApprovalPending
		calendar := model.CalendarSolar
		if request.BirthCalendar != "" {
			calendar = model.BirthCalendar(request.BirthCalendar)
		}

		applicant := &model.Member{
			Email:         request.Email,
			Password:      string(hashedPassword),
			Name:          request.Name,
			Nickname:      request.Nickname,
			PhoneNumber:   request.PhoneNumber,
			BirthDate:     request.BirthDate,
			BirthCalendar: calendar,
			Gender:        request.Gender,
			Status:        model.StatusPending,
			Role:          model.RoleMember,
			Referrer:      request.Referrer,
			Strokes:       strings.Join(request.Strokes, ","),
			Motivation:    request.Motivation,
			ReferrerApproval: model.ReferrerApproval{
				Status: &pending,
			},
			JoinedAt: time.Now().UTC(),
		}

		if err := s.memberRepository.Create(ctx, tx, applicant); err != nil {
			return fmt.Errorf("가입 신청 생성 실패: %w", err)
		}

		intake := &model.MembershipApplication{
			MemberID:    applicant.ID,
			Name:        applicant.Name,
			Email:       applicant.Email,
			PhoneNumber: applicant.PhoneNumber,
			BirthDate:   applicant.BirthDate,
			Motivation:  applicant.Motivation,
			Status:      model.RequestPending,
		}
		if err := s.applicationRepository.Create(ctx, tx, intake); err != nil {
			return fmt.Errorf("신청 기록 생성 실패: %w", err)
		}

		log.Info("가입 신청 접수",
			"member_id", applicant.ID,
			"email", logger.MaskEmail(applicant.Email),
			"referrer", applicant.Referrer,
		)

		response = toStatusResponse(applicant)
		return nil
	})

	if err != nil {
		return nil, err
	}

	return response, nil
}

// GetStatus returns the applicant's progress through the pipeline.
func (s *ApplicationService) GetStatus(ctx context.Context, memberID uint32) (*ApplicationStatusResponse, error) {
	applicant, err := s.findMember(ctx, s.db, memberID)
	if err != nil {
		return nil, err
	}

	if applicant.ReferrerApproval.Status == nil {
		// 신청 파이프라인을 거치지 않은 회원 (시드 관리자 등)
		return nil, fmt.Errorf("memberID=%d %w", memberID, ErrApplicationNotFound)
	}

	return toStatusResponse(applicant), nil
}

// ReferrerDecide processes the referrer stage. Only the active member whose
// name matches the applicant's referrer may act.
func (s *ApplicationService) ReferrerDecide(ctx context.Context, applicantID, actorID uint32, request *ReferrerDecisionRequest) error {
	log := logger.FromContext(ctx)

	return database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		actor, err := s.findMember(ctx, tx, actorID)
		if err != nil {
			return err
		}

		applicant, err := s.findMember(ctx, tx, applicantID)
		if err != nil {
			return err
		}

		// 이름이 정확히 일치하는 활동 회원만 추천인 단계를 처리할 수 있다.
		if actor.Status != model.StatusActive || actor.Name != applicant.Referrer {
			log.Warn("추천인 결정 거부 - 추천인 불일치",
				"applicant_id", applicantID,
				"actor", actor.Name,
				"expected_referrer", applicant.Referrer,
			)
			return fmt.Errorf("actor=%s %w", actor.Name, ErrNotReferrer)
		}

		if !applicant.IsApplicant() || applicant.ReferrerStage() != model.ApprovalPending {
			return fmt.Errorf("applicantID=%d stage=%s %w", applicantID, applicant.ReferrerStage(), ErrAlreadyProcessed)
		}

		now := time.Now().UTC()

		switch request.Decision {
		case "approve":
			if !request.AgreedSuitability || !request.AgreedMentoring || !request.AgreedCapacity {
				return fmt.Errorf("applicantID=%d %w", applicantID, ErrAgreementsRequired)
			}

			approved := model.ApprovalApproved
			adminPending := model.ApprovalPending
			applicant.ReferrerApproval.Status = &approved
			applicant.ReferrerApproval.AgreedSuitability = true
			applicant.ReferrerApproval.AgreedMentoring = true
			applicant.ReferrerApproval.AgreedCapacity = true
			applicant.ReferrerApproval.ProcessedBy = &actor.Name
			applicant.ReferrerApproval.ProcessedAt = &now
			// 추천인 승인과 함께 운영진 심사 단계가 열린다.
			applicant.AdminApproval = model.AdminApproval{Status: &adminPending}

		case "reject":
			if request.RejectReason == "" {
				return fmt.Errorf("applicantID=%d %w", applicantID, ErrRejectReasonRequired)
			}

			rejected := model.ApprovalRejected
			applicant.ReferrerApproval.Status = &rejected
			applicant.ReferrerApproval.RejectReason = &request.RejectReason
			applicant.ReferrerApproval.ProcessedBy = &actor.Name
			applicant.ReferrerApproval.ProcessedAt = &now
		}

		if err := s.memberRepository.Save(ctx, tx, applicant); err != nil {
			return fmt.Errorf("추천인 결정 저장 실패: %w", err)
		}

		log.Info("추천인 결정 처리",
			"applicant_id", applicantID,
			"decision", request.Decision,
			"referrer", actor.Name,
		)
		return nil
	})
}

// AdminDecide processes the admin stage. Approval is gated by capacity at
// decision time: 신청 시점이 아니라 승인 시점의 잔여 정원으로 판단한다.
func (s *ApplicationService) AdminDecide(ctx context.Context, applicantID, actorID uint32, request *AdminDecisionRequest) error {
	log := logger.FromContext(ctx)

	return database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		actor, err := s.findMember(ctx, tx, actorID)
		if err != nil {
			return err
		}

		applicant, err := s.findMember(ctx, tx, applicantID)
		if err != nil {
			return err
		}

		if !applicant.IsApplicant() || applicant.AdminStage() != model.ApprovalPending {
			return fmt.Errorf("applicantID=%d stage=%s %w", applicantID, applicant.AdminStage(), ErrAlreadyProcessed)
		}

		now := time.Now().UTC()

		switch request.Decision {
		case "approve":
			clubSettings, err := s.settingsRepository.Get(ctx, tx)
			if err != nil {
				return fmt.Errorf("설정 조회 실패: %w", err)
			}

			// 같은 트랜잭션 안에서 정원 검사와 상태 변경을 수행한다.
			if err := s.accountant.EnsureRoom(ctx, tx, clubSettings); err != nil {
				return err
			}

			approved := model.ApprovalApproved
			applicant.AdminApproval.Status = &approved
			applicant.AdminApproval.ProcessedBy = &actor.Name
			applicant.AdminApproval.ProcessedAt = &now
			applicant.Status = model.StatusActive
			applicant.HasJoinedKakao = false
			applicant.HasCompletedOnboarding = false

			if err := s.memberRepository.Save(ctx, tx, applicant); err != nil {
				return fmt.Errorf("가입 승인 저장 실패: %w", err)
			}

			history := &model.StatusChangeHistory{
				MemberID:   applicant.ID,
				FromStatus: model.StatusPending,
				ToStatus:   model.StatusActive,
				ChangedBy:  actor.Name,
				Source:     model.SourceAdminApproval,
			}
			if err := s.memberRepository.RecordHistory(ctx, tx, history); err != nil {
				return fmt.Errorf("상태 변경 이력 기록 실패: %w", err)
			}

			if err := s.stampIntake(ctx, tx, applicant.ID, model.RequestApproved, actor.Name, nil); err != nil {
				return err
			}

		case "reject":
			if request.RejectReason == "" {
				return fmt.Errorf("applicantID=%d %w", applicantID, ErrRejectReasonRequired)
			}

			rejected := model.ApprovalRejected
			applicant.AdminApproval.Status = &rejected
			applicant.AdminApproval.RejectReason = &request.RejectReason
			applicant.AdminApproval.ProcessedBy = &actor.Name
			applicant.AdminApproval.ProcessedAt = &now

			if err := s.memberRepository.Save(ctx, tx, applicant); err != nil {
				return fmt.Errorf("가입 거절 저장 실패: %w", err)
			}

			if err := s.stampIntake(ctx, tx, applicant.ID, model.RequestRejected, actor.Name, &request.RejectReason); err != nil {
				return err
			}
		}

		log.Info("운영진 가입 결정 처리",
			"applicant_id", applicantID,
			"decision", request.Decision,
			"processed_by", actor.Name,
		)
		return nil
	})
}

// Resubmit re-enters a rejected applicant into the queue. 거절된 단계만
// 대기 상태로 되돌아간다: 추천인 거절이면 추천인 단계부터, 운영진 거절이면
// 운영진 단계만 다시 시작한다 (추천인 승인은 유지).
func (s *ApplicationService) Resubmit(ctx context.Context, memberID uint32, request *ResubmitRequest) (*ApplicationStatusResponse, error) {
	log := logger.FromContext(ctx)
	var response *ApplicationStatusResponse

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		applicant, err := s.findMember(ctx, tx, memberID)
		if err != nil {
			return err
		}

		if !applicant.IsApplicant() {
			return fmt.Errorf("memberID=%d status=%s %w", memberID, applicant.Status, ErrApplicationNotRejected)
		}

		if request.Referrer != nil {
			applicant.Referrer = *request.Referrer
		}
		if len(request.Strokes) > 0 {
			applicant.Strokes = strings.Join(request.Strokes, ",")
		}
		if request.Motivation != nil {
			applicant.Motivation = *request.Motivation
		}

		pending := model.ApprovalPending

		switch {
		case applicant.ReferrerStage() == model.ApprovalRejected:
			// 추천인 단계부터 재시작. 운영진 단계는 아직 생성되지 않은 상태를 유지한다.
			applicant.ReferrerApproval = model.ReferrerApproval{Status: &pending}
			applicant.AdminApproval = model.AdminApproval{}

		case applicant.AdminStage() == model.ApprovalRejected:
			// 운영진 단계만 재시작. 추천인 승인은 유지된다.
			applicant.AdminApproval = model.AdminApproval{Status: &pending}

			// 이전 신청 기록은 거절로 남았으므로 새 기록을 추가한다.
			intake := &model.MembershipApplication{
				MemberID:    applicant.ID,
				Name:        applicant.Name,
				Email:       applicant.Email,
				PhoneNumber: applicant.PhoneNumber,
				BirthDate:   applicant.BirthDate,
				Motivation:  applicant.Motivation,
				Status:      model.RequestPending,
			}
			if err := s.applicationRepository.Create(ctx, tx, intake); err != nil {
				return fmt.Errorf("신청 기록 생성 실패: %w", err)
			}

		default:
			return fmt.Errorf("memberID=%d %w", memberID, ErrApplicationNotRejected)
		}

		if err := s.memberRepository.Save(ctx, tx, applicant); err != nil {
			return fmt.Errorf("재신청 저장 실패: %w", err)
		}

		log.Info("가입 재신청 접수", "member_id", memberID)

		response = toStatusResponse(applicant)
		return nil
	})

	if err != nil {
		return nil, err
	}

	return response, nil
}

// Withdraw purges a rejected application entirely (member row included).
func (s *ApplicationService) Withdraw(ctx context.Context, memberID uint32) error {
	log := logger.FromContext(ctx)

	return database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		applicant, err := s.findMember(ctx, tx, memberID)
		if err != nil {
			return err
		}

		if !applicant.IsApplicant() {
			return fmt.Errorf("memberID=%d status=%s %w", memberID, applicant.Status, ErrApplicationNotRejected)
		}

		if applicant.ReferrerStage() != model.ApprovalRejected && applicant.AdminStage() != model.ApprovalRejected {
			return fmt.Errorf("memberID=%d %w", memberID, ErrApplicationNotRejected)
		}

		if err := s.applicationRepository.DeleteByMember(ctx, tx, applicant.ID); err != nil {
			return fmt.Errorf("신청 기록 삭제 실패: %w", err)
		}
		if err := s.memberRepository.Delete(ctx, tx, applicant.ID); err != nil {
			return fmt.Errorf("신청 철회 실패: %w", err)
		}

		log.Info("가입 신청 철회", "member_id", memberID, "email", logger.MaskEmail(applicant.Email))
		return nil
	})
}

// List returns intake rows for the admin queue, newest-first.
func (s *ApplicationService) List(ctx context.Context, status *model.RequestStatus) (*ListApplicationsResponse, error) {
	apps, err := s.applicationRepository.List(ctx, s.db, status)
	if err != nil {
		return nil, fmt.Errorf("가입 신청 목록 조회 실패: %w", err)
	}

	response := &ListApplicationsResponse{Applications: make([]ApplicationSummary, 0, len(apps))}
	for _, app := range apps {
		response.Applications = append(response.Applications, ApplicationSummary{
			ID:           app.ID,
			MemberID:     app.MemberID,
			Name:         app.Name,
			Email:        app.Email,
			PhoneNumber:  app.PhoneNumber,
			Motivation:   app.Motivation,
			Status:       string(app.Status),
			RejectReason: app.RejectReason,
			ProcessedBy:  app.ProcessedBy,
			ProcessedAt:  app.ProcessedAt,
			CreatedAt:    app.CreatedAt,
		})
	}
	return response, nil
}

func (s *ApplicationService) ensureChecklistAcknowledged(ctx context.Context, tx *gorm.DB, acknowledged []uint32) error {
	items, err := s.checklistRepository.ListActive(ctx, tx)
	if err != nil {
		return fmt.Errorf("체크리스트 조회 실패: %w", err)
	}

	acked := make(map[uint32]bool, len(acknowledged))
	for _, id := range acknowledged {
		acked[id] = true
	}

	for _, item := range items {
		if !acked[item.ID] {
			return fmt.Errorf("itemID=%d %w", item.ID, ErrChecklistRequired)
		}
	}
	return nil
}

func (s *ApplicationService) stampIntake(ctx context.Context, tx *gorm.DB, memberID uint32, status model.RequestStatus, processedBy string, rejectReason *string) error {
	intake, err := s.applicationRepository.FindPendingByMember(ctx, tx, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil // 신청 기록이 없어도 상태 기계 진행은 막지 않는다
		}
		return fmt.Errorf("신청 기록 조회 실패: %w", err)
	}

	if err := s.applicationRepository.Stamp(ctx, tx, intake, status, processedBy, rejectReason); err != nil {
		return fmt.Errorf("신청 기록 갱신 실패: %w", err)
	}
	return nil
}

func (s *ApplicationService) findMember(ctx context.Context, db *gorm.DB, memberID uint32) (*model.Member, error) {
	m, err := s.memberRepository.FindByID(ctx, db, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("memberID=%d %w", memberID, ErrApplicationNotFound)
		}
		return nil, fmt.Errorf("회원 조회 실패: %w", err)
	}
	return m, nil
}

func toStatusResponse(applicant *model.Member) *ApplicationStatusResponse {
	response := &ApplicationStatusResponse{
		MemberID:    applicant.ID,
		Name:        applicant.Name,
		Email:       applicant.Email,
		Status:      string(applicant.Status),
		Referrer:    applicant.Referrer,
		SubmittedAt: applicant.JoinedAt,
	}

	if applicant.ReferrerApproval.Status != nil {
		response.ReferrerApproval = &ApprovalStageResponse{
			Status:       string(*applicant.ReferrerApproval.Status),
			RejectReason: applicant.ReferrerApproval.RejectReason,
			ProcessedBy:  applicant.ReferrerApproval.ProcessedBy,
			ProcessedAt:  applicant.ReferrerApproval.ProcessedAt,
		}
	}

	if applicant.AdminApproval.Status != nil {
		response.AdminApproval = &ApprovalStageResponse{
			Status:       string(*applicant.AdminApproval.Status),
			RejectReason: applicant.AdminApproval.RejectReason,
			ProcessedBy:  applicant.AdminApproval.ProcessedBy,
			ProcessedAt:  applicant.AdminApproval.ProcessedAt,
		}
	}

	return response
}
