package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/daonswim/swim-club-api/internal/capacity"
	"github.com/daonswim/swim-club-api/internal/member"
	"github.com/daonswim/swim-club-api/internal/model"
	"github.com/daonswim/swim-club-api/internal/shared/database"
	"github.com/daonswim/swim-club-api/internal/shared/logger"
	"gorm.io/gorm"
)

type SettingsService struct {
	db                 *gorm.DB
	settingsRepository *SettingsRepository
	memberRepository   *member.MemberRepository
	accountant         *capacity.Accountant
}

func NewSettingsService(db *gorm.DB, settingsRepository *SettingsRepository, memberRepository *member.MemberRepository, accountant *capacity.Accountant) *SettingsService {
	return &SettingsService{
		db:                 db,
		settingsRepository: settingsRepository,
		memberRepository:   memberRepository,
		accountant:         accountant,
	}
}

func (s *SettingsService) Get(ctx context.Context) (*SettingsResponse, error) {
	settings, err := s.settingsRepository.Get(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("설정 조회 실패: %w", err)
	}
	return toResponse(settings), nil
}

// Update applies a partial settings update. 정원을 현재 인원보다 낮게 줄이는
// 것도 허용한다: 이후 승인은 잔여 정원 <= 0 으로 차단된다.
func (s *SettingsService) Update(ctx context.Context, actorID uint32, request *UpdateSettingsRequest) (*SettingsResponse, error) {
	log := logger.FromContext(ctx)
	var response *SettingsResponse

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		actor, err := s.memberRepository.FindByID(ctx, tx, actorID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("운영진을 찾을 수 없습니다 actorID=%d %w", actorID, member.ErrMemberNotFound)
			}
			return fmt.Errorf("운영진 조회 실패: %w", err)
		}

		settings, err := s.settingsRepository.Get(ctx, tx)
		if err != nil {
			return fmt.Errorf("설정 조회 실패: %w", err)
		}

		if request.MaxCapacity != nil {
			settings.MaxCapacity = *request.MaxCapacity
		}
		if request.WeeklyCapacity != nil {
			settings.WeeklyCapacity = *request.WeeklyCapacity
		}
		if request.IncludeInactiveInCapacity != nil {
			settings.IncludeInactiveInCapacity = *request.IncludeInactiveInCapacity
		}
		if request.DormancyPeriodWeeks != nil {
			settings.DormancyPeriodWeeks = *request.DormancyPeriodWeeks
		}
		if request.KakaoInviteLink != nil {
			settings.KakaoInviteLink = *request.KakaoInviteLink
		}
		settings.UpdatedBy = &actor.Name

		if err := s.settingsRepository.Save(ctx, tx, settings); err != nil {
			return fmt.Errorf("설정 저장 실패: %w", err)
		}

		log.Info("시스템 설정 변경",
			"max_capacity", settings.MaxCapacity,
			"include_inactive", settings.IncludeInactiveInCapacity,
			"updated_by", actor.Name,
		)

		response = toResponse(settings)
		return nil
	})

	if err != nil {
		return nil, err
	}

	return response, nil
}

// Occupancy reports current slot usage for the admin console.
func (s *SettingsService) Occupancy(ctx context.Context) (*capacity.Occupancy, error) {
	settings, err := s.settingsRepository.Get(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("설정 조회 실패: %w", err)
	}

	snapshot, err := s.accountant.Snapshot(ctx, s.db, settings)
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

func toResponse(settings *model.SystemSettings) *SettingsResponse {
	return &SettingsResponse{
		MaxCapacity:               settings.MaxCapacity,
		WeeklyCapacity:            settings.WeeklyCapacity,
		IncludeInactiveInCapacity: settings.IncludeInactiveInCapacity,
		DormancyPeriodWeeks:       settings.DormancyPeriodWeeks,
		KakaoInviteLink:           settings.KakaoInviteLink,
		UpdatedBy:                 settings.UpdatedBy,
		UpdatedAt:                 settings.UpdatedAt,
	}
}
