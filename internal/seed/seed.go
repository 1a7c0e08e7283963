// Package seed prepares the minimum data the service needs on first boot:
// 관리자 계정 1개, 시스템 설정 싱글톤, 기본 가입 전 확인사항.
// 이미 존재하는 데이터는 건드리지 않으므로 매 부팅마다 호출해도 안전하다.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/daonswim/swim-club-api/internal/config"
	"github.com/daonswim/swim-club-api/internal/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Run seeds first-boot data. Idempotent.
func Run(ctx context.Context, db *gorm.DB, cfg *config.Config) error {
	if err := seedAdmin(ctx, db, cfg); err != nil {
		return fmt.Errorf("관리자 계정 시드 실패: %w", err)
	}
	if err := seedSettings(ctx, db); err != nil {
		return fmt.Errorf("시스템 설정 시드 실패: %w", err)
	}
	if err := seedChecklist(ctx, db); err != nil {
		return fmt.Errorf("가입 전 확인사항 시드 실패: %w", err)
	}
	return nil
}

func seedAdmin(ctx context.Context, db *gorm.DB, cfg *config.Config) error {
	var count int64
	if err := db.WithContext(ctx).
		Model(&model.Member{}).
		Where("role = ?", model.RoleAdmin).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.Seed.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("비밀번호 암호화 실패: %w", err)
	}

	admin := model.Member{
		Email:                  cfg.Seed.AdminEmail,
		Password:               string(hashed),
		Name:                   cfg.Seed.AdminName,
		PhoneNumber:            cfg.Seed.AdminPhone,
		BirthCalendar:          model.CalendarSolar,
		Status:                 model.StatusActive,
		Role:                   model.RoleAdmin,
		HasJoinedKakao:         true,
		HasCompletedOnboarding: true,
		JoinedAt:               time.Now(),
	}
	if err := db.WithContext(ctx).Create(&admin).Error; err != nil {
		return err
	}

	slog.Info("초기 관리자 계정 생성", "name", admin.Name)
	return nil
}

func seedSettings(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).
		Model(&model.SystemSettings{}).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	settings := model.SystemSettings{
		ID:                        1,
		MaxCapacity:               30,
		WeeklyCapacity:            40,
		IncludeInactiveInCapacity: false,
		DormancyPeriodWeeks:       4,
	}
	if err := db.WithContext(ctx).Create(&settings).Error; err != nil {
		return err
	}

	slog.Info("시스템 설정 기본값 생성",
		"max_capacity", settings.MaxCapacity,
		"weekly_capacity", settings.WeeklyCapacity)
	return nil
}

func seedChecklist(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).
		Model(&model.ChecklistItem{}).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	items := []model.ChecklistItem{
		{Label: "정기 수영 일정 참여", Description: "매주 토요일 오전 정기 수영에 참여할 수 있습니다.", DisplayOrder: 1, IsActive: true},
		{Label: "기초 영법 가능", Description: "자유형으로 25m 이상 완주할 수 있습니다.", DisplayOrder: 2, IsActive: true},
		{Label: "회칙 동의", Description: "회비 납부 및 회칙에 동의합니다.", DisplayOrder: 3, IsActive: true},
	}
	if err := db.WithContext(ctx).Create(&items).Error; err != nil {
		return err
	}

	slog.Info("가입 전 확인사항 기본 항목 생성", "count", len(items))
	return nil
}
