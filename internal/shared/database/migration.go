package database

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/daonswim/swim-club-api/internal/config"
	"github.com/daonswim/swim-club-api/internal/model"

	"gorm.io/gorm"
)

// CurrentSchemaVersion is the schema version this binary expects.
// 버전이 다르면 데이터를 날리지 않고 추가 마이그레이션만 수행한다.
const CurrentSchemaVersion = 2

// Migrate brings the schema up to CurrentSchemaVersion. A version mismatch
// is logged as an explicit event before the additive migration runs; stored
// data is never dropped.
func Migrate(db *gorm.DB, cfg *config.Config) error {
	stored, err := storedSchemaVersion(db)
	if err != nil {
		return fmt.Errorf("스키마 버전 확인 실패: %w", err)
	}

	switch {
	case stored == 0:
		slog.Info("신규 데이터베이스 - 스키마 생성 시작", "version", CurrentSchemaVersion, "env", cfg.App.Env)
	case stored != CurrentSchemaVersion:
		// 감지 신호를 명시적으로 남긴다. 과거 구현은 이 시점에 전체 초기화를
		// 수행했으나, 여기서는 추가 마이그레이션으로 대체한다.
		slog.Warn("스키마 버전 불일치 감지",
			"stored", stored,
			"expected", CurrentSchemaVersion,
			"env", cfg.App.Env,
		)
	default:
		slog.Info("스키마 버전 일치", "version", stored)
	}

	if err := runAutoMigrate(db); err != nil {
		return fmt.Errorf("테이블 생성 실패: %w", err)
	}

	if err := bumpSchemaVersion(db, stored); err != nil {
		return fmt.Errorf("스키마 버전 기록 실패: %w", err)
	}

	slog.Info("마이그레이션 완료", "version", CurrentSchemaVersion)
	return nil
}

// storedSchemaVersion reads the marker row. Returns 0 when the table or the
// row does not exist yet (fresh database).
func storedSchemaVersion(db *gorm.DB) (int, error) {
	if !db.Migrator().HasTable(&model.SchemaVersion{}) {
		return 0, nil
	}

	var marker model.SchemaVersion
	err := db.First(&marker, "id = ?", 1).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return marker.Version, nil
}

func bumpSchemaVersion(db *gorm.DB, stored int) error {
	if stored == 0 {
		return db.Create(&model.SchemaVersion{ID: 1, Version: CurrentSchemaVersion}).Error
	}
	return db.Model(&model.SchemaVersion{}).
		Where("id = ?", 1).
		Update("version", CurrentSchemaVersion).Error
}

// Models returns every persisted model in dependency order. testutil과
// 마이그레이션이 같은 목록을 공유한다.
func Models() []interface{} {
	return []interface{}{
		&model.SchemaVersion{},
		&model.Member{},
		&model.MembershipApplication{},
		&model.StatusChangeRequest{},
		&model.WithdrawalRequest{},
		&model.StatusChangeHistory{},
		&model.SystemSettings{},
		&model.ChecklistItem{},
	}
}

// runAutoMigrate creates or extends tables based on model definitions
func runAutoMigrate(db *gorm.DB) error {
	for _, m := range Models() {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("%T 마이그레이션 실패: %w", m, err)
		}
		slog.Debug("테이블 준비됨", "model", fmt.Sprintf("%T", m))
	}

	return nil
}
