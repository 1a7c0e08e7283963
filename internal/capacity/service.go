package capacity

import (
	"context"
	"fmt"
	"net/http"

	"github.com/daonswim/swim-club-api/internal/model"
	sharedError "github.com/daonswim/swim-club-api/internal/shared/error"
	"gorm.io/gorm"
)

const capacityFull = "CAPACITY_FULL" // errInfo

// ErrCapacityFull is returned when an admission would exceed the configured
// maximum capacity.
var ErrCapacityFull = sharedError.NewDomainError(capacityFull)

func init() {
	sharedError.RegisterDomainErrorResponse(capacityFull, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "CAPACITY-001",
		Message: "정원이 가득 찼습니다.",
	})
}

// Occupancy is the current slot usage reported to admins.
type Occupancy struct {
	Count     int `json:"count"`
	Max       int `json:"max"`
	Remaining int `json:"remaining"` // 정원 축소 시 음수 가능
}

// Accountant answers how many slots are occupied and whether there is room
// for one more. 승인 시점의 트랜잭션 안에서 호출해야 정원 초과 경쟁을 막는다.
type Accountant struct{}

func NewAccountant() *Accountant {
	return &Accountant{}
}

// Count returns the number of members consuming a slot under the configured
// inclusion policy. Withdrawn and pending members never count.
func (a *Accountant) Count(ctx context.Context, db *gorm.DB, settings *model.SystemSettings) (int, error) {
	statuses := []model.MemberStatus{model.StatusActive}
	if settings.IncludeInactiveInCapacity {
		statuses = append(statuses, model.StatusInactive)
	}

	var count int64
	err := db.WithContext(ctx).
		Model(&model.Member{}).
		Where("status IN ?", statuses).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("정원 계산 실패: %w", err)
	}

	return int(count), nil
}

// Remaining returns maxCapacity minus occupancy. The result may be negative
// when capacity was lowered below current occupancy; callers treat <= 0 as
// full rather than as an error.
func (a *Accountant) Remaining(ctx context.Context, db *gorm.DB, settings *model.SystemSettings) (int, error) {
	count, err := a.Count(ctx, db, settings)
	if err != nil {
		return 0, err
	}
	return settings.MaxCapacity - count, nil
}

// EnsureRoom fails with ErrCapacityFull when no slot is available. Must be
// called inside the same transaction that performs the admission write.
func (a *Accountant) EnsureRoom(ctx context.Context, db *gorm.DB, settings *model.SystemSettings) error {
	remaining, err := a.Remaining(ctx, db, settings)
	if err != nil {
		return err
	}
	if remaining <= 0 {
		return fmt.Errorf("잔여 정원 없음 remaining=%d max=%d %w", remaining, settings.MaxCapacity, ErrCapacityFull)
	}
	return nil
}

// Snapshot assembles the occupancy report for the admin console.
func (a *Accountant) Snapshot(ctx context.Context, db *gorm.DB, settings *model.SystemSettings) (*Occupancy, error) {
	count, err := a.Count(ctx, db, settings)
	if err != nil {
		return nil, err
	}
	return &Occupancy{
		Count:     count,
		Max:       settings.MaxCapacity,
		Remaining: settings.MaxCapacity - count,
	}, nil
}
