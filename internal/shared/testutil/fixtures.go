package testutil

import (
	"testing"
	"time"

	"github.com/daonswim/swim-club-api/internal/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// FixturePassword is the plain-text password of every fixture member.
const FixturePassword = "password123"

// CreateMember inserts a member with the given status and returns it.
func CreateMember(t *testing.T, db *gorm.DB, name, email string, status model.MemberStatus) *model.Member {
	t.Helper()

	// MinCost keeps test setup fast
	hashed, err := bcrypt.GenerateFromPassword([]byte(FixturePassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash fixture password: %v", err)
	}

	m := &model.Member{
		Email:         email,
		Password:      string(hashed),
		Name:          name,
		PhoneNumber:   "010-1234-5678",
		BirthCalendar: model.CalendarSolar,
		Status:        status,
		Role:          model.RoleMember,
		JoinedAt:      time.Now(),
	}
	if err := db.Create(m).Error; err != nil {
		t.Fatalf("Failed to create fixture member: %v", err)
	}
	return m
}

// CreateAdmin inserts an active admin member.
func CreateAdmin(t *testing.T, db *gorm.DB, name, email string) *model.Member {
	t.Helper()

	m := CreateMember(t, db, name, email, model.StatusActive)
	m.Role = model.RoleAdmin
	if err := db.Save(m).Error; err != nil {
		t.Fatalf("Failed to promote fixture admin: %v", err)
	}
	return m
}

// CreateApplicant inserts a pending member whose referrer stage is open,
// plus the matching intake log row.
func CreateApplicant(t *testing.T, db *gorm.DB, name, email, referrer string) *model.Member {
	t.Helper()

	m := CreateMember(t, db, name, email, model.StatusPending)
	pending := model.ApprovalPending
	m.Referrer = referrer
	m.ReferrerApproval = model.ReferrerApproval{Status: &pending}
	if err := db.Save(m).Error; err != nil {
		t.Fatalf("Failed to open fixture referrer stage: %v", err)
	}

	application := &model.MembershipApplication{
		MemberID: m.ID,
		Status:   model.RequestPending,
	}
	if err := db.Create(application).Error; err != nil {
		t.Fatalf("Failed to create fixture application: %v", err)
	}
	return m
}

// CreateSettings inserts the settings singleton with the given capacity.
func CreateSettings(t *testing.T, db *gorm.DB, maxCapacity int, includeInactive bool) *model.SystemSettings {
	t.Helper()

	settings := &model.SystemSettings{
		ID:                        1,
		MaxCapacity:               maxCapacity,
		WeeklyCapacity:            40,
		IncludeInactiveInCapacity: includeInactive,
		DormancyPeriodWeeks:       4,
	}
	if err := db.Create(settings).Error; err != nil {
		t.Fatalf("Failed to create fixture settings: %v", err)
	}
	return settings
}

// CreateChecklistItem inserts an active checklist item.
func CreateChecklistItem(t *testing.T, db *gorm.DB, label string, order int) *model.ChecklistItem {
	t.Helper()

	item := &model.ChecklistItem{
		Label:        label,
		IsActive:     true,
		DisplayOrder: order,
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("Failed to create fixture checklist item: %v", err)
	}
	return item
}
