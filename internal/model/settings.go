package model

// SystemSettings is the club-wide configuration singleton. Runtime policy
// (정원, 휴면 정책 등) lives here rather than in env config because admins
// change it while the server is running.
type SystemSettings struct {
	ID uint32 `gorm:"column:id;primaryKey"`

	MaxCapacity               int    `gorm:"column:max_capacity;not null"`                              // 최대 정원
	WeeklyCapacity            int    `gorm:"column:weekly_capacity;not null"`                           // 주간 참여 정원
	IncludeInactiveInCapacity bool   `gorm:"column:include_inactive_in_capacity;not null;default:false"` // 휴면 회원 정원 포함 여부
	DormancyPeriodWeeks       int    `gorm:"column:dormancy_period_weeks;not null"`                     // 휴면 전환 기준 (주)
	KakaoInviteLink           string `gorm:"column:kakao_invite_link;type:VARCHAR(500)"`                // 카카오톡 초대 링크

	UpdatedBy *string `gorm:"column:updated_by;type:VARCHAR(100)"`

	BaseEntity
}

func (*SystemSettings) TableName() string {
	return "system_settings"
}

// ChecklistItem is an intake checklist entry. Every active item must be
// acknowledged before an application can be submitted.
type ChecklistItem struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement"`

	Label        string `gorm:"column:label;type:VARCHAR(200);not null"`
	Description  string `gorm:"column:description;type:VARCHAR(500)"`
	IsActive     bool   `gorm:"column:is_active;not null;default:true"`
	DisplayOrder int    `gorm:"column:display_order;not null"`

	BaseEntity
}

func (*ChecklistItem) TableName() string {
	return "checklist_item"
}

// SchemaVersion is the schema marker row. On mismatch with the binary's
// expected version the migration logs the event and runs an additive
// migration instead of resetting data.
type SchemaVersion struct {
	ID      uint32 `gorm:"column:id;primaryKey"`
	Version int    `gorm:"column:version;not null"`

	BaseEntity
}

func (*SchemaVersion) TableName() string {
	return "schema_version"
}
