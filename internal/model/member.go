package model

import "time"

// MemberStatus is the lifecycle state of a member
type MemberStatus string

const (
	StatusPending   MemberStatus = "pending"   // 가입 승인 대기
	StatusActive    MemberStatus = "active"    // 활동 회원
	StatusInactive  MemberStatus = "inactive"  // 휴면 회원
	StatusWithdrawn MemberStatus = "withdrawn" // 탈퇴 회원 (최종 상태)
)

// IsValid reports whether s is a known member status
func (s MemberStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusActive, StatusInactive, StatusWithdrawn:
		return true
	}
	return false
}

// ApprovalStatus is the state of a single approval stage (추천인/운영진)
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// Role is the authorization role, orthogonal to MemberStatus
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// BirthCalendar distinguishes solar/lunar birth dates
type BirthCalendar string

const (
	CalendarSolar BirthCalendar = "solar"
	CalendarLunar BirthCalendar = "lunar"
)

// ReferrerApproval is the first approval stage, owned by the referring member.
// Columns are nullable as a group: Status is nil until the applicant submits.
type ReferrerApproval struct {
	Status            *ApprovalStatus `gorm:"column:status;type:VARCHAR(10)"`
	AgreedSuitability bool            `gorm:"column:agreed_suitability;not null;default:false"` // 가입 적합성 동의
	AgreedMentoring   bool            `gorm:"column:agreed_mentoring;not null;default:false"`   // 멘토링 동의
	AgreedCapacity    bool            `gorm:"column:agreed_capacity;not null;default:false"`    // 수모 지원 동의
	RejectReason      *string         `gorm:"column:reject_reason;type:VARCHAR(500)"`
	ProcessedBy       *string         `gorm:"column:processed_by;type:VARCHAR(100)"`
	ProcessedAt       *time.Time      `gorm:"column:processed_at"`
}

// AdminApproval is the second approval stage. Created (Status non-nil) only
// after the referrer stage has been approved.
type AdminApproval struct {
	Status       *ApprovalStatus `gorm:"column:status;type:VARCHAR(10)"`
	RejectReason *string         `gorm:"column:reject_reason;type:VARCHAR(500)"`
	ProcessedBy  *string         `gorm:"column:processed_by;type:VARCHAR(100)"`
	ProcessedAt  *time.Time      `gorm:"column:processed_at"`
}

// Member represents a club member of any lifecycle state, including
// applicants (status=pending) still in the approval pipeline.
type Member struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement"`

	// 이메일 (로그인 ID). 탈퇴 회원의 재가입을 허용해야 하므로 DB unique 제약
	// 대신 서비스 계층에서 '탈퇴 외 상태' 중복을 검사한다.
	Email    string `gorm:"column:email;type:VARCHAR(255);not null;index:idx_member_email"`
	Password string `gorm:"column:password;type:VARCHAR(60);not null"`                            // 암호화된 비밀번호

	Name          string         `gorm:"column:name;type:VARCHAR(100);not null"`      // 이름
	Nickname      *string        `gorm:"column:nickname;type:VARCHAR(100)"`           // 닉네임
	PhoneNumber   string         `gorm:"column:phone_number;type:VARCHAR(100);not null"` // 핸드폰 번호
	BirthDate     *time.Time     `gorm:"column:birth_date"`                           // 생년월일
	BirthCalendar BirthCalendar  `gorm:"column:birth_calendar;type:VARCHAR(10);not null;default:solar"`
	Gender        string         `gorm:"column:gender;type:VARCHAR(10)"`
	Position      string         `gorm:"column:position;type:VARCHAR(50)"` // 직책 태그

	Status MemberStatus `gorm:"column:status;type:VARCHAR(10);not null;index:idx_member_status"`
	Role   Role         `gorm:"column:role;type:VARCHAR(10);not null;default:member"`

	// 가입 신청 내용
	Referrer   string `gorm:"column:referrer;type:VARCHAR(100)"`    // 추천인 이름
	Strokes    string `gorm:"column:strokes;type:VARCHAR(200)"`     // 가능 영법 (쉼표 구분)
	Motivation string `gorm:"column:motivation;type:VARCHAR(1000)"` // 가입 동기

	ReferrerApproval ReferrerApproval `gorm:"embedded;embeddedPrefix:referrer_approval_"`
	AdminApproval    AdminApproval    `gorm:"embedded;embeddedPrefix:admin_approval_"`

	HasJoinedKakao         bool `gorm:"column:has_joined_kakao;not null;default:false"`         // 카카오톡 채팅방 입장 여부
	HasCompletedOnboarding bool `gorm:"column:has_completed_onboarding;not null;default:false"` // 온보딩 완료 여부

	JoinedAt time.Time `gorm:"column:joined_at;not null"` // 가입(신청) 일시

	BaseEntity
}

// TableName specifies the table name for Member
func (*Member) TableName() string {
	return "member"
}

// IsApplicant reports whether the member is still in the approval pipeline
func (m *Member) IsApplicant() bool {
	return m.Status == StatusPending
}

// ReferrerStage returns the referrer approval status, or ApprovalPending
// semantics are undefined when the member is not an applicant.
func (m *Member) ReferrerStage() ApprovalStatus {
	if m.ReferrerApproval.Status == nil {
		return ""
	}
	return *m.ReferrerApproval.Status
}

// AdminStage returns the admin approval status, empty while the referrer
// stage is not yet approved.
func (m *Member) AdminStage() ApprovalStatus {
	if m.AdminApproval.Status == nil {
		return ""
	}
	return *m.AdminApproval.Status
}
