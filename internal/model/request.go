package model

import "time"

// RequestStatus is the state of a pending-request queue entry
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

// MembershipApplication is the append-only intake log row created at
// submission and stamped when the admin stage is decided. The approval
// state machine itself lives on the Member's embedded approval records.
type MembershipApplication struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement"`

	MemberID    uint32     `gorm:"column:member_id;not null;index:idx_application_member"`
	Name        string     `gorm:"column:name;type:VARCHAR(100);not null"`
	Email       string     `gorm:"column:email;type:VARCHAR(255);not null;index:idx_application_email"`
	PhoneNumber string     `gorm:"column:phone_number;type:VARCHAR(100);not null"`
	BirthDate   *time.Time `gorm:"column:birth_date"`
	Motivation  string     `gorm:"column:motivation;type:VARCHAR(1000);not null"` // 가입 동기

	Status       RequestStatus `gorm:"column:status;type:VARCHAR(10);not null;index:idx_application_status"`
	RejectReason *string       `gorm:"column:reject_reason;type:VARCHAR(500)"`
	ProcessedBy  *string       `gorm:"column:processed_by;type:VARCHAR(100)"`
	ProcessedAt  *time.Time    `gorm:"column:processed_at"`

	BaseEntity
}

func (*MembershipApplication) TableName() string {
	return "membership_application"
}

// StatusChangeRequest is a member's request to flip between active and
// inactive. At most one pending request may exist per member.
type StatusChangeRequest struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement"`

	MemberID   uint32 `gorm:"column:member_id;not null;index:idx_status_change_member"`
	MemberName string `gorm:"column:member_name;type:VARCHAR(100);not null"` // 신청 시점 이름 스냅샷

	CurrentStatus   MemberStatus `gorm:"column:current_status;type:VARCHAR(10);not null"`
	RequestedStatus MemberStatus `gorm:"column:requested_status;type:VARCHAR(10);not null"`
	Reason          string       `gorm:"column:reason;type:VARCHAR(500);not null"`

	Status       RequestStatus `gorm:"column:status;type:VARCHAR(10);not null;index:idx_status_change_status"`
	RejectReason *string       `gorm:"column:reject_reason;type:VARCHAR(500)"`
	ProcessedBy  *string       `gorm:"column:processed_by;type:VARCHAR(100)"`
	ProcessedAt  *time.Time    `gorm:"column:processed_at"`

	BaseEntity
}

func (*StatusChangeRequest) TableName() string {
	return "status_change_request"
}

// WithdrawalRequest is a member's request to leave the club. Approval is
// irreversible: the member becomes withdrawn.
type WithdrawalRequest struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement"`

	MemberID   uint32 `gorm:"column:member_id;not null;index:idx_withdrawal_member"`
	MemberName string `gorm:"column:member_name;type:VARCHAR(100);not null"`
	Reason     string `gorm:"column:reason;type:VARCHAR(500);not null"` // 탈퇴 사유

	Status       RequestStatus `gorm:"column:status;type:VARCHAR(10);not null;index:idx_withdrawal_status"`
	RejectReason *string       `gorm:"column:reject_reason;type:VARCHAR(500)"`
	ProcessedBy  *string       `gorm:"column:processed_by;type:VARCHAR(100)"`
	ProcessedAt  *time.Time    `gorm:"column:processed_at"`

	BaseEntity
}

func (*WithdrawalRequest) TableName() string {
	return "withdrawal_request"
}

// HistorySource identifies which path produced a status transition
type HistorySource string

const (
	SourceRequest       HistorySource = "request"        // 상태 변경 신청 승인
	SourceWithdrawal    HistorySource = "withdrawal"     // 탈퇴 신청 승인
	SourceAdminApproval HistorySource = "admin_approval" // 가입 승인
	SourceAdminOverride HistorySource = "admin_override" // 운영진 직접 변경
)

// StatusChangeHistory records every member status transition, whichever
// path caused it.
type StatusChangeHistory struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement"`

	MemberID   uint32        `gorm:"column:member_id;not null;index:idx_history_member"`
	FromStatus MemberStatus  `gorm:"column:from_status;type:VARCHAR(10);not null"`
	ToStatus   MemberStatus  `gorm:"column:to_status;type:VARCHAR(10);not null"`
	ChangedBy  string        `gorm:"column:changed_by;type:VARCHAR(100);not null"`
	Source     HistorySource `gorm:"column:source;type:VARCHAR(20);not null"`

	BaseEntity
}

func (*StatusChangeHistory) TableName() string {
	return "status_change_history"
}
