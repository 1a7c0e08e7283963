package application

import "time"

type SubmitApplicationRequest struct {
	Name          string     `json:"name" binding:"required,min=1,max=20"`
	Email         string     `json:"email" binding:"required,email,max=50"`
	Password      string     `json:"password" binding:"required,min=8,max=15"`
	Nickname      *string    `json:"nickname" binding:"omitempty,max=20"`
	PhoneNumber   string     `json:"phoneNumber" binding:"required,phone"`
	BirthDate     *time.Time `json:"birthDate"`
	BirthCalendar string     `json:"birthCalendar" binding:"omitempty,oneof=solar lunar"`
	Gender        string     `json:"gender" binding:"omitempty,oneof=male female"`

	Referrer   string   `json:"referrer" binding:"required,min=1,max=20"`          // 추천인 이름
	Strokes    []string `json:"strokes" binding:"required,min=1,dive,min=1"`       // 가능 영법
	Motivation string   `json:"motivation" binding:"required,min=1,max=1000"`      // 가입 동기

	// 확인한 체크리스트 항목 ID 목록. 활성 항목을 모두 포함해야 한다.
	AcknowledgedChecklistItems []uint32 `json:"acknowledgedChecklistItems"`
}

type ApprovalStageResponse struct {
	Status       string     `json:"status"`
	RejectReason *string    `json:"rejectReason,omitempty"`
	ProcessedBy  *string    `json:"processedBy,omitempty"`
	ProcessedAt  *time.Time `json:"processedAt,omitempty"`
}

type ApplicationStatusResponse struct {
	MemberID         uint32                 `json:"memberId"`
	Name             string                 `json:"name"`
	Email            string                 `json:"email"`
	Status           string                 `json:"status"`
	Referrer         string                 `json:"referrer"`
	ReferrerApproval *ApprovalStageResponse `json:"referrerApproval,omitempty"`
	AdminApproval    *ApprovalStageResponse `json:"adminApproval,omitempty"`
	SubmittedAt      time.Time              `json:"submittedAt"`
}

type ReferrerDecisionRequest struct {
	Decision string `json:"decision" binding:"required,oneof=approve reject"`

	// approve 시 3가지 약속에 모두 동의해야 한다.
	AgreedSuitability bool `json:"agreedSuitability"`
	AgreedMentoring   bool `json:"agreedMentoring"`
	AgreedCapacity    bool `json:"agreedCapacity"`

	// reject 시 필수
	RejectReason string `json:"rejectReason" binding:"omitempty,max=500"`
}

type AdminDecisionRequest struct {
	Decision     string `json:"decision" binding:"required,oneof=approve reject"`
	RejectReason string `json:"rejectReason" binding:"omitempty,max=500"`
}

// ResubmitRequest lets a rejected applicant edit and re-enter the queue.
// nil 필드는 기존 값을 유지한다.
type ResubmitRequest struct {
	Referrer   *string  `json:"referrer" binding:"omitempty,min=1,max=20"`
	Strokes    []string `json:"strokes" binding:"omitempty,min=1,dive,min=1"`
	Motivation *string  `json:"motivation" binding:"omitempty,min=1,max=1000"`
}

type ApplicationSummary struct {
	ID           uint32     `json:"id"`
	MemberID     uint32     `json:"memberId"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PhoneNumber  string     `json:"phoneNumber"`
	Motivation   string     `json:"motivation"`
	Status       string     `json:"status"`
	RejectReason *string    `json:"rejectReason,omitempty"`
	ProcessedBy  *string    `json:"processedBy,omitempty"`
	ProcessedAt  *time.Time `json:"processedAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

type ListApplicationsResponse struct {
	Applications []ApplicationSummary `json:"applications"`
}
