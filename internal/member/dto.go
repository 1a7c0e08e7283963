package member

import "time"

type GetProfileResponse struct {
	ID                     uint32     `json:"id"`
	Email                  string     `json:"email"`
	Name                   string     `json:"name"`
	Nickname               *string    `json:"nickname,omitempty"`
	PhoneNumber            string     `json:"phoneNumber,omitempty"`
	BirthDate              *time.Time `json:"birthDate,omitempty"`
	BirthCalendar          string     `json:"birthCalendar"`
	Gender                 string     `json:"gender,omitempty"`
	Position               string     `json:"position,omitempty"`
	Status                 string     `json:"status"`
	Role                   string     `json:"role"`
	HasJoinedKakao         bool       `json:"hasJoinedKakao"`
	HasCompletedOnboarding bool       `json:"hasCompletedOnboarding"`
	JoinedAt               time.Time  `json:"joinedAt"`
}

type UpdateProfileRequest struct {
	Name          string     `json:"name" binding:"required,min=1,max=20"`
	Nickname      *string    `json:"nickname" binding:"omitempty,max=20"`
	PhoneNumber   string     `json:"phoneNumber" binding:"required,phone"`
	BirthDate     *time.Time `json:"birthDate"`
	BirthCalendar string     `json:"birthCalendar" binding:"omitempty,oneof=solar lunar"`
}

// UpdateOnboardingRequest toggles onboarding flags. 포인터로 받아 전달된
// 플래그만 갱신한다.
type UpdateOnboardingRequest struct {
	HasJoinedKakao         *bool `json:"hasJoinedKakao"`
	HasCompletedOnboarding *bool `json:"hasCompletedOnboarding"`
}

type MemberSummary struct {
	ID       uint32    `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Nickname *string   `json:"nickname,omitempty"`
	Status   string    `json:"status"`
	Role     string    `json:"role"`
	Position string    `json:"position,omitempty"`
	JoinedAt time.Time `json:"joinedAt"`
}

type ListMembersResponse struct {
	Members []MemberSummary `json:"members"`
}

// OverrideStatusRequest is the admin escape hatch: 신청 큐를 거치지 않고
// 상태를 직접 바꾼다.
type OverrideStatusRequest struct {
	Status string `json:"status" binding:"required,overridestatus"`
}

type HistoryEntry struct {
	ID         uint32    `json:"id"`
	FromStatus string    `json:"fromStatus"`
	ToStatus   string    `json:"toStatus"`
	ChangedBy  string    `json:"changedBy"`
	Source     string    `json:"source"`
	CreatedAt  time.Time `json:"createdAt"`
}

type ListHistoryResponse struct {
	Histories []HistoryEntry `json:"histories"`
}
