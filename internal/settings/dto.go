package settings

import "time"

type SettingsResponse struct {
	MaxCapacity               int       `json:"maxCapacity"`
	WeeklyCapacity            int       `json:"weeklyCapacity"`
	IncludeInactiveInCapacity bool      `json:"includeInactiveInCapacity"`
	DormancyPeriodWeeks       int       `json:"dormancyPeriodWeeks"`
	KakaoInviteLink           string    `json:"kakaoInviteLink,omitempty"`
	UpdatedBy                 *string   `json:"updatedBy,omitempty"`
	UpdatedAt                 time.Time `json:"updatedAt"`
}

// UpdateSettingsRequest is a partial update: nil 필드는 기존 값을 유지한다.
type UpdateSettingsRequest struct {
	MaxCapacity               *int    `json:"maxCapacity" binding:"omitempty,gte=1"`
	WeeklyCapacity            *int    `json:"weeklyCapacity" binding:"omitempty,gte=0"`
	IncludeInactiveInCapacity *bool   `json:"includeInactiveInCapacity"`
	DormancyPeriodWeeks       *int    `json:"dormancyPeriodWeeks" binding:"omitempty,gte=1"`
	KakaoInviteLink           *string `json:"kakaoInviteLink" binding:"omitempty,max=500"`
}
