package withdrawal

import "time"

type CreateWithdrawalRequest struct {
	Reason string `json:"reason" binding:"required,min=1,max=500"`
}

type DecisionRequest struct {
	Decision     string `json:"decision" binding:"required,oneof=approve reject"`
	RejectReason string `json:"rejectReason" binding:"omitempty,max=500"`
}

type WithdrawalResponse struct {
	ID           uint32     `json:"id"`
	MemberID     uint32     `json:"memberId"`
	MemberName   string     `json:"memberName"`
	Reason       string     `json:"reason"`
	Status       string     `json:"status"`
	RejectReason *string    `json:"rejectReason,omitempty"`
	ProcessedBy  *string    `json:"processedBy,omitempty"`
	ProcessedAt  *time.Time `json:"processedAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

type ListWithdrawalsResponse struct {
	Requests []WithdrawalResponse `json:"requests"`
}
