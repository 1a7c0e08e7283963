package statuschange

import "time"

type CreateStatusChangeRequest struct {
	RequestedStatus string `json:"requestedStatus" binding:"required,memberstatus"`
	Reason          string `json:"reason" binding:"required,min=1,max=500"`
}

type DecisionRequest struct {
	Decision     string `json:"decision" binding:"required,oneof=approve reject"`
	RejectReason string `json:"rejectReason" binding:"omitempty,max=500"`
}

type StatusChangeResponse struct {
	ID              uint32     `json:"id"`
	MemberID        uint32     `json:"memberId"`
	MemberName      string     `json:"memberName"`
	CurrentStatus   string     `json:"currentStatus"`
	RequestedStatus string     `json:"requestedStatus"`
	Reason          string     `json:"reason"`
	Status          string     `json:"status"`
	RejectReason    *string    `json:"rejectReason,omitempty"`
	ProcessedBy     *string    `json:"processedBy,omitempty"`
	ProcessedAt     *time.Time `json:"processedAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

type ListStatusChangesResponse struct {
	Requests []StatusChangeResponse `json:"requests"`
}
