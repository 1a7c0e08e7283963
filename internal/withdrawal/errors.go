package withdrawal

import (
	"net/http"

	sharedError "github.com/daonswim/swim-club-api/internal/shared/error"
)

const (
	requestNotFound      = "WITHDRAWAL_NOT_FOUND"       // errInfo
	alreadyPending       = "WITHDRAWAL_ALREADY_PENDING" // errInfo
	alreadyProcessed     = "WITHDRAWAL_ALREADY_PROCESSED"
	rejectReasonRequired = "WITHDRAWAL_REJECT_REASON_REQUIRED"
)

var (
	ErrRequestNotFound = sharedError.NewDomainError(requestNotFound)

	// ErrAlreadyPending: 대기 중인 상태 변경/탈퇴 신청이 있으면 새 탈퇴
	// 신청을 만들 수 없다.
	ErrAlreadyPending = sharedError.NewDomainError(alreadyPending)

	ErrAlreadyProcessed = sharedError.NewDomainError(alreadyProcessed)

	ErrRejectReasonRequired = sharedError.NewDomainError(rejectReasonRequired)
)

func init() {
	sharedError.RegisterDomainErrorResponse(requestNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "WITHDRAW-001",
		Message: "탈퇴 신청을 찾을 수 없습니다.",
	})

	sharedError.RegisterDomainErrorResponse(alreadyPending, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "WITHDRAW-002",
		Message: "이미 처리 대기 중인 신청이 있습니다.",
	})

	sharedError.RegisterDomainErrorResponse(alreadyProcessed, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "WITHDRAW-003",
		Message: "이미 처리된 신청입니다.",
	})

	sharedError.RegisterDomainErrorResponse(rejectReasonRequired, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "WITHDRAW-004",
		Message: "거절 사유를 입력해 주세요.",
	})
}
