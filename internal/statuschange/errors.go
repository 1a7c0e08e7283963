package statuschange

import (
	"net/http"

	sharedError "github.com/daonswim/swim-club-api/internal/shared/error"
)

const (
	requestNotFound      = "STATUS_CHANGE_NOT_FOUND"       // errInfo
	alreadyPending       = "STATUS_CHANGE_ALREADY_PENDING" // errInfo
	alreadyProcessed     = "STATUS_CHANGE_ALREADY_PROCESSED"
	stateMismatch        = "STATUS_CHANGE_STATE_MISMATCH"
	sameStatus           = "STATUS_CHANGE_SAME_STATUS"
	rejectReasonRequired = "STATUS_CHANGE_REJECT_REASON_REQUIRED"
)

var (
	ErrRequestNotFound = sharedError.NewDomainError(requestNotFound)

	// ErrAlreadyPending: 회원당 대기 중인 신청은 하나만 허용된다
	// (상태 변경/탈퇴 합산).
	ErrAlreadyPending = sharedError.NewDomainError(alreadyPending)

	ErrAlreadyProcessed = sharedError.NewDomainError(alreadyProcessed)

	// ErrStateMismatch: 운영진 직접 변경으로 신청 당시의 상태와 현재 상태가
	// 달라진 stale 신청. 자동 취소하지 않고 결정 시점에 걸러낸다.
	ErrStateMismatch = sharedError.NewDomainError(stateMismatch)

	// ErrSameStatus: 현재 상태와 같은 상태로는 변경을 신청할 수 없다.
	ErrSameStatus = sharedError.NewDomainError(sameStatus)

	ErrRejectReasonRequired = sharedError.NewDomainError(rejectReasonRequired)
)

func init() {
	sharedError.RegisterDomainErrorResponse(requestNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "STATUS-001",
		Message: "상태 변경 신청을 찾을 수 없습니다.",
	})

	sharedError.RegisterDomainErrorResponse(alreadyPending, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "STATUS-002",
		Message: "이미 처리 대기 중인 신청이 있습니다.",
	})

	sharedError.RegisterDomainErrorResponse(alreadyProcessed, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "STATUS-003",
		Message: "이미 처리된 신청입니다.",
	})

	sharedError.RegisterDomainErrorResponse(stateMismatch, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "STATUS-004",
		Message: "신청 당시의 회원 상태와 현재 상태가 일치하지 않습니다.",
	})

	sharedError.RegisterDomainErrorResponse(sameStatus, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "STATUS-005",
		Message: "현재 상태와 다른 상태를 선택해 주세요.",
	})

	sharedError.RegisterDomainErrorResponse(rejectReasonRequired, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "STATUS-006",
		Message: "거절 사유를 입력해 주세요.",
	})
}
