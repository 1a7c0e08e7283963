package application

import (
	"net/http"

	sharedError "github.com/daonswim/swim-club-api/internal/shared/error"
)

const (
	applicationNotFound  = "APPLICATION_NOT_FOUND"   // errInfo
	alreadyProcessed     = "ALREADY_PROCESSED"       // errInfo
	notReferrer          = "NOT_REFERRER"            // errInfo
	agreementsRequired   = "AGREEMENTS_REQUIRED"     // errInfo
	checklistRequired    = "CHECKLIST_REQUIRED"      // errInfo
	applicationNotFailed = "APPLICATION_NOT_REJECTED" // errInfo
	rejectReasonRequired = "REJECT_REASON_REQUIRED"   // errInfo
)

var (
	ErrApplicationNotFound = sharedError.NewDomainError(applicationNotFound)

	// ErrAlreadyProcessed: 대기 상태가 아닌 단계에 대한 결정 시도. 두 번째
	// 호출은 아무 것도 변경하지 않고 이 에러를 반환한다.
	ErrAlreadyProcessed = sharedError.NewDomainError(alreadyProcessed)

	// ErrNotReferrer: 추천인 이름이 일치하는 회원만 추천인 단계를 처리할 수 있다.
	ErrNotReferrer = sharedError.NewDomainError(notReferrer)

	// ErrAgreementsRequired: 추천인 승인은 3가지 약속에 모두 동의해야 한다.
	ErrAgreementsRequired = sharedError.NewDomainError(agreementsRequired)

	// ErrChecklistRequired: 활성 체크리스트 항목을 모두 확인해야 신청할 수 있다.
	ErrChecklistRequired = sharedError.NewDomainError(checklistRequired)

	// ErrApplicationNotRejected: 재신청/신청 철회는 거절된 신청에만 가능하다.
	ErrApplicationNotRejected = sharedError.NewDomainError(applicationNotFailed)

	// ErrRejectReasonRequired: 거절에는 사유가 필요하다.
	ErrRejectReasonRequired = sharedError.NewDomainError(rejectReasonRequired)
)

func init() {
	sharedError.RegisterDomainErrorResponse(applicationNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "APPLY-001",
		Message: "가입 신청을 찾을 수 없습니다.",
	})

	sharedError.RegisterDomainErrorResponse(alreadyProcessed, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "APPLY-002",
		Message: "이미 처리된 신청입니다.",
	})

	sharedError.RegisterDomainErrorResponse(notReferrer, sharedError.ErrorResponse{
		Status:  http.StatusForbidden,
		Code:    "APPLY-003",
		Message: "해당 신청의 추천인이 아닙니다.",
	})

	sharedError.RegisterDomainErrorResponse(agreementsRequired, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "APPLY-004",
		Message: "추천인 약속 사항에 모두 동의해야 합니다.",
	})

	sharedError.RegisterDomainErrorResponse(checklistRequired, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "APPLY-005",
		Message: "가입 체크리스트 항목을 모두 확인해 주세요.",
	})

	sharedError.RegisterDomainErrorResponse(applicationNotFailed, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "APPLY-006",
		Message: "거절된 신청만 다시 제출하거나 철회할 수 있습니다.",
	})

	sharedError.RegisterDomainErrorResponse(rejectReasonRequired, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "APPLY-007",
		Message: "거절 사유를 입력해 주세요.",
	})
}
