package member

import (
	"net/http"

	sharedError "github.com/daonswim/swim-club-api/internal/shared/error"
)

const (
	memberAlreadyExists = "MEMBER_ALREADY_EXISTS" // errInfo
	memberNotFound      = "MEMBER_NOT_FOUND"      // errInfo
	memberNotEligible   = "MEMBER_NOT_ELIGIBLE"   // errInfo
)

var (
	ErrMemberAlreadyExists = sharedError.NewDomainError(memberAlreadyExists)
	ErrMemberNotFound      = sharedError.NewDomainError(memberNotFound)

	// ErrMemberNotEligible: 탈퇴했거나 아직 승인되지 않은 회원은 상태 변경/탈퇴
	// 신청을 만들 수 없다.
	ErrMemberNotEligible = sharedError.NewDomainError(memberNotEligible)
)

func init() {
	sharedError.RegisterDomainErrorResponse(memberNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "MEMBER-001",
		Message: "회원 정보를 찾을 수 없습니다.",
	})

	sharedError.RegisterDomainErrorResponse(memberAlreadyExists, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "MEMBER-002",
		Message: "이미 가입했거나 심사 중인 이메일입니다.",
	})

	sharedError.RegisterDomainErrorResponse(memberNotEligible, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "MEMBER-003",
		Message: "신청할 수 없는 회원 상태입니다.",
	})
}
