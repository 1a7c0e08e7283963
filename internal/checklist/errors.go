package checklist

import (
	"net/http"

	sharedError "github.com/daonswim/swim-club-api/internal/shared/error"
)

const (
	itemNotFound = "CHECKLIST_ITEM_NOT_FOUND" // errInfo
)

var ErrItemNotFound = sharedError.NewDomainError(itemNotFound)

func init() {
	sharedError.RegisterDomainErrorResponse(itemNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "CHECK-001",
		Message: "체크리스트 항목을 찾을 수 없습니다.",
	})
}
