package validator

import (
	"github.com/go-playground/validator/v10"
)

// requestableStatuses are the statuses a member may request via the
// status-change queue. pending/withdrawn은 신청 대상이 아니다.
var requestableStatuses = map[string]bool{
	"active":   true,
	"inactive": true,
}

// ValidateMemberStatus validates a requestable member status value
func ValidateMemberStatus(fl validator.FieldLevel) bool {
	return requestableStatuses[fl.Field().String()]
}

// overridableStatuses are the statuses an admin may set directly.
var overridableStatuses = map[string]bool{
	"active":    true,
	"inactive":  true,
	"withdrawn": true,
}

// ValidateOverrideStatus validates an admin direct-override status value
func ValidateOverrideStatus(fl validator.FieldLevel) bool {
	return overridableStatuses[fl.Field().String()]
}
