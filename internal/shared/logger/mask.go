package logger

import "strings"

// MaskEmail hides the local part of an email for log output.
// Example: john.doe@gmail.com -> j***@gmail.com
func MaskEmail(email string) string {
	if email == "" {
		return ""
	}

	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return "***@***"
	}

	if len(parts[0]) == 0 {
		return "***@" + parts[1]
	}

	return parts[0][:1] + "***@" + parts[1]
}
