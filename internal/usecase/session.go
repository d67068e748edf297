package usecase

import "strings"


// Session is the explicit authenticated context passed into every
// use case. No ambient globals: whoever builds the Session (the HTTP
// session middleware) is the only place that touches request headers.
type Session struct {
	Phone string
}


// Namespace derives the per-account partition from the session phone:
// strip everything that is not a digit and keep the last 10 digits.
// This selects both the external sheet to read and the store namespace
// to write into.
func (s Session) Namespace() (string, error) {
	digits := sanitizeDigits(s.Phone)
	if digits == "" {
		return "", NewAuthRequiredError("authenticated session with a phone number is required")
	}
	if len(digits) > 10 {
		digits = digits[len(digits)-10:]
	}
	return digits, nil
}


func sanitizeDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
