// Package validate contains the credential validation rules shared by the
// registration endpoint and the operator CLI. All functions are pure and
// deterministic; callers decide how to surface the accumulated errors.
package validate

import (
	"regexp"
	"strings"
	"unicode"
)

// emailRegex requires a non-whitespace local part, exactly one '@', and a
// domain containing at least one '.'.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Password rule messages. These are user-facing; keep them stable.
const (
	msgPasswordTooShort = "Password must be at least 8 characters long"
	msgPasswordNoUpper  = "Password must contain at least one uppercase letter"
	msgPasswordNoLower  = "Password must contain at least one lowercase letter"
	msgPasswordNoDigit  = "Password must contain at least one number"
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 8

// PasswordCheck is the result of ValidatePassword. Errors lists every
// violated rule; IsValid is true iff Errors is empty.
type PasswordCheck struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

// ValidateEmail reports whether email looks like local-part@domain.tld.
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidatePassword checks password strength rules, accumulating all
// violations rather than stopping at the first one.
func ValidatePassword(password string) PasswordCheck {
	var errs []string

	if len(password) < MinPasswordLength {
		errs = append(errs, msgPasswordTooShort)
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !hasUpper {
		errs = append(errs, msgPasswordNoUpper)
	}
	if !hasLower {
		errs = append(errs, msgPasswordNoLower)
	}
	if !hasDigit {
		errs = append(errs, msgPasswordNoDigit)
	}

	return PasswordCheck{IsValid: len(errs) == 0, Errors: errs}
}

// Registration runs the full sign-up rule set: email shape, password
// strength, password/confirmation equality, and non-empty trimmed names.
// The returned slice is empty when everything passes.
func Registration(email, password, confirmPassword, firstName, lastName string) []string {
	var errs []string

	if !ValidateEmail(email) {
		errs = append(errs, "Invalid email address")
	}

	errs = append(errs, ValidatePassword(password).Errors...)

	if password != confirmPassword {
		errs = append(errs, "Passwords do not match")
	}
	if strings.TrimSpace(firstName) == "" {
		errs = append(errs, "First name is required")
	}
	if strings.TrimSpace(lastName) == "" {
		errs = append(errs, "Last name is required")
	}

	return errs
}
