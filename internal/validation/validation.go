package validation

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

// Result is the outcome of a single field validator. Validators never return
// errors; an invalid input carries its display message.
type Result struct {
	Valid   bool
	Message string
}

func valid() Result                 { return Result{Valid: true} }
func invalid(message string) Result { return Result{Valid: false, Message: message} }

var emailRe = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

func ValidateEmail(email string) Result {
	if email == "" {
		return invalid("Email is required")
	}
	if !emailRe.MatchString(email) {
		return invalid("Please enter a valid email address")
	}
	return valid()
}

func ValidatePassword(password string) Result {
	if password == "" {
		return invalid("Password is required")
	}
	if utf8.RuneCountInString(password) < 8 {
		return invalid("Password must be at least 8 characters")
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
	if !hasUpper || !hasLower || !hasDigit {
		return invalid("Password must contain uppercase, lowercase, and number")
	}
	return valid()
}

func ValidateName(name string) Result {
	if name == "" {
		return invalid("Name is required")
	}
	n := utf8.RuneCountInString(name)
	if n < 2 {
		return invalid("Name must be at least 2 characters")
	}
	if n > 50 {
		return invalid("Name must be less than 50 characters")
	}
	return valid()
}

func ValidateYear(year int) Result {
	if year < 1 || year > 6 {
		return invalid("Year must be between 1 and 6")
	}
	return valid()
}

func ValidateWeeklyHours(hours int) Result {
	if hours < 1 || hours > 40 {
		return invalid("Weekly hours must be between 1 and 40")
	}
	return valid()
}

func ValidateTargetRole(role string) Result {
	if role == "" {
		return invalid("Target role is required")
	}
	if utf8.RuneCountInString(role) < 3 {
		return invalid("Target role must be at least 3 characters")
	}
	return valid()
}

// Collect runs named validators and returns per-field messages for the ones
// that failed. An empty map means every field passed.
func Collect(fields map[string]Result) map[string]string {
	out := map[string]string{}
	for field, res := range fields {
		if !res.Valid {
			out[field] = res.Message
		}
	}
	return out
}
