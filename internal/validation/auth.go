// Package validation implements the field-level input rules. Each validator
// collects every violation for a payload and returns them together rather
// than stopping at the first failure.
package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	passwordRegex = regexp.MustCompile(`^[A-Za-z\d@$!%*?&]{8,}$`)
	nameRegex     = regexp.MustCompile(`^[a-zA-Z\s]{2,50}$`)

	lowerRegex   = regexp.MustCompile(`[a-z]`)
	upperRegex   = regexp.MustCompile(`[A-Z]`)
	digitRegex   = regexp.MustCompile(`\d`)
	specialRegex = regexp.MustCompile(`[@$!%*?&]`)

	validate = validator.New()
)

// Violation messages shared across validators.
const (
	msgName     = "Name must contain only letters and spaces (2-50 characters)"
	msgEmail    = "Please provide a valid email address"
	msgPassword = "Password must be at least 8 characters with uppercase, lowercase, number and special character"
)

func validEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}

// validPassword checks the strength rule: at least 8 characters from the
// allowed alphabet with one lowercase, one uppercase, one digit and one
// special character.
func validPassword(password string) bool {
	return passwordRegex.MatchString(password) &&
		lowerRegex.MatchString(password) &&
		upperRegex.MatchString(password) &&
		digitRegex.MatchString(password) &&
		specialRegex.MatchString(password)
}

// ValidateRegister checks a self-service registration payload.
func ValidateRegister(name, email, password string) []string {
	var errs []string
	if !nameRegex.MatchString(name) {
		errs = append(errs, msgName)
	}
	if !validEmail(email) {
		errs = append(errs, msgEmail)
	}
	if !validPassword(password) {
		errs = append(errs, msgPassword)
	}
	return errs
}

// ValidateLogin checks a login payload.
func ValidateLogin(email, password string) []string {
	var errs []string
	if !validEmail(email) {
		errs = append(errs, msgEmail)
	}
	if password == "" {
		errs = append(errs, "Password is required")
	}
	return errs
}
