package validation

const msgRole = "Role must be either user or admin"

func validRole(role string) bool {
	return role == "user" || role == "admin"
}

// ValidateUserCreate checks an admin user-creation payload.
func ValidateUserCreate(name, email, password, role string) []string {
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
	if role != "" && !validRole(role) {
		errs = append(errs, msgRole)
	}
	return errs
}

// ValidateUserUpdate checks a partial user update. A password, when provided,
// must re-pass the strength rule.
func ValidateUserUpdate(name, email, role, password *string) []string {
	var errs []string
	if name != nil && !nameRegex.MatchString(*name) {
		errs = append(errs, msgName)
	}
	if email != nil && !validEmail(*email) {
		errs = append(errs, msgEmail)
	}
	if role != nil && !validRole(*role) {
		errs = append(errs, msgRole)
	}
	if password != nil && !validPassword(*password) {
		errs = append(errs, msgPassword)
	}
	return errs
}
