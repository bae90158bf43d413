package validation

import (
	"regexp"
	"time"
	"unicode/utf8"
)

var (
	titleRegex    = regexp.MustCompile(`^[a-zA-Z0-9\s\-\.,]{2,100}$`)
	priorityRegex = regexp.MustCompile(`^(low|medium|high)$`)
	statusRegex   = regexp.MustCompile(`^(pending|in progress|completed)$`)
)

const (
	msgTitle    = "Title must be 2-100 characters and contain only letters, numbers, spaces, and basic punctuation"
	msgDesc     = "Description must not exceed 500 characters"
	msgPriority = "Priority must be low, medium, or high"
	msgStatus   = "Status must be pending, in progress, or completed"
	msgDueDate  = "Due date must be a valid date"
	msgDuePast  = "Due date cannot be in the past"
)

// dueDateLayouts are the accepted due date formats.
var dueDateLayouts = []string{"2006-01-02", time.RFC3339}

// ParseDueDate parses a due date in date or RFC 3339 form.
func ParseDueDate(value string) (time.Time, error) {
	var err error
	for _, layout := range dueDateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// ValidateTaskCreate checks a task creation payload. The due date, when
// present, must parse and must not be in the past.
func ValidateTaskCreate(title, description, priority, status, dueDate string) []string {
	var errs []string
	if !titleRegex.MatchString(title) {
		errs = append(errs, msgTitle)
	}
	if utf8.RuneCountInString(description) > 500 {
		errs = append(errs, msgDesc)
	}
	if priority != "" && !priorityRegex.MatchString(priority) {
		errs = append(errs, msgPriority)
	}
	if status != "" && !statusRegex.MatchString(status) {
		errs = append(errs, msgStatus)
	}
	if dueDate != "" {
		parsed, err := ParseDueDate(dueDate)
		if err != nil {
			errs = append(errs, msgDueDate)
		} else if parsed.Before(time.Now()) {
			errs = append(errs, msgDuePast)
		}
	}
	return errs
}

// ValidateTaskUpdate checks a partial task update. Nil fields were not
// provided and are skipped; the past-date rule applies only at creation.
func ValidateTaskUpdate(title, description, priority, status, dueDate *string) []string {
	var errs []string
	if title != nil && !titleRegex.MatchString(*title) {
		errs = append(errs, msgTitle)
	}
	if description != nil && utf8.RuneCountInString(*description) > 500 {
		errs = append(errs, msgDesc)
	}
	if priority != nil && !priorityRegex.MatchString(*priority) {
		errs = append(errs, msgPriority)
	}
	if status != nil && !statusRegex.MatchString(*status) {
		errs = append(errs, msgStatus)
	}
	if dueDate != nil && *dueDate != "" {
		if _, err := ParseDueDate(*dueDate); err != nil {
			errs = append(errs, msgDueDate)
		}
	}
	return errs
}
