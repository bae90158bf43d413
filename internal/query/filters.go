// Package query builds the caller-supplied filter and pagination clauses that
// compose with a visibility scope. Every value is bound as a parameter; filter
// input never reaches query text.
package query

import (
	"strings"

	"gorm.io/gorm"
)

// likeEscaper neutralizes LIKE pattern syntax in user input so wildcard
// characters match literally; the surrounding %...% added here is the only
// wildcarding applied.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// LikePattern returns a substring-match pattern for term with any pattern
// metacharacters escaped.
func LikePattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// TaskFilters are the optional task list filters.
type TaskFilters struct {
	Status   string
	Priority string
	Search   string
}

// Apply adds the filter conjunction to db. The same scope is used for the
// data query and the count query so totals stay consistent.
func (f TaskFilters) Apply(db *gorm.DB) *gorm.DB {
	if f.Status != "" {
		db = db.Where("tasks.status = ?", f.Status)
	}
	if f.Priority != "" {
		db = db.Where("tasks.priority = ?", f.Priority)
	}
	if f.Search != "" {
		pattern := LikePattern(f.Search)
		db = db.Where("tasks.title LIKE ? OR tasks.description LIKE ?", pattern, pattern)
	}
	return db
}

// UserFilters are the optional user list filters.
type UserFilters struct {
	Search string
}

// Apply adds the filter conjunction to db.
func (f UserFilters) Apply(db *gorm.DB) *gorm.DB {
	if f.Search != "" {
		pattern := LikePattern(f.Search)
		db = db.Where("users.name LIKE ? OR users.email LIKE ?", pattern, pattern)
	}
	return db
}
