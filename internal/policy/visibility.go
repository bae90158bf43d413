// Package policy centralizes the row-visibility rules applied to every query.
// Handlers and services never branch on the caller's role to restrict reads;
// they request a scope here and the repositories apply it before any
// caller-supplied filter, so no query parameter can widen it.
package policy

import (
	"gorm.io/gorm"

	"github.com/Bhargav-sunil/TaskManagement/internal/model"
)

// Scope is a row-filter predicate composed onto a query.
type Scope func(*gorm.DB) *gorm.DB

// All is the unrestricted scope.
func All(db *gorm.DB) *gorm.DB { return db }

// TasksFor returns the task visibility scope for the caller. Admins see every
// task. Other users see tasks assigned to them or created by them; the
// created-by branch only matters once an admin reassigns a task, but it is
// part of the contract either way.
func TasksFor(caller *model.User) Scope {
	if caller.IsAdmin() {
		return All
	}
	id := caller.ID
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("tasks.user_id = ? OR tasks.created_by = ?", id, id)
	}
}

// UsersFor returns the user-listing visibility scope for the caller. Admins
// see the full roster; everyone else sees only their own row.
func UsersFor(caller *model.User) Scope {
	if caller.IsAdmin() {
		return All
	}
	id := caller.ID
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("users.id = ?", id)
	}
}
