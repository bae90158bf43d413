package model

import "time"

// Status values for Task.Status.
const (
	StatusPending    = "pending"
	StatusInProgress = "in progress"
	StatusCompleted  = "completed"
)

// Priority values for Task.Priority.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Task represents a unit of work assigned to a user.
// UserID is the assignee, CreatedBy the author; they differ only when an
// admin assigns a task to someone else.
type Task struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Title       string     `json:"title" gorm:"size:100;not null"`
	Description string     `json:"description" gorm:"size:500"`
	Status      string     `json:"status" gorm:"size:20;default:'pending';index"`
	Priority    string     `json:"priority" gorm:"size:10;default:'medium';index"`
	DueDate     *time.Time `json:"due_date,omitempty" gorm:"type:date"`
	UserID      uint       `json:"user_id" gorm:"index"`
	CreatedBy   uint       `json:"created_by" gorm:"index"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Display names joined from users; rows referencing a deleted user
	// come back with empty names.
	UserName      string `json:"user_name,omitempty" gorm:"->;-:migration"`
	CreatedByName string `json:"created_by_name,omitempty" gorm:"->;-:migration"`
}
