package domain

import "time"

// Distinguished card statuses. Status is otherwise a free-form string: the
// board UI lets users invent columns, so only "Done" carries semantics.
const (
	StatusToDo = "To Do"
	StatusDone = "Done"
)

// Card is a task-board work item.
type Card struct {
	ID          int64      `json:"id" bson:"_id"`
	Client      string     `json:"client" bson:"client"`
	Task        string     `json:"task" bson:"task"`
	Owner       *string    `json:"owner" bson:"owner,omitempty"`
	DueDate     *time.Time `json:"due_date" bson:"due_date,omitempty"`
	Status      string     `json:"status" bson:"status"`
	Blocked     bool       `json:"blocked" bson:"blocked"`
	Category    *string    `json:"category" bson:"category,omitempty"`
	CompletedAt *time.Time `json:"completed_at" bson:"completed_at,omitempty"`
}

// NextCompletedAt computes the completion timestamp that must accompany a
// status write. The rule keeps completed_at non-null exactly when the status
// is "Done":
//
//	other → Done    : completed_at = now
//	*     → other   : completed_at = null
//	Done  → Done    : completed_at unchanged
func NextCompletedAt(oldStatus string, oldCompletedAt *time.Time, newStatus string, now time.Time) *time.Time {
	switch {
	case newStatus == StatusDone && oldStatus != StatusDone:
		return &now
	case newStatus != StatusDone:
		return nil
	default:
		return oldCompletedAt
	}
}
