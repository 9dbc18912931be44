package models

// WorkflowStatus defines the batch-level editing state of a schedule's results.
// The status only moves forward: DRAFT -> SUBMITTED -> LOCKED.
type WorkflowStatus string

const (
	StatusDraft     WorkflowStatus = "DRAFT"
	StatusSubmitted WorkflowStatus = "SUBMITTED"
	StatusLocked    WorkflowStatus = "LOCKED"
)

// IsValid reports whether the status is one of the known workflow states.
func (s WorkflowStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusSubmitted, StatusLocked:
		return true
	}
	return false
}

// Role names recognised by the marks workflow.
const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
)

// Gender defines the possible gender values for a student.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
	Other  Gender = "other"
)
