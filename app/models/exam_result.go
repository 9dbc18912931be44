package models

import "time"

// ExamResult stores one student's mark for one exam schedule. A row is seeded
// with a NULL mark when the schedule opens for entry. The workflow status is
// denormalized onto every row of a batch; all rows sharing a schedule carry
// the same status.
type ExamResult struct {
	ID             string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	ExamScheduleID string         `json:"exam_schedule_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	StudentID      string         `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	MarksObtained  *float64       `json:"marks_obtained" gorm:"type:decimal(5,2)" validate:"omitempty,gte=0"`
	Grade          *string        `json:"grade,omitempty"`
	Remarks        string         `json:"remarks"`
	WorkflowStatus WorkflowStatus `json:"workflow_status" gorm:"not null;default:'DRAFT'"`
	EnteredBy      *string        `json:"entered_by,omitempty" gorm:"type:uuid"`
	EnteredAt      *time.Time     `json:"entered_at,omitempty"`
	CreatedAt      time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	Student        *Student       `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
	ExamSchedule   *ExamSchedule  `json:"exam_schedule,omitempty" gorm:"foreignKey:ExamScheduleID;references:ID"`
}
