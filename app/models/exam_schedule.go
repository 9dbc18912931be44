package models

import "time"

// ExamSchedule represents one subject sat by one class within an exam term
type ExamSchedule struct {
	ID           string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	ExamGroupID  string     `json:"exam_group_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	ClassID      string     `json:"class_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	SubjectID    string     `json:"subject_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	TeacherID    *string    `json:"teacher_id,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	ExamDate     time.Time  `json:"exam_date" gorm:"not null" validate:"required"`
	MaxMarks     float64    `json:"max_marks" gorm:"not null;type:decimal(5,2)" validate:"gt=0"`
	PassingMarks float64    `json:"passing_marks" gorm:"not null;type:decimal(5,2)" validate:"gte=0"`
	CreatedAt    time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty" gorm:"index"`
	ExamGroup    *ExamGroup `json:"exam_group,omitempty" gorm:"foreignKey:ExamGroupID;references:ID"`
	Class        *Class     `json:"class,omitempty" gorm:"foreignKey:ClassID;references:ID"`
	Subject      *Subject   `json:"subject,omitempty" gorm:"foreignKey:SubjectID;references:ID"`
	Teacher      *User      `json:"teacher,omitempty" gorm:"foreignKey:TeacherID;references:ID"`

	// Computed field, not stored in the database; derived from the
	// schedule's result rows
	WorkflowStatus WorkflowStatus `json:"workflow_status,omitempty" gorm:"-"`
}
