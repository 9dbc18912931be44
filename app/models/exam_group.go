package models

import "time"

// ExamGroup represents an exam term, e.g. "Mid-Term" or "Final", that a set
// of exam schedules belongs to
type ExamGroup struct {
	ID        string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name      string          `json:"name" gorm:"not null" validate:"required"`
	IsActive  bool            `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt *time.Time      `json:"deleted_at,omitempty" gorm:"index"`
	Schedules []*ExamSchedule `json:"schedules,omitempty" gorm:"foreignKey:ExamGroupID;references:ID"`

	// Computed field, not stored in the database
	ScheduleCount int `json:"schedule_count,omitempty" gorm:"-"`
}
