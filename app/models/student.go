package models

import "time"

// Student represents an enrolled student
type Student struct {
	ID          string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	AdmissionNo string     `json:"admission_no" gorm:"uniqueIndex;not null" validate:"required"`
	RollNo      int        `json:"roll_no" gorm:"default:0"`
	FirstName   string     `json:"first_name" gorm:"not null" validate:"required"`
	LastName    string     `json:"last_name" gorm:"not null" validate:"required"`
	Gender      *Gender    `json:"gender,omitempty"`
	ClassID     *string    `json:"class_id,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	IsActive    bool       `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty" gorm:"index"`
	Class       *Class     `json:"class,omitempty" gorm:"foreignKey:ClassID;references:ID"`
}

// FullName returns the student's display name.
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
