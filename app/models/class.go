package models

import "time"

// Class represents a class with its section, e.g. "10-A"
type Class struct {
	ID           string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name         string     `json:"name" gorm:"not null" validate:"required"`
	Section      string     `json:"section" gorm:"not null" validate:"required"`
	TeacherID    *string    `json:"teacher_id,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	IsActive     bool       `json:"is_active" gorm:"default:true"`
	StudentCount int        `json:"student_count" gorm:"-"`
	CreatedAt    time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty" gorm:"index"`
	Teacher      *User      `json:"teacher,omitempty" gorm:"foreignKey:TeacherID;references:ID"`
	Students     []*Student `json:"students,omitempty" gorm:"foreignKey:ClassID;references:ID"`
}

// DisplayName returns the class name joined with its section, e.g. "10-A".
func (c *Class) DisplayName() string {
	if c.Section == "" {
		return c.Name
	}
	return c.Name + "-" + c.Section
}
