package models

import "time"

// GradeBand represents one band of the grading system, e.g. marks 75-89.99
// resolving to grade "A". Bands are configured non-overlapping and ordered
// ascending by MinMarks; the resolver does not enforce this.
type GradeBand struct {
	ID          string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Grade       string     `json:"grade" gorm:"not null" validate:"required"`
	MinMarks    float64    `json:"min_marks" gorm:"not null;type:decimal(5,2)" validate:"gte=0"`
	MaxMarks    float64    `json:"max_marks" gorm:"not null;type:decimal(5,2)" validate:"gte=0"`
	GradePoint  float64    `json:"grade_point" gorm:"default:0;type:decimal(4,2)" validate:"gte=0"`
	Description string     `json:"description"`
	SortOrder   int        `json:"sort_order" gorm:"default:0"`
	IsActive    bool       `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty" gorm:"index"`
}

// Contains reports whether marks falls inside this band's inclusive range.
func (g *GradeBand) Contains(marks float64) bool {
	return marks >= g.MinMarks && marks <= g.MaxMarks
}
