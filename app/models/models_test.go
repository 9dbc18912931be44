package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkflowStatusIsValid(t *testing.T) {
	assert.True(t, StatusDraft.IsValid())
	assert.True(t, StatusSubmitted.IsValid())
	assert.True(t, StatusLocked.IsValid())

	assert.False(t, WorkflowStatus("").IsValid())
	assert.False(t, WorkflowStatus("draft").IsValid())
	assert.False(t, WorkflowStatus("ARCHIVED").IsValid())
}

func TestGradeBandContains(t *testing.T) {
	band := &GradeBand{Grade: "B", MinMarks: 33, MaxMarks: 74.99}

	assert.True(t, band.Contains(33))
	assert.True(t, band.Contains(50))
	assert.True(t, band.Contains(74.99))
	assert.False(t, band.Contains(32.99))
	assert.False(t, band.Contains(75))
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("marks_obtained", "marks %.2f out of range", 120.0)
	assert.Equal(t, "marks_obtained: marks 120.00 out of range", err.Error())
	assert.True(t, IsValidationError(err))

	wrapped := fmt.Errorf("saving batch: %w", err)
	assert.True(t, IsValidationError(wrapped))

	assert.False(t, IsValidationError(errors.New("plain")))
	assert.False(t, IsValidationError(ErrLocked))
}

func TestUserHasRole(t *testing.T) {
	user := &User{Roles: []*Role{{Name: RoleTeacher}}}

	assert.True(t, user.HasRole(RoleTeacher))
	assert.False(t, user.HasRole(RoleAdmin))
	assert.False(t, (&User{}).HasRole(RoleTeacher))
}

func TestStudentFullName(t *testing.T) {
	s := &Student{FirstName: "Amina", LastName: "Nakato"}
	assert.Equal(t, "Amina Nakato", s.FullName())
}

func TestClassDisplayName(t *testing.T) {
	assert.Equal(t, "10-A", (&Class{Name: "10", Section: "A"}).DisplayName())
	assert.Equal(t, "10", (&Class{Name: "10"}).DisplayName())
}
