package marks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"acadia-schools/app/models"
)

func userWithRoles(names ...string) *models.User {
	user := &models.User{ID: "u1", Email: "u@school.test", IsActive: true}
	for _, name := range names {
		user.Roles = append(user.Roles, &models.Role{Name: name})
	}
	return user
}

func TestCanEditMatrix(t *testing.T) {
	tests := []struct {
		role   string
		status models.WorkflowStatus
		want   bool
	}{
		{models.RoleTeacher, models.StatusDraft, true},
		{models.RoleTeacher, models.StatusSubmitted, false},
		{models.RoleTeacher, models.StatusLocked, false},
		{models.RoleAdmin, models.StatusDraft, true},
		{models.RoleAdmin, models.StatusSubmitted, true},
		{models.RoleAdmin, models.StatusLocked, false},
		{"accountant", models.StatusDraft, false},
		{"accountant", models.StatusSubmitted, false},
	}
	for _, tt := range tests {
		got := CanEdit(tt.role, tt.status)
		assert.Equal(t, tt.want, got, "role=%s status=%s", tt.role, tt.status)
	}
}

func TestActorCanEdit(t *testing.T) {
	teacher := userWithRoles(models.RoleTeacher)
	admin := userWithRoles(models.RoleAdmin)
	both := userWithRoles(models.RoleTeacher, models.RoleAdmin)

	assert.True(t, ActorCanEdit(teacher, models.StatusDraft))
	assert.False(t, ActorCanEdit(teacher, models.StatusSubmitted))

	assert.True(t, ActorCanEdit(admin, models.StatusSubmitted))
	assert.False(t, ActorCanEdit(admin, models.StatusLocked))

	// Any one qualifying role is enough
	assert.True(t, ActorCanEdit(both, models.StatusSubmitted))

	assert.False(t, ActorCanEdit(nil, models.StatusDraft))
	assert.False(t, ActorCanEdit(userWithRoles(), models.StatusDraft))
}

func TestCanSubmitAndLock(t *testing.T) {
	teacher := userWithRoles(models.RoleTeacher)
	admin := userWithRoles(models.RoleAdmin)
	other := userWithRoles("accountant")

	assert.True(t, CanSubmit(teacher))
	assert.True(t, CanSubmit(admin))
	assert.False(t, CanSubmit(other))
	assert.False(t, CanSubmit(nil))

	assert.False(t, CanLock(teacher))
	assert.True(t, CanLock(admin))
	assert.False(t, CanLock(other))
	assert.False(t, CanLock(nil))
}

func TestValidTransition(t *testing.T) {
	assert.True(t, ValidTransition(models.StatusDraft, models.StatusSubmitted))
	assert.True(t, ValidTransition(models.StatusSubmitted, models.StatusLocked))

	// Admin override: lock straight from draft
	assert.True(t, ValidTransition(models.StatusDraft, models.StatusLocked))

	// No backward moves, LOCKED is terminal
	assert.False(t, ValidTransition(models.StatusSubmitted, models.StatusDraft))
	assert.False(t, ValidTransition(models.StatusLocked, models.StatusDraft))
	assert.False(t, ValidTransition(models.StatusLocked, models.StatusSubmitted))
	assert.False(t, ValidTransition(models.StatusDraft, models.StatusDraft))
	assert.False(t, ValidTransition(models.StatusSubmitted, models.StatusSubmitted))
}

func marksOf(v float64) *float64 { return &v }

func TestValidateBatch(t *testing.T) {
	valid := []BatchEntry{
		{StudentID: "s1", MarksObtained: marksOf(0)},
		{StudentID: "s2", MarksObtained: marksOf(100)},
		{StudentID: "s3"}, // not yet entered
	}
	assert.NoError(t, ValidateBatch(valid, 100))

	// One bad entry rejects the whole batch
	bad := append(valid, BatchEntry{StudentID: "s4", MarksObtained: marksOf(101)})
	err := ValidateBatch(bad, 100)
	assert.Error(t, err)
	assert.True(t, models.IsValidationError(err))

	assert.Error(t, ValidateBatch([]BatchEntry{{StudentID: "s1", MarksObtained: marksOf(-0.5)}}, 100))
	assert.Error(t, ValidateBatch([]BatchEntry{{MarksObtained: marksOf(50)}}, 100))

	// Range follows the schedule's own maximum
	assert.NoError(t, ValidateBatch([]BatchEntry{{StudentID: "s1", MarksObtained: marksOf(45)}}, 50))
	assert.Error(t, ValidateBatch([]BatchEntry{{StudentID: "s1", MarksObtained: marksOf(55)}}, 50))
}
