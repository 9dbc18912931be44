package marks

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"acadia-schools/app/models"
)

var scheduleColumns = []string{
	"id", "exam_group_id", "class_id", "subject_id", "teacher_id",
	"exam_date", "max_marks", "passing_marks", "created_at", "updated_at",
	"eg_id", "eg_name", "c_id", "c_name", "c_section", "sub_id", "sub_name", "sub_code",
}

func scheduleRow() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(scheduleColumns).AddRow(
		"sched-1", "group-1", "class-1", "subject-1", nil,
		now, 100.0, 33.0, now, now,
		"group-1", "Mid-Term", "class-1", "10", "A", "subject-1", "Mathematics", "MATH",
	)
}

func expectScheduleLookup(mock sqlmock.Sqlmock) {
	mock.ExpectQuery("FROM exam_schedules").WithArgs("sched-1").WillReturnRows(scheduleRow())
}

func expectRosterCount(mock sqlmock.Sqlmock, total, missing int) {
	mock.ExpectQuery("JOIN students").WithArgs("sched-1").
		WillReturnRows(sqlmock.NewRows([]string{"count", "missing"}).AddRow(total, missing))
}

func TestSubmitBatchSuccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	expectScheduleLookup(mock)
	mock.ExpectExec("UPDATE exam_results").
		WithArgs(models.StatusSubmitted, "sched-1", models.StatusDraft).
		WillReturnResult(sqlmock.NewResult(0, 3))

	err = SubmitBatch(db, "sched-1", userWithRoles(models.RoleTeacher), models.StatusDraft)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitBatchLostRace(t *testing.T) {
	// Another caller already submitted: the conditional update matches no
	// rows and the batch itself is complete
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	expectScheduleLookup(mock)
	mock.ExpectExec("UPDATE exam_results").
		WithArgs(models.StatusSubmitted, "sched-1", models.StatusDraft).
		WillReturnResult(sqlmock.NewResult(0, 0))
	expectRosterCount(mock, 3, 0)

	err = SubmitBatch(db, "sched-1", userWithRoles(models.RoleTeacher), models.StatusDraft)
	assert.ErrorIs(t, err, models.ErrStateConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitBatchIncomplete(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	expectScheduleLookup(mock)
	mock.ExpectExec("UPDATE exam_results").
		WithArgs(models.StatusSubmitted, "sched-1", models.StatusDraft).
		WillReturnResult(sqlmock.NewResult(0, 0))
	expectRosterCount(mock, 3, 1)

	err = SubmitBatch(db, "sched-1", userWithRoles(models.RoleTeacher), models.StatusDraft)
	assert.ErrorIs(t, err, models.ErrIncompleteEntry)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitBatchEmpty(t *testing.T) {
	// No seeded rows at all reads as incomplete, not as a lost race
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	expectScheduleLookup(mock)
	mock.ExpectExec("UPDATE exam_results").
		WithArgs(models.StatusSubmitted, "sched-1", models.StatusDraft).
		WillReturnResult(sqlmock.NewResult(0, 0))
	expectRosterCount(mock, 0, 0)

	err = SubmitBatch(db, "sched-1", userWithRoles(models.RoleTeacher), models.StatusDraft)
	assert.ErrorIs(t, err, models.ErrIncompleteEntry)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitBatchIgnoresOffRosterRows(t *testing.T) {
	// Rows seeded for students who have since been removed must not count
	// against completeness: both the conditional update and the follow-up
	// count restrict to the active roster
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	expectScheduleLookup(mock)
	mock.ExpectExec(`UPDATE exam_results.*JOIN students.*s.is_active = true AND s.deleted_at IS NULL`).
		WithArgs(models.StatusSubmitted, "sched-1", models.StatusDraft).
		WillReturnResult(sqlmock.NewResult(0, 3))

	err = SubmitBatch(db, "sched-1", userWithRoles(models.RoleTeacher), models.StatusDraft)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitBatchPermission(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	expectScheduleLookup(mock)

	err = SubmitBatch(db, "sched-1", userWithRoles("accountant"), models.StatusDraft)
	assert.ErrorIs(t, err, models.ErrPermission)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitBatchBadExpectedStatus(t *testing.T) {
	// Submitting over an observed LOCKED status never reaches the database
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	expectScheduleLookup(mock)

	err = SubmitBatch(db, "sched-1", userWithRoles(models.RoleAdmin), models.StatusLocked)
	assert.ErrorIs(t, err, models.ErrStateConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLockBatchSuccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	expectScheduleLookup(mock)
	expectRosterCount(mock, 3, 0)
	mock.ExpectExec("UPDATE exam_results").
		WithArgs(models.StatusLocked, "sched-1", models.StatusSubmitted).
		WillReturnResult(sqlmock.NewResult(0, 3))

	err = LockBatch(db, "sched-1", userWithRoles(models.RoleAdmin), models.StatusSubmitted)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLockBatchLostRace(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	expectScheduleLookup(mock)
	expectRosterCount(mock, 3, 0)
	mock.ExpectExec("UPDATE exam_results").
		WithArgs(models.StatusLocked, "sched-1", models.StatusSubmitted).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = LockBatch(db, "sched-1", userWithRoles(models.RoleAdmin), models.StatusSubmitted)
	assert.ErrorIs(t, err, models.ErrStateConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLockBatchEmpty(t *testing.T) {
	// Locking an unseeded schedule reports the empty batch, not a conflict
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	expectScheduleLookup(mock)
	expectRosterCount(mock, 0, 0)

	err = LockBatch(db, "sched-1", userWithRoles(models.RoleAdmin), models.StatusDraft)
	assert.ErrorIs(t, err, models.ErrIncompleteEntry)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLockBatchTeacherForbidden(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	expectScheduleLookup(mock)

	err = LockBatch(db, "sched-1", userWithRoles(models.RoleTeacher), models.StatusSubmitted)
	assert.ErrorIs(t, err, models.ErrPermission)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitBatchScheduleNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM exam_schedules").WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(scheduleColumns))

	err = SubmitBatch(db, "missing", userWithRoles(models.RoleAdmin), models.StatusDraft)
	assert.ErrorIs(t, err, models.ErrScheduleNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
