package reports

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func row(studentID, subjectID string, marks float64) ResultRow {
	return ResultRow{
		StudentID:   studentID,
		StudentName: "Student " + studentID,
		SubjectID:   subjectID,
		SubjectName: "Subject " + subjectID,
		ClassID:     "c1",
		ClassName:   "10-A",
		Marks:       marks,
	}
}

func TestSubjectPerformances(t *testing.T) {
	rows := []ResultRow{
		row("s1", "math", 80),
		row("s2", "math", 40),
		row("s3", "math", 20),
	}

	perfs := SubjectPerformances(rows)
	assert.Len(t, perfs, 1)

	math := perfs[0]
	assert.Equal(t, 3, math.StudentCount)
	assert.InDelta(t, 46.666, math.Average, 0.01)
	assert.Equal(t, 80.0, math.Highest)
	assert.Equal(t, 20.0, math.Lowest)
	assert.Equal(t, 2, math.PassCount)
	assert.InDelta(t, 66.666, math.PassRate, 0.01)
}

func TestSubjectPerformancesBoundary(t *testing.T) {
	// Exactly the threshold counts as a pass
	rows := []ResultRow{
		row("s1", "math", 33),
		row("s2", "math", 32.99),
	}

	perfs := SubjectPerformances(rows)
	assert.Equal(t, 1, perfs[0].PassCount)
	assert.Equal(t, 50.0, perfs[0].PassRate)
}

func TestStudentRankingsOverallPass(t *testing.T) {
	// A high average does not save a student who failed one subject
	rows := []ResultRow{
		row("s1", "math", 80),
		row("s1", "science", 20),
		row("s2", "math", 40),
		row("s2", "science", 45),
	}

	standings := StudentRankings(rows)
	assert.Len(t, standings, 2)

	// s1 totals 100 and ranks first, but the science fail sinks the overall
	first := standings[0]
	assert.Equal(t, 1, first.Rank)
	assert.Equal(t, "s1", first.StudentID)
	assert.Equal(t, 100.0, first.TotalMarks)
	assert.Equal(t, 50.0, first.Average)
	assert.Equal(t, 50.0, first.Percentage)
	assert.False(t, first.Passed)

	second := standings[1]
	assert.Equal(t, 2, second.Rank)
	assert.Equal(t, "s2", second.StudentID)
	assert.Equal(t, 85.0, second.TotalMarks)
	assert.True(t, second.Passed)
}

func TestStudentRankingsOrder(t *testing.T) {
	rows := []ResultRow{
		row("s1", "math", 50),
		row("s2", "math", 90),
		row("s3", "math", 70),
	}

	standings := StudentRankings(rows)

	assert.Equal(t, []string{"s2", "s3", "s1"},
		[]string{standings[0].StudentID, standings[1].StudentID, standings[2].StudentID})
	for i, st := range standings {
		assert.Equal(t, i+1, st.Rank)
	}
	for i := 1; i < len(standings); i++ {
		assert.GreaterOrEqual(t, standings[i-1].TotalMarks, standings[i].TotalMarks)
	}
}

func TestStudentRankingsTies(t *testing.T) {
	// Equal totals still get distinct ranks, in first-appearance order
	rows := []ResultRow{
		row("s1", "math", 60),
		row("s2", "math", 60),
		row("s3", "math", 60),
	}

	standings := StudentRankings(rows)
	assert.Equal(t, 1, standings[0].Rank)
	assert.Equal(t, 2, standings[1].Rank)
	assert.Equal(t, 3, standings[2].Rank)
	assert.Equal(t, "s1", standings[0].StudentID)
	assert.Equal(t, "s2", standings[1].StudentID)
	assert.Equal(t, "s3", standings[2].StudentID)
}

func TestClassPerformances(t *testing.T) {
	rows := []ResultRow{
		row("s1", "math", 80),
		row("s1", "science", 60),
		row("s2", "math", 40),
		row("s2", "science", 20),
	}

	perfs := ClassPerformances(rows)
	assert.Len(t, perfs, 1)

	class := perfs[0]
	assert.Equal(t, "10-A", class.ClassName)
	assert.Equal(t, 2, class.StudentCount)
	// Stats run over the per-student averages: 70 and 30
	assert.Equal(t, 50.0, class.Average)
	assert.Equal(t, 70.0, class.Highest)
	assert.Equal(t, 30.0, class.Lowest)
	// s2 failed science, so only s1 passes overall
	assert.Equal(t, 1, class.PassCount)
	assert.Equal(t, 50.0, class.PassRate)
}

func TestClassPerformancesMultipleClasses(t *testing.T) {
	a := row("s1", "math", 80)
	b := row("s2", "math", 40)
	b.ClassID = "c2"
	b.ClassName = "10-B"

	perfs := ClassPerformances([]ResultRow{a, b})
	assert.Len(t, perfs, 2)
	assert.Equal(t, "10-A", perfs[0].ClassName)
	assert.Equal(t, "10-B", perfs[1].ClassName)
	assert.Equal(t, 80.0, perfs[0].Average)
	assert.Equal(t, 40.0, perfs[1].Average)
}

func TestToppers(t *testing.T) {
	var rows []ResultRow
	for i := 0; i < 15; i++ {
		rows = append(rows, row(fmt.Sprintf("s%02d", i), "math", float64(100-i)))
	}

	toppers := Toppers(rows)
	assert.Len(t, toppers, TopperCount)
	assert.Equal(t, "s00", toppers[0].StudentID)
	assert.Equal(t, 10, toppers[len(toppers)-1].Rank)

	// Fewer students than the cutoff returns them all
	short := Toppers(rows[:3])
	assert.Len(t, short, 3)
}

func TestEmptyInput(t *testing.T) {
	assert.Empty(t, SubjectPerformances(nil))
	assert.Empty(t, ClassPerformances(nil))
	assert.Empty(t, StudentRankings(nil))
	assert.Empty(t, Toppers(nil))
}

func TestPercentageWithMixedSubjectCounts(t *testing.T) {
	// Percentage normalizes by the subjects each student actually sat
	rows := []ResultRow{
		row("s1", "math", 50),
		row("s1", "science", 100),
		row("s2", "math", 80),
	}

	standings := StudentRankings(rows)

	byID := map[string]StudentStanding{}
	for _, st := range standings {
		byID[st.StudentID] = st
	}
	assert.Equal(t, 75.0, byID["s1"].Percentage)
	assert.Equal(t, 2, byID["s1"].SubjectCount)
	assert.Equal(t, 80.0, byID["s2"].Percentage)
	assert.Equal(t, 1, byID["s2"].SubjectCount)
}
