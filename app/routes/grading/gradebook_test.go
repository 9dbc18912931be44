package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"acadia-schools/app/models"
)

func standardBands() []*models.GradeBand {
	return []*models.GradeBand{
		{Grade: "A+", MinMarks: 90, MaxMarks: 100, GradePoint: 10, Description: "Outstanding"},
		{Grade: "A", MinMarks: 75, MaxMarks: 89.99, GradePoint: 9, Description: "Excellent"},
		{Grade: "B", MinMarks: 33, MaxMarks: 74.99, GradePoint: 7, Description: "Good"},
		{Grade: "F", MinMarks: 0, MaxMarks: 32.99, GradePoint: 0, Description: "Needs improvement"},
	}
}

func TestResolveGrade(t *testing.T) {
	bands := standardBands()

	tests := []struct {
		marks float64
		want  string
	}{
		{92, "A+"},
		{90, "A+"},
		{100, "A+"},
		{89.99, "A"},
		{75, "A"},
		{74.99, "B"},
		{33, "B"},
		{32.99, "F"},
		{32, "F"},
		{0, "F"},
	}
	for _, tt := range tests {
		band := ResolveGrade(bands, tt.marks)
		assert.NotNil(t, band, "marks %.2f should resolve", tt.marks)
		assert.Equal(t, tt.want, band.Grade, "marks %.2f", tt.marks)
	}
}

func TestResolveGradeNoMatch(t *testing.T) {
	bands := standardBands()

	assert.Nil(t, ResolveGrade(bands, 101))
	assert.Nil(t, ResolveGrade(bands, -1))
	assert.Nil(t, ResolveGrade(nil, 50))
}

func TestResolveGradeGap(t *testing.T) {
	// A configuration with a hole between bands leaves marks in the hole
	// ungraded instead of snapping to a neighbour
	bands := []*models.GradeBand{
		{Grade: "A", MinMarks: 80, MaxMarks: 100},
		{Grade: "B", MinMarks: 50, MaxMarks: 70},
	}

	assert.Nil(t, ResolveGrade(bands, 75))
	assert.Equal(t, "B", ResolveGrade(bands, 70).Grade)
	assert.Equal(t, "A", ResolveGrade(bands, 80).Grade)
}

func TestResolveGradeOrderIndependent(t *testing.T) {
	// Resolution must not depend on the order bands arrive in
	bands := standardBands()
	reversed := []*models.GradeBand{bands[3], bands[2], bands[1], bands[0]}

	for _, marks := range []float64{0, 32.99, 33, 74.99, 75, 90, 100} {
		a := ResolveGrade(bands, marks)
		b := ResolveGrade(reversed, marks)
		assert.Equal(t, a.Grade, b.Grade, "marks %.2f", marks)
	}
}

func TestFillRemark(t *testing.T) {
	band := &models.GradeBand{Grade: "A", Description: "Excellent"}

	assert.Equal(t, "Excellent", FillRemark("", band))

	// A remark already entered by hand is never overwritten
	assert.Equal(t, "Great effort", FillRemark("Great effort", band))

	// No band resolved, nothing to fill
	assert.Equal(t, "", FillRemark("", nil))
	assert.Equal(t, "Manual note", FillRemark("Manual note", nil))
}
