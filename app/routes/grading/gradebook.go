package grading

import (
	"sort"

	"acadia-schools/app/models"
)

// ResolveGrade returns the band whose inclusive [MinMarks, MaxMarks] range
// contains marks, scanning bands in ascending MinMarks order. Returns nil
// when no band matches (ungraded). Bands are assumed non-overlapping; the
// resolver does not check for gaps or overlaps.
func ResolveGrade(bands []*models.GradeBand, marks float64) *models.GradeBand {
	for _, band := range sortedByMinMarks(bands) {
		if band.Contains(marks) {
			return band
		}
	}
	return nil
}

func sortedByMinMarks(bands []*models.GradeBand) []*models.GradeBand {
	out := make([]*models.GradeBand, len(bands))
	copy(out, bands)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MinMarks < out[j].MinMarks
	})
	return out
}

// FillRemark copies the resolved band's description into the remark if the
// remark is still empty. A remark already entered by hand is never replaced,
// so the auto-fill happens at most once per result row.
func FillRemark(current string, band *models.GradeBand) string {
	if current != "" {
		return current
	}
	if band == nil {
		return ""
	}
	return band.Description
}
