package reports

import "sort"

// PassThreshold is the minimum mark counted as a pass, on the standard
// 100-mark scale. A student passes overall only when every subject clears it.
const PassThreshold = 33.0

// TopperCount is how many ranked students the toppers list carries.
const TopperCount = 10

// ResultRow is one student's mark in one subject, flattened out of the
// joined results query. Rows with no recorded mark never reach here.
type ResultRow struct {
	StudentID   string  `json:"student_id"`
	StudentName string  `json:"student_name"`
	AdmissionNo string  `json:"admission_no"`
	RollNo      int     `json:"roll_no"`
	ClassID     string  `json:"class_id"`
	ClassName   string  `json:"class_name"`
	SubjectID   string  `json:"subject_id"`
	SubjectName string  `json:"subject_name"`
	SubjectCode string  `json:"subject_code"`
	Marks       float64 `json:"marks"`
}

// SubjectPerformance summarises one subject across all its results.
type SubjectPerformance struct {
	SubjectID    string  `json:"subject_id"`
	SubjectName  string  `json:"subject_name"`
	SubjectCode  string  `json:"subject_code"`
	StudentCount int     `json:"student_count"`
	Average      float64 `json:"average"`
	Highest      float64 `json:"highest"`
	Lowest       float64 `json:"lowest"`
	PassCount    int     `json:"pass_count"`
	PassRate     float64 `json:"pass_rate"`
}

// ClassPerformance summarises one class by its students' per-student averages.
type ClassPerformance struct {
	ClassID      string  `json:"class_id"`
	ClassName    string  `json:"class_name"`
	StudentCount int     `json:"student_count"`
	Average      float64 `json:"average"`
	Highest      float64 `json:"highest"`
	Lowest       float64 `json:"lowest"`
	PassCount    int     `json:"pass_count"`
	PassRate     float64 `json:"pass_rate"`
}

// StudentStanding is one student's aggregate line in the rankings.
type StudentStanding struct {
	Rank         int     `json:"rank"`
	StudentID    string  `json:"student_id"`
	StudentName  string  `json:"student_name"`
	AdmissionNo  string  `json:"admission_no"`
	RollNo       int     `json:"roll_no"`
	ClassName    string  `json:"class_name"`
	SubjectCount int     `json:"subject_count"`
	TotalMarks   float64 `json:"total_marks"`
	Average      float64 `json:"average"`
	Percentage   float64 `json:"percentage"`
	Passed       bool    `json:"passed"`
}

// SubjectPerformances computes per-subject aggregates. Output is sorted by
// subject name so identical input always yields identical output.
func SubjectPerformances(rows []ResultRow) []SubjectPerformance {
	type acc struct {
		perf SubjectPerformance
		sum  float64
	}
	byID := make(map[string]*acc)
	var order []string

	for _, row := range rows {
		a, ok := byID[row.SubjectID]
		if !ok {
			a = &acc{perf: SubjectPerformance{
				SubjectID:   row.SubjectID,
				SubjectName: row.SubjectName,
				SubjectCode: row.SubjectCode,
				Highest:     row.Marks,
				Lowest:      row.Marks,
			}}
			byID[row.SubjectID] = a
			order = append(order, row.SubjectID)
		}
		a.perf.StudentCount++
		a.sum += row.Marks
		if row.Marks > a.perf.Highest {
			a.perf.Highest = row.Marks
		}
		if row.Marks < a.perf.Lowest {
			a.perf.Lowest = row.Marks
		}
		if row.Marks >= PassThreshold {
			a.perf.PassCount++
		}
	}

	perfs := make([]SubjectPerformance, 0, len(order))
	for _, id := range order {
		a := byID[id]
		a.perf.Average = a.sum / float64(a.perf.StudentCount)
		a.perf.PassRate = float64(a.perf.PassCount) / float64(a.perf.StudentCount) * 100
		perfs = append(perfs, a.perf)
	}
	sort.SliceStable(perfs, func(i, j int) bool { return perfs[i].SubjectName < perfs[j].SubjectName })
	return perfs
}

// ClassPerformances computes per-class aggregates over the per-student
// averages within each class. A student counts as passed only when every one
// of their subjects clears the threshold. Output is sorted by class name.
func ClassPerformances(rows []ResultRow) []ClassPerformance {
	standings, classNames := studentTotals(rows)

	type acc struct {
		perf ClassPerformance
		sum  float64
	}
	byID := make(map[string]*acc)
	var order []string

	for _, st := range standings {
		a, ok := byID[st.classID]
		if !ok {
			a = &acc{perf: ClassPerformance{
				ClassID:   st.classID,
				ClassName: classNames[st.classID],
				Highest:   st.average(),
				Lowest:    st.average(),
			}}
			byID[st.classID] = a
			order = append(order, st.classID)
		}
		avg := st.average()
		a.perf.StudentCount++
		a.sum += avg
		if avg > a.perf.Highest {
			a.perf.Highest = avg
		}
		if avg < a.perf.Lowest {
			a.perf.Lowest = avg
		}
		if st.passed {
			a.perf.PassCount++
		}
	}

	perfs := make([]ClassPerformance, 0, len(order))
	for _, id := range order {
		a := byID[id]
		a.perf.Average = a.sum / float64(a.perf.StudentCount)
		a.perf.PassRate = float64(a.perf.PassCount) / float64(a.perf.StudentCount) * 100
		perfs = append(perfs, a.perf)
	}
	sort.SliceStable(perfs, func(i, j int) bool { return perfs[i].ClassName < perfs[j].ClassName })
	return perfs
}

// StudentRankings totals every student across their subjects and ranks them
// by total marks, highest first. Ranks are 1-based and never shared; students
// on equal totals keep the order they first appeared in the input.
func StudentRankings(rows []ResultRow) []StudentStanding {
	totals, _ := studentTotals(rows)

	sort.SliceStable(totals, func(i, j int) bool { return totals[i].total > totals[j].total })

	standings := make([]StudentStanding, 0, len(totals))
	for i, st := range totals {
		standings = append(standings, StudentStanding{
			Rank:         i + 1,
			StudentID:    st.studentID,
			StudentName:  st.studentName,
			AdmissionNo:  st.admissionNo,
			RollNo:       st.rollNo,
			ClassName:    st.className,
			SubjectCount: st.subjects,
			TotalMarks:   st.total,
			Average:      st.average(),
			Percentage:   st.total / (float64(st.subjects) * 100) * 100,
			Passed:       st.passed,
		})
	}
	return standings
}

// Toppers returns the leading students from the rankings.
func Toppers(rows []ResultRow) []StudentStanding {
	standings := StudentRankings(rows)
	if len(standings) > TopperCount {
		standings = standings[:TopperCount]
	}
	return standings
}

type studentTotal struct {
	studentID   string
	studentName string
	admissionNo string
	rollNo      int
	classID     string
	className   string
	subjects    int
	total       float64
	passed      bool
}

func (st *studentTotal) average() float64 {
	if st.subjects == 0 {
		return 0
	}
	return st.total / float64(st.subjects)
}

// studentTotals folds the rows into one line per student, preserving first
// appearance order, and records each class's display name along the way.
func studentTotals(rows []ResultRow) ([]*studentTotal, map[string]string) {
	byID := make(map[string]*studentTotal)
	classNames := make(map[string]string)
	var totals []*studentTotal

	for _, row := range rows {
		st, ok := byID[row.StudentID]
		if !ok {
			st = &studentTotal{
				studentID:   row.StudentID,
				studentName: row.StudentName,
				admissionNo: row.AdmissionNo,
				rollNo:      row.RollNo,
				classID:     row.ClassID,
				className:   row.ClassName,
				passed:      true,
			}
			byID[row.StudentID] = st
			totals = append(totals, st)
		}
		st.subjects++
		st.total += row.Marks
		if row.Marks < PassThreshold {
			st.passed = false
		}
		classNames[row.ClassID] = row.ClassName
	}
	return totals, classNames
}
