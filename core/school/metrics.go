package school

import (
	"math"
	"strings"
	"time"
)

// Policy constants. The banding thresholds and the fine rate are fixed school
// policy and must not drift.
const (
	FinePerDay = 5 // currency units per overdue day

	attendanceExcellentMin = 90.0
	attendanceGoodMin      = 75.0

	resultDistinctionMin = 75.0
	resultPassMin        = 35.0

	nearFullOccupancy = 0.9
)

// Bands
const (
	BandExcellent = "Excellent"
	BandGood      = "Good"
	BandPoor      = "Poor"

	BandDistinction = "Distinction"
	BandPass        = "Pass"
	BandFail        = "Fail"
)

// matches reports whether the query is a case-insensitive substring of any of
// the given fields. An empty query matches everything.
func matches(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	query = strings.ToLower(query)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// FilterStudents returns the students whose name, admission number or class
// contains the query (case-insensitive), preserving order.
// An empty query returns the full slice.
func FilterStudents(students []Student, query string) []Student {
	out := make([]Student, 0, len(students))
	for _, s := range students {
		if matches(query, s.Name, s.AdmissionNumber, s.Class) {
			out = append(out, s)
		}
	}
	return out
}

// FilterTeachers returns the teachers whose name, employee ID or subjects
// contain the query (case-insensitive), preserving order.
func FilterTeachers(teachers []Teacher, query string) []Teacher {
	out := make([]Teacher, 0, len(teachers))
	for _, t := range teachers {
		fields := append([]string{t.Name, t.EmployeeID}, t.Subjects...)
		if matches(query, fields...) {
			out = append(out, t)
		}
	}
	return out
}

// FilterBooks returns the books whose title, author or ISBN contains the
// query (case-insensitive), preserving order.
func FilterBooks(books []LibraryBook, query string) []LibraryBook {
	out := make([]LibraryBook, 0, len(books))
	for _, b := range books {
		if matches(query, b.Title, b.Author, b.ISBN) {
			out = append(out, b)
		}
	}
	return out
}

// FilterFees returns the fees whose student name or class contains the query
// (case-insensitive), preserving order.
func FilterFees(fees []Fee, query string) []Fee {
	out := make([]Fee, 0, len(fees))
	for _, f := range fees {
		if matches(query, f.StudentName, f.Class) {
			out = append(out, f)
		}
	}
	return out
}

// AttendanceRate returns (present + late) / total × 100, rounded to one
// decimal. Late counts as attended; use PresentCount for the strict count.
// An empty set of records yields 0.
func AttendanceRate(records []AttendanceRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	var attended int
	for _, r := range records {
		if r.Status == AttendancePresent || r.Status == AttendanceLate {
			attended++
		}
	}
	return round1(float64(attended) / float64(len(records)) * 100)
}

// CountByStatus returns the number of records with the given attendance status.
func CountByStatus(records []AttendanceRecord, status string) int {
	var n int
	for _, r := range records {
		if r.Status == status {
			n++
		}
	}
	return n
}

// PresentCount returns the strict present count (late excluded).
func PresentCount(records []AttendanceRecord) int {
	return CountByStatus(records, AttendancePresent)
}

// FeeSummary holds the derived aggregates of a fee collection.
type FeeSummary struct {
	TotalBilled    int     `json:"total_billed"`
	TotalPaid      int     `json:"total_paid"`
	TotalPending   int     `json:"total_pending"`
	PaidCount      int     `json:"paid_count"`
	OverdueCount   int     `json:"overdue_count"`
	CollectionRate float64 `json:"collection_rate"` // paid / billed × 100, 2 decimals
}

// SummarizeFees derives the fee aggregates.
// An empty collection yields a zero summary (0% collection rate, not NaN).
func SummarizeFees(fees []Fee) FeeSummary {
	var sum FeeSummary
	for _, f := range fees {
		sum.TotalBilled += f.TotalAmount
		sum.TotalPaid += f.PaidAmount
		sum.TotalPending += f.PendingAmount
		switch f.Status {
		case FeePaid:
			sum.PaidCount++
		case FeeOverdue:
			sum.OverdueCount++
		}
	}
	if sum.TotalBilled > 0 {
		sum.CollectionRate = round2(float64(sum.TotalPaid) / float64(sum.TotalBilled) * 100)
	}
	return sum
}

// OverdueDays returns the number of whole calendar days `today` is past
// `due`, never negative. Time-of-day is ignored.
func OverdueDays(due, today time.Time) int {
	days := int(truncateDay(today).Sub(truncateDay(due)).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// Fine returns the library fine for the given number of overdue days.
func Fine(overdueDays int) int {
	if overdueDays <= 0 {
		return 0
	}
	return overdueDays * FinePerDay
}

// AttendanceBand maps an attendance percentage to its label.
// Boundaries are inclusive: 90.0 is Excellent, 75.0 is Good.
func AttendanceBand(pct float64) string {
	switch {
	case pct >= attendanceExcellentMin:
		return BandExcellent
	case pct >= attendanceGoodMin:
		return BandGood
	default:
		return BandPoor
	}
}

// ResultBand maps a result percentage to its label.
// Boundaries are inclusive: 75.0 is Distinction, 35.0 is Pass.
func ResultBand(pct float64) string {
	switch {
	case pct >= resultDistinctionMin:
		return BandDistinction
	case pct >= resultPassMin:
		return BandPass
	default:
		return BandFail
	}
}

// ClassGroup is one (class, section) partition of a student collection.
type ClassGroup struct {
	Class    string    `json:"class"`
	Section  string    `json:"section"`
	Students []Student `json:"students"`
}

// PartitionByClassSection groups students by (class, section). The partition
// is stable: groups appear in order of first occurrence, and insertion order
// is preserved within each group.
func PartitionByClassSection(students []Student) []ClassGroup {
	idx := make(map[string]int, len(students))
	groups := make([]ClassGroup, 0, len(students))
	for _, s := range students {
		key := s.Class + "|" + s.Section
		i, ok := idx[key]
		if !ok {
			i = len(groups)
			idx[key] = i
			groups = append(groups, ClassGroup{Class: s.Class, Section: s.Section})
		}
		groups[i].Students = append(groups[i].Students, s)
	}
	return groups
}

// Occupancy returns the route's occupancy ratio; a zero-capacity route is 0.
func Occupancy(route TransportRoute) float64 {
	if route.Capacity == 0 {
		return 0
	}
	return float64(route.Students) / float64(route.Capacity)
}

// NearFull reports whether the route's occupancy exceeds 90%.
func NearFull(route TransportRoute) bool {
	return Occupancy(route) > nearFullOccupancy
}

// CountByGender returns the number of students of the given gender.
func CountByGender(students []Student, gender string) int {
	var n int
	for _, s := range students {
		if s.Gender == gender {
			n++
		}
	}
	return n
}

// Percent returns count / total × 100, rounded to one decimal; 0 when total is 0.
func Percent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return round1(float64(count) / float64(total) * 100)
}

// CountIssuesByStatus returns the number of book issues with the given status.
func CountIssuesByStatus(issues []BookIssue, status string) int {
	var n int
	for _, i := range issues {
		if i.Status == status {
			n++
		}
	}
	return n
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
