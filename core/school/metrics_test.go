package school

import (
	"testing"
	"time"
)

func record(status string) AttendanceRecord {
	return AttendanceRecord{Status: status}
}

func TestAttendanceRate(t *testing.T) {
	tests := []struct {
		name    string
		records []AttendanceRecord
		want    float64
	}{
		{name: "no records", records: nil, want: 0},
		{name: "empty slice", records: []AttendanceRecord{}, want: 0},
		{name: "all present", records: []AttendanceRecord{record(AttendancePresent), record(AttendancePresent)}, want: 100},
		{name: "all absent", records: []AttendanceRecord{record(AttendanceAbsent), record(AttendanceAbsent)}, want: 0},
		{name: "half present", records: []AttendanceRecord{record(AttendancePresent), record(AttendanceAbsent)}, want: 50},
		{name: "late counts as attended", records: []AttendanceRecord{record(AttendanceLate), record(AttendanceAbsent)}, want: 50},
		{name: "half-day does not count", records: []AttendanceRecord{record(AttendanceHalfDay), record(AttendancePresent)}, want: 50},
		{name: "one decimal rounding", records: []AttendanceRecord{record(AttendancePresent), record(AttendanceAbsent), record(AttendanceAbsent)}, want: 33.3},
		{name: "rounds up", records: []AttendanceRecord{record(AttendancePresent), record(AttendancePresent), record(AttendanceAbsent)}, want: 66.7},
		{
			// 5 present + 1 late out of 8
			name: "class day",
			records: []AttendanceRecord{
				record(AttendancePresent), record(AttendancePresent), record(AttendanceAbsent),
				record(AttendancePresent), record(AttendanceLate), record(AttendancePresent),
				record(AttendanceAbsent), record(AttendancePresent),
			},
			want: 75,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AttendanceRate(tt.records); got != tt.want {
				t.Errorf("AttendanceRate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPresentCount(t *testing.T) {
	records := []AttendanceRecord{
		record(AttendancePresent), record(AttendanceLate), record(AttendanceAbsent), record(AttendancePresent),
	}
	if got := PresentCount(records); got != 2 {
		t.Errorf("PresentCount() = %v, want 2", got)
	}
	if got := CountByStatus(records, AttendanceLate); got != 1 {
		t.Errorf("CountByStatus(late) = %v, want 1", got)
	}
	if got := CountByStatus(nil, AttendancePresent); got != 0 {
		t.Errorf("CountByStatus(nil) = %v, want 0", got)
	}
}

func TestSummarizeFees(t *testing.T) {
	tests := []struct {
		name string
		fees []Fee
		want FeeSummary
	}{
		{name: "no fees", fees: nil, want: FeeSummary{}},
		{
			name: "two fees",
			fees: []Fee{
				{TotalAmount: 15000, PaidAmount: 15000, PendingAmount: 0, Status: FeePaid},
				{TotalAmount: 14000, PaidAmount: 7000, PendingAmount: 7000, Status: FeePartial},
			},
			want: FeeSummary{
				TotalBilled: 29000, TotalPaid: 22000, TotalPending: 7000,
				PaidCount: 1, CollectionRate: 75.86,
			},
		},
		{
			name: "overdue counted",
			fees: []Fee{
				{TotalAmount: 12000, PaidAmount: 0, PendingAmount: 12000, Status: FeeOverdue},
				{TotalAmount: 12000, PaidAmount: 12000, PendingAmount: 0, Status: FeePaid},
			},
			want: FeeSummary{
				TotalBilled: 24000, TotalPaid: 12000, TotalPending: 12000,
				PaidCount: 1, OverdueCount: 1, CollectionRate: 50,
			},
		},
		{
			name: "nothing collected",
			fees: []Fee{{TotalAmount: 10000, PaidAmount: 0, PendingAmount: 10000, Status: FeePending}},
			want: FeeSummary{TotalBilled: 10000, TotalPending: 10000},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SummarizeFees(tt.fees); got != tt.want {
				t.Errorf("SummarizeFees() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestOverdueDays(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2025, time.October, d, 0, 0, 0, 0, time.UTC) }
	tests := []struct {
		name       string
		due, today time.Time
		want       int
	}{
		{name: "same day", due: day(5), today: day(5), want: 0},
		{name: "not due yet", due: day(20), today: day(5), want: 0},
		{name: "one day late", due: day(5), today: day(6), want: 1},
		{name: "fifteen days late", due: day(5), today: day(20), want: 15},
		{
			name:  "time of day ignored",
			due:   time.Date(2025, time.October, 5, 23, 30, 0, 0, time.UTC),
			today: time.Date(2025, time.October, 6, 0, 15, 0, 0, time.UTC),
			want:  1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OverdueDays(tt.due, tt.today); got != tt.want {
				t.Errorf("OverdueDays() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFine(t *testing.T) {
	tests := []struct {
		name string
		days int
		want int
	}{
		{name: "on time", days: 0, want: 0},
		{name: "negative is free", days: -3, want: 0},
		{name: "one day", days: 1, want: 5},
		{name: "fifteen days", days: 15, want: 75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fine(tt.days); got != tt.want {
				t.Errorf("Fine() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAttendanceBand(t *testing.T) {
	tests := []struct {
		name string
		pct  float64
		want string
	}{
		{name: "perfect", pct: 100, want: BandExcellent},
		{name: "boundary excellent", pct: 90, want: BandExcellent},
		{name: "just below excellent", pct: 89.9, want: BandGood},
		{name: "boundary good", pct: 75, want: BandGood},
		{name: "just below good", pct: 74.9, want: BandPoor},
		{name: "zero", pct: 0, want: BandPoor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AttendanceBand(tt.pct); got != tt.want {
				t.Errorf("AttendanceBand() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResultBand(t *testing.T) {
	tests := []struct {
		name string
		pct  float64
		want string
	}{
		{name: "full marks", pct: 100, want: BandDistinction},
		{name: "boundary distinction", pct: 75, want: BandDistinction},
		{name: "just below distinction", pct: 74.9, want: BandPass},
		{name: "boundary pass", pct: 35, want: BandPass},
		{name: "just below pass", pct: 34.9, want: BandFail},
		{name: "zero", pct: 0, want: BandFail},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResultBand(tt.pct); got != tt.want {
				t.Errorf("ResultBand() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterStudents(t *testing.T) {
	students := []Student{
		{Name: "Aarav Sharma", AdmissionNumber: "ADM2024001", Class: "10"},
		{Name: "Priya Patel", AdmissionNumber: "ADM2024002", Class: "10"},
		{Name: "Sneha Iyer", AdmissionNumber: "ADM2024009", Class: "9"},
	}
	tests := []struct {
		name      string
		query     string
		wantNames []string
	}{
		{name: "empty query keeps all in order", query: "", wantNames: []string{"Aarav Sharma", "Priya Patel", "Sneha Iyer"}},
		{name: "partial name", query: "arav", wantNames: []string{"Aarav Sharma"}},
		{name: "case insensitive", query: "PRIYA", wantNames: []string{"Priya Patel"}},
		{name: "admission number", query: "2024009", wantNames: []string{"Sneha Iyer"}},
		{name: "class", query: "9", wantNames: []string{"Sneha Iyer"}},
		{name: "no match", query: "zzz", wantNames: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterStudents(students, tt.query)
			if len(got) != len(tt.wantNames) {
				t.Fatalf("len = %v, want %v", len(got), len(tt.wantNames))
			}
			for i, s := range got {
				if s.Name != tt.wantNames[i] {
					t.Errorf("got[%d].Name = %v, want %v", i, s.Name, tt.wantNames[i])
				}
			}
		})
	}
}

func TestFilterTeachers(t *testing.T) {
	teachers := []Teacher{
		{Name: "Dr. Sanjay Mehta", EmployeeID: "EMP101", Subjects: []string{"Mathematics"}},
		{Name: "Mrs. Kavita Rao", EmployeeID: "EMP102", Subjects: []string{"Science", "Biology"}},
	}
	if got := FilterTeachers(teachers, "biology"); len(got) != 1 || got[0].EmployeeID != "EMP102" {
		t.Errorf("FilterTeachers(biology) = %+v, want Kavita Rao only", got)
	}
	if got := FilterTeachers(teachers, ""); len(got) != 2 {
		t.Errorf("FilterTeachers(\"\") len = %v, want 2", len(got))
	}
}

func TestFilterBooks(t *testing.T) {
	books := []LibraryBook{
		{Title: "Malgudi Days", Author: "R.K. Narayan", ISBN: "978-0143333620"},
		{Title: "Wings of Fire", Author: "A.P.J. Abdul Kalam", ISBN: "978-8173711466"},
	}
	if got := FilterBooks(books, "narayan"); len(got) != 1 || got[0].Title != "Malgudi Days" {
		t.Errorf("FilterBooks(narayan) = %+v, want Malgudi Days only", got)
	}
	if got := FilterBooks(books, "978-8173711466"); len(got) != 1 || got[0].Title != "Wings of Fire" {
		t.Errorf("FilterBooks(isbn) = %+v, want Wings of Fire only", got)
	}
}

func TestPartitionByClassSection(t *testing.T) {
	students := []Student{
		{Name: "A", Class: "10", Section: "A"},
		{Name: "B", Class: "9", Section: "B"},
		{Name: "C", Class: "10", Section: "A"},
		{Name: "D", Class: "10", Section: "B"},
	}
	groups := PartitionByClassSection(students)
	if len(groups) != 3 {
		t.Fatalf("len(groups) = %v, want 3", len(groups))
	}
	// groups come in first occurrence order, members in insertion order
	if groups[0].Class != "10" || groups[0].Section != "A" {
		t.Errorf("groups[0] = %v-%v, want 10-A", groups[0].Class, groups[0].Section)
	}
	if len(groups[0].Students) != 2 || groups[0].Students[0].Name != "A" || groups[0].Students[1].Name != "C" {
		t.Errorf("groups[0].Students = %+v, want [A C]", groups[0].Students)
	}
	if groups[1].Class != "9" || groups[2].Section != "B" {
		t.Errorf("group order = %v-%v, %v-%v; want 9-B, 10-B", groups[1].Class, groups[1].Section, groups[2].Class, groups[2].Section)
	}

	if got := PartitionByClassSection(nil); len(got) != 0 {
		t.Errorf("PartitionByClassSection(nil) = %+v, want empty", got)
	}
}

func TestOccupancy(t *testing.T) {
	tests := []struct {
		name  string
		route TransportRoute
		want  float64
	}{
		{name: "nearly full", route: TransportRoute{Capacity: 40, Students: 38}, want: 0.95},
		{name: "half", route: TransportRoute{Capacity: 40, Students: 20}, want: 0.5},
		{name: "zero capacity", route: TransportRoute{}, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Occupancy(tt.route); got != tt.want {
				t.Errorf("Occupancy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNearFull(t *testing.T) {
	tests := []struct {
		name  string
		route TransportRoute
		want  bool
	}{
		{name: "over threshold", route: TransportRoute{Capacity: 40, Students: 38}, want: true},
		{name: "exactly 90% is not near full", route: TransportRoute{Capacity: 40, Students: 36}},
		{name: "full", route: TransportRoute{Capacity: 40, Students: 40}, want: true},
		{name: "empty", route: TransportRoute{Capacity: 40}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NearFull(tt.route); got != tt.want {
				t.Errorf("NearFull() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(1, 3); got != 33.3 {
		t.Errorf("Percent(1, 3) = %v, want 33.3", got)
	}
	if got := Percent(0, 0); got != 0 {
		t.Errorf("Percent(0, 0) = %v, want 0", got)
	}
	if got := Percent(6, 10); got != 60 {
		t.Errorf("Percent(6, 10) = %v, want 60", got)
	}
}

func TestCountByGender(t *testing.T) {
	students := []Student{
		{Gender: GenderMale}, {Gender: GenderFemale}, {Gender: GenderMale}, {Gender: GenderOther},
	}
	if got := CountByGender(students, GenderMale); got != 2 {
		t.Errorf("CountByGender(male) = %v, want 2", got)
	}
	if got := CountByGender(students, GenderFemale); got != 1 {
		t.Errorf("CountByGender(female) = %v, want 1", got)
	}
}

func TestCountIssuesByStatus(t *testing.T) {
	issues := []BookIssue{
		{Status: IssueActive}, {Status: IssueOverdue}, {Status: IssueReturned}, {Status: IssueActive},
	}
	if got := CountIssuesByStatus(issues, IssueActive); got != 2 {
		t.Errorf("CountIssuesByStatus(issued) = %v, want 2", got)
	}
	if got := CountIssuesByStatus(issues, IssueReturned); got != 1 {
		t.Errorf("CountIssuesByStatus(returned) = %v, want 1", got)
	}
}
