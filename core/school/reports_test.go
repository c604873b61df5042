package school_test

import (
	"testing"
	"time"

	"github.com/skilllogic/schoolcrm/core/school"
)

func TestService_AttendanceReport(t *testing.T) {
	svc := setup(t)

	rows, err := svc.AttendanceReport()
	if err != nil {
		t.Fatalf("AttendanceReport() error = %v", err)
	}
	if len(rows) != 10 {
		t.Fatalf("len = %v, want one row per student", len(rows))
	}

	byID := make(map[string]school.AttendanceReportRow, len(rows))
	for _, row := range rows {
		byID[row.StudentID] = row
	}

	tests := []struct {
		studentID   string
		wantDays    int
		wantPresent int
		wantPct     float64
		wantBand    string
	}{
		{studentID: "STU001", wantDays: 1, wantPresent: 1, wantPct: 100, wantBand: school.BandExcellent},
		{studentID: "STU003", wantDays: 1, wantPresent: 0, wantPct: 0, wantBand: school.BandPoor},
		{studentID: "STU005", wantDays: 1, wantPresent: 1, wantPct: 100, wantBand: school.BandExcellent}, // late
		{studentID: "STU009", wantDays: 0, wantPresent: 0, wantPct: 0, wantBand: school.BandPoor},
	}
	for _, tt := range tests {
		row, ok := byID[tt.studentID]
		if !ok {
			t.Errorf("no row for %s", tt.studentID)
			continue
		}
		if row.TotalDays != tt.wantDays || row.PresentDays != tt.wantPresent {
			t.Errorf("%s days = %v/%v, want %v/%v", tt.studentID, row.PresentDays, row.TotalDays, tt.wantPresent, tt.wantDays)
		}
		if row.Percentage != tt.wantPct || row.Band != tt.wantBand {
			t.Errorf("%s = %v %v, want %v %v", tt.studentID, row.Percentage, row.Band, tt.wantPct, tt.wantBand)
		}
	}
}

func TestService_ResultsReport(t *testing.T) {
	svc := setup(t)

	rows, err := svc.ResultsReport()
	if err != nil {
		t.Fatalf("ResultsReport() error = %v", err)
	}
	if len(rows) != 10 {
		t.Fatalf("len = %v, want one row per student", len(rows))
	}

	byID := make(map[string]school.ResultsReportRow, len(rows))
	for _, row := range rows {
		byID[row.StudentID] = row
	}

	if row := byID["STU001"]; row.Percentage != 88.3 || row.Band != school.BandDistinction || row.Grade != "A" {
		t.Errorf("STU001 = %+v, want 88.3 Distinction A", row)
	}
	if row := byID["STU002"]; row.Band != school.BandDistinction {
		t.Errorf("STU002 band = %v, want Distinction", row.Band)
	}
	if row := byID["STU003"]; row.Percentage != 37 || row.Band != school.BandPass {
		t.Errorf("STU003 = %v %v, want 37 Pass", row.Percentage, row.Band)
	}
	// students without a result get placeholders
	if row := byID["STU004"]; row.Grade != "N/A" || row.Band != school.BandFail || row.TotalMarks != 0 {
		t.Errorf("STU004 = %+v, want N/A Fail 0", row)
	}
}

func TestService_FeesReport(t *testing.T) {
	svc := setup(t)

	rows, err := svc.FeesReport()
	if err != nil {
		t.Fatalf("FeesReport() error = %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("len = %v, want 5", len(rows))
	}
	if rows[0].FeeID != "FEE001" || rows[0].Class != "10-A" || rows[0].Status != school.FeePaid {
		t.Errorf("rows[0] = %+v, want FEE001 10-A paid", rows[0])
	}
	if rows[2].PendingAmount != 12000 || rows[2].Status != school.FeeOverdue {
		t.Errorf("rows[2] = %+v, want 12000 overdue", rows[2])
	}
}

func TestService_Dashboard(t *testing.T) {
	svc := setup(t)
	mockNow(t, time.Date(2025, time.October, 6, 11, 0, 0, 0, time.UTC))

	stats, err := svc.Dashboard()
	if err != nil {
		t.Fatalf("Dashboard() error = %v", err)
	}
	want := school.DashboardStats{
		TotalStudents:   10,
		TotalTeachers:   3,
		TotalRevenue:    35500,
		PendingFees:     34000,
		AttendanceToday: 75,
		ActiveTransport: 3,
		LibraryBooks:    59,
		CollectionRate:  51.08,
	}
	if stats != want {
		t.Errorf("Dashboard() = %+v, want %+v", stats, want)
	}

	t.Run("no records today", func(t *testing.T) {
		mockNow(t, time.Date(2025, time.October, 7, 11, 0, 0, 0, time.UTC))
		stats, err := svc.Dashboard()
		if err != nil {
			t.Fatalf("Dashboard() error = %v", err)
		}
		if stats.AttendanceToday != 0 {
			t.Errorf("AttendanceToday = %v, want 0", stats.AttendanceToday)
		}
	})
}
