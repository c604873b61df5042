package school

import (
	"testing"
	"time"

	"github.com/skilllogic/schoolcrm/core"
	"github.com/skilllogic/schoolcrm/core/nav"
)

func TestNewFee(t *testing.T) {
	tests := []struct {
		name    string
		fee     Fee
		wantErr bool
	}{
		{name: "valid paid", fee: Fee{TotalAmount: 15000, PaidAmount: 15000, Status: FeePaid}},
		{name: "valid partial", fee: Fee{TotalAmount: 14000, PaidAmount: 7000, PendingAmount: 7000, Status: FeePartial}},
		{name: "amounts do not add up", fee: Fee{TotalAmount: 14000, PaidAmount: 7000, PendingAmount: 1000, Status: FeePartial}, wantErr: true},
		{name: "unknown status", fee: Fee{TotalAmount: 100, PendingAmount: 100, Status: "lol"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFee(tt.fee)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewFee() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if _, ok := err.(*core.ValidationError); !ok {
					t.Errorf("NewFee() error type = %T, want *core.ValidationError", err)
				}
			}
		})
	}
}

func TestFee_RecordPayment(t *testing.T) {
	on := time.Date(2025, time.October, 8, 0, 0, 0, 0, time.UTC)

	t.Run("partial payment", func(t *testing.T) {
		fee := Fee{TotalAmount: 14000, PaidAmount: 7000, PendingAmount: 7000, Status: FeePartial}
		if err := fee.RecordPayment(2000, on); err != nil {
			t.Fatalf("RecordPayment() error = %v", err)
		}
		if fee.PaidAmount != 9000 || fee.PendingAmount != 5000 {
			t.Errorf("amounts = %v/%v, want 9000/5000", fee.PaidAmount, fee.PendingAmount)
		}
		if fee.Status != FeePartial {
			t.Errorf("Status = %v, want %v", fee.Status, FeePartial)
		}
		if fee.LastPaymentDate == nil || !fee.LastPaymentDate.Equal(on) {
			t.Errorf("LastPaymentDate = %v, want %v", fee.LastPaymentDate, on)
		}
	})

	t.Run("settling payment", func(t *testing.T) {
		fee := Fee{TotalAmount: 12000, PendingAmount: 12000, Status: FeeOverdue}
		if err := fee.RecordPayment(12000, on); err != nil {
			t.Fatalf("RecordPayment() error = %v", err)
		}
		if fee.Status != FeePaid {
			t.Errorf("Status = %v, want %v", fee.Status, FeePaid)
		}
		if fee.PendingAmount != 0 {
			t.Errorf("PendingAmount = %v, want 0", fee.PendingAmount)
		}
	})

	t.Run("overpayment rejected", func(t *testing.T) {
		fee := Fee{TotalAmount: 1000, PendingAmount: 1000, Status: FeePending}
		if err := fee.RecordPayment(2000, on); err == nil {
			t.Error("RecordPayment() expected error, got nil")
		}
	})

	t.Run("non-positive amount rejected", func(t *testing.T) {
		fee := Fee{TotalAmount: 1000, PendingAmount: 1000, Status: FeePending}
		if err := fee.RecordPayment(0, on); err == nil {
			t.Error("RecordPayment() expected error, got nil")
		}
	})
}

func TestNewLibraryBook(t *testing.T) {
	if _, err := NewLibraryBook(LibraryBook{TotalCopies: 10, AvailableCopies: 7, IssuedCopies: 3}); err != nil {
		t.Errorf("NewLibraryBook() error = %v", err)
	}
	if _, err := NewLibraryBook(LibraryBook{TotalCopies: 10, AvailableCopies: 7, IssuedCopies: 2}); err == nil {
		t.Error("NewLibraryBook() expected error, got nil")
	}
}

func TestLibraryBook_IssueCopy(t *testing.T) {
	book := LibraryBook{TotalCopies: 2, AvailableCopies: 1, IssuedCopies: 1}
	if err := book.IssueCopy(); err != nil {
		t.Fatalf("IssueCopy() error = %v", err)
	}
	if book.AvailableCopies != 0 || book.IssuedCopies != 2 {
		t.Errorf("copies = %v/%v, want 0/2", book.AvailableCopies, book.IssuedCopies)
	}
	if err := book.IssueCopy(); err == nil {
		t.Error("IssueCopy() on exhausted book expected error, got nil")
	}
}

func TestLibraryBook_ReturnCopy(t *testing.T) {
	book := LibraryBook{TotalCopies: 2, AvailableCopies: 1, IssuedCopies: 1}
	if err := book.ReturnCopy(); err != nil {
		t.Fatalf("ReturnCopy() error = %v", err)
	}
	if book.AvailableCopies != 2 || book.IssuedCopies != 0 {
		t.Errorf("copies = %v/%v, want 2/0", book.AvailableCopies, book.IssuedCopies)
	}
	if err := book.ReturnCopy(); err == nil {
		t.Error("ReturnCopy() with no loans expected error, got nil")
	}
}

func TestAnnouncement_VisibleTo(t *testing.T) {
	ann := Announcement{TargetAudience: []nav.Role{nav.RoleTeacher, nav.RoleParent}}
	if !ann.VisibleTo(nav.RoleTeacher) {
		t.Error("VisibleTo(teacher) = false, want true")
	}
	if ann.VisibleTo(nav.RoleStudent) {
		t.Error("VisibleTo(student) = true, want false")
	}
}

func TestNewStudent_Validate(t *testing.T) {
	valid := func() NewStudent {
		return NewStudent{
			Name: "Test Student", AdmissionNumber: "ADM2025001", Gender: GenderFemale,
			Class: "10", Section: "A", RollNumber: "30",
		}
	}
	tests := []struct {
		name    string
		mod     func(*NewStudent)
		wantErr bool
	}{
		{name: "valid", mod: func(ns *NewStudent) {}},
		{name: "missing name", mod: func(ns *NewStudent) { ns.Name = " " }, wantErr: true},
		{name: "bad gender", mod: func(ns *NewStudent) { ns.Gender = "lol" }, wantErr: true},
		{name: "bad email", mod: func(ns *NewStudent) { ns.Email = "nope" }, wantErr: true},
		{name: "email optional", mod: func(ns *NewStudent) { ns.Email = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ns := valid()
			tt.mod(&ns)
			if err := ns.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewTeacher_Validate(t *testing.T) {
	valid := func() NewTeacher {
		return NewTeacher{Name: "Test Teacher", EmployeeID: "EMP999", Subjects: []string{"History"}}
	}
	tests := []struct {
		name    string
		mod     func(*NewTeacher)
		wantErr bool
	}{
		{name: "valid", mod: func(nt *NewTeacher) {}},
		{name: "no subjects", mod: func(nt *NewTeacher) { nt.Subjects = nil }, wantErr: true},
		{name: "blank subject", mod: func(nt *NewTeacher) { nt.Subjects = []string{""} }, wantErr: true},
		{name: "employee id not alphanumeric", mod: func(nt *NewTeacher) { nt.EmployeeID = "EMP 999!" }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nt := valid()
			tt.mod(&nt)
			if err := nt.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMarkAttendance_Validate(t *testing.T) {
	ma := MarkAttendance{StudentID: "STU001", Date: "2025-10-06", Status: AttendancePresent}
	if err := ma.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
	ma.Status = "vacation"
	if err := ma.Validate(); err == nil {
		t.Error("Validate() expected error for unknown status, got nil")
	}
}

func TestNewAnnouncement_Validate(t *testing.T) {
	na := NewAnnouncement{
		Title: "Test", Content: "Body", Priority: PriorityHigh,
		TargetAudience: []nav.Role{nav.RoleStudent},
	}
	if err := na.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
	na.TargetAudience = []nav.Role{"principal"}
	if err := na.Validate(); err == nil {
		t.Error("Validate() expected error for unknown role, got nil")
	}
	na.TargetAudience = nil
	if err := na.Validate(); err == nil {
		t.Error("Validate() expected error for empty audience, got nil")
	}
}
