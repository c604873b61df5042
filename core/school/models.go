package school

import (
	"time"

	"github.com/skilllogic/schoolcrm/core"
	"github.com/skilllogic/schoolcrm/core/nav"
)

// Genders
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// Record statuses
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Fee statuses
const (
	FeePaid    = "paid"
	FeePending = "pending"
	FeeOverdue = "overdue"
	FeePartial = "partial"
)

// Attendance statuses
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLate    = "late"
	AttendanceHalfDay = "half-day"
)

// Book issue statuses
const (
	IssueActive   = "issued"
	IssueReturned = "returned"
	IssueOverdue  = "overdue"
)

// Announcement priorities
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// LoanPeriodDays is the library loan period applied when a book is issued.
const LoanPeriodDays = 14

type Student struct {
	ID              string    `json:"id"`
	AdmissionNumber string    `json:"admission_number"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	DateOfBirth     time.Time `json:"date_of_birth"`
	Gender          string    `json:"gender"`
	Class           string    `json:"class"`
	Section         string    `json:"section"`
	RollNumber      string    `json:"roll_number"`
	ParentName      string    `json:"parent_name"`
	Address         string    `json:"address"`
	AdmissionDate   time.Time `json:"admission_date"`
	// Attendance is a cached projection of the student's attendance records;
	// it is refreshed whenever records change. Reports always derive from the
	// records themselves.
	Attendance float64 `json:"attendance"`
	FeeStatus  string  `json:"fee_status"`
	Status     string  `json:"status"`
}

type Teacher struct {
	ID            string    `json:"id"`
	EmployeeID    string    `json:"employee_id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Subjects      []string  `json:"subjects"`
	Classes       []string  `json:"classes"`
	DateOfJoining time.Time `json:"date_of_joining"`
	Qualification string    `json:"qualification"`
	Status        string    `json:"status"`
}

type Fee struct {
	ID              string     `json:"id"`
	StudentID       string     `json:"student_id"`
	StudentName     string     `json:"student_name"`
	Class           string     `json:"class"`
	Section         string     `json:"section"`
	TotalAmount     int        `json:"total_amount"`
	PaidAmount      int        `json:"paid_amount"`
	PendingAmount   int        `json:"pending_amount"`
	DueDate         time.Time  `json:"due_date"`
	Status          string     `json:"status"`
	FeeType         string     `json:"fee_type"`
	LastPaymentDate *time.Time `json:"last_payment_date,omitempty"`
}

// NewFee builds a Fee, enforcing `paid + pending == total`. The amounts are
// independently seeded so the invariant is checked here, not assumed.
func NewFee(fee Fee) (Fee, error) {
	if fee.PaidAmount+fee.PendingAmount != fee.TotalAmount {
		return Fee{}, core.NewValidationError(nil, core.FieldError{
			Field: "pending_amount", Error: "paid and pending amounts must add up to the total amount",
		})
	}
	switch fee.Status {
	case FeePaid, FeePending, FeeOverdue, FeePartial:
	default:
		return Fee{}, core.NewValidationError(nil, core.FieldError{Field: "status", Error: "unknown fee status"})
	}
	return fee, nil
}

// RecordPayment applies a payment, re-deriving the pending amount and status.
func (f *Fee) RecordPayment(amount int, on time.Time) error {
	if amount <= 0 {
		return core.NewValidationError(nil, core.FieldError{Field: "amount", Error: "amount must be positive"})
	}
	if amount > f.PendingAmount {
		return core.NewValidationError(nil, core.FieldError{Field: "amount", Error: "amount exceeds the pending amount"})
	}
	f.PaidAmount += amount
	f.PendingAmount -= amount
	f.LastPaymentDate = &on
	if f.PendingAmount == 0 {
		f.Status = FeePaid
	} else {
		f.Status = FeePartial
	}
	return nil
}

type AttendanceRecord struct {
	ID        string    `json:"id"`
	StudentID string    `json:"student_id"`
	Date      time.Time `json:"date"`
	Status    string    `json:"status"`
	Class     string    `json:"class"`
	Section   string    `json:"section"`
	Remarks   string    `json:"remarks,omitempty"`
}

type ExamSubject struct {
	Name         string    `json:"name"`
	Date         time.Time `json:"date"`
	MaxMarks     int       `json:"max_marks"`
	PassingMarks int       `json:"passing_marks"`
}

type Exam struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Class     string        `json:"class"`
	Term      string        `json:"term"`
	StartDate time.Time     `json:"start_date"`
	EndDate   time.Time     `json:"end_date"`
	Subjects  []ExamSubject `json:"subjects"`
}

type SubjectMarks struct {
	Name          string `json:"name"`
	MarksObtained int    `json:"marks_obtained"`
	MaxMarks      int    `json:"max_marks"`
	Grade         string `json:"grade"`
}

// Result holds a student's exam result. Grade and Rank are externally
// supplied; no grading rubric is applied to them here.
type Result struct {
	ID            string         `json:"id"`
	StudentID     string         `json:"student_id"`
	ExamID        string         `json:"exam_id"`
	Subjects      []SubjectMarks `json:"subjects"`
	TotalMarks    int            `json:"total_marks"`
	TotalMaxMarks int            `json:"total_max_marks"`
	Percentage    float64        `json:"percentage"`
	Grade         string         `json:"grade"`
	Rank          int            `json:"rank,omitempty"`
}

type LibraryBook struct {
	ID              string `json:"id"`
	ISBN            string `json:"isbn"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	Category        string `json:"category"`
	TotalCopies     int    `json:"total_copies"`
	AvailableCopies int    `json:"available_copies"`
	IssuedCopies    int    `json:"issued_copies"`
}

// NewLibraryBook builds a LibraryBook, enforcing `available + issued == total`.
func NewLibraryBook(book LibraryBook) (LibraryBook, error) {
	if book.AvailableCopies+book.IssuedCopies != book.TotalCopies {
		return LibraryBook{}, core.NewValidationError(nil, core.FieldError{
			Field: "issued_copies", Error: "available and issued copies must add up to the total copies",
		})
	}
	return book, nil
}

// IssueCopy moves one copy from available to issued.
// Both counters move together so the copy invariant holds.
func (b *LibraryBook) IssueCopy() error {
	if b.AvailableCopies == 0 {
		return core.NewValidationError(nil, core.FieldError{Field: "book_id", Error: "no copies available"})
	}
	b.AvailableCopies--
	b.IssuedCopies++
	return nil
}

// ReturnCopy moves one copy from issued back to available.
func (b *LibraryBook) ReturnCopy() error {
	if b.IssuedCopies == 0 {
		return core.NewValidationError(nil, core.FieldError{Field: "book_id", Error: "no copies out on loan"})
	}
	b.IssuedCopies--
	b.AvailableCopies++
	return nil
}

type BookIssue struct {
	ID          string     `json:"id"`
	BookID      string     `json:"book_id"`
	BookTitle   string     `json:"book_title"`
	StudentID   string     `json:"student_id"`
	StudentName string     `json:"student_name"`
	IssueDate   time.Time  `json:"issue_date"`
	DueDate     time.Time  `json:"due_date"`
	ReturnDate  *time.Time `json:"return_date,omitempty"`
	Fine        int        `json:"fine,omitempty"`
	Status      string     `json:"status"`
}

type Announcement struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Content        string     `json:"content"`
	Date           time.Time  `json:"date"`
	Author         string     `json:"author"`
	Priority       string     `json:"priority"`
	TargetAudience []nav.Role `json:"target_audience"`
}

// VisibleTo reports whether the announcement targets the given role.
func (a Announcement) VisibleTo(role nav.Role) bool {
	for _, r := range a.TargetAudience {
		if r == role {
			return true
		}
	}
	return false
}

type TransportRoute struct {
	ID          string   `json:"id"`
	BusNumber   string   `json:"bus_number"`
	RouteName   string   `json:"route_name"`
	DriverName  string   `json:"driver_name"`
	DriverPhone string   `json:"driver_phone"`
	Capacity    int      `json:"capacity"`
	Students    int      `json:"students"`
	Stops       []string `json:"stops"`
	Timing      string   `json:"timing"`
}

type TimetableEntry struct {
	ID      string `json:"id"`
	Subject string `json:"subject"`
	Time    string `json:"time"`
	Class   string `json:"class"`
	Section string `json:"section"`
	Teacher string `json:"teacher"`
	Day     string `json:"day"`
	Room    string `json:"room,omitempty"`
}

// NewTeacher contains information needed to add a new Teacher.
// At least one subject is required at add time.
type NewTeacher struct {
	Name          string   `json:"name" validate:"required"`
	EmployeeID    string   `json:"employee_id" validate:"required,alphanum_"`
	Email         string   `json:"email" validate:"omitempty,email"`
	Phone         string   `json:"phone"`
	Subjects      []string `json:"subjects" validate:"required,min=1,dive,required"`
	Classes       []string `json:"classes"`
	Qualification string   `json:"qualification"`
}

func (nt *NewTeacher) Validate() error {
	nt.Name = core.CleanString(nt.Name)
	nt.EmployeeID = core.CleanString(nt.EmployeeID)
	nt.Email = core.CleanString(nt.Email, true /* lower */)
	return core.Validate.Struct(nt)
}

// NewStudent contains information needed to add a new Student.
type NewStudent struct {
	Name            string `json:"name" validate:"required"`
	AdmissionNumber string `json:"admission_number" validate:"required"`
	Email           string `json:"email" validate:"omitempty,email"`
	Phone           string `json:"phone"`
	Gender          string `json:"gender" validate:"required,oneof=male female other"`
	Class           string `json:"class" validate:"required"`
	Section         string `json:"section" validate:"required"`
	RollNumber      string `json:"roll_number" validate:"required"`
	ParentName      string `json:"parent_name"`
	Address         string `json:"address"`
}

func (ns *NewStudent) Validate() error {
	ns.Name = core.CleanString(ns.Name)
	ns.AdmissionNumber = core.CleanString(ns.AdmissionNumber)
	ns.Email = core.CleanString(ns.Email, true /* lower */)
	return core.Validate.Struct(ns)
}

// NewAnnouncement contains information needed to post a new Announcement.
type NewAnnouncement struct {
	Title          string     `json:"title" validate:"required"`
	Content        string     `json:"content" validate:"required"`
	Priority       string     `json:"priority" validate:"required,oneof=low medium high"`
	TargetAudience []nav.Role `json:"target_audience" validate:"required,min=1,dive,role"`
}

func (na *NewAnnouncement) Validate() error {
	na.Title = core.CleanString(na.Title)
	na.Content = core.CleanString(na.Content)
	return core.Validate.Struct(na)
}

// MarkAttendance contains information needed to mark a student's attendance
// for a day. One record is kept per (student, date); re-marking replaces it.
type MarkAttendance struct {
	StudentID string `json:"student_id" validate:"required"`
	Date      string `json:"date" validate:"required"`
	Status    string `json:"status" validate:"required,oneof=present absent late half-day"`
	Remarks   string `json:"remarks"`
}

func (ma *MarkAttendance) Validate() error {
	ma.StudentID = core.CleanString(ma.StudentID)
	return core.Validate.Struct(ma)
}

// IssueBook contains information needed to issue a library book.
// Both the student and the book are required.
type IssueBook struct {
	StudentID string `json:"student_id" validate:"required"`
	BookID    string `json:"book_id" validate:"required"`
}

func (ib *IssueBook) Validate() error {
	ib.StudentID = core.CleanString(ib.StudentID)
	ib.BookID = core.CleanString(ib.BookID)
	return core.Validate.Struct(ib)
}

// RecordPayment contains information needed to record a fee payment.
type RecordPayment struct {
	FeeID  string `json:"fee_id" validate:"required"`
	Amount int    `json:"amount" validate:"required,gt=0"`
}

func (rp *RecordPayment) Validate() error {
	rp.FeeID = core.CleanString(rp.FeeID)
	return core.Validate.Struct(rp)
}

// QueryFilter narrows collection listings.
// Search does a case-insensitive substring match on the designated fields of
// each collection (name, admission/employee number, class).
type QueryFilter struct {
	Search  string `query:"search"`
	Class   string `query:"class"`
	Section string `query:"section"`
	Status  string `query:"status"`
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Search == "" && qf.Class == "" && qf.Section == "" && qf.Status == ""
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.Class = core.CleanString(qf.Class)
	qf.Section = core.CleanString(qf.Section)
	qf.Status = core.CleanString(qf.Status, true /* lower */)
}
