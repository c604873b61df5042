package school

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/skilllogic/schoolcrm/core"
	"github.com/skilllogic/schoolcrm/core/nav"
)

var (
	NowFunc = time.Now // mockable

	// errors
	ErrStudentNotFound       = errors.New("student not found")
	ErrTeacherNotFound       = errors.New("teacher not found")
	ErrFeeNotFound           = errors.New("fee record not found")
	ErrBookNotFound          = errors.New("book not found")
	ErrIssueNotFound         = errors.New("book issue not found")
	ErrEmployeeIDExists      = errors.New("a teacher with this employee id already exists")
	ErrAdmissionNumberExists = errors.New("a student with this admission number already exists")
)

type (
	StudentRepository interface {
		QueryAllStudents() ([]Student, error)
		GetStudentByID(id string) (Student, error)
		CreateStudent(Student) (Student, error)
		UpdateStudent(Student) (Student, error)
	}

	TeacherRepository interface {
		QueryAllTeachers() ([]Teacher, error)
		CreateTeacher(Teacher) (Teacher, error)
	}

	FeeRepository interface {
		QueryAllFees() ([]Fee, error)
		GetFeeByID(id string) (Fee, error)
		UpdateFee(Fee) (Fee, error)
	}

	AttendanceRepository interface {
		QueryAllAttendance() ([]AttendanceRecord, error)
		QueryAttendanceByStudent(studentID string) ([]AttendanceRecord, error)
		QueryAttendanceByDate(date time.Time) ([]AttendanceRecord, error)
		// UpsertAttendance keeps one record per (student, date); re-marking replaces it.
		UpsertAttendance(AttendanceRecord) (AttendanceRecord, error)
	}

	ExamRepository interface {
		QueryAllExams() ([]Exam, error)
		QueryAllResults() ([]Result, error)
	}

	LibraryRepository interface {
		QueryAllBooks() ([]LibraryBook, error)
		GetBookByID(id string) (LibraryBook, error)
		UpdateBook(LibraryBook) (LibraryBook, error)
		QueryAllIssues() ([]BookIssue, error)
		GetIssueByID(id string) (BookIssue, error)
		CreateIssue(BookIssue) (BookIssue, error)
		UpdateIssue(BookIssue) (BookIssue, error)
	}

	AnnouncementRepository interface {
		QueryAllAnnouncements() ([]Announcement, error)
		CreateAnnouncement(Announcement) (Announcement, error)
	}

	TransportRepository interface {
		QueryAllRoutes() ([]TransportRoute, error)
	}

	TimetableRepository interface {
		QueryAllTimetable() ([]TimetableEntry, error)
	}

	// Repository is the seed data store. Implementations hold everything in
	// memory; mutations never outlive the process.
	Repository interface {
		StudentRepository
		TeacherRepository
		FeeRepository
		AttendanceRepository
		ExamRepository
		LibraryRepository
		AnnouncementRepository
		TransportRepository
		TimetableRepository
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Students

func (svc *Service) QueryStudents(filter QueryFilter) ([]Student, error) {
	students, err := svc.repo.QueryAllStudents()
	if err != nil {
		return nil, err
	}
	students = FilterStudents(students, filter.Search)
	if filter.IsEmpty() {
		return students, nil
	}
	out := make([]Student, 0, len(students))
	for _, s := range students {
		if filter.Class != "" && s.Class != filter.Class {
			continue
		}
		if filter.Section != "" && s.Section != filter.Section {
			continue
		}
		if filter.Status != "" && s.Status != filter.Status {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (svc *Service) GetStudent(id string) (Student, error) {
	return svc.repo.GetStudentByID(id)
}

func (svc *Service) AddStudent(ns NewStudent) (Student, error) {
	students, err := svc.repo.QueryAllStudents()
	if err != nil {
		return Student{}, err
	}
	for _, s := range students {
		if strings.EqualFold(s.AdmissionNumber, ns.AdmissionNumber) {
			return Student{}, core.NewValidationError(ErrAdmissionNumberExists,
				core.FieldError{Field: "admission_number", Error: ErrAdmissionNumberExists.Error()})
		}
	}
	now := NowFunc().UTC()
	student := Student{
		ID:              uuid.New().String(),
		AdmissionNumber: ns.AdmissionNumber,
		Name:            ns.Name,
		Email:           ns.Email,
		Phone:           ns.Phone,
		Gender:          ns.Gender,
		Class:           ns.Class,
		Section:         ns.Section,
		RollNumber:      ns.RollNumber,
		ParentName:      ns.ParentName,
		Address:         ns.Address,
		AdmissionDate:   now,
		FeeStatus:       FeePending,
		Status:          StatusActive,
	}
	return svc.repo.CreateStudent(student)
}

// StudentAttendanceRate derives the rate from the student's attendance
// records; the cached Student.Attendance field is never read here.
func (svc *Service) StudentAttendanceRate(studentID string) (float64, error) {
	records, err := svc.repo.QueryAttendanceByStudent(studentID)
	if err != nil {
		return 0, err
	}
	return AttendanceRate(records), nil
}

// Teachers

func (svc *Service) QueryTeachers(filter QueryFilter) ([]Teacher, error) {
	teachers, err := svc.repo.QueryAllTeachers()
	if err != nil {
		return nil, err
	}
	return FilterTeachers(teachers, filter.Search), nil
}

func (svc *Service) AddTeacher(nt NewTeacher) (Teacher, error) {
	teachers, err := svc.repo.QueryAllTeachers()
	if err != nil {
		return Teacher{}, err
	}
	for _, t := range teachers {
		if strings.EqualFold(t.EmployeeID, nt.EmployeeID) {
			return Teacher{}, core.NewValidationError(ErrEmployeeIDExists,
				core.FieldError{Field: "employee_id", Error: ErrEmployeeIDExists.Error()})
		}
	}
	teacher := Teacher{
		ID:            uuid.New().String(),
		EmployeeID:    nt.EmployeeID,
		Name:          nt.Name,
		Email:         nt.Email,
		Phone:         nt.Phone,
		Subjects:      nt.Subjects,
		Classes:       nt.Classes,
		DateOfJoining: NowFunc().UTC(),
		Qualification: nt.Qualification,
		Status:        StatusActive,
	}
	return svc.repo.CreateTeacher(teacher)
}

// Fees

func (svc *Service) QueryFees(filter QueryFilter) ([]Fee, error) {
	fees, err := svc.repo.QueryAllFees()
	if err != nil {
		return nil, err
	}
	fees = FilterFees(fees, filter.Search)
	if filter.Status == "" {
		return fees, nil
	}
	out := make([]Fee, 0, len(fees))
	for _, f := range fees {
		if f.Status == filter.Status {
			out = append(out, f)
		}
	}
	return out, nil
}

func (svc *Service) FeeSummary() (FeeSummary, error) {
	fees, err := svc.repo.QueryAllFees()
	if err != nil {
		return FeeSummary{}, err
	}
	return SummarizeFees(fees), nil
}

func (svc *Service) RecordPayment(rp RecordPayment) (Fee, error) {
	fee, err := svc.repo.GetFeeByID(rp.FeeID)
	if err != nil {
		return Fee{}, err
	}
	if err := fee.RecordPayment(rp.Amount, NowFunc().UTC()); err != nil {
		return Fee{}, err
	}
	fee, err = svc.repo.UpdateFee(fee)
	if err != nil {
		return Fee{}, err
	}
	if student, sErr := svc.repo.GetStudentByID(fee.StudentID); sErr == nil {
		student.FeeStatus = fee.Status
		_, _ = svc.repo.UpdateStudent(student)
	}
	return fee, nil
}

// Attendance

// ClassAttendance returns the roster of a (class, section) with that day's
// records, one per student (students without a record have none yet).
func (svc *Service) ClassAttendance(class, section string, date time.Time) ([]Student, []AttendanceRecord, error) {
	students, err := svc.QueryStudents(QueryFilter{Class: class, Section: section})
	if err != nil {
		return nil, nil, err
	}
	records, err := svc.repo.QueryAttendanceByDate(date)
	if err != nil {
		return nil, nil, err
	}
	byStudent := make(map[string]bool, len(students))
	for _, s := range students {
		byStudent[s.ID] = true
	}
	out := make([]AttendanceRecord, 0, len(records))
	for _, r := range records {
		if byStudent[r.StudentID] {
			out = append(out, r)
		}
	}
	return students, out, nil
}

func (svc *Service) Mark(ma MarkAttendance) (AttendanceRecord, error) {
	student, err := svc.repo.GetStudentByID(ma.StudentID)
	if err != nil {
		return AttendanceRecord{}, err
	}
	date, err := time.Parse("2006-01-02", ma.Date)
	if err != nil {
		return AttendanceRecord{}, core.NewValidationError(err,
			core.FieldError{Field: "date", Error: "date must be formatted as YYYY-MM-DD"})
	}
	record := AttendanceRecord{
		ID:        uuid.New().String(),
		StudentID: student.ID,
		Date:      date,
		Status:    ma.Status,
		Class:     student.Class,
		Section:   student.Section,
		Remarks:   ma.Remarks,
	}
	record, err = svc.repo.UpsertAttendance(record)
	if err != nil {
		return AttendanceRecord{}, err
	}
	// refresh the cached projection
	if rate, rErr := svc.StudentAttendanceRate(student.ID); rErr == nil {
		student.Attendance = rate
		_, _ = svc.repo.UpdateStudent(student)
	}
	return record, nil
}

// Exams & Results

func (svc *Service) QueryExams() ([]Exam, error) {
	return svc.repo.QueryAllExams()
}

func (svc *Service) QueryResults() ([]Result, error) {
	return svc.repo.QueryAllResults()
}

// Library

func (svc *Service) QueryBooks(filter QueryFilter) ([]LibraryBook, error) {
	books, err := svc.repo.QueryAllBooks()
	if err != nil {
		return nil, err
	}
	return FilterBooks(books, filter.Search), nil
}

func (svc *Service) QueryIssues() ([]BookIssue, error) {
	return svc.repo.QueryAllIssues()
}

// Issue creates a 14-day loan and moves one copy of the book from available
// to issued; both sides change together or not at all.
func (svc *Service) Issue(ib IssueBook) (BookIssue, error) {
	student, err := svc.repo.GetStudentByID(ib.StudentID)
	if err != nil {
		return BookIssue{}, err
	}
	book, err := svc.repo.GetBookByID(ib.BookID)
	if err != nil {
		return BookIssue{}, err
	}
	if err := book.IssueCopy(); err != nil {
		return BookIssue{}, err
	}
	if _, err := svc.repo.UpdateBook(book); err != nil {
		return BookIssue{}, err
	}
	now := NowFunc().UTC()
	issue := BookIssue{
		ID:          uuid.New().String(),
		BookID:      book.ID,
		BookTitle:   book.Title,
		StudentID:   student.ID,
		StudentName: student.Name,
		IssueDate:   now,
		DueDate:     now.AddDate(0, 0, LoanPeriodDays),
		Status:      IssueActive,
	}
	return svc.repo.CreateIssue(issue)
}

// Return closes the loan, computes the fine from the days past due and moves
// the copy back to available.
func (svc *Service) Return(issueID string) (BookIssue, error) {
	issue, err := svc.repo.GetIssueByID(issueID)
	if err != nil {
		return BookIssue{}, err
	}
	if issue.Status == IssueReturned {
		return BookIssue{}, core.NewValidationError(nil,
			core.FieldError{Field: "issue_id", Error: "book has already been returned"})
	}
	book, err := svc.repo.GetBookByID(issue.BookID)
	if err != nil {
		return BookIssue{}, err
	}
	if err := book.ReturnCopy(); err != nil {
		return BookIssue{}, err
	}
	if _, err := svc.repo.UpdateBook(book); err != nil {
		return BookIssue{}, err
	}
	now := NowFunc().UTC()
	issue.ReturnDate = &now
	issue.Fine = Fine(OverdueDays(issue.DueDate, now))
	issue.Status = IssueReturned
	return svc.repo.UpdateIssue(issue)
}

// Announcements

// QueryAnnouncements returns the announcements targeted at the given role,
// newest first.
func (svc *Service) QueryAnnouncements(role nav.Role) ([]Announcement, error) {
	all, err := svc.repo.QueryAllAnnouncements()
	if err != nil {
		return nil, err
	}
	out := make([]Announcement, 0, len(all))
	for _, a := range all {
		if a.VisibleTo(role) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (svc *Service) Announce(na NewAnnouncement, author string) (Announcement, error) {
	announcement := Announcement{
		ID:             uuid.New().String(),
		Title:          na.Title,
		Content:        na.Content,
		Date:           NowFunc().UTC(),
		Author:         author,
		Priority:       na.Priority,
		TargetAudience: na.TargetAudience,
	}
	return svc.repo.CreateAnnouncement(announcement)
}

// Transport

// RouteStatus annotates a route with its derived occupancy.
type RouteStatus struct {
	TransportRoute
	Occupancy float64 `json:"occupancy"`
	NearFull  bool    `json:"near_full"`
}

func (svc *Service) QueryRoutes() ([]RouteStatus, error) {
	routes, err := svc.repo.QueryAllRoutes()
	if err != nil {
		return nil, err
	}
	out := make([]RouteStatus, 0, len(routes))
	for _, r := range routes {
		out = append(out, RouteStatus{TransportRoute: r, Occupancy: Occupancy(r), NearFull: NearFull(r)})
	}
	return out, nil
}

// Timetable

func (svc *Service) QueryTimetable(class, section string) ([]TimetableEntry, error) {
	entries, err := svc.repo.QueryAllTimetable()
	if err != nil {
		return nil, err
	}
	if class == "" && section == "" {
		return entries, nil
	}
	out := make([]TimetableEntry, 0, len(entries))
	for _, e := range entries {
		if class != "" && e.Class != class {
			continue
		}
		if section != "" && e.Section != section {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}
