package inmemdb

import (
	"time"

	"github.com/skilllogic/schoolcrm/core/school"
)

type schoolRepository struct {
	db *DB
}

func NewRepository(db *DB) school.Repository {
	return &schoolRepository{db: db}
}

// Students

func (repo *schoolRepository) QueryAllStudents() ([]school.Student, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	students := make([]school.Student, 0, len(repo.db.students))
	for _, s := range repo.db.students {
		students = append(students, *s)
	}
	return students, nil
}

func (repo *schoolRepository) GetStudentByID(id string) (school.Student, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, s := range repo.db.students {
		if s.ID == id {
			return *s, nil
		}
	}
	return school.Student{}, school.ErrStudentNotFound
}

func (repo *schoolRepository) CreateStudent(student school.Student) (school.Student, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.students = append(repo.db.students, &student)
	return student, nil
}

func (repo *schoolRepository) UpdateStudent(student school.Student) (school.Student, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for i, s := range repo.db.students {
		if s.ID == student.ID {
			repo.db.students[i] = &student
			return student, nil
		}
	}
	return school.Student{}, school.ErrStudentNotFound
}

// Teachers

func (repo *schoolRepository) QueryAllTeachers() ([]school.Teacher, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	teachers := make([]school.Teacher, 0, len(repo.db.teachers))
	for _, t := range repo.db.teachers {
		teachers = append(teachers, *t)
	}
	return teachers, nil
}

func (repo *schoolRepository) CreateTeacher(teacher school.Teacher) (school.Teacher, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.teachers = append(repo.db.teachers, &teacher)
	return teacher, nil
}

// Fees

func (repo *schoolRepository) QueryAllFees() ([]school.Fee, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	fees := make([]school.Fee, 0, len(repo.db.fees))
	for _, f := range repo.db.fees {
		fees = append(fees, *f)
	}
	return fees, nil
}

func (repo *schoolRepository) GetFeeByID(id string) (school.Fee, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, f := range repo.db.fees {
		if f.ID == id {
			return *f, nil
		}
	}
	return school.Fee{}, school.ErrFeeNotFound
}

func (repo *schoolRepository) UpdateFee(fee school.Fee) (school.Fee, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for i, f := range repo.db.fees {
		if f.ID == fee.ID {
			repo.db.fees[i] = &fee
			return fee, nil
		}
	}
	return school.Fee{}, school.ErrFeeNotFound
}

// Attendance

func (repo *schoolRepository) QueryAllAttendance() ([]school.AttendanceRecord, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	records := make([]school.AttendanceRecord, 0, len(repo.db.attendance))
	for _, r := range repo.db.attendance {
		records = append(records, *r)
	}
	return records, nil
}

func (repo *schoolRepository) QueryAttendanceByStudent(studentID string) ([]school.AttendanceRecord, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	records := make([]school.AttendanceRecord, 0)
	for _, r := range repo.db.attendance {
		if r.StudentID == studentID {
			records = append(records, *r)
		}
	}
	return records, nil
}

func (repo *schoolRepository) QueryAttendanceByDate(date time.Time) ([]school.AttendanceRecord, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	y, m, d := date.Date()
	records := make([]school.AttendanceRecord, 0)
	for _, r := range repo.db.attendance {
		ry, rm, rd := r.Date.Date()
		if ry == y && rm == m && rd == d {
			records = append(records, *r)
		}
	}
	return records, nil
}

func (repo *schoolRepository) UpsertAttendance(record school.AttendanceRecord) (school.AttendanceRecord, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	y, m, d := record.Date.Date()
	for i, r := range repo.db.attendance {
		ry, rm, rd := r.Date.Date()
		if r.StudentID == record.StudentID && ry == y && rm == m && rd == d {
			record.ID = r.ID // keep one record per (student, date)
			repo.db.attendance[i] = &record
			return record, nil
		}
	}
	repo.db.attendance = append(repo.db.attendance, &record)
	return record, nil
}

// Exams & Results

func (repo *schoolRepository) QueryAllExams() ([]school.Exam, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	exams := make([]school.Exam, 0, len(repo.db.exams))
	for _, e := range repo.db.exams {
		exams = append(exams, *e)
	}
	return exams, nil
}

func (repo *schoolRepository) QueryAllResults() ([]school.Result, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	results := make([]school.Result, 0, len(repo.db.results))
	for _, r := range repo.db.results {
		results = append(results, *r)
	}
	return results, nil
}

// Library

func (repo *schoolRepository) QueryAllBooks() ([]school.LibraryBook, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	books := make([]school.LibraryBook, 0, len(repo.db.books))
	for _, b := range repo.db.books {
		books = append(books, *b)
	}
	return books, nil
}

func (repo *schoolRepository) GetBookByID(id string) (school.LibraryBook, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, b := range repo.db.books {
		if b.ID == id {
			return *b, nil
		}
	}
	return school.LibraryBook{}, school.ErrBookNotFound
}

func (repo *schoolRepository) UpdateBook(book school.LibraryBook) (school.LibraryBook, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for i, b := range repo.db.books {
		if b.ID == book.ID {
			repo.db.books[i] = &book
			return book, nil
		}
	}
	return school.LibraryBook{}, school.ErrBookNotFound
}

func (repo *schoolRepository) QueryAllIssues() ([]school.BookIssue, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	issues := make([]school.BookIssue, 0, len(repo.db.issues))
	for _, i := range repo.db.issues {
		issues = append(issues, *i)
	}
	return issues, nil
}

func (repo *schoolRepository) GetIssueByID(id string) (school.BookIssue, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, i := range repo.db.issues {
		if i.ID == id {
			return *i, nil
		}
	}
	return school.BookIssue{}, school.ErrIssueNotFound
}

func (repo *schoolRepository) CreateIssue(issue school.BookIssue) (school.BookIssue, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.issues = append(repo.db.issues, &issue)
	return issue, nil
}

func (repo *schoolRepository) UpdateIssue(issue school.BookIssue) (school.BookIssue, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for i, iss := range repo.db.issues {
		if iss.ID == issue.ID {
			repo.db.issues[i] = &issue
			return issue, nil
		}
	}
	return school.BookIssue{}, school.ErrIssueNotFound
}

// Announcements

func (repo *schoolRepository) QueryAllAnnouncements() ([]school.Announcement, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	announcements := make([]school.Announcement, 0, len(repo.db.announcements))
	for _, a := range repo.db.announcements {
		announcements = append(announcements, *a)
	}
	return announcements, nil
}

func (repo *schoolRepository) CreateAnnouncement(announcement school.Announcement) (school.Announcement, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	// newest first, matching the notice board
	repo.db.announcements = append([]*school.Announcement{&announcement}, repo.db.announcements...)
	return announcement, nil
}

// Transport

func (repo *schoolRepository) QueryAllRoutes() ([]school.TransportRoute, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	routes := make([]school.TransportRoute, 0, len(repo.db.routes))
	for _, r := range repo.db.routes {
		routes = append(routes, *r)
	}
	return routes, nil
}

// Timetable

func (repo *schoolRepository) QueryAllTimetable() ([]school.TimetableEntry, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	entries := make([]school.TimetableEntry, 0, len(repo.db.timetable))
	for _, e := range repo.db.timetable {
		entries = append(entries, *e)
	}
	return entries, nil
}
