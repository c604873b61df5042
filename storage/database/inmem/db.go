package inmemdb

import (
	"sync"

	"github.com/skilllogic/schoolcrm/core/school"
)

// DB is the in-memory seed data store. Collections are ordered slices so
// listings and filters keep seed order; a single lock guards the store since
// there is exactly one logical session at a time.
type DB struct {
	mutex sync.RWMutex

	students      []*school.Student
	teachers      []*school.Teacher
	fees          []*school.Fee
	attendance    []*school.AttendanceRecord
	exams         []*school.Exam
	results       []*school.Result
	books         []*school.LibraryBook
	issues        []*school.BookIssue
	announcements []*school.Announcement
	routes        []*school.TransportRoute
	timetable     []*school.TimetableEntry
}

func Open() (*DB, error) {
	return &DB{}, nil
}

// OpenSeeded opens the store pre-loaded with the demo dataset.
func OpenSeeded() (*DB, error) {
	db, err := Open()
	if err != nil {
		return nil, err
	}
	if err := Seed(db); err != nil {
		return nil, err
	}
	return db, nil
}
