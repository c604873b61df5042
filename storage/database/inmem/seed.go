package inmemdb

import (
	"time"

	"github.com/skilllogic/schoolcrm/core/nav"
	"github.com/skilllogic/schoolcrm/core/school"
)

// Seed loads the demo dataset. Records that carry invariants (fees, library
// books) go through their constructors so a bad seed fails fast at startup.
func Seed(db *DB) error {
	db.mutex.Lock()
	defer db.mutex.Unlock()

	db.students = seedStudents()
	db.teachers = seedTeachers()
	db.attendance = seedAttendance()
	db.exams = seedExams()
	db.results = seedResults()
	db.issues = seedIssues()
	db.routes = seedRoutes()
	db.announcements = seedAnnouncements()
	db.timetable = seedTimetable()

	fees, err := seedFees()
	if err != nil {
		return err
	}
	db.fees = fees

	books, err := seedBooks()
	if err != nil {
		return err
	}
	db.books = books

	return nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedStudents() []*school.Student {
	mk := func(id, adm, name, gender, class, section, roll, parent string, att float64, feeStatus string) *school.Student {
		return &school.Student{
			ID:              id,
			AdmissionNumber: adm,
			Name:            name,
			Email:           "",
			Gender:          gender,
			Class:           class,
			Section:         section,
			RollNumber:      roll,
			ParentName:      parent,
			AdmissionDate:   date(2024, time.April, 1),
			Attendance:      att,
			FeeStatus:       feeStatus,
			Status:          school.StatusActive,
		}
	}
	return []*school.Student{
		mk("STU001", "ADM2024001", "Aarav Sharma", school.GenderMale, "10", "A", "15", "Vikram Sharma", 95.5, school.FeePaid),
		mk("STU002", "ADM2024002", "Priya Patel", school.GenderFemale, "10", "A", "22", "Nitin Patel", 92.0, school.FeePartial),
		mk("STU003", "ADM2024003", "Rohan Kumar", school.GenderMale, "10", "A", "08", "Suresh Kumar", 71.4, school.FeeOverdue),
		mk("STU004", "ADM2024004", "Ananya Singh", school.GenderFemale, "10", "A", "19", "Rakesh Singh", 89.2, school.FeePaid),
		mk("STU005", "ADM2024005", "Arjun Mehta", school.GenderMale, "10", "A", "12", "Sanjay Mehta", 84.6, school.FeePending),
		mk("STU006", "ADM2024006", "Diya Reddy", school.GenderFemale, "10", "A", "25", "Prakash Reddy", 97.1, school.FeePaid),
		mk("STU007", "ADM2024007", "Kabir Joshi", school.GenderMale, "10", "A", "14", "Amit Joshi", 90.0, school.FeePaid),
		mk("STU008", "ADM2024008", "Ishita Gupta", school.GenderFemale, "10", "A", "11", "Rohit Gupta", 93.8, school.FeePartial),
		mk("STU009", "ADM2024009", "Sneha Iyer", school.GenderFemale, "9", "B", "04", "Raman Iyer", 88.5, school.FeePaid),
		mk("STU010", "ADM2024010", "Vivaan Nair", school.GenderMale, "9", "B", "17", "Mohan Nair", 79.3, school.FeePending),
	}
}

func seedTeachers() []*school.Teacher {
	return []*school.Teacher{
		{
			ID: "TCH001", EmployeeID: "EMP101", Name: "Dr. Sanjay Mehta",
			Email: "sanjay.mehta@demohigh.edu", Subjects: []string{"Mathematics"},
			Classes: []string{"10-A", "9-B"}, DateOfJoining: date(2018, time.June, 1),
			Qualification: "M.Sc, Ph.D", Status: school.StatusActive,
		},
		{
			ID: "TCH002", EmployeeID: "EMP102", Name: "Mrs. Kavita Rao",
			Email: "kavita.rao@demohigh.edu", Subjects: []string{"Science", "Biology"},
			Classes: []string{"10-A"}, DateOfJoining: date(2019, time.July, 15),
			Qualification: "M.Sc, B.Ed", Status: school.StatusActive,
		},
		{
			ID: "TCH003", EmployeeID: "EMP103", Name: "Mr. Arvind Menon",
			Email: "arvind.menon@demohigh.edu", Subjects: []string{"English"},
			Classes: []string{"9-B", "10-A"}, DateOfJoining: date(2021, time.March, 10),
			Qualification: "M.A, B.Ed", Status: school.StatusActive,
		},
	}
}

func seedFees() ([]*school.Fee, error) {
	specs := []school.Fee{
		{
			ID: "FEE001", StudentID: "STU001", StudentName: "Aarav Sharma", Class: "10", Section: "A",
			TotalAmount: 15000, PaidAmount: 15000, PendingAmount: 0,
			DueDate: date(2025, time.October, 10), Status: school.FeePaid, FeeType: "tuition",
		},
		{
			ID: "FEE002", StudentID: "STU002", StudentName: "Priya Patel", Class: "10", Section: "A",
			TotalAmount: 14000, PaidAmount: 7000, PendingAmount: 7000,
			DueDate: date(2025, time.October, 10), Status: school.FeePartial, FeeType: "tuition",
		},
		{
			ID: "FEE003", StudentID: "STU003", StudentName: "Rohan Kumar", Class: "10", Section: "A",
			TotalAmount: 12000, PaidAmount: 0, PendingAmount: 12000,
			DueDate: date(2025, time.September, 15), Status: school.FeeOverdue, FeeType: "tuition",
		},
		{
			ID: "FEE004", StudentID: "STU005", StudentName: "Arjun Mehta", Class: "10", Section: "A",
			TotalAmount: 15000, PaidAmount: 0, PendingAmount: 15000,
			DueDate: date(2025, time.November, 5), Status: school.FeePending, FeeType: "tuition",
		},
		{
			ID: "FEE005", StudentID: "STU009", StudentName: "Sneha Iyer", Class: "9", Section: "B",
			TotalAmount: 13500, PaidAmount: 13500, PendingAmount: 0,
			DueDate: date(2025, time.October, 10), Status: school.FeePaid, FeeType: "tuition",
		},
	}
	fees := make([]*school.Fee, 0, len(specs))
	for _, spec := range specs {
		fee, err := school.NewFee(spec)
		if err != nil {
			return nil, err
		}
		f := fee
		fees = append(fees, &f)
	}
	return fees, nil
}

// seedAttendance marks 2025-10-06 for class 10-A: 5 present, 2 absent, 1 late.
func seedAttendance() []*school.AttendanceRecord {
	day := date(2025, time.October, 6)
	mk := func(id, studentID, status string) *school.AttendanceRecord {
		return &school.AttendanceRecord{
			ID: id, StudentID: studentID, Date: day, Status: status, Class: "10", Section: "A",
		}
	}
	return []*school.AttendanceRecord{
		mk("ATT001", "STU001", school.AttendancePresent),
		mk("ATT002", "STU002", school.AttendancePresent),
		mk("ATT003", "STU003", school.AttendanceAbsent),
		mk("ATT004", "STU004", school.AttendancePresent),
		mk("ATT005", "STU005", school.AttendanceLate),
		mk("ATT006", "STU006", school.AttendancePresent),
		mk("ATT007", "STU007", school.AttendanceAbsent),
		mk("ATT008", "STU008", school.AttendancePresent),
	}
}

func seedExams() []*school.Exam {
	return []*school.Exam{
		{
			ID: "EXM001", Name: "Mid Term Examination", Class: "10", Term: "Term 1",
			StartDate: date(2025, time.September, 15), EndDate: date(2025, time.September, 25),
			Subjects: []school.ExamSubject{
				{Name: "Mathematics", Date: date(2025, time.September, 15), MaxMarks: 100, PassingMarks: 35},
				{Name: "Science", Date: date(2025, time.September, 18), MaxMarks: 100, PassingMarks: 35},
				{Name: "English", Date: date(2025, time.September, 22), MaxMarks: 100, PassingMarks: 35},
			},
		},
	}
}

// Grades and ranks are pre-set demo data; no rubric derives them.
func seedResults() []*school.Result {
	return []*school.Result{
		{
			ID: "RES001", StudentID: "STU001", ExamID: "EXM001",
			Subjects: []school.SubjectMarks{
				{Name: "Mathematics", MarksObtained: 92, MaxMarks: 100, Grade: "A+"},
				{Name: "Science", MarksObtained: 88, MaxMarks: 100, Grade: "A"},
				{Name: "English", MarksObtained: 85, MaxMarks: 100, Grade: "A"},
			},
			TotalMarks: 265, TotalMaxMarks: 300, Percentage: 88.3, Grade: "A", Rank: 1,
		},
		{
			ID: "RES002", StudentID: "STU002", ExamID: "EXM001",
			Subjects: []school.SubjectMarks{
				{Name: "Mathematics", MarksObtained: 78, MaxMarks: 100, Grade: "B+"},
				{Name: "Science", MarksObtained: 82, MaxMarks: 100, Grade: "A"},
				{Name: "English", MarksObtained: 74, MaxMarks: 100, Grade: "B+"},
			},
			TotalMarks: 234, TotalMaxMarks: 300, Percentage: 78.0, Grade: "B+", Rank: 2,
		},
		{
			ID: "RES003", StudentID: "STU003", ExamID: "EXM001",
			Subjects: []school.SubjectMarks{
				{Name: "Mathematics", MarksObtained: 32, MaxMarks: 100, Grade: "D"},
				{Name: "Science", MarksObtained: 41, MaxMarks: 100, Grade: "C"},
				{Name: "English", MarksObtained: 38, MaxMarks: 100, Grade: "C"},
			},
			TotalMarks: 111, TotalMaxMarks: 300, Percentage: 37.0, Grade: "C", Rank: 8,
		},
	}
}

func seedBooks() ([]*school.LibraryBook, error) {
	specs := []school.LibraryBook{
		{ID: "BK001", ISBN: "978-0143333620", Title: "Malgudi Days", Author: "R.K. Narayan", Category: "Fiction", TotalCopies: 10, AvailableCopies: 7, IssuedCopies: 3},
		{ID: "BK002", ISBN: "978-8173711466", Title: "Wings of Fire", Author: "A.P.J. Abdul Kalam", Category: "Biography", TotalCopies: 8, AvailableCopies: 5, IssuedCopies: 3},
		{ID: "BK003", ISBN: "978-0199477456", Title: "Concepts of Physics", Author: "H.C. Verma", Category: "Science", TotalCopies: 15, AvailableCopies: 12, IssuedCopies: 3},
		{ID: "BK004", ISBN: "978-0143426677", Title: "The Guide", Author: "R.K. Narayan", Category: "Fiction", TotalCopies: 6, AvailableCopies: 6, IssuedCopies: 0},
		{ID: "BK005", ISBN: "978-9352535224", Title: "Mathematics Class X", Author: "R.D. Sharma", Category: "Reference", TotalCopies: 20, AvailableCopies: 19, IssuedCopies: 1},
	}
	books := make([]*school.LibraryBook, 0, len(specs))
	for _, spec := range specs {
		book, err := school.NewLibraryBook(spec)
		if err != nil {
			return nil, err
		}
		b := book
		books = append(books, &b)
	}
	return books, nil
}

func seedIssues() []*school.BookIssue {
	returned := date(2025, time.September, 30)
	return []*school.BookIssue{
		{
			ID: "ISS001", BookID: "BK001", BookTitle: "Malgudi Days",
			StudentID: "STU001", StudentName: "Aarav Sharma",
			IssueDate: date(2025, time.September, 28), DueDate: date(2025, time.October, 12),
			Status: school.IssueActive,
		},
		{
			ID: "ISS002", BookID: "BK003", BookTitle: "Concepts of Physics",
			StudentID: "STU003", StudentName: "Rohan Kumar",
			IssueDate: date(2025, time.September, 21), DueDate: date(2025, time.October, 5),
			Status: school.IssueOverdue,
		},
		{
			ID: "ISS003", BookID: "BK002", BookTitle: "Wings of Fire",
			StudentID: "STU002", StudentName: "Priya Patel",
			IssueDate: date(2025, time.September, 10), DueDate: date(2025, time.September, 24),
			ReturnDate: &returned, Fine: 30, Status: school.IssueReturned,
		},
	}
}

func seedRoutes() []*school.TransportRoute {
	return []*school.TransportRoute{
		{
			ID: "RT001", BusNumber: "KA-01-F-2301", RouteName: "North City Route",
			DriverName: "Ramesh Yadav", DriverPhone: "+91 98450 11223",
			Capacity: 40, Students: 38,
			Stops:  []string{"City Park", "Railway Colony", "Market Square", "School"},
			Timing: "7:15 AM - 8:15 AM",
		},
		{
			ID: "RT002", BusNumber: "KA-01-F-2302", RouteName: "Lake View Route",
			DriverName: "Shankar Gowda", DriverPhone: "+91 98450 44556",
			Capacity: 40, Students: 26,
			Stops:  []string{"Lake View", "Temple Road", "Green Gardens", "School"},
			Timing: "7:00 AM - 8:10 AM",
		},
		{
			ID: "RT003", BusNumber: "KA-01-F-2303", RouteName: "East Town Route",
			DriverName: "Manju Nath", DriverPhone: "+91 98450 77889",
			Capacity: 35, Students: 31,
			Stops:  []string{"East Town", "Mill Junction", "Stadium", "School"},
			Timing: "7:20 AM - 8:20 AM",
		},
	}
}

func seedAnnouncements() []*school.Announcement {
	all := []nav.Role{nav.RoleAdmin, nav.RoleTeacher, nav.RoleStudent, nav.RoleParent}
	return []*school.Announcement{
		{
			ID: "ANN001", Title: "Annual Sports Day",
			Content:  "The annual sports day will be held on 15th November. All students must report by 8 AM.",
			Date:     date(2025, time.October, 4), Author: "Admin User",
			Priority: school.PriorityHigh, TargetAudience: all,
		},
		{
			ID: "ANN002", Title: "Parent-Teacher Meeting",
			Content:  "PTM for classes 9 and 10 is scheduled for Saturday, 18th October.",
			Date:     date(2025, time.October, 2), Author: "Admin User",
			Priority: school.PriorityMedium,
			TargetAudience: []nav.Role{nav.RoleTeacher, nav.RoleParent},
		},
		{
			ID: "ANN003", Title: "Library Week",
			Content:  "Library week starts Monday. Return all overdue books to avoid fines.",
			Date:     date(2025, time.September, 29), Author: "Mrs. Kavita Rao",
			Priority: school.PriorityLow,
			TargetAudience: []nav.Role{nav.RoleStudent},
		},
	}
}

func seedTimetable() []*school.TimetableEntry {
	mk := func(id, subject, tm, class, section, teacher, day, room string) *school.TimetableEntry {
		return &school.TimetableEntry{
			ID: id, Subject: subject, Time: tm, Class: class, Section: section,
			Teacher: teacher, Day: day, Room: room,
		}
	}
	return []*school.TimetableEntry{
		mk("TT001", "Mathematics", "9:00 AM - 9:45 AM", "10", "A", "Dr. Sanjay Mehta", "Monday", "201"),
		mk("TT002", "Science", "9:45 AM - 10:30 AM", "10", "A", "Mrs. Kavita Rao", "Monday", "Lab 2"),
		mk("TT003", "English", "10:45 AM - 11:30 AM", "10", "A", "Mr. Arvind Menon", "Monday", "201"),
		mk("TT004", "Mathematics", "9:00 AM - 9:45 AM", "9", "B", "Dr. Sanjay Mehta", "Tuesday", "105"),
		mk("TT005", "English", "9:45 AM - 10:30 AM", "9", "B", "Mr. Arvind Menon", "Tuesday", "105"),
	}
}
