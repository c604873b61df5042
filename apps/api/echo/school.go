package echoapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/skilllogic/schoolcrm/core"
	"github.com/skilllogic/schoolcrm/core/nav"
	"github.com/skilllogic/schoolcrm/core/school"
)

type schoolApi struct {
	svc *school.Service
}

func registerSchoolAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *school.Service) {
	api := schoolApi{svc: svc}

	ag := g.Group("", jwt)
	staff := roleMiddleware(nav.RoleAdmin, nav.RoleTeacher)

	ag.GET("/dashboard", api.dashboard)

	ag.GET("/students", api.queryStudents)
	ag.GET("/students/stats", api.studentStats)
	ag.GET("/students/:id/attendance", api.studentAttendance)
	ag.POST("/students", api.addStudent, adminMiddleware())

	ag.GET("/teachers", api.queryTeachers)
	ag.POST("/teachers", api.addTeacher, adminMiddleware())

	ag.GET("/fees", api.queryFees)
	ag.GET("/fees/summary", api.feeSummary)
	ag.POST("/fees/payments", api.recordPayment, adminMiddleware())

	ag.GET("/attendance", api.classAttendance)
	ag.GET("/attendance/classes", api.classPartition)
	ag.POST("/attendance", api.markAttendance, staff)

	ag.GET("/exams", api.queryExams)
	ag.GET("/results", api.queryResults)

	ag.GET("/reports/attendance", api.attendanceReport)
	ag.GET("/reports/results", api.resultsReport)
	ag.GET("/reports/fees", api.feesReport)

	ag.GET("/library/books", api.queryBooks)
	ag.GET("/library/issues", api.queryIssues)
	ag.POST("/library/issues", api.issueBook, staff)
	ag.POST("/library/issues/:id/return", api.returnBook, staff)

	ag.GET("/transport", api.queryRoutes)

	ag.GET("/announcements", api.queryAnnouncements)
	ag.POST("/announcements", api.announce, staff)

	ag.GET("/timetable", api.queryTimetable)
}

// Handlers

func (api *schoolApi) dashboard(ctx echo.Context) error {
	usr, err := getContextUser(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}

	if usr.IsAdmin() {
		stats, err := api.svc.Dashboard()
		if err != nil {
			return errors.Wrap(err, "deriving dashboard stats")
		}
		return ctx.JSON(http.StatusOK, stats)
	}

	// non-admin roles get a reduced card set
	announcements, err := api.svc.QueryAnnouncements(usr.Role)
	if err != nil {
		return errors.Wrap(err, "querying announcements")
	}
	students, err := api.svc.QueryStudents(school.QueryFilter{})
	if err != nil {
		return errors.Wrap(err, "querying students")
	}
	entries, err := api.svc.QueryTimetable("", "")
	if err != nil {
		return errors.Wrap(err, "querying timetable")
	}
	return ctx.JSON(http.StatusOK, echo.Map{
		"role":            usr.Role,
		"total_students":  len(students),
		"timetable_slots": len(entries),
		"announcements":   len(announcements),
		"classes":         len(school.PartitionByClassSection(students)),
	})
}

func (api *schoolApi) queryStudents(ctx echo.Context) error {
	filter := new(school.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return errors.Wrap(err, "binding to QueryFilter")
	}
	filter.Clean()

	students, err := api.svc.QueryStudents(*filter)
	if err != nil {
		return errors.Wrap(err, "querying students")
	}
	return ctx.JSON(http.StatusOK, students)
}

func (api *schoolApi) studentStats(ctx echo.Context) error {
	students, err := api.svc.QueryStudents(school.QueryFilter{})
	if err != nil {
		return errors.Wrap(err, "querying students")
	}
	boys := school.CountByGender(students, school.GenderMale)
	girls := school.CountByGender(students, school.GenderFemale)
	return ctx.JSON(http.StatusOK, echo.Map{
		"total":         len(students),
		"boys":          boys,
		"boys_percent":  school.Percent(boys, len(students)),
		"girls":         girls,
		"girls_percent": school.Percent(girls, len(students)),
	})
}

func (api *schoolApi) studentAttendance(ctx echo.Context) error {
	student, err := api.svc.GetStudent(ctx.Param("id"))
	if err != nil {
		return err
	}
	rate, err := api.svc.StudentAttendanceRate(student.ID)
	if err != nil {
		return errors.Wrap(err, "deriving attendance rate")
	}
	return ctx.JSON(http.StatusOK, echo.Map{
		"student_id": student.ID,
		"rate":       rate,
		"band":       school.AttendanceBand(rate),
	})
}

func (api *schoolApi) addStudent(ctx echo.Context) error {
	var data school.NewStudent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewStudent")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	student, err := api.svc.AddStudent(data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, student)
}

func (api *schoolApi) queryTeachers(ctx echo.Context) error {
	filter := new(school.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return errors.Wrap(err, "binding to QueryFilter")
	}
	filter.Clean()

	teachers, err := api.svc.QueryTeachers(*filter)
	if err != nil {
		return errors.Wrap(err, "querying teachers")
	}
	return ctx.JSON(http.StatusOK, teachers)
}

func (api *schoolApi) addTeacher(ctx echo.Context) error {
	var data school.NewTeacher
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewTeacher")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	teacher, err := api.svc.AddTeacher(data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, teacher)
}

func (api *schoolApi) queryFees(ctx echo.Context) error {
	filter := new(school.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return errors.Wrap(err, "binding to QueryFilter")
	}
	filter.Clean()

	fees, err := api.svc.QueryFees(*filter)
	if err != nil {
		return errors.Wrap(err, "querying fees")
	}
	return ctx.JSON(http.StatusOK, fees)
}

func (api *schoolApi) feeSummary(ctx echo.Context) error {
	summary, err := api.svc.FeeSummary()
	if err != nil {
		return errors.Wrap(err, "summarizing fees")
	}
	return ctx.JSON(http.StatusOK, summary)
}

func (api *schoolApi) recordPayment(ctx echo.Context) error {
	var data school.RecordPayment
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to RecordPayment")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	fee, err := api.svc.RecordPayment(data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, fee)
}

func (api *schoolApi) classAttendance(ctx echo.Context) error {
	date, err := queryDate(ctx, "date")
	if err != nil {
		return err
	}

	students, records, err := api.svc.ClassAttendance(ctx.QueryParam("class"), ctx.QueryParam("section"), date)
	if err != nil {
		return errors.Wrap(err, "querying class attendance")
	}
	return ctx.JSON(http.StatusOK, echo.Map{
		"students": students,
		"records":  records,
		"present":  school.PresentCount(records),
		"absent":   school.CountByStatus(records, school.AttendanceAbsent),
		"late":     school.CountByStatus(records, school.AttendanceLate),
		"rate":     school.AttendanceRate(records),
	})
}

func (api *schoolApi) classPartition(ctx echo.Context) error {
	students, err := api.svc.QueryStudents(school.QueryFilter{})
	if err != nil {
		return errors.Wrap(err, "querying students")
	}
	return ctx.JSON(http.StatusOK, school.PartitionByClassSection(students))
}

func (api *schoolApi) markAttendance(ctx echo.Context) error {
	var data school.MarkAttendance
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to MarkAttendance")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	record, err := api.svc.Mark(data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, record)
}

func (api *schoolApi) queryExams(ctx echo.Context) error {
	exams, err := api.svc.QueryExams()
	if err != nil {
		return errors.Wrap(err, "querying exams")
	}
	return ctx.JSON(http.StatusOK, exams)
}

func (api *schoolApi) queryResults(ctx echo.Context) error {
	results, err := api.svc.QueryResults()
	if err != nil {
		return errors.Wrap(err, "querying results")
	}
	return ctx.JSON(http.StatusOK, results)
}

func (api *schoolApi) attendanceReport(ctx echo.Context) error {
	rows, err := api.svc.AttendanceReport()
	if err != nil {
		return errors.Wrap(err, "building attendance report")
	}
	return ctx.JSON(http.StatusOK, rows)
}

func (api *schoolApi) resultsReport(ctx echo.Context) error {
	rows, err := api.svc.ResultsReport()
	if err != nil {
		return errors.Wrap(err, "building results report")
	}
	return ctx.JSON(http.StatusOK, rows)
}

func (api *schoolApi) feesReport(ctx echo.Context) error {
	rows, err := api.svc.FeesReport()
	if err != nil {
		return errors.Wrap(err, "building fees report")
	}
	return ctx.JSON(http.StatusOK, rows)
}

func (api *schoolApi) queryBooks(ctx echo.Context) error {
	filter := new(school.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return errors.Wrap(err, "binding to QueryFilter")
	}
	filter.Clean()

	books, err := api.svc.QueryBooks(*filter)
	if err != nil {
		return errors.Wrap(err, "querying books")
	}
	return ctx.JSON(http.StatusOK, books)
}

func (api *schoolApi) queryIssues(ctx echo.Context) error {
	issues, err := api.svc.QueryIssues()
	if err != nil {
		return errors.Wrap(err, "querying issues")
	}
	return ctx.JSON(http.StatusOK, echo.Map{
		"issues":   issues,
		"issued":   school.CountIssuesByStatus(issues, school.IssueActive),
		"overdue":  school.CountIssuesByStatus(issues, school.IssueOverdue),
		"returned": school.CountIssuesByStatus(issues, school.IssueReturned),
	})
}

func (api *schoolApi) issueBook(ctx echo.Context) error {
	var data school.IssueBook
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to IssueBook")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	issue, err := api.svc.Issue(data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, issue)
}

func (api *schoolApi) returnBook(ctx echo.Context) error {
	issue, err := api.svc.Return(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, issue)
}

func (api *schoolApi) queryRoutes(ctx echo.Context) error {
	routes, err := api.svc.QueryRoutes()
	if err != nil {
		return errors.Wrap(err, "querying routes")
	}
	return ctx.JSON(http.StatusOK, routes)
}

func (api *schoolApi) queryAnnouncements(ctx echo.Context) error {
	usr, err := getContextUser(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}
	announcements, err := api.svc.QueryAnnouncements(usr.Role)
	if err != nil {
		return errors.Wrap(err, "querying announcements")
	}
	return ctx.JSON(http.StatusOK, announcements)
}

func (api *schoolApi) announce(ctx echo.Context) error {
	usr, err := getContextUser(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}

	var data school.NewAnnouncement
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewAnnouncement")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	announcement, err := api.svc.Announce(data, usr.Name)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, announcement)
}

func (api *schoolApi) queryTimetable(ctx echo.Context) error {
	entries, err := api.svc.QueryTimetable(ctx.QueryParam("class"), ctx.QueryParam("section"))
	if err != nil {
		return errors.Wrap(err, "querying timetable")
	}
	return ctx.JSON(http.StatusOK, entries)
}

// queryDate parses a YYYY-MM-DD query param, defaulting to today.
func queryDate(ctx echo.Context, name string) (time.Time, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return school.NowFunc().UTC(), nil
	}
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, core.NewValidationError(err,
			core.FieldError{Field: name, Error: "date must be formatted as YYYY-MM-DD"})
	}
	return date, nil
}
