package school

// Report rows are derived, read-only projections for the reports views.
// Attendance percentages are always recomputed from the records here.

type AttendanceReportRow struct {
	StudentID       string  `json:"student_id"`
	Name            string  `json:"name"`
	Class           string  `json:"class"`
	AdmissionNumber string  `json:"admission_number"`
	TotalDays       int     `json:"total_days"`
	PresentDays     int     `json:"present_days"`
	AbsentDays      int     `json:"absent_days"`
	Percentage      float64 `json:"percentage"`
	Band            string  `json:"band"`
}

type ResultsReportRow struct {
	StudentID       string  `json:"student_id"`
	Name            string  `json:"name"`
	Class           string  `json:"class"`
	AdmissionNumber string  `json:"admission_number"`
	TotalMarks      int     `json:"total_marks"`
	Percentage      float64 `json:"percentage"`
	Grade           string  `json:"grade"`
	Rank            int     `json:"rank,omitempty"`
	Band            string  `json:"band"`
}

type FeesReportRow struct {
	FeeID         string `json:"fee_id"`
	StudentName   string `json:"student_name"`
	Class         string `json:"class"`
	TotalAmount   int    `json:"total_amount"`
	PaidAmount    int    `json:"paid_amount"`
	PendingAmount int    `json:"pending_amount"`
	Status        string `json:"status"`
}

// DashboardStats are the admin dashboard stat cards.
type DashboardStats struct {
	TotalStudents   int     `json:"total_students"`
	TotalTeachers   int     `json:"total_teachers"`
	TotalRevenue    int     `json:"total_revenue"`
	PendingFees     int     `json:"pending_fees"`
	AttendanceToday float64 `json:"attendance_today"`
	ActiveTransport int     `json:"active_transport"`
	LibraryBooks    int     `json:"library_books"`
	CollectionRate  float64 `json:"collection_rate"`
}

func (svc *Service) AttendanceReport() ([]AttendanceReportRow, error) {
	students, err := svc.repo.QueryAllStudents()
	if err != nil {
		return nil, err
	}
	rows := make([]AttendanceReportRow, 0, len(students))
	for _, s := range students {
		records, err := svc.repo.QueryAttendanceByStudent(s.ID)
		if err != nil {
			return nil, err
		}
		rate := AttendanceRate(records)
		present := PresentCount(records) + CountByStatus(records, AttendanceLate)
		rows = append(rows, AttendanceReportRow{
			StudentID:       s.ID,
			Name:            s.Name,
			Class:           s.Class + "-" + s.Section,
			AdmissionNumber: s.AdmissionNumber,
			TotalDays:       len(records),
			PresentDays:     present,
			AbsentDays:      len(records) - present,
			Percentage:      rate,
			Band:            AttendanceBand(rate),
		})
	}
	return rows, nil
}

func (svc *Service) ResultsReport() ([]ResultsReportRow, error) {
	students, err := svc.repo.QueryAllStudents()
	if err != nil {
		return nil, err
	}
	results, err := svc.repo.QueryAllResults()
	if err != nil {
		return nil, err
	}
	byStudent := make(map[string]Result, len(results))
	for _, r := range results {
		byStudent[r.StudentID] = r
	}
	rows := make([]ResultsReportRow, 0, len(students))
	for _, s := range students {
		row := ResultsReportRow{
			StudentID:       s.ID,
			Name:            s.Name,
			Class:           s.Class + "-" + s.Section,
			AdmissionNumber: s.AdmissionNumber,
			Grade:           "N/A",
			Band:            ResultBand(0),
		}
		if r, ok := byStudent[s.ID]; ok {
			row.TotalMarks = r.TotalMarks
			row.Percentage = r.Percentage
			row.Grade = r.Grade
			row.Rank = r.Rank
			row.Band = ResultBand(r.Percentage)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (svc *Service) FeesReport() ([]FeesReportRow, error) {
	fees, err := svc.repo.QueryAllFees()
	if err != nil {
		return nil, err
	}
	rows := make([]FeesReportRow, 0, len(fees))
	for _, f := range fees {
		rows = append(rows, FeesReportRow{
			FeeID:         f.ID,
			StudentName:   f.StudentName,
			Class:         f.Class + "-" + f.Section,
			TotalAmount:   f.TotalAmount,
			PaidAmount:    f.PaidAmount,
			PendingAmount: f.PendingAmount,
			Status:        f.Status,
		})
	}
	return rows, nil
}

func (svc *Service) Dashboard() (DashboardStats, error) {
	students, err := svc.repo.QueryAllStudents()
	if err != nil {
		return DashboardStats{}, err
	}
	teachers, err := svc.repo.QueryAllTeachers()
	if err != nil {
		return DashboardStats{}, err
	}
	fees, err := svc.repo.QueryAllFees()
	if err != nil {
		return DashboardStats{}, err
	}
	today, err := svc.repo.QueryAttendanceByDate(NowFunc().UTC())
	if err != nil {
		return DashboardStats{}, err
	}
	routes, err := svc.repo.QueryAllRoutes()
	if err != nil {
		return DashboardStats{}, err
	}
	books, err := svc.repo.QueryAllBooks()
	if err != nil {
		return DashboardStats{}, err
	}

	feeSum := SummarizeFees(fees)
	var copies int
	for _, b := range books {
		copies += b.TotalCopies
	}
	return DashboardStats{
		TotalStudents:   len(students),
		TotalTeachers:   len(teachers),
		TotalRevenue:    feeSum.TotalPaid,
		PendingFees:     feeSum.TotalPending,
		AttendanceToday: AttendanceRate(today),
		ActiveTransport: len(routes),
		LibraryBooks:    copies,
		CollectionRate:  feeSum.CollectionRate,
	}, nil
}
