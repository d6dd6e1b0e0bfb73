package reports

import (
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"dayflow/internal/domain/attendance"
)

// WeeklyAttendancePDF renders one employee's week summary to a PDF file.
func (s *Service) WeeklyAttendancePDF(employeeID string, anchor time.Time, filePath string) error {
	emp, err := s.employeeFor(employeeID)
	if err != nil {
		return err
	}
	summary, err := s.WeeklyAttendance(employeeID, anchor)
	if err != nil {
		return err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Weekly Attendance")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s (%s)", emp.FullName(), emp.EmployeeID))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Week of %s", summary.WeekStart))
	pdf.Ln(10)

	for _, day := range summary.Days {
		line := fmt.Sprintf("%s  %s", day.Date, day.Status)
		if day.Status == attendance.StatusPresent {
			var hours float64
			if day.HoursWorked != nil {
				hours = *day.HoursWorked
			}
			line = fmt.Sprintf("%s  %s  %s - %s  %.1fh", day.Date, day.Status, day.CheckIn, day.CheckOut, hours)
		}
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(5)
	pdf.Cell(0, 8, fmt.Sprintf("Present: %d   Absent: %d   Rate: %s%%   Hours: %.1f",
		summary.PresentDays, summary.AbsentDays, summary.AttendanceRate, summary.TotalHours))

	return pdf.OutputFileAndClose(filePath)
}
