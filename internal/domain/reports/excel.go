package reports

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// WeeklyAttendanceXLSX writes one employee's week summary as a spreadsheet.
func (s *Service) WeeklyAttendanceXLSX(employeeID string, anchor time.Time, filePath string) error {
	emp, err := s.employeeFor(employeeID)
	if err != nil {
		return err
	}
	summary, err := s.WeeklyAttendance(employeeID, anchor)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Attendance"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	if err := setRow(f, sheet, 1, []any{
		fmt.Sprintf("%s (%s), week of %s", emp.FullName(), emp.EmployeeID, summary.WeekStart),
	}); err != nil {
		return err
	}
	if err := setRow(f, sheet, 2, []any{"Date", "Status", "Check In", "Check Out", "Hours"}); err != nil {
		return err
	}

	row := 3
	for _, day := range summary.Days {
		var hours any
		if day.HoursWorked != nil {
			hours = *day.HoursWorked
		}
		if err := setRow(f, sheet, row, []any{day.Date, day.Status, day.CheckIn, day.CheckOut, hours}); err != nil {
			return err
		}
		row++
	}

	if err := setRow(f, sheet, row+1, []any{
		"Totals",
		fmt.Sprintf("%d present / %d absent", summary.PresentDays, summary.AbsentDays),
		fmt.Sprintf("%s%%", summary.AttendanceRate),
		"",
		summary.TotalHours,
	}); err != nil {
		return err
	}

	return f.SaveAs(filePath)
}

// SalaryXLSX writes the directory's salary breakdown as a spreadsheet.
func (s *Service) SalaryXLSX(filePath string) error {
	staff, err := s.employees.List()
	if err != nil {
		return err
	}
	summary, err := s.Salary()
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Salary"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	if err := setRow(f, sheet, 1, []any{"Employee ID", "Name", "Department", "Salary"}); err != nil {
		return err
	}
	row := 2
	for _, emp := range staff {
		var salary any
		if emp.Salary != nil {
			salary = *emp.Salary
		}
		if err := setRow(f, sheet, row, []any{emp.EmployeeID, emp.FullName(), emp.Department, salary}); err != nil {
			return err
		}
		row++
	}

	if err := setRow(f, sheet, row+1, []any{"Total", "", "", summary.TotalExpense}); err != nil {
		return err
	}
	if err := setRow(f, sheet, row+2, []any{"Average", "", "", summary.Average}); err != nil {
		return err
	}

	return f.SaveAs(filePath)
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return err
		}
	}
	return nil
}
