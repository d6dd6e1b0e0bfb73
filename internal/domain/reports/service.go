package reports

import (
	"fmt"
	"time"

	"dayflow/internal/domain/attendance"
	"dayflow/internal/domain/employee"
	"dayflow/internal/domain/leave"
)

// Service composes the derived views over the raw collections. Nothing
// here is ever persisted; every call recomputes from the stores.
type Service struct {
	employees  *employee.Store
	attendance *attendance.Store
	leaves     *leave.Store
}

func NewService(employees *employee.Store, att *attendance.Store, leaves *leave.Store) *Service {
	return &Service{employees: employees, attendance: att, leaves: leaves}
}

// Overview is the admin dashboard header: headcount, pending leave and
// today's presence split.
type Overview struct {
	TotalEmployees int `json:"totalEmployees"`
	PendingLeaves  int `json:"pendingLeaves"`
	PresentToday   int `json:"presentToday"`
	AbsentToday    int `json:"absentToday"`
}

func (s *Service) Overview(today time.Time) (Overview, error) {
	staff, err := s.employees.List()
	if err != nil {
		return Overview{}, err
	}
	requests, err := s.leaves.List()
	if err != nil {
		return Overview{}, err
	}
	records, err := s.attendance.List()
	if err != nil {
		return Overview{}, err
	}

	present, absent := attendance.DailyCounts(records, today.Format(attendance.DateLayout), len(staff))
	return Overview{
		TotalEmployees: len(staff),
		PendingLeaves:  leave.CountByStatus(requests)[leave.StatusPending],
		PresentToday:   present,
		AbsentToday:    absent,
	}, nil
}

type SalarySummary struct {
	Headcount    int     `json:"headcount"`
	TotalExpense float64 `json:"totalExpense"`
	Average      float64 `json:"average"`
}

func (s *Service) Salary() (SalarySummary, error) {
	staff, err := s.employees.List()
	if err != nil {
		return SalarySummary{}, err
	}
	total, average := employee.SalaryTotals(staff)
	return SalarySummary{Headcount: len(staff), TotalExpense: total, Average: average}, nil
}

// WeeklyAttendance builds the week summary for one employee starting at
// the Monday of the week containing anchor.
func (s *Service) WeeklyAttendance(employeeID string, anchor time.Time) (attendance.WeekSummary, error) {
	records, err := s.attendance.ListByEmployee(employeeID)
	if err != nil {
		return attendance.WeekSummary{}, err
	}
	return attendance.Summarize(records, employeeID, attendance.WeekStart(anchor)), nil
}

// RecordsForDate returns the raw attendance records for one calendar date,
// for the day roster view.
func (s *Service) RecordsForDate(date string) ([]attendance.Record, error) {
	return s.attendance.ListByDate(date)
}

func (s *Service) employeeFor(employeeID string) (*employee.Employee, error) {
	emp, err := s.employees.FindByEmployeeID(employeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, fmt.Errorf("%w: %s", employee.ErrNotFound, employeeID)
	}
	return emp, nil
}
