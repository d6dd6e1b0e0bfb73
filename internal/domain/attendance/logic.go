package attendance

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// WeekStart returns the most recent Monday on or before the given date,
// truncated to midnight in the date's location. Sundays roll back six days.
func WeekStart(t time.Time) time.Time {
	day := int(t.Weekday())
	offset := 1 - day
	if day == 0 {
		offset = -6
	}
	t = t.AddDate(0, 0, offset)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekDates returns the seven consecutive calendar dates starting at
// weekStart, formatted as YYYY-MM-DD.
func WeekDates(weekStart time.Time) []string {
	dates := make([]string, 7)
	for i := range dates {
		dates[i] = weekStart.AddDate(0, 0, i).Format(DateLayout)
	}
	return dates
}

// HoursBetween computes the worked duration between two clock times on the
// same day, rounded to one decimal. A check-out earlier than the check-in
// (crossing midnight) yields a negative value; it is not clamped.
func HoursBetween(checkIn, checkOut string) (float64, error) {
	in, err := time.Parse(ClockLayout, checkIn)
	if err != nil {
		return 0, fmt.Errorf("parse check-in %q: %w", checkIn, err)
	}
	out, err := time.Parse(ClockLayout, checkOut)
	if err != nil {
		return 0, fmt.Errorf("parse check-out %q: %w", checkOut, err)
	}
	return math.Round(out.Sub(in).Hours()*10) / 10, nil
}

type DaySummary struct {
	Date        string   `json:"date"`
	Status      string   `json:"status"`
	CheckIn     string   `json:"checkIn,omitempty"`
	CheckOut    string   `json:"checkOut,omitempty"`
	HoursWorked *float64 `json:"hoursWorked,omitempty"`
}

type WeekSummary struct {
	EmployeeID     string       `json:"employeeId"`
	WeekStart      string       `json:"weekStart"`
	Days           []DaySummary `json:"days"`
	PresentDays    int          `json:"presentDays"`
	AbsentDays     int          `json:"absentDays"`
	AttendanceRate string       `json:"attendanceRate"`
	TotalHours     float64      `json:"totalHours"`
}

// Summarize classifies each of the seven days from weekStart as present or
// absent for one employee and aggregates the week's totals. A day is
// present when a record exists for it; missing hours count as zero.
func Summarize(records []Record, employeeID string, weekStart time.Time) WeekSummary {
	summary := WeekSummary{
		EmployeeID: employeeID,
		WeekStart:  weekStart.Format(DateLayout),
		Days:       make([]DaySummary, 0, 7),
	}

	for _, date := range WeekDates(weekStart) {
		day := DaySummary{Date: date, Status: StatusAbsent}
		for _, rec := range records {
			if rec.EmployeeID == employeeID && rec.Date == date {
				day.Status = StatusPresent
				day.CheckIn = rec.CheckIn
				day.CheckOut = rec.CheckOut
				day.HoursWorked = rec.HoursWorked
				if rec.HoursWorked != nil {
					summary.TotalHours += *rec.HoursWorked
				}
				break
			}
		}
		if day.Status == StatusPresent {
			summary.PresentDays++
		}
		summary.Days = append(summary.Days, day)
	}

	summary.AbsentDays = 7 - summary.PresentDays
	summary.AttendanceRate = strconv.FormatFloat(float64(summary.PresentDays)/7*100, 'f', 1, 64)
	return summary
}

// DailyCounts reports how many of totalEmployees have a record for the
// given date, and how many do not.
func DailyCounts(records []Record, date string, totalEmployees int) (present, absent int) {
	for _, rec := range records {
		if rec.Date == date {
			present++
		}
	}
	return present, totalEmployees - present
}
