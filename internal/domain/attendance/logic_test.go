package attendance

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekStart(t *testing.T) {
	// Wednesday rolls back to the Monday of the same week.
	got := WeekStart(date(2026, time.January, 7))
	if want := date(2026, time.January, 5); !got.Equal(want) {
		t.Fatalf("expected %s, got %s", want.Format(DateLayout), got.Format(DateLayout))
	}

	// Sunday belongs to the week that started six days earlier.
	got = WeekStart(date(2026, time.January, 4))
	if want := date(2025, time.December, 29); !got.Equal(want) {
		t.Fatalf("expected %s, got %s", want.Format(DateLayout), got.Format(DateLayout))
	}

	// Monday is its own week start.
	got = WeekStart(date(2026, time.January, 5))
	if want := date(2026, time.January, 5); !got.Equal(want) {
		t.Fatalf("expected %s, got %s", want.Format(DateLayout), got.Format(DateLayout))
	}
}

func TestWeekDates(t *testing.T) {
	dates := WeekDates(date(2026, time.January, 5))
	if len(dates) != 7 {
		t.Fatalf("expected 7 dates, got %d", len(dates))
	}
	if dates[0] != "2026-01-05" || dates[6] != "2026-01-11" {
		t.Fatalf("unexpected window %s .. %s", dates[0], dates[6])
	}
}

func TestHoursBetween(t *testing.T) {
	hours, err := HoursBetween("09:00", "17:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hours != 8.5 {
		t.Fatalf("expected 8.5, got %v", hours)
	}

	hours, err = HoursBetween("09:00", "17:20")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hours != 8.3 {
		t.Fatalf("expected rounding to one decimal, got %v", hours)
	}

	// Same-day parsing: crossing midnight goes negative, by contract.
	hours, err = HoursBetween("22:00", "06:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hours != -16 {
		t.Fatalf("expected -16, got %v", hours)
	}
}

func TestHoursBetweenMalformed(t *testing.T) {
	if _, err := HoursBetween("nine", "17:00"); err == nil {
		t.Fatal("expected error for malformed clock time")
	}
}

func TestSummarize(t *testing.T) {
	weekStart := date(2026, time.January, 5)
	hoursFor := func(h float64) *float64 { return &h }

	records := []Record{
		{EmployeeID: "odooalli2024001", Date: "2026-01-05", CheckIn: "09:00", CheckOut: "17:00", Status: StatusPresent, HoursWorked: hoursFor(8)},
		{EmployeeID: "odooalli2024001", Date: "2026-01-07", CheckIn: "09:30", CheckOut: "17:00", Status: StatusPresent, HoursWorked: hoursFor(7.5)},
		{EmployeeID: "odooalli2024001", Date: "2026-01-09", CheckIn: "09:00", CheckOut: "17:00", Status: StatusPresent, HoursWorked: hoursFor(8)},
		// Another employee's record in the same week must not count.
		{EmployeeID: "odoosasm2024002", Date: "2026-01-05", CheckIn: "09:00", Status: StatusPresent, HoursWorked: hoursFor(8)},
	}

	summary := Summarize(records, "odooalli2024001", weekStart)

	if summary.PresentDays != 3 {
		t.Fatalf("expected 3 present days, got %d", summary.PresentDays)
	}
	if summary.AbsentDays != 4 {
		t.Fatalf("expected 4 absent days, got %d", summary.AbsentDays)
	}
	if summary.AttendanceRate != "42.9" {
		t.Fatalf("expected rate 42.9, got %s", summary.AttendanceRate)
	}
	if summary.TotalHours != 23.5 {
		t.Fatalf("expected 23.5 total hours, got %v", summary.TotalHours)
	}
	if len(summary.Days) != 7 {
		t.Fatalf("expected 7 day cells, got %d", len(summary.Days))
	}
	if summary.Days[0].Status != StatusPresent || summary.Days[1].Status != StatusAbsent {
		t.Fatalf("unexpected day classification: %+v", summary.Days[:2])
	}
}

func TestSummarizeMissingHoursCountZero(t *testing.T) {
	weekStart := date(2026, time.January, 5)
	records := []Record{
		// Checked in but never out: present, zero hours.
		{EmployeeID: "e", Date: "2026-01-05", CheckIn: "09:00", Status: StatusPresent},
	}

	summary := Summarize(records, "e", weekStart)
	if summary.PresentDays != 1 {
		t.Fatalf("expected 1 present day, got %d", summary.PresentDays)
	}
	if summary.TotalHours != 0 {
		t.Fatalf("expected 0 total hours, got %v", summary.TotalHours)
	}
}

func TestDailyCounts(t *testing.T) {
	records := []Record{
		{EmployeeID: "a", Date: "2026-01-05"},
		{EmployeeID: "b", Date: "2026-01-05"},
		{EmployeeID: "a", Date: "2026-01-06"},
	}

	present, absent := DailyCounts(records, "2026-01-05", 5)
	if present != 2 || absent != 3 {
		t.Fatalf("expected 2/3, got %d/%d", present, absent)
	}

	present, absent = DailyCounts(records, "2026-01-10", 5)
	if present != 0 || absent != 5 {
		t.Fatalf("expected 0/5, got %d/%d", present, absent)
	}
}
