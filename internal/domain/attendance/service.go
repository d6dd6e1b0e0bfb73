package attendance

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"dayflow/internal/storage"
)

var ErrNotCheckedIn = errors.New("no check-in recorded for today")

type Service struct {
	store *Store
	now   func() time.Time
}

func NewService(store *Store) *Service {
	return &Service{store: store, now: time.Now}
}

// CheckIn records the employee as present today with the current clock
// time. A second check-in on the same day replaces the earlier record, so
// there is never more than one record per employee per date.
func (s *Service) CheckIn(employeeID string) (Record, error) {
	now := s.now()
	record := Record{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		Date:       now.Format(DateLayout),
		CheckIn:    now.Format(ClockLayout),
		Status:     StatusPresent,
	}

	err := s.store.Mutate(func(txn *storage.Txn[Record]) error {
		txn.Records = removeForDay(txn.Records, employeeID, record.Date)
		txn.Records = append(txn.Records, record)
		return nil
	})
	if err != nil {
		return Record{}, err
	}

	slog.Info("checked in", "employeeId", employeeID, "time", record.CheckIn)
	return record, nil
}

// CheckOut closes today's record with the current clock time and derives
// the hours worked. Both times are same-day clock values, so a check-out
// past midnight produces a negative duration.
func (s *Service) CheckOut(employeeID string) (Record, error) {
	now := s.now()
	date := now.Format(DateLayout)
	clock := now.Format(ClockLayout)

	var updated Record
	err := s.store.Mutate(func(txn *storage.Txn[Record]) error {
		for i := range txn.Records {
			rec := &txn.Records[i]
			if rec.EmployeeID == employeeID && rec.Date == date {
				hours, err := HoursBetween(rec.CheckIn, clock)
				if err != nil {
					return err
				}
				rec.CheckOut = clock
				rec.HoursWorked = &hours
				updated = *rec
				return nil
			}
		}
		return ErrNotCheckedIn
	})
	if err != nil {
		return Record{}, err
	}

	slog.Info("checked out", "employeeId", employeeID, "time", clock, "hours", *updated.HoursWorked)
	return updated, nil
}

// SetAttendance is the admin day toggle. Marking present creates a nominal
// 09:00-17:00 record only when none exists for the pair, so repeated calls
// leave exactly one record; marking absent deletes any record for the pair.
func (s *Service) SetAttendance(employeeID, date string, present bool) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}

	return s.store.Mutate(func(txn *storage.Txn[Record]) error {
		if !present {
			txn.Records = removeForDay(txn.Records, employeeID, date)
			return nil
		}
		for _, rec := range txn.Records {
			if rec.EmployeeID == employeeID && rec.Date == date {
				return nil
			}
		}
		hours := DefaultHours
		txn.Records = append(txn.Records, Record{
			ID:          uuid.NewString(),
			EmployeeID:  employeeID,
			Date:        date,
			CheckIn:     DefaultCheckIn,
			CheckOut:    DefaultCheckOut,
			Status:      StatusPresent,
			HoursWorked: &hours,
		})
		return nil
	})
}

func removeForDay(records []Record, employeeID, date string) []Record {
	kept := records[:0]
	for _, rec := range records {
		if !(rec.EmployeeID == employeeID && rec.Date == date) {
			kept = append(kept, rec)
		}
	}
	return kept
}
