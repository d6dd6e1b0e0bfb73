package attendance

import (
	"path/filepath"

	"dayflow/internal/storage"
)

type Store struct {
	records *storage.Collection[Record]
}

func NewStore(dataDir string) *Store {
	return &Store{records: storage.NewCollection[Record](filepath.Join(dataDir, "attendance.json"))}
}

func (s *Store) List() ([]Record, error) {
	return s.records.Load()
}

func (s *Store) ListByEmployee(employeeID string) ([]Record, error) {
	all, err := s.records.Load()
	if err != nil {
		return nil, err
	}
	var out []Record
	for _, rec := range all {
		if rec.EmployeeID == employeeID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (s *Store) ListByDate(date string) ([]Record, error) {
	all, err := s.records.Load()
	if err != nil {
		return nil, err
	}
	var out []Record
	for _, rec := range all {
		if rec.Date == date {
			out = append(out, rec)
		}
	}
	return out, nil
}

// FindForDay returns the record for one employee on one date, or nil. The
// store guarantees at most one such record exists.
func (s *Store) FindForDay(employeeID, date string) (*Record, error) {
	all, err := s.records.Load()
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].EmployeeID == employeeID && all[i].Date == date {
			return &all[i], nil
		}
	}
	return nil, nil
}

func (s *Store) Mutate(fn func(*storage.Txn[Record]) error) error {
	return s.records.Mutate(fn)
}
