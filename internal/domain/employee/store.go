package employee

import (
	"path/filepath"

	"dayflow/internal/storage"
)

type Store struct {
	records *storage.Collection[Employee]
}

func NewStore(dataDir string) *Store {
	return &Store{records: storage.NewCollection[Employee](filepath.Join(dataDir, "employees.json"))}
}

// List returns all employees in stored order.
func (s *Store) List() ([]Employee, error) {
	return s.records.Load()
}

// FindByEmail returns the employee with an exactly matching email, or nil.
func (s *Store) FindByEmail(email string) (*Employee, error) {
	all, err := s.records.Load()
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].Email == email {
			return &all[i], nil
		}
	}
	return nil, nil
}

// FindByEmployeeID returns the employee with the given business key, or nil.
func (s *Store) FindByEmployeeID(employeeID string) (*Employee, error) {
	all, err := s.records.Load()
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].EmployeeID == employeeID {
			return &all[i], nil
		}
	}
	return nil, nil
}

func (s *Store) Mutate(fn func(*storage.Txn[Employee]) error) error {
	return s.records.Mutate(fn)
}
