package leave

import (
	"path/filepath"

	"dayflow/internal/storage"
)

type Store struct {
	records *storage.Collection[Request]
}

func NewStore(dataDir string) *Store {
	return &Store{records: storage.NewCollection[Request](filepath.Join(dataDir, "leave_requests.json"))}
}

func (s *Store) List() ([]Request, error) {
	return s.records.Load()
}

func (s *Store) ListByEmployee(employeeID string) ([]Request, error) {
	all, err := s.records.Load()
	if err != nil {
		return nil, err
	}
	var out []Request
	for _, req := range all {
		if req.EmployeeID == employeeID {
			out = append(out, req)
		}
	}
	return out, nil
}

func (s *Store) Mutate(fn func(*storage.Txn[Request]) error) error {
	return s.records.Mutate(fn)
}
