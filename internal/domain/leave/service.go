package leave

import (
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"dayflow/internal/platform/validate"
	"dayflow/internal/storage"
)

var (
	ErrInvalidStatus = errors.New("invalid leave status")
	ErrInvalidRange  = errors.New("end date before start date")
)

type Service struct {
	store *Store
	now   func() time.Time
}

func NewService(store *Store) *Service {
	return &Service{store: store, now: time.Now}
}

// Submit files a new request for the given employee. The request starts
// pending and records today as the application date.
func (s *Service) Submit(employeeID, employeeName string, payload SubmitPayload) (Request, error) {
	if err := validate.Struct(payload); err != nil {
		return Request{}, err
	}

	start, err := time.Parse(dateLayout, payload.StartDate)
	if err != nil {
		return Request{}, err
	}
	end, err := time.Parse(dateLayout, payload.EndDate)
	if err != nil {
		return Request{}, err
	}
	if end.Before(start) {
		return Request{}, ErrInvalidRange
	}

	request := Request{
		ID:           uuid.NewString(),
		EmployeeID:   employeeID,
		EmployeeName: employeeName,
		LeaveType:    payload.LeaveType,
		StartDate:    payload.StartDate,
		EndDate:      payload.EndDate,
		Reason:       payload.Reason,
		Status:       StatusPending,
		AppliedOn:    s.now().Format(dateLayout),
	}

	err = s.store.Mutate(func(txn *storage.Txn[Request]) error {
		txn.Records = append(txn.Records, request)
		return nil
	})
	if err != nil {
		return Request{}, err
	}

	slog.Info("leave request submitted", "employeeId", employeeID, "type", payload.LeaveType)
	return request, nil
}

// SetStatus overwrites a request's status unconditionally; re-deciding an
// already-decided request just replaces the value. Unknown ids are a
// silent no-op.
func (s *Service) SetStatus(requestID, status string) error {
	if status != StatusPending && status != StatusApproved && status != StatusRejected {
		return ErrInvalidStatus
	}

	return s.store.Mutate(func(txn *storage.Txn[Request]) error {
		for i := range txn.Records {
			if txn.Records[i].ID == requestID {
				txn.Records[i].Status = status
				slog.Info("leave status updated", "requestId", requestID, "status", status)
				return nil
			}
		}
		return nil
	})
}

// ListAll returns every request, newest application first.
func (s *Service) ListAll() ([]Request, error) {
	all, err := s.store.List()
	if err != nil {
		return nil, err
	}
	return SortByAppliedOnDesc(all), nil
}

// ListByEmployee returns one employee's requests, newest application first.
func (s *Service) ListByEmployee(employeeID string) ([]Request, error) {
	mine, err := s.store.ListByEmployee(employeeID)
	if err != nil {
		return nil, err
	}
	return SortByAppliedOnDesc(mine), nil
}
