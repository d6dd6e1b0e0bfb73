package employee

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"dayflow/internal/platform/auth"
	"dayflow/internal/platform/validate"
	"dayflow/internal/storage"
)

// Session is the slice of the session gate the employee service needs: who
// is signed in, and a way to refresh their cached copy after profile edits.
type Session interface {
	CurrentEmployeeID() string
	Refresh(emp Employee)
}

type Service struct {
	store   *Store
	session Session
}

func NewService(store *Store, session Session) *Service {
	return &Service{store: store, session: session}
}

// Signup registers a new employee and returns the generated employee id.
// The serial comes from the collection's monotonic sequence, so ids are
// never reissued after deletions.
func (s *Service) Signup(payload SignupPayload) (string, error) {
	if err := validate.Struct(payload); err != nil {
		return "", err
	}

	role := payload.Role
	if role == "" {
		role = RoleEmployee
	}
	year := payload.YearOfJoining
	if year == 0 {
		year = time.Now().Year()
	}

	hash, err := auth.HashPassword(payload.Password)
	if err != nil {
		return "", err
	}

	var employeeID string
	err = s.store.Mutate(func(txn *storage.Txn[Employee]) error {
		for _, existing := range txn.Records {
			if existing.Email == payload.Email {
				return ErrDuplicateEmail
			}
		}
		employeeID = GenerateEmployeeID(payload.FirstName, payload.LastName, year, int(txn.NextSerial()))
		txn.Records = append(txn.Records, Employee{
			ID:               uuid.NewString(),
			EmployeeID:       employeeID,
			FirstName:        payload.FirstName,
			LastName:         payload.LastName,
			Email:            payload.Email,
			PasswordHash:     hash,
			Role:             role,
			YearOfJoining:    year,
			Department:       payload.Department,
			Position:         payload.Position,
			Salary:           payload.Salary,
			PhoneNumber:      payload.PhoneNumber,
			Address:          payload.Address,
			DateOfBirth:      payload.DateOfBirth,
			EmergencyContact: payload.EmergencyContact,
			ProfileImage:     payload.ProfileImage,
		})
		return nil
	})
	if err != nil {
		return "", err
	}

	slog.Info("employee registered", "employeeId", employeeID, "role", role)
	return employeeID, nil
}

// Delete removes the employee with the given business key. Deleting the
// signed-in employee is refused; deleting an unknown id is a no-op. Leave
// and attendance history is retained as historical record.
func (s *Service) Delete(employeeID string) error {
	if s.session != nil && s.session.CurrentEmployeeID() == employeeID {
		return ErrSelfDelete
	}
	return s.store.Mutate(func(txn *storage.Txn[Employee]) error {
		kept := txn.Records[:0]
		for _, emp := range txn.Records {
			if emp.EmployeeID != employeeID {
				kept = append(kept, emp)
			}
		}
		txn.Records = kept
		return nil
	})
}

// UpdateProfile merges the provided fields into the matching employee and
// refreshes the session's cached copy when the signed-in user was updated.
// An unknown employee id is a silent no-op.
func (s *Service) UpdateProfile(employeeID string, updates ProfileUpdate) error {
	if err := validate.Struct(updates); err != nil {
		return err
	}

	var updated *Employee
	err := s.store.Mutate(func(txn *storage.Txn[Employee]) error {
		for i := range txn.Records {
			if txn.Records[i].EmployeeID == employeeID {
				applyUpdate(&txn.Records[i], updates)
				merged := txn.Records[i]
				updated = &merged
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if updated != nil && s.session != nil && s.session.CurrentEmployeeID() == employeeID {
		s.session.Refresh(*updated)
	}
	return nil
}

func applyUpdate(emp *Employee, updates ProfileUpdate) {
	if updates.FirstName != nil {
		emp.FirstName = *updates.FirstName
	}
	if updates.LastName != nil {
		emp.LastName = *updates.LastName
	}
	if updates.Department != nil {
		emp.Department = *updates.Department
	}
	if updates.Position != nil {
		emp.Position = *updates.Position
	}
	if updates.Salary != nil {
		emp.Salary = updates.Salary
	}
	if updates.PhoneNumber != nil {
		emp.PhoneNumber = *updates.PhoneNumber
	}
	if updates.Address != nil {
		emp.Address = *updates.Address
	}
	if updates.DateOfBirth != nil {
		emp.DateOfBirth = *updates.DateOfBirth
	}
	if updates.EmergencyContact != nil {
		emp.EmergencyContact = *updates.EmergencyContact
	}
	if updates.ProfileImage != nil {
		emp.ProfileImage = *updates.ProfileImage
	}
}

func (s *Service) List() ([]Employee, error) {
	return s.store.List()
}

func (s *Service) Get(employeeID string) (*Employee, error) {
	return s.store.FindByEmployeeID(employeeID)
}
