// Package session holds the signed-in user. The state is a single persisted
// document that lives until an explicit logout, so it survives process
// restarts; there are no tokens and no expiry.
package session

import (
	"log/slog"
	"path/filepath"

	"dayflow/internal/domain/employee"
	"dayflow/internal/platform/auth"
	"dayflow/internal/storage"
)

type Gate struct {
	users   *employee.Store
	current *storage.Document[employee.Employee]
}

func NewGate(dataDir string, users *employee.Store) *Gate {
	return &Gate{
		users:   users,
		current: storage.NewDocument[employee.Employee](filepath.Join(dataDir, "session.json")),
	}
}

// Login matches the email against the directory and verifies the password
// hash. A failed match returns nil with no error; there is no lockout and
// no retry accounting.
func (g *Gate) Login(email, password string) (*employee.Employee, error) {
	match, err := g.users.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if match == nil {
		return nil, nil
	}
	if auth.CheckPassword(match.PasswordHash, password) != nil {
		return nil, nil
	}
	if err := g.current.Save(*match); err != nil {
		return nil, err
	}
	slog.Info("signed in", "employeeId", match.EmployeeID, "role", match.Role)
	return match, nil
}

func (g *Gate) Logout() error {
	return g.current.Clear()
}

// Current returns the signed-in employee, or nil when anonymous.
func (g *Gate) Current() (*employee.Employee, error) {
	return g.current.Load()
}

// IsAdmin derives the role split from the cached user.
func (g *Gate) IsAdmin() bool {
	current, err := g.current.Load()
	return err == nil && current != nil && current.Role == employee.RoleAdmin
}

// CurrentEmployeeID implements employee.Session. Anonymous sessions report
// an empty id.
func (g *Gate) CurrentEmployeeID() string {
	current, err := g.current.Load()
	if err != nil || current == nil {
		return ""
	}
	return current.EmployeeID
}

// Refresh implements employee.Session: it rewrites the cached copy when the
// signed-in employee's profile changed.
func (g *Gate) Refresh(emp employee.Employee) {
	current, err := g.current.Load()
	if err != nil || current == nil || current.EmployeeID != emp.EmployeeID {
		return
	}
	if err := g.current.Save(emp); err != nil {
		slog.Warn("session refresh failed", "employeeId", emp.EmployeeID, "err", err)
	}
}
